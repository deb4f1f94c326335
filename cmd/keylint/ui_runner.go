package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"keylint/internal/driver"
	"keylint/internal/source"
	"keylint/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.CheckDirResult
	err     error
}

func runCheckDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.CheckOptions, jobs int) (*source.FileSet, []driver.CheckDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		fs, results, err := driver.CheckDir(ctx, dir, opts, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
