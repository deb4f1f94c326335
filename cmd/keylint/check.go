package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keylint/internal/diagfmt"
	"keylint/internal/driver"
	"keylint/internal/project"
	"keylint/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.klt|directory>",
	Short: "Check key ordering in a file or directory",
	Long:  `Check parses .klt files and reports keys that are out of the configured order`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "show fix previews without modifying files")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	checkCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

// runCheck executes the "check" command: it loads the project configuration
// for the target path, runs the pipeline over a single file or a directory,
// renders diagnostics in the chosen format, and exits non-zero when any
// diagnostics were reported.
func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	switch format {
	case "pretty", "json", "sarif":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	opts, err := buildCheckOptions(targetPath, st.IsDir(), maxDiagnostics, noCache)
	if err != nil {
		return err
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := suggest || preview
	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColor,
		Context:     2,
		PathMode:    pathMode,
		ShowNotes:   withNotes,
		ShowFixes:   showFixes,
		ShowPreview: preview,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
		IncludeFixes:     showFixes,
		IncludePreviews:  preview,
	}
	meta := sarifMeta()

	var exitCode int
	if !st.IsDir() {
		exitCode, err = checkFile(targetPath, opts, format, prettyOpts, jsonOpts, meta)
	} else {
		jobs, jobsErr := cmd.Flags().GetInt("jobs")
		if jobsErr != nil {
			return fmt.Errorf("failed to get jobs flag: %w", jobsErr)
		}
		useTUI := shouldUseTUI(mode) && format == "pretty" && !quiet
		exitCode, err = checkDir(cmd, targetPath, opts, jobs, useTUI, format, fullPath, prettyOpts, jsonOpts, meta)
	}
	if err != nil {
		return err
	}
	if exitCode != 0 {
		// Диагностики уже напечатаны; подавляем вывод usage от cobra.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// buildCheckOptions merges the project manifest (if any) with CLI-level
// settings into driver options.
func buildCheckOptions(targetPath string, isDir bool, maxDiagnostics int, noCache bool) (driver.CheckOptions, error) {
	startDir := targetPath
	if !isDir {
		startDir = filepath.Dir(targetPath)
	}
	cfg, _, _, err := project.LoadFor(startDir)
	if err != nil {
		return driver.CheckOptions{}, fmt.Errorf("failed to load keylint.toml: %w", err)
	}

	opts := driver.CheckOptions{
		Analyze:        cfg.ToOptions(),
		MaxDiagnostics: maxDiagnostics,
	}
	if !noCache {
		// недоступный кеш — не повод падать, просто проверяем без него
		if cache, cacheErr := driver.OpenDiskCache("keylint"); cacheErr == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func sarifMeta() diagfmt.SarifRunMeta {
	return diagfmt.SarifRunMeta{
		ToolName:       "keylint",
		ToolVersion:    "0.1.0",
		InvocationArgs: os.Args,
	}
}

func checkFile(path string, opts driver.CheckOptions, format string, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts, meta diagfmt.SarifRunMeta) (int, error) {
	result, err := driver.Check(path, opts)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	exit := 0
	if result.Bag.Len() > 0 {
		exit = 1
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, prettyOpts)
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, jsonOpts); err != nil {
			return 0, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "sarif":
		if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, meta); err != nil {
			return 0, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}
	return exit, nil
}

func checkDir(cmd *cobra.Command, dir string, opts driver.CheckOptions, jobs int, useTUI bool, format string, fullPath bool, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts, meta diagfmt.SarifRunMeta) (int, error) {
	var (
		fs      *source.FileSet
		results []driver.CheckDirResult
		err     error
	)
	if useTUI {
		files, listErr := driver.ListFiles(dir)
		if listErr != nil {
			return 0, fmt.Errorf("check failed: %w", listErr)
		}
		fs, results, err = runCheckDirWithUI(cmd.Context(), "checking "+dir, dir, files, opts, jobs)
	} else {
		fs, results, err = driver.CheckDir(cmd.Context(), dir, opts, jobs, nil)
	}
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	exit := 0
	for _, r := range results {
		if r.Bag.Len() > 0 {
			exit = 1
			break
		}
	}

	switch format {
	case "pretty":
		first := true
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if !first {
				fmt.Fprintln(os.Stdout)
			}
			first = false
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(fs, r, fullPath))
			diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts)
		}
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[displayPath(fs, r, fullPath)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return 0, fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		for _, r := range results {
			if err := diagfmt.Sarif(os.Stdout, r.Bag, fs, meta); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		}
	}
	return exit, nil
}

func displayPath(fs *source.FileSet, r driver.CheckDirResult, fullPath bool) string {
	if r.FileID != 0 {
		file := fs.Get(r.FileID)
		mode := "auto"
		if fullPath {
			mode = "absolute"
		}
		return file.FormatPath(mode, fs.BaseDir())
	}
	if fullPath {
		if abs, err := filepath.Abs(r.Path); err == nil {
			return abs
		}
	}
	return r.Path
}
