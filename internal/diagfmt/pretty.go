package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"keylint/internal/diag"
	"keylint/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.printDiagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) printDiagnostic(d diag.Diagnostic) {
	loc := p.location(d.Primary)
	fmt.Fprintf(p.w, "%s: %s [%s]: %s\n",
		loc, p.severity(d.Severity), d.Code.ID(), d.Message)

	p.printContext(d.Primary)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(p.w, "  note: %s: %s\n", p.location(note.Span), note.Msg)
			p.printContext(note.Span)
		}
	}

	if p.opts.ShowFixes {
		for i, f := range d.Fixes {
			p.printFix(i, f)
		}
	}
}

func (p *prettyPrinter) printFix(idx int, f diag.Fix) {
	fmt.Fprintf(p.w, "  fix #%d: %s", idx+1, f.Title)
	if f.ID != "" {
		fmt.Fprintf(p.w, " (id=%s)", f.ID)
	}
	if f.IsPreferred {
		fmt.Fprint(p.w, " (preferred)")
	}
	fmt.Fprintln(p.w)

	for _, edit := range f.Edits {
		fmt.Fprintf(p.w, "    %s: apply=%q\n", p.location(edit.Span), edit.NewText)
		if p.opts.ShowPreview {
			preview, err := buildFixEditPreview(p.fs, edit)
			if err != nil {
				continue
			}
			fmt.Fprintln(p.w, "    preview:")
			for _, line := range preview.before {
				fmt.Fprintf(p.w, "    - %s\n", line)
			}
			for _, line := range preview.after {
				fmt.Fprintf(p.w, "    + %s\n", line)
			}
		}
	}
}

// printContext выводит строки вокруг span с подчёркиванием диапазона.
func (p *prettyPrinter) printContext(span source.Span) {
	if p.opts.Context <= 0 {
		return
	}
	file := p.fs.Get(span.File)
	if file == nil {
		return
	}
	start, end := p.fs.Resolve(span)

	first := int(start.Line) - int(p.opts.Context)
	if first < 1 {
		first = 1
	}
	last := int(end.Line) + int(p.opts.Context)

	for line := first; line <= last; line++ {
		text := file.GetLine(uint32(line))
		if text == "" && uint32(line) > end.Line {
			break
		}
		fmt.Fprintf(p.w, "%5d | %s\n", line, text)
		if uint32(line) >= start.Line && uint32(line) <= end.Line {
			p.printUnderline(text, uint32(line), start, end)
		}
	}
}

// printUnderline рисует ^~~~ под участком строки, попавшим в span.
// Ширина считается через runewidth, чтобы табы и широкие руны не
// сбивали каретку.
func (p *prettyPrinter) printUnderline(text string, line uint32, start, end source.LineCol) {
	runes := []rune(text)

	fromCol := 1
	if line == start.Line {
		fromCol = int(start.Col)
	}
	toCol := len(runes) + 1
	if line == end.Line {
		toCol = int(end.Col)
	}
	if toCol <= fromCol {
		toCol = fromCol + 1
	}

	pad := 0
	for i := 0; i < fromCol-1 && i < len(runes); i++ {
		pad += runewidth.RuneWidth(runes[i])
	}
	width := 0
	for i := fromCol - 1; i < toCol-1 && i < len(runes); i++ {
		width += runewidth.RuneWidth(runes[i])
	}
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if p.opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(p.w, "      | %s%s\n", strings.Repeat(" ", pad), marker)
}

func (p *prettyPrinter) severity(sev diag.Severity) string {
	s := sev.String()
	if !p.opts.Color {
		return s
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(s)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(s)
	default:
		return color.New(color.FgCyan).Sprint(s)
	}
}

func (p *prettyPrinter) location(span source.Span) string {
	file := p.fs.Get(span.File)
	start, _ := p.fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(file, p.fs, p.opts.PathMode), start.Line, start.Col)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
