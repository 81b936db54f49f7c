package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sbx/internal/diag"
	"sbx/internal/source"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	noteStyle    = color.New(color.FgBlue)
	fixStyle     = color.New(color.FgGreen)
	pathStyle    = color.New(color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span,
// затем Notes и Fixes, если включены опциями. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d, opts)
		writeSourceLine(w, fs, d.Primary, severityStyle(d.Severity), opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				loc := formatLocation(fs, note.Span, opts.PathMode)
				fmt.Fprintf(w, "  %s %s: %s\n", loc, paint(noteStyle, opts.Color, "note"), note.Msg)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(w, "  %s: %s\n", paint(fixStyle, opts.Color, "fix"), fix.Title)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	loc := formatLocation(fs, d.Primary, opts.PathMode)
	sev := paint(severityStyle(d.Severity), opts.Color, d.Severity.String())
	fmt.Fprintf(w, "%s: %s %s: %s\n", paint(pathStyle, opts.Color, loc), sev, d.Code.ID(), d.Message)
}

// writeSourceLine печатает строку исходника и каретку под Span.
// Для многострочного Span подчёркивание обрезается концом первой строки.
func writeSourceLine(w io.Writer, fs *source.FileSet, span source.Span, style *color.Color, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col)
	if col < 1 || col > len(line) {
		return
	}
	width := int(span.Len())
	if remain := len(line) - col + 1; width > remain {
		width = remain
	}
	if width < 1 {
		width = 1
	}
	// табуляция в отступе сохраняется, остальное превращается в пробелы,
	// иначе каретка уезжает
	pad := []byte(line[:col-1])
	for i, b := range pad {
		if b != '\t' {
			pad[i] = ' '
		}
	}
	caret := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", pad, paint(style, opts.Color, caret))
}

func formatLocation(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", renderPath(f, fs, mode), start.Line, start.Col)
}

func severityStyle(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorStyle
	case diag.SevWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
