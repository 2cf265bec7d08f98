package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty writes the bag's diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//
// followed by the source line and a caret marker when the file is in fs.
// Call bag.Sort() first for deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			switch {
			case d.Severity >= diag.SevError:
				sev = errColor.Sprint(sev)
			case d.Severity == diag.SevWarning:
				sev = warnColor.Sprint(sev)
			default:
				sev = infoColor.Sprint(sev)
			}
		}
		pos := fmt.Sprintf("%s:%d:%d", d.Primary.File, d.Primary.Line, d.Primary.Column)
		if opts.Color {
			pos = posColor.Sprint(pos)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, d.Code, d.Message)

		if fs != nil {
			writeContext(w, fs, d.Primary, opts)
		}
	}
}

// writeContext prints the source line of the position with a caret under
// the offending column.
func writeContext(w io.Writer, fs *source.FileSet, pos diag.Pos, opts PrettyOpts) {
	file, ok := fs.GetByPath(pos.File)
	if !ok || pos.Line <= 0 {
		return
	}
	lines := strings.Split(string(file.Content), "\n")
	if pos.Line > len(lines) {
		return
	}

	first := pos.Line - opts.Context
	if first < 1 {
		first = 1
	}
	for ln := first; ln <= pos.Line; ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, lines[ln-1])
	}

	line := lines[pos.Line-1]
	col := pos.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}
	// display width of everything before the caret, tabs and wide runes
	// included
	width := runewidth.StringWidth(line[:col-1])
	marker := strings.Repeat(" ", width) + "^"
	if opts.Color {
		marker = errColor.Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s\n", marker)
}
