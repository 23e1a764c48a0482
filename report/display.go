package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func (r *Reporter) displayICE(message string) {
	fmt.Fprintf(r.out, "%s %s\n", ErrorStyleBG.Sprint("internal compiler error"), ErrorColorFG.Sprint(message))
	fmt.Fprint(r.out, InfoColorFG.Sprint("This error was not supposed to happen: please open an issue."), "\n\n")
}

// displayFatal displays a fatal error message.
func (r *Reporter) displayFatal(message string) {
	fmt.Fprintf(r.out, "%s %s\n\n", ErrorStyleBG.Sprint("fatal error"), ErrorColorFG.Sprint(message))
}

// displayInfo displays a tagged informational message.
func (r *Reporter) displayInfo(tag, message string) {
	fmt.Fprintf(r.out, "%s %s\n", InfoStyleBG.Sprint(tag), InfoColorFG.Sprint(message))
}

// displayStdError displays a standard Go error.
func (r *Reporter) displayStdError(reprPath string, err error) {
	fmt.Fprintf(r.out, "%s: %s: %s\n\n", reprPath, ErrorColorFG.Sprint("error"), err)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func (r *Reporter) displayCompileMessage(label string, src *SourceText, span *TextSpan, message string) {
	var coloredLabel string
	if label == "error" {
		coloredLabel = ErrorColorFG.Sprint(label)
	} else {
		coloredLabel = WarnColorFG.Sprint(label)
	}

	if src == nil {
		fmt.Fprintf(r.out, "%s: %s\n\n", coloredLabel, message)
	} else if span == nil {
		fmt.Fprintf(r.out, "%s: %s: %s\n\n", src.ReprPath, coloredLabel, message)
	} else {
		start := src.Position(span.Start)
		fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n", src.ReprPath, start.Line+1, start.Col+1, coloredLabel, message)
		r.displaySourceText(src, span)
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span
// with the spanned text underlined by carets.
func (r *Reporter) displaySourceText(src *SourceText, span *TextSpan) {
	start := src.Position(span.Start)

	// A span ending right after a newline should not drag the next line in.
	endOffset := span.End
	if endOffset > span.Start {
		endOffset--
	}
	end := src.Position(endOffset)

	// Collect all the source lines containing the given source text.
	var lines []string
	for ln := start.Line; ln <= end.Line; ln++ {
		lines = append(lines, strings.ReplaceAll(src.Line(ln), "\t", "    "))
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt32
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(end.Line + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		fmt.Fprint(r.out, InfoColorFG.Sprintf(lineNumFmtStr, i+start.Line+1))

		// Print the source text with the leading indent trimmed off.
		fmt.Fprintln(r.out, line[minIndent:])

		// Print the bar used for the line for caret underlining.
		fmt.Fprint(r.out, strings.Repeat(" ", maxLineNumLen), " | ")

		// The underlining starts at the start column on the first line and at
		// the indentation on every other line.  It stops at the end column on
		// the last line and at the end of the line everywhere else.
		caretStart := minIndent
		if i == 0 {
			caretStart = expandedCol(src.Line(start.Line), start.Col)
		}

		caretEnd := len(line)
		if i == len(lines)-1 {
			caretEnd = expandedCol(src.Line(end.Line), end.Col) + 1
		}

		if caretEnd <= caretStart {
			caretEnd = caretStart + 1
		}

		fmt.Fprint(r.out, strings.Repeat(" ", caretStart-minIndent))
		fmt.Fprintln(r.out, ErrorColorFG.Sprint(strings.Repeat("^", caretEnd-caretStart)))
	}

	fmt.Fprintln(r.out)
}

// expandedCol converts a byte column into a display column with tabs expanded
// to four spaces.
func expandedCol(line string, col int) int {
	if col > len(line) {
		return len(strings.ReplaceAll(line, "\t", "    ")) + col - len(line)
	}

	return col + 3*strings.Count(line[:col], "\t")
}

// -----------------------------------------------------------------------------

// displayFinished displays the concluding message for a check.
func (r *Reporter) displayFinished(fileCount int) {
	fmt.Fprintln(r.out)

	if r.errorCount == 0 {
		fmt.Fprint(r.out, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(r.out, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprintf(r.out, "(%s, %s, %s)\n",
		pluralize(fileCount, "file", SuccessColorFG),
		pluralize(r.errorCount, "error", ErrorColorFG),
		pluralize(r.warningCount, "warning", WarnColorFG),
	)
}

// pluralize formats a count with its noun, coloring non-zero counts.
func pluralize(n int, noun string, color pterm.Color) string {
	if n != 1 {
		noun += "s"
	}

	if n == 0 {
		return SuccessColorFG.Sprint(n) + " " + noun
	}

	return color.Sprint(n) + " " + noun
}
