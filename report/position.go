package report

import (
	"sort"
	"strings"
)

// TextPosition is a zero-indexed line and column in the source text.  Columns
// count bytes.
type TextPosition struct {
	Line, Col int
}

// SourceText is a source buffer together with the name used to refer to it in
// messages.  It converts byte offsets into line and column positions.
type SourceText struct {
	// The display path of the source.
	ReprPath string

	// The full text of the source.
	Text string

	// lineStarts holds the byte offset at which each line begins.
	lineStarts []int
}

// NewSourceText creates a new source text with the given display path.
func NewSourceText(reprPath, text string) *SourceText {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &SourceText{
		ReprPath:   reprPath,
		Text:       text,
		lineStarts: lineStarts,
	}
}

// Position converts a byte offset into a line and column.  Offsets past the
// end of the text are clamped to the end.
func (st *SourceText) Position(offset int) TextPosition {
	if offset > len(st.Text) {
		offset = len(st.Text)
	} else if offset < 0 {
		offset = 0
	}

	line := sort.Search(len(st.lineStarts), func(i int) bool {
		return st.lineStarts[i] > offset
	}) - 1

	return TextPosition{Line: line, Col: offset - st.lineStarts[line]}
}

// LineCount returns the number of lines in the text.
func (st *SourceText) LineCount() int {
	return len(st.lineStarts)
}

// Line returns the text of the given zero-indexed line without its trailing
// line terminator.
func (st *SourceText) Line(n int) string {
	if n < 0 || n >= len(st.lineStarts) {
		return ""
	}

	end := len(st.Text)
	if n+1 < len(st.lineStarts) {
		end = st.lineStarts[n+1]
	}

	return strings.TrimRight(st.Text[st.lineStarts[n]:end], "\r\n")
}
