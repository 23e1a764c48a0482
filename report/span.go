package report

import "fmt"

// TextSpan represents a range or "span" of source text.  Text spans are
// half-open byte ranges: Start is the offset of the first byte in the span and
// End is the offset one past the last byte.  A zero-width span (Start == End)
// marks a position between two bytes.
type TextSpan struct {
	Start, End int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		Start: start.Start,
		End:   end.End,
	}
}

// NewSpanAt returns a zero-width span at the given offset.
func NewSpanAt(offset int) *TextSpan {
	return &TextSpan{Start: offset, End: offset}
}

// Len returns the number of bytes the span covers.
func (ts *TextSpan) Len() int {
	return ts.End - ts.Start
}

// Contains returns whether other lies entirely within ts.
func (ts *TextSpan) Contains(other *TextSpan) bool {
	return ts.Start <= other.Start && other.End <= ts.End
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d..%d", ts.Start, ts.End)
}
