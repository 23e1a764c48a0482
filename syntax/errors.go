package syntax

import (
	"fentc/report"
	"fentc/util"
	"fmt"
	"sort"
	"strings"
)

// Diagnostic is a syntax error.  It records where the error occurred, which
// token kinds would have been accepted there, and which production was being
// parsed.
type Diagnostic struct {
	// The span of the offending text.
	Span *report.TextSpan

	// The token kinds that the parser would have accepted.  This is sorted and
	// may be empty for errors that are not about a particular token.
	Expected []int

	// The token the parser found.  This is nil for errors that are not about a
	// particular token.
	Found *Token

	// A label naming the production the error occurred in: eg. "block".
	Context string

	// An explicit message.  When empty, the message is built from the expected
	// and found tokens.
	Message string
}

// Enumeration of diagnostic context labels that do not name a production.
const (
	ContextToken    = "token"
	ContextInternal = "internal"
)

func (d *Diagnostic) Error() string {
	if d.Message != "" {
		return d.Message
	}

	sb := strings.Builder{}

	names := d.ExpectedNames()
	switch len(names) {
	case 0:
		sb.WriteString("unexpected ")
		if d.Found != nil {
			sb.WriteString(d.Found.Describe())
		} else {
			sb.WriteString("input")
		}

		if d.Context != "" {
			fmt.Fprintf(&sb, " in %s", d.Context)
		}

		return sb.String()
	case 1:
		fmt.Fprintf(&sb, "expected %s", names[0])
	case 2:
		fmt.Fprintf(&sb, "expected %s or %s", names[0], names[1])
	default:
		fmt.Fprintf(&sb, "expected one of %s, or %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}

	if d.Context != "" {
		fmt.Fprintf(&sb, " in %s", d.Context)
	}

	if d.Found != nil {
		fmt.Fprintf(&sb, ", found %s", d.Found.Describe())
	}

	return sb.String()
}

// ExpectedNames returns the user-facing names of the expected token kinds.
func (d *Diagnostic) ExpectedNames() []string {
	return util.Map(d.Expected, KindName)
}

// Accepts returns whether kind is one of the expected token kinds.
func (d *Diagnostic) Accepts(kind int) bool {
	return util.Contains(d.Expected, kind)
}

// sortDiagnostics orders diagnostics by their position in the source.
func sortDiagnostics(diags []*Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Span.Start < diags[j].Span.Start
	})
}
