package syntax

import (
	"fentc/report"
	"strconv"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.  This may not directly
	// correspond to its value: eg. the value of a string token has the leading
	// quotes trimmed off for convenience.
	Span *report.TextSpan
}

// IntValue returns the value of an integer literal token.
func (t *Token) IntValue() (int64, error) {
	return strconv.ParseInt(t.Value, 10, 64)
}

// FloatValue returns the value of a numeric literal token.  Integer literals
// convert to their floating point value.
func (t *Token) FloatValue() (float64, error) {
	return strconv.ParseFloat(t.Value, 64)
}

// Enumeration of token kinds.
const (
	TOK_FN = iota
	TOK_NIL
	TOK_RETURN

	TOK_IF
	TOK_UNLESS
	TOK_ELSE
	TOK_WHILE
	TOK_UNTIL
	TOK_FOR
	TOK_IN
	TOK_DO

	TOK_LET
	TOK_VAR

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_AND
	TOK_NOT
	TOK_OR
	TOK_NOR

	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ
	TOK_EQ
	TOK_NEQ

	TOK_ASSIGN

	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_LPAREN
	TOK_RPAREN
	TOK_COLON
	TOK_COMMA
	TOK_DOT
	TOK_SEMI
	TOK_ARROW

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_BOOLLIT
	TOK_STRINGLIT

	TOK_ERROR
	TOK_EOF

	tokKindCount
)

// tokenSpellings is the canonical text of every token kind that has a fixed
// spelling.  The other kinds have an empty entry.
var tokenSpellings = [tokKindCount]string{
	TOK_FN:     "fn",
	TOK_NIL:    "nil",
	TOK_RETURN: "return",
	TOK_IF:     "if",
	TOK_UNLESS: "unless",
	TOK_ELSE:   "else",
	TOK_WHILE:  "while",
	TOK_UNTIL:  "until",
	TOK_FOR:    "for",
	TOK_IN:     "in",
	TOK_DO:     "do",
	TOK_LET:    "let",
	TOK_VAR:    "var",

	TOK_PLUS:  "+",
	TOK_MINUS: "-",
	TOK_STAR:  "*",
	TOK_DIV:   "/",
	TOK_MOD:   "mod",
	TOK_AND:   "and",
	TOK_NOT:   "not",
	TOK_OR:    "or",
	TOK_NOR:   "nor",
	TOK_LT:    "<",
	TOK_LTEQ:  "<=",
	TOK_GT:    ">",
	TOK_GTEQ:  ">=",
	TOK_EQ:    "==",
	TOK_NEQ:   "!=",

	TOK_ASSIGN: "=",

	TOK_LBRACE:   "{",
	TOK_RBRACE:   "}",
	TOK_LBRACKET: "[",
	TOK_RBRACKET: "]",
	TOK_LPAREN:   "(",
	TOK_RPAREN:   ")",
	TOK_COLON:    ":",
	TOK_COMMA:    ",",
	TOK_DOT:      ".",
	TOK_SEMI:     ";",
	TOK_ARROW:    "=>",
}

// tokenNames names the token kinds without a fixed spelling.
var tokenNames = map[int]string{
	TOK_IDENT:     "identifier",
	TOK_INTLIT:    "integer literal",
	TOK_FLOATLIT:  "float literal",
	TOK_BOOLLIT:   "bool literal",
	TOK_STRINGLIT: "string literal",
	TOK_ERROR:     "invalid token",
	TOK_EOF:       "end of file",
}

// Spelling returns the canonical text of a fixed-spelling token kind and
// whether the kind has one.
func Spelling(kind int) (string, bool) {
	if 0 <= kind && kind < tokKindCount && tokenSpellings[kind] != "" {
		return tokenSpellings[kind], true
	}

	return "", false
}

// FixedSpellingKinds returns every token kind that has a fixed spelling.
func FixedSpellingKinds() []int {
	var kinds []int
	for kind, spelling := range tokenSpellings {
		if spelling != "" {
			kinds = append(kinds, kind)
		}
	}

	return kinds
}

// KindName returns a user-facing name for a token kind: fixed-spelling kinds
// are quoted with backticks.
func KindName(kind int) string {
	if spelling, ok := Spelling(kind); ok {
		return "`" + spelling + "`"
	}

	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "<unknown token>"
}

// Describe returns a user-facing description of a particular token.
func (t *Token) Describe() string {
	switch t.Kind {
	case TOK_EOF:
		return "end of file"
	case TOK_ERROR:
		return "invalid token `" + t.Value + "`"
	case TOK_STRINGLIT:
		return "`\"" + t.Value + "\"`"
	default:
		return "`" + t.Value + "`"
	}
}
