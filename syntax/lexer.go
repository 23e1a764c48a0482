package syntax

import (
	"fentc/report"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer is responsible for tokenizing a source buffer.  Tokens are produced
// lazily, one per call to NextToken.  The lexer never fails: text that matches
// no token pattern becomes a TOK_ERROR token and lexing carries on after it.
type Lexer struct {
	src string

	// pos is the byte offset of the next unread rune.
	pos int

	// start is the byte offset at which the current token begins.
	start int
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Lex tokenizes a whole source text.  The returned slice always ends with a
// single EOF token.
func Lex(src string) []*Token {
	l := NewLexer(src)

	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// Reset moves the lexer back to the beginning of its source text.
func (l *Lexer) Reset() {
	l.pos = 0
	l.start = 0
}

// NextToken retrieves the next token from the source text.  Once the source
// has been consumed, every call returns an EOF token.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch {
		case unicode.IsSpace(c):
			l.eat()
		case c == '/':
			if tok := l.lexCommentOrDiv(); tok != nil {
				return tok
			}
		case c == '"':
			return l.lexStringLit()
		case isDecimalDigit(c), c == '-' && isDecimalDigit(l.peekAfter()):
			return l.lexNumericLit()
		case isIdentChar(c):
			return l.lexIdentOrKeyword()
		default:
			return l.lexPunctOrOper()
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF)
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division operator is handled with comment logic.

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"=":  TOK_ASSIGN,
	"=>": TOK_ARROW,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	",": TOK_COMMA,
	".": TOK_DOT,
	";": TOK_SEMI,
	":": TOK_COLON,
}

// maxSymbolLen is the length of the longest symbol pattern.
const maxSymbolLen = 2

// lexPunctOrOper lexes a punctuation or operator symbol.  The longest matching
// symbol wins.  A rune that begins no symbol becomes an error token.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()

	for n := maxSymbolLen; n > 0; n-- {
		if l.pos+n > len(l.src) {
			continue
		}

		if kind, ok := symbolPatterns[l.src[l.pos:l.pos+n]]; ok {
			l.pos += n
			return l.makeToken(kind)
		}
	}

	l.eat()
	return l.makeToken(TOK_ERROR)
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"fn":     TOK_FN,
	"nil":    TOK_NIL,
	"return": TOK_RETURN,

	"if":     TOK_IF,
	"unless": TOK_UNLESS,
	"else":   TOK_ELSE,
	"while":  TOK_WHILE,
	"until":  TOK_UNTIL,
	"for":    TOK_FOR,
	"in":     TOK_IN,
	"do":     TOK_DO,

	"let": TOK_LET,
	"var": TOK_VAR,

	"mod": TOK_MOD,
	"and": TOK_AND,
	"not": TOK_NOT,
	"or":  TOK_OR,
	"nor": TOK_NOR,

	"true":  TOK_BOOLLIT,
	"false": TOK_BOOLLIT,
}

// lexIdentOrKeyword lexes an identifier or a keyword.  The whole identifier is
// consumed before the keyword table is consulted so that keywords never match
// a prefix of a longer identifier.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); c != -1 && isIdentChar(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[l.src[l.start:l.pos]]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer or float literal, including its leading minus
// sign if it has one.  Literals other than `0` have no leading zeros, and a
// float must have at least one digit after its decimal point.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()

	if l.peek() == '-' {
		l.eat()
	}

	if c := l.eat(); c != '0' {
		for isDecimalDigit(l.peek()) {
			l.eat()
		}
	}

	if l.peek() == '.' && isDecimalDigit(l.peekAfter()) {
		l.eat()

		for isDecimalDigit(l.peek()) {
			l.eat()
		}

		return l.makeToken(TOK_FLOATLIT)
	}

	return l.makeToken(TOK_INTLIT)
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.  The token value is the raw text
// between the quotes: escape sequences are checked but left undecoded.  An
// unclosed string or one containing a malformed escape sequence becomes a
// single error token.
func (l *Lexer) lexStringLit() *Token {
	l.mark()
	l.eat()

	valid := true
	for {
		switch l.peek() {
		case -1:
			return l.makeToken(TOK_ERROR)
		case '"':
			value := l.src[l.start+1 : l.pos]
			l.eat()

			if !valid {
				return l.makeToken(TOK_ERROR)
			}

			tok := l.makeToken(TOK_STRINGLIT)
			tok.Value = value
			return tok
		case '\\':
			l.eat()
			if !l.eatEscapeSequence() {
				valid = false
			}
		default:
			l.eat()
		}
	}
}

// eatEscapeSequence attempts to consume an escape sequence.  This assumes the
// leading `\` has already been consumed.  It returns whether the sequence was
// well-formed.
func (l *Lexer) eatEscapeSequence() bool {
	switch l.peek() {
	case '"', '\\', 'b', 'n', 'f', 'r', 't':
		l.eat()
		return true
	case 'u':
		l.eat()

		for i := 0; i < 4; i++ {
			if !isHexDigit(l.peek()) {
				return false
			}

			l.eat()
		}

		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes a comment or a division token.  Comments produce no
// token: nil is returned once they have been skipped.  An unclosed block
// comment becomes an error token.
func (l *Lexer) lexCommentOrDiv() *Token {
	l.mark()
	l.eat()

	switch l.peek() {
	case '/':
		for c := l.peek(); c != '\n' && c != -1; c = l.peek() {
			l.eat()
		}
	case '*':
		l.eat()

		end := strings.Index(l.src[l.pos:], "*/")
		if end == -1 {
			l.pos = len(l.src)
			return l.makeToken(TOK_ERROR)
		}

		l.pos += end + 2
	default:
		return l.makeToken(TOK_DIV)
	}

	return nil
}

// -----------------------------------------------------------------------------

// mark sets the lexer's token start to its current position.
func (l *Lexer) mark() {
	l.start = l.pos
}

// makeToken produces a new token of the given kind spanning from the marked
// start to the current position.
func (l *Lexer) makeToken(kind int) *Token {
	return &Token{
		Kind:  kind,
		Value: l.src[l.start:l.pos],
		Span:  &report.TextSpan{Start: l.start, End: l.pos},
	}
}

// eat moves the lexer forward one rune and returns it.  If the lexer is at the
// end of the source, -1 is returned and the lexer does not move.
func (l *Lexer) eat() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	c, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	return c
}

// peek returns the next rune without moving the lexer forward.  If the lexer is
// at the end of the source, -1 is returned.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	c, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return c
}

// peekAfter returns the rune following the next rune without moving the lexer
// forward.  It is only used after single byte runes.
func (l *Lexer) peekAfter() rune {
	if l.pos+1 >= len(l.src) {
		return -1
	}

	c, _ := utf8.DecodeRuneInString(l.src[l.pos+1:])
	return c
}

// -----------------------------------------------------------------------------

// reservedSymbols are the runes which can never appear in an identifier.
const reservedSymbols = "=[]()!@#$%^&*-+{}<>,.`~/\\;:'\""

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isIdentChar returns whether c could be part of an identifier.  Identifiers
// also may not begin with a decimal digit but that is handled by the order in
// which NextToken checks its cases.
func isIdentChar(c rune) bool {
	return !unicode.IsSpace(c) && !strings.ContainsRune(reservedSymbols, c) && c != utf8.RuneError
}
