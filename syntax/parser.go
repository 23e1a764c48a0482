package syntax

import (
	"fentc/ast"
	"fentc/common"
	"fentc/util"
	"fmt"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a Fent source unit.  It is a recursive descent
// parser which uses precedence climbing for binary operators.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.
//
// Syntax errors are raised by panicking with a *Diagnostic.  The panic is caught
// at the nearest recovery point (a statement or a function definition) which
// records the diagnostic and skips ahead to a point where parsing can resume.
// Parsers are created once per source unit and are not safe for concurrent use;
// separate units can be parsed in parallel by separate parsers.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token the parser was positioned on before the current
	// token.
	lookbehind *Token

	// pending holds the tokens after tok that have already been read from the
	// lexer.
	pending []*Token

	// expected accumulates the token kinds checked for since the parser moved
	// onto the current token.  It becomes the expected set of a rejection.
	expected []int

	// contexts is the stack of production labels being parsed.
	contexts []string

	// depth is the current expression/block nesting depth and maxDepth is the
	// nesting depth at which the parser gives up.
	depth, maxDepth int

	// diagnostics is the list of errors collected so far.
	diagnostics []*Diagnostic
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets how deeply expressions and blocks may nest.
func WithMaxDepth(maxDepth int) Option {
	return func(p *Parser) {
		if maxDepth > 0 {
			p.maxDepth = maxDepth
		}
	}
}

// NewParser creates a new parser for the given source text.
func NewParser(src string, opts ...Option) *Parser {
	p := &Parser{
		lexer:    NewLexer(src),
		maxDepth: common.DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result is the outcome of parsing a source unit.
type Result struct {
	// The parsed program.  This is always present: when there are diagnostics,
	// it holds every function that could be recovered.
	Program *ast.Program

	// The diagnostics in source order.
	Diagnostics []*Diagnostic
}

// OK returns whether the source parsed without errors.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Parse parses a source unit.
func Parse(src string, opts ...Option) *Result {
	p := NewParser(src, opts...)
	prog := p.ParseProgram()

	return &Result{
		Program:     prog,
		Diagnostics: p.Diagnostics(),
	}
}

// Diagnostics returns the diagnostics collected so far in source order.
func (p *Parser) Diagnostics() []*Diagnostic {
	sortDiagnostics(p.diagnostics)
	return p.diagnostics
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  Invalid tokens are reported and
// skipped over: the rest of the parser never sees them.
func (p *Parser) next() {
	p.lookbehind = p.tok

	if len(p.pending) > 0 {
		p.tok = p.pending[0]
		p.pending = p.pending[1:]
	} else {
		p.tok = p.fetch()
	}

	p.expected = p.expected[:0]
}

// peek returns the token after the current token without moving the parser.
func (p *Parser) peek() *Token {
	if len(p.pending) == 0 {
		p.pending = append(p.pending, p.fetch())
	}

	return p.pending[0]
}

// fetch reads the next valid token from the lexer.
func (p *Parser) fetch() *Token {
	for {
		tok := p.lexer.NextToken()
		if tok.Kind != TOK_ERROR {
			return tok
		}

		p.diagnostics = append(p.diagnostics, &Diagnostic{
			Span:    tok.Span,
			Found:   tok,
			Context: ContextToken,
			Message: fmt.Sprintf("unrecognized token `%s`", tok.Value),
		})
	}
}

// got returns true if the parser is on a token of a given kind.  Unlike has,
// it does not count the kind as expected.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// has returns true if the parser is on a token of a given kind.  The kind is
// recorded as one the parser would accept at this position.
func (p *Parser) has(kind int) bool {
	p.expected = append(p.expected, kind)
	return p.tok.Kind == kind
}

// hasOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	p.expected = append(p.expected, kinds...)

	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of a given kind and moves the
// parser forward.  It returns the matched token.  If the parser is not on a
// matching token, the current token is rejected.
func (p *Parser) want(kind int) *Token {
	if p.has(kind) {
		p.next()
		return p.lookbehind
	}

	p.reject()
	return nil
}

// -----------------------------------------------------------------------------

// enter pushes a production label onto the context stack.  It must be paired
// with a deferred call to exit.
func (p *Parser) enter(context string) {
	p.contexts = append(p.contexts, context)
}

// exit pops a production label off the context stack.
func (p *Parser) exit() {
	p.contexts = p.contexts[:len(p.contexts)-1]
}

// context returns the label of the innermost production being parsed.
func (p *Parser) context() string {
	if len(p.contexts) == 0 {
		return ""
	}

	return p.contexts[len(p.contexts)-1]
}

// nest increases the nesting depth, rejecting the current token if it grows too
// deep.  It must be paired with a deferred call to unnest.
func (p *Parser) nest() {
	p.depth++

	if p.depth > p.maxDepth {
		p.rejectWithMsg("nesting too deep: the limit is %d levels", p.maxDepth)
	}
}

// unnest decreases the nesting depth.
func (p *Parser) unnest() {
	p.depth--
}

// -----------------------------------------------------------------------------

// reject raises a syntax error on the current token listing the tokens that
// would have been accepted instead.
func (p *Parser) reject() {
	panic(&Diagnostic{
		Span:     p.tok.Span,
		Expected: p.expectedKinds(),
		Found:    p.tok,
		Context:  p.context(),
	})
}

// rejectWithMsg raises a syntax error on the current token with a specific
// message.  The function takes a message and arguments to format into it.
func (p *Parser) rejectWithMsg(msg string, a ...interface{}) {
	panic(&Diagnostic{
		Span:    p.tok.Span,
		Found:   p.tok,
		Context: p.context(),
		Message: fmt.Sprintf(msg, a...),
	})
}

// errorOn records an error on the given token without interrupting parsing.
func (p *Parser) errorOn(tok *Token, msg string, a ...interface{}) {
	p.diagnostics = append(p.diagnostics, &Diagnostic{
		Span:    tok.Span,
		Found:   tok,
		Context: p.context(),
		Message: fmt.Sprintf(msg, a...),
	})
}

// expectedKinds returns the sorted, deduplicated set of expected token kinds.
func (p *Parser) expectedKinds() []int {
	return util.SortedSet(p.expected)
}

// -----------------------------------------------------------------------------

// tryParse runs a parsing function.  If the function raises a syntax error, the
// error is recorded and false is returned.  Any other panic is passed on.
func (p *Parser) tryParse(parse func()) (ok bool) {
	depth, contexts := p.depth, len(p.contexts)

	defer func() {
		if x := recover(); x != nil {
			diag, isDiag := x.(*Diagnostic)
			if !isDiag {
				panic(x)
			}

			p.addDiagnostic(diag)
			p.depth, p.contexts = depth, p.contexts[:contexts]
			ok = false
		}
	}()

	parse()
	return true
}

// addDiagnostic records a syntax error raised by a rejection.  An error at the
// same span as the last one recorded is dropped: it is an enclosing production
// failing on the token that already caused an error.
func (p *Parser) addDiagnostic(diag *Diagnostic) {
	if n := len(p.diagnostics); n > 0 && *p.diagnostics[n-1].Span == *diag.Span {
		return
	}

	p.diagnostics = append(p.diagnostics, diag)
}

// syncStmt skips ahead to the end of the current statement after a syntax
// error.  It stops after a `;`, before the `}` closing the enclosing block, or
// before an `fn` which must begin a new function.  Nested braces are skipped
// over as a whole.
func (p *Parser) syncStmt() {
	braceDepth := 0

	for {
		switch p.tok.Kind {
		case TOK_EOF, TOK_FN:
			return
		case TOK_SEMI:
			if braceDepth == 0 {
				p.next()
				return
			}
		case TOK_LBRACE:
			braceDepth++
		case TOK_RBRACE:
			if braceDepth == 0 {
				return
			}

			braceDepth--
		}

		p.next()
	}
}

// syncDef skips ahead to the next function definition after a syntax error.
func (p *Parser) syncDef() {
	for !p.got(TOK_FN) && !p.got(TOK_EOF) {
		p.next()
	}
}

// -----------------------------------------------------------------------------

// binaryOperatorOf converts an operator token into its binary operator.  The
// callers only pass tokens from the precedence table so a failure here is a bug
// in the parser.
func (p *Parser) binaryOperatorOf(tok *Token) common.BinaryOperator {
	op, err := BinaryOperatorOf(tok.Kind)
	if err != nil {
		panic(&Diagnostic{
			Span:    tok.Span,
			Found:   tok,
			Context: ContextInternal,
			Message: fmt.Sprintf("internal error: %s: %s", tok.Describe(), err),
		})
	}

	return op
}

// unaryOperatorOf converts an operator token into its unary operator.
func (p *Parser) unaryOperatorOf(tok *Token) common.UnaryOperator {
	op, err := UnaryOperatorOf(tok.Kind)
	if err != nil {
		panic(&Diagnostic{
			Span:    tok.Span,
			Found:   tok,
			Context: ContextInternal,
			Message: fmt.Sprintf("internal error: %s: %s", tok.Describe(), err),
		})
	}

	return op
}
