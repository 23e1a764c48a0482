package syntax

import (
	"fentc/ast"
	"fentc/report"
	"strings"
)

// precTable is the table of binary operator tokens organized by precedence from
// lowest to highest.
var precTable = [][]int{
	{TOK_OR, TOK_NOR},
	{TOK_AND},
	{TOK_EQ, TOK_NEQ},
	{TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ},
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_DIV, TOK_MOD},
}

// additivePrec is the precedence level of `+` and `-`.
const additivePrec = 4

// atomStarts is the list of tokens which can begin an atom.
var atomStarts = []int{
	TOK_INTLIT,
	TOK_FLOATLIT,
	TOK_STRINGLIT,
	TOK_BOOLLIT,
	TOK_NIL,
	TOK_IDENT,
	TOK_LPAREN,
	TOK_IF,
	TOK_WHILE,
	TOK_LBRACE,
}

// expr := bin_op_expr ;
func (p *Parser) parseExpr() ast.ASTExpr {
	p.enter("expression")
	defer p.exit()

	p.nest()
	defer p.unnest()

	return p.parseBinOpExpr(0)
}

// bin_op_expr := unary_expr {bin_op unary_expr} ;
//
// Operators of a given precedence level are folded to the left.
func (p *Parser) parseBinOpExpr(prec int) ast.ASTExpr {
	if prec == len(precTable) {
		return p.parseUnaryExpr()
	}

	startTok := p.tok
	lhs := p.parseBinOpExpr(prec + 1)

	for {
		if prec == additivePrec {
			p.splitNegativeLiteral()
		}

		if !p.hasOneOf(precTable[prec]...) {
			return lhs
		}

		opTok := p.tok
		op := p.binaryOperatorOf(opTok)
		p.next()

		rhs := p.parseBinOpExpr(prec + 1)

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOver(startTok.Span, p.lookbehind.Span)),
			Op:       op,
			OpSpan:   opTok.Span,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}
}

// splitNegativeLiteral splits a negative numeric literal following a complete
// operand into a `-` and a positive literal so that `a -3` is a subtraction.
func (p *Parser) splitNegativeLiteral() {
	if !p.got(TOK_INTLIT) && !p.got(TOK_FLOATLIT) || !strings.HasPrefix(p.tok.Value, "-") {
		return
	}

	tok := p.tok
	lit := &Token{
		Kind:  tok.Kind,
		Value: tok.Value[1:],
		Span:  &report.TextSpan{Start: tok.Span.Start + 1, End: tok.Span.End},
	}

	p.tok = &Token{
		Kind:  TOK_MINUS,
		Value: "-",
		Span:  &report.TextSpan{Start: tok.Span.Start, End: tok.Span.Start + 1},
	}
	p.pending = append([]*Token{lit}, p.pending...)
}

// unary_expr := ('-' | 'not') unary_expr | atom ;
func (p *Parser) parseUnaryExpr() ast.ASTExpr {
	if !p.hasOneOf(TOK_MINUS, TOK_NOT) {
		return p.parseAtom()
	}

	opTok := p.tok
	op := p.unaryOperatorOf(opTok)
	p.next()

	p.nest()
	defer p.unnest()

	operand := p.parseUnaryExpr()

	return &ast.UnaryOp{
		ExprBase: ast.NewExprBase(ast.NewASTBaseOver(opTok.Span, operand.Span())),
		Op:       op,
		Operand:  operand,
	}
}

// atom := 'intlit' | 'floatlit' | 'stringlit' | 'boollit' | 'nil' | ident
//
//	| '(' [expr] ')' | if_expr | while_expr | block ;
func (p *Parser) parseAtom() ast.ASTExpr {
	if !p.hasOneOf(atomStarts...) {
		p.reject()
	}

	tok := p.tok
	switch tok.Kind {
	case TOK_INTLIT, TOK_FLOATLIT:
		p.next()
		return p.makeNumberLit(tok)
	case TOK_STRINGLIT:
		p.next()
		return &ast.StringLit{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)),
			Value:    tok.Value,
		}
	case TOK_BOOLLIT:
		p.next()
		return &ast.BoolLit{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)),
			Value:    tok.Value == "true",
		}
	case TOK_NIL:
		p.next()
		return &ast.NilLit{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span))}
	case TOK_IDENT:
		p.next()
		return p.makeIdent(tok)
	case TOK_LPAREN:
		return p.parseParenExpr()
	case TOK_IF:
		return p.parseIfExpr()
	case TOK_WHILE:
		return p.parseWhileExpr()
	default:
		return p.parseBlock()
	}
}

// makeNumberLit creates a number literal from a numeric literal token.
func (p *Parser) makeNumberLit(tok *Token) *ast.NumberLit {
	value, err := tok.FloatValue()
	if err != nil {
		p.errorOn(tok, "numeric literal `%s` is out of range", tok.Value)
	}

	return &ast.NumberLit{
		ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)),
		Value:    value,
		Raw:      tok.Value,
	}
}

// paren_expr := '(' [expr] ')' ;
//
// An empty pair of parentheses is the unit value.  Otherwise the inner
// expression is returned as is.
func (p *Parser) parseParenExpr() ast.ASTExpr {
	lparen := p.want(TOK_LPAREN)

	if p.has(TOK_RPAREN) {
		p.next()

		return &ast.UnitLit{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOver(lparen.Span, p.lookbehind.Span)),
		}
	}

	expr := p.parseExpr()
	p.want(TOK_RPAREN)

	return expr
}

// if_expr := 'if' expr block 'else' block ;
func (p *Parser) parseIfExpr() *ast.IfExpr {
	ifTok := p.want(TOK_IF)

	cond := p.parseExpr()
	thenBlock := p.parseBlock()

	p.want(TOK_ELSE)
	elseBlock := p.parseBlock()

	return &ast.IfExpr{
		ExprBase:  ast.NewExprBase(ast.NewASTBaseOver(ifTok.Span, elseBlock.Span())),
		Condition: cond,
		Then:      thenBlock,
		Else:      elseBlock,
	}
}

// while_expr := 'while' expr block ;
func (p *Parser) parseWhileExpr() *ast.WhileExpr {
	whileTok := p.want(TOK_WHILE)

	cond := p.parseExpr()
	body := p.parseBlock()

	return &ast.WhileExpr{
		ExprBase:  ast.NewExprBase(ast.NewASTBaseOver(whileTok.Span, body.Span())),
		Condition: cond,
		Body:      body,
	}
}
