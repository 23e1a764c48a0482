package syntax

import (
	"fentc/ast"
	"fentc/common"
	"fentc/report"
)

// ParseProgram parses the whole source unit.  It always returns a program:
// functions which fail to parse are left out and parsing resumes at the next
// `fn` keyword.
//
// program := {func_def} ;
func (p *Parser) ParseProgram() *ast.Program {
	p.enter("program")
	defer p.exit()

	if p.tok == nil {
		p.next()
	}

	var funcs []*ast.FuncDef
	for !p.got(TOK_EOF) {
		if !p.has(TOK_FN) {
			p.tryParse(p.reject)
			p.next()
			p.syncDef()
			continue
		}

		var fn *ast.FuncDef
		if p.tryParse(func() { fn = p.parseFuncDef() }) {
			funcs = append(funcs, fn)
		} else {
			p.syncDef()
		}
	}

	return &ast.Program{
		ASTBase: ast.NewASTBaseOn(&report.TextSpan{Start: 0, End: len(p.lexer.src)}),
		Funcs:   funcs,
	}
}

// func_def := 'fn' [ident] '(' [param_list] ')' ['=>' type_label] block ;
func (p *Parser) parseFuncDef() *ast.FuncDef {
	p.enter("function")
	defer p.exit()

	fnTok := p.want(TOK_FN)

	var name *ast.Identifier
	if p.has(TOK_IDENT) {
		name = p.makeIdent(p.tok)
		p.next()
	} else {
		name = &ast.Identifier{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOn(report.NewSpanAt(fnTok.Span.End))),
		}
	}

	p.want(TOK_LPAREN)

	var params []*ast.FuncParam
	if !p.has(TOK_RPAREN) {
		params = p.parseParamList()
	}

	p.want(TOK_RPAREN)

	var retType ast.ASTType
	implicitReturn := false
	if p.has(TOK_ARROW) {
		p.next()
		retType = p.parseTypeLabel()
	} else {
		retType = ast.NewUnitType(p.lookbehind.Span.End)
		implicitReturn = true
	}

	body := p.parseBlock()

	return &ast.FuncDef{
		ASTBase:        ast.NewASTBaseOver(fnTok.Span, body.Span()),
		Name:           name,
		Params:         params,
		ReturnType:     retType,
		ImplicitReturn: implicitReturn,
		Body:           body,
	}
}

// param_list := param {',' param} [','] ;
func (p *Parser) parseParamList() []*ast.FuncParam {
	p.enter("parameter list")
	defer p.exit()

	params := []*ast.FuncParam{p.parseParam()}
	for p.has(TOK_COMMA) {
		p.next()

		if p.has(TOK_RPAREN) {
			break
		}

		params = append(params, p.parseParam())
	}

	return params
}

// param := ident ':' type_label ;
func (p *Parser) parseParam() *ast.FuncParam {
	identTok := p.want(TOK_IDENT)
	p.want(TOK_COLON)
	typ := p.parseTypeLabel()

	return &ast.FuncParam{
		ASTBase: ast.NewASTBaseOver(identTok.Span, typ.Span()),
		Ident:   p.makeIdent(identTok),
		Type:    typ,
	}
}

// type_label := ident ;
func (p *Parser) parseTypeLabel() ast.ASTType {
	p.enter("Type")
	defer p.exit()

	tok := p.want(TOK_IDENT)
	return &ast.NamedType{
		ASTBase: ast.NewASTBaseOn(tok.Span),
		Name:    common.NewIdentifier(tok.Value),
	}
}

// makeIdent creates an identifier node from an identifier token.
func (p *Parser) makeIdent(tok *Token) *ast.Identifier {
	return &ast.Identifier{
		ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)),
		Name:     common.NewIdentifier(tok.Value),
	}
}
