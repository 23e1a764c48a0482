package syntax

import (
	"fentc/ast"
	"fentc/report"
)

// block := '{' {stmt [';']} [expr] '}' ;
func (p *Parser) parseBlock() *ast.Block {
	p.enter("block")
	defer p.exit()

	p.nest()
	defer p.unnest()

	lbrace := p.want(TOK_LBRACE)

	var stmts []ast.ASTStmt
	var eval ast.ASTExpr
	recovered := false

	for {
		if p.has(TOK_RBRACE) {
			break
		}

		if p.has(TOK_SEMI) {
			p.next()
			continue
		}

		// A block that was left unclosed after an error ends at the next
		// function or at the end of the file.
		if recovered && (p.got(TOK_EOF) || p.got(TOK_FN)) {
			return p.makeBlock(lbrace.Span, p.lookbehind.Span, stmts, eval, p.lookbehind.Span.End)
		}

		var stmt ast.ASTStmt
		if !p.tryParse(func() { stmt = p.parseStmt() }) {
			recovered = true
			p.syncStmt()
			continue
		}

		if exprStmt, ok := stmt.(*ast.ExprStmt); ok && p.got(TOK_RBRACE) {
			eval = exprStmt.Expr
			break
		}

		stmts = append(stmts, stmt)
	}

	rbrace := p.want(TOK_RBRACE)
	return p.makeBlock(lbrace.Span, rbrace.Span, stmts, eval, rbrace.Span.Start)
}

// makeBlock builds a block node.  If the block has no trailing expression, it
// evaluates to a `()` positioned at unitOffset.
func (p *Parser) makeBlock(start, end *report.TextSpan, stmts []ast.ASTStmt, eval ast.ASTExpr, unitOffset int) *ast.Block {
	if eval == nil {
		eval = &ast.UnitLit{
			ExprBase: ast.NewExprBase(ast.NewASTBaseOn(report.NewSpanAt(unitOffset))),
		}
	}

	return &ast.Block{
		ExprBase: ast.NewExprBase(ast.NewASTBaseOver(start, end)),
		Stmts:    stmts,
		Eval:     eval,
	}
}

// -----------------------------------------------------------------------------

// stmt := var_decl | assignment | expr ;
func (p *Parser) parseStmt() ast.ASTStmt {
	p.enter("statement")
	defer p.exit()

	switch {
	case p.hasOneOf(TOK_LET, TOK_VAR):
		return p.parseVarDecl()
	case p.got(TOK_IDENT) && p.peek().Kind == TOK_ASSIGN:
		return p.parseAssignment()
	default:
		expr := p.parseExpr()

		return &ast.ExprStmt{
			StmtBase: ast.NewStmtBase(ast.NewASTBaseOn(expr.Span())),
			Expr:     expr,
		}
	}
}

// var_decl := ('let' | 'var') ident '=' expr ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	kwTok := p.tok
	p.next()

	mut := ast.Immutable
	if kwTok.Kind == TOK_VAR {
		mut = ast.Mutable
	}

	ident := p.makeIdent(p.want(TOK_IDENT))
	p.want(TOK_ASSIGN)
	init := p.parseExpr()

	return &ast.VarDecl{
		StmtBase:    ast.NewStmtBase(ast.NewASTBaseOver(kwTok.Span, init.Span())),
		Ident:       ident,
		Mutability:  mut,
		Initializer: init,
	}
}

// assignment := ident '=' expr ;
func (p *Parser) parseAssignment() *ast.Assignment {
	target := p.makeIdent(p.want(TOK_IDENT))
	p.want(TOK_ASSIGN)
	value := p.parseExpr()

	return &ast.Assignment{
		StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(target.Span(), value.Span())),
		Target:   target,
		Value:    value,
	}
}
