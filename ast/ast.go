package ast

import "fentc/report"

// ASTNode is implemented by every node of a Fent syntax tree.  Nodes own their
// children exclusively and are never modified once the parser has built them.
type ASTNode interface {
	// Span returns the source range the node was parsed from.
	Span() *report.TextSpan
}

// ASTBase is embedded by all node types to store their span.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a base located at span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a base running from the start of one span to the end
// of another: eg. from a keyword to the block closing its construct.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}
