package ast

import (
	"fentc/common"
	"fentc/report"
)

// ASTExpr is the interface implemented by all expression nodes.
type ASTExpr interface {
	ASTNode

	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

// NewExprBase creates a new expression base with the given AST base.
func NewExprBase(base ASTBase) ExprBase {
	return ExprBase{ASTBase: base}
}

func (ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// NilLit is the `nil` literal.
type NilLit struct {
	ExprBase
}

// UnitLit is the unit literal `()`.  It is also the value of blocks which end
// without a trailing expression.
type UnitLit struct {
	ExprBase
}

// BoolLit is a `true` or `false` literal.
type BoolLit struct {
	ExprBase

	Value bool
}

// NumberLit is a numeric literal.  Integer and float literals both become
// numbers: the original text is kept in Raw.
type NumberLit struct {
	ExprBase

	Value float64
	Raw   string
}

// StringLit is a string literal.  Value is the raw text between the quotes
// with its escape sequences undecoded.
type StringLit struct {
	ExprBase

	Value string
}

// Identifier is a reference to a named value.
type Identifier struct {
	ExprBase

	Name common.Identifier
}

// -----------------------------------------------------------------------------

// IfExpr is an `if` expression.  Both branches are required.
type IfExpr struct {
	ExprBase

	Condition ASTExpr
	Then      *Block
	Else      *Block
}

// WhileExpr is a `while` loop.  It evaluates to unit.
type WhileExpr struct {
	ExprBase

	Condition ASTExpr
	Body      *Block
}

// Block is a braced sequence of statements.  The block evaluates to its
// trailing expression.  When the source has none, Eval is a zero-width unit
// literal positioned at the closing brace.
type Block struct {
	ExprBase

	Stmts []ASTStmt
	Eval  ASTExpr
}

// -----------------------------------------------------------------------------

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Op     common.BinaryOperator
	OpSpan *report.TextSpan

	Lhs, Rhs ASTExpr
}

// UnaryOp represents a prefix operator application.
type UnaryOp struct {
	ExprBase

	Op      common.UnaryOperator
	Operand ASTExpr
}
