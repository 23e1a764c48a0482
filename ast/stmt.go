package ast

import "fentc/common"

// ASTStmt is the interface implemented by all statement nodes.
type ASTStmt interface {
	ASTNode

	stmtNode()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	ASTBase
}

// NewStmtBase creates a new statement base with the given AST base.
func NewStmtBase(base ASTBase) StmtBase {
	return StmtBase{ASTBase: base}
}

func (StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// Mutability is whether a variable may be reassigned.  It is fixed by the
// keyword that declares the variable; the parser does not enforce it.
type Mutability int

// Enumeration of mutabilities.
const (
	Immutable Mutability = iota
	Mutable
)

func (m Mutability) String() string {
	if m == Mutable {
		return "mutable"
	}

	return "immutable"
}

// ExprStmt is an expression evaluated for its effects.
type ExprStmt struct {
	StmtBase

	Expr ASTExpr
}

// Assignment represents an assignment statement.
type Assignment struct {
	StmtBase

	Target *Identifier
	Value  ASTExpr
}

// VarDecl represents a `let` or `var` binding.
type VarDecl struct {
	StmtBase

	Ident       *Identifier
	Mutability  Mutability
	Initializer ASTExpr
}

// Name returns the name bound by the declaration.
func (vd *VarDecl) Name() common.Identifier {
	return vd.Ident.Name
}
