package ast

import (
	"fentc/common"
	"fentc/report"
)

// ASTType is the interface implemented by all type label nodes.
type ASTType interface {
	ASTNode

	typeNode()
}

// NamedType is a reference to a type by name.
type NamedType struct {
	ASTBase

	Name common.Identifier
}

func (*NamedType) typeNode() {}

// NewUnitType creates the implicit `unit` return type of a function with no
// declared return type.  Its span is zero-width at the given offset.
func NewUnitType(offset int) *NamedType {
	return &NamedType{
		ASTBase: NewASTBaseOn(report.NewSpanAt(offset)),
		Name:    common.NewIdentifier(common.UnitTypeName),
	}
}

// -----------------------------------------------------------------------------

// FuncParam is a single named and typed function parameter.
type FuncParam struct {
	ASTBase

	Ident *Identifier
	Type  ASTType
}

// FuncDef is an AST node for a function.
type FuncDef struct {
	ASTBase

	// Name is the name of the function.  Anonymous functions have an empty
	// name positioned right after the `fn` keyword.
	Name *Identifier

	Params     []*FuncParam
	ReturnType ASTType

	// ImplicitReturn indicates that the source declared no return type and
	// ReturnType is the synthesized `unit` type.
	ImplicitReturn bool

	Body *Block
}

// Program is the root of the AST: the functions of one source unit in source
// order.  Function names need not be unique.
type Program struct {
	ASTBase

	Funcs []*FuncDef
}

// Lookup returns the first function with the given name.
func (p *Program) Lookup(name common.Identifier) (*FuncDef, bool) {
	for _, fn := range p.Funcs {
		if fn.Name.Name == name {
			return fn, true
		}
	}

	return nil, false
}
