package ast

// Inspect traverses an AST in depth-first, source order.  It calls f for each
// node; when f returns false the children of that node are skipped.  Nil nodes
// are ignored.
func Inspect(node ASTNode, f func(ASTNode) bool) {
	if node == nil || !f(node) {
		return
	}

	switch v := node.(type) {
	case *Program:
		for _, fn := range v.Funcs {
			Inspect(fn, f)
		}
	case *FuncDef:
		Inspect(v.Name, f)
		for _, param := range v.Params {
			Inspect(param, f)
		}

		if !v.ImplicitReturn {
			Inspect(v.ReturnType, f)
		}

		Inspect(v.Body, f)
	case *FuncParam:
		Inspect(v.Ident, f)
		Inspect(v.Type, f)
	case *Block:
		for _, stmt := range v.Stmts {
			Inspect(stmt, f)
		}

		Inspect(v.Eval, f)
	case *ExprStmt:
		Inspect(v.Expr, f)
	case *Assignment:
		Inspect(v.Target, f)
		Inspect(v.Value, f)
	case *VarDecl:
		Inspect(v.Ident, f)
		Inspect(v.Initializer, f)
	case *IfExpr:
		Inspect(v.Condition, f)
		Inspect(v.Then, f)
		Inspect(v.Else, f)
	case *WhileExpr:
		Inspect(v.Condition, f)
		Inspect(v.Body, f)
	case *BinaryOp:
		Inspect(v.Lhs, f)
		Inspect(v.Rhs, f)
	case *UnaryOp:
		Inspect(v.Operand, f)
	}
}
