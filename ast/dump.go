package ast

// Dump converts an AST into nested maps and slices of plain values so that it
// can be serialized by any encoder.  Every node becomes a map holding its
// `kind`, its `span` as a `[start, end]` pair, and its fields.
func Dump(node ASTNode) map[string]interface{} {
	if node == nil {
		return nil
	}

	span := node.Span()
	m := map[string]interface{}{
		"span": []int{span.Start, span.End},
	}

	switch v := node.(type) {
	case *Program:
		m["kind"] = "Program"
		m["functions"] = dumpList(len(v.Funcs), func(i int) ASTNode { return v.Funcs[i] })
	case *FuncDef:
		m["kind"] = "Function"
		m["name"] = v.Name.Name.Name()
		m["params"] = dumpList(len(v.Params), func(i int) ASTNode { return v.Params[i] })
		m["returns"] = Dump(v.ReturnType)
		m["body"] = Dump(v.Body)
	case *FuncParam:
		m["kind"] = "Param"
		m["name"] = v.Ident.Name.Name()
		m["type"] = Dump(v.Type)
	case *NamedType:
		m["kind"] = "Named"
		m["name"] = v.Name.Name()
	case *ExprStmt:
		m["kind"] = "Expression"
		m["expr"] = Dump(v.Expr)
	case *Assignment:
		m["kind"] = "Assignment"
		m["target"] = v.Target.Name.Name()
		m["value"] = Dump(v.Value)
	case *VarDecl:
		m["kind"] = "Let"
		m["name"] = v.Ident.Name.Name()
		m["mutability"] = v.Mutability.String()
		m["initializer"] = Dump(v.Initializer)
	case *NilLit:
		m["kind"] = "Nil"
	case *UnitLit:
		m["kind"] = "Unit"
	case *BoolLit:
		m["kind"] = "Bool"
		m["value"] = v.Value
	case *NumberLit:
		m["kind"] = "Number"
		m["value"] = v.Value
	case *StringLit:
		m["kind"] = "String"
		m["value"] = v.Value
	case *Identifier:
		m["kind"] = "Ident"
		m["name"] = v.Name.Name()
	case *IfExpr:
		m["kind"] = "If"
		m["condition"] = Dump(v.Condition)
		m["then"] = Dump(v.Then)
		m["else"] = Dump(v.Else)
	case *WhileExpr:
		m["kind"] = "While"
		m["condition"] = Dump(v.Condition)
		m["body"] = Dump(v.Body)
	case *Block:
		m["kind"] = "Block"
		m["statements"] = dumpList(len(v.Stmts), func(i int) ASTNode { return v.Stmts[i] })
		m["eval"] = Dump(v.Eval)
	case *BinaryOp:
		m["kind"] = "Binary"
		m["operator"] = v.Op.String()
		m["lhs"] = Dump(v.Lhs)
		m["rhs"] = Dump(v.Rhs)
	case *UnaryOp:
		m["kind"] = "Unary"
		m["operator"] = v.Op.String()
		m["operand"] = Dump(v.Operand)
	}

	return m
}

// dumpList dumps n nodes fetched by index.
func dumpList(n int, at func(int) ASTNode) []interface{} {
	list := make([]interface{}, n)
	for i := range list {
		list[i] = Dump(at(i))
	}

	return list
}
