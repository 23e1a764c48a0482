package syntax

import (
	"fentc/ast"
	"fentc/common"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

// sexpr renders a syntax tree as a compact prefix expression for comparison.
func sexpr(node ast.ASTNode) string {
	switch v := node.(type) {
	case *ast.Identifier:
		return v.Name.Name()
	case *ast.NumberLit:
		return v.Raw
	case *ast.StringLit:
		return `"` + v.Value + `"`
	case *ast.BoolLit:
		if v.Value {
			return "true"
		}

		return "false"
	case *ast.NilLit:
		return "nil"
	case *ast.UnitLit:
		return "()"
	case *ast.BinaryOp:
		return "(" + v.Op.String() + " " + sexpr(v.Lhs) + " " + sexpr(v.Rhs) + ")"
	case *ast.UnaryOp:
		return "(" + v.Op.String() + " " + sexpr(v.Operand) + ")"
	case *ast.IfExpr:
		return "(if " + sexpr(v.Condition) + " " + sexpr(v.Then) + " " + sexpr(v.Else) + ")"
	case *ast.WhileExpr:
		return "(while " + sexpr(v.Condition) + " " + sexpr(v.Body) + ")"
	case *ast.Block:
		var parts []string
		for _, stmt := range v.Stmts {
			parts = append(parts, sexpr(stmt))
		}

		parts = append(parts, sexpr(v.Eval))
		return "{" + strings.Join(parts, "; ") + "}"
	case *ast.ExprStmt:
		return sexpr(v.Expr)
	case *ast.VarDecl:
		kw := "let"
		if v.Mutability == ast.Mutable {
			kw = "var"
		}

		return "(" + kw + " " + v.Name().Name() + " " + sexpr(v.Initializer) + ")"
	case *ast.Assignment:
		return "(= " + sexpr(v.Target) + " " + sexpr(v.Value) + ")"
	default:
		return "<?>"
	}
}

// parseOK parses src and fails the test if there are any diagnostics.
func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()

	result := Parse(src)
	if !result.OK() {
		for _, diag := range result.Diagnostics {
			t.Errorf("%s: %s", diag.Span, diag.Error())
		}

		t.FailNow()
	}

	return result.Program
}

// parseBody parses the statements of a single function body.
func parseBody(t *testing.T, body string) *ast.Block {
	t.Helper()

	prog := parseOK(t, "fn f() { "+body+" }")
	if len(prog.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Funcs))
	}

	return prog.Funcs[0].Body
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		// associativity
		{"a - b - c", "(- (- a b) c)"},
		{"a / b * c mod d", "(mod (* (/ a b) c) d)"},
		{"a or b nor c", "(nor (or a b) c)"},

		// precedence
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a or b and c == d < e + f * g", "(or a (and b (== c (< d (+ e (* f g))))))"},
		{"a != b >= c", "(!= a (>= b c))"},
		{"(a + b) * c", "(* (+ a b) c)"},

		// unary operators
		{"-a * b", "(* (- a) b)"},
		{"not a and b", "(and (not a) b)"},
		{"-(a + b)", "(- (+ a b))"},
		{"- -a", "(- (- a))"},
		{"not not true", "(not (not true))"},

		// negative literals
		{"-3", "-3"},
		{"-3 * a", "(* -3 a)"},
		{"a * -3", "(* a -3)"},
		{"a + -3", "(+ a -3)"},
		{"a -3", "(- a 3)"},
		{"a-3", "(- a 3)"},
		{"a * b -1.5", "(- (* a b) 1.5)"},
		{"a < b -3", "(< a (- b 3))"},

		// atoms
		{"nil", "nil"},
		{"()", "()"},
		{"false", "false"},
		{`"str"`, `"str"`},
		{"0.25", "0.25"},
		{"((x))", "x"},
		{"{ 1 }", "{1}"},
		{"{}", "{()}"},

		// control flow
		{"if a < b { a } else { b }", "(if (< a b) {a} {b})"},
		{"if c { 1 } else { if d { 2 } else { 3 } }", "(if c {1} {(if d {2} {3})})"},
		{"while x > 0 { x = x - 1; }", "(while (> x 0) {(= x (- x 1)); ()})"},
		{"1 + if c { 2 } else { 3 }", "(+ 1 (if c {2} {3}))"},
	}

	for _, test := range tests {
		block := parseBody(t, test.src)

		if len(block.Stmts) != 0 {
			t.Errorf("parsing %q: expected a lone trailing expression, got %d statements", test.src, len(block.Stmts))
			continue
		}

		if got := sexpr(block.Eval); got != test.want {
			t.Errorf("parsing %q: got %s, want %s", test.src, got, test.want)
		}
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"let x = 1; var y = 2; y = x; y", "{(let x 1); (var y 2); (= y x); y}"},
		{"x;", "{x; ()}"},
		{";; x ;;", "{x; ()}"},
		{"let a = 1 let b = 2", "{(let a 1); (let b 2); ()}"},
		{"while c { } x", "{(while c {()}); x}"},
		{"f = 1 f", "{(= f 1); f}"},
	}

	for _, test := range tests {
		if got := sexpr(parseBody(t, test.src)); got != test.want {
			t.Errorf("parsing %q: got %s, want %s", test.src, got, test.want)
		}
	}
}

func TestParseFunctions(t *testing.T) {
	src := `
	// doubles a number
	fn double(n: f32) => f32 { n * 2 }

	fn greet(name: string, times: i32,) {
		var i = 0;
		while i < times {
			i = i + 1;
		}
	}

	/* anonymous */
	fn () { nil }

	fn double(x: f64) => f64 { x + x }
	`

	prog := parseOK(t, src)

	if len(prog.Funcs) != strings.Count(src, "fn ") {
		t.Fatalf("expected %d functions, got %d", strings.Count(src, "fn "), len(prog.Funcs))
	}

	double, ok := prog.Lookup(common.NewIdentifier("double"))
	if !ok {
		t.Fatal("function `double` not found")
	}

	if double != prog.Funcs[0] {
		t.Error("Lookup should find the first of two functions with the same name")
	}

	if double.ImplicitReturn || double.ReturnType.(*ast.NamedType).Name.Name() != "f32" {
		t.Errorf("bad return type for `double`: %# v", pretty.Formatter(double.ReturnType))
	}

	greet := prog.Funcs[1]
	if len(greet.Params) != 2 {
		t.Fatalf("expected 2 parameters for `greet`, got %d", len(greet.Params))
	}

	for i, want := range []struct{ name, typ string }{{"name", "string"}, {"times", "i32"}} {
		param := greet.Params[i]
		if param.Ident.Name.Name() != want.name || param.Type.(*ast.NamedType).Name.Name() != want.typ {
			t.Errorf("parameter %d: got %s: %s, want %s: %s", i, param.Ident.Name, param.Type.(*ast.NamedType).Name, want.name, want.typ)
		}
	}

	if !greet.ImplicitReturn {
		t.Error("`greet` should have an implicit return type")
	}

	unit := greet.ReturnType.(*ast.NamedType)
	if unit.Name.Name() != common.UnitTypeName || unit.Span().Len() != 0 {
		t.Errorf("implicit return type should be a zero-width `unit`, got %s over %s", unit.Name, unit.Span())
	}

	anon := prog.Funcs[2]
	if !anon.Name.Name.IsEmpty() {
		t.Errorf("expected an anonymous function, got `%s`", anon.Name.Name)
	}

	if got := sexpr(anon.Body); got != "{nil}" {
		t.Errorf("anonymous function body: got %s", got)
	}
}

func TestParseEndToEnd(t *testing.T) {
	prog := parseOK(t, "fn (a: f32) => f32 { let x = a + 1 { x } }")

	if len(prog.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Funcs))
	}

	fn := prog.Funcs[0]
	if !fn.Name.Name.IsEmpty() {
		t.Errorf("expected an anonymous function, got `%s`", fn.Name.Name)
	}

	if len(fn.Params) != 1 || fn.Params[0].Ident.Name.Name() != "a" || fn.Params[0].Type.(*ast.NamedType).Name.Name() != "f32" {
		t.Errorf("bad parameters: %# v", pretty.Formatter(fn.Params))
	}

	if fn.ReturnType.(*ast.NamedType).Name.Name() != "f32" {
		t.Errorf("bad return type: %s", fn.ReturnType.(*ast.NamedType).Name)
	}

	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(fn.Body.Stmts))
	}

	decl, ok := fn.Body.Stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected a variable declaration, got %T", fn.Body.Stmts[0])
	}

	if decl.Mutability != ast.Immutable {
		t.Errorf("`let` should be immutable, got %s", decl.Mutability)
	}

	bin, ok := decl.Initializer.(*ast.BinaryOp)
	if !ok || bin.Op != common.OpAdd {
		t.Fatalf("expected an addition, got %s", sexpr(decl.Initializer))
	}

	if lhs, ok := bin.Lhs.(*ast.Identifier); !ok || lhs.Name != common.NewIdentifier("a") {
		t.Errorf("bad addition operand: %s", sexpr(bin.Lhs))
	}

	if rhs, ok := bin.Rhs.(*ast.NumberLit); !ok || rhs.Value != 1 {
		t.Errorf("bad addition operand: %s", sexpr(bin.Rhs))
	}

	trailing, ok := fn.Body.Eval.(*ast.Block)
	if !ok {
		t.Fatalf("expected a trailing block, got %s", sexpr(fn.Body.Eval))
	}

	if ident, ok := trailing.Eval.(*ast.Identifier); !ok || ident.Name.Name() != "x" {
		t.Errorf("trailing block should evaluate to `x`, got %s", sexpr(trailing.Eval))
	}
}

func TestParseDump(t *testing.T) {
	prog := parseOK(t, "fn f() { 1 }")

	want := map[string]interface{}{
		"kind": "Program",
		"span": []int{0, 12},
		"functions": []interface{}{
			map[string]interface{}{
				"kind":   "Function",
				"span":   []int{0, 12},
				"name":   "f",
				"params": []interface{}{},
				"returns": map[string]interface{}{
					"kind": "Named",
					"span": []int{6, 6},
					"name": "unit",
				},
				"body": map[string]interface{}{
					"kind":       "Block",
					"span":       []int{7, 12},
					"statements": []interface{}{},
					"eval": map[string]interface{}{
						"kind":  "Number",
						"span":  []int{9, 10},
						"value": 1.0,
					},
				},
			},
		},
	}

	if diff := pretty.Diff(want, ast.Dump(prog)); len(diff) > 0 {
		t.Errorf("unexpected dump:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParseSpans(t *testing.T) {
	// the body starts at offset 9
	block := parseBody(t, "(a + b) * c")

	outer := block.Eval.(*ast.BinaryOp)
	if outer.Span().Start != 9 || outer.Span().End != 20 {
		t.Errorf("outer operation should span the parentheses, got %s", outer.Span())
	}

	if outer.OpSpan.Start != 17 || outer.OpSpan.End != 18 {
		t.Errorf("bad operator span: %s", outer.OpSpan)
	}

	inner := outer.Lhs.(*ast.BinaryOp)
	if inner.Span().Start != 10 || inner.Span().End != 15 {
		t.Errorf("inner operation should span `a + b`, got %s", inner.Span())
	}

	split := parseBody(t, "a -3").Eval.(*ast.BinaryOp)
	if split.OpSpan.Start != 11 || split.OpSpan.End != 12 {
		t.Errorf("bad span for split minus: %s", split.OpSpan)
	}

	if rhs := split.Rhs.Span(); rhs.Start != 12 || rhs.End != 13 {
		t.Errorf("bad span for split literal: %s", rhs)
	}

	// every child lies within its parent
	prog := parseOK(t, "fn f(x: i32) { let y = -x * 2; if y > 0 { y } else { (y) } }")
	var check func(parent ast.ASTNode)
	check = func(parent ast.ASTNode) {
		ast.Inspect(parent, func(child ast.ASTNode) bool {
			if child != parent {
				if !parent.Span().Contains(child.Span()) {
					t.Errorf("span %s of %T is not within span %s of %T", child.Span(), child, parent.Span(), parent)
				}

				check(child)
				return false
			}

			return true
		})
	}
	check(prog)
}

// -----------------------------------------------------------------------------

func TestParseErrorIsolation(t *testing.T) {
	src := "fn a() { let = 1; }\nfn b() { 1 + ; }"
	result := Parse(src)

	if len(result.Diagnostics) != 2 {
		for _, diag := range result.Diagnostics {
			t.Log(diag.Error())
		}

		t.Fatalf("expected exactly 2 diagnostics, got %d", len(result.Diagnostics))
	}

	if len(result.Program.Funcs) != 2 {
		t.Fatalf("expected both functions to be recovered, got %d", len(result.Program.Funcs))
	}

	for i, diag := range result.Diagnostics {
		if fnSpan := result.Program.Funcs[i].Span(); !fnSpan.Contains(diag.Span) {
			t.Errorf("diagnostic %d at %s is not within function %d at %s", i, diag.Span, i, fnSpan)
		}
	}

	first := result.Diagnostics[0]
	if got, want := first.Error(), "expected identifier in statement, found `=`"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}

	second := result.Diagnostics[1]
	if second.Context != "expression" || second.Found.Kind != TOK_SEMI {
		t.Errorf("bad second diagnostic: %s", second.Error())
	}

	for _, kind := range []int{TOK_INTLIT, TOK_IDENT, TOK_LPAREN, TOK_MINUS, TOK_NOT, TOK_IF} {
		if !second.Accepts(kind) {
			t.Errorf("second diagnostic should accept %s: %s", KindName(kind), second.Error())
		}
	}

	if second.Accepts(TOK_FN) {
		t.Errorf("second diagnostic should not accept `fn`: %s", second.Error())
	}
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		diags    int
		funcs    int
		contexts []string
	}{
		{"junk before function", "let x = 1; fn f() {}", 1, 1, []string{"program"}},
		{"junk between functions", "fn f() {} 1 2 3 fn g() {}", 1, 2, []string{"program"}},
		{"missing else", "fn f() { if a { 1 } }", 1, 1, []string{"expression"}},
		{"unclosed block", "fn a() { 1 + 2\nfn b() { 3 }", 1, 2, []string{"expression"}},
		{"unclosed block at end", "fn a() { 1 +", 1, 1, []string{"expression"}},
		{"bad parameter", "fn f(x) { x }\nfn g() { }", 1, 1, []string{"parameter list"}},
		{"bad return type", "fn f() => { x }", 1, 0, []string{"Type"}},
		{"missing parenthesis", "fn f { }", 1, 0, []string{"function"}},
		{"nested braces skipped", "fn f() { let = { 1; 2 }; x }", 1, 1, []string{"statement"}},
		{"several in one function", "fn f() { let = 1; let y = 2; y = ; y }", 2, 1, []string{"statement", "expression"}},
		{"lexical error", "fn f() { 1 @ }", 1, 1, []string{ContextToken}},
		{"bad string", "fn f() { \"\\q\" }", 1, 1, []string{ContextToken}},
		{"chained assignment", "fn f() { x = y = z }", 1, 1, []string{"expression"}},
		{"nested unclosed blocks", "fn a() { { { 1 ", 1, 1, []string{"expression"}},
		{"unclosed if block", "fn a() { if x { 1 \nfn b() { let = 1 }", 2, 2, []string{"expression", "statement"}},
		{"empty source", "", 0, 0, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Parse(test.src)

			var contexts []string
			for _, diag := range result.Diagnostics {
				contexts = append(contexts, diag.Context)
			}

			if len(result.Diagnostics) != test.diags {
				t.Errorf("expected %d diagnostics, got %d: %v", test.diags, len(result.Diagnostics), result.Diagnostics)
			} else if diff := pretty.Diff(test.contexts, contexts); len(diff) > 0 {
				t.Errorf("bad diagnostic contexts: %v", diff)
			}

			if len(result.Program.Funcs) != test.funcs {
				t.Errorf("expected %d functions, got %d", test.funcs, len(result.Program.Funcs))
			}
		})
	}
}

func TestParseRecoveredBody(t *testing.T) {
	result := Parse("fn f() { let = 1; let y = 2; y = ; y }")

	if got := sexpr(result.Program.Funcs[0].Body); got != "{(let y 2); y}" {
		t.Errorf("recovered body: got %s", got)
	}
}

func TestParseUnclosedReportedOnce(t *testing.T) {
	tests := []struct {
		src        string
		start, end int
	}{
		// the second `=` of a chained assignment
		{"fn f() { x = y = z }", 15, 16},
		// end of file, once for all three blocks
		{"fn a() { { { 1 ", 15, 15},
		// the `fn` that interrupts the `if` block
		{"fn a() { if x { 1 \nfn b() { }", 19, 21},
	}

	for _, test := range tests {
		result := Parse(test.src)
		if len(result.Diagnostics) != 1 {
			t.Errorf("parsing %q: expected 1 diagnostic, got %d: %v", test.src, len(result.Diagnostics), result.Diagnostics)
			continue
		}

		if span := result.Diagnostics[0].Span; span.Start != test.start || span.End != test.end {
			t.Errorf("parsing %q: diagnostic at %s, want %d..%d", test.src, span, test.start, test.end)
		}
	}
}

func TestParseDiagnosticOrder(t *testing.T) {
	result := Parse("fn f() { let = 1 } fn g() { @ x } let")

	if len(result.Diagnostics) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %v", len(result.Diagnostics), result.Diagnostics)
	}

	for i := 1; i < len(result.Diagnostics); i++ {
		if result.Diagnostics[i-1].Span.Start > result.Diagnostics[i].Span.Start {
			t.Errorf("diagnostics out of order: %s before %s", result.Diagnostics[i-1].Span, result.Diagnostics[i].Span)
		}
	}
}

func TestParseDepthGuard(t *testing.T) {
	src := "fn f() { " + strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300) + " }"

	result := Parse(src)
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
	}

	if msg := result.Diagnostics[0].Error(); !strings.Contains(msg, "nesting too deep") {
		t.Errorf("unexpected message: %s", msg)
	}

	if len(result.Program.Funcs) != 1 {
		t.Errorf("expected the function to be recovered, got %d functions", len(result.Program.Funcs))
	}

	if result = Parse(src, WithMaxDepth(1000)); !result.OK() {
		t.Errorf("raising the depth limit should accept the input: %v", result.Diagnostics)
	}

	if result = Parse("fn f() { -(-(-1)) }", WithMaxDepth(4)); result.OK() {
		t.Error("unary operators should count towards the depth limit")
	}
}

func TestParseNumberOutOfRange(t *testing.T) {
	result := Parse("fn f() { 1" + strings.Repeat("0", 400) + " }")

	if len(result.Diagnostics) != 1 || !strings.Contains(result.Diagnostics[0].Error(), "out of range") {
		t.Errorf("expected an out of range diagnostic, got %v", result.Diagnostics)
	}
}

func TestDiagnosticMessages(t *testing.T) {
	eof := &Token{Kind: TOK_EOF}
	semi := &Token{Kind: TOK_SEMI, Value: ";"}

	tests := []struct {
		diag *Diagnostic
		want string
	}{
		{&Diagnostic{Expected: []int{TOK_RBRACE}, Found: eof, Context: "block"}, "expected `}` in block, found end of file"},
		{&Diagnostic{Expected: []int{TOK_RPAREN, TOK_COMMA}, Found: semi}, "expected `)` or `,`, found `;`"},
		{&Diagnostic{Expected: []int{TOK_IDENT, TOK_INTLIT, TOK_FLOATLIT}, Found: semi, Context: "expression"}, "expected one of identifier, integer literal, or float literal in expression, found `;`"},
		{&Diagnostic{Found: semi, Context: "program"}, "unexpected `;` in program"},
		{&Diagnostic{Message: "custom"}, "custom"},
	}

	for _, test := range tests {
		if got := test.diag.Error(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestBinaryOperatorOf(t *testing.T) {
	for _, op := range common.BinaryOperators() {
		toks := Lex(op.String())

		got, err := BinaryOperatorOf(toks[0].Kind)
		if err != nil || got != op {
			t.Errorf("BinaryOperatorOf(%s) = %s, %v; want %s", toks[0].Describe(), got, err, op)
		}
	}

	if _, err := BinaryOperatorOf(TOK_LPAREN); err != common.ErrNotBinaryOperator {
		t.Errorf("expected ErrNotBinaryOperator for `(`, got %v", err)
	}

	if _, err := UnaryOperatorOf(TOK_PLUS); err != common.ErrNotUnaryOperator {
		t.Errorf("expected ErrNotUnaryOperator for `+`, got %v", err)
	}
}
