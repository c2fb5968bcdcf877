package parser

import (
	"testing"

	"sift/internal/ast"
	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/source"
	"sift/internal/token"
)

func parseSource(t *testing.T, src string) (*ast.Builder, Result, *diag.Bag) {
	t.Helper()
	fset := source.NewFileSet()
	id := fset.AddVirtual("test.ts", []byte(src))
	bag := diag.NewBag(4)
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: lexer.BagAdapter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(lx, b, Options{Reporter: diag.BagReporter{Bag: bag}})
	return b, res, bag
}

func rootStmts(t *testing.T, b *ast.Builder, res Result) []ast.StmtID {
	t.Helper()
	root := b.Files.Get(res.File)
	if root == nil {
		t.Fatalf("file root missing")
	}
	return root.Stmts
}

func TestParse_VarDecl(t *testing.T) {
	b, res, bag := parseSource(t, "var foo = 0;")
	if bag.HasErrors() || res.Errors != 0 {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1", len(stmts))
	}
	vd, ok := b.Stmts.VarDecl(stmts[0])
	if !ok {
		t.Fatalf("statement is not a var decl")
	}
	if vd.DeclKind != ast.DeclVar {
		t.Errorf("DeclKind = %v, want var", vd.DeclKind)
	}
	if vd.KeywordSpan.Start != 0 || vd.KeywordSpan.End != 3 {
		t.Errorf("keyword span = [%d,%d), want [0,3)", vd.KeywordSpan.Start, vd.KeywordSpan.End)
	}
	if len(vd.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(vd.Decls))
	}
	d := b.Stmts.Declarator(vd.Decls[0])
	if d.Name != "foo" {
		t.Errorf("name = %q, want foo", d.Name)
	}
	if !d.Init.IsValid() {
		t.Errorf("init should be set")
	}
	if d.Type.IsValid() {
		t.Errorf("type should be absent")
	}
}

func TestParse_LetWithAnnotationAndList(t *testing.T) {
	b, res, bag := parseSource(t, "let a: number = 1, b = 2;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	vd, ok := b.Stmts.VarDecl(stmts[0])
	if !ok || vd.DeclKind != ast.DeclLet {
		t.Fatalf("want let decl, got %+v", vd)
	}
	if len(vd.Decls) != 2 {
		t.Fatalf("len(Decls) = %d, want 2", len(vd.Decls))
	}
	first := b.Stmts.Declarator(vd.Decls[0])
	if !first.Type.IsValid() {
		t.Errorf("first declarator should carry a type annotation")
	}
	ref, ok := b.Types.Ref(first.Type)
	if !ok || ref.Name != "number" {
		t.Errorf("type ref = %+v, want number", ref)
	}
	second := b.Stmts.Declarator(vd.Decls[1])
	if second.Name != "b" || second.Type.IsValid() {
		t.Errorf("second declarator = %+v, want plain b", second)
	}
}

func TestParse_ModuleSyntaxDetection(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"plain script", "var x = 1;", false},
		{"named import", `import { a, b } from "mod"; var x = a;`, true},
		{"default import", `import a from "mod";`, true},
		{"side-effect import", `import "mod";`, true},
		{"export decl", "export const x = 1;", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, res, bag := parseSource(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %v", bag.Items())
			}
			if res.ModuleSyntax != tt.want {
				t.Errorf("ModuleSyntax = %v, want %v", res.ModuleSyntax, tt.want)
			}
			if got := b.Files.Get(res.File).ModuleSyntax; got != tt.want {
				t.Errorf("root.ModuleSyntax = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_ExportWrapsInner(t *testing.T) {
	b, res, bag := parseSource(t, "export var x = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	exp, ok := b.Stmts.Export(stmts[0])
	if !ok {
		t.Fatalf("statement is not an export")
	}
	if _, ok := b.Stmts.VarDecl(exp.Inner); !ok {
		t.Errorf("export inner should be a var decl")
	}
}

func TestParse_ControlFlow(t *testing.T) {
	src := `
if (x) { y = 1; } else y = 2;
while (x) { debugger; }
for (let i = 0; i < 10; i = i + 1) { f(i); }
for (;;) { break_placeholder(); }
return;
`
	b, res, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	if len(stmts) != 5 {
		t.Fatalf("len(stmts) = %d, want 5", len(stmts))
	}

	ifStmt, ok := b.Stmts.If(stmts[0])
	if !ok {
		t.Fatalf("stmt 0 is not an if")
	}
	if !ifStmt.Else.IsValid() {
		t.Errorf("if should have an else branch")
	}

	wh, ok := b.Stmts.While(stmts[1])
	if !ok {
		t.Fatalf("stmt 1 is not a while")
	}
	body, ok := b.Stmts.Block(wh.Body)
	if !ok || len(body.Body) != 1 {
		t.Fatalf("while body = %+v, want one statement", body)
	}
	if b.Stmts.Get(body.Body[0]).Kind != ast.StmtDebugger {
		t.Errorf("while body statement should be debugger")
	}

	forStmt, ok := b.Stmts.For(stmts[2])
	if !ok {
		t.Fatalf("stmt 2 is not a for")
	}
	if !forStmt.Init.IsValid() || !forStmt.Cond.IsValid() || !forStmt.Post.IsValid() {
		t.Errorf("three-clause for lost a clause: %+v", forStmt)
	}

	empty, ok := b.Stmts.For(stmts[3])
	if !ok {
		t.Fatalf("stmt 3 is not a for")
	}
	if empty.Init.IsValid() || empty.Cond.IsValid() || empty.Post.IsValid() {
		t.Errorf("for (;;) should have no clauses: %+v", empty)
	}

	ret, ok := b.Stmts.Return(stmts[4])
	if !ok {
		t.Fatalf("stmt 4 is not a return")
	}
	if ret.Value.IsValid() {
		t.Errorf("bare return should have no value")
	}
}

func TestParse_FunctionDecl(t *testing.T) {
	b, res, bag := parseSource(t, "function add(a: number, b: number): number { return a + b; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	fn, ok := b.Stmts.FnDecl(stmts[0])
	if !ok {
		t.Fatalf("statement is not a function decl")
	}
	if fn.Name != "add" {
		t.Errorf("name = %q, want add", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(fn.Params))
	}
	if !fn.Return.IsValid() {
		t.Errorf("return annotation should be set")
	}
	if !fn.Body.IsValid() {
		t.Fatalf("body should be set")
	}
	if _, ok := b.Stmts.Block(fn.Body); !ok {
		t.Errorf("body should be a block")
	}
}

func TestParse_TypeOnlyDecls(t *testing.T) {
	b, res, bag := parseSource(t, "type Pair = Map<string, number>;\ninterface Point { x: number; y: number }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}

	alias, ok := b.Stmts.TypeAlias(stmts[0])
	if !ok || alias.Name != "Pair" {
		t.Fatalf("stmt 0 = %+v, want type alias Pair", alias)
	}
	ref, ok := b.Types.Ref(alias.Aliased)
	if !ok || ref.Name != "Map" || len(ref.Args) != 2 {
		t.Fatalf("aliased type = %+v, want Map with two args", ref)
	}

	iface, ok := b.Stmts.Interface(stmts[1])
	if !ok || iface.Name != "Point" {
		t.Fatalf("stmt 1 = %+v, want interface Point", iface)
	}
	if len(iface.Members) != 2 {
		t.Errorf("len(Members) = %d, want 2", len(iface.Members))
	}
}

func TestParse_BinaryPrecedence(t *testing.T) {
	b, res, bag := parseSource(t, "x = a + b * c;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	es, ok := b.Stmts.ExprStmt(stmts[0])
	if !ok {
		t.Fatalf("statement is not an expression")
	}
	assign, ok := b.Exprs.Assign(es.Expr)
	if !ok {
		t.Fatalf("expression is not an assignment")
	}
	add, ok := b.Exprs.Binary(assign.Value)
	if !ok || add.Op != token.Plus {
		t.Fatalf("value = %+v, want + at the top", add)
	}
	mul, ok := b.Exprs.Binary(add.Right)
	if !ok || mul.Op != token.Star {
		t.Fatalf("right of + = %+v, want *", mul)
	}
}

func TestParse_AssignRightAssociative(t *testing.T) {
	b, res, bag := parseSource(t, "a = b = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	es, _ := b.Stmts.ExprStmt(stmts[0])
	outer, ok := b.Exprs.Assign(es.Expr)
	if !ok {
		t.Fatalf("expression is not an assignment")
	}
	if _, ok := b.Exprs.Assign(outer.Value); !ok {
		t.Errorf("a = b = 1 should nest the inner assignment on the right")
	}
}

func TestParse_CallAndMember(t *testing.T) {
	b, res, bag := parseSource(t, `console.log("hi", 42);`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmts := rootStmts(t, b, res)
	es, _ := b.Stmts.ExprStmt(stmts[0])
	call, ok := b.Exprs.Call(es.Expr)
	if !ok {
		t.Fatalf("expression is not a call")
	}
	if len(call.Args) != 2 {
		t.Errorf("len(Args) = %d, want 2", len(call.Args))
	}
	member, ok := b.Exprs.Member(call.Callee)
	if !ok || member.Name != "log" {
		t.Fatalf("callee = %+v, want member .log", member)
	}
	obj, ok := b.Exprs.Ident(member.Object)
	if !ok || obj.Name != "console" {
		t.Fatalf("object = %+v, want console", obj)
	}
}

func TestParse_RecoversAfterError(t *testing.T) {
	b, res, bag := parseSource(t, "var = 1;\nlet ok = 2;")
	if res.Errors == 0 || !bag.HasErrors() {
		t.Fatalf("expected at least one parse error")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == CodeExpectIdent {
			found = true
		}
	}
	if !found {
		t.Errorf("missing %s diagnostic: %v", CodeExpectIdent, bag.Items())
	}

	// The second statement must survive recovery.
	stmts := rootStmts(t, b, res)
	sawLet := false
	for _, id := range stmts {
		if vd, ok := b.Stmts.VarDecl(id); ok && vd.DeclKind == ast.DeclLet {
			sawLet = true
		}
	}
	if !sawLet {
		t.Errorf("let statement after the error was dropped: %d stmts", len(stmts))
	}
}

func TestParse_BadExpressionPlaceholder(t *testing.T) {
	b, res, bag := parseSource(t, "x = ;")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for missing expression")
	}
	stmts := rootStmts(t, b, res)
	if len(stmts) == 0 {
		t.Fatalf("statement was dropped entirely")
	}
	es, ok := b.Stmts.ExprStmt(stmts[0])
	if !ok {
		t.Fatalf("statement is not an expression")
	}
	assign, ok := b.Exprs.Assign(es.Expr)
	if !ok {
		t.Fatalf("expression is not an assignment")
	}
	if b.Exprs.Get(assign.Value).Kind != ast.ExprBad {
		t.Errorf("missing value should parse as a placeholder")
	}
}

func TestParse_MaxErrorsStops(t *testing.T) {
	_, res, _ := parseSource(t, "var = ; var = ; var = ;")
	if res.Errors == 0 {
		t.Fatalf("expected errors")
	}

	fset := source.NewFileSet()
	id := fset.AddVirtual("test.ts", []byte("var = ; var = ; var = ;"))
	bag := diag.NewBag(4)
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: lexer.BagAdapter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	capped := ParseFile(lx, b, Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 1})
	if capped.Errors != 1 {
		t.Errorf("Errors = %d, want 1 with MaxErrors cap", capped.Errors)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	b, res, bag := parseSource(t, "")
	if bag.HasErrors() || res.Errors != 0 {
		t.Fatalf("empty input must not error: %v", bag.Items())
	}
	if len(rootStmts(t, b, res)) != 0 {
		t.Errorf("empty input should produce no statements")
	}
	if res.ModuleSyntax {
		t.Errorf("empty input is a script")
	}
}
