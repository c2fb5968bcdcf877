package lint

import (
	"reflect"
	"strings"
	"testing"

	"sift/internal/ast"
	"sift/internal/source"
)

func TestContext_AppendsWithoutDedup(t *testing.T) {
	ctx := NewContext()
	sp := source.Span{File: 0, Start: 5, End: 8}

	ctx.AddDiagnostic(sp, "test-rule", "first")
	ctx.AddDiagnostic(sp, "test-rule", "first")
	ctx.AddDiagnostic(sp, "test-rule", "second")

	items := ctx.Diagnostics()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3; identical reports must not collapse", len(items))
	}
	if items[0].Message != "first" || items[2].Message != "second" {
		t.Errorf("insertion order lost: %v", items)
	}
	for _, d := range items {
		if d.Code != "test-rule" {
			t.Errorf("code = %q, want test-rule", d.Code)
		}
	}
}

type fakeRule struct {
	code  string
	spans []source.Span
}

func (r *fakeRule) Code() string { return r.code }
func (r *fakeRule) Docs() Docs   { return Docs{Summary: "fake"} }
func (r *fakeRule) LintProgram(ctx *Context, _ Program) {
	for _, sp := range r.spans {
		ctx.AddDiagnostic(sp, r.code, "msg")
	}
}

func fakeFactory(code string, spans ...source.Span) Factory {
	return func() Rule { return &fakeRule{code: code, spans: spans} }
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Factory{
		fakeFactory("dup-code"),
		fakeFactory("other"),
		fakeFactory("dup-code"),
	})
	if err == nil {
		t.Fatalf("duplicate code must be rejected")
	}
	if !strings.Contains(err.Error(), "dup-code") {
		t.Errorf("error should name the duplicate: %v", err)
	}
}

func TestRegistry_RejectsBadCodes(t *testing.T) {
	for _, code := range []string{"", "HasCaps", "under_score", "-lead", "trail-"} {
		if _, err := NewRegistry([]Factory{fakeFactory(code)}); err == nil {
			t.Errorf("code %q must be rejected", code)
		}
	}
}

func TestRegistry_SelectIncludeExclude(t *testing.T) {
	reg, err := NewRegistry([]Factory{
		fakeFactory("b-rule"),
		fakeFactory("a-rule"),
		fakeFactory("c-rule"),
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if got := reg.Codes(); !reflect.DeepEqual(got, []string{"a-rule", "b-rule", "c-rule"}) {
		t.Errorf("Codes() = %v, want sorted", got)
	}

	all, err := reg.Select(nil, nil)
	if err != nil || len(all) != 3 {
		t.Errorf("Select(nil,nil) = %d rules, err %v; want 3", len(all), err)
	}

	some, err := reg.Select(nil, []string{"b-rule"})
	if err != nil || len(some) != 2 {
		t.Fatalf("exclude select = %d rules, err %v; want 2", len(some), err)
	}
	codes := []string{some[0]().Code(), some[1]().Code()}
	if !reflect.DeepEqual(codes, []string{"a-rule", "c-rule"}) {
		t.Errorf("excluded set = %v", codes)
	}

	if _, err := reg.Select([]string{"no-such"}, nil); err == nil {
		t.Errorf("unknown include code must error")
	}
	if _, err := reg.Select(nil, []string{"no-such"}); err == nil {
		t.Errorf("unknown exclude code must error")
	}
}

func TestRun_MergeOrderSpanThenCode(t *testing.T) {
	sp := func(start uint32) source.Span {
		return source.Span{File: 0, Start: start, End: start + 1}
	}
	b := ast.NewBuilder(ast.Hints{})
	program := NewProgram(ProgramScript, b, b.Files.New(sp(0)))

	// Registered out of order on purpose: the merge must come back
	// ascending by start, ties broken by rule code.
	diags := Run([]Factory{
		fakeFactory("z-rule", sp(10), sp(3)),
		fakeFactory("a-rule", sp(10)),
	}, program)

	if len(diags) != 3 {
		t.Fatalf("len = %d, want 3", len(diags))
	}
	if diags[0].Primary.Start != 3 {
		t.Errorf("first start = %d, want 3", diags[0].Primary.Start)
	}
	if diags[1].Code != "a-rule" || diags[2].Code != "z-rule" {
		t.Errorf("tie at start 10 must order by code: %s then %s", diags[1].Code, diags[2].Code)
	}
}

func TestDocs_RenderLayout(t *testing.T) {
	docs := Docs{
		Summary: "Explains the rule.",
		Invalid: "var x = 1;",
		Valid:   "let x = 1;",
	}
	out := docs.Render()

	invalidAt := strings.Index(out, "### Invalid:")
	validAt := strings.Index(out, "### Valid:")
	if invalidAt < 0 || validAt < 0 || validAt < invalidAt {
		t.Fatalf("sections missing or misordered:\n%s", out)
	}
	if !strings.HasPrefix(out, "Explains the rule.") {
		t.Errorf("prose must come first:\n%s", out)
	}
	if strings.Count(out, "```") != 4 {
		t.Errorf("want two fenced snippets:\n%s", out)
	}
}

func TestProgram_KindAccessors(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	file := b.Files.New(source.Span{})

	script := NewProgram(ProgramScript, b, file)
	module := NewProgram(ProgramModule, b, file)

	if script.IsModule() || script.Kind().String() != "script" {
		t.Errorf("script program misreported: %v", script.Kind())
	}
	if !module.IsModule() || module.Kind().String() != "module" {
		t.Errorf("module program misreported: %v", module.Kind())
	}
}
