// Package linttest provides the assertion helpers rules test with:
// AssertLintOk for sources that must produce no diagnostics and
// AssertLintErr for sources with an exact, ordered expectation list.
package linttest

import (
	"testing"

	"sift/internal/ast"
	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/lint"
	"sift/internal/parser"
	"sift/internal/source"
)

// Expect is one expected diagnostic, located by 0-based column on the
// source line its span starts at.
type Expect struct {
	Line    uint32 // 1-based; 0 means line 1
	Col     uint32 // 0-based
	Message string
}

// Parse builds a Program from an in-memory snippet, failing the test on
// any lex or parse error so rule tests always run on well-formed trees.
func Parse(t *testing.T, src string) (lint.Program, *source.FileSet) {
	t.Helper()

	fset := source.NewFileSet()
	id := fset.AddVirtual("lint_test.ts", []byte(src))
	bag := diag.NewBag(0)

	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: lexer.BagAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(lx, builder, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("test source does not parse: %v", bag.Items())
	}

	kind := lint.ProgramScript
	if res.ModuleSyntax {
		kind = lint.ProgramModule
	}
	return lint.NewProgram(kind, builder, res.File), fset
}

// AssertLintOk asserts the rule produces no diagnostics for src.
func AssertLintOk(t *testing.T, factory lint.Factory, src string) {
	t.Helper()

	program, fset := Parse(t, src)
	diags := lint.Lint(factory, program).Diagnostics()
	if len(diags) != 0 {
		t.Errorf("want no diagnostics, got %d:", len(diags))
		for _, d := range diags {
			start, _ := fset.Resolve(d.Primary)
			t.Errorf("  %d:%d [%s] %s", start.Line, start.Col-1, d.Code, d.Message)
		}
	}
}

// AssertLintErr asserts the rule produces exactly the expected
// diagnostics for src, in order.
func AssertLintErr(t *testing.T, factory lint.Factory, src string, expects []Expect) {
	t.Helper()

	program, fset := Parse(t, src)
	code := factory().Code()
	diags := lint.Lint(factory, program).Diagnostics()

	if len(diags) != len(expects) {
		t.Fatalf("diagnostic count = %d, want %d: %v", len(diags), len(expects), diags)
	}
	for i, want := range expects {
		got := diags[i]
		start, _ := fset.Resolve(got.Primary)

		wantLine := want.Line
		if wantLine == 0 {
			wantLine = 1
		}
		if start.Line != wantLine {
			t.Errorf("diag %d: line = %d, want %d", i, start.Line, wantLine)
		}
		if start.Col-1 != want.Col {
			t.Errorf("diag %d: col = %d, want %d", i, start.Col-1, want.Col)
		}
		if got.Message != want.Message {
			t.Errorf("diag %d: message = %q, want %q", i, got.Message, want.Message)
		}
		if got.Code != code {
			t.Errorf("diag %d: code = %q, want %q", i, got.Code, code)
		}
	}
}
