// Package rules holds the built-in lint rules. Each rule is a
// stateless value constructed fresh per run through its factory in
// All.
package rules

import (
	"sift/internal/ast"
	"sift/internal/lint"
)

const noVarMessage = "`var` keyword is not allowed."

// NoVar flags every `var` declaration; `let` and `const` have block
// scoping and should be used instead.
type NoVar struct{}

func NewNoVar() lint.Rule { return NoVar{} }

func (NoVar) Code() string { return "no-var" }

func (NoVar) Docs() lint.Docs {
	return lint.Docs{
		Summary: "Enforces the use of block-scoped `let` or `const` over function-scoped `var`.\n\n" +
			"Variables declared with `var` are hoisted to the top of their enclosing " +
			"function, which allows use before declaration and accidental redeclaration. " +
			"`let` and `const` scope to the nearest block and surface both mistakes as errors.",
		Invalid: "var foo = \"bar\";",
		Valid:   "const foo = 1;\nlet bar = 2;",
	}
}

func (r NoVar) LintProgram(ctx *lint.Context, program lint.Program) {
	v := lint.NewVisitor(program.Builder())
	v.VarDecl = func(id ast.StmtID, decl *ast.VarDeclStmt) {
		if decl.DeclKind == ast.DeclVar {
			ctx.AddDiagnostic(decl.Span, r.Code(), noVarMessage)
		}
	}
	v.WalkProgram(program)
}
