package rules

import (
	"sift/internal/ast"
	"sift/internal/lint"
)

const noEvalMessage = "`eval` call is not allowed."

// NoEval flags direct calls to `eval`. Aliased or member-accessed eval
// is out of reach without scope analysis and is left alone.
type NoEval struct{}

func NewNoEval() lint.Rule { return NoEval{} }

func (NoEval) Code() string { return "no-eval" }

func (NoEval) Docs() lint.Docs {
	return lint.Docs{
		Summary: "Disallows direct calls to `eval`.\n\n" +
			"`eval` executes arbitrary strings as code with the caller's privileges, " +
			"opening injection attacks and defeating every static guarantee a linter " +
			"or type checker can give.",
		Invalid: "const result = eval(\"2 + 2\");",
		Valid:   "const result = 2 + 2;",
	}
}

func (r NoEval) LintProgram(ctx *lint.Context, program lint.Program) {
	builder := program.Builder()
	v := lint.NewVisitor(builder)
	v.Call = func(id ast.ExprID, call *ast.CallExpr) {
		ident, ok := builder.Exprs.Ident(call.Callee)
		if !ok || ident.Name != "eval" {
			return
		}
		ctx.AddDiagnostic(builder.Exprs.Get(id).Span, r.Code(), noEvalMessage)
	}
	v.WalkProgram(program)
}
