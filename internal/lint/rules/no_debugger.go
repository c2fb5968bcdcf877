package rules

import (
	"sift/internal/ast"
	"sift/internal/lint"
)

const noDebuggerMessage = "`debugger` statement is not allowed."

// NoDebugger flags `debugger;` statements left over from development.
type NoDebugger struct{}

func NewNoDebugger() lint.Rule { return NoDebugger{} }

func (NoDebugger) Code() string { return "no-debugger" }

func (NoDebugger) Docs() lint.Docs {
	return lint.Docs{
		Summary: "Disallows the use of the `debugger` statement.\n\n" +
			"`debugger` halts execution when developer tools are open. Shipping one " +
			"stops the program for every user; remove it before committing.",
		Invalid: "function isLongString(x: string) {\n  debugger;\n  return x.length > 100;\n}",
		Valid:   "function isLongString(x: string) {\n  return x.length > 100;\n}",
	}
}

func (r NoDebugger) LintProgram(ctx *lint.Context, program lint.Program) {
	builder := program.Builder()
	v := lint.NewVisitor(builder)
	v.Debugger = func(id ast.StmtID) {
		ctx.AddDiagnostic(builder.Stmts.Get(id).Span, r.Code(), noDebuggerMessage)
	}
	v.WalkProgram(program)
}
