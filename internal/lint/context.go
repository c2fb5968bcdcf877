package lint

import (
	"sift/internal/diag"
	"sift/internal/source"
)

// Context collects the diagnostics of one rule over one program. The
// runner hands every rule a fresh Context, so a misbehaving rule cannot
// see or disturb another rule's output.
type Context struct {
	bag *diag.Bag
}

func NewContext() *Context {
	return &Context{
		bag: diag.NewBag(0),
	}
}

// AddDiagnostic records a violation at span under the given rule code.
// Every call appends: two reports with identical arguments both
// survive, in call order. Lint findings are warnings; parse and lex
// problems carry SevError and come from the frontend, never from rules.
func (c *Context) AddDiagnostic(span source.Span, code, msg string) {
	c.bag.Add(diag.NewWarning(code, span, msg))
}

// Diagnostics returns the accumulated reports in insertion order,
// which for a single traversal is source order.
func (c *Context) Diagnostics() []diag.Diagnostic {
	return c.bag.Items()
}
