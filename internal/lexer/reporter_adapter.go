package lexer

import (
	"sift/internal/diag"
	"sift/internal/source"
)

// BagAdapter adapts a diag.Bag to the lexer's Reporter interface.
// Every lexer report becomes a SevError diagnostic.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a BagAdapter) Report(code string, span source.Span, msg string) {
	if a.Bag == nil {
		return
	}
	a.Bag.Add(diag.NewError(code, span, msg))
}
