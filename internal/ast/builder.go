package ast

// Hints carries capacity hints for the builder's arenas.
type Hints struct {
	Files uint
	Stmts uint
	Exprs uint
	Types uint
}

// Builder bundles the arenas produced by parsing one or more files.
// The lint engine reads through it; it never mutates a finished tree.
type Builder struct {
	Files *Files
	Stmts *Stmts
	Exprs *Exprs
	Types *Types
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
		Types: NewTypes(hints.Types),
	}
}
