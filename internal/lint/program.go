package lint

import (
	"sift/internal/ast"
)

// ProgramKind distinguishes module files (top-level import/export) from
// plain scripts.
type ProgramKind uint8

const (
	ProgramScript ProgramKind = iota
	ProgramModule
)

func (k ProgramKind) String() string {
	if k == ProgramModule {
		return "module"
	}
	return "script"
}

// Program is one parsed source file handed to rules. The kind is fixed
// at construction; rules that care about module semantics branch on it,
// everything else traverses the tree the same way for both.
type Program struct {
	kind    ProgramKind
	builder *ast.Builder
	file    ast.FileID
}

// NewProgram wraps a parsed file. The builder must contain the file.
func NewProgram(kind ProgramKind, builder *ast.Builder, file ast.FileID) Program {
	return Program{
		kind:    kind,
		builder: builder,
		file:    file,
	}
}

func (p Program) Kind() ProgramKind { return p.kind }

func (p Program) IsModule() bool { return p.kind == ProgramModule }

// Builder exposes the arenas for traversal and payload lookups.
func (p Program) Builder() *ast.Builder { return p.builder }

// File returns the root file ID.
func (p Program) File() ast.FileID { return p.file }

// Root returns the file node, or nil when the program is empty or the
// ID is stale. Callers treat nil as a file with no statements.
func (p Program) Root() *ast.File {
	if p.builder == nil {
		return nil
	}
	return p.builder.Files.Get(p.file)
}
