package ast

import (
	"sift/internal/source"
)

// File is the root of one parsed source file.
type File struct {
	Span source.Span
	// ModuleSyntax is set when the file contains top-level import or
	// export declarations.
	ModuleSyntax bool
	Stmts        []StmtID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Stmts: make([]StmtID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
