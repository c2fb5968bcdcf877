package ast

import (
	"sift/internal/source"
)

type StmtKind uint8

const (
	StmtVarDecl StmtKind = iota
	StmtExpr
	StmtBlock
	StmtIf
	StmtWhile
	StmtFor
	StmtReturn
	StmtFnDecl
	StmtDebugger
	StmtEmpty
	StmtTypeAlias
	StmtInterface
	StmtImport
	StmtExport
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// Stmts owns the statement arena plus one payload arena per kind that
// carries data. Kinds without payloads (debugger, empty) keep
// NoPayloadID.
type Stmts struct {
	Arena       *Arena[Stmt]
	VarDecls    *Arena[VarDeclStmt]
	Declarators *Arena[VarDeclarator]
	Exprs       *Arena[ExprStmt]
	Blocks      *Arena[BlockStmt]
	Ifs         *Arena[IfStmt]
	Whiles      *Arena[WhileStmt]
	Fors        *Arena[ForStmt]
	Returns     *Arena[ReturnStmt]
	Fns         *Arena[FnDeclStmt]
	Params      *Arena[FnParam]
	TypeAliases *Arena[TypeAliasStmt]
	Interfaces  *Arena[InterfaceStmt]
	Imports     *Arena[ImportStmt]
	Exports     *Arena[ExportStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:       NewArena[Stmt](capHint),
		VarDecls:    NewArena[VarDeclStmt](capHint),
		Declarators: NewArena[VarDeclarator](capHint),
		Exprs:       NewArena[ExprStmt](capHint),
		Blocks:      NewArena[BlockStmt](capHint),
		Ifs:         NewArena[IfStmt](capHint),
		Whiles:      NewArena[WhileStmt](capHint),
		Fors:        NewArena[ForStmt](capHint),
		Returns:     NewArena[ReturnStmt](capHint),
		Fns:         NewArena[FnDeclStmt](capHint),
		Params:      NewArena[FnParam](capHint),
		TypeAliases: NewArena[TypeAliasStmt](capHint),
		Interfaces:  NewArena[InterfaceStmt](capHint),
		Imports:     NewArena[ImportStmt](capHint),
		Exports:     NewArena[ExportStmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewDebugger allocates a `debugger;` statement.
func (s *Stmts) NewDebugger(span source.Span) StmtID {
	return s.New(StmtDebugger, span, NoPayloadID)
}

// NewEmpty allocates a lone `;` statement.
func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.New(StmtEmpty, span, NoPayloadID)
}
