package ast

import (
	"sift/internal/source"
)

// DeclKind is the variable-declaration keyword discriminant.
type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclLet
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	}
	return "unknown"
}

// VarDeclStmt is one `var|let|const` statement with its declarators.
type VarDeclStmt struct {
	DeclKind    DeclKind
	Decls       []DeclID
	KeywordSpan source.Span
	Span        source.Span
}

// VarDeclarator is a single `name[: type][= init]` inside a declaration.
type VarDeclarator struct {
	Name     string
	NameSpan source.Span
	Type     TypeID // NoTypeID when there is no annotation
	Init     ExprID // NoExprID when there is no initializer
	Span     source.Span
}

func (s *Stmts) NewDeclarator(name string, nameSpan source.Span, typeID TypeID, init ExprID, span source.Span) DeclID {
	return DeclID(s.Declarators.Allocate(VarDeclarator{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typeID,
		Init:     init,
		Span:     span,
	}))
}

func (s *Stmts) Declarator(id DeclID) *VarDeclarator {
	return s.Declarators.Get(uint32(id))
}

func (s *Stmts) NewVarDecl(kind DeclKind, decls []DeclID, keywordSpan, span source.Span) StmtID {
	payload := s.VarDecls.Allocate(VarDeclStmt{
		DeclKind:    kind,
		Decls:       decls,
		KeywordSpan: keywordSpan,
		Span:        span,
	})
	return s.New(StmtVarDecl, span, PayloadID(payload))
}

// VarDecl returns the payload when id is a StmtVarDecl.
func (s *Stmts) VarDecl(id StmtID) (*VarDeclStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtVarDecl {
		return nil, false
	}
	return s.VarDecls.Get(uint32(stmt.Payload)), true
}
