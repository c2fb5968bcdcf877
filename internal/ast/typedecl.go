package ast

import (
	"sift/internal/source"
)

// TypeAliasStmt is a TypeScript `type Name = ...;` declaration.
// Type-only syntax: the traversal engine prunes it by default.
type TypeAliasStmt struct {
	Name     string
	NameSpan source.Span
	Aliased  TypeID
	Span     source.Span
}

// InterfaceStmt is a TypeScript `interface Name { members }` declaration.
// Type-only syntax, pruned by default like TypeAliasStmt.
type InterfaceStmt struct {
	Name     string
	NameSpan source.Span
	Members  []InterfaceMember
	Span     source.Span
}

type InterfaceMember struct {
	Name     string
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

func (s *Stmts) NewTypeAlias(name string, nameSpan source.Span, aliased TypeID, span source.Span) StmtID {
	payload := s.TypeAliases.Allocate(TypeAliasStmt{
		Name:     name,
		NameSpan: nameSpan,
		Aliased:  aliased,
		Span:     span,
	})
	return s.New(StmtTypeAlias, span, PayloadID(payload))
}

func (s *Stmts) TypeAlias(id StmtID) (*TypeAliasStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtTypeAlias {
		return nil, false
	}
	return s.TypeAliases.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewInterface(name string, nameSpan source.Span, members []InterfaceMember, span source.Span) StmtID {
	payload := s.Interfaces.Allocate(InterfaceStmt{
		Name:     name,
		NameSpan: nameSpan,
		Members:  members,
		Span:     span,
	})
	return s.New(StmtInterface, span, PayloadID(payload))
}

func (s *Stmts) Interface(id StmtID) (*InterfaceStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtInterface {
		return nil, false
	}
	return s.Interfaces.Get(uint32(stmt.Payload)), true
}
