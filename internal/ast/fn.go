package ast

import (
	"sift/internal/source"
)

// FnDeclStmt is a `function name(params) { body }` declaration.
type FnDeclStmt struct {
	Name     string
	NameSpan source.Span
	Params   []ParamID
	Return   TypeID // NoTypeID when no annotation
	Body     StmtID // always a block
	Span     source.Span
}

type FnParam struct {
	Name     string
	NameSpan source.Span
	Type     TypeID // NoTypeID when no annotation
	Span     source.Span
}

func (s *Stmts) NewParam(name string, nameSpan source.Span, typeID TypeID, span source.Span) ParamID {
	return ParamID(s.Params.Allocate(FnParam{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typeID,
		Span:     span,
	}))
}

func (s *Stmts) Param(id ParamID) *FnParam {
	return s.Params.Get(uint32(id))
}

func (s *Stmts) NewFnDecl(name string, nameSpan source.Span, params []ParamID, ret TypeID, body StmtID, span source.Span) StmtID {
	payload := s.Fns.Allocate(FnDeclStmt{
		Name:     name,
		NameSpan: nameSpan,
		Params:   params,
		Return:   ret,
		Body:     body,
		Span:     span,
	})
	return s.New(StmtFnDecl, span, PayloadID(payload))
}

func (s *Stmts) FnDecl(id StmtID) (*FnDeclStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtFnDecl {
		return nil, false
	}
	return s.Fns.Get(uint32(stmt.Payload)), true
}
