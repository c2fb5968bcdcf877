package ast

import (
	"sift/internal/source"
)

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Expr ExprID
}

type BlockStmt struct {
	Body []StmtID
}

type IfStmt struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

type WhileStmt struct {
	Cond ExprID
	Body StmtID
}

// ForStmt is a classic three-clause for loop. Any clause may be absent.
type ForStmt struct {
	Init StmtID // var decl or expression statement, NoStmtID when empty
	Cond ExprID
	Post ExprID
	Body StmtID
}

type ReturnStmt struct {
	Value ExprID // NoExprID for a bare return
}

func (s *Stmts) NewExprStmt(expr ExprID, span source.Span) StmtID {
	payload := s.Exprs.Allocate(ExprStmt{Expr: expr})
	return s.New(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewBlock(body []StmtID, span source.Span) StmtID {
	payload := s.Blocks.Allocate(BlockStmt{Body: body})
	return s.New(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*BlockStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(cond ExprID, then, els StmtID, span source.Span) StmtID {
	payload := s.Ifs.Allocate(IfStmt{Cond: cond, Then: then, Else: els})
	return s.New(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*IfStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(cond ExprID, body StmtID, span source.Span) StmtID {
	payload := s.Whiles.Allocate(WhileStmt{Cond: cond, Body: body})
	return s.New(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*WhileStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewFor(init StmtID, cond, post ExprID, body StmtID, span source.Span) StmtID {
	payload := s.Fors.Allocate(ForStmt{Init: init, Cond: cond, Post: post, Body: body})
	return s.New(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*ForStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewReturn(value ExprID, span source.Span) StmtID {
	payload := s.Returns.Allocate(ReturnStmt{Value: value})
	return s.New(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*ReturnStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}
