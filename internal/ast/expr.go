package ast

import (
	"sift/internal/source"
	"sift/internal/token"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprNumber
	ExprString
	ExprBool
	ExprNull
	ExprUnary
	ExprBinary
	ExprAssign
	ExprCall
	ExprMember
	ExprParen
	// ExprBad marks a recovery placeholder emitted after a parse error.
	ExprBad
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// Exprs owns the expression arena plus per-kind payload arenas.
// ExprNull carries no payload.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentExpr]
	Numbers  *Arena[NumberExpr]
	Strings  *Arena[StringExpr]
	Bools    *Arena[BoolExpr]
	Unaries  *Arena[UnaryExpr]
	Binaries *Arena[BinaryExpr]
	Assigns  *Arena[AssignExpr]
	Calls    *Arena[CallExpr]
	Members  *Arena[MemberExpr]
	Parens   *Arena[ParenExpr]
}

type IdentExpr struct {
	Name string
}

type NumberExpr struct {
	Text string
}

type StringExpr struct {
	Raw string // original text including quotes
}

type BoolExpr struct {
	Value bool
}

type UnaryExpr struct {
	Op      token.Kind
	Operand ExprID
}

type BinaryExpr struct {
	Op    token.Kind
	Left  ExprID
	Right ExprID
}

type AssignExpr struct {
	Target ExprID
	Value  ExprID
}

type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

type MemberExpr struct {
	Object   ExprID
	Name     string
	NameSpan source.Span
}

type ParenExpr struct {
	Inner ExprID
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentExpr](capHint),
		Numbers:  NewArena[NumberExpr](capHint),
		Strings:  NewArena[StringExpr](capHint),
		Bools:    NewArena[BoolExpr](capHint),
		Unaries:  NewArena[UnaryExpr](capHint),
		Binaries: NewArena[BinaryExpr](capHint),
		Assigns:  NewArena[AssignExpr](capHint),
		Calls:    NewArena[CallExpr](capHint),
		Members:  NewArena[MemberExpr](capHint),
		Parens:   NewArena[ParenExpr](capHint),
	}
}

func (e *Exprs) New(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewBad allocates a placeholder expression covering span.
func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.New(ExprBad, span, NoPayloadID)
}
