package ast

import (
	"sift/internal/source"
	"sift/internal/token"
)

func (e *Exprs) NewIdent(name string, span source.Span) ExprID {
	payload := e.Idents.Allocate(IdentExpr{Name: name})
	return e.New(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewNumber(text string, span source.Span) ExprID {
	payload := e.Numbers.Allocate(NumberExpr{Text: text})
	return e.New(ExprNumber, span, PayloadID(payload))
}

func (e *Exprs) Number(id ExprID) (*NumberExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewString(raw string, span source.Span) ExprID {
	payload := e.Strings.Allocate(StringExpr{Raw: raw})
	return e.New(ExprString, span, PayloadID(payload))
}

func (e *Exprs) String(id ExprID) (*StringExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprString {
		return nil, false
	}
	return e.Strings.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBool(value bool, span source.Span) ExprID {
	payload := e.Bools.Allocate(BoolExpr{Value: value})
	return e.New(ExprBool, span, PayloadID(payload))
}

func (e *Exprs) Bool(id ExprID) (*BoolExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprBool {
		return nil, false
	}
	return e.Bools.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewNull(span source.Span) ExprID {
	return e.New(ExprNull, span, NoPayloadID)
}

func (e *Exprs) NewUnary(op token.Kind, operand ExprID, span source.Span) ExprID {
	payload := e.Unaries.Allocate(UnaryExpr{Op: op, Operand: operand})
	return e.New(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*UnaryExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(op token.Kind, left, right ExprID, span source.Span) ExprID {
	payload := e.Binaries.Allocate(BinaryExpr{Op: op, Left: left, Right: right})
	return e.New(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*BinaryExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(target, value ExprID, span source.Span) ExprID {
	payload := e.Assigns.Allocate(AssignExpr{Target: target, Value: value})
	return e.New(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*AssignExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(callee ExprID, args []ExprID, span source.Span) ExprID {
	payload := e.Calls.Allocate(CallExpr{Callee: callee, Args: args})
	return e.New(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*CallExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(object ExprID, name string, nameSpan, span source.Span) ExprID {
	payload := e.Members.Allocate(MemberExpr{Object: object, Name: name, NameSpan: nameSpan})
	return e.New(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*MemberExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewParen(inner ExprID, span source.Span) ExprID {
	payload := e.Parens.Allocate(ParenExpr{Inner: inner})
	return e.New(ExprParen, span, PayloadID(payload))
}

func (e *Exprs) Paren(id ExprID) (*ParenExpr, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}
