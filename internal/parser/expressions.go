package parser

import (
	"sift/internal/ast"
	"sift/internal/token"
)

// parseExpr is the full expression entry point: assignment and below.
func (p *parser) parseExpr() ast.ExprID {
	return p.parseAssignExpr()
}

// parseAssignExpr handles `target = value`, right associative.
func (p *parser) parseAssignExpr() ast.ExprID {
	start := p.tok.Span
	left := p.parseBinaryExpr(0)
	if !p.at(token.Assign) {
		return left
	}
	p.advance()
	right := p.parseAssignExpr()
	return p.builder.Exprs.NewAssign(left, right, p.spanFrom(start))
}

// binaryPrec returns the binding power of an infix operator, 0 for
// non-operators. Higher binds tighter.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.EqEq, token.EqEqEq, token.BangEq, token.BangEqEq:
		return 3
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 4
	case token.Plus, token.Minus:
		return 5
	case token.Star, token.Slash, token.Percent:
		return 6
	default:
		return 0
	}
}

// parseBinaryExpr is precedence climbing; all infix operators here are
// left associative.
func (p *parser) parseBinaryExpr(minPrec int) ast.ExprID {
	start := p.tok.Span
	left := p.parseUnaryExpr()
	for {
		prec := binaryPrec(p.tok.Kind)
		if prec == 0 || prec < minPrec {
			return left
		}
		op := p.tok.Kind
		p.advance()
		right := p.parseBinaryExpr(prec + 1)
		left = p.builder.Exprs.NewBinary(op, left, right, p.spanFrom(start))
	}
}

func (p *parser) parseUnaryExpr() ast.ExprID {
	switch p.tok.Kind {
	case token.Bang, token.Minus, token.Plus:
		start := p.tok.Span
		op := p.tok.Kind
		p.advance()
		operand := p.parseUnaryExpr()
		return p.builder.Exprs.NewUnary(op, operand, p.spanFrom(start))
	default:
		return p.parsePostfixExpr()
	}
}

// parsePostfixExpr applies call and member suffixes to a primary.
func (p *parser) parsePostfixExpr() ast.ExprID {
	start := p.tok.Span
	expr := p.parsePrimaryExpr()
	for {
		switch p.tok.Kind {
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			for !p.at(token.RParen) && !p.at(token.EOF) && !p.fatal {
				args = append(args, p.parseAssignExpr())
				if !p.eat(token.Comma) {
					break
				}
			}
			p.expect(token.RParen, CodeUnexpectedToken)
			expr = p.builder.Exprs.NewCall(expr, args, p.spanFrom(start))
		case token.Dot:
			p.advance()
			name := p.tok.Text
			nameSpan := p.tok.Span
			if !p.expect(token.Ident, CodeExpectIdent) {
				return expr
			}
			expr = p.builder.Exprs.NewMember(expr, name, nameSpan, p.spanFrom(start))
		default:
			return expr
		}
	}
}

// parsePrimaryExpr parses literals, identifiers, and parenthesized
// expressions. On anything else it reports and yields an ExprBad
// placeholder so the caller always receives a node.
func (p *parser) parsePrimaryExpr() ast.ExprID {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.Ident:
		name := p.tok.Text
		p.advance()
		return p.builder.Exprs.NewIdent(name, start)
	case token.NumberLit:
		text := p.tok.Text
		p.advance()
		return p.builder.Exprs.NewNumber(text, start)
	case token.StringLit:
		raw := p.tok.Text
		p.advance()
		return p.builder.Exprs.NewString(raw, start)
	case token.KwTrue:
		p.advance()
		return p.builder.Exprs.NewBool(true, start)
	case token.KwFalse:
		p.advance()
		return p.builder.Exprs.NewBool(false, start)
	case token.KwNull:
		p.advance()
		return p.builder.Exprs.NewNull(start)
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RParen, CodeUnexpectedToken)
		return p.builder.Exprs.NewParen(inner, p.spanFrom(start))
	default:
		p.report(CodeExpectExpression, p.tok.Span, "expected expression, found "+p.describeTok())
		return p.builder.Exprs.NewBad(start)
	}
}

// parseType parses a type annotation: a named reference with optional
// generic arguments, `number` or `Map<string, Foo>`.
func (p *parser) parseType() ast.TypeID {
	start := p.tok.Span
	name := p.tok.Text
	if !p.eat(token.Ident) {
		// Keyword type names (`type T = type;` is nonsense, but the
		// built-in primitives all lex as Ident in this subset).
		p.report(CodeUnexpectedToken, p.tok.Span, "expected type name, found "+p.describeTok())
		return ast.NoTypeID
	}

	var args []ast.TypeID
	if p.eat(token.Lt) {
		for !p.at(token.Gt) && !p.at(token.EOF) && !p.fatal {
			arg := p.parseType()
			if arg.IsValid() {
				args = append(args, arg)
			} else {
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.Gt, CodeUnexpectedToken)
	}
	return p.builder.Types.NewRef(name, args, p.spanFrom(start))
}
