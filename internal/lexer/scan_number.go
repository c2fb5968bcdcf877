package lexer

import (
	"sift/internal/token"
)

// scanNumber consumes a decimal literal with an optional fraction.
// Exponents and non-decimal bases are not part of the subset; the rules
// only inspect declaration structure, never numeric values.
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDigitByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDigitByte(b1) {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDigitByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return token.Token{
		Kind: token.NumberLit,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}
