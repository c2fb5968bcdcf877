package lexer

import (
	"sift/internal/token"
)

// scanString consumes a single- or double-quoted string. Escapes are
// carried through verbatim; Text keeps the quotes.
func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(mark)
			lx.report(CodeUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(mark)}
		}
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == quote {
			break
		}
	}
	return token.Token{
		Kind: token.StringLit,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}
