// Package token defines lexical token kinds for the JavaScript/TypeScript
// subset understood by sift.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Contextual TypeScript words ("type", "interface") are real keywords
//     here; the parser decides whether they start a declaration.
package token
