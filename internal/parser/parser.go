package parser

import (
	"fmt"

	"fortio.org/safecast"

	"sift/internal/ast"
	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/source"
	"sift/internal/token"
)

// Error codes reported by the parser.
const (
	CodeUnexpectedToken  = "parse/unexpected-token"
	CodeExpectIdent      = "parse/expect-identifier"
	CodeExpectExpression = "parse/expect-expression"
	CodeUnclosedBrace    = "parse/unclosed-brace"
)

type Options struct {
	Reporter diag.Reporter // may be nil
	// MaxErrors stops parsing after that many reports; 0 means no limit.
	MaxErrors uint
}

// Result carries the parsed file and module-mode detection.
type Result struct {
	File ast.FileID
	// ModuleSyntax is true when a top-level import/export was seen.
	ModuleSyntax bool
	Errors       uint
}

type parser struct {
	lx      *lexer.Lexer
	builder *ast.Builder
	opts    Options

	tok    token.Token
	prev   source.Span // span of the last consumed token
	errors uint
	fatal  bool

	moduleSyntax bool
}

// ParseFile parses the lexer's whole file into the builder and returns
// the new file root. A Result is produced even for broken input; the
// caller decides, based on Errors, whether to hand the tree to rules.
func ParseFile(lx *lexer.Lexer, b *ast.Builder, opts Options) Result {
	file := lx.File()
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	fileSpan := source.Span{File: file.ID, Start: 0, End: lenContent}

	p := &parser{
		lx:      lx,
		builder: b,
		opts:    opts,
	}
	p.advance()

	fileID := b.Files.New(fileSpan)
	root := b.Files.Get(fileID)

	for !p.at(token.EOF) && !p.fatal {
		before := p.tok.Span
		if id := p.parseStmt(); id.IsValid() {
			root.Stmts = append(root.Stmts, id)
		}
		// A statement parser that consumed nothing would loop forever;
		// skip the offending token.
		if p.tok.Span == before && !p.at(token.EOF) {
			p.advance()
		}
	}

	root.ModuleSyntax = p.moduleSyntax
	return Result{
		File:         fileID,
		ModuleSyntax: p.moduleSyntax,
		Errors:       p.errors,
	}
}

func (p *parser) advance() {
	p.prev = p.tok.Span
	p.tok = p.lx.Next()
}

func (p *parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// eat consumes the current token when it matches.
func (p *parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or reports and leaves the
// token in place.
func (p *parser) expect(kind token.Kind, code string) bool {
	if p.eat(kind) {
		return true
	}
	p.report(code, p.tok.Span, fmt.Sprintf("expected %s, found %s", kind, p.describeTok()))
	return false
}

func (p *parser) describeTok() string {
	if p.tok.Kind == token.EOF {
		return "end of file"
	}
	if p.tok.Text != "" {
		return fmt.Sprintf("%q", p.tok.Text)
	}
	return p.tok.Kind.String()
}

func (p *parser) report(code string, sp source.Span, msg string) {
	if p.fatal {
		return
	}
	p.errors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(diag.SevError, code, sp, msg)
	}
	if p.opts.MaxErrors > 0 && p.errors >= p.opts.MaxErrors {
		p.fatal = true
	}
}

// spanFrom covers from a start span to the last consumed token.
func (p *parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.prev)
}
