package parser

import (
	"sift/internal/ast"
	"sift/internal/token"
)

func (p *parser) parseStmt() ast.StmtID {
	switch p.tok.Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarDecl()
	case token.KwDebugger:
		start := p.tok.Span
		p.advance()
		p.eat(token.Semicolon)
		return p.builder.Stmts.NewDebugger(p.spanFrom(start))
	case token.Semicolon:
		start := p.tok.Span
		p.advance()
		return p.builder.Stmts.NewEmpty(start)
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwFunction:
		return p.parseFnDecl()
	case token.KwType:
		return p.parseTypeAlias()
	case token.KwInterface:
		return p.parseInterface()
	case token.KwImport:
		return p.parseImport()
	case token.KwExport:
		return p.parseExport()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseVarDecl() ast.StmtID {
	kwSpan := p.tok.Span
	var kind ast.DeclKind
	switch p.tok.Kind {
	case token.KwVar:
		kind = ast.DeclVar
	case token.KwLet:
		kind = ast.DeclLet
	default:
		kind = ast.DeclConst
	}
	p.advance()

	var decls []ast.DeclID
	for {
		declStart := p.tok.Span
		name := p.tok.Text
		nameSpan := p.tok.Span
		if !p.expect(token.Ident, CodeExpectIdent) {
			break
		}

		typeID := ast.NoTypeID
		if p.eat(token.Colon) {
			typeID = p.parseType()
		}

		init := ast.NoExprID
		if p.eat(token.Assign) {
			init = p.parseAssignExpr()
		}

		decls = append(decls, p.builder.Stmts.NewDeclarator(name, nameSpan, typeID, init, p.spanFrom(declStart)))

		if !p.eat(token.Comma) {
			break
		}
	}

	p.eat(token.Semicolon)
	return p.builder.Stmts.NewVarDecl(kind, decls, kwSpan, p.spanFrom(kwSpan))
}

func (p *parser) parseExprStmt() ast.StmtID {
	start := p.tok.Span
	expr := p.parseExpr()
	p.eat(token.Semicolon)
	return p.builder.Stmts.NewExprStmt(expr, p.spanFrom(start))
}

func (p *parser) parseBlock() ast.StmtID {
	start := p.tok.Span
	p.advance() // '{'

	var body []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		before := p.tok.Span
		if id := p.parseStmt(); id.IsValid() {
			body = append(body, id)
		}
		if p.tok.Span == before && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.advance()
		}
	}
	p.expect(token.RBrace, CodeUnclosedBrace)
	return p.builder.Stmts.NewBlock(body, p.spanFrom(start))
}

func (p *parser) parseIf() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'if'
	p.expect(token.LParen, CodeUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, CodeUnexpectedToken)
	then := p.parseStmt()
	els := ast.NoStmtID
	if p.eat(token.KwElse) {
		els = p.parseStmt()
	}
	return p.builder.Stmts.NewIf(cond, then, els, p.spanFrom(start))
}

func (p *parser) parseWhile() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'while'
	p.expect(token.LParen, CodeUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, CodeUnexpectedToken)
	body := p.parseStmt()
	return p.builder.Stmts.NewWhile(cond, body, p.spanFrom(start))
}

func (p *parser) parseFor() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'for'
	p.expect(token.LParen, CodeUnexpectedToken)

	init := ast.NoStmtID
	switch p.tok.Kind {
	case token.Semicolon:
		p.advance()
	case token.KwVar, token.KwLet, token.KwConst:
		// parseVarDecl consumes the separating semicolon itself.
		init = p.parseVarDecl()
	default:
		init = p.parseExprStmt()
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RParen) {
		cond = p.parseExpr()
	}
	p.eat(token.Semicolon)

	post := ast.NoExprID
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expect(token.RParen, CodeUnexpectedToken)

	body := p.parseStmt()
	return p.builder.Stmts.NewFor(init, cond, post, body, p.spanFrom(start))
}

func (p *parser) parseReturn() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'return'
	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		value = p.parseExpr()
	}
	p.eat(token.Semicolon)
	return p.builder.Stmts.NewReturn(value, p.spanFrom(start))
}

func (p *parser) parseFnDecl() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'function'

	name := p.tok.Text
	nameSpan := p.tok.Span
	p.expect(token.Ident, CodeExpectIdent)

	p.expect(token.LParen, CodeUnexpectedToken)
	var params []ast.ParamID
	for !p.at(token.RParen) && !p.at(token.EOF) && !p.fatal {
		pStart := p.tok.Span
		pName := p.tok.Text
		pNameSpan := p.tok.Span
		if !p.expect(token.Ident, CodeExpectIdent) {
			break
		}
		typeID := ast.NoTypeID
		if p.eat(token.Colon) {
			typeID = p.parseType()
		}
		params = append(params, p.builder.Stmts.NewParam(pName, pNameSpan, typeID, p.spanFrom(pStart)))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, CodeUnexpectedToken)

	ret := ast.NoTypeID
	if p.eat(token.Colon) {
		ret = p.parseType()
	}

	body := ast.NoStmtID
	if p.at(token.LBrace) {
		body = p.parseBlock()
	} else {
		p.report(CodeUnexpectedToken, p.tok.Span, "expected function body")
	}
	return p.builder.Stmts.NewFnDecl(name, nameSpan, params, ret, body, p.spanFrom(start))
}

func (p *parser) parseImport() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'import'
	p.moduleSyntax = true

	var names []string
	from := ""
	switch p.tok.Kind {
	case token.StringLit:
		// import "side-effect";
		from = p.tok.Text
		p.advance()
	case token.LBrace:
		p.advance()
		for p.at(token.Ident) {
			names = append(names, p.tok.Text)
			p.advance()
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, CodeUnclosedBrace)
		p.expect(token.KwFrom, CodeUnexpectedToken)
		from = p.tok.Text
		p.expect(token.StringLit, CodeUnexpectedToken)
	default:
		name := p.tok.Text
		if p.expect(token.Ident, CodeExpectIdent) {
			names = append(names, name)
		}
		p.expect(token.KwFrom, CodeUnexpectedToken)
		from = p.tok.Text
		p.expect(token.StringLit, CodeUnexpectedToken)
	}
	p.eat(token.Semicolon)
	return p.builder.Stmts.NewImport(names, from, p.spanFrom(start))
}

func (p *parser) parseExport() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'export'
	p.moduleSyntax = true
	inner := p.parseStmt()
	return p.builder.Stmts.NewExport(inner, p.spanFrom(start))
}

func (p *parser) parseTypeAlias() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'type'

	name := p.tok.Text
	nameSpan := p.tok.Span
	p.expect(token.Ident, CodeExpectIdent)
	p.expect(token.Assign, CodeUnexpectedToken)
	aliased := p.parseType()
	p.eat(token.Semicolon)
	return p.builder.Stmts.NewTypeAlias(name, nameSpan, aliased, p.spanFrom(start))
}

func (p *parser) parseInterface() ast.StmtID {
	start := p.tok.Span
	p.advance() // 'interface'

	name := p.tok.Text
	nameSpan := p.tok.Span
	p.expect(token.Ident, CodeExpectIdent)
	p.expect(token.LBrace, CodeUnexpectedToken)

	var members []ast.InterfaceMember
	for p.at(token.Ident) && !p.fatal {
		mStart := p.tok.Span
		mName := p.tok.Text
		mNameSpan := p.tok.Span
		p.advance()
		typeID := ast.NoTypeID
		if p.eat(token.Colon) {
			typeID = p.parseType()
		}
		members = append(members, ast.InterfaceMember{
			Name:     mName,
			NameSpan: mNameSpan,
			Type:     typeID,
			Span:     p.spanFrom(mStart),
		})
		if !p.eat(token.Semicolon) && !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, CodeUnclosedBrace)
	return p.builder.Stmts.NewInterface(name, nameSpan, members, p.spanFrom(start))
}
