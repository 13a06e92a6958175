package parser

import (
	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/token"
)

// parseDecls parses `decls := (constDecl | varDecl | procDecl)*`.
func (p *Parser) parseDecls() []ast.Decl {
	var decls []ast.Decl
	for !p.failed() {
		switch p.cur.Type {
		case token.CONST:
			decls = append(decls, p.parseConstDecl())
		case token.VAR:
			decls = append(decls, p.parseVarDecl())
		case token.PROCEDURE:
			decls = append(decls, p.parseProcDecl())
		default:
			return decls
		}
	}
	return decls
}

// parseConstDecl parses `'CONST' ident '=' expr ';'`.
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	p.expect(token.CONST)
	pos := p.cur.Pos
	name := p.expectIdent()
	p.expect(token.EQ)
	value := p.parseExpr()
	p.expect(token.SEMI)
	return &ast.ConstDecl{NamePos: pos, Name: name, Value: value}
}

// parseVarDecl parses `'VAR' identList ':' type ';'`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	p.expect(token.VAR)
	pos := p.cur.Pos
	names := []string{p.expectIdent()}
	for p.cur.Type == token.COMMA {
		p.next()
		names = append(names, p.expectIdent())
	}
	p.expect(token.COLON)
	typ := p.parseType()
	p.expect(token.SEMI)
	return &ast.VarDecl{NamePos: pos, Names: names, Type: typ}
}

// parseProcDecl parses:
//
//	procDecl := 'PROCEDURE' ident '(' params? ')' (':' type)? ';'
//	            decls 'BEGIN' stmts 'END' ident ';'
func (p *Parser) parseProcDecl() *ast.ProcDecl {
	p.expect(token.PROCEDURE)
	pos := p.cur.Pos
	name := p.expectIdent()

	p.expect(token.LPAREN)
	var params []*ast.Param
	if p.cur.Type != token.RPAREN {
		params = append(params, p.parseParamGroup()...)
		for p.cur.Type == token.SEMI {
			p.next()
			params = append(params, p.parseParamGroup()...)
		}
	}
	p.expect(token.RPAREN)

	var retType ast.TypeExpr
	if p.cur.Type == token.COLON {
		p.next()
		retType = p.parseType()
	}
	p.expect(token.SEMI)

	locals := p.parseDecls()

	p.expect(token.BEGIN)
	body := p.parseStmtList(token.END)
	p.expect(token.END)
	trailing := p.expectIdent()
	p.expect(token.SEMI)

	if !p.failed() && trailing != name {
		p.fail("trailing name %q does not match procedure name %q", trailing, name)
	}

	return &ast.ProcDecl{
		NamePos:      pos,
		Name:         name,
		Params:       params,
		ReturnType:   retType,
		Locals:       locals,
		Body:         body,
		TrailingName: trailing,
	}
}

// parseParamGroup parses `identList ':' type`, one or more comma-joined
// names sharing a type; it is split into one *ast.Param per name, since
// the IR emitter needs one distinct value per parameter.
func (p *Parser) parseParamGroup() []*ast.Param {
	names := []string{p.expectIdent()}
	for p.cur.Type == token.COMMA {
		p.next()
		names = append(names, p.expectIdent())
	}
	p.expect(token.COLON)
	typ := p.parseType()

	params := make([]*ast.Param, len(names))
	for i, n := range names {
		params[i] = &ast.Param{Name: n, Type: typ}
	}
	return params
}
