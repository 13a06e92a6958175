// Package parser implements a hand-written recursive-descent parser over
// the grammar in spec.md §4.2, mirroring the teacher's
// internal/parser package split (one file per grammar concern) but with
// no Pratt/precedence-climbing machinery: the grammar is already
// stratified into expr/simpleExpr/term/factor productions, so a direct
// recursive descent over that stratification is the natural fit.
//
// Parsing stops at the first error (spec.md §4.2 / §7): there is no
// panic-mode recovery, unlike the teacher's parser.
package parser

import (
	"fmt"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/lexer"
	"github.com/oberon-go/oberonc/internal/token"
)

// Parser consumes tokens from a Lexer one at a time, keeping a single
// token of lookahead (cur/peek), the classic recursive-descent shape.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	err *Error // first error encountered; nil until then
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// Err returns the first parse error encountered, or nil on success.
func (p *Parser) Err() *Error { return p.err }

// failed reports whether parsing has already aborted.
func (p *Parser) failed() bool { return p.err != nil }

func (p *Parser) fail(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &Error{Message: fmt.Sprintf(format, args...), Pos: p.cur.Pos}
}

// expect consumes the current token if it has type tt, recording a parse
// error otherwise. Returns the consumed token (zero value on mismatch).
func (p *Parser) expect(tt token.Type) token.Token {
	if p.failed() {
		return token.Token{}
	}
	if p.cur.Type != tt {
		p.fail("expected %s, got %s %q", tt, p.cur.Type, p.cur.Lexeme)
		return token.Token{}
	}
	t := p.cur
	p.next()
	return t
}

// expectIdent consumes an IDENT token, returning its lexeme.
func (p *Parser) expectIdent() string {
	t := p.expect(token.IDENT)
	return t.Lexeme
}

// ParseModule parses the whole program: spec.md §4.2 `program`
// production. On any error it returns a possibly-partial Module; callers
// must check Err() before using the result.
func (p *Parser) ParseModule() *ast.Module {
	namePos := p.cur.Pos
	p.expect(token.MODULE)
	name := p.expectIdent()
	p.expect(token.SEMI)

	decls := p.parseDecls()

	p.expect(token.BEGIN)
	body := p.parseStmtList(token.END)
	p.expect(token.END)
	trailing := p.expectIdent()
	p.expect(token.DOT)

	if !p.failed() && trailing != name {
		p.err = &Error{
			Message: fmt.Sprintf("trailing name %q does not match module name %q", trailing, name),
			Pos:     namePos,
		}
	}

	return &ast.Module{
		NamePos:      namePos,
		Name:         name,
		Decls:        decls,
		Body:         body,
		TrailingName: trailing,
	}
}

// atStmtTerminator reports whether cur ends a statement list, i.e. it is
// one of the tokens that can legally follow the last statement in a
// `stmts` production (spec.md §4.2).
func atStmtTerminator(tt token.Type) bool {
	switch tt {
	case token.END, token.ELSE, token.EOF:
		return true
	}
	return false
}

// parseStmtList parses `stmts := stmt (';' stmt)*` up to (but not
// consuming) a terminator token.
func (p *Parser) parseStmtList(_ token.Type) []ast.Statement {
	var stmts []ast.Statement
	for !p.failed() && !atStmtTerminator(p.cur.Type) {
		stmts = append(stmts, p.parseStmt())
		if p.failed() {
			break
		}
		if p.cur.Type == token.SEMI {
			p.next()
			continue
		}
		break
	}
	return stmts
}
