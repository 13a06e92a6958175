package parser

import (
	"strconv"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/token"
)

// parseType parses:
//
//	type := 'INTEGER' | 'REAL' | 'STRING'
//	      | 'ARRAY' intLit (',' intLit)* 'OF' baseType
//
// Both the nested form (`ARRAY n OF ARRAY m OF T`) and the shorthand
// (`ARRAY n, m OF T`) are accepted here and produce the same
// ast.ArrayTypeExpr shape, per spec.md §4.2.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.cur.Type {
	case token.INTEGER:
		p.next()
		return &ast.NamedType{Name: "INTEGER"}
	case token.REALTYPE:
		p.next()
		return &ast.NamedType{Name: "REAL"}
	case token.STRINGTYPE:
		p.next()
		return &ast.NamedType{Name: "STRING"}
	case token.ARRAY:
		return p.parseArrayType()
	default:
		p.fail("expected a type, got %s %q", p.cur.Type, p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseArrayType() ast.TypeExpr {
	p.expect(token.ARRAY)
	lengths := []int{p.parseIntLit()}
	for p.cur.Type == token.COMMA {
		p.next()
		lengths = append(lengths, p.parseIntLit())
	}
	p.expect(token.OF)
	elem := p.parseType()
	return &ast.ArrayTypeExpr{Lengths: lengths, Element: elem}
}

func (p *Parser) parseIntLit() int {
	if p.failed() {
		return 0
	}
	if p.cur.Type != token.INT {
		p.fail("expected an integer literal for array length, got %s %q", p.cur.Type, p.cur.Lexeme)
		return 0
	}
	n, err := strconv.Atoi(p.cur.Lexeme)
	if err != nil || n <= 0 {
		p.fail("array length must be a positive integer, got %q", p.cur.Lexeme)
		p.next()
		return 0
	}
	p.next()
	return n
}
