package parser

import (
	"strconv"

	"github.com/oberon-go/oberonc/internal/ast"
	"github.com/oberon-go/oberonc/internal/token"
)

// relOps maps a relational token to its ast.BinaryOpKind, per the
// `expr := simpleExpr (relOp simpleExpr)?` production (spec.md §4.2).
var relOps = map[token.Type]ast.BinaryOpKind{
	token.EQ:  ast.OpEq,
	token.NEQ: ast.OpNeq,
	token.LT:  ast.OpLt,
	token.LEQ: ast.OpLeq,
	token.GT:  ast.OpGt,
	token.GEQ: ast.OpGeq,
}

// addOps maps an additive-level token to its ast.BinaryOpKind, per the
// `simpleExpr := ('+'|'-')? term (addOp term)*` production.
var addOps = map[token.Type]ast.BinaryOpKind{
	token.PLUS:  ast.OpAdd,
	token.MINUS: ast.OpSub,
	token.OR:    ast.OpOr,
}

// mulOps maps a multiplicative-level token to its ast.BinaryOpKind, per
// the `term := factor (mulOp factor)*` production.
var mulOps = map[token.Type]ast.BinaryOpKind{
	token.STAR:  ast.OpMul,
	token.SLASH: ast.OpDiv,
	token.DIV:   ast.OpDivI,
	token.MOD:   ast.OpMod,
	token.AND:   ast.OpAnd,
}

// parseExpr parses `expr := simpleExpr (relOp simpleExpr)?`. Relational
// operators do not chain: `a < b < c` is not valid Oberon-subset syntax,
// matching the grammar's single optional `(relOp simpleExpr)?`.
func (p *Parser) parseExpr() ast.Expression {
	left := p.parseSimpleExpr()
	if op, ok := relOps[p.cur.Type]; ok && !p.failed() {
		opPos := p.cur.Pos
		p.next()
		right := p.parseSimpleExpr()
		return &ast.BinaryExpr{OpPos: opPos, Op: op, Left: left, Right: right}
	}
	return left
}

// parseSimpleExpr parses `simpleExpr := ('+'|'-')? term (addOp term)*`.
func (p *Parser) parseSimpleExpr() ast.Expression {
	var unary *ast.UnaryOpKind
	if p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		var k ast.UnaryOpKind
		if p.cur.Type == token.PLUS {
			k = ast.UnaryPlus
		} else {
			k = ast.UnaryMinus
		}
		unary = &k
		p.next()
	}

	left := p.parseTerm()
	if unary != nil {
		left = &ast.UnaryExpr{Op: *unary, Operand: left}
	}

	for {
		op, ok := addOps[p.cur.Type]
		if !ok || p.failed() {
			break
		}
		opPos := p.cur.Pos
		p.next()
		right := p.parseTerm()
		left = &ast.BinaryExpr{OpPos: opPos, Op: op, Left: left, Right: right}
	}
	return left
}

// parseTerm parses `term := factor (mulOp factor)*`.
func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	for {
		op, ok := mulOps[p.cur.Type]
		if !ok || p.failed() {
			break
		}
		opPos := p.cur.Pos
		p.next()
		right := p.parseFactor()
		left = &ast.BinaryExpr{OpPos: opPos, Op: op, Left: left, Right: right}
	}
	return left
}

// parseFactor parses `factor := designator | literal | '(' expr ')' | funcCall`.
func (p *Parser) parseFactor() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		return p.parseIntLiteral()
	case token.REAL:
		return p.parseRealLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.LPAREN:
		p.next()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e
	case token.IDENT:
		pos := p.cur.Pos
		name := p.expectIdent()
		if p.cur.Type == token.LPAREN {
			args := p.parseArgList()
			return &ast.FuncCall{CalleePos: pos, Callee: name, Args: args}
		}
		return p.parseDesignatorTail(pos, name)
	default:
		p.fail("expected an expression, got %s %q", p.cur.Type, p.cur.Lexeme)
		return nil
	}
}

// parseDesignatorTail parses zero or more `'[' expr (',' expr)* ']'`
// suffixes of a designator whose leading identifier has already been
// consumed. `a[i, j]` is sugar for `a[i][j]` (spec.md §4.2), so both
// forms are collected into one flat Indices slice; the semantic analyzer
// treats a multi-entry Indices the same way either spelling produces it.
func (p *Parser) parseDesignatorTail(pos token.Position, name string) *ast.Designator {
	var indices []ast.Expression
	for p.cur.Type == token.LBRACK && !p.failed() {
		p.next()
		indices = append(indices, p.parseExpr())
		for p.cur.Type == token.COMMA {
			p.next()
			indices = append(indices, p.parseExpr())
		}
		p.expect(token.RBRACK)
	}
	return &ast.Designator{NamePos: pos, Name: name, Indices: indices}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	pos := p.cur.Pos
	lexeme := p.cur.Lexeme
	n, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		n = 0
	}
	p.next()
	return &ast.Literal{LitPos: pos, Kind: ast.IntLiteral, IntValue: int32(n)}
}

func (p *Parser) parseRealLiteral() ast.Expression {
	pos := p.cur.Pos
	lexeme := p.cur.Lexeme
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		f = 0
	}
	p.next()
	return &ast.Literal{LitPos: pos, Kind: ast.RealLiteral, RealValue: f}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	pos := p.cur.Pos
	s := p.cur.Lexeme
	p.next()
	return &ast.Literal{LitPos: pos, Kind: ast.StringLiteral, StrValue: s}
}
