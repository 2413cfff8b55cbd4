/*
File    : gobasic/parser/stmt.go
Package : parser
*/
package parser

import "github.com/basiclang/gobasic/ast"

// parseStatement implements `statement := 'RETURN' expr? | 'CONTINUE' |
// 'BREAK' | expr`.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch {
	case p.atKeyword("RETURN"):
		return p.parseReturnStatement()
	case p.atKeyword("CONTINUE"):
		tok := p.advance()
		return ast.NewContinue(tok.Start, tok.End), nil
	case p.atKeyword("BREAK"):
		tok := p.advance()
		return ast.NewBreak(tok.Start, tok.End), nil
	default:
		return p.parseExpr()
	}
}

// parseReturnStatement implements the bare-RETURN backtracking named in
// spec.md §4.2: RETURN's value is optional, and whether one follows can
// only be known by trying to parse an expression and rewinding on
// failure — there is no token that unambiguously marks "no value here"
// since a return value can itself start with almost anything.
func (p *Parser) parseReturnStatement() (ast.Node, error) {
	kw := p.advance()
	start, end := kw.Start, kw.End

	before := p.snapshot()
	value, err := p.parseExpr()
	if err != nil {
		p.restore(before)
		return ast.NewReturn(nil, start, end), nil
	}
	return ast.NewReturn(value, start, value.End()), nil
}
