/*
File    : gobasic/parser/func.go
Package : parser
*/
package parser

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/token"
)

// parseFuncDef implements:
//
//	func := 'FUNC' IDENT? '(' (IDENT (',' IDENT)*)? ')'
//	        ( '->' expr                 -- auto-return
//	        | NEWLINE statements 'END' ) -- body, returns NULL unless explicit RETURN
func (p *Parser) parseFuncDef() (ast.Node, error) {
	start := p.advance().Start // consume FUNC

	name := ""
	if p.at(token.IDENTIFIER) {
		name = p.advance().Value
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []string
	if p.at(token.IDENTIFIER) {
		params = append(params, p.advance().Value)
		for p.at(token.COMMA) {
			p.advance()
			paramTok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Value)
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if p.at(token.ARROW) {
		p.advance()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewFuncDef(name, params, body, true, start, body.End()), nil
	}

	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	bodyStart := p.current().Start
	stmts, err := p.parseStatementList(func() bool { return p.atKeyword("END") || p.at(token.EOF) })
	if err != nil {
		return nil, err
	}
	bodyEnd := p.current().Start
	endTok, err := p.expectKeyword("END")
	if err != nil {
		return nil, err
	}
	body := ast.NewBlock(stmts, bodyStart, bodyEnd)
	return ast.NewFuncDef(name, params, body, false, start, endTok.End), nil
}
