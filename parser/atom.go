/*
File    : gobasic/parser/atom.go
Package : parser
*/
package parser

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/token"
)

// parseAtom implements:
//
//	atom := INT | FLOAT | STRING | IDENT
//	      | '(' expr ')' | list | if | for | while | func
func (p *Parser) parseAtom() (ast.Node, error) {
	tok := p.current()
	switch {
	case tok.Kind == token.INT:
		p.advance()
		return ast.NewNumberLiteral(tok.Value, false, tok.Start, tok.End), nil

	case tok.Kind == token.FLOAT:
		p.advance()
		return ast.NewNumberLiteral(tok.Value, true, tok.Start, tok.End), nil

	case tok.Kind == token.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Value, tok.Start, tok.End), nil

	case tok.Kind == token.IDENTIFIER:
		p.advance()
		return ast.NewVarAccess(tok.Value, tok.Start, tok.End), nil

	case tok.Kind == token.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Kind == token.LSBRAC:
		return p.parseList()

	case tok.Is(token.KEYWORD, "IF"):
		return p.parseIf()

	case tok.Is(token.KEYWORD, "FOR"):
		return p.parseFor()

	case tok.Is(token.KEYWORD, "WHILE"):
		return p.parseWhile()

	case tok.Is(token.KEYWORD, "FUNC"):
		return p.parseFuncDef()

	default:
		return nil, p.syntaxError("expected int, float, identifier, string, '(', '[', IF, FOR, WHILE or FUNC")
	}
}

// parseList implements `list := '[' (expr (',' expr)*)? ']'`.
func (p *Parser) parseList() (ast.Node, error) {
	open := p.advance() // consume '['

	var elems []ast.Node
	if !p.at(token.RSBRAC) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		for p.at(token.COMMA) {
			p.advance()
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	}

	close, err := p.expect(token.RSBRAC)
	if err != nil {
		return nil, err
	}
	return ast.NewListLiteral(elems, open.Start, close.End), nil
}
