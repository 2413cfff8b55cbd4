/*
File    : gobasic/parser/expr.go
Package : parser
*/
package parser

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/token"
)

// parseExpr implements:
//
//	expr := 'VAR' IDENT ('=' expr)?
//	      | comp ( (AND|OR) comp )*
func (p *Parser) parseExpr() (ast.Node, error) {
	if p.atKeyword("VAR") {
		return p.parseVarAssign()
	}
	return p.parseBinary(p.parseComp, isAndOr)
}

func isAndOr(tok token.Token) bool {
	return tok.Is(token.KEYWORD, "AND") || tok.Is(token.KEYWORD, "OR")
}

func (p *Parser) parseVarAssign() (ast.Node, error) {
	start := p.advance().Start // consume VAR

	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if !p.at(token.EQ) {
		zero := ast.NewNumberLiteral("0", false, nameTok.End, nameTok.End)
		return ast.NewVarAssign(nameTok.Value, zero, start, nameTok.End), nil
	}
	p.advance() // consume '='

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewVarAssign(nameTok.Value, value, start, value.End()), nil
}

// parseComp implements `comp := 'NOT' comp | arith ( (EE|NE|LT|GT|LTE|GTE)
// arith )*`.
func (p *Parser) parseComp() (ast.Node, error) {
	if p.atKeyword("NOT") {
		opTok := p.advance()
		operand, err := p.parseComp()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(token.KEYWORD, "NOT", operand, opTok.Start, operand.End()), nil
	}
	return p.parseBinary(p.parseArith, isComparison)
}

func isComparison(tok token.Token) bool {
	switch tok.Kind {
	case token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE:
		return true
	default:
		return false
	}
}

// parseArith implements `arith := term ( (PLUS|MINUS) term )*`.
func (p *Parser) parseArith() (ast.Node, error) {
	return p.parseBinary(p.parseTerm, isPlusMinus)
}

func isPlusMinus(tok token.Token) bool {
	return tok.Kind == token.PLUS || tok.Kind == token.MINUS
}

// parseTerm implements `term := factor ( (MUL|DIV) factor )*`.
func (p *Parser) parseTerm() (ast.Node, error) {
	return p.parseBinary(p.parseFactor, isMulDiv)
}

func isMulDiv(tok token.Token) bool {
	return tok.Kind == token.MUL || tok.Kind == token.DIV
}

// parseFactor implements `factor := (PLUS|MINUS) factor | power`.
func (p *Parser) parseFactor() (ast.Node, error) {
	if p.at(token.PLUS) || p.at(token.MINUS) {
		opTok := p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(opTok.Kind, opTok.Value, operand, opTok.Start, operand.End()), nil
	}
	return p.parsePower()
}

// parsePower implements `power := call ( POW factor )*`, right-recursing
// into factor on the right-hand side so `2 ^ -3` and `2 ^ 3 ^ 2` parse as
// the grammar's right-associative exponentiation.
func (p *Parser) parsePower() (ast.Node, error) {
	left, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	for p.at(token.POW) {
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinOp(left, opTok.Kind, opTok.Value, right, left.Start(), right.End())
	}
	return left, nil
}

// parseBinary is the shared left-associative binary-operator loop used by
// expr/comp/arith/term: parse one operand via next, then while the current
// token satisfies isOp, consume it and fold in another operand.
func (p *Parser) parseBinary(next func() (ast.Node, error), isOp func(token.Token) bool) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for isOp(p.current()) {
		opTok := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinOp(left, opTok.Kind, opTok.Value, right, left.Start(), right.End())
	}
	return left, nil
}

// parseCall implements `call := atom ( '(' (expr (',' expr)*)? ')' )?`.
func (p *Parser) parseCall() (ast.Node, error) {
	callee, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.at(token.LPAREN) {
		return callee, nil
	}
	p.advance() // consume '('

	var args []ast.Node
	if !p.at(token.RPAREN) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.at(token.COMMA) {
			p.advance()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	closeTok, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, args, callee.Start(), closeTok.End), nil
}
