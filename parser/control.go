/*
File    : gobasic/parser/control.go
Package : parser
*/
package parser

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/token"
)

// isBlockEnd reports whether tok closes a multiline branch: the next ELIF/
// ELSE arm, the block-closing END, or EOF (malformed input, left for the
// enclosing expect(END) to reject with a clear message).
func isBlockEnd(tok token.Token) bool {
	return tok.Is(token.KEYWORD, "ELIF") || tok.Is(token.KEYWORD, "ELSE") ||
		tok.Is(token.KEYWORD, "END") || tok.Kind == token.EOF
}

// parseBranch implements the shared `branch := expr | NEWLINE statements`
// production used by IF/ELIF/ELSE arms. It does not consume the
// terminating END itself — spec.md's grammar shares a single END across
// the whole IF/ELIF/ELSE chain rather than requiring one per arm, so the
// caller (parseIf) consumes it once after every arm has been parsed.
func (p *Parser) parseBranch() (ast.Node, bool, error) {
	if p.at(token.NEWLINE) {
		p.advance()
		start := p.current().Start
		stmts, err := p.parseStatementList(func() bool { return isBlockEnd(p.current()) })
		if err != nil {
			return nil, false, err
		}
		return ast.NewBlock(stmts, start, p.current().Start), true, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, false, err
	}
	return expr, false, nil
}

// parseIf implements:
//
//	if := 'IF' expr 'THEN' branch ('ELIF' expr 'THEN' branch)*
//	      ('ELSE' branch)?
func (p *Parser) parseIf() (ast.Node, error) {
	start := p.advance().Start // consume IF

	var cases []ast.IfCase
	anyMultiline := false

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.parseBranch()
	if err != nil {
		return nil, err
	}
	cases = append(cases, ast.IfCase{Condition: cond, Body: body, Multiline: multiline})
	anyMultiline = anyMultiline || multiline

	for p.atKeyword("ELIF") {
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		body, multiline, err := p.parseBranch()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.IfCase{Condition: cond, Body: body, Multiline: multiline})
		anyMultiline = anyMultiline || multiline
	}

	var elseCase *ast.ElseCase
	if p.atKeyword("ELSE") {
		p.advance()
		body, multiline, err := p.parseBranch()
		if err != nil {
			return nil, err
		}
		elseCase = &ast.ElseCase{Body: body, Multiline: multiline}
		anyMultiline = anyMultiline || multiline
	}

	end := p.current().End
	if anyMultiline {
		endTok, err := p.expectKeyword("END")
		if err != nil {
			return nil, err
		}
		end = endTok.End
	}

	return ast.NewIf(cases, elseCase, start, end), nil
}

// parseBlock implements `block := expr | NEWLINE statements 'END'`, used by
// FOR, WHILE and FUNC bodies. Unlike parseBranch, a multiline block always
// consumes its own END since FOR/WHILE/FUNC are never chained the way
// IF/ELIF/ELSE are.
func (p *Parser) parseBlock() (ast.Node, bool, error) {
	if p.at(token.NEWLINE) {
		p.advance()
		start := p.current().Start
		stmts, err := p.parseStatementList(func() bool { return p.atKeyword("END") || p.at(token.EOF) })
		if err != nil {
			return nil, false, err
		}
		blockEnd := p.current().Start
		if _, err := p.expectKeyword("END"); err != nil {
			return nil, false, err
		}
		return ast.NewBlock(stmts, start, blockEnd), true, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, false, err
	}
	return expr, false, nil
}

// parseFor implements:
//
//	for := 'FOR' 'VAR'? IDENT '=' expr 'TO' expr ('STEP' expr)? 'THEN' block
func (p *Parser) parseFor() (ast.Node, error) {
	start := p.advance().Start // consume FOR

	if p.atKeyword("VAR") {
		p.advance()
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("TO"); err != nil {
		return nil, err
	}
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step ast.Node
	if p.atKeyword("STEP") {
		p.advance()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewFor(nameTok.Value, from, to, step, body, multiline, start, body.End()), nil
}

// parseWhile implements `while := 'WHILE' expr 'THEN' block`.
func (p *Parser) parseWhile() (ast.Node, error) {
	start := p.advance().Start // consume WHILE

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body, multiline, start, body.End()), nil
}
