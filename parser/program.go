/*
File    : gobasic/parser/program.go
Package : parser
*/
package parser

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/token"
)

// Parse runs the full `program := (NEWLINE)* statement ((NEWLINE)+
// statement)* (NEWLINE)* EOF` production, mirroring the teacher parser's
// top-level Parse() loop (parser/parser.go) but producing a single
// ast.Program node instead of accumulating into a RootNode with an
// inferred display Value — the interpreter decides the program's result
// value, the parser only builds the tree.
func (p *Parser) Parse() (*ast.Program, error) {
	start := p.current().Start
	stmts, err := p.parseStatementList(func() bool { return p.at(token.EOF) })
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.syntaxError("expected operator")
	}
	return ast.NewProgram(stmts, start, p.current().End), nil
}

// parseStatementList implements the shared `statement ((NEWLINE)+
// statement)*` body used by program and by every multiline block (IF/FOR/
// WHILE/FUNC bodies terminated by END). isEnd reports whether the current
// token closes the list without being consumed.
//
// Each iteration's statement parse is attempted between snapshot and
// restore: when it fails, the cursor rewinds and the loop stops, leaving
// the failing token (typically END or EOF) for the caller to consume or
// reject. This is the second of the two call sites spec.md's backtracking
// primitive names (the first is the bare-RETURN lookahead in
// parseReturnStatement).
func (p *Parser) parseStatementList(isEnd func() bool) ([]ast.Node, error) {
	var stmts []ast.Node
	p.skipNewlines()

	for !isEnd() && !p.at(token.EOF) {
		before := p.snapshot()
		stmt, err := p.parseStatement()
		if err != nil {
			p.restore(before)
			break
		}
		stmts = append(stmts, stmt)

		if !p.skipNewlines() {
			break
		}
	}
	return stmts, nil
}
