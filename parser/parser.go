/*
File    : gobasic/parser/parser.go
Package : parser
*/

// Package parser implements BASIC's recursive-descent grammar, turning a
// token stream into an ast.Node tree. Unlike the teacher parser, it reads
// through a single current-token cursor and returns the first syntax error
// as an error value rather than collecting errors, and it drops the
// Pratt-style per-token function tables: the grammar here is a fixed
// precedence cascade (expr > comp > arith > term > factor > power > call >
// atom), so a direct recursive-descent method per grammar rule reads
// closer to the production list than a table of registered callbacks
// would.
package parser

import (
	"fmt"

	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/lexer"
	"github.com/basiclang/gobasic/token"
)

// Parser holds the token stream and a single-token lookahead cursor.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New tokenizes src and returns a Parser positioned at the first token.
func New(file, src string) (*Parser, error) {
	tokens, err := lexer.Tokenize(file, src)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens, pos: 0}, nil
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

// advance consumes current and returns it.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool {
	return p.current().Kind == kind
}

func (p *Parser) atKeyword(word string) bool {
	return p.current().Is(token.KEYWORD, word)
}

// expect consumes current if it has kind, else returns a syntax error.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.syntaxError(fmt.Sprintf("expected %s, got %s", kind, p.current().Kind))
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(word string) (token.Token, error) {
	if !p.atKeyword(word) {
		return token.Token{}, p.syntaxError(fmt.Sprintf("expected '%s'", word))
	}
	return p.advance(), nil
}

// syntaxError builds an InvalidSyntax error spanning the current token, the
// one error kind every grammar-violation call site in this package raises.
func (p *Parser) syntaxError(msg string) error {
	tok := p.current()
	return errs.New(errs.InvalidSyntax, msg, tok.Start, tok.End)
}

// mark/restore implement the try_register backtracking primitive: a
// speculative parse records the cursor position before it starts, and on
// failure the cursor rewinds to exactly that position so no token is
// double-consumed and no partially-built node is reused.
type mark int

func (p *Parser) snapshot() mark { return mark(p.pos) }

func (p *Parser) restore(m mark) { p.pos = int(m) }

// skipNewlines consumes zero or more NEWLINE tokens and reports whether it
// consumed at least one.
func (p *Parser) skipNewlines() bool {
	consumed := false
	for p.at(token.NEWLINE) {
		p.advance()
		consumed = true
	}
	return consumed
}
