/*
File    : gobasic/lexer/lexer.go
Package : lexer
*/

// Package lexer turns BASIC source text into a flat token stream. It
// follows the cursor-and-switch shape of the teacher interpreter's lexer
// (a byte cursor with Line/Column bookkeeping, one case per leading
// character) but returns tokens from gobasic/token and reports scan
// failures through an error value instead of silently degrading to EOF.
package lexer

import (
	"fmt"

	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/token"
)

// Lexer scans src one byte at a time, tracking a token.Position cursor so
// every token carries an exact source span.
type Lexer struct {
	src     string
	pos     token.Position
	current byte
}

// New creates a Lexer ready to tokenize src. file names the source for
// diagnostics ("<stdin>" for REPL input).
func New(file, src string) *Lexer {
	lex := &Lexer{src: src, pos: token.NewPosition(file, src)}
	if len(src) > 0 {
		lex.current = src[0]
	}
	return lex
}

// Tokenize scans the entire source and returns every token including a
// trailing EOF, or the first scan error encountered.
func Tokenize(file, src string) ([]token.Token, error) {
	lex := New(file, src)
	var tokens []token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

// Next returns the next token, or an error describing an illegal character
// or malformed literal.
func (lex *Lexer) Next() (token.Token, error) {
	lex.skipWhitespaceAndComments()

	start := lex.pos

	switch {
	case lex.current == 0:
		return token.NewToken(token.EOF, "", start, lex.pos), nil

	case lex.current == '\n' || lex.current == ';':
		lex.advance()
		return token.NewToken(token.NEWLINE, "\\n", start, lex.pos), nil

	case isDigit(lex.current):
		return lex.readNumber()

	case isIdentStart(lex.current):
		return lex.readIdentifier()

	case lex.current == '"':
		return lex.readString()
	}

	switch lex.current {
	case '+':
		lex.advance()
		return token.NewToken(token.PLUS, "+", start, lex.pos), nil
	case '-':
		lex.advance()
		if lex.current == '>' {
			lex.advance()
			return token.NewToken(token.ARROW, "->", start, lex.pos), nil
		}
		return token.NewToken(token.MINUS, "-", start, lex.pos), nil
	case '*':
		lex.advance()
		return token.NewToken(token.MUL, "*", start, lex.pos), nil
	case '/':
		lex.advance()
		return token.NewToken(token.DIV, "/", start, lex.pos), nil
	case '^':
		lex.advance()
		return token.NewToken(token.POW, "^", start, lex.pos), nil
	case '(':
		lex.advance()
		return token.NewToken(token.LPAREN, "(", start, lex.pos), nil
	case ')':
		lex.advance()
		return token.NewToken(token.RPAREN, ")", start, lex.pos), nil
	case '[':
		lex.advance()
		return token.NewToken(token.LSBRAC, "[", start, lex.pos), nil
	case ']':
		lex.advance()
		return token.NewToken(token.RSBRAC, "]", start, lex.pos), nil
	case ',':
		lex.advance()
		return token.NewToken(token.COMMA, ",", start, lex.pos), nil
	case '=':
		lex.advance()
		if lex.current == '=' {
			lex.advance()
			return token.NewToken(token.EE, "==", start, lex.pos), nil
		}
		return token.NewToken(token.EQ, "=", start, lex.pos), nil
	case '!':
		lex.advance()
		if lex.current == '=' {
			lex.advance()
			return token.NewToken(token.NE, "!=", start, lex.pos), nil
		}
		return token.Token{}, lex.expectedChar(start, "expected '=' after '!'")
	case '<':
		lex.advance()
		if lex.current == '=' {
			lex.advance()
			return token.NewToken(token.LTE, "<=", start, lex.pos), nil
		}
		return token.NewToken(token.LT, "<", start, lex.pos), nil
	case '>':
		lex.advance()
		if lex.current == '=' {
			lex.advance()
			return token.NewToken(token.GTE, ">=", start, lex.pos), nil
		}
		return token.NewToken(token.GT, ">", start, lex.pos), nil
	}

	bad := lex.current
	lex.advance()
	return token.Token{}, lex.illegal(start, bad, "")
}

// illegal reports a scan failure as an IllegalCharacter error spanning from
// start to the lexer's current position.
func (lex *Lexer) illegal(start token.Position, c byte, reason string) error {
	details := fmt.Sprintf("'%c'", c)
	if reason != "" {
		details = fmt.Sprintf("'%c' (%s)", c, reason)
	}
	return errs.New(errs.IllegalCharacter, details, start, lex.pos)
}

// expectedChar reports the ExpectedCharacter case spec.md §7 names by
// example: a character sequence that almost forms a valid token but is
// missing its required follow-up character (e.g. '!' not followed by '=').
func (lex *Lexer) expectedChar(start token.Position, reason string) error {
	return errs.New(errs.ExpectedCharacter, reason, start, lex.pos)
}

// advance consumes the current byte and loads the next one, updating the
// cursor's line/column bookkeeping.
func (lex *Lexer) advance() {
	if lex.current == 0 {
		return
	}
	lex.pos = lex.pos.Advance(rune(lex.current))
	if lex.pos.Index >= len(lex.src) {
		lex.current = 0
		return
	}
	lex.current = lex.src[lex.pos.Index]
}

// skipWhitespaceAndComments advances past spaces/tabs/CRs and '#' line
// comments. Newlines are significant tokens in BASIC's grammar (they end
// statements), so they are left for Next to return, matching spec.md's
// statement-termination rule.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lex.current == ' ' || lex.current == '\t' || lex.current == '\r':
			lex.advance()
		case lex.current == '#':
			for lex.current != '\n' && lex.current != 0 {
				lex.advance()
			}
		default:
			return
		}
	}
}
