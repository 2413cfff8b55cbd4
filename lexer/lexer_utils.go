/*
File    : gobasic/lexer/lexer_utils.go
Package : lexer
*/
package lexer

import (
	"strings"

	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/token"
)

// escapeSequences is the fixed escape table BASIC supports inside string
// literals, grounded on the original interpreter's ESCAPE_CHARACTERS map
// (only \n and \t, plus \\ and \" handled structurally below).
var escapeSequences = map[byte]byte{
	'n': '\n',
	't': '\t',
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentCont(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// readNumber scans an INT or FLOAT literal. At most one '.' is permitted;
// a second dot ends the number rather than erroring here, so "1.2.3"
// scans as FLOAT "1.2" and the stray '.' is then rejected by Next as an
// IllegalCharacter.
func (lex *Lexer) readNumber() (token.Token, error) {
	start := lex.pos
	var b strings.Builder
	dotCount := 0

	for isDigit(lex.current) || (lex.current == '.' && dotCount == 0) {
		if lex.current == '.' {
			dotCount++
		}
		b.WriteByte(lex.current)
		lex.advance()
	}

	kind := token.INT
	if dotCount == 1 {
		kind = token.FLOAT
	}
	return token.NewToken(kind, b.String(), start, lex.pos), nil
}

// readIdentifier scans an identifier and promotes it to KEYWORD when it
// matches the reserved word table.
func (lex *Lexer) readIdentifier() (token.Token, error) {
	start := lex.pos
	var b strings.Builder

	for isIdentCont(lex.current) {
		b.WriteByte(lex.current)
		lex.advance()
	}

	text := b.String()
	return token.NewToken(token.LookupIdent(text), text, start, lex.pos), nil
}

// readString scans a double-quoted string literal with \n, \t, \\ and \"
// escapes. An unterminated string produces an error naming the starting
// position so the parser can report where the quote was opened.
func (lex *Lexer) readString() (token.Token, error) {
	start := lex.pos
	lex.advance() // consume opening quote

	var b strings.Builder
	for lex.current != '"' {
		if lex.current == 0 {
			return token.Token{}, errs.New(errs.IllegalCharacter, "unterminated string", start, lex.pos)
		}
		if lex.current == '\\' {
			lex.advance()
			if repl, ok := escapeSequences[lex.current]; ok {
				b.WriteByte(repl)
			} else {
				b.WriteByte(lex.current)
			}
			lex.advance()
			continue
		}
		b.WriteByte(lex.current)
		lex.advance()
	}
	lex.advance() // consume closing quote

	return token.NewToken(token.STRING, b.String(), start, lex.pos), nil
}
