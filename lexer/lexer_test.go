package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiclang/gobasic/lexer"
	"github.com/basiclang/gobasic/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT, token.MUL, token.INT, token.EOF}, kinds(toks))
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "VAR foobar = IF")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.KEYWORD, toks[0].Kind)
	assert.Equal(t, "VAR", toks[0].Value)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "foobar", toks[1].Value)
	assert.Equal(t, token.EQ, toks[2].Kind)
	assert.Equal(t, token.KEYWORD, toks[3].Kind)
}

func TestTokenizeFloatVsIntLiterals(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "42 3.14")
	require.NoError(t, err)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Value)
	assert.Equal(t, token.FLOAT, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Value)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", `"hello\nworld"`)
	require.NoError(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value)
}

func TestTokenizeComparisonOperators(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "== != <= >= < >")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.EE, token.NE, token.LTE, token.GTE, token.LT, token.GT, token.EOF,
	}, kinds(toks))
}

func TestTokenizeCommentsAreSkipped(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "1 # this is a comment\n+ 2")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.INT, token.NEWLINE, token.PLUS, token.INT, token.EOF}, kinds(toks))
}

func TestTokenizeArrowAndMinus(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "FUNC add(a, b) -> a - b")
	require.NoError(t, err)
	assert.Contains(t, kinds(toks), token.ARROW)
	assert.Contains(t, kinds(toks), token.MINUS)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := lexer.Tokenize("<test>", "1 @ 2")
	require.Error(t, err)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := lexer.Tokenize("<test>", `"unterminated`)
	require.Error(t, err)
}

func TestTokenizeEmptySource(t *testing.T) {
	toks, err := lexer.Tokenize("<test>", "")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}
