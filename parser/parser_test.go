package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.New("<test>", src)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestParseVarAssignDefaultsToZero(t *testing.T) {
	prog := parseProgram(t, "VAR a")
	require.Len(t, prog.Statements, 1)
	assign, ok := prog.Statements[0].(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	num, ok := assign.Value.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "0", num.Text)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog := parseProgram(t, "1 + 2 * 3")
	require.Len(t, prog.Statements, 1)
	bin, ok := prog.Statements[0].(*ast.BinOp)
	require.True(t, ok)
	_, ok = bin.Right.(*ast.BinOp)
	assert.True(t, ok, "multiplication should bind tighter than addition")
}

func TestParseIfInline(t *testing.T) {
	prog := parseProgram(t, "IF 1 THEN 42 ELSE 0")
	require.Len(t, prog.Statements, 1)
	ifNode, ok := prog.Statements[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 1)
	assert.False(t, ifNode.Cases[0].Multiline)
	require.NotNil(t, ifNode.Else)
	assert.False(t, ifNode.Else.Multiline)
}

func TestParseForRange(t *testing.T) {
	prog := parseProgram(t, "FOR i = 0 TO 5 THEN i * 2")
	require.Len(t, prog.Statements, 1)
	forNode, ok := prog.Statements[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarName)
	assert.Nil(t, forNode.Step)
	assert.False(t, forNode.ShouldReturnNull)
}

func TestParseForWithStep(t *testing.T) {
	prog := parseProgram(t, "FOR i = 5 TO 0 STEP -1 THEN i")
	forNode, ok := prog.Statements[0].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, forNode.Step)
}

func TestParseFuncAutoReturn(t *testing.T) {
	prog := parseProgram(t, "FUNC add(a, b) -> a + b")
	require.Len(t, prog.Statements, 1)
	fn, ok := prog.Statements[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.True(t, fn.AutoReturn)
}

func TestParseFuncMultilineBody(t *testing.T) {
	src := "FUNC make()\nVAR y = 10\nRETURN y\nEND"
	prog := parseProgram(t, src)
	fn, ok := prog.Statements[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.False(t, fn.AutoReturn)
	block, ok := fn.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParseBareReturnBacktracks(t *testing.T) {
	src := "FUNC f()\nRETURN\nEND"
	prog := parseProgram(t, src)
	fn := prog.Statements[0].(*ast.FuncDef)
	block := fn.Body.(*ast.Block)
	require.Len(t, block.Statements, 1)
	ret, ok := block.Statements[0].(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParseCallArguments(t *testing.T) {
	prog := parseProgram(t, "add(2, 3)")
	call, ok := prog.Statements[0].(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseListLiteral(t *testing.T) {
	prog := parseProgram(t, "[1, 2, 3]")
	list, ok := prog.Statements[0].(*ast.ListLiteral)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParseUnterminatedStringIsLexError(t *testing.T) {
	_, err := parser.New("<test>", `"a`)
	require.Error(t, err)
}

func TestParseTrailingTokensRejected(t *testing.T) {
	p, err := parser.New("<test>", "1 2")
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}
