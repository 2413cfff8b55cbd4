/*
File    : gobasic/cmd/basic/main_test.go
Package : main
*/
package main

import (
	"bytes"
	"testing"

	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/token"
	"github.com/basiclang/gobasic/value"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintResultUnwrapsSingletonList(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printResult(&buf, value.NewList([]value.Value{value.NewInt(42)}), nil)
	assert.Equal(t, "42\n", buf.String())
}

func TestPrintResultRendersStructuredError(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pos := token.NewPosition("<stdin>", "1 / 0")
	err := errs.New(errs.RuntimeError, "Division by zero", pos, pos)
	printResult(&buf, nil, err)
	assert.Contains(t, buf.String(), "RuntimeError: Division by zero")
}

func TestPrintResultPlainErrorFallsBackToMessage(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printResult(&buf, nil, assert.AnError)
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
