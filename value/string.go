/*
File    : gobasic/value/string.go
Package : value
*/
package value

import "strconv"

// String is a BASIC string value. Strings are immutable; operations that
// appear to modify a string (concatenation, repetition) always produce a
// new String, matching Go's native string semantics and the original
// interpreter's copy-on-operate contract.
type String struct {
	Val string
}

func NewString(v string) *String { return &String{Val: v} }

func (s *String) Type() Kind { return StringKind }

func (s *String) String() string { return s.Val }

// Repr quotes the string, e.g. "hi"; it is how a string shows inside a
// printed list.
func (s *String) Repr() string { return strconv.Quote(s.Val) }

func (s *String) IsTrue() bool { return len(s.Val) > 0 }

func (s *String) Copy() Value { return &String{Val: s.Val} }
