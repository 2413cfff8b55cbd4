/*
File    : gobasic/value/list.go
Package : value
*/
package value

import "strings"

// List is BASIC's only compound value: a mutable, ordered, heterogeneous
// sequence. Copy performs a shallow copy (a fresh backing slice sharing
// element references), matching the original interpreter's List.copy
// (Python `elements[:]`) — mutating a nested list through two different
// List handles is still visible across both, only the outer slice identity
// changes on copy.
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() Kind { return ListKind }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Repr() string { return l.String() }

func (l *List) IsTrue() bool { return len(l.Elements) > 0 }

func (l *List) Copy() Value {
	elems := make([]Value, len(l.Elements))
	copy(elems, l.Elements)
	return &List{Elements: elems}
}

// Append adds v to the end of the list in place, backing the `append`
// builtin.
func (l *List) Append(v Value) {
	l.Elements = append(l.Elements, v)
}

// Pop removes and returns the element at index, or an error if index is
// out of range, backing the `pop` builtin. A negative index counts back
// from the end, matching Python's list.pop semantics the original
// interpreter delegates to.
func (l *List) Pop(index int) (Value, error) {
	if index < 0 {
		index += len(l.Elements)
	}
	if index < 0 || index >= len(l.Elements) {
		return nil, ErrIndexOutOfRange
	}
	v := l.Elements[index]
	l.Elements = append(l.Elements[:index], l.Elements[index+1:]...)
	return v, nil
}

// Extend appends every element of other onto l in place, backing the
// `extend` builtin.
func (l *List) Extend(other *List) {
	l.Elements = append(l.Elements, other.Elements...)
}

// At returns the element at index, or an error if index is out of range.
// A negative index counts back from the end, matching Python's list
// indexing semantics the original interpreter delegates to.
func (l *List) At(index int) (Value, error) {
	if index < 0 {
		index += len(l.Elements)
	}
	if index < 0 || index >= len(l.Elements) {
		return nil, ErrIndexOutOfRange
	}
	return l.Elements[index], nil
}
