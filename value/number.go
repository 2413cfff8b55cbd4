/*
File    : gobasic/value/number.go
Package : value
*/
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Number unifies integers and floats into one BASIC value. A Number is
// stored as a float64 internally but canonicalizes to an integer display
// whenever its fractional part is zero, mirroring the original
// interpreter's Number.__init__ rule ("value = int(value) if value ==
// int(value)"). IsInt is computed at construction, not re-derived from
// Val on every use, so repeated String()/Repr() calls stay cheap.
type Number struct {
	Val   float64
	IsInt bool
}

// NewNumber builds a Number from v, canonicalizing to integer display when
// v has no fractional part.
func NewNumber(v float64) *Number {
	return &Number{Val: v, IsInt: v == math.Trunc(v) && !math.IsInf(v, 0)}
}

// NewInt builds a Number known to be an integer, skipping the float
// round-trip in NewNumber.
func NewInt(v int64) *Number {
	return &Number{Val: float64(v), IsInt: true}
}

var (
	// True and False are shared singletons for boolean results, matching
	// the original interpreter's Number.true/Number.false convention
	// (BASIC has no dedicated boolean type; 1 and 0 stand in for it).
	True  = NewInt(1)
	False = NewInt(0)
)

// BoolNumber returns True or False for b.
func BoolNumber(b bool) *Number {
	if b {
		return True
	}
	return False
}

func (n *Number) Type() Kind { return NumberKind }

func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

func (n *Number) Repr() string { return n.String() }

func (n *Number) IsTrue() bool { return n.Val != 0 }

func (n *Number) Copy() Value { return &Number{Val: n.Val, IsInt: n.IsInt} }

// Int returns the number truncated to an int, used by list indexing, POP
// and the string/list repetition counts.
func (n *Number) Int() int { return int(n.Val) }

func (n *Number) GoString() string {
	return fmt.Sprintf("Number(%v)", n.Val)
}
