// Released under an MIT license. See LICENSE.

// Package num provides ferret's real number type.
package num

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/literal"
	"github.com/michaelmacinnis/ferret/internal/common/type/boolean"
)

const (
	name = "number"

	// Epsilon is the default tolerance used when comparing numbers.
	Epsilon = 0.00001
)

// T (num) wraps Go's float64 type.
type T struct {
	cell.Header

	v float64
}

type num = T

//nolint:gochecknoglobals
var epsilon atomic.Uint64

// New creates a new num cell from a float64.
func New(f float64) cell.Ref {
	return cell.New(num{v: f})
}

// Int creates a num from the integer i.
func Int(i int) cell.Ref {
	return New(float64(i))
}

// Num creates a new num from a string.
func Num(s string) cell.Ref {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("'" + s + "' is not a valid number")
	}

	return New(f)
}

// Equal returns true if c is a num within epsilon of n.
func (n *num) Equal(c cell.Ref) bool {
	return Is(c) && near(n.v, To(c).v)
}

// Float returns the value of the num n.
func (n *num) Float() float64 {
	return n.v
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

// Type returns the number tag.
func (n *num) Type() cell.Tag {
	return cell.Number
}

// Add returns a + b.
func Add(a, b cell.Ref) cell.Ref {
	return New(Value(a) + Value(b))
}

// Sub returns a - b.
func Sub(a, b cell.Ref) cell.Ref {
	return New(Value(a) - Value(b))
}

// Mul returns a * b.
func Mul(a, b cell.Ref) cell.Ref {
	return New(Value(a) * Value(b))
}

// Div returns a / b.
func Div(a, b cell.Ref) cell.Ref {
	return New(Value(a) / Value(b))
}

// Less returns true if a < b.
func Less(a, b cell.Ref) cell.Ref {
	return boolean.Bool(Value(a) < Value(b))
}

// LessEqual returns true if a <= b.
func LessEqual(a, b cell.Ref) cell.Ref {
	x, y := Value(a), Value(b)

	return boolean.Bool(x < y || near(x, y))
}

// Greater returns true if a > b.
func Greater(a, b cell.Ref) cell.Ref {
	return boolean.Bool(Value(a) > Value(b))
}

// GreaterEqual returns true if a >= b.
func GreaterEqual(a, b cell.Ref) cell.Ref {
	x, y := Value(a), Value(b)

	return boolean.Bool(x > y || near(x, y))
}

// GetEpsilon returns the tolerance used when comparing numbers.
func GetEpsilon() float64 {
	return math.Float64frombits(epsilon.Load())
}

// SetEpsilon sets the tolerance used when comparing numbers.
func SetEpsilon(e float64) {
	if e < 0 || math.IsNaN(e) {
		panic("epsilon must be a non-negative number")
	}

	epsilon.Store(math.Float64bits(e))
}

// Value returns the float64 value of c or panics if c is not a num.
func Value(c cell.Ref) float64 {
	if n, ok := c.Get().(*num); ok {
		return n.v
	}

	if c.Nil() {
		panic("nil is not a " + name)
	}

	panic(c.Get().Name() + " is not a " + name)
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= GetEpsilon()
}

// Is returns true if c is a *T.
func Is(c cell.Ref) bool {
	_, ok := c.Get().(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.Ref) *T {
	if t, ok := c.Get().(*T); ok {
		return t
	}

	panic("not a " + name)
}

func init() { //nolint:gochecknoinits
	SetEpsilon(Epsilon)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
