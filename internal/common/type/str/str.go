// Released under an MIT license. See LICENSE.

// Package str provides ferret's string type. A string is a sequence of
// numeric character codes so every sequence operation applies to text.
package str

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/integer"
	"github.com/michaelmacinnis/ferret/internal/common/interface/literal"
	"github.com/michaelmacinnis/ferret/internal/common/interface/seq"
	"github.com/michaelmacinnis/ferret/internal/common/type/num"
	"github.com/michaelmacinnis/ferret/internal/common/type/pair"
)

const name = "string"

// T (str) wraps a sequence of character codes.
type T struct {
	cell.Header

	data cell.Ref
}

type str = T

// New creates a new str cell from the text v.
func New(v string) cell.Ref {
	r := []rune(v)

	data := cell.Nil
	for i := len(r) - 1; i >= 0; i-- {
		c := num.Int(int(r[i]))
		next := pair.Cons(c, data)
		cell.Release(&c, &data)
		data = next
	}

	defer data.Release()

	return Wrap(data)
}

// Wrap creates a str cell from an existing sequence of character codes.
func Wrap(data cell.Ref) cell.Ref {
	return cell.New(str{data: data.Copy()})
}

// Cons returns a new str with the character code x in front of s.
func (s *str) Cons(x cell.Ref) cell.Ref {
	data := pair.Cons(x, s.data)
	defer data.Release()

	return Wrap(data)
}

// Drop releases the characters of s.
func (s *str) Drop() {
	s.data.Release()
}

// Empty returns true if s has no characters.
func (s *str) Empty() bool {
	return pair.End(s.data)
}

// Equal returns true if c is a sequence with the same character codes.
func (s *str) Equal(c cell.Ref) bool {
	return pair.Equal(cell.Borrow(s), c)
}

// First returns the first character code of s.
func (s *str) First() cell.Ref {
	return pair.First(s.data)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(s.String())
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Rest returns a str of everything after the first character of s.
func (s *str) Rest() cell.Ref {
	r := pair.Rest(s.data)
	defer r.Release()

	if pair.End(r) {
		return pair.Null
	}

	return Wrap(r)
}

// String returns the text of the str s.
func (s *str) String() string {
	var b strings.Builder

	c := s.data.Copy()
	for !pair.End(c) {
		v := pair.First(c)
		b.WriteRune(rune(integer.Value(v)))
		v.Release()

		next := pair.Rest(c)
		c.Release()
		c = next
	}

	c.Release()

	return b.String()
}

// Type returns the string tag.
func (s *str) Type() cell.Tag {
	return cell.String
}

// Text returns the text of the sequence of character codes c.
func Text(c cell.Ref) string {
	if s, ok := c.Get().(*str); ok {
		return s.String()
	}

	if pair.End(c) {
		return ""
	}

	w := Wrap(c)
	defer w.Release()

	return To(w).String()
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

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a sequence.
	_ = seq.I(&t)

	// The str type owns references.
	_ = cell.Owner(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
