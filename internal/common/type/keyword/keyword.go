// Released under an MIT license. See LICENSE.

// Package keyword provides ferret's keyword type.
package keyword

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/ferret/internal/common"
	"github.com/michaelmacinnis/ferret/internal/common/interface/callable"
	"github.com/michaelmacinnis/ferret/internal/common/interface/cell"
	"github.com/michaelmacinnis/ferret/internal/common/interface/literal"
	"github.com/michaelmacinnis/ferret/internal/common/type/dlist"
	"github.com/michaelmacinnis/ferret/internal/common/validate"
)

const name = "keyword"

// T (keyword) is an interned name. Keywords with the same name are the
// same object.
type T struct {
	cell.Header

	name string
	word int64
}

type keyword = T

// New returns the keyword named v.
func New(v string) cell.Ref {
	return intern(v)
}

// Equal returns true if c is a keyword with the same name.
func (k *keyword) Equal(c cell.Ref) bool {
	return Is(c) && k.name == To(c).name
}

// Invoke looks the keyword up in the dlist passed as the first argument.
// The optional second argument is returned if there is no binding.
func (k *keyword) Invoke(args cell.Ref) cell.Ref {
	v := validate.Fixed(args, 1, 2)
	defer validate.Release(v)

	notFound := cell.Nil
	if len(v) > 1 {
		notFound = v[1]
	}

	if !dlist.Is(v[0]) {
		return notFound.Copy()
	}

	return dlist.To(v[0]).ValAt(cell.Borrow(k), notFound)
}

// Literal returns the literal representation of the keyword k.
func (k *keyword) Literal() string {
	if k.name == "" || strings.ContainsAny(k.name, " \t\n()\"'") {
		return ":" + adapted.CanonicalString(k.name)
	}

	return k.String()
}

// Name returns the type name for the keyword k.
func (k *keyword) Name() string {
	return name
}

// String returns the text of the keyword k.
func (k *keyword) String() string {
	return ":" + k.name
}

// Type returns the keyword tag.
func (k *keyword) Type() cell.Tag {
	return cell.Keyword
}

// Word returns the hash of the keyword k, the sum of its character codes.
func (k *keyword) Word() int64 {
	return k.word
}

//nolint:gochecknoglobals
var (
	cache  = map[string]cell.Ref{}
	cachel = &sync.RWMutex{}
)

func intern(v string) cell.Ref {
	cachel.RLock()
	r, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return r
	}

	cachel.Lock()
	defer cachel.Unlock()

	if r, ok = cache[v]; ok {
		return r
	}

	r = cell.Immortal(&keyword{name: v, word: word(v)})
	cache[v] = r

	return r
}

func word(v string) int64 {
	var w int64

	for _, r := range v {
		w += int64(r)
	}

	return w
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
	var t keyword

	// The keyword type is a cell.
	_ = cell.I(&t)

	// The keyword type is callable.
	_ = callable.I(&t)

	// The keyword type has a literal representation.
	_ = literal.I(&t)

	// The keyword type is a stringer.
	_ = common.Stringer(&t)
}
