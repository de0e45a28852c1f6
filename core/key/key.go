// Package key derives the identity strings that histograms and set
// operations bucket values by.  Two values are the same member iff
// they have the same key under the active Source.
package key

import (
	"fmt"
	"reflect"
)

// CanonicalKeyer is implemented by values that know their own key.
// Histograms and Wrapped values implement it, which is what lets them
// be members of other histograms.
type CanonicalKeyer interface {
	CanonicalKey() string
}

type Kind int

const (
	KindDefault Kind = iota
	KindField
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindFunc:
		return "func"
	}
	return "default"
}

// Source selects how the key of a value of type T is derived.  The
// zero Source is the default source.
type Source[T any] struct {
	kind  Kind
	field string
	fn    func(T) string
}

func Default[T any]() Source[T] {
	return Source[T]{}
}

// Field keys values by the content of the field called name.  See
// FieldValue for how name is resolved.  Values on which name does not
// resolve are keyed by their default key.
func Field[T any](name string) Source[T] {
	return Source[T]{kind: KindField, field: name}
}

// Func keys values by fn.  A nil fn gives the default source.
func Func[T any](fn func(T) string) Source[T] {
	if fn == nil {
		return Source[T]{}
	}
	return Source[T]{kind: KindFunc, fn: fn}
}

func (s Source[T]) Kind() Kind {
	return s.kind
}

// FieldName returns the field name of a field source, or "".
func (s Source[T]) FieldName() string {
	return s.field
}

// Key returns the key of v under s.
func (s Source[T]) Key(v T) string {
	switch s.kind {
	case KindField:
		if fv, ok := FieldValue(v, s.field); ok {
			return Of(fv)
		}
	case KindFunc:
		return s.fn(v)
	}
	return Of(v)
}

// String prints s in the form accepted by ParseSource.  Function
// sources print as "func", which ParseSource rejects.
func (s Source[T]) String() string {
	switch s.kind {
	case KindField:
		return "field:" + s.field
	case KindFunc:
		return "func"
	}
	return "default"
}

// Of returns the default key of v.  A CanonicalKeyer is keyed by
// CanonicalKey, and anything else by its fmt.Sprint text, which is
// String for a fmt.Stringer.  So the int 2 and the string "2" share
// the key "2"; wrap them to tell them apart.  Nil pointers key as
// "<nil>" whatever methods their type has.
func Of(v any) string {
	if x, ok := v.(CanonicalKeyer); ok && !isNilPointer(v) {
		return x.CanonicalKey()
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
