package sets

import "github.com/Syrah0/swiftSet/core/key"

// Option configures a single set operation.
type Option[T any] func(*options[T])

type options[T any] struct {
	src key.Source[T]
}

// WithKey makes one operation compare members by src instead of by
// their default keys.  It affects nothing beyond that call, so
// operations nested inside a key function may use their own sources.
func WithKey[T any](src key.Source[T]) Option[T] {
	return func(o *options[T]) {
		o.src = src
	}
}

// Tabulate builds the table of a and b.
func Tabulate[T any](a, b []T, opts ...Option[T]) *Table[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return NewTable(o.src).Mark(a, OnlyA).Mark(b, OnlyB)
}

// Union returns the members of a or b.
func Union[T any](a, b []T, opts ...Option[T]) []T {
	return Tabulate(a, b, opts...).Select(func(Code) bool { return true })
}

// Intersection returns the members of both a and b.
func Intersection[T any](a, b []T, opts ...Option[T]) []T {
	return Tabulate(a, b, opts...).Select(func(c Code) bool { return c == Both })
}

// Difference returns the symmetric difference: members of exactly
// one of a and b.
func Difference[T any](a, b []T, opts ...Option[T]) []T {
	return Tabulate(a, b, opts...).Select(func(c Code) bool { return c != Both })
}

// Complement returns the complement of a relative to b: members of b
// that are not in a.  For the members of a that are not in b, use
// Minus.
func Complement[T any](a, b []T, opts ...Option[T]) []T {
	return Tabulate(a, b, opts...).Select(func(c Code) bool { return c == OnlyB })
}

// Minus returns the members of a that are not in b.
func Minus[T any](a, b []T, opts ...Option[T]) []T {
	return Tabulate(a, b, opts...).Select(func(c Code) bool { return c == OnlyA })
}

// Equals reports whether a and b have the same members.
func Equals[T any](a, b []T, opts ...Option[T]) bool {
	return Tabulate(a, b, opts...).All(Both)
}
