package hist

import "github.com/Syrah0/swiftSet/core/sets"

// The set operations below treat h and o as sets: counts are ignored
// and members are compared under the key source of h.  Results are
// new histograms, keyed like h, holding each member once.

func (h *Histogram[T]) setOp(o *Histogram[T],
	op func(a, b []T, opts ...sets.Option[T]) []T) *Histogram[T] {
	return NewKeyed(h.src, op(h.Values(), o.Values(), sets.WithKey(h.src))...)
}

func (h *Histogram[T]) Union(o *Histogram[T]) *Histogram[T] {
	return h.setOp(o, sets.Union[T])
}

func (h *Histogram[T]) Intersection(o *Histogram[T]) *Histogram[T] {
	return h.setOp(o, sets.Intersection[T])
}

// Difference returns the members of exactly one of h and o.
func (h *Histogram[T]) Difference(o *Histogram[T]) *Histogram[T] {
	return h.setOp(o, sets.Difference[T])
}

// Complement returns the members of o that are not in h.  Minus is
// the other way round.
func (h *Histogram[T]) Complement(o *Histogram[T]) *Histogram[T] {
	return h.setOp(o, sets.Complement[T])
}

// Minus returns the members of h that are not in o.
func (h *Histogram[T]) Minus(o *Histogram[T]) *Histogram[T] {
	return h.setOp(o, sets.Minus[T])
}

// SameMembers reports whether h and o have the same keys, whatever
// their counts.
func (h *Histogram[T]) SameMembers(o *Histogram[T]) bool {
	return sets.Equals(h.Values(), o.Values(), sets.WithKey(h.src))
}
