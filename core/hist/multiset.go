// Package hist implements Histogram, a multiset that buckets values
// by key and counts their occurrences.
package hist

import (
	"fmt"

	"github.com/google/btree"

	"github.com/Syrah0/swiftSet/core/key"
)

const degree = 32

type bucket[T any] struct {
	seq   uint64
	key   string
	value T
	count int
}

func bySeq[T any](a, b *bucket[T]) bool {
	return a.seq < b.seq
}

// Histogram maps keys to a representative value and a count.  The
// representative of a key is the first value added with it.  Buckets
// are visited in the order their keys were first seen.
//
// A Histogram is not safe for concurrent use.
type Histogram[T any] struct {
	src     key.Source[T]
	buckets map[string]*bucket[T]
	order   *btree.BTreeG[*bucket[T]]
	seq     uint64
	total   int
}

// New returns a histogram of values under the default key source.
func New[T any](values ...T) *Histogram[T] {
	return NewKeyed(key.Default[T](), values...)
}

// NewKeyed returns a histogram of values keyed by src.
func NewKeyed[T any](src key.Source[T], values ...T) *Histogram[T] {
	h := &Histogram[T]{
		src:     src,
		buckets: make(map[string]*bucket[T]),
		order:   btree.NewG[*bucket[T]](degree, bySeq[T]),
	}
	return h.AddValues(values)
}

// Source returns the key source of h.
func (h *Histogram[T]) Source() key.Source[T] {
	return h.src
}

// KeyOf returns the key h files v under.
func (h *Histogram[T]) KeyOf(v T) string {
	return h.src.Key(v)
}

func (h *Histogram[T]) Add(values ...T) *Histogram[T] {
	return h.AddValues(values)
}

func (h *Histogram[T]) AddValues(values []T) *Histogram[T] {
	for _, v := range values {
		h.put(h.src.Key(v), v, 1)
	}
	return h
}

// AddN adds n occurrences of v.
func (h *Histogram[T]) AddN(v T, n int) *Histogram[T] {
	if n <= 0 {
		panic(fmt.Sprintf("AddN(%v, n=%d): n must > 0", v, n))
	}
	h.put(h.src.Key(v), v, n)
	return h
}

func (h *Histogram[T]) put(k string, v T, n int) {
	if b, ok := h.buckets[k]; ok {
		b.count += n
	} else {
		b = &bucket[T]{seq: h.seq, key: k, value: v, count: n}
		h.seq++
		h.buckets[k] = b
		h.order.ReplaceOrInsert(b)
	}
	h.total += n
}

// Remove drops the buckets of values, whatever their counts.  Values
// not in h are ignored.
func (h *Histogram[T]) Remove(values ...T) *Histogram[T] {
	return h.RemoveValues(values)
}

func (h *Histogram[T]) RemoveValues(values []T) *Histogram[T] {
	for _, v := range values {
		h.drop(h.src.Key(v))
	}
	return h
}

// Decrement removes n occurrences of v, and the bucket of v once its
// count reaches zero.
func (h *Histogram[T]) Decrement(v T, n int) *Histogram[T] {
	if n <= 0 {
		panic(fmt.Sprintf("Decrement(%v, n=%d): n must > 0", v, n))
	}
	k := h.src.Key(v)
	b, ok := h.buckets[k]
	if !ok {
		return h
	}
	if b.count <= n {
		h.drop(k)
		return h
	}
	b.count -= n
	h.total -= n
	return h
}

func (h *Histogram[T]) drop(k string) {
	b, ok := h.buckets[k]
	if !ok {
		return
	}
	delete(h.buckets, k)
	h.order.Delete(b)
	h.total -= b.count
}

func (h *Histogram[T]) Clear() {
	h.buckets = make(map[string]*bucket[T])
	h.order.Clear(false)
	h.total = 0
}

func (h *Histogram[T]) Has(v T) bool {
	_, ok := h.buckets[h.src.Key(v)]
	return ok
}

// Count returns the count of v, 0 if v is not in h.
func (h *Histogram[T]) Count(v T) int {
	if b, ok := h.buckets[h.src.Key(v)]; ok {
		return b.count
	}
	return 0
}

// Size returns the number of buckets.
func (h *Histogram[T]) Size() int {
	return len(h.buckets)
}

// Total returns the sum of all counts.
func (h *Histogram[T]) Total() int {
	return h.total
}

// Min returns the smallest bucket count.  ok is false if h is empty.
func (h *Histogram[T]) Min() (lo int, ok bool) {
	for _, b := range h.buckets {
		if !ok || b.count < lo {
			lo, ok = b.count, true
		}
	}
	return lo, ok
}

// Max returns the largest bucket count.  ok is false if h is empty.
func (h *Histogram[T]) Max() (hi int, ok bool) {
	for _, b := range h.buckets {
		if !ok || b.count > hi {
			hi, ok = b.count, true
		}
	}
	return hi, ok
}

// Copy returns an independent histogram with the buckets and key
// source of h.  Representative values are shared, not cloned.
func (h *Histogram[T]) Copy() *Histogram[T] {
	n := NewKeyed(h.src)
	h.order.Ascend(func(b *bucket[T]) bool {
		n.put(b.key, b.value, b.count)
		return true
	})
	return n
}

// Merge adds the buckets of o to h.  Buckets are matched by the keys
// o derived, which only agree with h's when both share a key source.
// Buckets of o with count 0, as Normalize may leave, add nothing.
func (h *Histogram[T]) Merge(o *Histogram[T]) *Histogram[T] {
	o.order.Ascend(func(b *bucket[T]) bool {
		if b.count > 0 {
			h.put(b.key, b.value, b.count)
		}
		return true
	})
	return h
}

// Equals reports whether h and o have the same keys with the same
// counts.  It agrees with comparing Keyify results.
func (h *Histogram[T]) Equals(o *Histogram[T]) bool {
	if len(h.buckets) != len(o.buckets) || h.total != o.total {
		return false
	}
	for k, b := range h.buckets {
		if ob, ok := o.buckets[k]; !ok || ob.count != b.count {
			return false
		}
	}
	return true
}
