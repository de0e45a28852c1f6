package hist

import (
	"sort"

	"github.com/Syrah0/swiftSet/core/key"
)

// Each calls fn with the representative value, count and key of each
// bucket in first-seen order, until fn returns true.  fn must not
// modify h.
func (h *Histogram[T]) Each(fn func(v T, count int, key string) bool) *Histogram[T] {
	h.order.Ascend(func(b *bucket[T]) bool {
		return !fn(b.value, b.count, b.key)
	})
	return h
}

// ForEach is Each in the style of an error-returning visitor: it
// stops at, and returns, the first non-nil error from p.
func (h *Histogram[T]) ForEach(p func(b Bucket[T]) error) error {
	var e error
	h.Each(func(v T, count int, k string) bool {
		e = p(Bucket[T]{Key: k, Value: v, Count: count})
		return e != nil
	})
	return e
}

func (h *Histogram[T]) Values() []T {
	out := make([]T, 0, h.Size())
	h.Each(func(v T, _ int, _ string) bool {
		out = append(out, v)
		return false
	})
	return out
}

func (h *Histogram[T]) Counts() []int {
	out := make([]int, 0, h.Size())
	h.Each(func(_ T, c int, _ string) bool {
		out = append(out, c)
		return false
	})
	return out
}

func (h *Histogram[T]) Keys() []string {
	out := make([]string, 0, h.Size())
	h.Each(func(_ T, _ int, k string) bool {
		out = append(out, k)
		return false
	})
	return out
}

// Unwrap is Values with wrapped representatives replaced by the
// values they box.
func (h *Histogram[T]) Unwrap() []any {
	out := make([]any, 0, h.Size())
	h.Each(func(v T, _ int, _ string) bool {
		out = append(out, key.Unwrap(v))
		return false
	})
	return out
}

// Buckets returns a snapshot of all buckets in first-seen order.
func (h *Histogram[T]) Buckets() []Bucket[T] {
	out := make([]Bucket[T], 0, h.Size())
	h.Each(func(v T, c int, k string) bool {
		out = append(out, Bucket[T]{Key: k, Value: v, Count: c})
		return false
	})
	return out
}

// Ranked returns the buckets in descending order of count; buckets
// with equal counts are ordered by key.
func (h *Histogram[T]) Ranked() []Bucket[T] {
	bs := h.Buckets()
	sort.Slice(bs, func(i, j int) bool {
		return bs[i].Count > bs[j].Count ||
			(bs[i].Count == bs[j].Count && bs[i].Key < bs[j].Key)
	})
	return bs
}
