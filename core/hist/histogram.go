package hist

// Hist is the read side of a histogram.
type Hist[T any] interface {
	Count(v T) int
	Has(v T) bool
	Size() int
	Total() int

	// ForEach access buckets one-by-one in first-seen order.  For
	// each bucket it calls p(bucket).  If p returns nil, it goes on
	// to rest buckets; otherwise, it stops the traversal and returns
	// the error from p.
	ForEach(p func(b Bucket[T]) error) error

	Keyify() string
}

// Bucket is a snapshot of one histogram entry: the key, the first
// value seen with that key, and the number of occurrences.
type Bucket[T any] struct {
	Key   string `json:"key"`
	Value T      `json:"value"`
	Count int    `json:"count"`
}
