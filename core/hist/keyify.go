package hist

import (
	"sort"
	"strconv"
	"strings"
)

// Keyify returns the canonical form of h: "{k1:c1,k2:c2,...}" with
// keys in lexical order.  Histograms with the same keys and counts
// have the same canonical form whatever order values were added in.
func (h *Histogram[T]) Keyify() string {
	if h == nil {
		return "{}"
	}
	keys := make([]string, 0, len(h.buckets))
	for k := range h.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(h.buckets[k].count))
	}
	sb.WriteByte('}')
	return sb.String()
}

// CanonicalKey makes histograms usable as members of other
// histograms and sets.
func (h *Histogram[T]) CanonicalKey() string {
	return h.Keyify()
}

func (h *Histogram[T]) String() string {
	return h.Keyify()
}
