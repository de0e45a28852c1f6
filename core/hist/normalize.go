package hist

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type share[T any] struct {
	b   *bucket[T]
	rem decimal.Decimal
}

// Normalize rescales the counts of h to sum to total, keeping every
// bucket.  It uses the largest remainder method: each bucket gets the
// integer part of count*total/Total(), and the units left over go one
// each to the buckets with the largest fractional parts, earlier
// buckets first on ties.  Buckets may end with count 0 when total is
// less than Size().  An empty histogram is left as is.
func (h *Histogram[T]) Normalize(total int) *Histogram[T] {
	if total < 0 {
		panic(fmt.Sprintf("Normalize(total=%d): total must >= 0", total))
	}
	if h.Size() == 0 {
		return h
	}

	// Buckets all normalized to zero weigh the same.
	weight := func(b *bucket[T]) int64 { return int64(b.count) }
	sum := int64(h.total)
	if sum == 0 {
		weight = func(*bucket[T]) int64 { return 1 }
		sum = int64(h.Size())
	}

	n := decimal.NewFromInt(int64(total))
	s := decimal.NewFromInt(sum)
	shares := make([]share[T], 0, h.Size())
	assigned := 0
	h.order.Ascend(func(b *bucket[T]) bool {
		q, r := decimal.NewFromInt(weight(b)).Mul(n).QuoRem(s, 0)
		b.count = int(q.IntPart())
		assigned += b.count
		shares = append(shares, share[T]{b, r})
		return true
	})

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].rem.GreaterThan(shares[j].rem)
	})
	for i := 0; i < total-assigned; i++ {
		shares[i].b.count++
	}
	h.total = total
	return h
}

// Frequency returns the share of Total() that v accounts for, or 0
// if h is empty.
func (h *Histogram[T]) Frequency(v T) decimal.Decimal {
	if h.total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(h.Count(v))).Div(decimal.NewFromInt(int64(h.total)))
}
