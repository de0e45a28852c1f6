package hist

import json "github.com/goccy/go-json"

// MarshalJSON encodes h as the array of its buckets in first-seen
// order.
func (h *Histogram[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Buckets())
}
