package key

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Wrapped boxes a value together with a key that carries the value's
// dynamic type.  Under default keying the int 1 and the string "1"
// collide, while Wrap(1) and Wrap("1") are keyed "(1:int)" and
// "(1:string)".
type Wrapped struct {
	v   any
	key string
}

// Wrap boxes v.  Wrapping a Wrapped returns it unchanged.
func Wrap(v any) Wrapped {
	if w, ok := v.(Wrapped); ok {
		return w
	}
	return Wrapped{v: v, key: fmt.Sprintf("(%s:%T)", Of(v), v)}
}

// WrapAll wraps every element of vs.
func WrapAll(vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = Wrap(v)
	}
	return out
}

func IsWrapped(v any) bool {
	_, ok := v.(Wrapped)
	return ok
}

// Unwrap returns the value boxed in v if v is a Wrapped, and v
// otherwise.
func Unwrap(v any) any {
	if w, ok := v.(Wrapped); ok {
		return w.v
	}
	return v
}

func (w Wrapped) Value() any {
	return w.v
}

func (w Wrapped) CanonicalKey() string {
	return w.key
}

func (w Wrapped) String() string {
	return w.key
}

// MarshalJSON encodes the boxed value.
func (w Wrapped) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.v)
}
