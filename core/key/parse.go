package key

import (
	"strings"

	"github.com/pkg/errors"
)

const fieldPrefix = "field:"

// ParseSource parses the textual form of a source used in
// configuration: "" or "default" for the default source, and
// "field:<name>" for a field source.  Function sources have no
// textual form.
func ParseSource[T any](s string) (Source[T], error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 0 || s == "default":
		return Default[T](), nil
	case strings.HasPrefix(s, fieldPrefix):
		name := strings.TrimSpace(strings.TrimPrefix(s, fieldPrefix))
		if len(name) == 0 {
			return Source[T]{}, errors.Errorf("key source %q: empty field name", s)
		}
		return Field[T](name), nil
	}
	return Source[T]{}, errors.Errorf("unknown key source %q", s)
}
