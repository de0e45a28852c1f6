package hist

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Syrah0/swiftSet/core/key"
)

func TestSetOps(t *testing.T) {
	a := New(1, 1, 2)
	b := New(2, 2, 3)
	for _, c := range []struct {
		name string
		got  *Histogram[int]
		exp  []int
	}{
		{"union", a.Union(b), []int{1, 2, 3}},
		{"intersection", a.Intersection(b), []int{2}},
		{"difference", a.Difference(b), []int{1, 3}},
		{"complement", a.Complement(b), []int{3}},
		{"minus", a.Minus(b), []int{1}},
	} {
		if !reflect.DeepEqual(c.got.Values(), c.exp) {
			t.Errorf("%s: expecting %v, got %v", c.name, c.exp, c.got.Values())
		}
		if c.got.Total() != c.got.Size() {
			t.Errorf("%s: expecting one occurrence per member, got %v", c.name, c.got)
		}
	}

	// The operands are left alone.
	if a.Keyify() != "{1:2,2:1}" || b.Keyify() != "{2:2,3:1}" {
		t.Errorf("Expecting operands unchanged, got %v and %v", a, b)
	}
}

func TestSameMembers(t *testing.T) {
	if !New(1, 2, 2).SameMembers(New(2, 1)) {
		t.Errorf("Expecting same members")
	}
	if New(1, 2, 2).Equals(New(2, 1)) {
		t.Errorf("Expecting different counts to be unequal")
	}
	if New(1, 2).SameMembers(New(1)) {
		t.Errorf("Expecting different members")
	}
}

func TestSetOpsUseTheReceiversKeys(t *testing.T) {
	fold := key.Func(strings.ToLower)
	a := NewKeyed(fold, "Go", "Rust")
	b := NewKeyed(key.Default[string](), "go", "zig")

	i := a.Intersection(b)
	if exp := []string{"Go"}; !reflect.DeepEqual(i.Values(), exp) {
		t.Errorf("Expecting %v, got %v", exp, i.Values())
	}
	if i.Source().Kind() != key.KindFunc || !i.Has("GO") {
		t.Errorf("Expecting the result to be keyed like the receiver")
	}
	if b.Intersection(a).Size() != 0 {
		t.Errorf("Expecting case-sensitive intersection to be empty")
	}
}
