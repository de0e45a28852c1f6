package sets

import (
	"sort"
	"strings"
	"testing"

	"github.com/Syrah0/swiftSet/core/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	assert.Equal(t, []int{2}, Intersection([]int{1, 1, 2}, []int{2, 2, 3}))
	assert.Equal(t, []int{1, 3}, Difference([]int{1, 1, 2}, []int{2, 3, 3}))
	assert.Equal(t, []int{3}, Complement([]int{1, 2, 2}, []int{2, 2, 3}))
	assert.Equal(t, []int{1}, Minus([]int{1, 2, 2}, []int{2, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, Union([]int{1, 1, 2}, []int{2, 3, 3}))
}

func TestTableCodes(t *testing.T) {
	tb := Tabulate([]string{"a", "b", "a"}, []string{"b", "c", "c"})
	require.Equal(t, 3, tb.Len())

	for k, want := range map[string]Code{"a": OnlyA, "b": Both, "c": OnlyB} {
		c, ok := tb.Code(k)
		assert.True(t, ok, k)
		assert.Equal(t, want, c, k)
	}
	_, ok := tb.Code("z")
	assert.False(t, ok)
	assert.False(t, tb.All(Both))
}

func TestMarkRejectsBadSide(t *testing.T) {
	assert.Panics(t, func() { NewTable(key.Default[int]()).Mark([]int{1}, Both) })
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "A", OnlyA.String())
	assert.Equal(t, "B", OnlyB.String())
	assert.Equal(t, "AB", Both.String())
	assert.Equal(t, "Code(9)", Code(9).String())
}

func TestEquals(t *testing.T) {
	assert.True(t, Equals([]int{1, 2, 2}, []int{2, 1}))
	assert.False(t, Equals([]int{1, 2}, []int{1}))
	assert.False(t, Equals([]int{1}, []int{1, 3}))
	assert.True(t, Equals[int](nil, nil))
	assert.True(t, Equals([]any{1, "2"}, []any{"1", 2}))
}

func TestEmptyOperands(t *testing.T) {
	assert.Empty(t, Intersection([]int{1}, nil))
	assert.Equal(t, []int{1}, Union([]int{1}, nil))
	assert.Equal(t, []int{1}, Complement(nil, []int{1, 1}))
	assert.Empty(t, Complement([]int{1}, nil))
}

func asSet(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}

func TestIdentities(t *testing.T) {
	cases := [][2][]int{
		{{1, 2, 3}, {3, 4}},
		{{1, 1, 2}, {2, 2, 3}},
		{{}, {5, 6}},
		{{7, 8, 8}, {}},
		{{1, 2}, {1, 2}},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		assert.Equal(t, asSet(Union(a, b)), asSet(Union(b, a)))
		assert.Equal(t, asSet(Intersection(a, b)), asSet(Intersection(b, a)))
		assert.Equal(t,
			asSet(Difference(a, b)),
			asSet(Union(Complement(a, b), Complement(b, a))))
		assert.Equal(t,
			asSet(Difference(a, b)),
			asSet(Union(Minus(a, b), Minus(b, a))))
		assert.True(t, Equals(Union(Minus(a, b), Intersection(a, b)), a))
		assert.True(t, Equals(Union(Complement(a, b), Intersection(a, b)), b))
	}
}

func TestOutputOrderIsFirstSeen(t *testing.T) {
	assert.Equal(t,
		[]string{"z", "a", "m", "b"},
		Union([]string{"z", "a", "z"}, []string{"m", "a", "b"}))
}

func TestRepresentativeComesFromA(t *testing.T) {
	lower := key.Func(strings.ToLower)
	assert.Equal(t, []string{"Go"}, Intersection([]string{"Go"}, []string{"GO", "go"}, WithKey(lower)))
}

func TestMixedTypesCollideByDefault(t *testing.T) {
	a := []any{1, "2"}
	b := []any{"1", 2}
	assert.Len(t, Intersection(a, b), 2)

	wa := key.WrapAll(a)
	wb := key.WrapAll(b)
	assert.Empty(t, Intersection(wa, wb))
	assert.Len(t, Union(wa, wb), 4)
}

func TestWithKeyDoesNotLeak(t *testing.T) {
	lower := key.Func(strings.ToLower)
	a := []string{"A", "b"}
	b := []string{"a", "B"}

	assert.True(t, Equals(a, b, WithKey(lower)))
	assert.False(t, Equals(a, b))
}

func TestNestedOperationsKeepTheirOwnKeys(t *testing.T) {
	lower := key.Func(strings.ToLower)
	inner := 0
	// Groups are keyed by their case-folded members.  Computing that key
	// runs an inner operation with its own key source.
	byMembers := key.Func(func(g []string) string {
		inner++
		m := Union(g, nil, WithKey(lower))
		for i := range m {
			m[i] = strings.ToLower(m[i])
		}
		sort.Strings(m)
		return strings.Join(m, ",")
	})

	a := [][]string{{"x", "Y"}, {"q"}}
	b := [][]string{{"y", "X", "x"}, {"r"}}
	got := Intersection(a, b, WithKey(byMembers))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"x", "Y"}, got[0])
	assert.Equal(t, 4, inner)

	// The outer operation ran on its own source, and default keys are
	// untouched afterwards.
	assert.False(t, Equals([]string{"x"}, []string{"X"}))
}
