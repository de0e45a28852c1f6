// Package sets implements union, intersection, difference and
// complement of two collections by filtering one combined frequency
// table.  Members are compared by key, so duplicates within one
// collection collapse.
package sets

import (
	"fmt"

	"github.com/Syrah0/swiftSet/core/key"
)

// Code tells which of the two collections a key was seen in.
type Code uint8

const (
	OnlyA Code = 1
	OnlyB Code = 2
	Both  Code = OnlyA | OnlyB
)

func (c Code) String() string {
	switch c {
	case OnlyA:
		return "A"
	case OnlyB:
		return "B"
	case Both:
		return "AB"
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

type row[T any] struct {
	value T
	code  Code
}

// Table maps each key seen in A or B to its code and to the first
// value seen for it.  Keys keep the order they were first seen in.
type Table[T any] struct {
	src   key.Source[T]
	rows  map[string]*row[T]
	order []string
}

func NewTable[T any](src key.Source[T]) *Table[T] {
	return &Table[T]{
		src:  src,
		rows: make(map[string]*row[T]),
	}
}

// Mark records values as members of side, which must be OnlyA or
// OnlyB.  A key already seen on the other side becomes Both.
func (t *Table[T]) Mark(values []T, side Code) *Table[T] {
	if side != OnlyA && side != OnlyB {
		panic(fmt.Sprintf("Mark(side=%v): side must be A or B", side))
	}
	for _, v := range values {
		k := t.src.Key(v)
		if r, ok := t.rows[k]; ok {
			r.code |= side
			continue
		}
		t.rows[k] = &row[T]{value: v, code: side}
		t.order = append(t.order, k)
	}
	return t
}

// Code returns the code of key k.
func (t *Table[T]) Code(k string) (Code, bool) {
	if r, ok := t.rows[k]; ok {
		return r.code, true
	}
	return 0, false
}

func (t *Table[T]) Len() int {
	return len(t.order)
}

// Select returns, in table order, the values of keys whose code keep
// accepts.
func (t *Table[T]) Select(keep func(Code) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, k := range t.order {
		if r := t.rows[k]; keep(r.code) {
			out = append(out, r.value)
		}
	}
	return out
}

// All reports whether every key in the table has code c.  It is true
// for an empty table.
func (t *Table[T]) All(c Code) bool {
	for _, r := range t.rows {
		if r.code != c {
			return false
		}
	}
	return true
}
