package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDisambiguatesTypes(t *testing.T) {
	assert.Equal(t, Of(1), Of("1"))

	n, s := Wrap(1), Wrap("1")
	assert.Equal(t, "(1:int)", n.CanonicalKey())
	assert.Equal(t, "(1:string)", s.CanonicalKey())
	assert.NotEqual(t, Of(n), Of(s))
	assert.Equal(t, "(1:int)", Default[any]().Key(n))
}

func TestWrapIsIdempotent(t *testing.T) {
	w := Wrap(2.5)
	assert.Equal(t, w, Wrap(w))
	assert.Equal(t, "(2.5:float64)", w.String())
}

func TestIsWrappedAndUnwrap(t *testing.T) {
	w := Wrap("x")
	assert.True(t, IsWrapped(w))
	assert.False(t, IsWrapped("x"))
	assert.Equal(t, "x", Unwrap(w))
	assert.Equal(t, "x", Unwrap("x"))
	assert.Equal(t, "x", w.Value())
}

func TestWrapAll(t *testing.T) {
	ws := WrapAll([]any{1, "1", nil})
	assert.Len(t, ws, 3)
	assert.Equal(t, "(1:int)", Of(ws[0]))
	assert.Equal(t, "(1:string)", Of(ws[1]))
	assert.Equal(t, "(<nil>:<nil>)", Of(ws[2]))
}

func TestFieldSourceOnWrappedUsesEmbeddedKey(t *testing.T) {
	assert.Equal(t, "(1:int)", Field[any]("ID").Key(Wrap(1)))
}

func TestWrappedMarshalsBoxedValue(t *testing.T) {
	b, e := Wrap("x").MarshalJSON()
	assert.NoError(t, e)
	assert.Equal(t, `"x"`, string(b))
}
