package hypervec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcuts(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)

	for i, get := range []func() (float64, error){v.X, v.Y, v.Z, v.T} {
		got, err := get()
		require.NoError(t, err)

		want, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestShortcutsBeyondDimension(t *testing.T) {
	_, err := Vector{}.X()
	require.ErrorIs(t, err, ErrAttribute)
	assert.EqualError(t, err, "'Vector' object has no attribute 'x'")

	v := Of(1, 2)
	_, err = v.Y()
	require.NoError(t, err)
	_, err = v.Z()
	assert.ErrorIs(t, err, ErrAttribute)
	_, err = v.T()
	assert.ErrorIs(t, err, ErrAttribute)
}

func TestAttr(t *testing.T) {
	v := Of(1, 2, 3)

	t.Run("shortcut", func(t *testing.T) {
		got, err := v.Attr("z")
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("unknown single letter", func(t *testing.T) {
		_, err := v.Attr("a")
		require.ErrorIs(t, err, ErrAttribute)

		var ae *AttributeError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "a", ae.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := v.Attr("label")
		assert.ErrorIs(t, err, ErrAttribute)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := v.Attr("")
		assert.ErrorIs(t, err, ErrAttribute)
	})
}

func TestWithAttrReadonly(t *testing.T) {
	v := Of(1, 2, 3, 4)

	for _, name := range []string{"x", "y", "z", "t"} {
		w, err := v.WithAttr(name, 10.0)
		require.ErrorIs(t, err, ErrAttribute)
		assert.EqualError(t, err, "readonly attribute '"+name+"'")
		assert.Nil(t, w.Attrs())
	}
}

func TestWithAttrLowercaseReserved(t *testing.T) {
	v := Of(1)

	for _, name := range []string{"a", "b", "q", "w"} {
		_, err := v.WithAttr(name, 1)
		require.ErrorIs(t, err, ErrAttribute)
		assert.EqualError(t, err, "cannot set single lowercase attribute '"+name+"'")
	}
}

func TestWithAttrUnrestricted(t *testing.T) {
	v := Of(1, 2)

	w, err := v.WithAttr("label", "origin")
	require.NoError(t, err)
	w, err = w.WithAttr("X", 42)
	require.NoError(t, err)
	w, err = w.WithAttr("xy", true)
	require.NoError(t, err)

	got, err := w.Attr("label")
	require.NoError(t, err)
	assert.Equal(t, "origin", got)

	got, err = w.Attr("X")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = w.Attr("xy")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	// The shortcut is unaffected by the upper-case attribute.
	got, err = w.Attr("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	// The receiver is unchanged.
	assert.Nil(t, v.Attrs())
	_, err = v.Attr("label")
	assert.ErrorIs(t, err, ErrAttribute)

	assert.Equal(t, map[string]any{"label": "origin", "X": 42, "xy": true}, w.Attrs())
}

func TestAttrsReturnsCopy(t *testing.T) {
	v, err := Of(1).WithAttr("label", "a")
	require.NoError(t, err)

	attrs := v.Attrs()
	attrs["label"] = "b"

	got, err := v.Attr("label")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}
