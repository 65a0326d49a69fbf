package hypervec

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	t.Run("two dimensions", func(t *testing.T) {
		a, err := Of(3, 4).Angle(1)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan2(4, 3), a, 1e-15)
	})

	t.Run("unit axis", func(t *testing.T) {
		v := Of(0, 0, 1)

		a1, err := v.Angle(1)
		require.NoError(t, err)
		a2, err := v.Angle(2)
		require.NoError(t, err)

		assert.False(t, math.IsInf(a1, 0) || math.IsNaN(a1))
		assert.False(t, math.IsInf(a2, 0) || math.IsNaN(a2))
		assert.InDelta(t, math.Pi/2, a1, 1e-15)
		assert.InDelta(t, math.Pi/2, a2, 1e-15)
	})

	t.Run("negative last component", func(t *testing.T) {
		v := Of(1, 1, -1)

		a1, err := v.Angle(1)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan2(math.Sqrt2, 1), a1, 1e-15)

		a2, err := v.Angle(2)
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Pi-math.Atan2(1, 1), a2, 1e-15)
	})

	t.Run("negative inner component", func(t *testing.T) {
		// Only the last angle is reflected.
		a, err := Of(1, -1, 1).Angle(1)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan2(math.Sqrt2, 1), a, 1e-15)
	})

	t.Run("out of range", func(t *testing.T) {
		v := Of(1, 2, 3)
		for _, n := range []int{0, -1, 3} {
			_, err := v.Angle(n)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "n=%d", n)
		}

		_, err := Of(1).Angle(1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestAngles(t *testing.T) {
	v := Of(1, 1, -1)

	got := slices.Collect(v.Angles())
	require.Len(t, got, 2)
	for i, a := range got {
		want, err := v.Angle(i + 1)
		require.NoError(t, err)
		assert.Equal(t, want, a)
	}

	// Restartable.
	assert.Equal(t, got, slices.Collect(v.Angles()))

	assert.Empty(t, slices.Collect(Of(5).Angles()))
	assert.Empty(t, slices.Collect(Vector{}.Angles()))
}

func TestSpherical(t *testing.T) {
	coords := Of(3, 4).Spherical()
	require.Len(t, coords, 2)
	assert.Equal(t, 5.0, coords[0])
	assert.InDelta(t, 0.9272952180016122, coords[1], 1e-15)

	assert.Equal(t, []float64{0}, Vector{}.Spherical())
}

func TestSphericalRoundTrip(t *testing.T) {
	// Reconstruct the Cartesian components from the norm and angles.
	v := Of(1, -2, 3, -4)
	coords := v.Spherical()
	r, angles := coords[0], coords[1:]

	got := make([]float64, v.Len())
	prod := r
	for i, a := range angles {
		got[i] = prod * math.Cos(a)
		prod *= math.Sin(a)
	}
	got[len(got)-1] = prod

	for i, c := range v.Components() {
		assert.InDelta(t, c, got[i], 1e-12, "component %d", i)
	}
}
