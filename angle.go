package hypervec

import (
	"iter"
	"math"
)

// Angle returns the n-th hyperspherical angle of v, for 1 <= n <= Len()-1.
//
// The angle is atan2 of the norm of the trailing components v[n:] against
// v[n-1]. The last angle spans the full circle: when the final component is
// negative, 2π minus that value is returned.
func (v Vector) Angle(n int) (float64, error) {
	last := len(v.components) - 1
	if n < 1 || n > last {
		return 0, &IndexError{Index: n, Length: len(v.components)}
	}
	return v.angle(n), nil
}

func (v Vector) angle(n int) float64 {
	r := norm(v.components[n:])
	a := math.Atan2(r, v.components[n-1])
	last := len(v.components) - 1
	if n == last && v.components[last] < 0 {
		return 2*math.Pi - a
	}
	return a
}

// Angles returns an iterator over Angle(1) ... Angle(Len()-1).
// Each call starts a fresh traversal.
func (v Vector) Angles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for n := 1; n < len(v.components); n++ {
			if !yield(v.angle(n)) {
				return
			}
		}
	}
}

// Spherical returns the hyperspherical coordinates of v: the norm followed by
// every angle. An empty vector yields a single zero norm.
func (v Vector) Spherical() []float64 {
	coords := make([]float64, 0, max(len(v.components), 1))
	coords = append(coords, v.Norm())
	for a := range v.Angles() {
		coords = append(coords, a)
	}
	return coords
}
