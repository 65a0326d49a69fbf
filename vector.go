package hypervec

import (
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/hypervec/internal/hash"
)

// Vector is an immutable, arbitrary-dimension vector of float64 components.
//
// The zero value is the empty vector. Vectors are values: copying one is
// cheap and copies share storage, which is safe because no method mutates
// components after construction.
type Vector struct {
	components []float64
	attrs      map[string]any
}

// New returns a vector holding a copy of components.
func New(components []float64) Vector {
	return Vector{components: slices.Clone(components)}
}

// Of returns a vector of the given components.
func Of(components ...float64) Vector {
	return New(components)
}

// Len returns the number of components.
func (v Vector) Len() int {
	return len(v.components)
}

// All returns an iterator over the components in order.
// Each call starts a fresh traversal.
func (v Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range v.components {
			if !yield(c) {
				return
			}
		}
	}
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	return slices.Clone(v.components)
}

// Equal reports whether v and other have the same length and pairwise equal
// components. Attributes are not compared.
func (v Vector) Equal(other Vector) bool {
	if len(v.components) != len(other.components) {
		return false
	}
	for i, c := range v.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: the XOR of the numeric hashes
// of all components, in order, starting from 0.
func (v Vector) Hash() int64 {
	var h int64
	for _, c := range v.components {
		h ^= hash.Float64(c)
	}
	if h == -1 {
		h = -2
	}
	return h
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	return norm(v.components)
}

// NonZero reports whether the norm is nonzero.
func (v Vector) NonZero() bool {
	return v.Norm() != 0
}

func norm(components []float64) float64 {
	var sum float64
	for _, c := range components {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// At returns the component at index i. Negative indices count from the end.
func (v Vector) At(i int) (float64, error) {
	n := len(v.components)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, &IndexError{Index: i, Length: n}
	}
	return v.components[idx], nil
}

// Slice returns a new vector holding the components in [start, stop).
//
// Bounds follow ordinary sequence slicing: negative values count from the
// end, out-of-range values are clamped, and stop <= start yields an empty
// vector.
func (v Vector) Slice(start, stop int) Vector {
	lo, hi := Span(start, stop).bounds(len(v.components))
	return New(v.components[lo:hi])
}

// Range selects components [Start, Stop) for Get.
type Range struct {
	Start int
	Stop  int
}

// Span returns the range [start, stop).
func Span(start, stop int) Range {
	return Range{Start: start, Stop: stop}
}

// bounds normalizes the range against a sequence of length n.
func (r Range) bounds(n int) (lo, hi int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		return min(max(i, 0), n)
	}
	lo, hi = clamp(r.Start), clamp(r.Stop)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Len returns the number of components the range selects from a sequence
// of length n.
func (r Range) Len(n int) int {
	lo, hi := r.bounds(n)
	return hi - lo
}

// Get indexes the vector by key. Integer keys of any kind return the
// float64 component (see At); a Range returns a new Vector (see Slice).
// Any other key fails with a *TypeError.
func (v Vector) Get(key any) (any, error) {
	switch k := key.(type) {
	case Range:
		return v.Slice(k.Start, k.Stop), nil
	case int:
		return v.At(k)
	case int8:
		return v.At(int(k))
	case int16:
		return v.At(int(k))
	case int32:
		return v.At(int(k))
	case int64:
		if k < math.MinInt || k > math.MaxInt {
			return nil, &IndexError{Index: clampInt64(k), Length: len(v.components)}
		}
		return v.At(int(k))
	case uint:
		return v.atUnsigned(uint64(k))
	case uint8:
		return v.At(int(k))
	case uint16:
		return v.At(int(k))
	case uint32:
		return v.atUnsigned(uint64(k))
	case uint64:
		return v.atUnsigned(k)
	case uintptr:
		return v.atUnsigned(uint64(k))
	default:
		return nil, &TypeError{Key: key}
	}
}

func (v Vector) atUnsigned(i uint64) (any, error) {
	if i > math.MaxInt {
		return nil, &IndexError{Index: math.MaxInt, Length: len(v.components)}
	}
	return v.At(int(i))
}

func clampInt64(i int64) int {
	if i < math.MinInt {
		return math.MinInt
	}
	return math.MaxInt
}
