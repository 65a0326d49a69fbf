package hypervec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypervec/internal/fmtspec"
)

func TestFormatSpec(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		spec string
		want string
	}{
		{"default", Of(3, 4), "", "(3.0, 4.0)"},
		{"hyperspherical", Of(3, 4), ".1fh", "<5.0, 0.9>"},
		{"hyperspherical bare", Of(0, 5), "h", "<5.0, 1.5707963267948966>"},
		{"fixed", Of(3, 4), ".2f", "(3.00, 4.00)"},
		{"exponent", Of(1234.5, 0.001), ".2e", "(1.23e+03, 1.00e-03)"},
		{"width", Of(1, -1), "+6.1f", "(  +1.0,   -1.0)"},
		{"empty", Vector{}, "", "()"},
		{"empty hyperspherical", Vector{}, "h", "<0.0>"},
		{"single", Of(2), ".1f", "(2.0)"},
		{"precision without type", Of(123.456, 3), ".3", "(1.23e+02, 3.0)"},
		{"single hyperspherical", Of(-2), ".1fh", "<2.0>"},
		{"three dimensions", Of(1, 1, 1), ".3eh", "<1.732e+00, 9.553e-01, 7.854e-01>"},
		{"negative last", Of(1, 1, -1), ".5fh", "<1.73205, 0.95532, 5.49779>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.FormatSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSpecInvalid(t *testing.T) {
	for _, spec := range []string{"d", ".f", "xh", ".2fxh"} {
		_, err := Of(1).FormatSpec(spec)

		var specErr *fmtspec.Error
		assert.ErrorAs(t, err, &specErr, "spec %q", spec)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3.0, 4.0)", Of(3, 4).String())
	assert.Equal(t, "(3.0,)", Of(3).String())
	assert.Equal(t, "()", Vector{}.String())
	assert.Equal(t, "(0.1, 1e-05, 1e+16)", Of(0.1, 0.00001, 1e16).String())
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "Vector([3.0, 4.0])", Of(3, 4).GoString())
	assert.Equal(t, "Vector([])", Vector{}.GoString())
	assert.Equal(t, "Vector([0.0, 1.0, 2.0, 3.0, 4.0])", Of(0, 1, 2, 3, 4).GoString())
	assert.Equal(t, "Vector([0.0, 1.0, 2.0, 3.0, 4.0, ...])", Of(0, 1, 2, 3, 4, 5, 6).GoString())
}

func TestFormatter(t *testing.T) {
	v := Of(3, 4)

	tests := []struct {
		format string
		want   string
	}{
		{"%v", "(3.0, 4.0)"},
		{"%s", "(3.0, 4.0)"},
		{"%#v", "Vector([3.0, 4.0])"},
		{"%.2f", "(3.00, 4.00)"},
		{"%+.1f", "(+3.0, +4.0)"},
		{"%6.1f", "(   3.0,    4.0)"},
		{"%-6.1f|", "(3.0   , 4.0   )|"},
		{"%06.1f", "(0003.0, 0004.0)"},
		{"%.1e", "(3.0e+00, 4.0e+00)"},
		{"%g", "(3, 4)"},
		{"%.1h", "<5.0, 0.9>"},
		{"%d", "%!d(hypervec.Vector=(3.0, 4.0))"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, v))
		})
	}

	assert.Equal(t, "<2.0, 1.5707963267948966>", fmt.Sprintf("%h", Of(0, 2)))
}
