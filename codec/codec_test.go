package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypervec"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"binary", "json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	vectors := []hypervec.Vector{
		{},
		hypervec.Of(0),
		hypervec.Of(3, 4),
		hypervec.Of(-1.5, 2.25, 1e-300, 1e300),
	}

	for _, c := range []Codec{Binary{}, JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			for _, v := range vectors {
				data, err := c.Marshal(v)
				require.NoError(t, err)

				var got hypervec.Vector
				require.NoError(t, c.Unmarshal(data, &got))
				assert.True(t, got.Equal(v), "%v", v)
			}
		})
	}
}

func TestBinaryIsWireFormat(t *testing.T) {
	v := hypervec.Of(1, 2)
	assert.Equal(t, v.Bytes(), MustMarshal(Binary{}, v))
	assert.Equal(t, v.Bytes(), MustMarshal(nil, v))
}

func TestBinaryNonFinite(t *testing.T) {
	v := hypervec.Of(math.Inf(1), math.Inf(-1))

	data, err := Binary{}.Marshal(v)
	require.NoError(t, err)

	var got hypervec.Vector
	require.NoError(t, Binary{}.Unmarshal(data, &got))
	assert.True(t, got.Equal(v))

	_, err = JSON{}.Marshal(v)
	assert.Error(t, err)
}

func TestBinaryRejectsUnsupportedTypes(t *testing.T) {
	_, err := Binary{}.Marshal(42)
	assert.Error(t, err)

	var n int
	assert.Error(t, Binary{}.Unmarshal([]byte{'d'}, &n))
}

func TestBinaryDecodeError(t *testing.T) {
	var got hypervec.Vector
	err := Binary{}.Unmarshal([]byte{'x'}, &got)
	assert.ErrorIs(t, err, hypervec.ErrDecode)
}

func TestMustMarshalPanics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(Binary{}, struct{}{}) })
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	out, err := GoJSON{}.Append(dst, hypervec.Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "prefix:[1,2]", string(out))
}
