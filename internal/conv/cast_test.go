//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint8(t *testing.T) {
	got, err := IntToUint8(255)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), got)

	_, err = IntToUint8(256)
	assert.Error(t, err)

	_, err = IntToUint8(-1)
	assert.Error(t, err)
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}
