//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

type celsius float64

type userID string

func TestIsValidKey(t *testing.T) {
	t.Run("ordinary keys are valid", func(t *testing.T) {
		assert.True(t, IsValidKey(0), "int zero is valid")
		assert.True(t, IsValidKey(""), "empty string is valid")
		assert.True(t, IsValidKey(math.Inf(1)), "infinity is valid")
	})

	t.Run("NaN is not a valid key", func(t *testing.T) {
		// Execute
		valid := IsValidKey(math.NaN())

		// Check
		assert.False(t, valid, "NaN rejected")
	})
}

func TestKeyToBytes(t *testing.T) {
	t.Run("encodes integers into eight bytes", func(t *testing.T) {
		// Execute
		b := KeyToBytes(int32(-1))

		// Check
		assert.Equal(t, []byte{255, 255, 255, 255, 255, 255, 255, 255}, b, "sign extended int")
		assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, KeyToBytes(uint8(1)), "little endian uint")
	})

	t.Run("encodes strings as their bytes", func(t *testing.T) {
		assert.Equal(t, []byte("abc"), KeyToBytes("abc"), "string bytes")
	})

	t.Run("negative and positive zero give equal bytes", func(t *testing.T) {
		// Prepare
		negZero := math.Copysign(0, -1)

		// Execute
		a := KeyToBytes(negZero)
		b := KeyToBytes(0.0)

		// Check
		assert.Equal(t, a, b, "zeros encoded equally")
	})

	t.Run("named types fall back on underlying kind", func(t *testing.T) {
		assert.Equal(t, KeyToBytes(21.5), KeyToBytes(celsius(21.5)), "named float")
		assert.Equal(t, KeyToBytes("u-1"), KeyToBytes(userID("u-1")), "named string")
	})
}
