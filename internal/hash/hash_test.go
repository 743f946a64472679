//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCRC32HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid slot number", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm[string](16)

		// Execute
		slot := h.HashFunc1("abc")

		// Check
		assert.Equal(t, 2, slot, "create a valid slot number")
	})

	t.Run("hashes integers over their encoded bytes", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm[int64](10)

		// Execute
		slot := h.HashFunc1(1)

		// Check
		assert.Equal(t, 5, slot, "create a valid slot number")
	})
}

func TestCRC32HashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("updates table size", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm[string](10)
		assert.Equal(t, 10, h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(7)

		// Check
		assert.Equal(t, 7, h.GetTableSize(), "correct tableSize value")
		for _, key := range []string{"a", "b", "abc", "xyz"} {
			assert.Lessf(t, h.HashFunc1(key), 7, "slot within new table size for key %s", key)
		}
	})
}
