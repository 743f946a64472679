//go:build unit

package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size as given", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[int](10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, 10, tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates valid slot numbers", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[string](10)

		for i := 0; i < 1000; i++ {
			// Execute
			slot := h.HashFunc1(fmt.Sprintf("key-%d", i))

			// Check
			assert.GreaterOrEqualf(t, slot, 0, "slot not negative for key #%d", i)
			assert.Lessf(t, slot, 10, "slot less than table size for key #%d", i)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[float64](64)

		// Execute
		a := h.HashFunc1(3.25)
		b := h.HashFunc1(3.25)

		// Check
		assert.Equal(t, a, b, "same key same slot")
	})

	t.Run("spreads keys over the table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[int](16)
		visit := make([]int, 16)

		// Execute
		for i := 0; i < 1600; i++ {
			visit[h.HashFunc1(i)]++
		}

		// Check
		for i := 0; i < 16; i++ {
			assert.Greaterf(t, visit[i], 0, "slot #%d visited", i)
		}
	})
}

func TestLinearProbingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[int](16)
		assert.Equal(t, 16, h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(32)

		// Check
		assert.Equal(t, 32, h.GetTableSize(), "correct tableSize value")
		for i := 0; i < 100; i++ {
			assert.Lessf(t, h.HashFunc1(i), 32, "slot within new table size for key #%d", i)
		}
	})
}
