package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/lphashmap/internal/utils"
	"golang.org/x/exp/constraints"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm is implemented using xxhash.Sum64 to
// create a hash value over the encoded key and then applying slot = hash % tableSize to get the natural index.
// The table size is used as is, it doesn't have to be a power of 2.
type LinearProbingHashAlgorithm[K constraints.Ordered] struct {
	tableSize int
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
// It sets an initial value for the table size but that size will be updated every time the table is resized.
func NewLinearProbingHashAlgorithm[K constraints.Ordered](tableSize int) *LinearProbingHashAlgorithm[K] {
	ha := &LinearProbingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int) {
	L.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int {
	return L.tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int {
	h := xxhash.Sum64(utils.KeyToBytes(key))
	return int(h % uint64(L.tableSize))
}
