package hashfunc

import "golang.org/x/exp/constraints"

// HashAlgorithm - Interface that permits an implementation using the ProbingTable to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K constraints.Ordered] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called every time the ProbingTable builds a new backing store, that is when it is created and on every
	// grow or shrink. Hence, if a custom hash algorithm already holds a table size, it will be overwritten by the
	// number of slots of the new backing store.
	//   - tableSize is the number of slots the backing store will address
	SetTableSize(tableSize int)

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It must return exactly the size given to SetTableSize.
	GetTableSize() int

	// HashFunc1 - Given key it generates the natural index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// Probing from the natural index is always done by the ProbingTable itself, one slot at a time.
	HashFunc1(key K) int
}
