package hash

import (
	"github.com/gostonefire/lphashmap/internal/utils"
	"golang.org/x/exp/constraints"
	"hash/crc32"
)

// CRC32HashAlgorithm - An alternative slot selection algorithm using crc32.ChecksumIEEE to create a hash value over
// the encoded key and then applying slot = hash % tableSize. It spreads keys less evenly than the default
// LinearProbingHashAlgorithm but is kept for callers who want hash values compatible with other crc32 based tooling.
type CRC32HashAlgorithm[K constraints.Ordered] struct {
	tableSize int
}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm[K constraints.Ordered](tableSize int) *CRC32HashAlgorithm[K] {
	return &CRC32HashAlgorithm[K]{tableSize: tableSize}
}

// SetTableSize - Sets the table size for the hash algorithm.
func (C *CRC32HashAlgorithm[K]) SetTableSize(tableSize int) {
	C.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CRC32HashAlgorithm[K]) GetTableSize() int {
	return C.tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (C *CRC32HashAlgorithm[K]) HashFunc1(key K) int {
	h := crc32.ChecksumIEEE(utils.KeyToBytes(key))
	return int(uint64(h) % uint64(C.tableSize))
}
