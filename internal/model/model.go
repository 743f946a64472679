package model

import (
	"github.com/gostonefire/lphashmap/hashfunc"
	"golang.org/x/exp/constraints"
)

// Record - Represents one slot in the backing store
type Record[K constraints.Ordered, V any] struct {
	State uint8
	Slot  int
	Key   K
	Value V
}

// StorageParameters - Represents parameters specific for the backing store
type StorageParameters struct {
	TableSize         int
	NumberOfRecords   int
	InternalAlgorithm bool
}

// CRTConf - Is a struct to be passed in the call to NewLPTable and contains configuration that affects
// the backing store.
//   - TableSize is the number of slots to allocate
//   - HashAlgorithm is the hash function to use, nil gives the internal default
type CRTConf[K constraints.Ordered] struct {
	TableSize     int
	HashAlgorithm hashfunc.HashAlgorithm[K]
}
