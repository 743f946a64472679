package linearprobing

import (
	"fmt"
	"github.com/gostonefire/lphashmap/hashfunc"
	"github.com/gostonefire/lphashmap/internal/conf"
	"github.com/gostonefire/lphashmap/internal/hash"
	"github.com/gostonefire/lphashmap/internal/model"
	"golang.org/x/exp/constraints"
)

// LPTable - Represents an in memory backing store for the Linear Probing Collision Resolution Technique.
// It uses one slice of slots where each slot holds at most one record. In case of a collision, it probes through
// the table linearly, looking for an empty slot, and assigns the free slot to the record. Deleted records leave no
// tombstones, instead the rest of the probe cluster is re-seated so that an empty slot always terminates a search.
type LPTable[K constraints.Ordered, V any] struct {
	records           []model.Record[K, V]
	tableSize         int
	nOccupied         int
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	internalAlgorithm bool
}

// NewLPTable - Returns a pointer to a new instance of the Linear Probing backing store with all slots empty.
//   - crtConf is a model.CRTConf struct providing the table size and hash algorithm
//
// It returns:
//   - lpTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLPTable[K constraints.Ordered, V any](crtConf model.CRTConf[K]) (lpTable *LPTable[K, V], err error) {
	if crtConf.TableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero), got %d", crtConf.TableSize)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm[K](crtConf.TableSize)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.TableSize)
	}

	if crtConf.HashAlgorithm.GetTableSize() != crtConf.TableSize {
		err = fmt.Errorf("hash algorithm reports table size %d but %d was set", crtConf.HashAlgorithm.GetTableSize(), crtConf.TableSize)
		return
	}

	lpTable = &LPTable[K, V]{
		records:           make([]model.Record[K, V], crtConf.TableSize),
		tableSize:         crtConf.TableSize,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from LPTable
func (L *LPTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		TableSize:         L.tableSize,
		NumberOfRecords:   L.nOccupied,
		InternalAlgorithm: L.internalAlgorithm,
	}

	return
}

// GetHashAlgorithm - Returns the hash algorithm in use, a resize hands it over to the new backing store
func (L *LPTable[K, V]) GetHashAlgorithm() hashfunc.HashAlgorithm[K] {
	return L.hashAlgorithm
}

// GetRecord - Returns the record held in a given slot, State tells whether it is in use
func (L *LPTable[K, V]) GetRecord(slot int) (record model.Record[K, V], err error) {
	if slot < 0 || slot >= L.tableSize {
		err = fmt.Errorf("slot %d outside table of size %d", slot, L.tableSize)
		return
	}

	record = L.records[slot]
	record.Slot = slot

	return
}

// NaturalIndex - Returns the slot a key hashes to before any probing
func (L *LPTable[K, V]) NaturalIndex(key K) int {
	return L.hashAlgorithm.HashFunc1(key)
}

// Records - Returns all records in use in slot order
func (L *LPTable[K, V]) Records() (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, L.nOccupied)
	for i, record := range L.records {
		if record.State == conf.RecordOccupied {
			record.Slot = i
			records = append(records, record)
		}
	}

	return
}

// Get - Gets record that corresponds to the given key.
//
// It returns:
//   - record is the matching record if found, if not found an error of type storage.NoRecordFound is also returned.
//   - err is either of type storage.NoRecordFound or storage.ProbingAlgorithm
func (L *LPTable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	var slot int
	slot, err = L.probingForGet(key)
	if err != nil {
		return
	}

	record = L.records[slot]
	record.Slot = slot

	return
}

// Set - Updates an existing record with new value or adds it in the first empty slot of the probe sequence.
//
// It returns:
//   - inserted is true if a new record was added, false if an existing was updated
//   - err is of type storage.TableFull or storage.ProbingAlgorithm if something went wrong
func (L *LPTable[K, V]) Set(key K, value V) (inserted bool, err error) {
	var slot int
	slot, err = L.probingForSet(key)
	if err != nil {
		return
	}

	inserted = L.records[slot].State == conf.RecordEmpty
	L.records[slot] = model.Record[K, V]{State: conf.RecordOccupied, Key: key, Value: value}
	if inserted {
		L.nOccupied++
	}

	return
}

// Delete - Deletes the record with the given key and repairs the probe cluster following it.
//
// It returns:
//   - record is the deleted record
//   - err is either of type storage.NoRecordFound or storage.ProbingAlgorithm if nothing was deleted,
//     or of type storage.ClusterRepair if the record was deleted but a record after it could not be re-seated
func (L *LPTable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	var slot int
	slot, err = L.probingForGet(key)
	if err != nil {
		return
	}

	record = L.records[slot]
	record.Slot = slot

	L.clearSlot(slot)
	err = L.repairCluster(L.nextSlot(slot))

	return
}
