package lphashmap

import (
	"github.com/gostonefire/lphashmap/internal/storage"
	"github.com/gostonefire/lphashmap/internal/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// If the table has reached its upper load factor it is doubled before the record is placed.
//   - key is the identifier of a record, a key not equal to itself (NaN) is refused
//   - value is the value to store with the key
//
// It returns:
//   - true if the record was stored
func (P *ProbingTable[K, V]) Put(key K, value V) bool {
	if !utils.IsValidKey(key) {
		return false
	}

	sp := P.tableManagement.GetStorageParameters()
	if float64(sp.NumberOfRecords) >= float64(sp.TableSize)*P.upperLoadFactor {
		if err := P.resize(2 * sp.TableSize); err != nil {
			P.logger.Warn("failed to grow probing table", zap.Int("tableSize", sp.TableSize), zap.Error(err))
		}
	}

	_, err := P.tableManagement.Set(key, value)
	if err != nil {
		P.logger.Warn("failed to set record", zap.Error(err))
		return false
	}

	return true
}

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - ok is true if a record was found
func (P *ProbingTable[K, V]) Get(key K) (value V, ok bool) {
	if !utils.IsValidKey(key) {
		return
	}

	record, err := P.tableManagement.Get(key)
	if err != nil {
		if !errors.Is(err, storage.NoRecordFound{}) {
			P.logger.Warn("failed to get record", zap.Error(err))
		}
		return
	}

	return record.Value, true
}

// Contains - Returns true if a record with the given key exists
func (P *ProbingTable[K, V]) Contains(key K) bool {
	_, ok := P.Get(key)
	return ok
}

// Delete - Removes the record with the given key, returns false if there was none.
func (P *ProbingTable[K, V]) Delete(key K) bool {
	_, ok := P.Pop(key)
	return ok
}

// Pop - Returns the value corresponding to key and removes the record from the table.
// The probe cluster after the removed record is repaired, and if the table falls to its lower load factor
// it is halved, but never below the configured min capacity and never when it became empty.
//
// It returns:
//   - value is the value of the removed record, the zero value of V if none was found
//   - ok is true if a record was removed
func (P *ProbingTable[K, V]) Pop(key K) (value V, ok bool) {
	if !utils.IsValidKey(key) {
		return
	}

	record, err := P.tableManagement.Delete(key)
	if err != nil {
		if !errors.Is(err, storage.ClusterRepair{}) {
			if !errors.Is(err, storage.NoRecordFound{}) {
				P.logger.Warn("failed to delete record", zap.Error(err))
			}
			return
		}
		P.logger.Warn("deleted record but failed to repair probe cluster", zap.Error(err))
	}

	sp := P.tableManagement.GetStorageParameters()
	if sp.NumberOfRecords > 0 &&
		float64(sp.NumberOfRecords) <= float64(sp.TableSize)*P.lowerLoadFactor &&
		sp.TableSize/2 >= P.minCapacity {
		if err = P.resize(sp.TableSize / 2); err != nil {
			P.logger.Warn("failed to shrink probing table", zap.Int("tableSize", sp.TableSize), zap.Error(err))
		}
	}

	return record.Value, true
}

// Size - Returns the number of records in the table
func (P *ProbingTable[K, V]) Size() int {
	return P.tableManagement.GetStorageParameters().NumberOfRecords
}

// Keys - Returns a snapshot of all keys sorted in ascending order
func (P *ProbingTable[K, V]) Keys() []K {
	records := P.tableManagement.Records()

	keys := make([]K, len(records))
	for i, record := range records {
		keys[i] = record.Key
	}
	slices.Sort(keys)

	return keys
}

// Stat - Walks through the entire table and produces a HashMapStat struct with information on clusters and probe lengths.
//   - includeDistribution set to true will include a slice of length TableSize with the probe length per slot, false will set HashMapStat.ProbeDistribution to nil.
func (P *ProbingTable[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	sp := P.tableManagement.GetStorageParameters()
	tableSize := sp.TableSize

	hashMapStat = HashMapStat{Records: sp.NumberOfRecords, TableSize: tableSize}
	if includeDistribution {
		hashMapStat.ProbeDistribution = make([]int, tableSize)
	}

	occupied := make([]bool, tableSize)
	var probeSum int
	for _, record := range P.tableManagement.Records() {
		occupied[record.Slot] = true

		probeLength := (record.Slot-P.tableManagement.NaturalIndex(record.Key)+tableSize)%tableSize + 1
		probeSum += probeLength
		if includeDistribution {
			hashMapStat.ProbeDistribution[record.Slot] = probeLength
		}
	}

	if sp.NumberOfRecords > 0 {
		hashMapStat.AverageProbeLength = float64(probeSum) / float64(sp.NumberOfRecords)
	}

	hashMapStat.Clusters, hashMapStat.LongestCluster = clusters(occupied)

	return
}

// clusters - Counts maximal runs of occupied slots, a run may wrap from the end of the table to its start
func clusters(occupied []bool) (n, longest int) {
	tableSize := len(occupied)

	start := -1
	for i, o := range occupied {
		if !o {
			start = i
			break
		}
	}
	if start == -1 {
		if tableSize > 0 {
			return 1, tableSize
		}
		return
	}

	// Starting right after an empty slot no run is cut in two by the wrap around
	var run int
	for i := 1; i <= tableSize; i++ {
		if occupied[(start+i)%tableSize] {
			run++
			continue
		}
		if run > 0 {
			n++
			if run > longest {
				longest = run
			}
			run = 0
		}
	}

	return
}
