package linearprobing

import (
	"github.com/gostonefire/lphashmap/internal/conf"
	"github.com/gostonefire/lphashmap/internal/model"
	"github.com/gostonefire/lphashmap/internal/storage"
)

// nextSlot - Returns the slot following the given one, wrapping around the table
func (L *LPTable[K, V]) nextSlot(slot int) int {
	slot++
	if slot == L.tableSize {
		slot = 0
	}

	return slot
}

// clearSlot - Empties a slot, releasing its key and value
func (L *LPTable[K, V]) clearSlot(slot int) {
	L.records[slot] = model.Record[K, V]{}
	L.nOccupied--
}

// naturalIndex - Returns the slot a key hashes to, checking that the hash algorithm stays within the table
func (L *LPTable[K, V]) naturalIndex(key K) (slot int, err error) {
	slot = L.hashAlgorithm.HashFunc1(key)
	if slot < 0 || slot >= L.tableSize {
		err = storage.NewProbingAlgorithm(slot, L.tableSize)
	}

	return
}

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for finding the slot holding a key.
// The first empty slot ends the search since no cluster ever has a gap in it.
func (L *LPTable[K, V]) probingForGet(key K) (slot int, err error) {
	slot, err = L.naturalIndex(key)
	if err != nil {
		return
	}

	for i := 0; i < L.tableSize; i, slot = i+1, L.nextSlot(slot) {
		record := &L.records[slot]
		if record.State == conf.RecordEmpty {
			err = storage.NoRecordFound{}
			return
		}
		if record.Key == key {
			return
		}
	}

	// Every slot is occupied by some other key
	err = storage.NoRecordFound{}
	return
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for finding the slot to set a key in.
// It returns the slot holding the key if present, otherwise the first empty slot in probe order.
func (L *LPTable[K, V]) probingForSet(key K) (slot int, err error) {
	slot, err = L.naturalIndex(key)
	if err != nil {
		return
	}

	for i := 0; i < L.tableSize; i, slot = i+1, L.nextSlot(slot) {
		record := &L.records[slot]
		if record.State == conf.RecordEmpty || record.Key == key {
			return
		}
	}

	err = storage.TableFull{}
	return
}

// repairCluster - Re-seats every record from startSlot up to the next empty slot.
// Each record is taken out and set again from scratch, which either moves it into the gap left behind by a delete
// or puts it back where it was. Runs as a loop bounded by the table size.
func (L *LPTable[K, V]) repairCluster(startSlot int) (err error) {
	slot := startSlot
	for n := 0; n < L.tableSize && L.records[slot].State == conf.RecordOccupied; n++ {
		record := L.records[slot]
		L.clearSlot(slot)

		_, err = L.Set(record.Key, record.Value)
		if err != nil {
			L.records[slot] = record
			L.nOccupied++
			err = storage.NewClusterRepair(slot, err)
			return
		}

		slot = L.nextSlot(slot)
	}

	return
}
