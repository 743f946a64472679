package conf

// DefaultInitialCapacity - Number of slots in a table created without an explicit capacity
const DefaultInitialCapacity int = 16

// DefaultMinCapacity - Capacity a table will never shrink below unless configured otherwise
const DefaultMinCapacity int = 8

// DefaultUpperLoadFactor - Load factor that triggers a doubling of capacity before an insert
const DefaultUpperLoadFactor float64 = 0.5

// DefaultLowerLoadFactor - Load factor that triggers a halving of capacity after a delete
const DefaultLowerLoadFactor float64 = 0.125

// RecordEmpty - State indicating a slot that holds no record
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a slot that holds a record
const RecordOccupied uint8 = 1
