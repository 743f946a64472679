package lphashmap

import (
	"github.com/gostonefire/lphashmap/hashfunc"
	"github.com/gostonefire/lphashmap/internal/conf"
	"github.com/gostonefire/lphashmap/internal/hash"
	"github.com/gostonefire/lphashmap/internal/model"
	"github.com/gostonefire/lphashmap/internal/storage/linearprobing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Map - Key/value contract implemented by ProbingTable
type Map[K constraints.Ordered, V any] interface {
	Put(key K, value V) bool
	Get(key K) (value V, ok bool)
	Delete(key K) bool
	Contains(key K) bool
	Size() int
	Keys() []K
}

var _ Map[string, int] = (*ProbingTable[string, int])(nil)

// tableManagement - Interface for the backing store implementation
type tableManagement[K constraints.Ordered, V any] interface {
	Get(key K) (record model.Record[K, V], err error)
	Set(key K, value V) (inserted bool, err error)
	Delete(key K) (record model.Record[K, V], err error)
	GetRecord(slot int) (record model.Record[K, V], err error)
	Records() (records []model.Record[K, V])
	NaturalIndex(key K) int
	GetHashAlgorithm() hashfunc.HashAlgorithm[K]
	GetStorageParameters() (params model.StorageParameters)
}

// Conf - Configuration given to NewWithConf, any field left at its Go zero value gets the default.
//   - InitialCapacity is the number of slots to start with, default 16
//   - MinCapacity is the capacity the table never shrinks below, default 8
//   - UpperLoadFactor is the load factor at which the table doubles before an insert, default 0.5, must be in (0, 1)
//   - LowerLoadFactor is the load factor at which the table halves after a delete, default 0.125, must be below UpperLoadFactor / 2
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Logger receives resize events at debug level, default is a no-op logger
type Conf[K constraints.Ordered] struct {
	InitialCapacity int
	MinCapacity     int
	UpperLoadFactor float64
	LowerLoadFactor float64
	HashAlgorithm   hashfunc.HashAlgorithm[K]
	Logger          *zap.Logger
}

// HashMapInfo - Information structure containing some information about the table
//   - TableSize is the current number of slots
//   - Records is the number of records stored
//   - LoadFactor is Records divided by TableSize
//   - UpperLoadFactor and LowerLoadFactor are the resize thresholds in use
//   - MinCapacity is the capacity the table never shrinks below
//   - InternalAlgorithm is true if the internal hash algorithm is used
type HashMapInfo struct {
	TableSize         int
	Records           int
	LoadFactor        float64
	UpperLoadFactor   float64
	LowerLoadFactor   float64
	MinCapacity       int
	InternalAlgorithm bool
}

// HashMapStat - Statistics on clustering and probe lengths
//   - Records is the total number of records stored
//   - TableSize is the current number of slots
//   - Clusters is the number of maximal runs of occupied slots (wrapping around the table)
//   - LongestCluster is the length of the longest such run
//   - AverageProbeLength is the average number of slots visited to find a record, 1 meaning its natural slot
//   - ProbeDistribution is the probe length of the record in each slot, 0 for empty slots
type HashMapStat struct {
	Records            int
	TableSize          int
	Clusters           int
	LongestCluster     int
	AverageProbeLength float64
	ProbeDistribution  []int
}

// ProbingTable - The main implementation struct, an open addressing hash table with linear probing.
// It is not safe for concurrent use, callers sharing a table between goroutines must guard every call with one lock.
type ProbingTable[K constraints.Ordered, V any] struct {
	tableManagement   tableManagement[K, V]
	minCapacity       int
	upperLoadFactor   float64
	lowerLoadFactor   float64
	internalAlgorithm bool
	logger            *zap.Logger
}

// New - Returns a new empty ProbingTable with default configuration
func New[K constraints.Ordered, V any]() *ProbingTable[K, V] {
	probingTable, _, err := NewWithConf[K, V](Conf[K]{})
	if err != nil {
		panic(err)
	}

	return probingTable
}

// NewWithConf - Returns a new empty ProbingTable configured by tableConf.
//
// It returns:
//   - probingTable is a pointer to a ProbingTable struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the table created.
//   - err wraps ErrInvalidConf if any configuration value is out of range
func NewWithConf[K constraints.Ordered, V any](tableConf Conf[K]) (probingTable *ProbingTable[K, V], hashMapInfo HashMapInfo, err error) {
	tableConf, err = validateConf(tableConf)
	if err != nil {
		return
	}

	tm, err := linearprobing.NewLPTable[K, V](model.CRTConf[K]{
		TableSize:     tableConf.InitialCapacity,
		HashAlgorithm: tableConf.HashAlgorithm,
	})
	if err != nil {
		err = errors.Wrap(ErrInvalidConf, err.Error())
		return
	}

	probingTable = &ProbingTable[K, V]{
		tableManagement:   tm,
		minCapacity:       tableConf.MinCapacity,
		upperLoadFactor:   tableConf.UpperLoadFactor,
		lowerLoadFactor:   tableConf.LowerLoadFactor,
		internalAlgorithm: tableConf.HashAlgorithm == nil,
		logger:            tableConf.Logger,
	}

	hashMapInfo = probingTable.Info()

	return
}

// NewLinearProbingHashAlgorithm - Returns the internal default hash algorithm, xxhash over the encoded key.
// Handy as a base when wrapping the hash algorithm in a custom one.
func NewLinearProbingHashAlgorithm[K constraints.Ordered](tableSize int) hashfunc.HashAlgorithm[K] {
	return hash.NewLinearProbingHashAlgorithm[K](tableSize)
}

// NewCRC32HashAlgorithm - Returns a hash algorithm using crc32 (IEEE) over the encoded key
func NewCRC32HashAlgorithm[K constraints.Ordered](tableSize int) hashfunc.HashAlgorithm[K] {
	return hash.NewCRC32HashAlgorithm[K](tableSize)
}

// Info - Returns a HashMapInfo struct describing the current state of the table
func (P *ProbingTable[K, V]) Info() (hashMapInfo HashMapInfo) {
	sp := P.tableManagement.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		TableSize:         sp.TableSize,
		Records:           sp.NumberOfRecords,
		LoadFactor:        float64(sp.NumberOfRecords) / float64(sp.TableSize),
		UpperLoadFactor:   P.upperLoadFactor,
		LowerLoadFactor:   P.lowerLoadFactor,
		MinCapacity:       P.minCapacity,
		InternalAlgorithm: P.internalAlgorithm,
	}

	return
}

// validateConf - Checks conf and fills in defaults
func validateConf[K constraints.Ordered](c Conf[K]) (Conf[K], error) {
	if c.InitialCapacity < 0 {
		return c, errors.Wrapf(ErrInvalidConf, "initial capacity must be a positive value, got %d", c.InitialCapacity)
	}
	if c.InitialCapacity == 0 {
		c.InitialCapacity = conf.DefaultInitialCapacity
	}

	if c.MinCapacity < 0 {
		return c, errors.Wrapf(ErrInvalidConf, "min capacity must be a positive value, got %d", c.MinCapacity)
	}
	if c.MinCapacity == 0 {
		c.MinCapacity = conf.DefaultMinCapacity
	}

	if c.UpperLoadFactor == 0 {
		c.UpperLoadFactor = conf.DefaultUpperLoadFactor
	}
	if !(c.UpperLoadFactor > 0 && c.UpperLoadFactor < 1) {
		return c, errors.Wrapf(ErrInvalidConf, "upper load factor must be between 0 and 1 (exclusive), got %v", c.UpperLoadFactor)
	}

	if c.LowerLoadFactor == 0 {
		c.LowerLoadFactor = conf.DefaultLowerLoadFactor
	}
	if !(c.LowerLoadFactor > 0 && c.LowerLoadFactor < c.UpperLoadFactor/2) {
		return c, errors.Wrapf(ErrInvalidConf, "lower load factor must be positive and below half the upper load factor %v, got %v",
			c.UpperLoadFactor, c.LowerLoadFactor)
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c, nil
}

// resize - Builds a new backing store of newSize slots and sets every record from the current one in it.
// The new store replaces the current only when all records have been moved, otherwise the current is kept.
func (P *ProbingTable[K, V]) resize(newSize int) (err error) {
	from := P.tableManagement.GetStorageParameters()

	var hashAlgorithm hashfunc.HashAlgorithm[K]
	if !P.internalAlgorithm {
		hashAlgorithm = P.tableManagement.GetHashAlgorithm()
		defer func() {
			// An external algorithm is shared, give it back its old size if the old store is kept
			if err != nil {
				hashAlgorithm.SetTableSize(from.TableSize)
			}
		}()
	}

	to, err := linearprobing.NewLPTable[K, V](model.CRTConf[K]{
		TableSize:     newSize,
		HashAlgorithm: hashAlgorithm,
	})
	if err != nil {
		return
	}

	err = reorgRecords[K, V](P.tableManagement, to)
	if err != nil {
		return
	}

	P.tableManagement = to

	P.logger.Debug("resized probing table",
		zap.Int("fromSize", from.TableSize),
		zap.Int("toSize", newSize),
		zap.Int("records", from.NumberOfRecords),
	)

	return
}

// reorgRecords - Reads every record in use from one backing store and sets it in another
func reorgRecords[K constraints.Ordered, V any](from tableManagement[K, V], to tableManagement[K, V]) (err error) {
	for _, record := range from.Records() {
		_, err = to.Set(record.Key, record.Value)
		if err != nil {
			return
		}
	}

	return
}
