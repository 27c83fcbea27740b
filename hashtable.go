package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/gostonefire/memhashmap/metrics"
	"github.com/gostonefire/memhashmap/record"
	"go.uber.org/zap"
	"io"
)

// SlotManagement - Interface for any slot array implementation
type SlotManagement interface {
	FindIndex(id int64) (index int64, probes int64, err error)
	Get(id int64) (slot model.Slot, err error)
	Set(rec *record.Record) (slot model.Slot, err error)
	Delete(id int64) (slot model.Slot, err error)
	GetSlot(index int64) (slot model.Slot, err error)
	Slots() *openaddressing.SlotIterator
	GetNumberOfSlots() int64
	GetUtilization() (utilization model.Utilization)
	GetStorageParameters() (params model.StorageParameters)
	GetLastProbe() int64
	GetLongestProbe() int64
}

// Conf - Configuration for NewHashTableFromConf
//   - MemoryPoolSize is the length of the free block list, must not be negative
//   - InitialCapacity is the initial number of slots, must be a positive power of 2
//   - Output is the sink for notices and dumps, owned by the caller
//   - CollisionResolutionTechnique is one of the crt constants, zero selects crt.DoubleHashing
//   - HashAlgorithm is an optional custom algorithm, it overrides CollisionResolutionTechnique
//   - Logger is an optional zap logger, nil disables logging
//   - Metrics is an optional metrics.Metrics, nil disables metrics
type Conf struct {
	MemoryPoolSize               int64
	InitialCapacity              int64
	Output                       io.Writer
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *zap.Logger
	Metrics                      *metrics.Metrics
}

// HashTableStat - Statistics on the usage of the slot array
//   - Capacity is the current number of slots
//   - LiveRecords is the number of slots holding a live record
//   - Tombstones is the number of slots holding a deleted record
//   - EmptySlots is the number of never used slots
//   - LoadFactor is LiveRecords / Capacity
//   - LongestProbe is the highest number of slots visited by one probe since the last expansion
//   - Expansions is the number of times the table has doubled
//   - CollisionResolutionTechnique is the crt constant in use
//   - InternalAlgorithm is false if a custom hashfunc.HashAlgorithm is in use
type HashTableStat struct {
	Capacity     int64
	LiveRecords  int64
	Tombstones   int64
	EmptySlots   int64
	LoadFactor   float64
	LongestProbe int64
	Expansions   int64

	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// HashTable - The main implementation struct, an open addressing hash table of records keyed by id.
// It is not safe for concurrent use.
type HashTable struct {
	slotManagement SlotManagement
	crtConf        model.CRTConf
	memoryPoolSize int64
	freeBlocks     []int64
	output         io.Writer
	logger         *zap.Logger
	metrics        *metrics.Metrics
	expansions     int64
}

// NewHashTable - Returns a new hash table using the default double hashing technique.
//   - memoryPoolSize is the length of the free block list
//   - initialCapacity is the initial number of slots, must be a positive power of 2
//   - output is where expansion notices, failed verbose searches and dumps are written
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type ConfigurationError if any argument is invalid
func NewHashTable(memoryPoolSize, initialCapacity int64, output io.Writer) (hashTable *HashTable, err error) {
	hashTable, err = NewHashTableFromConf(Conf{
		MemoryPoolSize:  memoryPoolSize,
		InitialCapacity: initialCapacity,
		Output:          output,
	})

	return
}

// NewHashTableFromConf - Returns a new hash table given a Conf struct.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type ConfigurationError if the configuration is invalid
func NewHashTableFromConf(c Conf) (hashTable *HashTable, err error) {
	// Check if initial capacity is valid, the probe step formula only covers every slot for powers of 2
	if !utils.IsPowerOf2(c.InitialCapacity) {
		err = ConfigurationError{msg: fmt.Sprintf("initial capacity must be a positive power of 2, got %d", c.InitialCapacity)}
		return
	}

	// Check if memory pool size is valid
	if c.MemoryPoolSize < 0 {
		err = ConfigurationError{msg: fmt.Sprintf("memory pool size can not be negative, got %d", c.MemoryPoolSize)}
		return
	}

	// Check that there is somewhere to write
	if c.Output == nil {
		err = ConfigurationError{msg: "output can not be nil"}
		return
	}

	if c.CollisionResolutionTechnique == 0 {
		c.CollisionResolutionTechnique = crt.DoubleHashing
	}
	if c.HashAlgorithm == nil && crt.Name(c.CollisionResolutionTechnique) == "" {
		err = ConfigurationError{msg: fmt.Sprintf("unknown collision resolution technique %d", c.CollisionResolutionTechnique)}
		return
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	crtConf := model.CRTConf{
		NumberOfSlots:                c.InitialCapacity,
		CollisionResolutionTechnique: c.CollisionResolutionTechnique,
		HashAlgorithm:                c.HashAlgorithm,
	}

	var sm SlotManagement
	sm, err = openaddressing.NewOASlots(crtConf)
	if err != nil {
		err = ConfigurationError{msg: fmt.Sprintf("unable to create slot array: %s", err)}
		return
	}

	freeBlocks := make([]int64, c.MemoryPoolSize)
	for i := range freeBlocks {
		freeBlocks[i] = conf.FreeBlockSentinel
	}

	hashTable = &HashTable{
		slotManagement: sm,
		crtConf:        crtConf,
		memoryPoolSize: c.MemoryPoolSize,
		freeBlocks:     freeBlocks,
		output:         c.Output,
		logger:         c.Logger,
		metrics:        c.Metrics,
	}

	hashTable.metrics.SetUtilization(c.InitialCapacity, 0, 0)
	hashTable.logger.Debug("hash table created",
		zap.Int64("capacity", c.InitialCapacity),
		zap.Int64("memoryPoolSize", c.MemoryPoolSize),
		zap.String("crt", crt.Name(c.CollisionResolutionTechnique)),
		zap.Bool("customHash", c.HashAlgorithm != nil),
	)

	return
}

// GetCapacity - Returns the current number of slots
func (H *HashTable) GetCapacity() int64 {
	return H.slotManagement.GetNumberOfSlots()
}

// Stat - Returns statistics on the current slot array
func (H *HashTable) Stat() (hashTableStat HashTableStat) {
	u := H.slotManagement.GetUtilization()
	sp := H.slotManagement.GetStorageParameters()
	capacity := H.slotManagement.GetNumberOfSlots()

	hashTableStat = HashTableStat{
		Capacity:     capacity,
		LiveRecords:  u.Occupied,
		Tombstones:   u.Tombstoned,
		EmptySlots:   u.Empty,
		LoadFactor:   float64(u.Occupied) / float64(capacity),
		LongestProbe: H.slotManagement.GetLongestProbe(),
		Expansions:   H.expansions,

		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

// liveCount - Returns the number of live records
func (H *HashTable) liveCount() int64 {
	return H.slotManagement.GetUtilization().Occupied
}

// updateMetrics - Refreshes the utilization gauges
func (H *HashTable) updateMetrics() {
	u := H.slotManagement.GetUtilization()
	H.metrics.SetUtilization(H.slotManagement.GetNumberOfSlots(), u.Occupied, u.Tombstoned)
}

// write - Writes s to the output sink
func (H *HashTable) write(s string) (err error) {
	_, err = io.WriteString(H.output, s)
	if err != nil {
		err = OutputError{err: err}
	}

	return
}
