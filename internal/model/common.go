package model

import (
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/record"
)

// SlotEmpty - State indicating a slot that is or has never been in use since the slot array was created
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot holding a live record
const SlotOccupied uint8 = 1

// SlotTombstoned - State indicating a slot whose record was deleted, it keeps the id so probe chains stay intact
const SlotTombstoned uint8 = 2

// Slot - Represents one slot in the slot array
//   - State is one of SlotEmpty, SlotOccupied or SlotTombstoned
//   - Index is the position of the slot in the slot array
//   - Id is the id of the record held, or of the record that was deleted, meaningless for an empty slot
//   - Record is the record held, for a tombstoned slot it is the deleted record
type Slot struct {
	State  uint8
	Index  int64
	Id     int64
	Record *record.Record
}

// StorageParameters - Represents parameters specific for the slot array implementation
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfSlots                int64
	InternalAlgorithm            bool
}

// Utilization - Counters of slot states in a slot array
type Utilization struct {
	Empty      int64
	Occupied   int64
	Tombstoned int64
}

// CRTConf - Is a struct to be passed in the call to NewOASlots and contains configuration that affects
// slot processing.
//   - NumberOfSlots is the number of slots to create, must be a power of 2
//   - CollisionResolutionTechnique is one of the crt constants, only used if HashAlgorithm is nil
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal one for the technique
type CRTConf struct {
	NumberOfSlots                int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
}
