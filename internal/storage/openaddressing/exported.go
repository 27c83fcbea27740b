package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/gostonefire/memhashmap/record"
)

// OASlots - Represents an in memory slot array for the Open Addressing Collision Resolution Techniques.
// Each slot holds at most one record. In case of a collision, it probes through the slot array using a collision
// resolution algorithm until it finds an empty slot or a slot carrying the id looked for. Deleted records leave a
// tombstone behind that is never handed out to another id, so the slot array has a fixed set of usable slots
// until it is replaced by a bigger one.
type OASlots struct {
	slots                        []model.Slot
	numberOfSlots                int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nEmpty                       int64
	nOccupied                    int64
	nTombstoned                  int64
	lastProbe                    int64
	longestProbe                 int64
}

// NewOASlots - Returns a pointer to a new instance of an Open Addressing slot array with all slots empty.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting slot processing
//
// It returns:
//   - oaSlots which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOASlots(crtConf model.CRTConf) (oaSlots *OASlots, err error) {
	if !utils.IsPowerOf2(crtConf.NumberOfSlots) {
		err = fmt.Errorf("number of slots must be a positive power of 2, got %d", crtConf.NumberOfSlots)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		switch crtConf.CollisionResolutionTechnique {
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm(crtConf.NumberOfSlots)
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.NumberOfSlots)
		case crt.QuadraticProbing:
			crtConf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm(crtConf.NumberOfSlots)
		case crt.MixedDoubleHashing:
			crtConf.HashAlgorithm = hash.NewMixedDoubleHashAlgorithm(crtConf.NumberOfSlots)
		default:
			err = fmt.Errorf("unknown collision resolution technique %d", crtConf.CollisionResolutionTechnique)
			return
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfSlots)
	}

	if crtConf.HashAlgorithm.GetTableSize() != crtConf.NumberOfSlots {
		err = fmt.Errorf("hash algorithm table size %d differs from number of slots %d: %w",
			crtConf.HashAlgorithm.GetTableSize(), crtConf.NumberOfSlots, crt.ProbingAlgorithm{})
		return
	}

	oaSlots = &OASlots{
		slots:                        newSlots(crtConf.NumberOfSlots),
		numberOfSlots:                crtConf.NumberOfSlots,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
		nEmpty:                       crtConf.NumberOfSlots,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OASlots
func (Q *OASlots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		NumberOfSlots:                Q.numberOfSlots,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetUtilization - Returns the number of slots in each state
func (Q *OASlots) GetUtilization() (utilization model.Utilization) {
	utilization = model.Utilization{
		Empty:      Q.nEmpty,
		Occupied:   Q.nOccupied,
		Tombstoned: Q.nTombstoned,
	}

	return
}

// GetNumberOfSlots - Returns the length of the slot array
func (Q *OASlots) GetNumberOfSlots() int64 {
	return Q.numberOfSlots
}

// GetLongestProbe - Returns the highest number of slots visited by a single FindIndex call so far
func (Q *OASlots) GetLongestProbe() int64 {
	return Q.longestProbe
}

// GetLastProbe - Returns the number of slots visited by the most recent FindIndex call
func (Q *OASlots) GetLastProbe() int64 {
	return Q.lastProbe
}

// FindIndex - Returns the index where probing for id stops, which is the first empty slot or the first slot,
// occupied or tombstoned, carrying the same id.
//   - id is the record identifier to probe for
//
// It returns:
//   - index is the slot index where probing stopped
//   - probes is the number of slots visited including the one at index
//   - err is of type crt.TableFull if a full cycle found no place to stop, crt.ProbingAlgorithm if the hash
//     algorithm returned a slot outside the slot array
func (Q *OASlots) FindIndex(id int64) (index int64, probes int64, err error) {
	hf1Value := Q.hashAlgorithm.HashFunc1(id)
	hf2Value := Q.hashAlgorithm.HashFunc2(id)

	for i := int64(0); i < Q.numberOfSlots; i++ {
		index = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if index < 0 || index >= Q.numberOfSlots {
			err = fmt.Errorf("probe %d for id %d is outside slot array: %w", index, id, crt.ProbingAlgorithm{})
			return
		}

		slot := Q.slots[index]
		if slot.State == model.SlotEmpty || slot.Id == id {
			probes = i + 1
			Q.trackProbe(probes)
			return
		}
	}

	// A whole cycle of other ids (live or tombstoned) means there is nowhere left to go
	index = -1
	probes = Q.numberOfSlots
	Q.trackProbe(probes)
	err = crt.TableFull{}

	return
}

// Get - Gets the slot holding the live record with the given id.
//   - id is the identifier of a record
//
// It returns:
//   - slot is the occupied slot if found
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OASlots) Get(id int64) (slot model.Slot, err error) {
	slot, err = Q.probingForGet(id)

	return
}

// Set - Places the record at the slot where probing for its id stops. If that slot holds a live record with the
// same id it is replaced, a tombstone with the same id is overwritten.
//   - rec is the record to place
//
// It returns:
//   - slot is the slot as it looks after placing the record
//   - err is of type crt.TableFull if there is no room, or a standard error
func (Q *OASlots) Set(rec *record.Record) (slot model.Slot, err error) {
	if rec == nil {
		err = fmt.Errorf("record can not be nil")
		return
	}

	index, _, err := Q.FindIndex(rec.ID())
	if err != nil {
		return
	}

	fromState := Q.slots[index].State
	slot = model.Slot{
		State:  model.SlotOccupied,
		Index:  index,
		Id:     rec.ID(),
		Record: rec,
	}
	Q.slots[index] = slot

	Q.updateUtilizationInfo(fromState, slot.State)

	return
}

// Delete - Turns the slot holding the live record with the given id into a tombstone and marks the record
// as deleted. The slot is not released.
//   - id is the identifier of a record
//
// It returns:
//   - slot is the tombstoned slot
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OASlots) Delete(id int64) (slot model.Slot, err error) {
	slot, err = Q.probingForGet(id)
	if err != nil {
		return
	}

	fromState := slot.State
	slot.State = model.SlotTombstoned
	slot.Record.SetDeleted(true)
	Q.slots[slot.Index] = slot

	Q.updateUtilizationInfo(fromState, slot.State)

	return
}

// GetSlot - Returns the slot at the given index
func (Q *OASlots) GetSlot(index int64) (slot model.Slot, err error) {
	if index < 0 || index >= Q.numberOfSlots {
		err = fmt.Errorf("slot index %d outside slot array of %d slots", index, Q.numberOfSlots)
		return
	}

	slot = Q.slots[index]

	return
}

// Slots - Returns an iterator over all non-empty slots in ascending index order
func (Q *OASlots) Slots() *SlotIterator {
	return newSlotIterator(Q.slots)
}

// probingForGet - Probes for id and returns the slot only if it holds a live record with that id
func (Q *OASlots) probingForGet(id int64) (slot model.Slot, err error) {
	index, _, err := Q.FindIndex(id)
	if err != nil {
		// Every slot in the cycle belongs to some other id, so the record is not here
		if errors.Is(err, crt.TableFull{}) {
			err = crt.NoRecordFound{}
		}
		return
	}

	slot = Q.slots[index]
	if slot.State == model.SlotOccupied && slot.Id == id {
		return
	}

	slot = model.Slot{}
	err = crt.NoRecordFound{}

	return
}
