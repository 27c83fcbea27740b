package memhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/record"
	"go.uber.org/zap"
	"strings"
)

// Insert - Adds a record unless a live record with the same id already exists. If the number of live records has
// reached half the capacity the table is doubled before the record is placed.
// A tombstone left by another id is never reused, only expansion reclaims it.
//   - rec is the record to insert, its deleted flag must not be set
//
// It returns:
//   - inserted is true if the record was added, false if the id was already present
//   - err is of type crt.RecordDeleted, crt.TableFull or a standard error, if something went wrong
func (H *HashTable) Insert(rec *record.Record) (inserted bool, err error) {
	if rec == nil {
		err = fmt.Errorf("record can not be nil")
		return
	}
	if rec.IsDeleted() {
		err = crt.RecordDeleted{}
		return
	}

	// Quiet search for an existing live record
	_, err = H.search(rec.ID(), false)
	if err == nil {
		H.metrics.IncInsert("duplicate")
		return
	}
	if !errors.Is(err, crt.NoRecordFound{}) {
		H.metrics.IncInsert("error")
		return
	}

	if float64(H.liveCount()) >= float64(H.GetCapacity())*conf.LoadFactorThreshold {
		err = H.ExpandTable()
		if err != nil {
			H.metrics.IncInsert("error")
			return
		}
	}

	_, err = H.slotManagement.Set(rec)
	H.metrics.ObserveProbe(H.slotManagement.GetLastProbe())
	if err != nil {
		if errors.Is(err, crt.TableFull{}) {
			H.logger.Warn("no slot available for record",
				zap.Int64("id", rec.ID()),
				zap.Int64("capacity", H.GetCapacity()),
				zap.Int64("tombstones", H.slotManagement.GetUtilization().Tombstoned),
			)
		}
		H.metrics.IncInsert("error")
		err = fmt.Errorf("error while inserting record with id %d: %w", rec.ID(), err)
		return
	}

	inserted = true
	H.metrics.IncInsert("ok")
	H.updateMetrics()

	return
}

// Search - Gets the live record with the given id.
//   - id is the identifier of a record
//   - verbose set to true writes a diagnostic line to the output if the record is not found
//
// It returns:
//   - rec is the record if found
//   - err is of type crt.NoRecordFound if not found, or a standard error, if something went wrong
func (H *HashTable) Search(id int64, verbose bool) (rec *record.Record, err error) {
	rec, err = H.search(id, verbose)
	if err == nil {
		H.metrics.IncSearch("hit")
	} else if errors.Is(err, crt.NoRecordFound{}) {
		H.metrics.IncSearch("miss")
	}

	return
}

// Delete - Marks the live record with the given id as deleted. Its slot becomes a tombstone that stays until
// the next expansion.
//   - id is the identifier of a record
//
// It returns:
//   - deleted is true if a live record was found and deleted
//   - err is a standard error, if something went wrong
func (H *HashTable) Delete(id int64) (deleted bool, err error) {
	_, err = H.slotManagement.Delete(id)
	H.metrics.ObserveProbe(H.slotManagement.GetLastProbe())
	if err != nil {
		if errors.Is(err, crt.NoRecordFound{}) {
			err = nil
			H.metrics.IncDelete("missing")
		}
		return
	}

	deleted = true
	H.metrics.IncDelete("ok")
	H.updateMetrics()

	return
}

// FindIndex - Returns the slot index where probing for id stops, the first empty slot or the first slot
// carrying id whether live or tombstoned.
//   - id is the identifier of a record
//
// It returns:
//   - index is within 0 -> capacity - 1
//   - err is of type crt.TableFull if every slot in the probe cycle belongs to another id
func (H *HashTable) FindIndex(id int64) (index int64, err error) {
	index, _, err = H.slotManagement.FindIndex(id)
	H.metrics.ObserveProbe(H.slotManagement.GetLastProbe())

	return
}

// ExpandTable - Doubles the capacity and places every live record anew in index order of the old slot array.
// Tombstones and empty slots are dropped. A notice with the new capacity is written to the output.
func (H *HashTable) ExpandTable() (err error) {
	oldCapacity := H.GetCapacity()
	oldUtilization := H.slotManagement.GetUtilization()

	crtConf := H.crtConf
	crtConf.NumberOfSlots = 2 * oldCapacity

	var sm SlotManagement
	sm, err = openaddressing.NewOASlots(crtConf)
	if err != nil {
		// A custom algorithm has already been resized, hand the old size back to it
		if crtConf.HashAlgorithm != nil {
			crtConf.HashAlgorithm.SetTableSize(oldCapacity)
		}
		err = fmt.Errorf("error while creating expanded slot array: %w", err)
		return
	}

	err = H.replaceLiveRecords(H.slotManagement.Slots(), sm)
	if err != nil {
		if crtConf.HashAlgorithm != nil {
			crtConf.HashAlgorithm.SetTableSize(oldCapacity)
		}
		err = fmt.Errorf("error while moving records to expanded slot array: %w", err)
		return
	}

	H.slotManagement = sm
	H.crtConf = crtConf
	H.expansions++

	H.metrics.IncExpansion()
	H.updateMetrics()
	H.logger.Debug("hash table expanded",
		zap.Int64("capacity", crtConf.NumberOfSlots),
		zap.Int64("live", oldUtilization.Occupied),
		zap.Int64("tombstones", oldUtilization.Tombstoned),
	)

	err = H.write(fmt.Sprintf(conf.ExpandedMessage, crtConf.NumberOfSlots))

	return
}

// PrintHashTable - Writes a dump of all non-empty slots to the output and returns it.
// The total counts the live lines written in this dump.
func (H *HashTable) PrintHashTable() (output string, err error) {
	var sb strings.Builder
	var slot model.Slot
	var count int64

	sb.WriteString(conf.TableHeader)

	iter := H.slotManagement.Slots()
	for iter.HasNext() {
		slot, err = iter.Next()
		if err != nil {
			return
		}

		if slot.State == model.SlotTombstoned {
			_, _ = fmt.Fprintf(&sb, conf.TableTombstoneLine, slot.Index)
		} else {
			_, _ = fmt.Fprintf(&sb, conf.TableLiveLine, slot.Index, slot.Id)
			count++
		}
	}

	_, _ = fmt.Fprintf(&sb, conf.TableFooter, count)

	output = sb.String()
	err = H.write(output)

	return
}

// PrintMemoryBlocks - Writes the free block list to the output. No operation ever adds a free block, so the
// list always ends with the statement that there are none.
func (H *HashTable) PrintMemoryBlocks() (err error) {
	var sb strings.Builder

	sb.WriteString(conf.FreeBlockHeader)
	for _, block := range H.freeBlocks {
		if block == conf.FreeBlockSentinel {
			continue
		}
		_, _ = fmt.Fprintf(&sb, conf.FreeBlockLine, block)
	}
	sb.WriteString(conf.FreeBlockFooter)

	err = H.write(sb.String())

	return
}

// search - Gets the live record with the given id, writing a diagnostic line on a miss if verbose is set
func (H *HashTable) search(id int64, verbose bool) (rec *record.Record, err error) {
	slot, err := H.slotManagement.Get(id)
	H.metrics.ObserveProbe(H.slotManagement.GetLastProbe())
	if err == nil {
		rec = slot.Record
		return
	}

	if verbose && errors.Is(err, crt.NoRecordFound{}) {
		if wErr := H.write(fmt.Sprintf(conf.SearchFailedMessage, id)); wErr != nil {
			err = errors.Join(err, wErr)
		}
	}

	return
}

// replaceLiveRecords - Places the records of all occupied slots from iter into sm
func (H *HashTable) replaceLiveRecords(iter *openaddressing.SlotIterator, sm SlotManagement) (err error) {
	var slot model.Slot
	for iter.HasNext() {
		slot, err = iter.Next()
		if err != nil {
			return
		}

		if slot.State != model.SlotOccupied {
			continue
		}

		_, err = sm.Set(slot.Record)
		if err != nil {
			return
		}
	}

	return
}
