package openaddressing

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// SlotIterator - Is used to iterate over non-empty slots one by one in ascending index order.
type SlotIterator struct {
	slots []model.Slot
	next  int
}

// newSlotIterator - Returns a pointer to a new SlotIterator positioned at the first non-empty slot
func newSlotIterator(slots []model.Slot) *SlotIterator {
	iter := &SlotIterator{slots: slots}
	iter.skipEmpty()

	return iter
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (S *SlotIterator) HasNext() bool {
	return S.next < len(S.slots)
}

// Next - Returns slot.
// It returns:
//   - slot is the next non-empty slot, either occupied or tombstoned
//   - err is of type crt.NoRecordFound if there are no more slots when calling this function
func (S *SlotIterator) Next() (slot model.Slot, err error) {
	if !S.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	slot = S.slots[S.next]
	S.next++
	S.skipEmpty()

	return
}

// skipEmpty - Advances past empty slots
func (S *SlotIterator) skipEmpty() {
	for S.next < len(S.slots) && S.slots[S.next].State == model.SlotEmpty {
		S.next++
	}
}
