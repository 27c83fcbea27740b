package openaddressing

import "github.com/gostonefire/memhashmap/internal/model"

// newSlots - Returns a slot array of the given length with all slots empty and indexed
func newSlots(numberOfSlots int64) (slots []model.Slot) {
	slots = make([]model.Slot, numberOfSlots)
	for i := range slots {
		slots[i].Index = int64(i)
	}

	return
}

// trackProbe - Keeps record of the latest and the longest probe sequence seen
func (Q *OASlots) trackProbe(probes int64) {
	Q.lastProbe = probes
	if probes > Q.longestProbe {
		Q.longestProbe = probes
	}
}

// updateUtilizationInfo - Moves one slot from the fromState counter to the toState counter
func (Q *OASlots) updateUtilizationInfo(fromState, toState uint8) {
	if fromState != toState {
		switch fromState {
		case model.SlotEmpty:
			Q.nEmpty--
		case model.SlotOccupied:
			Q.nOccupied--
		case model.SlotTombstoned:
			Q.nTombstoned--
		}

		switch toState {
		case model.SlotEmpty:
			Q.nEmpty++
		case model.SlotOccupied:
			Q.nOccupied++
		case model.SlotTombstoned:
			Q.nTombstoned++
		}
	}
}
