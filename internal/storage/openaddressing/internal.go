package openaddressing

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
)

// probingForGet - Is the Linear Probing algorithm for finding the slot of an existing key.
// An empty slot ends the search, tombstones and other keys are passed, and the search never visits
// more than the full table once.
func (Q *OATable[K, V]) probingForGet(key K) (slotNo int64, found bool) {
	capacity := Q.hashAlgorithm.GetTableSize()
	hf1Value := Q.hashAlgorithm.HashFunc1(Q.canonical(key))

	for i := int64(0); i < capacity; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		slot := &Q.slots[probe]

		switch slot.State {
		case model.SlotEmpty:
			return

		case model.SlotOccupied:
			if slot.Entry.Key == key {
				slotNo = probe
				found = true
				return
			}
		}
	}

	return
}

// probingForSet - Is the Linear Probing algorithm for getting a slot for set.
// It returns the slot holding key if it exists on the probe path, otherwise the first tombstone passed,
// otherwise the empty slot that ended the search. The search goes past tombstones so that a key living
// further along the path is updated rather than duplicated.
func (Q *OATable[K, V]) probingForSet(key K) (slotNo int64, err error) {
	var deletedSlotNo int64
	var hasCached bool

	capacity := Q.hashAlgorithm.GetTableSize()
	hf1Value := Q.hashAlgorithm.HashFunc1(Q.canonical(key))

	for i := int64(0); i < capacity; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		slot := &Q.slots[probe]

		switch slot.State {
		case model.SlotEmpty:
			if hasCached {
				slotNo = deletedSlotNo
			} else {
				slotNo = probe
			}
			return

		case model.SlotOccupied:
			if slot.Entry.Key == key {
				slotNo = probe
				return
			}

		case model.SlotDeleted:
			if !hasCached {
				deletedSlotNo = probe
				hasCached = true
			}
		}
	}

	// A full cycle without the key or an empty slot, a tombstone can still take the entry
	if hasCached {
		slotNo = deletedSlotNo
		return
	}

	err = crt.NewMapFull(fmt.Sprintf("no slot available for a new key in a table of %d slots holding %d records", capacity, Q.nOccupied))
	return
}

// updateUtilizationInfo - Keeps the empty, occupied and deleted counters in line with a slot state change
func (Q *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.SlotEmpty:
		Q.nEmpty--
	case model.SlotOccupied:
		Q.nOccupied--
	case model.SlotDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.SlotEmpty:
		Q.nEmpty++
	case model.SlotOccupied:
		Q.nOccupied++
	case model.SlotDeleted:
		Q.nDeleted++
	}
}

// growIfNeeded - Rehashes after an insert. The table doubles when the load factor is exceeded. When the last
// empty slot has been used up the table is rehashed as well, at the same capacity if there are tombstones to
// purge and at double capacity otherwise, so that every probe sequence keeps ending at an empty slot.
func (Q *OATable[K, V]) growIfNeeded() (err error) {
	capacity := Q.hashAlgorithm.GetTableSize()

	switch {
	case storage.ExceedsLoadFactor(Q.nOccupied, capacity, Q.loadFactor):
		err = Q.rehash(storage.GrownCapacity(capacity))
	case Q.nEmpty == 0 && Q.nDeleted > 0:
		err = Q.rehash(capacity)
	case Q.nEmpty == 0:
		err = Q.rehash(storage.GrownCapacity(capacity))
	}

	return
}

// rehash - Moves all occupied entries into a new slot array of the given capacity, placing each at the first
// empty slot of its new probe sequence. Tombstones are not carried over. The table is only changed once
// every entry has been placed.
func (Q *OATable[K, V]) rehash(capacity int64) (err error) {
	oldCapacity := Q.hashAlgorithm.GetTableSize()
	slots := make([]model.Slot[K, V], capacity)
	Q.hashAlgorithm.SetTableSize(capacity)

	for _, slot := range Q.slots {
		if slot.State != model.SlotOccupied {
			continue
		}

		hf1Value := Q.hashAlgorithm.HashFunc1(Q.canonical(slot.Entry.Key))
		placed := false
		for i := int64(0); i < capacity; i++ {
			probe := Q.hashAlgorithm.ProbeIteration(hf1Value, i)
			if slots[probe].State == model.SlotEmpty {
				slots[probe] = slot
				placed = true
				break
			}
		}

		if !placed {
			Q.hashAlgorithm.SetTableSize(oldCapacity)
			err = crt.NewMapFull(fmt.Sprintf("no empty slot while rehashing %d records into %d slots", Q.nOccupied, capacity))
			return
		}
	}

	Q.slots = slots
	Q.nEmpty = capacity - Q.nOccupied
	Q.nDeleted = 0

	return
}
