package openaddressing

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique using linear probing.
// It uses one flat array of slots where each slot holds at most one entry. In case of a collision, it probes forward
// through the table, with wraparound, looking for the key or an empty slot. Deleted entries leave a tombstone behind
// so that probe sequences passing through the slot stay intact.
type OATable[K comparable, V any] struct {
	slots           []model.Slot[K, V]
	initialCapacity int64
	loadFactor      float64
	hashAlgorithm   hash.HashAlgorithm
	canonical       func(K) string
	nEmpty          int64
	nOccupied       int64
	nDeleted        int64
}

// NewOATable - Returns a pointer to a new instance of the Linear Probing implementation.
//   - crtConf is a model.CRTConf struct providing initial capacity and load factor
//   - canonical returns the text that a key is hashed over
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K comparable, V any](crtConf model.CRTConf, canonical func(K) string) (oaTable *OATable[K, V], err error) {
	err = storage.ValidateConf(crtConf.InitialCapacity, crtConf.LoadFactor)
	if err != nil {
		return
	}

	oaTable = &OATable[K, V]{
		slots:           make([]model.Slot[K, V], crtConf.InitialCapacity),
		initialCapacity: crtConf.InitialCapacity,
		loadFactor:      crtConf.LoadFactor,
		hashAlgorithm:   hash.NewLinearProbingHashAlgorithm(crtConf.InitialCapacity),
		canonical:       canonical,
		nEmpty:          crtConf.InitialCapacity,
		nOccupied:       0,
		nDeleted:        0,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		InitialCapacity:              Q.initialCapacity,
		Capacity:                     Q.hashAlgorithm.GetTableSize(),
		LoadFactor:                   Q.loadFactor,
		Records:                      Q.nOccupied,
		DeletedRecords:               Q.nDeleted,
	}

	return
}

// GetDistribution - Walks through all slots and returns the longest probe sequence needed to reach an entry,
// counted in visited slots.
//   - includeDistribution set to true also returns the number of entries having each slot as their home slot
func (Q *OATable[K, V]) GetDistribution(includeDistribution bool) (longest int64, distribution []int64) {
	capacity := Q.hashAlgorithm.GetTableSize()
	if includeDistribution {
		distribution = make([]int64, capacity)
	}

	for i, slot := range Q.slots {
		if slot.State != model.SlotOccupied {
			continue
		}

		home := Q.hashAlgorithm.HashFunc1(Q.canonical(slot.Entry.Key))
		n := (int64(i)-home+capacity)%capacity + 1
		if n > longest {
			longest = n
		}
		if includeDistribution {
			distribution[home]++
		}
	}

	return
}

// Get - Gets the value stored under key.
//
// It returns:
//   - value is the value of the matching entry if found, else the zero value of V
//   - found is true if a matching entry was found
func (Q *OATable[K, V]) Get(key K) (value V, found bool) {
	slotNo, found := Q.probingForGet(key)
	if !found {
		return
	}

	value = Q.slots[slotNo].Entry.Value

	return
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same key.
// After adding an entry the table is rehashed if the load factor is exceeded or if no empty slot is left.
//
// It returns:
//   - err is of type crt.MapFull if no slot could be found for a new key, which means the growth policy is broken
func (Q *OATable[K, V]) Set(key K, value V) (err error) {
	slotNo, err := Q.probingForSet(key)
	if err != nil {
		return
	}

	slot := &Q.slots[slotNo]
	if slot.State == model.SlotOccupied {
		slot.Entry.Value = value
		return
	}

	fromState := slot.State
	slot.State = model.SlotOccupied
	slot.Entry = model.Entry[K, V]{Key: key, Value: value}
	Q.updateUtilizationInfo(fromState, slot.State)

	err = Q.growIfNeeded()

	return
}

// Delete - Deletes the entry with the given key by turning its slot into a tombstone
//
// It returns:
//   - deleted is true if an entry was removed, false if no entry had the key
func (Q *OATable[K, V]) Delete(key K) (deleted bool) {
	slotNo, found := Q.probingForGet(key)
	if !found {
		return
	}

	slot := &Q.slots[slotNo]
	fromState := slot.State
	slot.State = model.SlotDeleted
	slot.Entry = model.Entry[K, V]{}
	Q.updateUtilizationInfo(fromState, slot.State)
	deleted = true

	return
}

// Size - Returns the number of entries in the table
func (Q *OATable[K, V]) Size() int64 {
	return Q.nOccupied
}

// Clear - Removes all entries and tombstones and returns the table to its initial capacity
func (Q *OATable[K, V]) Clear() {
	Q.slots = make([]model.Slot[K, V], Q.initialCapacity)
	Q.hashAlgorithm.SetTableSize(Q.initialCapacity)
	Q.nEmpty = Q.initialCapacity
	Q.nOccupied = 0
	Q.nDeleted = 0
}
