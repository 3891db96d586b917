package model

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (tombstone)
const SlotDeleted uint8 = 2

// Entry - Represents one key/value pair stored in the hash map
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Slot - Represents one slot in an open addressing table, Entry is only valid when State is SlotOccupied
type Slot[K comparable, V any] struct {
	State uint8
	Entry Entry[K, V]
}

// StorageParameters - Represents parameters and counters specific for any implementation of storage
//   - CollisionResolutionTechnique is one of the crt constants
//   - InitialCapacity is the capacity the table was created with and returns to on clear
//   - Capacity is the current number of buckets or slots
//   - LoadFactor is the growth threshold
//   - Records is the number of live entries
//   - DeletedRecords is the number of tombstones, always 0 for separate chaining
type StorageParameters struct {
	CollisionResolutionTechnique int
	InitialCapacity              int64
	Capacity                     int64
	LoadFactor                   float64
	Records                      int64
	DeletedRecords               int64
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// storage creation and growth.
//   - InitialCapacity is the number of buckets or slots to start with, must be at least 1
//   - LoadFactor is the ratio of records to capacity that once exceeded triggers growth
type CRTConf struct {
	InitialCapacity int64
	LoadFactor      float64
}
