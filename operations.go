package memhashmap

import "fmt"

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
// The hash map grows, if needed, before Set returns. It returns the hash map itself so calls can be chained.
//
// Set panics if the linear probing table finds no slot for a new key. That can only happen if the growth
// policy is broken, it is not a condition callers are expected to handle.
func (H *HashMap[K, V]) Set(key K, value V) *HashMap[K, V] {
	if err := H.storage.Set(key, value); err != nil {
		panic(fmt.Errorf("internal invariant violated while setting key %q: %w", key.String(), err))
	}

	return H
}

// Get - Gets the value stored under key.
//
// It returns:
//   - value is the value of the matching record if found, else the zero value of V
//   - found is true if a record with the key exists
func (H *HashMap[K, V]) Get(key K) (value V, found bool) {
	return H.storage.Get(key)
}

// Has - Returns true if a record with the key exists
func (H *HashMap[K, V]) Has(key K) bool {
	_, found := H.storage.Get(key)
	return found
}

// Delete - Removes the record with the given key, returning true if there was one
func (H *HashMap[K, V]) Delete(key K) bool {
	return H.storage.Delete(key)
}

// Size - Returns the number of records stored
func (H *HashMap[K, V]) Size() int64 {
	return H.storage.Size()
}

// Clear - Removes all records and returns the hash map to its initial capacity
func (H *HashMap[K, V]) Clear() {
	H.storage.Clear()
}

// Info - Returns the configuration the hash map was created with
func (H *HashMap[K, V]) Info() HashMapInfo {
	return H.info
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per home bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	sp := H.storage.GetStorageParameters()
	longest, distribution := H.storage.GetDistribution(includeDistribution)

	hashMapStat = HashMapStat{
		Records:            sp.Records,
		Capacity:           sp.Capacity,
		DeletedRecords:     sp.DeletedRecords,
		Load:               float64(sp.Records) / float64(sp.Capacity),
		LongestRun:         longest,
		BucketDistribution: distribution,
	}

	return
}
