package separatechaining

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket holds a growable list of entries, all entries in a bucket hash to that bucket's number.
// A key is only ever looked for in its own bucket.
type SCTable[K comparable, V any] struct {
	buckets         [][]model.Entry[K, V]
	initialCapacity int64
	loadFactor      float64
	records         int64
	hashAlgorithm   hash.HashAlgorithm
	canonical       func(K) string
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing initial capacity and load factor
//   - canonical returns the text that a key is hashed over
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[K comparable, V any](crtConf model.CRTConf, canonical func(K) string) (scTable *SCTable[K, V], err error) {
	err = storage.ValidateConf(crtConf.InitialCapacity, crtConf.LoadFactor)
	if err != nil {
		return
	}

	scTable = &SCTable[K, V]{
		buckets:         make([][]model.Entry[K, V], crtConf.InitialCapacity),
		initialCapacity: crtConf.InitialCapacity,
		loadFactor:      crtConf.LoadFactor,
		hashAlgorithm:   hash.NewSeparateChainingHashAlgorithm(crtConf.InitialCapacity),
		canonical:       canonical,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		InitialCapacity:              S.initialCapacity,
		Capacity:                     S.hashAlgorithm.GetTableSize(),
		LoadFactor:                   S.loadFactor,
		Records:                      S.records,
		DeletedRecords:               0,
	}

	return
}

// GetDistribution - Walks through all buckets and returns the length of the longest chain.
//   - includeDistribution set to true also returns the number of entries in each bucket
func (S *SCTable[K, V]) GetDistribution(includeDistribution bool) (longest int64, distribution []int64) {
	if includeDistribution {
		distribution = make([]int64, len(S.buckets))
	}

	for i, bucket := range S.buckets {
		n := int64(len(bucket))
		if n > longest {
			longest = n
		}
		if includeDistribution {
			distribution[i] = n
		}
	}

	return
}

// Get - Gets the value stored under key.
//
// It returns:
//   - value is the value of the matching entry if found, else the zero value of V
//   - found is true if a matching entry was found
func (S *SCTable[K, V]) Get(key K) (value V, found bool) {
	bucketNo := S.hashAlgorithm.HashFunc1(S.canonical(key))

	i := S.findInBucket(bucketNo, key)
	if i < 0 {
		return
	}

	value = S.buckets[bucketNo][i].Value
	found = true

	return
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same key.
// If adding the entry makes the load exceed the load factor, the table is rehashed into twice the capacity
// before returning. Separate chaining never runs out of room so err is always nil, it is there to fulfill
// the storage interface.
func (S *SCTable[K, V]) Set(key K, value V) (err error) {
	bucketNo := S.hashAlgorithm.HashFunc1(S.canonical(key))

	i := S.findInBucket(bucketNo, key)
	if i >= 0 {
		S.buckets[bucketNo][i].Value = value
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Entry[K, V]{Key: key, Value: value})
	S.records++

	capacity := S.hashAlgorithm.GetTableSize()
	if storage.ExceedsLoadFactor(S.records, capacity, S.loadFactor) {
		S.rehash(storage.GrownCapacity(capacity))
	}

	return
}

// Delete - Removes the entry with the given key from its bucket.
//
// It returns:
//   - deleted is true if an entry was removed, false if no entry had the key
func (S *SCTable[K, V]) Delete(key K) (deleted bool) {
	bucketNo := S.hashAlgorithm.HashFunc1(S.canonical(key))

	i := S.findInBucket(bucketNo, key)
	if i < 0 {
		return
	}

	S.removeFromBucket(bucketNo, i)
	S.records--
	deleted = true

	return
}

// Size - Returns the number of entries in the table
func (S *SCTable[K, V]) Size() int64 {
	return S.records
}

// Clear - Removes all entries and returns the table to its initial capacity
func (S *SCTable[K, V]) Clear() {
	S.buckets = make([][]model.Entry[K, V], S.initialCapacity)
	S.hashAlgorithm.SetTableSize(S.initialCapacity)
	S.records = 0
}
