package separatechaining

import (
	"github.com/gostonefire/memhashmap/internal/model"
)

// findInBucket - Returns the position of key within the given bucket, or -1 if not there
func (S *SCTable[K, V]) findInBucket(bucketNo int64, key K) int {
	for i, entry := range S.buckets[bucketNo] {
		if entry.Key == key {
			return i
		}
	}

	return -1
}

// removeFromBucket - Removes the entry at position i from the bucket in place.
// The last entry takes its place since order within a bucket carries no meaning.
func (S *SCTable[K, V]) removeFromBucket(bucketNo int64, i int) {
	bucket := S.buckets[bucketNo]
	last := len(bucket) - 1

	bucket[i] = bucket[last]
	bucket[last] = model.Entry[K, V]{} // Let go of references held by the value
	S.buckets[bucketNo] = bucket[:last]
}

// rehash - Moves all entries into a new set of buckets with the given capacity.
// Keys are unique already so entries are appended without looking for duplicates.
func (S *SCTable[K, V]) rehash(capacity int64) {
	buckets := make([][]model.Entry[K, V], capacity)
	S.hashAlgorithm.SetTableSize(capacity)

	for _, bucket := range S.buckets {
		for _, entry := range bucket {
			bucketNo := S.hashAlgorithm.HashFunc1(S.canonical(entry.Key))
			buckets[bucketNo] = append(buckets[bucketNo], entry)
		}
	}

	S.buckets = buckets
}
