package storage

import "fmt"

// DefaultInitialCapacity - Number of buckets or slots used when no initial capacity is configured
const DefaultInitialCapacity int64 = 16

// DefaultLoadFactor - Load factor used when none is configured
const DefaultLoadFactor float64 = 0.75

// GrowthFactor - Factor by which the capacity is multiplied when the load factor is exceeded
const GrowthFactor int64 = 2

// ValidateConf - Checks initial capacity and load factor, returning an error if either is out of range
func ValidateConf(initialCapacity int64, loadFactor float64) (err error) {
	if initialCapacity <= 0 {
		err = fmt.Errorf("initial capacity must be a positive value higher than 0 (zero), got %d", initialCapacity)
		return
	}

	// Written this way to also catch NaN
	if !(loadFactor > 0 && loadFactor <= 1) {
		err = fmt.Errorf("load factor must be higher than 0 (zero) and at most 1, got %v", loadFactor)
		return
	}

	return
}

// ExceedsLoadFactor - Returns true if records / capacity is strictly above the load factor
func ExceedsLoadFactor(records, capacity int64, loadFactor float64) bool {
	return float64(records)/float64(capacity) > loadFactor
}

// GrownCapacity - Returns the capacity to rehash into once the load factor has been exceeded
func GrownCapacity(capacity int64) int64 {
	return capacity * GrowthFactor
}
