package hash

// SeparateChainingHashAlgorithm - Bucket selection for the Separate Chaining Collision Resolution Technique.
// It applies bucket = djb2(key) % tableSize, no rounding of the table size is done.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets to address, it must be at least 1
func (O *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	O.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm) HashFunc1(key string) int64 {
	return index(key, O.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (O *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining, a bucket is never probed beyond, returns hf1Value
func (O *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
