package hash

// djb2Seed - Initial accumulator value of the DJB2 string hash
const djb2Seed uint32 = 5381

// HashAlgorithm - Interface for the bucket selection algorithm used by the storage implementations.
// The table size is kept by the algorithm so that storage can grow it on rehash and get indexes that
// are always within the current table.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size, i.e. the number of buckets or slots addressed
	SetTableSize(tableSize int64)
	// GetTableSize - Returns the table size the hash functions are currently addressing
	GetTableSize() int64
	// HashFunc1 - Given the canonical text of a key it generates an index between 0 and table size - 1
	HashFunc1(key string) int64
	// ProbeIteration - Returns the index to visit in the given iteration of a probe sequence starting at hf1Value
	ProbeIteration(hf1Value, iteration int64) int64
}

// DJB2 - Returns the DJB2 hash of the given text, i.e. acc = acc*33 + c for each code point c starting
// from 5381, using uint32 wraparound arithmetic.
func DJB2(key string) uint32 {
	acc := djb2Seed
	for _, c := range key {
		acc = acc*33 + uint32(c)
	}

	return acc
}

// index - Reduces a DJB2 hash to an index in a table of the given size
func index(key string, tableSize int64) int64 {
	return int64(DJB2(key)) % tableSize
}
