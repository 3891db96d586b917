// Package memhashmap implements an in-memory hash map offering two collision resolution techniques,
// separate chaining and linear probing, behind the same API.
//
// A HashMap is not safe for concurrent use, callers sharing one between goroutines must serialize all access.
package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/internal/storage/separatechaining"
	"github.com/gostonefire/memhashmap/key"
)

// Storage - Interface for any collision resolution technique implementation
type Storage[K comparable, V any] interface {
	Get(key K) (value V, found bool)
	Set(key K, value V) (err error)
	Delete(key K) (deleted bool)
	Size() int64
	Clear()
	GetStorageParameters() (params model.StorageParameters)
	GetDistribution(includeDistribution bool) (longest int64, distribution []int64)
}

// Conf - Configuration for a new hash map, zero values are replaced by defaults.
//   - InitialCapacity is the number of buckets (or slots) to start with and to return to on Clear, default 16
//   - LoadFactor is the ratio of records to capacity that once exceeded by an insert doubles the capacity, default 0.75
//   - CollisionMethod is either "chaining" or "linear", default "chaining"
type Conf struct {
	InitialCapacity int64
	LoadFactor      float64
	CollisionMethod string
}

// HashMapInfo - Information structure containing the configuration the hash map was created with
//   - CollisionMethod is the name of the collision resolution technique in use
//   - InitialCapacity is the capacity the hash map starts with and returns to on Clear
//   - LoadFactor is the growth threshold
type HashMapInfo struct {
	CollisionMethod string
	InitialCapacity int64
	LoadFactor      float64
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the current number of buckets (or slots)
//   - DeletedRecords is the number of tombstones, only ever non-zero for linear probing
//   - Load is Records divided by Capacity
//   - LongestRun is the longest chain for separate chaining, or the longest probe sequence for linear probing
//   - BucketDistribution is the number of records having each bucket as home bucket
type HashMapStat struct {
	Records            int64
	Capacity           int64
	DeletedRecords     int64
	Load               float64
	LongestRun         int64
	BucketDistribution []int64
}

// HashMap - The main implementation struct
type HashMap[K key.Key, V any] struct {
	storage Storage[K, V]
	info    HashMapInfo
}

// NewHashMap - Returns a new, empty hash map.
//   - conf is a Conf struct, any zero valued field is given its default
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing the configuration in effect
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K key.Key, V any](conf Conf) (hashMap *HashMap[K, V], hashMapInfo HashMapInfo, err error) {
	conf = applyDefaults(conf)

	technique, err := crt.Parse(conf.CollisionMethod)
	if err != nil {
		return
	}
	name, err := crt.Name(technique)
	if err != nil {
		return
	}

	crtConf := model.CRTConf{
		InitialCapacity: conf.InitialCapacity,
		LoadFactor:      conf.LoadFactor,
	}

	var s Storage[K, V]
	switch technique {
	case crt.SeparateChaining:
		s, err = separatechaining.NewSCTable[K, V](crtConf, canonical[K])
	case crt.LinearProbing:
		s, err = openaddressing.NewOATable[K, V](crtConf, canonical[K])
	}
	if err != nil {
		err = fmt.Errorf("error while creating %s hash map: %w", name, err)
		return
	}

	hashMapInfo = HashMapInfo{
		CollisionMethod: name,
		InitialCapacity: conf.InitialCapacity,
		LoadFactor:      conf.LoadFactor,
	}

	hashMap = &HashMap[K, V]{
		storage: s,
		info:    hashMapInfo,
	}

	return
}

// applyDefaults - Replaces zero valued capacity and load factor with defaults, an empty collision method is
// resolved to its default by crt.Parse
func applyDefaults(conf Conf) Conf {
	if conf.InitialCapacity == 0 {
		conf.InitialCapacity = storage.DefaultInitialCapacity
	}
	if conf.LoadFactor == 0 {
		conf.LoadFactor = storage.DefaultLoadFactor
	}

	return conf
}

func canonical[K key.Key](k K) string {
	return k.String()
}
