//go:build unit

package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func identity(k string) string { return k }

func newTestTable(t *testing.T, initialCapacity int64, loadFactor float64) *OATable[string, int] {
	oaTable, err := NewOATable[string, int](model.CRTConf{InitialCapacity: initialCapacity, LoadFactor: loadFactor}, identity)
	require.NoError(t, err, "create new OATable instance")
	return oaTable
}

// assertPlacement - Checks that every entry is reachable from its home slot without passing an empty slot,
// that no key is stored twice and that the utilization counters add up
func assertPlacement(t *testing.T, oaTable *OATable[string, int]) {
	var nEmpty, nOccupied, nDeleted int64
	capacity := int64(len(oaTable.slots))
	seen := make(map[string]bool)

	for i, slot := range oaTable.slots {
		switch slot.State {
		case model.SlotEmpty:
			nEmpty++
		case model.SlotDeleted:
			nDeleted++
		case model.SlotOccupied:
			nOccupied++
			assert.Falsef(t, seen[slot.Entry.Key], "key %q stored once", slot.Entry.Key)
			seen[slot.Entry.Key] = true

			home := int64(hash.DJB2(slot.Entry.Key)) % capacity
			for p := home; p != int64(i); p = (p + 1) % capacity {
				assert.NotEqualf(t, model.SlotEmpty, oaTable.slots[p].State, "no empty slot between home and slot of %q", slot.Entry.Key)
			}
		}
	}

	assert.Equal(t, capacity, oaTable.hashAlgorithm.GetTableSize(), "slots follow table size")
	assert.Equal(t, nEmpty, oaTable.nEmpty, "empty counter")
	assert.Equal(t, nOccupied, oaTable.nOccupied, "occupied counter")
	assert.Equal(t, nDeleted, oaTable.nDeleted, "deleted counter")
}

// fillSlots - Puts the given keys straight into the slots, an empty key makes a tombstone
func fillSlots(oaTable *OATable[string, int], keys []string) {
	oaTable.nEmpty, oaTable.nOccupied, oaTable.nDeleted = 0, 0, 0
	for i, k := range keys {
		if k == "" {
			oaTable.slots[i] = model.Slot[string, int]{State: model.SlotDeleted}
			oaTable.nDeleted++
			continue
		}
		oaTable.slots[i] = model.Slot[string, int]{State: model.SlotOccupied, Entry: model.Entry[string, int]{Key: k, Value: i}}
		oaTable.nOccupied++
	}
}

func TestNewOATable(t *testing.T) {
	t.Run("creates a new OATable instance", func(t *testing.T) {
		// Execute
		oaTable, err := NewOATable[string, int](model.CRTConf{InitialCapacity: 10, LoadFactor: 0.75}, identity)

		// Check
		assert.NoError(t, err, "create new OATable instance")
		assert.Len(t, oaTable.slots, 10, "number of slots equals initial capacity")
		assert.Equal(t, int64(10), oaTable.nEmpty, "all slots empty")
		assert.Zero(t, oaTable.Size(), "no records")
		assertPlacement(t, oaTable)
	})

	t.Run("fails on invalid configuration", func(t *testing.T) {
		// Execute
		_, errCapacity := NewOATable[string, int](model.CRTConf{InitialCapacity: -1, LoadFactor: 0.75}, identity)
		_, errLoadFactor := NewOATable[string, int](model.CRTConf{InitialCapacity: 4, LoadFactor: 0}, identity)

		// Check
		assert.Error(t, errCapacity, "negative capacity rejected")
		assert.Error(t, errLoadFactor, "zero load factor rejected")
	})
}

func TestOATable_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 8, 0.75)
		require.NoError(t, oaTable.Set("a", 1))
		require.NoError(t, oaTable.Set("b", 2))
		require.True(t, oaTable.Delete("a"))

		// Execute
		sp := oaTable.GetStorageParameters()

		// Check
		assert.Equal(t, crt.LinearProbing, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(8), sp.InitialCapacity, "initial capacity preserved")
		assert.Equal(t, int64(8), sp.Capacity, "capacity")
		assert.Equal(t, 0.75, sp.LoadFactor, "load factor preserved")
		assert.Equal(t, int64(1), sp.Records, "one record")
		assert.Equal(t, int64(1), sp.DeletedRecords, "one tombstone")
	})
}

func TestOATable_Set(t *testing.T) {
	t.Run("sets and gets a record", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 16, 0.75)

		// Execute
		err := oaTable.Set("keyA", 10)

		// Check
		assert.NoError(t, err, "sets record")
		value, found := oaTable.Get("keyA")
		assert.True(t, found, "record found")
		assert.Equal(t, 10, value, "value preserved")
		assert.Equal(t, int64(1), oaTable.Size(), "one record")
		assertPlacement(t, oaTable)
	})

	t.Run("updates existing record without duplicating it", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 16, 0.75)
		require.NoError(t, oaTable.Set("keyA", 10))
		require.NoError(t, oaTable.Set("keyB", 20))

		// Execute
		err := oaTable.Set("keyA", 100)

		// Check
		assert.NoError(t, err, "updates record")
		value, _ := oaTable.Get("keyA")
		assert.Equal(t, 100, value, "value updated")
		assert.Equal(t, int64(2), oaTable.Size(), "size unchanged by update")
		assertPlacement(t, oaTable)
	})

	t.Run("probes forward with wraparound on collision", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)

		// Execute
		require.NoError(t, oaTable.Set("keyA", 10))
		require.NoError(t, oaTable.Set("apple", 50))

		// Check
		assert.Equal(t, "keyA", oaTable.slots[3].Entry.Key, "first key in its home slot")
		assert.Equal(t, "apple", oaTable.slots[0].Entry.Key, "second key wrapped to slot 0")
		assertPlacement(t, oaTable)
	})

	t.Run("grows strictly after exceeding load factor", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)

		// Execute & Check
		require.NoError(t, oaTable.Set("1", 10))
		require.NoError(t, oaTable.Set("2", 20))
		assert.Equal(t, int64(4), oaTable.hashAlgorithm.GetTableSize(), "load 0.5 does not exceed 0.5")

		require.NoError(t, oaTable.Set("3", 30))
		assert.Equal(t, int64(8), oaTable.hashAlgorithm.GetTableSize(), "load 0.75 exceeds 0.5")

		assert.Equal(t, int64(3), oaTable.Size(), "three records")
		for i, k := range []string{"1", "2", "3"} {
			value, found := oaTable.Get(k)
			assert.Truef(t, found, "record %q found after growth", k)
			assert.Equalf(t, (i+1)*10, value, "value of %q preserved", k)
		}
		assertPlacement(t, oaTable)
	})

	t.Run("keeps all records through repeated growth and deletes", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 1, 0.75)

		// Execute
		for i := 0; i < 1000; i++ {
			require.NoErrorf(t, oaTable.Set(fmt.Sprintf("key-%d", i), i), "sets record #%d", i)
		}
		for i := 0; i < 1000; i += 3 {
			require.Truef(t, oaTable.Delete(fmt.Sprintf("key-%d", i)), "deletes record #%d", i)
		}

		// Check
		assert.Equal(t, int64(666), oaTable.Size(), "remaining records counted")
		for i := 0; i < 1000; i++ {
			value, found := oaTable.Get(fmt.Sprintf("key-%d", i))
			if i%3 == 0 {
				assert.Falsef(t, found, "record #%d deleted", i)
				continue
			}
			assert.Truef(t, found, "record #%d found", i)
			assert.Equalf(t, i, value, "value of record #%d preserved", i)
		}
		assertPlacement(t, oaTable)
	})

	t.Run("reuses first tombstone without duplicating a key further along", func(t *testing.T) {
		// Prepare, all keys have home slot 7 at capacity 8
		oaTable := newTestTable(t, 8, 1)
		require.NoError(t, oaTable.Set("keyA", 1)) // slot 7
		require.NoError(t, oaTable.Set("apple", 2)) // slot 0
		require.NoError(t, oaTable.Set("b", 3))     // slot 1
		require.True(t, oaTable.Delete("keyA"), "tombstone in slot 7")

		// Execute
		errUpdate := oaTable.Set("apple", 99)
		errAdd := oaTable.Set("2", 5)

		// Check
		assert.NoError(t, errUpdate, "updates record past tombstone")
		assert.NoError(t, errAdd, "adds record")
		assert.Equal(t, "apple", oaTable.slots[0].Entry.Key, "updated key stays in place")
		assert.Equal(t, 99, oaTable.slots[0].Entry.Value, "value updated in place")
		assert.Equal(t, model.SlotOccupied, oaTable.slots[7].State, "tombstone reused")
		assert.Equal(t, "2", oaTable.slots[7].Entry.Key, "new key in first tombstone")
		assert.Equal(t, int64(3), oaTable.Size(), "three records")
		assertPlacement(t, oaTable)
	})

	t.Run("compacts tombstones when the last empty slot is used", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 1)
		require.NoError(t, oaTable.Set("a", 1)) // slot 2
		require.NoError(t, oaTable.Set("b", 2)) // slot 3
		require.NoError(t, oaTable.Set("c", 3)) // slot 0
		require.True(t, oaTable.Delete("b"), "tombstone in slot 3")

		// Execute
		err := oaTable.Set("x", 4) // slot 1, the last empty one

		// Check
		assert.NoError(t, err, "adds record")
		assert.Equal(t, int64(4), oaTable.hashAlgorithm.GetTableSize(), "capacity unchanged")
		assert.Zero(t, oaTable.nDeleted, "tombstones purged")
		assert.Equal(t, int64(1), oaTable.nEmpty, "one empty slot again")
		for _, k := range []string{"a", "c", "x"} {
			_, found := oaTable.Get(k)
			assert.Truef(t, found, "record %q found after compaction", k)
		}
		assertPlacement(t, oaTable)
	})

	t.Run("grows when full at load factor 1", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 1)

		// Execute
		for i, k := range []string{"a", "b", "c", "x"} {
			require.NoError(t, oaTable.Set(k, i))
		}

		// Check
		assert.Equal(t, int64(8), oaTable.hashAlgorithm.GetTableSize(), "capacity doubled")
		_, found := oaTable.Get("new")
		assert.False(t, found, "absent key lookup terminates")
		assert.Equal(t, int64(4), oaTable.Size(), "four records")
		assertPlacement(t, oaTable)
	})

	t.Run("takes a tombstone after a full cycle", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 1)
		fillSlots(oaTable, []string{"c", "x", "", "b"})

		// Execute
		err := oaTable.Set("new", 7) // home slot 3

		// Check
		assert.NoError(t, err, "adds record into tombstone")
		assert.Equal(t, int64(8), oaTable.hashAlgorithm.GetTableSize(), "full table doubled")
		value, found := oaTable.Get("new")
		assert.True(t, found, "new record found")
		assert.Equal(t, 7, value, "new value preserved")
		assertPlacement(t, oaTable)
	})

	t.Run("reports map full when no slot is left", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 1)
		fillSlots(oaTable, []string{"c", "x", "a", "b"})

		// Execute
		errAdd := oaTable.Set("new", 1)
		errUpdate := oaTable.Set("a", 9)

		// Check
		assert.Error(t, errAdd, "no room for new key")
		assert.True(t, errors.As(errAdd, &crt.MapFull{}), "error of type MapFull")
		assert.NoError(t, errUpdate, "existing key still updated")
		value, _ := oaTable.Get("a")
		assert.Equal(t, 9, value, "value updated")
		assert.Equal(t, int64(4), oaTable.Size(), "size unchanged")
	})
}

func TestOATable_Get(t *testing.T) {
	t.Run("returns not found for absent key", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)
		require.NoError(t, oaTable.Set("a", 1))

		// Execute
		value, found := oaTable.Get("c")

		// Check
		assert.False(t, found, "record not found")
		assert.Zero(t, value, "zero value returned")
	})

	t.Run("terminates on a table of tombstones", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 1)
		fillSlots(oaTable, []string{"", "", "", ""})

		// Execute
		_, found := oaTable.Get("a")
		deleted := oaTable.Delete("a")

		// Check
		assert.False(t, found, "record not found after full cycle")
		assert.False(t, deleted, "nothing deleted after full cycle")
	})
}

func TestOATable_Delete(t *testing.T) {
	t.Run("deletes existing and reports absent", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)
		require.NoError(t, oaTable.Set("a", 1))
		require.NoError(t, oaTable.Set("b", 2))

		// Execute
		deletedA := oaTable.Delete("a")
		deletedC := oaTable.Delete("c")

		// Check
		assert.True(t, deletedA, "existing record deleted")
		assert.False(t, deletedC, "absent record not deleted")
		assert.Equal(t, int64(1), oaTable.Size(), "size decreased by exactly one")
		_, found := oaTable.Get("a")
		assert.False(t, found, "deleted record gone")
		assert.Equal(t, model.SlotDeleted, oaTable.slots[2].State, "tombstone left behind")
		assertPlacement(t, oaTable)
	})

	t.Run("collisions survive deletion through tombstone", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)
		require.NoError(t, oaTable.Set("keyA", 10)) // slot 3
		require.NoError(t, oaTable.Set("apple", 50)) // slot 0

		// Execute
		deleted := oaTable.Delete("keyA")

		// Check
		assert.True(t, deleted, "first record deleted")
		value, found := oaTable.Get("apple")
		assert.True(t, found, "colliding record found past tombstone")
		assert.Equal(t, 50, value, "colliding value preserved")
		assert.True(t, oaTable.Delete("apple"), "colliding record deletable past tombstone")
		assertPlacement(t, oaTable)
	})
}

func TestOATable_Clear(t *testing.T) {
	t.Run("clears and resets capacity", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 4, 0.5)
		for _, k := range []string{"x", "y", "z"} {
			require.NoError(t, oaTable.Set(k, 1))
		}
		require.True(t, oaTable.Delete("y"))
		require.Equal(t, int64(8), oaTable.hashAlgorithm.GetTableSize(), "table has grown")

		// Execute
		oaTable.Clear()

		// Check
		assert.Zero(t, oaTable.Size(), "no records")
		assert.Equal(t, int64(4), oaTable.hashAlgorithm.GetTableSize(), "capacity back to initial")
		_, found := oaTable.Get("x")
		assert.False(t, found, "cleared record gone")
		assertPlacement(t, oaTable)

		require.NoError(t, oaTable.Set("x", 2))
		value, found := oaTable.Get("x")
		assert.True(t, found, "table usable after clear")
		assert.Equal(t, 2, value, "value after clear")
	})
}

func TestOATable_GetDistribution(t *testing.T) {
	t.Run("returns probe lengths", func(t *testing.T) {
		// Prepare
		oaTable := newTestTable(t, 8, 1)
		require.NoError(t, oaTable.Set("keyA", 1)) // home 7, slot 7
		require.NoError(t, oaTable.Set("apple", 2)) // home 7, slot 0
		require.NoError(t, oaTable.Set("b", 3))     // home 7, slot 1
		require.NoError(t, oaTable.Set("c", 4))     // home 0, slot 2

		// Execute
		longest, distribution := oaTable.GetDistribution(true)
		_, noDistribution := oaTable.GetDistribution(false)

		// Check
		assert.Equal(t, int64(3), longest, "longest probe sequence")
		assert.Equal(t, []int64{1, 0, 0, 0, 0, 0, 0, 3}, distribution, "records per home slot")
		assert.Nil(t, noDistribution, "no distribution when not asked for")
	})
}
