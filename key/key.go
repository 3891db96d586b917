// Package key holds the key types accepted by the hash map.
//
// A key must be comparable and able to produce its canonical text form through String, which is what the
// hash function runs over. String keys are their own canonical form, integer keys use their decimal digits.
package key

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Key - Constraint for hash map keys
type Key interface {
	comparable
	String() string
}

// String - A text key
type String string

// String - Returns the key as is
func (S String) String() string {
	return string(S)
}

// Integer - An integer key of any integer type
type Integer[T constraints.Integer] struct {
	v T
}

// Int - Returns an Integer key holding v
func Int[T constraints.Integer](v T) Integer[T] {
	return Integer[T]{v: v}
}

// Value - Returns the integer held by the key
func (I Integer[T]) Value() T {
	return I.v
}

// String - Returns the decimal representation of the key
func (I Integer[T]) String() string {
	if I.v < 0 {
		return strconv.FormatInt(int64(I.v), 10)
	}
	return strconv.FormatUint(uint64(I.v), 10)
}
