// Package ident provides ID.
package ident

//spellchecker:words bytes encoding binary
import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ID identifies a single value stored inside a manager.
//
// IDs are issued by starting from the zero ID and calling [Inc] once per
// issued value; the zero ID is the first ID issued and perfectly valid.
// Equality and use as a map key behave as expected.
type ID struct {
	// A big endian array of bytes, so that we can compare lexicographically.
	data [IDLen]byte
}

// IDLen is the size of an encoded ID struct in bytes.
const IDLen = 8

// Reset resets this id to the zero value.
func (id *ID) Reset() {
	id.data = [IDLen]byte{}
}

// Inc increments this ID, and then returns a copy of the new value.
// It is the equivalent of the "++" operator.
//
// When Inc() exceeds the maximum possible value for an ID, panics.
func (id *ID) Inc() (next ID) {
	for i := IDLen - 1; i >= 0; i-- {
		id.data[i]++
		if id.data[i] != 0 {
			return (*id)
		}
	}

	// NOTE: If this line is ever reached we should increase the size of the ID type.
	panic("ID.Inc: Overflow (not enough IDs)")
}

// Uint64 returns the numerical value of this id.
func (id ID) Uint64() uint64 {
	return binary.BigEndian.Uint64(id.data[:])
}

// LoadUint64 sets the value of this id as an integer.
//
// The ID is returned for convenience.
func (id *ID) LoadUint64(value uint64) *ID {
	binary.BigEndian.PutUint64(id.data[:], value)
	return id
}

// Compare compares this ID to another id, based on how many times Inc() has been called.
// The result will be 0 if id == other, -1 if id < other, and +1 if id > other.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id.data[:], other.data[:])
}

// String formats this id as a string.
// It is only intended for debugging, and should not be used for production code.
func (id ID) String() string {
	return fmt.Sprintf("ID(%d)", id.Uint64())
}
