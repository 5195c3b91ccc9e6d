//spellchecker:words idman
package idman

//spellchecker:words errors math runtime
import (
	"errors"
	"math"
	"runtime"
)

// Memory holds key-value pairs in memory.
type Memory[Key comparable, Value any] struct {
	mp map[Key]Value
}

// MakeMemory makes a new memory instance.
func MakeMemory[Key comparable, Value any](size int) Memory[Key, Value] {
	return Memory[Key, Value]{
		mp: make(map[Key]Value, size),
	}
}

// IsNil reports if this memory has not been initialized.
func (ims Memory[Key, Value]) IsNil() bool {
	return ims.mp == nil
}

var errIntTooBig = errors.New("new size does not fit into int")

func (ims *Memory[Key, Value]) Grow(size uint64) error {
	if size >= uint64(math.MaxInt) {
		return errIntTooBig
	}

	// no point in trying to resize an already existing map!
	if len(ims.mp) != 0 {
		return nil
	}

	// create the fresh map to be big enough!
	ims.mp = make(map[Key]Value, size)
	return nil
}

var errMemoryUninitialized = errors.New("memory not initialized")

func (ims Memory[Key, Value]) Set(key Key, value Value) error {
	if ims.mp == nil {
		return errMemoryUninitialized
	}

	ims.mp[key] = value
	return nil
}

// Get returns the given value if it exists.
func (ims Memory[Key, Value]) Get(key Key) (Value, bool, error) {
	value, ok := ims.mp[key]
	return value, ok, nil
}

func (ims Memory[Key, Value]) Has(key Key) (bool, error) {
	_, ok := ims.mp[key]
	return ok, nil
}

// Delete deletes the given key from this storage.
func (ims Memory[Key, Value]) Delete(key Key) error {
	delete(ims.mp, key)
	return nil
}

// Iterate calls f for all entries in this storage.
// there is no guarantee on order.
func (ims Memory[Key, Value]) Iterate(f func(Key, Value) error) error {
	for key, value := range ims.mp {
		if err := f(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (ims Memory[Key, Value]) Count() (uint64, error) {
	return uint64(len(ims.mp)), nil
}

// Close closes this Memory, deleting all values.
func (ims *Memory[Key, Value]) Close() error {
	ims.mp = nil
	runtime.GC() // re-claim all the memory if needed
	return nil
}
