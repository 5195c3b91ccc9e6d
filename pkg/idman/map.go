package idman

import "github.com/FAU-CDI/idman/pkg/ident"

// Map represents the backend of a Manager and creates appropriate key-value stores.
//
// The forward store holds handles on the values owned by the manager; the
// reverse store keys on the value content itself.
type Map[T comparable] interface {
	Forward() (HashMap[ident.ID, *T], error)
	Reverse() (HashMap[T, ident.ID], error)
}

// HashMap is something that stores key-value pairs.
type HashMap[Key comparable, Value any] interface {
	// Grow resizes this hash map to the given size.
	// if the HashMap already has data in it, may be a no-op.
	Grow(size uint64) error

	// Close closes this store
	Close() error

	// Set sets the given key to the given value
	Set(key Key, value Value) error

	// Get retrieves the value for Key from the given storage.
	// The second value indicates if the value was found.
	Get(key Key) (Value, bool, error)

	// Has is like Get, but returns only the second value.
	Has(key Key) (bool, error)

	// Delete deletes the given key from this storage
	Delete(key Key) error

	// Iterate calls f for all entries in Storage.
	//
	// When any f returns a non-nil error, that error is returned immediately to the caller
	// and iteration stops.
	//
	// There is no guarantee on order.
	Iterate(f func(Key, Value) error) error

	// Count counts the number of elements in this store
	Count() (uint64, error)
}
