// Package store provides the in-memory state stores a test driver
// materialises for a topology run. Stores are created fresh per driver and
// are not safe for concurrent use; the driver is single-threaded.
package store

// StateStore is the base interface for every store a topology can register.
type StateStore interface {
	Name() string
}

// Supplier creates a fresh store instance. The driver invokes it once per
// run so state never leaks across runs.
type Supplier func() StateStore

// Iterator walks a point-in-time snapshot of a key-value store. Callers must
// Close it when done, on every exit path.
type Iterator interface {
	Next() bool
	Key() any
	Value() any
	Close() error
}

// WindowIterator walks window entries for a single key in ascending
// window-start order. Same Close discipline as Iterator.
type WindowIterator interface {
	Next() bool
	WindowStart() int64
	Value() any
	Close() error
}

// KeyValueStore is a plain keyed store with last-write-wins semantics.
type KeyValueStore interface {
	StateStore
	Get(key any) (any, bool)
	Put(key, value any)
	Delete(key any)
	Len() int
	All() Iterator
}

// WindowStore indexes values by (key, window start). Window starts are
// timestamps in milliseconds.
type WindowStore interface {
	StateStore
	Put(key any, windowStart int64, value any)
	Fetch(key any, timeFrom, timeTo int64) WindowIterator
}
