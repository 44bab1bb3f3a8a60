package store

import (
	"github.com/google/btree"
)

var _ WindowStore = (*inMemoryWindowStore)(nil)

type windowEntry struct {
	start int64
	value any
}

type inMemoryWindowStore struct {
	name string
	// one ordered index per key, so Fetch is a range walk over window starts
	keys map[any]*btree.BTreeG[windowEntry]
}

func NewWindow(name string) WindowStore {
	return &inMemoryWindowStore{
		name: name,
		keys: make(map[any]*btree.BTreeG[windowEntry]),
	}
}

// NewWindowSupplier returns a Supplier for topology registration.
func NewWindowSupplier(name string) Supplier {
	return func() StateStore {
		return NewWindow(name)
	}
}

func (s *inMemoryWindowStore) Name() string {
	return s.name
}

func (s *inMemoryWindowStore) Put(key any, windowStart int64, value any) {
	index, ok := s.keys[key]
	if !ok {
		index = btree.NewG(
			2, func(a, b windowEntry) bool {
				return a.start < b.start
			},
		)
		s.keys[key] = index
	}
	index.ReplaceOrInsert(windowEntry{start: windowStart, value: value})
}

// Fetch returns entries for key with timeFrom <= windowStart <= timeTo,
// ascending by window start. Both bounds are inclusive.
func (s *inMemoryWindowStore) Fetch(key any, timeFrom, timeTo int64) WindowIterator {
	index, ok := s.keys[key]
	if !ok || timeFrom > timeTo {
		return &windowIterator{pos: -1}
	}

	var entries []windowEntry
	index.AscendGreaterOrEqual(
		windowEntry{start: timeFrom}, func(e windowEntry) bool {
			if e.start > timeTo {
				return false
			}
			entries = append(entries, e)
			return true
		},
	)

	return &windowIterator{entries: entries, pos: -1}
}

type windowIterator struct {
	entries []windowEntry
	pos     int
	closed  bool
}

func (it *windowIterator) Next() bool {
	if it.closed || it.pos+1 >= len(it.entries) {
		return false
	}
	it.pos++
	return true
}

func (it *windowIterator) WindowStart() int64 {
	return it.entries[it.pos].start
}

func (it *windowIterator) Value() any {
	return it.entries[it.pos].value
}

func (it *windowIterator) Close() error {
	it.closed = true
	it.entries = nil
	return nil
}
