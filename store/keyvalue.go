package store

var _ KeyValueStore = (*inMemoryKeyValueStore)(nil)

type inMemoryKeyValueStore struct {
	name    string
	entries map[any]any
}

func NewKeyValue(name string) KeyValueStore {
	return &inMemoryKeyValueStore{
		name:    name,
		entries: make(map[any]any),
	}
}

// NewKeyValueSupplier returns a Supplier for topology registration.
func NewKeyValueSupplier(name string) Supplier {
	return func() StateStore {
		return NewKeyValue(name)
	}
}

func (s *inMemoryKeyValueStore) Name() string {
	return s.name
}

func (s *inMemoryKeyValueStore) Get(key any) (any, bool) {
	value, ok := s.entries[key]
	return value, ok
}

func (s *inMemoryKeyValueStore) Put(key, value any) {
	s.entries[key] = value
}

func (s *inMemoryKeyValueStore) Delete(key any) {
	delete(s.entries, key)
}

func (s *inMemoryKeyValueStore) Len() int {
	return len(s.entries)
}

// All snapshots the store at call time; later Puts do not show up in the
// returned iterator.
func (s *inMemoryKeyValueStore) All() Iterator {
	entries := make([]kvEntry, 0, len(s.entries))
	for k, v := range s.entries {
		entries = append(entries, kvEntry{key: k, value: v})
	}
	return &kvIterator{entries: entries, pos: -1}
}

type kvEntry struct {
	key   any
	value any
}

type kvIterator struct {
	entries []kvEntry
	pos     int
	closed  bool
}

func (it *kvIterator) Next() bool {
	if it.closed || it.pos+1 >= len(it.entries) {
		return false
	}
	it.pos++
	return true
}

func (it *kvIterator) Key() any {
	return it.entries[it.pos].key
}

func (it *kvIterator) Value() any {
	return it.entries[it.pos].value
}

func (it *kvIterator) Close() error {
	it.closed = true
	it.entries = nil
	return nil
}
