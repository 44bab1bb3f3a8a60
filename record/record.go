package record

import (
	"time"
)

// TestRecord is the wire-level representation of a single record: the form a
// broker would carry. Key and value are already encoded; the fixture layer
// never exposes this type across its typed boundary.
type TestRecord struct {
	Topic     string
	Key       []byte
	Value     []byte
	Timestamp time.Time
}

// Copy returns a deep copy of the record so that buffered input can never be
// mutated through a retained slice.
func (r TestRecord) Copy() TestRecord {
	keyCopy := make([]byte, len(r.Key))
	copy(keyCopy, r.Key)

	valueCopy := make([]byte, len(r.Value))
	copy(valueCopy, r.Value)

	return TestRecord{
		Topic:     r.Topic,
		Key:       keyCopy,
		Value:     valueCopy,
		Timestamp: r.Timestamp,
	}
}

type Metadata struct {
	Timestamp time.Time
	Headers   map[string][]byte

	Topic     string
	Partition int32
	Offset    int64
}

// Record is the typed form processors work with.
type Record[K, V any] struct {
	Key   K
	Value V
	Metadata
}

// UntypedRecord flows through the topology internally, after the source has
// deserialised the wire bytes.
type UntypedRecord struct {
	Key   any
	Value any
	Metadata
}

func NewUntyped(key, value any, meta Metadata) *UntypedRecord {
	return &UntypedRecord{
		Key:      key,
		Value:    value,
		Metadata: meta,
	}
}

func (r *Record[K, V]) ToUntyped() *UntypedRecord {
	return &UntypedRecord{
		Key:      r.Key,
		Value:    r.Value,
		Metadata: r.Metadata,
	}
}
