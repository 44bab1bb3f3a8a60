package record

import (
	"time"
)

// KeyValue is one typed input or output tuple at the fixture boundary.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// TimedKeyValue is a KeyValue with an explicit record timestamp.
type TimedKeyValue[K, V any] struct {
	Key       K
	Value     V
	Timestamp time.Time
}

func Pair[K, V any](key K, value V) KeyValue[K, V] {
	return KeyValue[K, V]{Key: key, Value: value}
}

func PairAt[K, V any](key K, value V, ts time.Time) TimedKeyValue[K, V] {
	return TimedKeyValue[K, V]{Key: key, Value: value, Timestamp: ts}
}
