package serde

import (
	"encoding/binary"
	"fmt"
)

type int64Serde struct{}

// Int64 returns a Serde encoding int64 as 8 big-endian bytes, matching the
// broker-ecosystem convention for long values.
func Int64() Serde[int64] {
	return int64Serde{}
}

func (s int64Serde) Serialise(topic string, value int64) ([]byte, error) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, uint64(value))
	return data, nil
}

func (s int64Serde) Deserialise(topic string, data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("serde: int64 requires 8 bytes, got %d", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}
