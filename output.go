package streamtest

import (
	"fmt"

	"github.com/hugolhafner/go-streamtest/driver"
	"github.com/hugolhafner/go-streamtest/record"
)

// Output replays the fixture and reads up to size records from the named
// output topic, decoding each with the codec. It returns fewer than size
// pairs when the driver runs out of output; it never blocks waiting for
// more. size must be positive.
func Output[K, V any](f Fixture, topic string, codec Codec[K, V], size int) ([]record.KeyValue[K, V], error) {
	if size <= 0 {
		return nil, ErrEmptyOutput
	}

	var out []record.KeyValue[K, V]
	err := f.WithProcessedDriver(
		func(d *driver.Driver) error {
			for i := 0; i < size; i++ {
				wire, ok := d.ReadOutput(topic)
				if !ok {
					break
				}

				key, err := codec.key.Deserialise(topic, wire.Key)
				if err != nil {
					return err
				}

				value, err := codec.value.Deserialise(topic, wire.Value)
				if err != nil {
					return err
				}

				out = append(out, record.KeyValue[K, V]{Key: key, Value: value})
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// OutputTable collapses Output into a last-write-wins mapping, modelling a
// changelog-to-table collapse.
func OutputTable[K comparable, V any](f Fixture, topic string, codec Codec[K, V], size int) (map[K]V, error) {
	pairs, err := Output(f, topic, codec, size)
	if err != nil {
		return nil, err
	}

	table := make(map[K]V, len(pairs))
	for _, pair := range pairs {
		table[pair.Key] = pair.Value
	}
	return table, nil
}

// StateTable replays the fixture and full-scans the named key-value store.
// The result is a point-in-time copy, not a live view.
func (f Fixture) StateTable(name string) (map[any]any, error) {
	var table map[any]any
	err := f.WithProcessedDriver(
		func(d *driver.Driver) error {
			kv, ok := d.KeyValueStore(name)
			if !ok {
				return fmt.Errorf("streamtest: unknown key-value store %q", name)
			}

			it := kv.All()
			defer func() {
				_ = it.Close()
			}()

			table = make(map[any]any, kv.Len())
			for it.Next() {
				table[it.Key()] = it.Value()
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return table, nil
}

// WindowStateTable replays the fixture and range-queries the named window
// store for one key, returning window-start -> value for every window with
// timeFrom <= start <= timeTo. Pass 0 and math.MaxInt64 to scan everything.
func (f Fixture) WindowStateTable(name string, key any, timeFrom, timeTo int64) (map[int64]any, error) {
	var table map[int64]any
	err := f.WithProcessedDriver(
		func(d *driver.Driver) error {
			ws, ok := d.WindowStore(name)
			if !ok {
				return fmt.Errorf("streamtest: unknown window store %q", name)
			}

			it := ws.Fetch(key, timeFrom, timeTo)
			defer func() {
				_ = it.Close()
			}()

			table = make(map[int64]any)
			for it.Next() {
				table[it.WindowStart()] = it.Value()
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return table, nil
}
