package streamtest

import (
	"time"

	"github.com/hugolhafner/go-streamtest/record"
)

// Input encodes the given pairs with the codec and appends them to the
// fixture's buffered input. Records carry no explicit timestamp; the driver
// assigns its start time at replay. Go methods cannot take type parameters,
// so Input and InputWithTime are package functions over the fixture value.
func Input[K, V any](f Fixture, topic string, codec Codec[K, V], pairs []record.KeyValue[K, V]) Fixture {
	recs := make([]record.TestRecord, 0, len(pairs))
	for _, pair := range pairs {
		rec, err := encodeRecord(topic, codec, pair.Key, pair.Value, time.Time{})
		if err != nil {
			return withInputErr(f, err)
		}
		recs = append(recs, rec)
	}
	return f.InputRecords(recs...)
}

// InputWithTime is Input with an explicit timestamp per record.
func InputWithTime[K, V any](f Fixture, topic string, codec Codec[K, V], pairs []record.TimedKeyValue[K, V]) Fixture {
	recs := make([]record.TestRecord, 0, len(pairs))
	for _, pair := range pairs {
		rec, err := encodeRecord(topic, codec, pair.Key, pair.Value, pair.Timestamp)
		if err != nil {
			return withInputErr(f, err)
		}
		recs = append(recs, rec)
	}
	return f.InputRecords(recs...)
}

// encodeRecord is the record factory: it converts one typed tuple into the
// wire record the driver replays.
func encodeRecord[K, V any](topic string, codec Codec[K, V], key K, value V, ts time.Time) (record.TestRecord, error) {
	keyData, err := codec.key.Serialise(topic, key)
	if err != nil {
		return record.TestRecord{}, err
	}

	valueData, err := codec.value.Serialise(topic, value)
	if err != nil {
		return record.TestRecord{}, err
	}

	return record.TestRecord{
		Topic:     topic,
		Key:       keyData,
		Value:     valueData,
		Timestamp: ts,
	}, nil
}

// Encoding failures are deferred to extraction time, where the error surface
// is, so that chained fixture construction stays value-based.
func withInputErr(f Fixture, err error) Fixture {
	if f.err == nil {
		f.err = err
	}
	return f
}
