// Package kafka converts between harness wire records and franz-go records,
// so fixtures can replay traffic captured with a real client and harness
// output can feed real-client assertions.
package kafka

import (
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/twmb/franz-go/pkg/kgo"
)

func FromKgo(r *kgo.Record) record.TestRecord {
	return record.TestRecord{
		Topic:     r.Topic,
		Key:       r.Key,
		Value:     r.Value,
		Timestamp: r.Timestamp,
	}
}

func ToKgo(r record.TestRecord) *kgo.Record {
	return &kgo.Record{
		Topic:     r.Topic,
		Key:       r.Key,
		Value:     r.Value,
		Timestamp: r.Timestamp,
	}
}

func FromKgoAll(recs []*kgo.Record) []record.TestRecord {
	out := make([]record.TestRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromKgo(r))
	}
	return out
}

func ToKgoAll(recs []record.TestRecord) []*kgo.Record {
	out := make([]*kgo.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToKgo(r))
	}
	return out
}
