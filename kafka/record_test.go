package kafka_test

import (
	"testing"
	"time"

	"github.com/hugolhafner/go-streamtest/kafka"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestKgoRoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.UnixMilli(1_000)
	in := &kgo.Record{
		Topic:     "orders",
		Key:       []byte("a"),
		Value:     []byte("1"),
		Timestamp: ts,
	}

	converted := kafka.FromKgo(in)
	require.Equal(
		t, record.TestRecord{
			Topic:     "orders",
			Key:       []byte("a"),
			Value:     []byte("1"),
			Timestamp: ts,
		}, converted,
	)

	back := kafka.ToKgo(converted)
	require.Equal(t, in.Topic, back.Topic)
	require.Equal(t, in.Key, back.Key)
	require.Equal(t, in.Value, back.Value)
	require.Equal(t, in.Timestamp, back.Timestamp)
}

func TestKgoSliceHelpers(t *testing.T) {
	t.Parallel()

	recs := []*kgo.Record{
		{Topic: "t", Key: []byte("a"), Value: []byte("1")},
		{Topic: "t", Key: []byte("b"), Value: []byte("2")},
	}

	converted := kafka.FromKgoAll(recs)
	require.Len(t, converted, 2)
	require.Equal(t, "a", string(converted[0].Key))

	back := kafka.ToKgoAll(converted)
	require.Len(t, back, 2)
	require.Equal(t, "2", string(back[1].Value))
}
