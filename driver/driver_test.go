package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/hugolhafner/go-streamtest/driver"
	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/processor/builtins"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/serde"
	"github.com/hugolhafner/go-streamtest/store"
	"github.com/hugolhafner/go-streamtest/topology"
	"github.com/stretchr/testify/require"
)

func stringDeser() serde.UntypedDeserialiser {
	return serde.ToUntypedDeserialiser[string](serde.String())
}

func stringSer() serde.UntypedSerialiser {
	return serde.ToUntypedSerialiser[string](serde.String())
}

func passthroughSupplier() topology.ProcessorSupplier {
	return processor.ToSupplier(
		func() processor.Processor[string, string, string, string] {
			return builtins.NewPassthroughProcessor[string, string]()
		},
	)
}

func identityTopology() *topology.Topology {
	return topology.NewBuilder().
		AddSource("source", "in", stringDeser(), stringDeser()).
		AddProcessor("identity", passthroughSupplier(), "source").
		AddSink("sink", "out", stringSer(), stringSer(), "identity").
		Build()
}

func wireRecord(topic, key, value string) record.TestRecord {
	return record.TestRecord{
		Topic: topic,
		Key:   []byte(key),
		Value: []byte(value),
	}
}

func TestDriver_PipeAndRead(t *testing.T) {
	t.Parallel()

	d, err := driver.New(identityTopology(), nil)
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	require.NoError(t, d.PipeInput(ctx, wireRecord("in", "a", "1")))
	require.NoError(t, d.PipeInput(ctx, wireRecord("in", "b", "2")))

	out, ok := d.ReadOutput("out")
	require.True(t, ok)
	require.Equal(t, "a", string(out.Key))
	require.Equal(t, "1", string(out.Value))

	out, ok = d.ReadOutput("out")
	require.True(t, ok)
	require.Equal(t, "b", string(out.Key))

	_, ok = d.ReadOutput("out")
	require.False(t, ok)
}

func TestDriver_UnknownTopic(t *testing.T) {
	t.Parallel()

	d, err := driver.New(identityTopology(), nil)
	require.NoError(t, err)
	defer d.Close()

	err = d.PipeInput(context.Background(), wireRecord("missing", "a", "1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing")
}

func TestDriver_DuplicateSourceTopic(t *testing.T) {
	t.Parallel()

	top := topology.NewBuilder().
		AddSource("source-1", "in", stringDeser(), stringDeser()).
		AddSource("source-2", "in", stringDeser(), stringDeser()).
		Build()

	_, err := driver.New(top, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "more than one source")
}

func TestDriver_Loopback(t *testing.T) {
	t.Parallel()

	// "in" -> sink "mid"; "mid" is also a source feeding sink "out", so one
	// PipeInput must flow through both hops
	top := topology.NewBuilder().
		AddSource("source", "in", stringDeser(), stringDeser()).
		AddProcessor("first", passthroughSupplier(), "source").
		AddSink("mid-sink", "mid", stringSer(), stringSer(), "first").
		AddSource("mid-source", "mid", stringDeser(), stringDeser()).
		AddProcessor("second", passthroughSupplier(), "mid-source").
		AddSink("out-sink", "out", stringSer(), stringSer(), "second").
		Build()

	d, err := driver.New(top, nil)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.PipeInput(context.Background(), wireRecord("in", "a", "1")))

	mid, ok := d.ReadOutput("mid")
	require.True(t, ok)
	require.Equal(t, "a", string(mid.Key))

	out, ok := d.ReadOutput("out")
	require.True(t, ok)
	require.Equal(t, "a", string(out.Key))
	require.Equal(t, "1", string(out.Value))
}

func TestDriver_DefaultTimestamp(t *testing.T) {
	t.Parallel()

	start := time.UnixMilli(42_000)
	d, err := driver.New(identityTopology(), nil, driver.WithStartTime(start))
	require.NoError(t, err)
	defer d.Close()

	require.Equal(t, start, d.StartTime())

	require.NoError(t, d.PipeInput(context.Background(), wireRecord("in", "a", "1")))
	out, ok := d.ReadOutput("out")
	require.True(t, ok)
	require.Equal(t, start, out.Timestamp)

	// explicit timestamps pass through untouched
	explicit := time.UnixMilli(99_000)
	rec := wireRecord("in", "b", "2")
	rec.Timestamp = explicit
	require.NoError(t, d.PipeInput(context.Background(), rec))
	out, ok = d.ReadOutput("out")
	require.True(t, ok)
	require.Equal(t, explicit, out.Timestamp)
}

func TestDriver_StoreLookup(t *testing.T) {
	t.Parallel()

	top := topology.NewBuilder().
		AddSource("source", "in", stringDeser(), stringDeser()).
		AddProcessor(
			"materialise", processor.ToSupplier(
				func() processor.Processor[string, string, string, string] {
					return builtins.NewTableProcessor[string, string]("table")
				},
			), "source",
		).
		AddStateStore(store.NewKeyValueSupplier("table"), "materialise").
		Build()

	d, err := driver.New(top, nil)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.PipeInput(context.Background(), wireRecord("in", "a", "1")))

	kv, ok := d.KeyValueStore("table")
	require.True(t, ok)
	value, found := kv.Get("a")
	require.True(t, found)
	require.Equal(t, "1", value)

	_, ok = d.KeyValueStore("missing")
	require.False(t, ok)

	_, ok = d.WindowStore("table")
	require.False(t, ok)
}

func TestDriver_ConfigIsACopy(t *testing.T) {
	t.Parallel()

	d, err := driver.New(identityTopology(), map[string]string{"application.id": "app"})
	require.NoError(t, err)
	defer d.Close()

	cfg := d.Config()
	cfg["application.id"] = "mutated"
	cfg["extra"] = "value"

	fresh := d.Config()
	require.Equal(t, "app", fresh["application.id"])
	require.NotContains(t, fresh, "extra")
}

func TestDriver_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	d, err := driver.New(identityTopology(), nil)
	require.NoError(t, err)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	err = d.PipeInput(context.Background(), wireRecord("in", "a", "1"))
	require.ErrorIs(t, err, driver.ErrClosed)
}

func TestDriver_NilTopology(t *testing.T) {
	t.Parallel()

	_, err := driver.New(nil, nil)
	require.Error(t, err)
}
