// Package streamtest is a fixture harness for testing stream topologies.
// A Fixture is an immutable value: every configuration call returns a new
// one, and every extraction call replays the buffered input against a fresh
// in-process driver.
package streamtest

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hugolhafner/go-streamtest/driver"
	"github.com/hugolhafner/go-streamtest/logger"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/serde"
	"github.com/hugolhafner/go-streamtest/topology"
)

var (
	// ErrNoTopology is returned when extraction is attempted before a
	// topology factory was registered.
	ErrNoTopology = errors.New("streamtest: no topology specified")

	// ErrNoInput is returned when extraction is attempted with no buffered
	// input. A fixture without stimulus is a configuration error.
	ErrNoInput = errors.New("streamtest: no input specified")

	// ErrEmptyOutput is returned when Output or OutputTable is asked for a
	// non-positive number of records.
	ErrEmptyOutput = errors.New("streamtest: expected output size must be positive")
)

const (
	ConfigApplicationID    = "application.id"
	ConfigBootstrapServers = "bootstrap.servers"

	// The driver never opens a connection; this address only satisfies the
	// required config shape.
	placeholderBootstrapServers = "localhost:9092"
)

// Codec pairs a key serde and a value serde for one topic.
type Codec[K, V any] struct {
	key   serde.Serde[K]
	value serde.Serde[V]
}

func NewCodec[K, V any](key serde.Serde[K], value serde.Serde[V]) Codec[K, V] {
	return Codec[K, V]{key: key, value: value}
}

// StringCodec is the common case of UTF-8 string keys and values.
func StringCodec() Codec[string, string] {
	return NewCodec(serde.String(), serde.String())
}

// Fixture accumulates a topology factory, config overrides, declared store
// names and buffered input records. The zero value is usable; all methods
// are copy-on-write.
type Fixture struct {
	factory   func() *topology.Topology
	config    map[string]string
	stores    []string
	inputs    []record.TestRecord
	startTime time.Time
	logger    logger.Logger

	// first error from input encoding, surfaced at extraction time
	err error
}

func New() Fixture {
	return Fixture{}
}

// Topology registers a build function invoked against a fresh topology
// builder per execution, so runs never share graph state.
func (f Fixture) Topology(build func(*topology.Builder)) Fixture {
	return f.WithTopology(
		func() *topology.Topology {
			b := topology.NewBuilder()
			build(b)
			return b.Build()
		},
	)
}

// WithTopology registers a topology factory directly.
func (f Fixture) WithTopology(factory func() *topology.Topology) Fixture {
	f.factory = factory
	return f
}

// Config merges overrides into the fixture. Caller values take precedence
// over the defaults applied at execution time.
func (f Fixture) Config(overrides map[string]string) Fixture {
	merged := make(map[string]string, len(f.config)+len(overrides))
	maps.Copy(merged, f.config)
	maps.Copy(merged, overrides)
	f.config = merged
	return f
}

// Stores declares the store names the topology is expected to expose.
// Purely documentary; extraction resolves stores from the topology itself.
func (f Fixture) Stores(names ...string) Fixture {
	f.stores = slices.Clone(names)
	return f
}

// DeclaredStores returns the names recorded via Stores.
func (f Fixture) DeclaredStores() []string {
	return slices.Clone(f.stores)
}

// StartTime pins the default timestamp for records registered without one,
// making runs that rely on implicit timestamps deterministic.
func (f Fixture) StartTime(t time.Time) Fixture {
	f.startTime = t
	return f
}

// Logger sets the logger threaded into every driver the fixture creates.
func (f Fixture) Logger(l logger.Logger) Fixture {
	f.logger = l
	return f
}

// InputRecords appends already-encoded wire records, e.g. traffic captured
// with a real client and converted via the kafka package.
func (f Fixture) InputRecords(recs ...record.TestRecord) Fixture {
	inputs := slices.Clone(f.inputs)
	for _, rec := range recs {
		inputs = append(inputs, rec.Copy())
	}
	f.inputs = inputs
	return f
}

func (f Fixture) mergedConfig() map[string]string {
	merged := map[string]string{
		ConfigApplicationID:    "streamtest-" + uuid.NewString(),
		ConfigBootstrapServers: placeholderBootstrapServers,
	}
	maps.Copy(merged, f.config)
	return merged
}

// WithProcessedDriver is the single execution primitive behind every
// read-back: it builds a fresh driver, replays all buffered input in
// insertion order, hands the driver to extract, and closes it on every exit
// path. Each call is an independent execution.
func (f Fixture) WithProcessedDriver(extract func(*driver.Driver) error) error {
	if f.factory == nil {
		return ErrNoTopology
	}
	// a recorded encode failure means input was attempted; report it rather
	// than claiming the fixture is input-less
	if f.err != nil {
		return f.err
	}
	if len(f.inputs) == 0 {
		return ErrNoInput
	}

	opts := []driver.Option{driver.WithStartTime(f.startTime)}
	if f.logger != nil {
		opts = append(opts, driver.WithLogger(f.logger))
	}

	d, err := driver.New(f.factory(), f.mergedConfig(), opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = d.Close()
	}()

	ctx := context.Background()
	for _, rec := range f.inputs {
		if err := d.PipeInput(ctx, rec); err != nil {
			return err
		}
	}

	return extract(d)
}
