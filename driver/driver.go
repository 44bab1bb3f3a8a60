// Package driver runs a topology entirely in process. A Driver is one-shot:
// it is created for a single replay, fed wire records, inspected, and closed.
package driver

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/gammazero/deque"
	"github.com/hugolhafner/go-streamtest/logger"
	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
	"github.com/hugolhafner/go-streamtest/topology"
)

var ErrClosed = errors.New("driver: closed")

type Driver struct {
	topology *topology.Topology
	config   map[string]string

	processors map[string]processor.UntypedProcessor
	contexts   map[string]*nodeContext
	stores     map[string]store.StateStore

	sourcesByTopic map[string]topology.SourceNode
	offsets        map[string]int64

	// records waiting to be processed, including sink output looped back
	// into source topics
	pending *deque.Deque[record.TestRecord]
	outputs map[string]*deque.Deque[record.TestRecord]

	startTime time.Time
	closed    bool
	logger    logger.Logger
}

// New materialises a driver for one run of the given topology: fresh stores
// from the registered suppliers, fresh processors from the node suppliers,
// and wired node contexts.
func New(t *topology.Topology, config map[string]string, opts ...Option) (*Driver, error) {
	if t == nil {
		return nil, errors.New("driver: nil topology")
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Driver{
		topology:       t,
		config:         config,
		processors:     make(map[string]processor.UntypedProcessor),
		contexts:       make(map[string]*nodeContext),
		stores:         make(map[string]store.StateStore),
		sourcesByTopic: make(map[string]topology.SourceNode),
		offsets:        make(map[string]int64),
		pending:        deque.New[record.TestRecord](),
		outputs:        make(map[string]*deque.Deque[record.TestRecord]),
		startTime:      cfg.startTime,
		logger:         cfg.logger.With("component", "driver"),
	}

	for name, supplier := range t.StoreSuppliers() {
		d.stores[name] = supplier()
	}

	for name, node := range t.Nodes() {
		switch n := node.(type) {
		case topology.SourceNode:
			if _, exists := d.sourcesByTopic[n.Topic()]; exists {
				return nil, fmt.Errorf("driver: topic %q consumed by more than one source", n.Topic())
			}
			d.sourcesByTopic[n.Topic()] = n
		case topology.ProcessorNode:
			d.processors[name] = n.Supplier()()
		}
	}

	for name := range t.Nodes() {
		d.contexts[name] = &nodeContext{
			driver:     d,
			nodeName:   name,
			children:   t.Children(name),
			namedEdges: t.NamedEdges(name),
		}
	}

	for name, proc := range d.processors {
		proc.Init(d.contexts[name])
	}

	return d, nil
}

// StartTime is the base used for records piped in without an explicit
// timestamp. Fixed for the lifetime of the driver.
func (d *Driver) StartTime() time.Time {
	return d.startTime
}

// Config returns a copy of the driver's merged configuration.
func (d *Driver) Config() map[string]string {
	return maps.Clone(d.config)
}

// PipeInput feeds one wire record through the topology synchronously. Sink
// output whose topic is also consumed by a source is piped back through in
// the same call.
func (d *Driver) PipeInput(ctx context.Context, rec record.TestRecord) error {
	if d.closed {
		return ErrClosed
	}
	if _, ok := d.sourcesByTopic[rec.Topic]; !ok {
		return fmt.Errorf("driver: no source consumes topic %q", rec.Topic)
	}

	d.pending.PushBack(rec)

	for d.pending.Len() > 0 {
		next := d.pending.PopFront()
		if err := d.processWire(ctx, next); err != nil {
			return err
		}
	}

	return nil
}

func (d *Driver) processWire(ctx context.Context, rec record.TestRecord) error {
	source := d.sourcesByTopic[rec.Topic]

	key, err := source.KeyDeserialiser().Deserialise(rec.Topic, rec.Key)
	if err != nil {
		return fmt.Errorf("deserialise key: %w", err)
	}

	value, err := source.ValueDeserialiser().Deserialise(rec.Topic, rec.Value)
	if err != nil {
		return fmt.Errorf("deserialise value: %w", err)
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = d.startTime
	}

	offset := d.offsets[rec.Topic]
	d.offsets[rec.Topic]++

	d.logger.Debug("processing record", "topic", rec.Topic, "offset", offset)

	untyped := record.NewUntyped(
		key, value, record.Metadata{
			Topic:     rec.Topic,
			Offset:    offset,
			Timestamp: ts,
		},
	)

	for _, child := range d.topology.Children(source.Name()) {
		if err := d.processAt(ctx, child, untyped); err != nil {
			return err
		}
	}

	return nil
}

func (d *Driver) processAt(ctx context.Context, nodeName string, rec *record.UntypedRecord) error {
	node, ok := d.topology.Nodes()[nodeName]
	if !ok {
		return fmt.Errorf("driver: unknown node %q", nodeName)
	}

	if sink, ok := node.(topology.SinkNode); ok {
		return d.produce(sink, rec)
	}

	proc, ok := d.processors[nodeName]
	if !ok {
		return fmt.Errorf("driver: node %q is not processable", nodeName)
	}

	d.logger.Debug("processing record at node", "node", nodeName)
	return proc.Process(ctx, rec)
}

func (d *Driver) produce(sink topology.SinkNode, rec *record.UntypedRecord) error {
	topic := sink.Topic()

	key, err := sink.KeySerialiser().Serialise(topic, rec.Key)
	if err != nil {
		return fmt.Errorf("serialise key: %w", err)
	}

	value, err := sink.ValueSerialiser().Serialise(topic, rec.Value)
	if err != nil {
		return fmt.Errorf("serialise value: %w", err)
	}

	out := record.TestRecord{
		Topic:     topic,
		Key:       key,
		Value:     value,
		Timestamp: rec.Timestamp,
	}

	queue, ok := d.outputs[topic]
	if !ok {
		queue = deque.New[record.TestRecord]()
		d.outputs[topic] = queue
	}
	queue.PushBack(out)

	d.logger.Debug("produced record", "topic", topic, "node", sink.Name())

	if _, loopback := d.sourcesByTopic[topic]; loopback {
		d.pending.PushBack(out)
	}

	return nil
}

// ReadOutput pops the next record produced to the named topic, FIFO. The
// second return is false when no further record is available.
func (d *Driver) ReadOutput(topic string) (record.TestRecord, bool) {
	queue, ok := d.outputs[topic]
	if !ok || queue.Len() == 0 {
		return record.TestRecord{}, false
	}
	return queue.PopFront(), true
}

// KeyValueStore returns the named key-value store materialised by this run.
func (d *Driver) KeyValueStore(name string) (store.KeyValueStore, bool) {
	kv, ok := d.stores[name].(store.KeyValueStore)
	return kv, ok
}

// WindowStore returns the named window store materialised by this run.
func (d *Driver) WindowStore(name string) (store.WindowStore, bool) {
	ws, ok := d.stores[name].(store.WindowStore)
	return ws, ok
}

// Close releases the driver: every processor is closed exactly once.
// Subsequent calls are no-ops.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	var lastErr error
	for name, proc := range d.processors {
		if err := proc.Close(); err != nil {
			lastErr = fmt.Errorf("close processor %s: %w", name, err)
		}
	}
	return lastErr
}
