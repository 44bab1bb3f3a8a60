package processor

import (
	"context"

	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
)

// Processor is the interface that all processors must implement. It defines
// the lifecycle of a processor and how it processes records.
type Processor[KIn, VIn, KOut, VOut any] interface {
	Init(ctx Context[KOut, VOut])
	Process(ctx context.Context, record *record.Record[KIn, VIn]) error
	Close() error
}

// Context is passed to the Init method of a Processor. It lets the processor
// forward records to its children with the correct types and reach the state
// stores connected to its node.
type Context[K, V any] interface {
	Forward(ctx context.Context, record *record.Record[K, V]) error
	ForwardTo(ctx context.Context, childName string, record *record.Record[K, V]) error

	KeyValueStore(name string) (store.KeyValueStore, bool)
	WindowStore(name string) (store.WindowStore, bool)
}

// UntypedProcessor is the same as Processor but works with untyped records.
// It is what the execution layer drives without knowing record types.
type UntypedProcessor interface {
	Init(ctx UntypedContext)
	Process(ctx context.Context, record *record.UntypedRecord) error
	Close() error
}

// UntypedContext is the context passed to the Init method of an
// UntypedProcessor.
type UntypedContext interface {
	Forward(ctx context.Context, record *record.UntypedRecord) error
	ForwardTo(ctx context.Context, childName string, record *record.UntypedRecord) error

	KeyValueStore(name string) (store.KeyValueStore, bool)
	WindowStore(name string) (store.WindowStore, bool)
}
