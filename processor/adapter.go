package processor

import (
	"context"

	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
)

type processorAdapter[KIn, VIn, KOut, VOut any] struct {
	typed Processor[KIn, VIn, KOut, VOut]
	ctx   *contextAdapter[KOut, VOut]
}

func (a *processorAdapter[KIn, VIn, KOut, VOut]) Init(ctx UntypedContext) {
	a.ctx = &contextAdapter[KOut, VOut]{untyped: ctx}
	a.typed.Init(a.ctx)
}

func (a *processorAdapter[KIn, VIn, KOut, VOut]) Process(ctx context.Context, r *record.UntypedRecord) error {
	typed := &record.Record[KIn, VIn]{
		Key:      r.Key.(KIn),
		Value:    r.Value.(VIn),
		Metadata: r.Metadata,
	}
	return a.typed.Process(ctx, typed)
}

func (a *processorAdapter[KIn, VIn, KOut, VOut]) Close() error {
	return a.typed.Close()
}

type contextAdapter[K, V any] struct {
	untyped UntypedContext
}

func (c *contextAdapter[K, V]) Forward(ctx context.Context, r *record.Record[K, V]) error {
	return c.untyped.Forward(ctx, r.ToUntyped())
}

func (c *contextAdapter[K, V]) ForwardTo(ctx context.Context, childName string, r *record.Record[K, V]) error {
	return c.untyped.ForwardTo(ctx, childName, r.ToUntyped())
}

func (c *contextAdapter[K, V]) KeyValueStore(name string) (store.KeyValueStore, bool) {
	return c.untyped.KeyValueStore(name)
}

func (c *contextAdapter[K, V]) WindowStore(name string) (store.WindowStore, bool) {
	return c.untyped.WindowStore(name)
}
