package builtins

import (
	"context"
	"fmt"

	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
)

var _ processor.Processor[any, any, any, any] = (*TableProcessor[any, any])(nil)

// TableProcessor upserts every record into a named key-value store,
// changelog style, then forwards it unchanged.
type TableProcessor[K, V any] struct {
	storeName string
	store     store.KeyValueStore
	ctx       processor.Context[K, V]
}

func NewTableProcessor[K, V any](storeName string) *TableProcessor[K, V] {
	return &TableProcessor[K, V]{storeName: storeName}
}

func (p *TableProcessor[K, V]) Init(ctx processor.Context[K, V]) {
	p.ctx = ctx
	p.store, _ = ctx.KeyValueStore(p.storeName)
}

func (p *TableProcessor[K, V]) Process(ctx context.Context, r *record.Record[K, V]) error {
	if p.store == nil {
		return fmt.Errorf("table processor: state store %q is not connected", p.storeName)
	}

	p.store.Put(r.Key, r.Value)
	return p.ctx.Forward(ctx, r)
}

func (p *TableProcessor[K, V]) Close() error {
	return nil
}
