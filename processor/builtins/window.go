package builtins

import (
	"context"
	"fmt"

	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
)

var _ processor.Processor[any, any, any, any] = (*WindowProcessor[any, any])(nil)

// WindowProcessor writes every record into a named window store. The window
// start is the record timestamp aligned down to the window size, so records
// carrying explicit timestamps land in deterministic windows.
type WindowProcessor[K, V any] struct {
	storeName  string
	windowSize int64 // milliseconds
	store      store.WindowStore
	ctx        processor.Context[K, V]
}

func NewWindowProcessor[K, V any](storeName string, windowSizeMs int64) *WindowProcessor[K, V] {
	if windowSizeMs <= 0 {
		windowSizeMs = 1
	}
	return &WindowProcessor[K, V]{
		storeName:  storeName,
		windowSize: windowSizeMs,
	}
}

func (p *WindowProcessor[K, V]) Init(ctx processor.Context[K, V]) {
	p.ctx = ctx
	p.store, _ = ctx.WindowStore(p.storeName)
}

func (p *WindowProcessor[K, V]) Process(ctx context.Context, r *record.Record[K, V]) error {
	if p.store == nil {
		return fmt.Errorf("window processor: state store %q is not connected", p.storeName)
	}

	ts := r.Timestamp.UnixMilli()
	windowStart := ts - (ts % p.windowSize)
	p.store.Put(r.Key, windowStart, r.Value)

	return p.ctx.Forward(ctx, r)
}

func (p *WindowProcessor[K, V]) Close() error {
	return nil
}
