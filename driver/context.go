package driver

import (
	"context"
	"fmt"

	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
)

var _ processor.UntypedContext = (*nodeContext)(nil)

type nodeContext struct {
	driver     *Driver
	nodeName   string
	children   []string
	namedEdges map[string]string // childName -> actual node name
}

func (c *nodeContext) Forward(ctx context.Context, rec *record.UntypedRecord) error {
	for _, child := range c.children {
		if err := c.driver.processAt(ctx, child, rec); err != nil {
			return fmt.Errorf("forward to %s: %w", child, err)
		}
	}
	return nil
}

func (c *nodeContext) ForwardTo(ctx context.Context, childName string, rec *record.UntypedRecord) error {
	actualName, ok := c.namedEdges[childName]
	if !ok {
		return fmt.Errorf("unknown child name: %s", childName)
	}
	return c.driver.processAt(ctx, actualName, rec)
}

func (c *nodeContext) KeyValueStore(name string) (store.KeyValueStore, bool) {
	if !c.driver.topology.StoreAccessible(name, c.nodeName) {
		return nil, false
	}
	kv, ok := c.driver.stores[name].(store.KeyValueStore)
	return kv, ok
}

func (c *nodeContext) WindowStore(name string) (store.WindowStore, bool) {
	if !c.driver.topology.StoreAccessible(name, c.nodeName) {
		return nil, false
	}
	ws, ok := c.driver.stores[name].(store.WindowStore)
	return ws, ok
}
