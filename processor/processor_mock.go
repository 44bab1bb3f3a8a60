package processor

import (
	"context"

	"github.com/hugolhafner/go-streamtest/record"
	"github.com/hugolhafner/go-streamtest/store"
	"github.com/stretchr/testify/mock"
)

var _ Context[any, any] = (*MockContext[any, any])(nil)

type MockContext[K, V any] struct {
	mock.Mock
}

func NewMockContext[K, V any]() *MockContext[K, V] {
	return &MockContext[K, V]{}
}

func (c *MockContext[K, V]) Forward(ctx context.Context, record *record.Record[K, V]) error {
	args := c.Mock.Called(record)
	return args.Error(0)
}

func (c *MockContext[K, V]) ForwardTo(ctx context.Context, childName string, record *record.Record[K, V]) error {
	args := c.Mock.Called(childName, record)
	return args.Error(0)
}

func (c *MockContext[K, V]) KeyValueStore(name string) (store.KeyValueStore, bool) {
	args := c.Mock.Called(name)
	st, ok := args.Get(0).(store.KeyValueStore)
	return st, ok && args.Bool(1)
}

func (c *MockContext[K, V]) WindowStore(name string) (store.WindowStore, bool) {
	args := c.Mock.Called(name)
	st, ok := args.Get(0).(store.WindowStore)
	return st, ok && args.Bool(1)
}
