package builtins_test

import (
	"context"
	"testing"

	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/processor/builtins"
	"github.com/hugolhafner/go-streamtest/record"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFilterProcessor_Process(t *testing.T) {
	tests := []struct {
		name      string
		predicate builtins.PredicateFunc[string, int]
		input     *record.Record[string, int]
		forwarded bool
	}{
		{
			name: "passes predicate",
			predicate: func(_ context.Context, k string, v int) (bool, error) {
				return v > 0, nil
			},
			input:     &record.Record[string, int]{Key: "a", Value: 1},
			forwarded: true,
		},
		{
			name: "fails predicate",
			predicate: func(_ context.Context, k string, v int) (bool, error) {
				return v > 0, nil
			},
			input:     &record.Record[string, int]{Key: "a", Value: -1},
			forwarded: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				p := builtins.NewFilterProcessor(tt.predicate)
				ctx := processor.NewMockContext[string, int]()
				ctx.Mock.On("Forward", mock.Anything).Return(nil)
				p.Init(ctx)

				err := p.Process(context.Background(), tt.input)
				require.NoError(t, err)

				if tt.forwarded {
					ctx.AssertCalled(t, "Forward", tt.input)
				} else {
					ctx.AssertNotCalled(t, "Forward", mock.Anything)
				}
			},
		)
	}
}
