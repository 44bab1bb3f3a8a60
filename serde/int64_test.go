package serde_test

import (
	"testing"

	"github.com/hugolhafner/go-streamtest/serde"
	"github.com/stretchr/testify/require"
)

func TestInt64Serde_RoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input int64
	}{
		{name: "zero", input: 0},
		{name: "positive", input: 1234567890},
		{name: "negative", input: -42},
		{name: "max", input: 1<<63 - 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				s := serde.Int64()
				data, err := s.Serialise("test-topic", tt.input)
				require.NoError(t, err)
				require.Len(t, data, 8)

				output, err := s.Deserialise("test-topic", data)
				require.NoError(t, err)
				require.Equal(t, tt.input, output)
			},
		)
	}
}

func TestInt64Serde_BadLength(t *testing.T) {
	t.Parallel()
	s := serde.Int64()
	_, err := s.Deserialise("test-topic", []byte{1, 2, 3})
	require.Error(t, err)
}
