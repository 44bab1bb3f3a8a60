package serde_test

import (
	"testing"

	"github.com/hugolhafner/go-streamtest/serde"
	"github.com/stretchr/testify/require"
)

type event struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestJSONSerde_RoundTrip(t *testing.T) {
	t.Parallel()

	s := serde.JSON[event]()
	input := event{ID: "a", Count: 3}

	data, err := s.Serialise("test-topic", input)
	require.NoError(t, err)

	output, err := s.Deserialise("test-topic", data)
	require.NoError(t, err)
	require.Equal(t, input, output)
}

func TestJSONSerde_DeserialiseError(t *testing.T) {
	t.Parallel()

	s := serde.JSON[event]()
	_, err := s.Deserialise("test-topic", []byte("{not json"))
	require.Error(t, err)
}
