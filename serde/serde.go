package serde

type Serde[T any] interface {
	Serialiser[T]
	Deserialiser[T]
}

type Serialiser[T any] interface {
	Serialise(topic string, value T) ([]byte, error)
}

type Deserialiser[T any] interface {
	Deserialise(topic string, data []byte) (T, error)
}

// Untyped variants are what the topology carries internally. Sources hold
// UntypedDeserialisers, sinks hold UntypedSerialisers; the typed API converts
// via ToUntyped and friends.
type UntypedSerde interface {
	UntypedSerialiser
	UntypedDeserialiser
}

type UntypedSerialiser interface {
	Serialise(topic string, value any) ([]byte, error)
}

type UntypedDeserialiser interface {
	Deserialise(topic string, data []byte) (any, error)
}
