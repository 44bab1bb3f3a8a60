package serde

type stringSerde struct{}

// String returns a Serde for UTF-8 string keys and values. The topic is
// ignored; the bytes are the string itself.
func String() Serde[string] {
	return stringSerde{}
}

func (s stringSerde) Serialise(_ string, value string) ([]byte, error) {
	return []byte(value), nil
}

func (s stringSerde) Deserialise(_ string, data []byte) (string, error) {
	return string(data), nil
}
