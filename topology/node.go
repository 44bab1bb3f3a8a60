package topology

import (
	"github.com/hugolhafner/go-streamtest/serde"
)

type NodeType int

const (
	NodeTypeSource NodeType = iota
	NodeTypeProcessor
	NodeTypeSink
)

func (nt NodeType) String() string {
	switch nt {
	case NodeTypeSource:
		return "Source"
	case NodeTypeProcessor:
		return "Processor"
	case NodeTypeSink:
		return "Sink"
	default:
		return "Unknown"
	}
}

// Node represents a processing step in the topology
type Node interface {
	Name() string
	Type() NodeType
}

// SourceNode consumes a topic and deserialises wire records into typed ones.
type SourceNode interface {
	Node
	Topic() string
	KeyDeserialiser() serde.UntypedDeserialiser
	ValueDeserialiser() serde.UntypedDeserialiser
}

// ProcessorNode supplies a fresh processor instance per execution.
type ProcessorNode interface {
	Node
	Supplier() ProcessorSupplier
}

// SinkNode serialises typed records back to wire form for an output topic.
type SinkNode interface {
	Node
	Topic() string
	KeySerialiser() serde.UntypedSerialiser
	ValueSerialiser() serde.UntypedSerialiser
}

var (
	_ SourceNode    = (*sourceNodeDef)(nil)
	_ ProcessorNode = (*processorNodeDef)(nil)
	_ SinkNode      = (*sinkNodeDef)(nil)
)

type sourceNodeDef struct {
	name       string
	topic      string
	keyDeser   serde.UntypedDeserialiser
	valueDeser serde.UntypedDeserialiser
}

func (s *sourceNodeDef) Name() string {
	return s.name
}

func (s *sourceNodeDef) Type() NodeType {
	return NodeTypeSource
}

func (s *sourceNodeDef) Topic() string {
	return s.topic
}

func (s *sourceNodeDef) KeyDeserialiser() serde.UntypedDeserialiser {
	return s.keyDeser
}

func (s *sourceNodeDef) ValueDeserialiser() serde.UntypedDeserialiser {
	return s.valueDeser
}

type processorNodeDef struct {
	name     string
	supplier ProcessorSupplier
}

func (p *processorNodeDef) Name() string {
	return p.name
}

func (p *processorNodeDef) Type() NodeType {
	return NodeTypeProcessor
}

func (p *processorNodeDef) Supplier() ProcessorSupplier {
	return p.supplier
}

type sinkNodeDef struct {
	name     string
	topic    string
	keySer   serde.UntypedSerialiser
	valueSer serde.UntypedSerialiser
}

func (s *sinkNodeDef) Name() string {
	return s.name
}

func (s *sinkNodeDef) Type() NodeType {
	return NodeTypeSink
}

func (s *sinkNodeDef) Topic() string {
	return s.topic
}

func (s *sinkNodeDef) KeySerialiser() serde.UntypedSerialiser {
	return s.keySer
}

func (s *sinkNodeDef) ValueSerialiser() serde.UntypedSerialiser {
	return s.valueSer
}
