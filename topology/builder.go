package topology

import (
	"github.com/hugolhafner/go-streamtest/processor"
	"github.com/hugolhafner/go-streamtest/serde"
	"github.com/hugolhafner/go-streamtest/store"
)

// ProcessorSupplier creates a fresh processor instance per execution.
type ProcessorSupplier func() processor.UntypedProcessor

type Builder struct {
	topology *Topology
}

func NewBuilder() *Builder {
	return &Builder{
		topology: NewTopology(),
	}
}

func (b *Builder) AddSource(
	name, topic string,
	keyDeser, valueDeser serde.UntypedDeserialiser,
) *Builder {
	b.topology.nodes[name] = &sourceNodeDef{
		name:       name,
		topic:      topic,
		keyDeser:   keyDeser,
		valueDeser: valueDeser,
	}
	b.topology.sources = append(b.topology.sources, name)
	return b
}

func (b *Builder) AddProcessor(name string, supplier ProcessorSupplier, parents ...string) *Builder {
	b.topology.nodes[name] = &processorNodeDef{
		name:     name,
		supplier: supplier,
	}

	for _, parent := range parents {
		b.topology.edges[parent] = append(b.topology.edges[parent], name)
	}

	return b
}

func (b *Builder) AddProcessorWithChildName(
	name string,
	supplier ProcessorSupplier,
	parent string,
	childName string,
) *Builder {
	b.topology.nodes[name] = &processorNodeDef{
		name:     name,
		supplier: supplier,
	}

	b.topology.edges[parent] = append(b.topology.edges[parent], name)

	if b.topology.namedEdges[parent] == nil {
		b.topology.namedEdges[parent] = make(map[string]string)
	}
	b.topology.namedEdges[parent][childName] = name

	return b
}

func (b *Builder) AddSink(
	name, topic string,
	keySer, valueSer serde.UntypedSerialiser,
	parents ...string,
) *Builder {
	b.topology.nodes[name] = &sinkNodeDef{
		name:     name,
		topic:    topic,
		keySer:   keySer,
		valueSer: valueSer,
	}
	b.topology.sinks = append(b.topology.sinks, name)

	for _, parent := range parents {
		b.topology.edges[parent] = append(b.topology.edges[parent], name)
	}

	return b
}

// AddStateStore registers a store supplier. When processor names are given
// only those nodes may access the store; with none, every node may.
func (b *Builder) AddStateStore(supplier store.Supplier, processors ...string) *Builder {
	name := supplier().Name()
	b.topology.storeSuppliers[name] = supplier
	b.topology.storeProcessors[name] = processors
	return b
}

func (b *Builder) Build() *Topology {
	return b.topology
}
