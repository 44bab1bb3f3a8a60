package topology

import (
	"slices"

	"github.com/hugolhafner/go-streamtest/store"
)

type Topology struct {
	nodes      map[string]Node
	edges      map[string][]string
	namedEdges map[string]map[string]string
	sources    []string
	sinks      []string

	storeSuppliers  map[string]store.Supplier
	storeProcessors map[string][]string
}

func NewTopology() *Topology {
	return &Topology{
		nodes:           make(map[string]Node),
		edges:           make(map[string][]string),
		namedEdges:      make(map[string]map[string]string),
		sources:         []string{},
		sinks:           []string{},
		storeSuppliers:  make(map[string]store.Supplier),
		storeProcessors: make(map[string][]string),
	}
}

func (t *Topology) Nodes() map[string]Node {
	return t.nodes
}

func (t *Topology) Children(parent string) []string {
	return t.edges[parent]
}

func (t *Topology) NamedEdges(parent string) map[string]string {
	return t.namedEdges[parent]
}

func (t *Topology) ChildByName(parent, childName string) string {
	if named, ok := t.namedEdges[parent]; ok {
		return named[childName]
	}
	return ""
}

func (t *Topology) Sources() []string {
	return t.sources
}

func (t *Topology) Sinks() []string {
	return t.sinks
}

func (t *Topology) StoreSuppliers() map[string]store.Supplier {
	return t.storeSuppliers
}

// StoreAccessible reports whether the named node may read or write the named
// store. A store registered without processor names is accessible to all.
func (t *Topology) StoreAccessible(storeName, nodeName string) bool {
	processors, ok := t.storeProcessors[storeName]
	if !ok {
		return false
	}
	if len(processors) == 0 {
		return true
	}
	return slices.Contains(processors, nodeName)
}
