package processor

type Supplier[KIn, VIn, KOut, VOut any] func() Processor[KIn, VIn, KOut, VOut]

// ToSupplier adapts a typed processor factory into the untyped supplier form
// the topology stores.
func ToSupplier[KIn, VIn, KOut, VOut any](
	factory func() Processor[KIn, VIn, KOut, VOut],
) func() UntypedProcessor {
	return func() UntypedProcessor {
		return &processorAdapter[KIn, VIn, KOut, VOut]{
			typed: factory(),
		}
	}
}
