package query

type (
	// Value is the item type that flows through a query pipeline. Sources, predicates,
	// and mappers all trade in plain Go values.
	Value = interface{}

	Consumer func(value Value)

	Mapper func(value Value) Value

	Predicate func(value Value) bool

	// Factory manufactures a fresh Iterator each time it is invoked. It must be free of
	// side effects so that every invocation starts an independent traversal over the
	// same logical source.
	Factory func() Iterator
)
