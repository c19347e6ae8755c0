package query

// Pair represents one key/value entry of a mapping while it flows through a query
// pipeline. It has no identity beyond its two fields.
type Pair struct {
	Key   Value
	Value Value
}

// WrapPair returns a *Pair with the given key and value
func WrapPair(key Value, value Value) *Pair {
	return &Pair{key, value}
}
