package signet

// QueryNode decides whether an entity belongs to a query's result.
type QueryNode interface {
	Evaluate(e *Entity) bool
}

// Query builds And/Or/Not trees. Items may be a Signature, Mask, Kind, []Kind,
// or a nested QueryNode.
type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	Register(string, T) (int, error)
	Len() int
	Clear()
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
