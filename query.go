package signet

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op       Operation
	children []QueryNode
	kinds    Mask
}

type leafNode struct {
	kinds Mask
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, kinds Mask) *compositeNode {
	return &compositeNode{
		op:       op,
		children: make([]QueryNode, 0),
		kinds:    kinds,
	}
}

func newLeafNode(kinds Mask) *leafNode {
	return &leafNode{kinds: kinds}
}

func (n *compositeNode) Evaluate(e *Entity) bool {
	nodeMask := n.kinds.bitset()
	entityMask := e.mask.bitset()

	switch n.op {
	case OpAnd:
		if !entityMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(e) {
				return false
			}
		}
		return true

	case OpOr:
		if entityMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(e) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(e) {
				return false
			}
		}
		return entityMask.ContainsNone(nodeMask)
	}
	return false
}

func (n *leafNode) Evaluate(e *Entity) bool {
	var entityMask, nodeMask mask.Mask = e.mask.bitset(), n.kinds.bitset()
	return entityMask.ContainsAll(nodeMask)
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

func (q *query) node(op Operation, items []interface{}) QueryNode {
	kinds, children := q.processItems(items...)
	node := newCompositeNode(op, kinds)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) (Mask, []QueryNode) {
	var kinds Mask
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Signature:
			kinds |= v.Mask()
		case Mask:
			kinds |= v
		case Kind:
			kinds |= v.Mask()
		case []Kind:
			for _, k := range v {
				kinds |= k.Mask()
			}
		case QueryNode:
			children = append(children, v)
		}
	}

	return kinds, children
}

// Evaluate runs the first node built on q. An empty query matches nothing.
func (q *query) Evaluate(e *Entity) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(e)
}

// Require returns a node accepting entities that carry every kind in m; it is
// the node form of Scene.Filter.
func Require(m Mask) QueryNode {
	return newLeafNode(m)
}
