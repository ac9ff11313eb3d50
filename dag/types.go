// Package dag provides a small directed-graph abstraction used by
// package taskflow to validate the dependency wiring between task nodes
// before a run starts. It knows nothing about tasks, arguments or
// results: a Node here is only ever a key.
package dag // import "github.com/orkestr8/taskgraph/dag"

import "fmt"

// NodeKey identifies a Node within a Graph. taskflow's task nodes use a
// monotonic counter stamped at construction time as their key.
type NodeKey int64

// Node is the identity a participant in a Graph must provide. taskflow's
// task nodes satisfy this trivially.
type Node interface {
	Key() NodeKey
}

// EdgeKind distinguishes a data edge (one that carries a value into a
// specific argument slot) from a pure ordering edge.
type EdgeKind int

const (
	// DataEdge carries the parent's result into a numbered argument slot.
	DataEdge EdgeKind = iota
	// OrderEdge expresses "child may not start before parent finishes"
	// without passing a value.
	OrderEdge
)

func (k EdgeKind) String() string {
	switch k {
	case DataEdge:
		return "data"
	case OrderEdge:
		return "order"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Edge is a directed edge between two nodes, annotated with the slot
// number for DataEdge edges (unused for OrderEdge edges).
type Edge struct {
	From Node
	To   Node
	Kind EdgeKind
	Slot int
}
