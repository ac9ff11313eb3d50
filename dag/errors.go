package dag // import "github.com/orkestr8/taskgraph/dag"

import (
	"fmt"
)

// ErrDuplicateKey is returned by Graph.Add when a Node's key is already
// registered.
type ErrDuplicateKey struct {
	Node
}

func (e ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate node key: %v", e.Node.Key())
}

// ErrNoSuchNode is returned by Graph.Associate when either endpoint of an
// edge has not been added to the graph.
type ErrNoSuchNode struct {
	Node
	Context string
}

func (e ErrNoSuchNode) Error() string {
	return fmt.Sprintf("missing %s node: %v", e.Context, e.Node.Key())
}

// ErrCycleDetected is returned by Graph.Validate when the edge set
// contains a directed cycle.
type ErrCycleDetected struct {
	Cycle []Node
}

func (e ErrCycleDetected) Error() string {
	return fmt.Sprintf("cycle detected across %d nodes", len(e.Cycle))
}
