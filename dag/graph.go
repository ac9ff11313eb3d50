package dag // import "github.com/orkestr8/taskgraph/dag"

import (
	"sync"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a thread-safe directed graph over Node keys, backed by a
// gonum simple.DirectedGraph. It exists so taskflow can ask "does wiring
// this edge create a cycle" and "what order should I lay nodes out for a
// DOT export" without re-implementing graph algorithms.
type Graph struct {
	lock sync.RWMutex

	built *simple.DirectedGraph
	nodes map[NodeKey]Node
	ids   map[NodeKey]int64
	byID  map[int64]NodeKey
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		built: simple.NewDirectedGraph(),
		nodes: map[NodeKey]Node{},
		ids:   map[NodeKey]int64{},
		byID:  map[int64]NodeKey{},
	}
}

// Add registers n. Re-adding the same key is a no-op so taskflow nodes
// can call Add defensively without tracking whether they already did.
func (g *Graph) Add(n Node) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	k := n.Key()
	if existing, has := g.nodes[k]; has && existing != n {
		return ErrDuplicateKey{Node: n}
	}
	if _, has := g.ids[k]; has {
		return nil
	}

	gn := g.built.NewNode()
	g.built.AddNode(gn)
	g.nodes[k] = n
	g.ids[k] = gn.ID()
	g.byID[gn.ID()] = k
	return nil
}

// Has reports whether n has been added.
func (g *Graph) Has(n Node) bool {
	g.lock.RLock()
	defer g.lock.RUnlock()
	_, has := g.ids[n.Key()]
	return has
}

// Associate wires a directed edge from -> to. Both nodes must already
// have been added. Kind and slot are carried for DOT labeling only; the
// underlying gonum graph only cares about reachability.
func (g *Graph) Associate(from, to Node, kind EdgeKind, slot int) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	fromID, has := g.ids[from.Key()]
	if !has {
		return ErrNoSuchNode{Node: from, Context: "from"}
	}
	toID, has := g.ids[to.Key()]
	if !has {
		return ErrNoSuchNode{Node: to, Context: "to"}
	}

	g.built.SetEdge(simple.Edge{F: simple.Node(fromID), T: simple.Node(toID)})
	return nil
}

// Predecessors returns the direct parents of n — every node with an edge
// into it, regardless of edge kind.
func (g *Graph) Predecessors(n Node) []Node {
	g.lock.RLock()
	defer g.lock.RUnlock()

	id, has := g.ids[n.Key()]
	if !has {
		return nil
	}
	var out []Node
	it := g.built.To(id)
	for it.Next() {
		out = append(out, g.nodes[g.byID[it.Node().ID()]])
	}
	return out
}

// Successors returns the direct children of n — every node n has an edge
// into, regardless of edge kind.
func (g *Graph) Successors(n Node) []Node {
	g.lock.RLock()
	defer g.lock.RUnlock()

	id, has := g.ids[n.Key()]
	if !has {
		return nil
	}
	var out []Node
	it := g.built.From(id)
	for it.Next() {
		out = append(out, g.nodes[g.byID[it.Node().ID()]])
	}
	return out
}

// HasCycle runs gonum's cycle detector over the wired edges. It is the
// load-bearing pre-Execute check spec.md requires: calling Execute on a
// cyclic graph is undefined, so Executor.Execute runs this first.
func (g *Graph) HasCycle() bool {
	g.lock.RLock()
	defer g.lock.RUnlock()

	return len(topo.DirectedCyclesIn(g.built)) > 0
}

// Cycles returns every elementary cycle in the graph, translated back
// into the original Node values, for diagnostics.
func (g *Graph) Cycles() [][]Node {
	g.lock.RLock()
	defer g.lock.RUnlock()

	cycles := topo.DirectedCyclesIn(g.built)
	out := make([][]Node, 0, len(cycles))
	for _, cycle := range cycles {
		path := make([]Node, 0, len(cycle))
		for _, gn := range cycle {
			path = append(path, g.nodes[g.byID[gn.ID()]])
		}
		out = append(out, path)
	}
	return out
}

// TopoSort returns nodes in a valid topological order. It fails iff the
// graph has a cycle.
func (g *Graph) TopoSort() ([]Node, error) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	sorted, err := topo.Sort(g.built)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(sorted))
	for _, gn := range sorted {
		out = append(out, g.nodes[g.byID[gn.ID()]])
	}
	return out, nil
}

// gonumGraph exposes the underlying gonum graph to dot.go without
// widening Graph's public surface.
func (g *Graph) gonumGraph() gonum.Graph {
	return g.built
}
