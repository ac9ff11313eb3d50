package dag // import "github.com/orkestr8/taskgraph/dag"

import (
	"fmt"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// DotOptions customizes the rendered graph name and per-node labels.
type DotOptions struct {
	Name   string
	Labels map[NodeKey]string
}

type dotAttrs map[string]string

func (a dotAttrs) Attributes() []encoding.Attribute {
	out := make([]encoding.Attribute, 0, len(a))
	for k, v := range a {
		out = append(out, encoding.Attribute{Key: k, Value: v})
	}
	return out
}

// dotNode wraps a gonum node with a label attribute, so dot.Marshal's
// per-node attribute pass picks up the dag.NodeKey (or caller-supplied
// label) instead of the bare numeric id.
type dotNode struct {
	gonum.Node
	label string
}

func (n dotNode) Attributes() []encoding.Attribute {
	if n.label == "" {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

// dotView adapts a Graph's underlying gonum graph with the DOTID and
// DOTAttributers hooks dot.Marshal looks for.
type dotView struct {
	gonum.Graph
	name   string
	byID   map[int64]NodeKey
	labels map[NodeKey]string
}

func (d *dotView) DOTID() string {
	if d.name == "" {
		return "G"
	}
	return d.name
}

func (d *dotView) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return dotAttrs{}, dotAttrs{"shape": "box"}, dotAttrs{}
}

func (d *dotView) Node(id int64) gonum.Node {
	gn := d.Graph.Node(id)
	if gn == nil {
		return nil
	}
	key, has := d.byID[id]
	if !has {
		return dotNode{Node: gn, label: fmt.Sprintf("%d", id)}
	}
	if label, has := d.labels[key]; has {
		return dotNode{Node: gn, label: label}
	}
	return dotNode{Node: gn, label: fmt.Sprintf("%d", key)}
}

// EncodeDOT renders g as Graphviz DOT source, labeling nodes with
// opts.Labels when provided and falling back to the node's NodeKey
// otherwise. It is a debugging aid carried over from the teacher's own
// dot.go, not part of the core execution path.
func EncodeDOT(g *Graph, opts DotOptions) ([]byte, error) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	view := &dotView{
		Graph:  g.built,
		name:   opts.Name,
		byID:   g.byID,
		labels: opts.Labels,
	}
	return dot.Marshal(view, view.DOTID(), "", "  ")
}
