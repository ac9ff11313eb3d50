package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import "github.com/orkestr8/taskgraph/dag"

// Node0 is a task of arity zero: it takes no wired inputs and produces
// an R (Unit for a task run purely for its side effect).
type Node0[R any] struct {
	base[R]
	fn func() (R, error)
}

func (n *Node0[R]) callTask() (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Recovered: rec}
		}
	}()
	return n.fn()
}

func (n *Node0[R]) run() {
	v, err := n.callTask()
	n.deliver(Result[R]{Value: v, Err: err})
}

func (n *Node0[R]) resetNode() {
	n.base.reset()
}

// Node1 is a task of arity one.
type Node1[A0, R any] struct {
	base[R]
	fn   func(A0) (R, error)
	arg0 Result[A0]
}

// SetParent0 wires parent's result into slot 0. It does not increment
// the pending counter: slot 0 was already counted in the node's initial
// arity.
func (n *Node1[A0, R]) SetParent0(parent Producer[A0]) error {
	if err := parent.addValueChild(func(res Result[A0]) {
		n.arg0 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 0)
	}
	return nil
}

// Feed0 supplies slot 0's value directly, bypassing wiring. Used for
// manually-fed root nodes.
func (n *Node1[A0, R]) Feed0(value A0) {
	n.arg0 = Ok(value)
	n.fed.Add(1)
	n.satisfy()
}

func (n *Node1[A0, R]) callTask() (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Recovered: rec}
		}
	}()
	return n.fn(n.arg0.Value)
}

func (n *Node1[A0, R]) run() {
	if n.arg0.Err != nil {
		n.deliver(Result[R]{Err: n.arg0.Err})
		return
	}
	v, err := n.callTask()
	n.deliver(Result[R]{Value: v, Err: err})
}

func (n *Node1[A0, R]) resetNode() {
	var zero Result[A0]
	n.arg0 = zero
	n.base.reset()
}

// Node2 is a task of arity two.
type Node2[A0, A1, R any] struct {
	base[R]
	fn   func(A0, A1) (R, error)
	arg0 Result[A0]
	arg1 Result[A1]
}

func (n *Node2[A0, A1, R]) SetParent0(parent Producer[A0]) error {
	if err := parent.addValueChild(func(res Result[A0]) {
		n.arg0 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 0)
	}
	return nil
}

func (n *Node2[A0, A1, R]) SetParent1(parent Producer[A1]) error {
	if err := parent.addValueChild(func(res Result[A1]) {
		n.arg1 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 1)
	}
	return nil
}

func (n *Node2[A0, A1, R]) Feed0(value A0) { n.arg0 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node2[A0, A1, R]) Feed1(value A1) { n.arg1 = Ok(value); n.fed.Add(1); n.satisfy() }

func (n *Node2[A0, A1, R]) callTask() (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Recovered: rec}
		}
	}()
	return n.fn(n.arg0.Value, n.arg1.Value)
}

func (n *Node2[A0, A1, R]) run() {
	if n.arg0.Err != nil {
		n.deliver(Result[R]{Err: n.arg0.Err})
		return
	}
	if n.arg1.Err != nil {
		n.deliver(Result[R]{Err: n.arg1.Err})
		return
	}
	v, err := n.callTask()
	n.deliver(Result[R]{Value: v, Err: err})
}

func (n *Node2[A0, A1, R]) resetNode() {
	var z0 Result[A0]
	var z1 Result[A1]
	n.arg0, n.arg1 = z0, z1
	n.base.reset()
}

// Node3 is a task of arity three.
type Node3[A0, A1, A2, R any] struct {
	base[R]
	fn   func(A0, A1, A2) (R, error)
	arg0 Result[A0]
	arg1 Result[A1]
	arg2 Result[A2]
}

func (n *Node3[A0, A1, A2, R]) SetParent0(parent Producer[A0]) error {
	if err := parent.addValueChild(func(res Result[A0]) {
		n.arg0 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 0)
	}
	return nil
}

func (n *Node3[A0, A1, A2, R]) SetParent1(parent Producer[A1]) error {
	if err := parent.addValueChild(func(res Result[A1]) {
		n.arg1 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 1)
	}
	return nil
}

func (n *Node3[A0, A1, A2, R]) SetParent2(parent Producer[A2]) error {
	if err := parent.addValueChild(func(res Result[A2]) {
		n.arg2 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 2)
	}
	return nil
}

func (n *Node3[A0, A1, A2, R]) Feed0(value A0) { n.arg0 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node3[A0, A1, A2, R]) Feed1(value A1) { n.arg1 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node3[A0, A1, A2, R]) Feed2(value A2) { n.arg2 = Ok(value); n.fed.Add(1); n.satisfy() }

func (n *Node3[A0, A1, A2, R]) callTask() (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Recovered: rec}
		}
	}()
	return n.fn(n.arg0.Value, n.arg1.Value, n.arg2.Value)
}

func (n *Node3[A0, A1, A2, R]) run() {
	if n.arg0.Err != nil {
		n.deliver(Result[R]{Err: n.arg0.Err})
		return
	}
	if n.arg1.Err != nil {
		n.deliver(Result[R]{Err: n.arg1.Err})
		return
	}
	if n.arg2.Err != nil {
		n.deliver(Result[R]{Err: n.arg2.Err})
		return
	}
	v, err := n.callTask()
	n.deliver(Result[R]{Value: v, Err: err})
}

func (n *Node3[A0, A1, A2, R]) resetNode() {
	var z0 Result[A0]
	var z1 Result[A1]
	var z2 Result[A2]
	n.arg0, n.arg1, n.arg2 = z0, z1, z2
	n.base.reset()
}

// Node4 is a task of arity four, the maximum fixed arity this package
// supports (spec.md's scenarios never exceed it; a task needing more
// inputs should gather them into a struct and use Node1).
type Node4[A0, A1, A2, A3, R any] struct {
	base[R]
	fn   func(A0, A1, A2, A3) (R, error)
	arg0 Result[A0]
	arg1 Result[A1]
	arg2 Result[A2]
	arg3 Result[A3]
}

func (n *Node4[A0, A1, A2, A3, R]) SetParent0(parent Producer[A0]) error {
	if err := parent.addValueChild(func(res Result[A0]) {
		n.arg0 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 0)
	}
	return nil
}

func (n *Node4[A0, A1, A2, A3, R]) SetParent1(parent Producer[A1]) error {
	if err := parent.addValueChild(func(res Result[A1]) {
		n.arg1 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 1)
	}
	return nil
}

func (n *Node4[A0, A1, A2, A3, R]) SetParent2(parent Producer[A2]) error {
	if err := parent.addValueChild(func(res Result[A2]) {
		n.arg2 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 2)
	}
	return nil
}

func (n *Node4[A0, A1, A2, A3, R]) SetParent3(parent Producer[A3]) error {
	if err := parent.addValueChild(func(res Result[A3]) {
		n.arg3 = res
		n.satisfy()
	}); err != nil {
		return err
	}
	n.wired.Add(1)
	if n.executor != nil {
		return n.executor.graph.Associate(parent, n, dag.DataEdge, 3)
	}
	return nil
}

func (n *Node4[A0, A1, A2, A3, R]) Feed0(value A0) { n.arg0 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node4[A0, A1, A2, A3, R]) Feed1(value A1) { n.arg1 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node4[A0, A1, A2, A3, R]) Feed2(value A2) { n.arg2 = Ok(value); n.fed.Add(1); n.satisfy() }
func (n *Node4[A0, A1, A2, A3, R]) Feed3(value A3) { n.arg3 = Ok(value); n.fed.Add(1); n.satisfy() }

func (n *Node4[A0, A1, A2, A3, R]) callTask() (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Recovered: rec}
		}
	}()
	return n.fn(n.arg0.Value, n.arg1.Value, n.arg2.Value, n.arg3.Value)
}

func (n *Node4[A0, A1, A2, A3, R]) run() {
	if n.arg0.Err != nil {
		n.deliver(Result[R]{Err: n.arg0.Err})
		return
	}
	if n.arg1.Err != nil {
		n.deliver(Result[R]{Err: n.arg1.Err})
		return
	}
	if n.arg2.Err != nil {
		n.deliver(Result[R]{Err: n.arg2.Err})
		return
	}
	if n.arg3.Err != nil {
		n.deliver(Result[R]{Err: n.arg3.Err})
		return
	}
	v, err := n.callTask()
	n.deliver(Result[R]{Value: v, Err: err})
}

func (n *Node4[A0, A1, A2, A3, R]) resetNode() {
	var z0 Result[A0]
	var z1 Result[A1]
	var z2 Result[A2]
	var z3 Result[A3]
	n.arg0, n.arg1, n.arg2, n.arg3 = z0, z1, z2, z3
	n.base.reset()
}
