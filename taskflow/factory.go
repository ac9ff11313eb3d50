package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

// Go methods cannot introduce type parameters beyond their receiver's,
// so node construction is a set of free generic functions rather than
// methods on Executor: MakeNodeN takes the executor as its first
// argument and returns a *NodeN[..., R] typed for whatever R the
// supplied callable produces.

// MakeNode0 registers a zero-argument task against ex.
func MakeNode0[R any](ex *Executor, name string, fn func() (R, error)) *Node0[R] {
	n := &Node0[R]{fn: fn}
	newBase[R](&n.base, ex, name, 0)
	n.dispatch = func() { ex.pool.Push(n.run) }
	ex.register(n)
	return n
}

// MakeNode1 registers a one-argument task against ex.
func MakeNode1[A0, R any](ex *Executor, name string, fn func(A0) (R, error)) *Node1[A0, R] {
	n := &Node1[A0, R]{fn: fn}
	newBase[R](&n.base, ex, name, 1)
	n.dispatch = func() { ex.pool.Push(n.run) }
	ex.register(n)
	return n
}

// MakeNode2 registers a two-argument task against ex.
func MakeNode2[A0, A1, R any](ex *Executor, name string, fn func(A0, A1) (R, error)) *Node2[A0, A1, R] {
	n := &Node2[A0, A1, R]{fn: fn}
	newBase[R](&n.base, ex, name, 2)
	n.dispatch = func() { ex.pool.Push(n.run) }
	ex.register(n)
	return n
}

// MakeNode3 registers a three-argument task against ex.
func MakeNode3[A0, A1, A2, R any](ex *Executor, name string, fn func(A0, A1, A2) (R, error)) *Node3[A0, A1, A2, R] {
	n := &Node3[A0, A1, A2, R]{fn: fn}
	newBase[R](&n.base, ex, name, 3)
	n.dispatch = func() { ex.pool.Push(n.run) }
	ex.register(n)
	return n
}

// MakeNode4 registers a four-argument task against ex.
func MakeNode4[A0, A1, A2, A3, R any](ex *Executor, name string, fn func(A0, A1, A2, A3) (R, error)) *Node4[A0, A1, A2, A3, R] {
	n := &Node4[A0, A1, A2, A3, R]{fn: fn}
	newBase[R](&n.base, ex, name, 4)
	n.dispatch = func() { ex.pool.Push(n.run) }
	ex.register(n)
	return n
}

// MakeTask0 registers a zero-argument, error-only callable (no return
// value) against ex, modeled as a Node0[Unit].
func MakeTask0(ex *Executor, name string, fn func() error) *Node0[Unit] {
	return MakeNode0[Unit](ex, name, func() (Unit, error) { return Unit{}, fn() })
}

// MakeTask1 registers a one-argument, error-only callable against ex.
func MakeTask1[A0 any](ex *Executor, name string, fn func(A0) error) *Node1[A0, Unit] {
	return MakeNode1[A0, Unit](ex, name, func(a0 A0) (Unit, error) { return Unit{}, fn(a0) })
}

// MakeTask2 registers a two-argument, error-only callable against ex.
func MakeTask2[A0, A1 any](ex *Executor, name string, fn func(A0, A1) error) *Node2[A0, A1, Unit] {
	return MakeNode2[A0, A1, Unit](ex, name, func(a0 A0, a1 A1) (Unit, error) { return Unit{}, fn(a0, a1) })
}

// MakeTask3 registers a three-argument, error-only callable against ex.
func MakeTask3[A0, A1, A2 any](ex *Executor, name string, fn func(A0, A1, A2) error) *Node3[A0, A1, A2, Unit] {
	return MakeNode3[A0, A1, A2, Unit](ex, name, func(a0 A0, a1 A1, a2 A2) (Unit, error) { return Unit{}, fn(a0, a1, a2) })
}

// MakeTask4 registers a four-argument, error-only callable against ex.
func MakeTask4[A0, A1, A2, A3 any](ex *Executor, name string, fn func(A0, A1, A2, A3) error) *Node4[A0, A1, A2, A3, Unit] {
	return MakeNode4[A0, A1, A2, A3, Unit](ex, name, func(a0 A0, a1 A1, a2 A2, a3 A3) (Unit, error) { return Unit{}, fn(a0, a1, a2, a3) })
}
