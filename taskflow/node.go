package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import (
	"sync"
	"sync/atomic"

	"github.com/orkestr8/taskgraph/dag"
)

// Producer is satisfied by any node whose task produces an R, regardless
// of that node's own arity. SetParentN methods accept a Producer[AN] for
// slot N, which means a producer of the wrong result type simply fails to
// compile — spec.md's TypeMismatch check, enforced by the type system
// instead of at wiring time.
type Producer[R any] interface {
	dag.Node
	addValueChild(cb func(Result[R])) error
}

// Ordered is satisfied by any node, independent of its result type. It is
// the receiver side of an ordering edge (After).
type Ordered interface {
	dag.Node
	addNoArgChild(cb func())
}

// runtimeNode is the Executor's internal view of a node, independent of
// its arity and result type.
type runtimeNode interface {
	dag.Node
	pendingZero() bool
	dispatchSelf()
	resetNode()
	nodeName() string
	feedCount() int32
	parentTarget() int32
	wiredCount() int32
}

// base holds everything about a node's execution state that does not
// depend on its argument arity: the pending-input counter, the stored
// result, the callback lists fired on completion, and the move-only
// bookkeeping. Each NodeK embeds a base[R] and layers typed argument
// slots and a run method on top of it.
type base[R any] struct {
	mu sync.Mutex

	key      dag.NodeKey
	name     string
	executor *Executor

	pending atomic.Int32
	parentN int32 // static target pending resets to

	// fed counts this cycle's FeedN calls, separately from pending: it is
	// read by Executor.reachable to tell a manually-fed slot apart from
	// one that was never wired at all, without racing the pool goroutines
	// that drive pending down as the real graph runs.
	fed atomic.Int32

	// wired counts actual SetParentN/After calls made on this node. Unlike
	// counting distinct graph predecessors, this still comes out right
	// when two slots are wired to the same parent (the underlying graph
	// only keeps one edge for that pair). Set once during wiring and never
	// reset: unlike fed, it does not need to be redone after Reset.
	wired atomic.Int32

	dispatched atomic.Bool

	moveOnly   bool
	outputFlag bool
	hasResult  bool
	result     Result[R]

	valueCbs []func(Result[R])
	noArgCbs []func()

	dispatch func()
}

func newBase[R any](b *base[R], ex *Executor, name string, arity int32) {
	b.key = ex.nextKey()
	b.name = name
	b.executor = ex
	b.parentN = arity
	b.moveOnly = isNonCopyable[R]()
	b.pending.Store(arity)
}

// Key implements dag.Node.
func (b *base[R]) Key() dag.NodeKey { return b.key }

func (b *base[R]) nodeName() string { return b.name }

func (b *base[R]) pendingZero() bool { return b.pending.Load() == 0 }

// feedCount reports how many FeedN calls this node has received since its
// last reset.
func (b *base[R]) feedCount() int32 { return b.fed.Load() }

// wiredCount reports how many SetParentN/After calls this node has had
// made on it. Unlike the graph's Predecessors, it doesn't collapse when
// two slots happen to be wired to the same parent.
func (b *base[R]) wiredCount() int32 { return b.wired.Load() }

// parentTarget reports the static number of slots this node's pending
// counter resets to: its fixed argument arity plus any After dependencies.
func (b *base[R]) parentTarget() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parentN
}

// dispatchSelf pushes the node onto the pool at most once per cycle. A
// node fed or wired to readiness before Execute is called would otherwise
// be pushed twice: once immediately when the last input satisfies it, and
// again by Execute's ready-node scan.
func (b *base[R]) dispatchSelf() {
	if !b.dispatched.CompareAndSwap(false, true) {
		return
	}
	if b.dispatch != nil {
		b.dispatch()
	}
}

// satisfy decrements the pending counter by one and dispatches the node
// once every slot and ordering dependency has arrived.
func (b *base[R]) satisfy() {
	switch n := b.pending.Add(-1); {
	case n == 0:
		b.dispatchSelf()
	case n < 0 && b.executor != nil:
		// A slot fired more times than this node's arity allows — the same
		// slot was wired to both a FeedN call and a SetParentN/After edge.
		b.executor.logger.Warn("duplicate satisfy signal", "name", b.name)
	}
}

// After registers an ordering-only dependency on parent: parent carries
// no value into this node, but this node cannot run until parent has.
func (b *base[R]) After(parent Ordered) {
	b.mu.Lock()
	b.parentN++
	b.mu.Unlock()
	b.pending.Add(1)
	b.wired.Add(1)

	parent.addNoArgChild(func() { b.satisfy() })
	if b.executor != nil {
		b.executor.graph.Associate(parent, b, dag.OrderEdge, 0)
	}
}

// MarkAsOutput requests that this node's result be retained for Collect
// even if it would otherwise be handed off to a move-only child.
func (b *base[R]) MarkAsOutput() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.moveOnly && len(b.valueCbs) > 0 {
		return ErrOutputConflict
	}
	b.outputFlag = true
	return nil
}

// Collect returns the node's retained result. It fails with ErrNoResult
// if the node hasn't run yet, or if its (move-only) result was handed off
// to a single downstream child instead of being retained.
func (b *base[R]) Collect() (R, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasResult {
		var zero R
		return zero, ErrNoResult
	}
	return b.result.Value, b.result.Err
}

func (b *base[R]) addValueChild(cb func(Result[R])) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.moveOnly {
		if b.outputFlag {
			return ErrOutputConflict
		}
		if len(b.valueCbs) >= 1 {
			return ErrFanOutViolation
		}
	}
	b.valueCbs = append(b.valueCbs, cb)
	return nil
}

func (b *base[R]) addNoArgChild(cb func()) {
	b.mu.Lock()
	b.noArgCbs = append(b.noArgCbs, cb)
	b.mu.Unlock()
}

// deliver publishes a finished Result to every wired child and to the
// node's own retained storage, following the copyable/move-only
// preservation rules, then tells the executor this node is done.
func (b *base[R]) deliver(res Result[R]) {
	b.mu.Lock()
	cbs := append([]func(Result[R]){}, b.valueCbs...)
	noArgs := append([]func(){}, b.noArgCbs...)
	moveOnly := b.moveOnly
	b.mu.Unlock()

	switch {
	case !moveOnly:
		b.mu.Lock()
		b.result, b.hasResult = res, true
		b.mu.Unlock()
		for _, cb := range cbs {
			cb(res)
		}
	case len(cbs) == 1:
		// Move-only with exactly one value-carrying child: the result is
		// handed off, not retained. Wiring rules above guarantee this
		// node was never also marked as an output.
		cbs[0](res)
		b.mu.Lock()
		b.hasResult = false
		b.mu.Unlock()
	default:
		// Move-only with no value-carrying child: retained for Collect.
		b.mu.Lock()
		b.result, b.hasResult = res, true
		b.mu.Unlock()
	}

	for _, cb := range noArgs {
		cb()
	}

	if b.executor != nil {
		b.executor.nodeDone(res.Err)
	}
}

// reset restores pending to its static target and clears any retained
// result, in preparation for a second Execute call.
func (b *base[R]) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending.Store(b.parentN)
	b.hasResult = false
	var zero Result[R]
	b.result = zero
	b.dispatched.Store(false)
	b.fed.Store(0)
}
