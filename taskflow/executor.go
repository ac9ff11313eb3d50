package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/orkestr8/taskgraph/dag"
)

// Option configures an Executor at construction time.
type Option func(*Executor)

// WithConcurrency sets the number of tasks the executor's pool may run
// at once. The default is 1.
func WithConcurrency(n int) Option {
	return func(e *Executor) { e.concurrency = n }
}

// WithQueueCapacity sets how many dispatched-but-not-yet-running tasks
// may sit in the pool's queue before Push blocks. Defaults to
// concurrency.
func WithQueueCapacity(n int) Option {
	return func(e *Executor) { e.queueCapacity = n }
}

// WithLogger installs l in place of the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// Executor owns a graph of typed task nodes and the worker pool that
// runs them. It is the analogue of the original design's GraphEx: nodes
// are registered against it via the MakeNodeN factory functions, wired
// together with SetParentN/After/Feed calls, and then driven to
// completion with a single Execute call.
type Executor struct {
	mu            sync.Mutex
	concurrency   int
	queueCapacity int
	logger        Logger

	graph *dag.Graph
	pool  *Pool
	nodes []runtimeNode

	nextKeyVal int64

	wg         sync.WaitGroup
	executed   bool
	firstPanic atomic.Pointer[PanicError]
}

// NewExecutor builds an Executor and starts its worker pool. Nodes are
// registered against it by passing it to the package's MakeNodeN
// functions.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		concurrency: 1,
		graph:       dag.New(),
		logger:      NoLogging,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.concurrency <= 0 {
		e.concurrency = 1
	}
	if e.queueCapacity <= 0 {
		e.queueCapacity = e.concurrency
	}
	e.pool = NewPool(e.concurrency, e.queueCapacity)
	return e
}

func (e *Executor) nextKey() dag.NodeKey {
	return dag.NodeKey(atomic.AddInt64(&e.nextKeyVal, 1))
}

func (e *Executor) register(n runtimeNode) {
	e.mu.Lock()
	e.nodes = append(e.nodes, n)
	e.mu.Unlock()
	// The node owes the executor's WaitGroup exactly one completion signal
	// for the cycle it was created into. Counting it here, rather than in
	// Execute, means a node fed or wired to readiness before Execute is
	// ever called (it may dispatch itself immediately — see
	// base.dispatchSelf) still has a matching Add in place before it can
	// possibly call Done.
	e.wg.Add(1)
	if e.graph.Has(n) {
		e.logger.Warn("duplicate node key, ignoring re-registration", "name", n.nodeName())
	}
	// Add never fails here otherwise: the key just came from nextKey and
	// cannot already be registered under a different node.
	_ = e.graph.Add(n)
}

// RegisterInputNode is a no-op convenience kept for callers porting code
// that expects to mark certain nodes as graph inputs explicitly; roots
// are discovered automatically from the pending-count of every
// registered node at Execute time.
func (e *Executor) RegisterInputNode(dag.Node) {}

// HasCycle reports whether the wired graph contains a cycle.
func (e *Executor) HasCycle() bool { return e.graph.HasCycle() }

// Execute runs every registered node to completion, respecting data and
// ordering dependencies, and returns the first panic observed by any
// task (wrapped in a *PanicError), or nil. It fails fast with
// ErrCycleDetected if the wired graph has a cycle, and with
// ErrAlreadyExecuted if called again without an intervening Reset.
func (e *Executor) Execute() error {
	e.mu.Lock()
	if e.executed {
		e.mu.Unlock()
		return ErrAlreadyExecuted
	}
	if e.graph.HasCycle() {
		e.mu.Unlock()
		return ErrCycleDetected
	}
	e.executed = true
	nodes := append([]runtimeNode{}, e.nodes...)
	e.mu.Unlock()

	e.logger.Log("executing", "nodes", len(nodes))

	good := e.reachable(nodes)
	for _, n := range nodes {
		if !good[n.Key()] {
			e.logger.Warn("node has an unfed input slot and can never run, skipping", "name", n.nodeName())
			e.wg.Done()
			continue
		}
		if n.pendingZero() {
			n.dispatchSelf()
		}
	}
	e.wg.Wait()

	if p := e.firstPanic.Load(); p != nil {
		return p
	}
	return nil
}

// reachable reports, for each of nodes, whether it can actually complete
// this cycle: every one of its declared slots has either been fed
// directly or has an actual SetParentN/After call feeding it, and every
// node on the other end of such a call is itself reachable. A node with
// a slot that was never wired and never fed — an abandoned branch — is
// excluded, along with everything that depends on it, the same way a BFS
// seeded from the nodes with no unmet inputs only ever discovers the part
// of the graph that can really run.
//
// Readiness is checked with wiredCount/feedCount/parentTarget rather than
// the live pending counter, since pending is being raced by the pool's
// worker goroutines for any node dispatched before Execute was even
// called. Topological ordering for the walk still comes from the graph's
// distinct predecessor/successor edges; wiredCount, not edge count, is
// what decides resolvability, since two slots wired to the same parent
// only produce one edge but must still count as two wirings.
func (e *Executor) reachable(nodes []runtimeNode) map[dag.NodeKey]bool {
	good := make(map[dag.NodeKey]bool, len(nodes))
	remaining := make(map[dag.NodeKey]int, len(nodes))
	queue := make([]runtimeNode, 0, len(nodes))

	resolvable := func(n runtimeNode) bool {
		return n.feedCount()+n.wiredCount() >= n.parentTarget()
	}

	for _, n := range nodes {
		remaining[n.Key()] = len(e.graph.Predecessors(n))
		if remaining[n.Key()] == 0 && resolvable(n) {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if good[n.Key()] {
			continue
		}
		good[n.Key()] = true
		for _, succ := range e.graph.Successors(n) {
			child, ok := succ.(runtimeNode)
			if !ok {
				continue
			}
			remaining[child.Key()]--
			if !good[child.Key()] && remaining[child.Key()] <= 0 && resolvable(child) {
				queue = append(queue, child)
			}
		}
	}
	return good
}

// Reset restores every node's pending counter and retained result to its
// pre-Execute state, so the same graph can be run again (the manual-feed
// scenario: feed, execute, reset, feed again, execute again).
func (e *Executor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, n := range e.nodes {
		n.resetNode()
	}
	// Re-arm one completion signal per node for the next cycle. Safe to
	// reuse the WaitGroup this way: Wait returned (count is zero) before
	// Reset can run, and nothing calls Wait again until the next Execute.
	e.wg.Add(len(e.nodes))
	e.executed = false
	e.firstPanic.Store(nil)
}

// Close stops the executor's worker pool, waiting for any in-flight task
// to finish.
func (e *Executor) Close() { e.pool.Stop(true) }

func (e *Executor) nodeDone(err error) {
	var pe *PanicError
	if errors.As(err, &pe) {
		e.firstPanic.CompareAndSwap(nil, pe)
	}
	e.wg.Done()
}
