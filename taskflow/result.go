package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

// Result is the sum-type redesign spec.md's error-handling section
// recommends: a task's outcome is always either a value or an error,
// never a panic that escapes to the pool. A Result with a non-nil Err
// flowing into a downstream slot poisons that node — its task is skipped
// and the same error propagates further downstream — instead of leaving
// the executor waiting forever on a node that never signals completion.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps a propagated error.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Unit stands in for "no return value" (spec.md's void-returning task),
// since a Go type parameter cannot be instantiated with void. Nodes built
// from callables with no return value are NodeK[..., Unit].
type Unit struct{}

// NonCopyable opts a result type into move-only handling: a node whose R
// implements NonCopyable may have at most one value-carrying downstream
// child (spec.md's fan-out rule), and its stored result is handed off to
// that child rather than retained, unless no such child was ever wired.
type NonCopyable interface {
	moveOnly()
}

func isNonCopyable[R any]() bool {
	var zero R
	_, ok := any(zero).(NonCopyable)
	return ok
}

// Unique is a move-only handle, grounded on spec.md's end-to-end scenario
// 4 ("parent produces a unique-owning handle ... child sets it and
// returns it"). Go has no linear types, so Unique only documents intent:
// callers are expected to treat a Unique[T] as consumed once it has been
// handed to a single downstream node.
type Unique[T any] struct {
	v T
}

// NewUnique wraps v as a move-only handle.
func NewUnique[T any](v T) Unique[T] { return Unique[T]{v: v} }

// Get returns the wrapped value.
func (u Unique[T]) Get() T { return u.v }

// Set returns a Unique wrapping v, standing in for "mutate in place and
// hand back" since Go values are not addressable through an interface
// the way a C++ move-only handle is.
func (u Unique[T]) Set(v T) Unique[T] { u.v = v; return u }

func (Unique[T]) moveOnly() {}
