package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import "fmt"

// Logger is the same minimal shape the teacher's own flow package used
// internally rather than pulling in a structured logging library: two
// methods, variadic key/value pairs, no levels beyond info/warn.
type Logger interface {
	Log(msg string, kv ...interface{})
	Warn(msg string, kv ...interface{})
}

type nologging struct{}

func (nologging) Log(string, ...interface{})  {}
func (nologging) Warn(string, ...interface{}) {}

// NoLogging is a Logger that discards everything. It is the Executor
// default.
var NoLogging Logger = nologging{}

// stdLogger writes to stdout via fmt.Println, same as the teacher's
// println-based logger.
type stdLogger struct{}

func (stdLogger) Log(msg string, kv ...interface{}) {
	fmt.Println(append([]interface{}{"[taskflow]", msg}, kv...)...)
}

func (stdLogger) Warn(msg string, kv ...interface{}) {
	fmt.Println(append([]interface{}{"[taskflow] WARN", msg}, kv...)...)
}

// StdLogger is a Logger that prints to stdout, for callers that want
// visibility without wiring their own Logger implementation.
var StdLogger Logger = stdLogger{}
