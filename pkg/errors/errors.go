// Package errors provides structured error reporting for the treeview library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindQuery indicates a domain-model children query failure.
	KindQuery
	// KindCallback indicates an observer callback failure during a drain.
	KindCallback
	// KindBinding indicates a binding consistency violation, such as a node
	// reached through two different parents.
	KindBinding
)

func (k ErrorKind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindCallback:
		return "callback"
	case KindBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the treeview library.
type Error struct {
	// Op is the operation that failed (e.g., "binding.Binding.expand").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "observe.Scheduler.Drain").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// SharedNodeError reports an attempt to materialize a node that is already
// mapped to a visual item. Nodes reachable through more than one parent are
// not supported; the model must be a tree, not a DAG.
type SharedNodeError struct {
	// Label is the display label of the offending node at the time of the
	// attempt, kept for diagnostics only.
	Label string
}

func (e *SharedNodeError) Error() string {
	return fmt.Sprintf("node %q is already bound to an item; shared nodes are not supported", e.Label)
}

// ErrorHandler receives errors reported by the treeview library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
