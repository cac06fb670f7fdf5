// Package errors provides structured error reporting for arbor.
//
// Animation code never returns errors from user callbacks to its caller.
// Failures are captured at the point they occur and sent to the process-wide
// [Handler], which logs them by default.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a settings load or reload failure.
	KindConfig
	// KindProgress indicates invalid progress math input, such as slice bounds.
	KindProgress
	// KindSchedule indicates a scheduling failure, such as a nil animation.
	KindSchedule
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindProgress:
		return "progress"
	case KindSchedule:
		return "schedule"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by reported values.
var (
	ErrInvalidSlice = errors.New("invalid slice bounds")
	ErrNilAnimation = errors.New("nil animation")
)

// Error represents a structured, non-fatal error.
type Error struct {
	// Op is the operation that failed (e.g., "animation.Status.Slice").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
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
	// Op is the operation that panicked (e.g., "animation.Animation.Run").
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

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Handler receives errors reported by arbor.
type Handler interface {
	// HandleError is called when a non-fatal error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
