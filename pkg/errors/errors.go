// Package errors provides structured error reporting for widget trees.
//
// Layout, drawing and event dispatch are total operations, so widgets never
// return errors from them. Problems that a caller should still hear about,
// such as a renderer missing a drawing capability, are reported here and the
// widget carries on with a fallback.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a renderer could not draw or measure a widget.
	KindRender
	// KindLayout indicates a layout tree did not match its widget.
	KindLayout
	// KindConfig indicates a theme or settings problem.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrMissingCapability is wrapped when a renderer does not implement the
// interface a widget needs.
var ErrMissingCapability = errors.New("renderer lacks capability")

// WidgetError represents a structured error raised while handling a widget.
type WidgetError struct {
	// Op is the operation that failed (e.g., "widgets.Slider.Draw").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget kind involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// Dispatch locates a panic inside a batch of events.
type Dispatch struct {
	// Step is the index of the step in its batch.
	Step int
	// Event describes the event, as event.Describe does.
	Event string
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Root.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// Dispatch is set when the panic happened while delivering an event.
	Dispatch *Dispatch
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	var where string
	if e.Op != "" {
		where = " in " + e.Op
	}
	if e.Dispatch != nil {
		where += fmt.Sprintf(" at step %d (%s)", e.Dispatch.Step, e.Dispatch.Event)
	}
	return fmt.Sprintf("panic%s: %v", where, e.Value)
}

// MissingCapability builds a KindRender error for a renderer that does not
// implement capability.
func MissingCapability(op, widget, capability string, renderer any) *WidgetError {
	return &WidgetError{
		Op:     op,
		Kind:   KindRender,
		Widget: widget,
		Err:    fmt.Errorf("%w: %T does not implement %s", ErrMissingCapability, renderer, capability),
	}
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
