package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/panes/pkg/event"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = NewLogHandler(nil)
)

// SetHandler installs h for the whole process and returns the handler it
// replaces. A nil h restores a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = NewLogHandler(nil)
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// CurrentHandler returns the installed handler.
func CurrentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and hands it to the installed handler.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err and hands it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Recover reports a panic raised inside op and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("widgets.Row.Draw")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: panicStack()})
	}
}

// RecoverEvent is Recover for event dispatch. The report names the index of
// the step in its batch and the event that was being delivered.
//
//	defer errors.RecoverEvent("engine.Root.Update", i, step.Event)
func RecoverEvent(op string, step int, ev event.Event) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			Dispatch:   &Dispatch{Step: step, Event: event.Describe(ev)},
			StackTrace: panicStack(),
		})
	}
}

// panicStack lists the frames above the recovering function, starting at
// the one that panicked. Runtime frames are left out.
func panicStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			return sb.String()
		}
	}
}
