package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes errors to a zerolog logger.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool

	logger zerolog.Logger
}

// NewLogHandler creates a LogHandler writing to logger. A nil logger writes
// to stderr.
func NewLogHandler(logger *zerolog.Logger) *LogHandler {
	if logger == nil {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return &LogHandler{logger: l}
	}
	return &LogHandler{logger: *logger}
}

// HandleError logs a WidgetError.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Time("at", err.Timestamp)
	if err.Widget != "" {
		ev = ev.Str("widget", err.Widget)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Err(err.Err).Msg("widget error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if err.Dispatch != nil {
		ev = ev.Int("step", err.Dispatch.Step).Str("event", err.Dispatch.Event)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
