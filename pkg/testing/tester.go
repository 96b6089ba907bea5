package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/engine"
	"github.com/go-drift/panes/pkg/errors"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/renderer"
	"github.com/go-drift/panes/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// Tester provides isolated widget testing without real rendering. It runs
// the same layout, event and draw walks as engine.Root against a recording
// renderer.
type Tester[M any] struct {
	root      *engine.Root[M]
	element   core.Element[M]
	mounted   bool
	size      graphics.Size
	recorder  *renderer.Recorder
	renderer  core.Renderer
	clipboard core.Clipboard
	cursor    graphics.Offset
	messages  core.Messages[M]
	errors    *ErrorRecorder
}

// NewTester creates a tester with the default surface size and a recorder
// using the light theme. Call Cleanup when done, or use NewTesterWithT.
func NewTester[M any]() *Tester[M] {
	rec := renderer.NewRecorder(nil)
	t := &Tester[M]{
		root:     engine.NewRoot[M](nil),
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		recorder: rec,
		renderer: rec,
		errors:   &ErrorRecorder{},
	}
	errors.SetHandler(t.errors)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT[M any](t testing.TB) *Tester[M] {
	tester := NewTester[M]()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler.
func (t *Tester[M]) Cleanup() {
	errors.SetHandler(nil)
}

// SetSize sets the logical surface size. Takes effect on the next Pump.
func (t *Tester[M]) SetSize(size graphics.Size) {
	t.size = size
}

// SetTheme replaces the recorder with one using td.
func (t *Tester[M]) SetTheme(td *theme.ThemeData) {
	t.recorder = renderer.NewRecorder(td)
	t.renderer = t.recorder
}

// SetRenderer replaces the renderer widgets are measured and drawn with.
// Draw output is only recorded when r is the tester's Recorder.
func (t *Tester[M]) SetRenderer(r core.Renderer) {
	t.renderer = r
}

// SetClipboard sets the clipboard handed to widgets.
func (t *Tester[M]) SetClipboard(c core.Clipboard) {
	t.clipboard = c
}

// PumpWidget mounts root and lays it out.
func (t *Tester[M]) PumpWidget(root core.Element[M]) error {
	if root.IsZero() {
		return fmt.Errorf("PumpWidget: empty element")
	}
	t.element = root
	t.mounted = true
	return t.Pump()
}

// Pump lays the mounted tree out again, picking up size and renderer changes.
func (t *Tester[M]) Pump() error {
	if !t.mounted {
		return fmt.Errorf("no widget mounted")
	}
	t.root.Build(t.element, t.renderer, t.size)
	return nil
}

// Layout returns the current layout of the mounted tree.
func (t *Tester[M]) Layout() layout.Layout {
	return t.root.Layout()
}

// Cursor returns the last cursor position sent.
func (t *Tester[M]) Cursor() graphics.Offset {
	return t.cursor
}

// Send dispatches ev at the current cursor position.
func (t *Tester[M]) Send(ev event.Event) error {
	return t.dispatch(event.Step{Event: ev, Cursor: t.cursor})
}

// Replay dispatches steps in order, moving the cursor with each.
func (t *Tester[M]) Replay(steps []event.Step) error {
	for _, step := range steps {
		if err := t.dispatch(step); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tester[M]) dispatch(step event.Step) error {
	if !t.mounted {
		return fmt.Errorf("no widget mounted")
	}
	t.cursor = step.Cursor
	for _, msg := range t.root.Update([]event.Step{step}, t.renderer, t.clipboard) {
		t.messages.Push(msg)
	}
	return nil
}

// Messages returns every message produced since the last TakeMessages.
func (t *Tester[M]) Messages() []M {
	return t.messages.All()
}

// TakeMessages returns the produced messages and clears them.
func (t *Tester[M]) TakeMessages() []M {
	return t.messages.Drain()
}

// Draw paints the mounted tree at the current cursor and returns the
// recorded operations.
func (t *Tester[M]) Draw() []renderer.Op {
	t.recorder.Reset()
	t.root.Draw(t.renderer, t.cursor)
	return t.recorder.Ops()
}

// Recorder returns the recording renderer.
func (t *Tester[M]) Recorder() *renderer.Recorder {
	return t.recorder
}

// Errors returns the widget errors reported since the tester was created.
func (t *Tester[M]) Errors() []*errors.WidgetError {
	return t.errors.Errors
}

// ErrorRecorder is an errors.ErrorHandler that keeps what it is handed.
type ErrorRecorder struct {
	Errors []*errors.WidgetError
	Panics []*errors.PanicError
}

func (r *ErrorRecorder) HandleError(err *errors.WidgetError) {
	r.Errors = append(r.Errors, err)
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.Panics = append(r.Panics, err)
}
