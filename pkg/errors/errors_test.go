package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/panes/pkg/event"
)

func TestWidgetErrorString(t *testing.T) {
	err := &WidgetError{
		Op:   "widgets.Slider.Draw",
		Kind: KindRender,
		Err:  fmt.Errorf("boom"),
	}
	want := "widgets.Slider.Draw [render]: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWidgetErrorWithWidget(t *testing.T) {
	err := MissingCapability("widgets.Slider.Draw", "slider", "widgets.SliderRenderer", struct{}{})
	got := err.Error()
	if !strings.Contains(got, "widget=slider") {
		t.Errorf("error string %q should contain widget", got)
	}
	if !Is(err, ErrMissingCapability) {
		t.Error("expected error to wrap ErrMissingCapability")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRender, "render"},
		{KindLayout, "layout"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "engine.Root.Update"
	want = "panic in engine.Root.Update: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *WidgetError
	handler := &testHandler{
		onError: func(err *WidgetError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	Report(&WidgetError{Op: "test.op", Kind: KindConfig, Err: fmt.Errorf("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	if _, ok := CurrentHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", CurrentHandler())
	}
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	h := &testHandler{}
	prev := SetHandler(h)
	defer SetHandler(prev)

	if got := SetHandler(h); got != ErrorHandler(h) {
		t.Errorf("expected SetHandler to return the installed handler, got %T", got)
	}
}

func TestRecoverEvent(t *testing.T) {
	var captured *PanicError
	defer SetHandler(SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }}))

	func() {
		defer RecoverEvent("engine.Root.Update", 3, event.Pressed(event.ButtonLeft))
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	want := &Dispatch{Step: 3, Event: "button_pressed left"}
	if captured.Dispatch == nil || *captured.Dispatch != *want {
		t.Errorf("expected dispatch %+v, got %+v", want, captured.Dispatch)
	}
	if got, want := captured.Error(), "panic in engine.Root.Update at step 3 (button_pressed left): boom"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.Contains(captured.StackTrace, "runtime.gopanic") {
		t.Errorf("expected runtime frames to be dropped, got %q", captured.StackTrace)
	}
	if !strings.Contains(captured.StackTrace, "TestRecoverEvent") {
		t.Errorf("expected the panicking function in the stack, got %q", captured.StackTrace)
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	called := false
	defer SetHandler(SetHandler(&testHandler{onPanic: func(*PanicError) { called = true }}))

	func() {
		defer Recover("test.quiet")
	}()

	if called {
		t.Error("expected no report without a panic")
	}
}

func TestLogHandlerWritesDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := NewLogHandler(&logger)

	h.HandlePanic(&PanicError{Op: "engine.Root.Update", Value: "boom", Dispatch: &Dispatch{Step: 1, Event: "cursor_moved"}})

	out := buf.String()
	for _, want := range []string{`"step":1`, `"event":"cursor_moved"`, `"value":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestLogHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := NewLogHandler(&logger)

	h.HandleError(&WidgetError{Op: "widgets.Text.Layout", Kind: KindRender, Widget: "text", Err: fmt.Errorf("no fonts")})

	out := buf.String()
	for _, want := range []string{`"op":"widgets.Text.Layout"`, `"kind":"render"`, `"widget":"text"`, `"error":"no fonts"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*WidgetError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *WidgetError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
