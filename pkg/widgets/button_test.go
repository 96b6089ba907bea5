package widgets_test

import (
	"testing"

	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	panestest "github.com/go-drift/panes/pkg/testing"
	"github.com/go-drift/panes/pkg/widgets"
)

func closeButton(state *widgets.ButtonState) widgets.Button[string] {
	return widgets.NewButton(state, widgets.Text[string]{Content: "Close"}.Element()).OnPress("close")
}

func TestButton_Layout(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	tester.PumpWidget(closeButton(nil).Element())

	l := tester.Layout()
	// "Close" measures 35x13 with the bundled face, plus 5 padding per side.
	if got := l.Bounds(); got != graphics.RectFromLTWH(0, 0, 45, 23) {
		t.Errorf("unexpected button bounds %v", got)
	}
	content, ok := l.Child(0)
	if !ok {
		t.Fatal("expected content layout")
	}
	if got := content.Position(); got != (graphics.Offset{X: 5, Y: 5}) {
		t.Errorf("expected content at padding offset, got %v", got)
	}
}

func TestButton_Click(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	state := &widgets.ButtonState{}
	tester.PumpWidget(closeButton(state).Element())

	tester.PressAt(graphics.Offset{X: 10, Y: 10})
	if !state.IsPressed() {
		t.Error("expected pressed after press inside")
	}
	tester.Release()
	if got := tester.TakeMessages(); len(got) != 1 || got[0] != "close" {
		t.Errorf("expected [close], got %v", got)
	}
	if state.IsPressed() {
		t.Error("expected release to clear pressed")
	}
}

func TestButton_ReleaseOutsideCancels(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	tester.PumpWidget(closeButton(nil).Element())

	tester.DragFrom(graphics.Offset{X: 10, Y: 10}, graphics.Offset{X: 100})
	if got := tester.Messages(); len(got) != 0 {
		t.Errorf("expected no click, got %v", got)
	}
}

func TestButton_DisabledIgnoresInput(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	state := &widgets.ButtonState{}
	tester.PumpWidget(widgets.NewButton(state, widgets.Text[string]{Content: "Off"}.Element()).Element())

	tester.TapAt(graphics.Offset{X: 5, Y: 5})
	if got := tester.Messages(); len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
	if state.IsPressed() {
		t.Error("expected disabled button to stay released")
	}
}

func TestButton_DrawsContentInsideChrome(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	tester.PumpWidget(closeButton(nil).WithWidth(layout.Units(80)).Element())

	ops := tester.Draw()
	if len(ops) != 2 || ops[0].Op != "button" || ops[1].Op != "text" {
		t.Fatalf("expected button then text, got %+v", ops)
	}
	if ops[0].Bounds.Width() != 80 {
		t.Errorf("expected fixed width 80, got %v", ops[0].Bounds.Width())
	}
}
