package panegrid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/panegrid"
	"github.com/go-drift/panes/pkg/renderer"
	panestest "github.com/go-drift/panes/pkg/testing"
	"github.com/go-drift/panes/pkg/widgets"
)

func button(label, msg string) core.Element[string] {
	return widgets.NewButton(nil, widgets.Text[string]{Content: label}.Element()).OnPress(msg).Element()
}

// controls is two 17x23 buttons four units apart: 38x23 in total.
func controls() core.Element[string] {
	return widgets.RowOf(4, button("_", "minimize"), button("X", "close")).Element()
}

func title(width layout.Length) core.Element[string] {
	return widgets.Text[string]{Content: "Pane 1", WidthPolicy: width}.Element()
}

func lay(bar panegrid.TitleBar[string], maxSize graphics.Size) layout.Layout {
	node := bar.Layout(renderer.NewRecorder(nil), layout.NewLimits(graphics.SizeZero, maxSize))
	return layout.NewLayout(node)
}

type barParts struct {
	Outer, Content, Title, Controls graphics.Rect
}

func partsOf(t *testing.T, l layout.Layout) barParts {
	t.Helper()
	content, ok := l.Child(0)
	if !ok {
		t.Fatal("expected content layout")
	}
	titleLayout, ok := content.Child(0)
	if !ok {
		t.Fatal("expected title layout")
	}
	controlsLayout, ok := content.Child(1)
	if !ok {
		t.Fatal("expected controls layout")
	}
	return barParts{
		Outer:    l.Bounds(),
		Content:  content.Bounds(),
		Title:    titleLayout.Bounds(),
		Controls: controlsLayout.Bounds(),
	}
}

func TestTitleBar_LayoutWithControls(t *testing.T) {
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)
	got := partsOf(t, lay(bar, graphics.Size{Width: 300, Height: 100}))

	want := barParts{
		Outer:    graphics.RectFromLTWH(0, 0, 300, 33),
		Content:  graphics.RectFromLTWH(0, 0, 290, 23),
		Title:    graphics.RectFromLTWH(5, 5, 42, 13),
		Controls: graphics.RectFromLTWH(257, 5, 38, 23),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleBar_FillTitleMeetsControls(t *testing.T) {
	for _, width := range []float64{120, 300, 640} {
		bar := panegrid.NewTitleBar(title(layout.Fill)).Controls(controls()).Padding(3)
		got := partsOf(t, lay(bar, graphics.Size{Width: width, Height: 100}))

		if sum := got.Title.Width() + got.Controls.Width(); sum != got.Content.Width() {
			t.Errorf("width %v: title %v + controls %v != content %v", width, got.Title.Width(), got.Controls.Width(), got.Content.Width())
		}
		if got.Title.Right != got.Controls.Left {
			t.Errorf("width %v: expected title to end where controls start, got %v and %v", width, got.Title.Right, got.Controls.Left)
		}
		if got.Outer.Width() != width {
			t.Errorf("width %v: expected outer to fill, got %v", width, got.Outer.Width())
		}
	}
}

func TestTitleBar_ControlsWiderThanAvailable(t *testing.T) {
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)
	got := partsOf(t, lay(bar, graphics.Size{Width: 40, Height: 100}))

	if got.Title.Width() != 0 {
		t.Errorf("expected title squeezed to 0, got %v", got.Title.Width())
	}
	if got.Controls.Left != -3 {
		t.Errorf("expected controls at -3, got %v", got.Controls.Left)
	}
	if got.Controls.Width() != 38 {
		t.Errorf("expected controls at natural width, got %v", got.Controls.Width())
	}
}

func TestTitleBar_LayoutWithoutControls(t *testing.T) {
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Padding(5)
	l := lay(bar, graphics.Size{Width: 300, Height: 100})

	if got := l.Bounds(); got != graphics.RectFromLTWH(0, 0, 52, 23) {
		t.Errorf("unexpected outer bounds %v", got)
	}
	content, ok := l.Child(0)
	if !ok {
		t.Fatal("expected content layout")
	}
	if got := content.Bounds(); got != graphics.RectFromLTWH(5, 5, 42, 13) {
		t.Errorf("unexpected title bounds %v", got)
	}
	if content.Len() != 0 {
		t.Errorf("expected the title as the content node, got %d children", content.Len())
	}
}

func TestTitleBar_IsOverDraggable(t *testing.T) {
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)
	l := lay(bar, graphics.Size{Width: 300, Height: 100})

	tests := []struct {
		name   string
		cursor graphics.Offset
		want   bool
	}{
		{"over title", graphics.Offset{X: 20, Y: 10}, true},
		{"between title and controls", graphics.Offset{X: 150, Y: 10}, true},
		{"padding", graphics.Offset{X: 1, Y: 1}, true},
		{"over controls", graphics.Offset{X: 270, Y: 15}, false},
		{"right of controls", graphics.Offset{X: 298, Y: 15}, true},
		{"outside", graphics.Offset{X: 150, Y: 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bar.IsOverDraggable(l, tt.cursor); got != tt.want {
				t.Errorf("IsOverDraggable(%v) = %v, want %v", tt.cursor, got, tt.want)
			}
		})
	}

	plain := panegrid.NewTitleBar(title(layout.Shrink)).Padding(5)
	pl := lay(plain, graphics.Size{Width: 300, Height: 100})
	if !plain.IsOverDraggable(pl, graphics.Offset{X: 10, Y: 10}) {
		t.Error("expected the whole bar draggable without controls")
	}
}

func TestTitleBar_EventsReachControlsOnly(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	titleButton := widgets.NewButton(nil, widgets.Text[string]{Content: "Pane 1"}.Element()).OnPress("title").Element()
	bar := panegrid.NewTitleBar(titleButton).Controls(controls()).Padding(5)
	if err := tester.PumpWidget(bar.Element(true)); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	tester.TapAt(graphics.Offset{X: 15, Y: 12})
	if got := tester.TakeMessages(); len(got) != 0 {
		t.Errorf("expected the title to receive nothing, got %v", got)
	}

	// outer > content > controls row > close button
	if err := tester.TapCenter(0, 1, 1); err != nil {
		t.Fatalf("TapCenter: %v", err)
	}
	if diff := cmp.Diff([]string{"close"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleBar_NoControlsIgnoresEvents(t *testing.T) {
	bar := panegrid.NewTitleBar(button("Pane", "title")).Padding(5)
	l := lay(bar, graphics.Size{Width: 300, Height: 100})

	var messages core.Messages[string]
	cursor := graphics.Offset{X: 10, Y: 10}
	bar.OnEvent(event.Pressed(event.ButtonLeft), l, cursor, &messages, nil, nil)
	bar.OnEvent(event.Released(event.ButtonLeft), l, cursor, &messages, nil, nil)
	if messages.Len() != 0 {
		t.Errorf("expected no messages, got %v", messages.All())
	}
}

func TestTitleBar_DrawShowControls(t *testing.T) {
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)
	l := lay(bar, graphics.Size{Width: 300, Height: 100})
	r := renderer.NewRecorder(nil)

	bar.Draw(r, l, graphics.Offset{}, true)
	if got := len(r.Find("button")); got != 2 {
		t.Errorf("expected 2 control buttons drawn, got %d", got)
	}
	if got := len(r.Find("text")); got != 3 {
		t.Errorf("expected title and 2 labels drawn, got %d", got)
	}

	r.Reset()
	bar.Draw(r, l, graphics.Offset{}, false)
	if got := len(r.Find("button")); got != 0 {
		t.Errorf("expected hidden controls, got %d buttons", got)
	}
	bars := r.Find("title_bar")
	if len(bars) != 1 || bars[0].Params["controls"] != false {
		t.Errorf("expected one title bar without controls, got %+v", bars)
	}
	if bars[0].Bounds != l.Bounds() {
		t.Errorf("expected hidden controls to keep the layout, got %v", bars[0].Bounds)
	}
}

func TestTitleBar_HashLayout(t *testing.T) {
	hash := func(bar panegrid.TitleBar[string]) uint64 {
		h := layout.NewHasher()
		bar.HashLayout(h)
		return h.Sum64()
	}
	base := panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)

	if hash(base) != hash(panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5)) {
		t.Error("expected equal configurations to hash equal")
	}
	// Equal hashes give equal layouts.
	size := graphics.Size{Width: 300, Height: 100}
	a := partsOf(t, lay(base, size))
	b := partsOf(t, lay(panegrid.NewTitleBar(title(layout.Shrink)).Controls(controls()).Padding(5), size))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layout mismatch for equal hashes (-a +b):\n%s", diff)
	}
}

func TestTitleBar_MissingCapability(t *testing.T) {
	tester := panestest.NewTesterWithT[string](t)
	bar := panegrid.NewTitleBar(title(layout.Shrink)).Padding(5)
	tester.PumpWidget(bar.Element(true))

	var r struct{ widgets.TextRenderer }
	bar.Draw(r, tester.Layout(), graphics.Offset{}, true)
	if len(tester.Errors()) != 1 {
		t.Errorf("expected one reported error, got %d", len(tester.Errors()))
	}
}
