package cmd

import (
	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/panegrid"
	"github.com/go-drift/panes/pkg/theme"
	"github.com/go-drift/panes/pkg/widgets"
)

// Message is what the demo pane emits.
type Message struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value,omitempty"`
}

const (
	msgMinimize       = "minimize"
	msgClose          = "close"
	msgVolume         = "volume"
	msgVolumeReleased = "volume_released"
)

// demoPane is the application side of the demo: it owns widget state across
// frames and rebuilds the tree from it.
type demoPane struct {
	slider       *widgets.SliderState
	buttons      *core.StateTable[string, widgets.ButtonState]
	volume       float64
	minimized    bool
	closed       bool
	padding      float64
	showControls bool
}

func newDemoPane(td *theme.ThemeData, showControls bool) *demoPane {
	return &demoPane{
		slider:       widgets.NewSliderState(),
		buttons:      core.NewStateTable[string, widgets.ButtonState](),
		volume:       50,
		padding:      td.TitleBarPadding,
		showControls: showControls,
	}
}

func (d *demoPane) control(label, kind string) core.Element[Message] {
	content := widgets.Text[Message]{Content: label}.Element()
	return widgets.NewButton(d.buttons.Get(kind), content).
		OnPress(Message{Kind: kind}).
		WithPadding(4).
		Element()
}

func (d *demoPane) titleBar() panegrid.TitleBar[Message] {
	title := widgets.Text[Message]{Content: "Pane 1", WidthPolicy: layout.Fill}.Element()
	controls := widgets.RowOf(4, d.control("_", msgMinimize), d.control("X", msgClose)).Element()
	return panegrid.NewTitleBar(title).
		Controls(controls).
		Padding(d.padding).
		Style(theme.StyleFocused)
}

func (d *demoPane) view() core.Element[Message] {
	volume := widgets.NewSlider(d.slider, widgets.Range{Start: 0, End: 100}, d.volume, func(v float64) Message {
		return Message{Kind: msgVolume, Value: v}
	}).OnRelease(Message{Kind: msgVolumeReleased}).WithStyle(theme.StylePrimary)

	return widgets.Column[Message]{
		Spacing:     8,
		WidthPolicy: layout.Fill,
		Children:    []core.Element[Message]{d.titleBar().Element(d.showControls), volume.Element()},
	}.Element()
}

// titleBarLayout returns the title bar's part of the layout built from view.
func (d *demoPane) titleBarLayout(root layout.Layout) (layout.Layout, bool) {
	return root.Child(0)
}

func (d *demoPane) update(msg Message) {
	switch msg.Kind {
	case msgVolume:
		d.volume = msg.Value
	case msgMinimize:
		d.minimized = !d.minimized
	case msgClose:
		d.closed = true
	}
}
