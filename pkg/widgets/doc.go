// Package widgets provides the leaf and container widgets composites are
// built from: Text, Button, Row, Column and Slider.
//
// # Widget Construction
//
// Widgets are plain values rebuilt every frame. Stateless widgets are struct
// literals; widgets with interaction state take a borrowed state pointer in
// their constructor:
//
//	title := widgets.Text[Msg]{Content: "Pane 1"}
//	volume := widgets.NewSlider(states.Get("volume"), widgets.Range{Start: 0, End: 100}, v, VolumeChanged)
//
// WithX methods return copies; they never mutate the receiver.
//
// # Renderer Capabilities
//
// Each widget asserts the renderer capability it needs (TextRenderer,
// ButtonRenderer, SliderRenderer). When a renderer lacks it, the widget
// reports a render error through pkg/errors, lays out with default metrics
// and skips drawing.
package widgets
