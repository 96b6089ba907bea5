// Package testing drives widget trees without a window.
//
// A Tester lays a tree out on a fixed surface, feeds it synthetic input and
// collects the messages it produces. Drawing goes to a renderer.Recorder so
// tests can assert on paint operations.
//
//	func TestSlider(t *testing.T) {
//	    tester := panestest.NewTesterWithT[float64](t)
//	    tester.PumpWidget(slider.Element())
//
//	    tester.DragFrom(graphics.Offset{X: 50, Y: 10}, graphics.Offset{X: 50})
//
//	    if got := tester.TakeMessages(); len(got) != 2 {
//	        t.Errorf("expected 2 messages, got %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the layout tree and paint operations and compare them to a golden
// file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/title_bar.snapshot.yaml")
//
// Update snapshots with:
//
//	PANES_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import panestest "github.com/go-drift/panes/pkg/testing"
package testing
