package widgets_test

import (
	"fmt"

	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/widgets"
)

// This example maps a cursor position over a slider rail to a value.
func ExampleValueAt() {
	rail := graphics.RectFromLTWH(0, 0, 200, 22)
	percent := widgets.Range{Start: 0, End: 100}

	fmt.Println(widgets.ValueAt(rail, percent, 50))
	fmt.Println(widgets.ValueAt(rail, percent, -10))
	// Output:
	// 25
	// 0
}
