package core_test

import (
	"fmt"

	"github.com/go-drift/panes/pkg/core"
)

// This example keeps interaction state across frames by widget identity.
func ExampleStateTable() {
	type sliderState struct{ dragging bool }

	states := core.NewStateTable[string, sliderState]()
	states.Get("volume").dragging = true
	states.Get("balance")

	states.Retain("volume")
	s, ok := states.Lookup("volume")
	fmt.Println(ok, s.dragging, states.Len())
	// Output: true true 1
}
