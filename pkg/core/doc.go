// Package core defines the contract every widget in a tree satisfies.
//
// A frame goes through three walks over the same tree. Layout runs top-down:
// a parent hands each child a Limits budget, reads the child's Node, and
// positions it. Event dispatch then walks the tree again with the Layout
// computed by that pass, hit-testing against absolute bounds and recursing
// into the owning child; widgets append produced messages to a Messages
// queue. Drawing is a third, read-only walk with the same Layout.
//
// # Core Types
//
// Widget is the four-operation contract (Layout, Draw, OnEvent, HashLayout)
// plus width and height policies. Element is an owned, type-erased handle to
// a Widget; composites hold their children as Elements.
//
// # Interaction State
//
// Widgets are rebuilt every frame, so state that must survive between frames
// (such as whether a slider is being dragged) is owned by the application and
// lent to the widget for one call. StateTable keeps that state keyed by a
// stable widget identity:
//
//	sliders := core.NewStateTable[string, widgets.SliderState]()
//	volume := widgets.NewSlider(sliders.Get("volume"), widgets.Range{Start: 0, End: 100}, v, onVolume)
//
// # Children and Layouts
//
// A composite must walk its children and the children of its Layout in
// lock-step. Zip pairs them in one place so the order used by event dispatch
// and drawing is the order produced by layout.
package core
