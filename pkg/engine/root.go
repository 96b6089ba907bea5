// Package engine drives a widget tree frame by frame: layout with caching,
// event dispatch and drawing.
package engine

import (
	"time"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/errors"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
)

// Root runs one widget tree through the layout, event and draw walks of a
// frame. It reuses a cached layout tree when the tree's layout hash, the
// renderer metrics and the available size are unchanged. Renderers that do
// not implement core.LayoutHasher are laid out on every frame.
//
// Root belongs to the UI thread. Build, Update and Draw must not be called
// concurrently.
type Root[M any] struct {
	// RecoverPanics reports panics raised by widgets during Update through
	// pkg/errors instead of propagating them. Messages produced before the
	// panic are still returned.
	RecoverPanics bool

	// Trace, when set, receives one sample per frame. A frame ends at the
	// next Build or at Flush.
	Trace *FrameTraceBuffer

	cache *layout.Cache
	root  core.Element[M]
	node  *layout.Node
	hash  uint64

	frameStart time.Time
	frame      FrameSample
	inFrame    bool
}

// NewRoot creates a root. A nil cache lays the tree out on every frame.
func NewRoot[M any](cache *layout.Cache) *Root[M] {
	return &Root[M]{cache: cache}
}

// Build installs root as the frame's tree and lays it out within size.
func (r *Root[M]) Build(root core.Element[M], renderer core.Renderer, size graphics.Size) layout.Layout {
	r.Flush()
	r.beginFrame()
	start := time.Now()

	r.root = root
	h := layout.NewHasher()
	root.HashLayout(h)
	r.hash = h.Sum64()

	limits := layout.NewLimits(graphics.SizeZero, size)
	computed := false
	compute := func() *layout.Node {
		computed = true
		return root.Layout(renderer, limits)
	}
	metrics, ok := renderer.(core.LayoutHasher)
	if r.cache != nil && ok {
		metrics.LayoutHash(h)
		r.node = r.cache.Layout(h.Sum64(), limits, compute)
	} else {
		r.node = compute()
	}

	r.frame.Phases.LayoutMs = durationToMillis(time.Since(start))
	r.frame.Counts.LayoutNodes = countLayoutTree(r.node)
	r.frame.LayoutCached = !computed
	return r.Layout()
}

// Layout returns the layout of the last Build.
func (r *Root[M]) Layout() layout.Layout {
	return layout.NewLayout(r.node)
}

// Hash returns the layout hash of the last Build's widget tree. It does not
// cover renderer metrics.
func (r *Root[M]) Hash() uint64 {
	return r.hash
}

// Update dispatches steps in order against the last layout and returns the
// messages they produced, in order.
func (r *Root[M]) Update(steps []event.Step, renderer core.Renderer, clipboard core.Clipboard) []M {
	if r.node == nil {
		return nil
	}
	start := time.Now()
	var messages core.Messages[M]
	l := r.Layout()
	dispatch := func(i int, step event.Step) {
		if r.RecoverPanics {
			defer errors.RecoverEvent("engine.Root.Update", i, step.Event)
		}
		r.root.OnEvent(step.Event, l, step.Cursor, &messages, renderer, clipboard)
	}
	for i, step := range steps {
		dispatch(i, step)
	}

	r.frame.Phases.UpdateMs += durationToMillis(time.Since(start))
	r.frame.Counts.Events += len(steps)
	r.frame.Counts.Messages += messages.Len()
	return messages.All()
}

// Draw paints the tree with the last layout.
func (r *Root[M]) Draw(renderer core.Renderer, cursor graphics.Offset) {
	if r.node == nil {
		return
	}
	start := time.Now()
	r.root.Draw(renderer, r.Layout(), cursor)
	r.frame.Phases.DrawMs += durationToMillis(time.Since(start))
}

// Flush ends the current frame, handing its sample to Trace.
func (r *Root[M]) Flush() {
	if !r.inFrame {
		return
	}
	r.inFrame = false
	if r.Trace == nil {
		return
	}
	r.frame.FrameMs = durationToMillis(time.Since(r.frameStart))
	r.Trace.Add(r.frame)
}

func (r *Root[M]) beginFrame() {
	r.frameStart = time.Now()
	r.frame = FrameSample{Timestamp: r.frameStart.UnixMilli()}
	r.inFrame = true
}
