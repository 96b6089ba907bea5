package engine

import (
	"sync"
	"time"

	"github.com/go-drift/panes/pkg/layout"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	LayoutMs float64 `yaml:"layout_ms"`
	UpdateMs float64 `yaml:"update_ms"`
	DrawMs   float64 `yaml:"draw_ms"`
}

// FrameCounts captures per-frame workload indicators.
type FrameCounts struct {
	LayoutNodes int `yaml:"layout_nodes"`
	Events      int `yaml:"events"`
	Messages    int `yaml:"messages"`
}

// FrameSample is a single frame trace sample. A frame runs from one Build to
// the next.
type FrameSample struct {
	Timestamp    int64             `yaml:"ts"`
	FrameMs      float64           `yaml:"frame_ms"`
	Phases       FramePhaseTimings `yaml:"phases"`
	Counts       FrameCounts       `yaml:"counts"`
	LayoutCached bool              `yaml:"layout_cached"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples       []FrameSample `yaml:"samples"`
	DroppedFrames int           `yaml:"dropped_frames"`
	ThresholdMs   float64       `yaml:"threshold_ms"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer. It is safe
// for concurrent use so a debug reader may snapshot it while frames run.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Frames
// slower than threshold count as dropped. Non-positive arguments select the
// defaults: 240 samples and one 60 Hz frame.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Add records a frame sample and updates the dropped frame count.
func (b *FrameTraceBuffer) Add(sample FrameSample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if sample.FrameMs > durationToMillis(b.threshold) {
		b.dropped++
	}
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	timeline := FrameTimeline{
		DroppedFrames: b.dropped,
		ThresholdMs:   durationToMillis(b.threshold),
	}
	if b.count == 0 {
		return timeline
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}
	timeline.Samples = result
	return timeline
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func countLayoutTree(n *layout.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children() {
		count += countLayoutTree(child)
	}
	return count
}
