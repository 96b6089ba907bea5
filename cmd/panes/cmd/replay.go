package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/panes/pkg/engine"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/renderer"
)

type replayStep struct {
	Step          int        `yaml:"step"`
	Event         string     `yaml:"event"`
	Cursor        [2]float64 `yaml:"cursor,flow"`
	Messages      []Message  `yaml:"messages,omitempty"`
	Dragging      bool       `yaml:"dragging"`
	OverDraggable bool       `yaml:"over_draggable"`
}

type replayReport struct {
	Steps     []replayStep          `yaml:"steps"`
	Volume    float64               `yaml:"volume"`
	Minimized bool                  `yaml:"minimized"`
	Closed    bool                  `yaml:"closed"`
	Trace     *engine.FrameTimeline `yaml:"trace,omitempty"`
}

func newReplayCmd(a *app) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay recorded input against the demo pane",
		Long: `Replay a YAML event script against the demo pane and print, for every step,
the messages it produced, whether the slider is dragging and whether the
cursor is over the draggable part of the title bar. Use "-" to read the
script from stdin.

Script steps:
  - move: [x, y]
  - press: left
  - release: left
  - key: Escape
  - resize: [width, height]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := readScript(cmd, args[0])
			if err != nil {
				return err
			}
			report, err := a.replay(steps, trace)
			if err != nil {
				return err
			}
			return writeYAML(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "include per-frame timings in the report")
	return cmd
}

func readScript(cmd *cobra.Command, path string) ([]event.Step, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return event.ReadScript(r)
}

func (a *app) replay(steps []event.Step, trace bool) (*replayReport, error) {
	cache, err := layout.NewCache(layout.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	root := engine.NewRoot[Message](cache)
	root.RecoverPanics = true
	root.Trace = engine.NewFrameTraceBuffer(0, 0)
	rec := renderer.NewRecorder(a.theme)
	pane := newDemoPane(a.theme, a.showControls)
	size := a.size

	report := &replayReport{}
	for i, step := range steps {
		if w, ok := step.Event.(event.Window); ok && w.Kind == event.Resized {
			size = w.Size
		}
		l := root.Build(pane.view(), rec, size)

		messages := root.Update([]event.Step{step}, rec, nil)
		for _, msg := range messages {
			pane.update(msg)
		}

		over := false
		if bar, ok := pane.titleBarLayout(l); ok {
			over = pane.titleBar().IsOverDraggable(bar, step.Cursor)
		}
		report.Steps = append(report.Steps, replayStep{
			Step:          i + 1,
			Event:         event.Describe(step.Event),
			Cursor:        [2]float64{step.Cursor.X, step.Cursor.Y},
			Messages:      messages,
			Dragging:      pane.slider.IsDragging(),
			OverDraggable: over,
		})
	}
	root.Flush()
	timeline := root.Trace.Snapshot()
	if trace {
		report.Trace = &timeline
	}
	report.Volume = pane.volume
	report.Minimized = pane.minimized
	report.Closed = pane.closed

	hits, misses := cache.Stats()
	a.logger.Debug().
		Int("steps", len(steps)).
		Int("layout_hits", hits).
		Int("layout_misses", misses).
		Int("dropped_frames", timeline.DroppedFrames).
		Msg("replay finished")
	return report, nil
}
