package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/panes/pkg/engine"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/renderer"
)

func newDrawCmd(a *app) *cobra.Command {
	var cursor []float64
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Dump what a renderer would paint for the demo pane",
		Long: `Lay the demo pane out and draw it with a recording renderer, printing the
paint operations in order as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at graphics.Offset
			if len(cursor) == 2 {
				at = graphics.Offset{X: cursor[0], Y: cursor[1]}
			}
			pane := newDemoPane(a.theme, a.showControls)
			rec := renderer.NewRecorder(a.theme)
			root := engine.NewRoot[Message](nil)
			root.Build(pane.view(), rec, a.size)
			root.Draw(rec, at)
			return rec.WriteYAML(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64SliceVar(&cursor, "cursor", nil, "cursor position as x,y")
	return cmd
}
