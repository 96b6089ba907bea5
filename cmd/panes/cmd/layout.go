package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/panes/pkg/engine"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/renderer"
)

// treeNode is the printed form of a layout node in absolute coordinates.
type treeNode struct {
	Bounds   [4]float64  `yaml:"bounds,flow"`
	Children []*treeNode `yaml:"children,omitempty"`
}

type layoutReport struct {
	Hash string    `yaml:"hash"`
	Tree *treeNode `yaml:"tree"`
}

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the demo pane's layout tree",
		Long: `Lay the demo pane out on the configured surface and print its layout tree.
Bounds are [x, y, width, height] in absolute coordinates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pane := newDemoPane(a.theme, a.showControls)
			root := engine.NewRoot[Message](nil)
			l := root.Build(pane.view(), renderer.NewRecorder(a.theme), a.size)

			report := layoutReport{
				Hash: fmt.Sprintf("%016x", root.Hash()),
				Tree: tree(l),
			}
			return writeYAML(cmd, report)
		},
	}
}

func tree(l layout.Layout) *treeNode {
	b := l.Bounds()
	node := &treeNode{Bounds: [4]float64{b.Left, b.Top, b.Width(), b.Height()}}
	for _, child := range l.Children() {
		node.Children = append(node.Children, tree(child))
	}
	return node
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
