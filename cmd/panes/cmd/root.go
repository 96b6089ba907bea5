// Package cmd implements the panes CLI commands.
//
// Settings come from flags and PANES_* environment variables, for example
// PANES_THEME=dark.yaml or PANES_LOG_LEVEL=debug.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/panes/pkg/errors"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/logging"
	"github.com/go-drift/panes/pkg/theme"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

const (
	defaultWidth  = 480
	defaultHeight = 120
)

// app is the state shared by every subcommand once flags are resolved.
type app struct {
	v            *viper.Viper
	theme        *theme.ThemeData
	logger       zerolog.Logger
	size         graphics.Size
	showControls bool
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "panes",
		Short: "Lay out and drive a demo pane without a window",
		Long: `panes builds a demo pane: a title bar with minimize and close controls
above a volume slider. It lays the pane out, replays recorded input against it
and dumps what a renderer would paint.

Settings may also be given as PANES_* environment variables.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("theme", "", "theme YAML file (defaults to the light theme)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error, disabled")
	flags.String("log-format", "console", "log format: console or json")
	flags.Float64("width", defaultWidth, "surface width")
	flags.Float64("height", defaultHeight, "surface height")
	flags.Bool("hide-controls", false, "draw the title bar without its controls")

	a.v.SetEnvPrefix("PANES")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	// BindPFlags only fails on a nil flag set.
	_ = a.v.BindPFlags(flags)

	root.AddCommand(newLayoutCmd(a), newReplayCmd(a), newDrawCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	a.logger = logging.NewFromValues(a.v.GetString("log-level"), a.v.GetString("log-format"), cmd.ErrOrStderr())
	errors.SetHandler(errors.NewLogHandler(&a.logger))

	// A theme named by the user must exist.
	path := a.v.GetString("theme")
	load := theme.LoadOptional
	if path != "" && (cmd.Flags().Changed("theme") || os.Getenv("PANES_THEME") != "") {
		load = theme.Load
	}
	td, err := load(path)
	if err != nil {
		return err
	}
	a.theme = td

	a.size = graphics.Size{Width: a.v.GetFloat64("width"), Height: a.v.GetFloat64("height")}
	if a.size.Width <= 0 || a.size.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %vx%v", a.size.Width, a.size.Height)
	}
	a.showControls = !a.v.GetBool("hide-controls")

	a.logger.Debug().
		Str("theme", a.v.GetString("theme")).
		Str("brightness", string(td.Brightness)).
		Float64("width", a.size.Width).
		Float64("height", a.size.Height).
		Msg("settings loaded")
	return nil
}
