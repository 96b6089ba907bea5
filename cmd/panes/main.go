// Command panes lays out, replays and draws a demo pane with a title bar and
// a slider. It exercises the widget library without a window.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/panes/cmd/panes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
