package main

import (
	"fmt"
	"io"
	"time"

	"github.com/scheerer/traffic-light/dom"
	"github.com/scheerer/traffic-light/internal/assets"
	"github.com/scheerer/traffic-light/internal/clock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(cfg *Config) *cobra.Command {
	var at time.Duration
	var fragment bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page as it looks after a given time",
		Example: `  traffic-light render --at 3500ms
  traffic-light render --at 10s --fragment --layout horizontal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSnapshot(cmd.OutOrStdout(), *cfg, at, fragment)
		},
	}
	cmd.Flags().DurationVar(&at, "at", 0, "virtual time to advance before rendering")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "print only the traffic light container")
	return cmd
}

// renderSnapshot mounts the widget on virtual time, advances it by at and
// writes the resulting HTML.
func renderSnapshot(w io.Writer, cfg Config, at time.Duration, fragment bool) error {
	if at < 0 {
		return fmt.Errorf("--at must not be negative, got %s", at)
	}

	vc := clock.NewVirtual()
	win, tl, err := mountWidget(cfg, vc, nil)
	if err != nil {
		return err
	}
	vc.Advance(at)
	win.DispatchEvent(dom.EventBeforeUnload)

	logger.With(zap.Stringer("at", at), zap.String("current", tl.Current())).Debug("Rendering snapshot")

	if fragment {
		out, err := dom.OuterHTML(tl.Container())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	assets.InlineStylesheet(win.Document)
	if err := win.Document.Render(w); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
