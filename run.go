package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/scheerer/traffic-light/dom"
	"github.com/scheerer/traffic-light/internal/clock"
	"github.com/scheerer/traffic-light/internal/preview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

func newRunCmd(cfg *Config) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the traffic light and draw it in the terminal",
		Long:  `Runs the traffic light on wall-clock time until interrupted. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runLive(ctx, *cfg, cmd.OutOrStdout(), asHTML)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the container HTML on every change instead of drawing it")
	return cmd
}

// runLive drives the widget on a real event loop until ctx is done, then
// dispatches beforeunload.
func runLive(ctx context.Context, cfg Config, w io.Writer, asHTML bool) error {
	loop := clock.NewLoop()

	var draw func(container *html.Node) error
	if asHTML {
		draw = func(container *html.Node) error {
			out, err := dom.OuterHTML(container)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, out)
			return err
		}
	} else {
		r := preview.New(w, true)
		r.Start()
		defer r.Close()
		draw = r.Draw
	}

	win, tl, err := mountWidget(cfg, loop, func(container *html.Node, current string) {
		if err := draw(container); err != nil {
			logger.With(zap.String("current", current), zap.Error(err)).Warn("Failed to draw traffic light")
		}
	})
	if err != nil {
		logger.With(zap.Error(err)).Error("Failed to start traffic light")
		return err
	}

	logger.Info("Press Ctrl+C to stop")
	loop.Run(ctx)

	logger.With(zap.String("current", tl.Current())).Info("Shutting down")
	win.DispatchEvent(dom.EventBeforeUnload)
	return tl.Err()
}
