package main

import (
	"fmt"

	"github.com/scheerer/traffic-light/dom"
	"github.com/scheerer/traffic-light/internal/assets"
	"github.com/scheerer/traffic-light/internal/clock"
	"github.com/scheerer/traffic-light/internal/logging"
	"github.com/scheerer/traffic-light/trafficlight"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

func newRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traffic-light",
		Short: "An animated traffic light widget",
		Long: `Mounts a traffic light into an HTML page and cycles it green, yellow, red.

Defaults come from INITIAL_COLOR, LAYOUT, COLOR_CONFIG_FILE, MOUNT_ID and LOG_LEVEL.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.GetLeveler().SetAllLevels(logging.ParseLevel(cfg.LogLevel))
			logger.With(zap.Any("config", *cfg)).Debug("Configuration loaded")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.InitialColor, "initial-color", cfg.InitialColor, "color the light starts on")
	flags.StringVar(&cfg.Layout, "layout", cfg.Layout, `"vertical" stacks the lights, anything else lays them out horizontally`)
	flags.StringVar(&cfg.ColorConfigFile, "config", cfg.ColorConfigFile, "YAML color configuration (default: red, yellow, green)")
	flags.StringVar(&cfg.MountID, "mount-id", cfg.MountID, "id of the element to mount into")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(newRunCmd(cfg), newRenderCmd(cfg), newColorsCmd(cfg))
	return rootCmd
}

func loadColors(cfg Config) (trafficlight.Colors, error) {
	if cfg.ColorConfigFile == "" {
		return trafficlight.DefaultColors(), nil
	}
	return trafficlight.LoadColors(cfg.ColorConfigFile)
}

// mountWidget parses the host page and mounts a traffic light into it.
func mountWidget(cfg Config, scheduler clock.Scheduler, onRender func(*html.Node, string)) (*dom.Window, *trafficlight.TrafficLight, error) {
	colors, err := loadColors(cfg)
	if err != nil {
		return nil, nil, err
	}

	doc, err := assets.Page()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing host page: %w", err)
	}
	win := dom.NewWindow(doc)

	tl, err := trafficlight.New(win, doc.GetElementByID(cfg.MountID), trafficlight.Options{
		InitialColor: cfg.InitialColor,
		Colors:       colors,
		Layout:       trafficlight.ParseLayout(cfg.Layout),
		Scheduler:    scheduler,
		OnRender:     onRender,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mounting traffic light at #%s: %w", cfg.MountID, err)
	}
	return win, tl, nil
}
