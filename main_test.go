package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scheerer/traffic-light/trafficlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		InitialColor: "green",
		Layout:       "vertical",
		MountID:      "traffic-light",
		LogLevel:     "error",
	}
}

func TestRenderSnapshotFragment(t *testing.T) {
	tests := []struct {
		at    string
		label string
	}{
		{"0s", "Current light: green"},
		{"2999ms", "Current light: green"},
		{"3s", "Current light: yellow"},
		{"3500ms", "Current light: red"},
		{"7500ms", "Current light: green"},
	}
	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			var buf bytes.Buffer
			root := newRootCmd(ptr(defaultConfig()))
			root.SetOut(&buf)
			root.SetArgs([]string{"render", "--at", tt.at, "--fragment"})
			require.NoError(t, root.Execute())

			out := buf.String()
			assert.Contains(t, out, `aria-label="`+tt.label+`"`)
			assert.Contains(t, out, `class="traffic-light-container traffic-light-container--vertical"`)
			assert.Equal(t, 3, strings.Count(out, `class="traffic-light"`))
			assert.Equal(t, 1, strings.Count(out, "background-color"))
		})
	}
}

func TestRenderSnapshotFullPage(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig()
	cfg.Layout = "horizontal"
	require.NoError(t, renderSnapshot(&buf, cfg, 0, false))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `<div id="traffic-light"><div class="traffic-light-container" aria-live="polite"`)
}

func TestRenderSnapshotErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.MountID = "nowhere"
	err := renderSnapshot(&bytes.Buffer{}, cfg, 0, false)
	assert.ErrorIs(t, err, trafficlight.ErrNoMount)
	assert.Contains(t, err.Error(), "#nowhere")

	cfg = defaultConfig()
	cfg.InitialColor = "blue"
	assert.ErrorIs(t, renderSnapshot(&bytes.Buffer{}, cfg, 0, false), trafficlight.ErrUnknownColor)

	assert.Error(t, renderSnapshot(&bytes.Buffer{}, defaultConfig(), -1, false))
}

func TestColorConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
go:
  backgroundColor: lime
  duration: 2s
  next: stop
stop:
  backgroundColor: red
  duration: 1000
  next: go
`), 0o600))

	cfg := defaultConfig()
	cfg.ColorConfigFile = path
	cfg.InitialColor = "go"

	var buf bytes.Buffer
	require.NoError(t, renderSnapshot(&buf, cfg, 2500*time.Millisecond, true))
	assert.Contains(t, buf.String(), `aria-label="Current light: stop"`)
	assert.Equal(t, 2, strings.Count(buf.String(), `class="traffic-light"`))

	buf.Reset()
	root := newRootCmd(&cfg)
	root.SetOut(&buf)
	root.SetArgs([]string{"colors"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "go:\n  backgroundColor: lime\n  duration: 2000\n  next: stop\nstop:\n  backgroundColor: red\n  duration: 1000\n  next: go\n", buf.String())
}

func TestRunLiveStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, runLive(ctx, defaultConfig(), &buf, true))
	assert.Contains(t, buf.String(), `aria-label="Current light: green"`)

	buf.Reset()
	require.NoError(t, runLive(ctx, defaultConfig(), &buf, false))
	assert.Contains(t, buf.String(), "Current light: green")
}

func TestRunLiveReportsMountErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.MountID = "missing"
	err := runLive(context.Background(), cfg, &bytes.Buffer{}, true)
	assert.ErrorIs(t, err, trafficlight.ErrNoMount)
}

func ptr[T any](v T) *T {
	return &v
}
