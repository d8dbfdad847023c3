// Package trafficlight mounts an animated traffic light into a document.
//
// A TrafficLight owns its container element and its current color. Every
// render replaces the container's children with one light per configured
// color, in configuration order, lighting only the current one. After each
// render the next transition is armed on the Scheduler; when it fires the
// color advances to the configured next color and the cycle repeats until
// Stop is called or the window dispatches beforeunload.
//
// The rendered structure is:
//
//	<div class="traffic-light-container [traffic-light-container--vertical]"
//	     aria-live="polite" aria-label="Current light: green">
//	  <div class="traffic-light" aria-hidden="true"></div>
//	  <div class="traffic-light" aria-hidden="true"></div>
//	  <div class="traffic-light" aria-hidden="true" style="background-color: green"></div>
//	</div>
package trafficlight

import (
	"errors"
	"fmt"
	"sync"

	"github.com/scheerer/traffic-light/dom"
	"github.com/scheerer/traffic-light/internal/clock"
	"github.com/scheerer/traffic-light/internal/logging"
	"github.com/scheerer/traffic-light/lights"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

var logger = logging.New("trafficlight")

const (
	ContainerClass         = "traffic-light-container"
	VerticalContainerClass = "traffic-light-container--vertical"
	LabelPrefix            = "Current light: "
)

var (
	ErrNoMount     = errors.New("mount element not found")
	ErrNoWindow    = errors.New("no window to register teardown on")
	ErrNoScheduler = errors.New("no scheduler")
)

type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// ParseLayout maps "vertical" to LayoutVertical and everything else to the
// default horizontal layout.
func ParseLayout(s string) Layout {
	if Layout(s) == LayoutVertical {
		return LayoutVertical
	}
	return LayoutHorizontal
}

type Options struct {
	InitialColor string
	// Colors defaults to DefaultColors.
	Colors Colors
	Layout Layout
	// Scheduler runs the transitions. A clock.Loop in production, a
	// clock.Virtual in tests.
	Scheduler clock.Scheduler
	// OnRender, if set, is called after every render with the lock released.
	OnRender func(container *html.Node, current string)
}

type TrafficLight struct {
	colors    Colors
	scheduler clock.Scheduler
	onRender  func(container *html.Node, current string)

	mu        sync.Mutex
	current   string
	container *html.Node
	timer     clock.Timer
	stopped   bool
	err       error

	removeUnload func()
}

// New validates opts, mounts the container under mount and renders the
// initial color. Nothing is mounted when an error is returned.
func New(win *dom.Window, mount *html.Node, opts Options) (*TrafficLight, error) {
	if !dom.IsElement(mount) {
		return nil, ErrNoMount
	}
	if win == nil {
		return nil, ErrNoWindow
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultColors()
	}
	if err := colors.ValidateFrom(opts.InitialColor); err != nil {
		return nil, err
	}

	t := &TrafficLight{
		colors:    append(Colors(nil), colors...),
		scheduler: opts.Scheduler,
		onRender:  opts.OnRender,
		current:   opts.InitialColor,
		container: newContainer(opts.Layout),
	}

	t.removeUnload = win.AddEventListener(dom.EventBeforeUnload, func(dom.Event) {
		logger.Debug("Page unloading, cancelling pending transition")
		t.Stop()
	})
	mount.AppendChild(t.container)

	logger.With(
		zap.String("initialColor", opts.InitialColor),
		zap.Strings("colors", t.colors.Names()),
		zap.String("layout", string(ParseLayout(string(opts.Layout))))).
		Info("Traffic light mounted")

	t.mu.Lock()
	t.renderLoop()
	current := t.current
	t.mu.Unlock()

	t.notify(current)
	return t, nil
}

func newContainer(layout Layout) *html.Node {
	n := dom.NewElement("div")
	dom.AddClass(n, ContainerClass)
	if layout == LayoutVertical {
		dom.AddClass(n, VerticalContainerClass)
	}
	dom.SetAttr(n, "aria-live", "polite")
	return n
}

// renderLoop renders the current color and arms the next transition.
// The caller holds t.mu.
func (t *TrafficLight) renderLoop() {
	t.render()
	t.schedule()
}

func (t *TrafficLight) render() {
	dom.RemoveChildren(t.container)
	dom.SetAttr(t.container, "aria-label", LabelPrefix+t.current)

	for _, s := range t.colors {
		var opts lights.Options
		if s.Name == t.current {
			opts.DisplayColor = s.DisplayColor
		}
		t.container.AppendChild(lights.New(opts))
	}
}

func (t *TrafficLight) schedule() {
	state, ok := t.colors.Lookup(t.current)
	if !ok {
		t.fail(fmt.Errorf("%w %q", ErrUnknownColor, t.current))
		return
	}
	t.timer = t.scheduler.AfterFunc(state.Duration, t.advance)
}

func (t *TrafficLight) advance() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.timer = nil

	state, ok := t.colors.Lookup(t.current)
	if !ok {
		t.fail(fmt.Errorf("%w %q", ErrUnknownColor, t.current))
		t.mu.Unlock()
		return
	}
	logger.With(zap.String("from", t.current), zap.String("to", state.Next)).Debug("Changing light")

	t.current = state.Next
	t.renderLoop()
	current, stopped := t.current, t.stopped
	t.mu.Unlock()

	if !stopped {
		t.notify(current)
	}
}

// fail stops the cycle on a configuration inconsistency. The caller holds t.mu.
func (t *TrafficLight) fail(err error) {
	logger.With(zap.Error(err), zap.String("current", t.current)).Error("Stopping traffic light")
	t.err = err
	t.stopLocked()
}

func (t *TrafficLight) notify(current string) {
	if t.onRender != nil {
		t.onRender(t.container, current)
	}
}

// Stop cancels the pending transition and unregisters the unload listener.
// It is safe to call more than once and from any goroutine.
func (t *TrafficLight) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *TrafficLight) stopLocked() {
	if t.stopped {
		return
	}
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.removeUnload != nil {
		t.removeUnload()
	}
	logger.With(zap.String("current", t.current)).Debug("Traffic light stopped")
}

// Current returns the color currently lit.
func (t *TrafficLight) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Container returns the mounted container element. Callers must not mutate it
// while the traffic light is running.
func (t *TrafficLight) Container() *html.Node {
	return t.container
}

func (t *TrafficLight) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Err returns the configuration error that stopped the cycle, if any.
func (t *TrafficLight) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
