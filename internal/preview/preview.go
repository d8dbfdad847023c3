// Package preview draws a mounted traffic light in a terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/scheerer/traffic-light/dom"
	"github.com/scheerer/traffic-light/internal/logging"
	"github.com/scheerer/traffic-light/internal/util"
	"github.com/scheerer/traffic-light/lights"
	"github.com/scheerer/traffic-light/trafficlight"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

var logger = logging.New("preview")

const (
	litGlyph   = "●"
	unlitGlyph = "○"
)

type Renderer struct {
	out *termenv.Output
	// live redraws in place instead of appending frames
	live bool
}

func New(w io.Writer, live bool, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...), live: live}
}

// Frame renders the container as text: the label on the first line, then the
// slots one per line for the vertical layout or side by side otherwise.
func (r *Renderer) Frame(container *html.Node) string {
	label, _ := dom.GetAttr(container, "aria-label")
	vertical := dom.HasClass(container, trafficlight.VerticalContainerClass)

	head := label
	var slots []string
	for _, n := range dom.QueryAll(container, dom.ByClass(lights.ClassName)) {
		if !lights.IsLit(n) {
			slots = append(slots, r.out.String(unlitGlyph).Faint().String())
			continue
		}
		css := dom.Style(n, lights.BackgroundProperty)
		c, err := util.ParseCSSColor(css)
		if err != nil {
			logger.With(zap.String("color", css), zap.Error(err)).Debug("Cannot show light color in terminal")
			slots = append(slots, litGlyph)
			head = r.out.String(label).Bold().String()
			continue
		}
		fg := r.out.Color("#ffffff")
		if !util.IsColorDark(c) {
			fg = r.out.Color("#000000")
		}
		slots = append(slots, r.out.String(litGlyph).Foreground(r.out.Color(c.Hex())).String())
		head = r.out.String(" " + label + " ").Foreground(fg).Background(r.out.Color(c.Hex())).String()
	}

	var sb strings.Builder
	sb.WriteString(head + "\n")
	if vertical {
		for _, s := range slots {
			sb.WriteString("  " + s + "\n")
		}
	} else {
		sb.WriteString("  " + strings.Join(slots, " ") + "\n")
	}
	return sb.String()
}

// Draw writes one frame, clearing the screen first in live mode.
func (r *Renderer) Draw(container *html.Node) error {
	if r.live {
		r.out.ClearScreen()
	}
	_, err := fmt.Fprint(r.out, r.Frame(container))
	return err
}

// Start hides the cursor for live drawing; Close restores it.
func (r *Renderer) Start() {
	if r.live {
		r.out.HideCursor()
	}
}

func (r *Renderer) Close() {
	if r.live {
		r.out.ShowCursor()
	}
}
