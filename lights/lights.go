package lights

import (
	"github.com/scheerer/traffic-light/dom"
	"golang.org/x/net/html"
)

const (
	// ClassName tags every light slot.
	ClassName = "traffic-light"
	// BackgroundProperty is the inline style that marks the active slot.
	BackgroundProperty = "background-color"
)

// Options describes a single light slot. The zero value is an unlit slot.
type Options struct {
	DisplayColor string
}

// New builds one light. The node is decorative and hidden from assistive
// technology; the container's label carries the state.
func New(opts Options) *html.Node {
	n := dom.NewElement("div")
	dom.AddClass(n, ClassName)
	dom.SetAttr(n, "aria-hidden", "true")
	if opts.DisplayColor != "" {
		dom.SetStyle(n, BackgroundProperty, opts.DisplayColor)
	}
	return n
}

// IsLit reports whether a rendered light carries a background.
func IsLit(n *html.Node) bool {
	return dom.Style(n, BackgroundProperty) != ""
}
