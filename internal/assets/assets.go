// Package assets embeds the host page the traffic light mounts into and the
// stylesheet for its classes.
package assets

import (
	_ "embed"

	"github.com/scheerer/traffic-light/dom"
	"golang.org/x/net/html"
)

// MountID is the id of the element in the host page the widget mounts into.
const MountID = "traffic-light"

//go:embed index.html
var indexHTML string

//go:embed styles.css
var stylesCSS string

// Page parses a fresh copy of the host page.
func Page() (*dom.Document, error) {
	return dom.ParseString(indexHTML)
}

func Stylesheet() string {
	return stylesCSS
}

// InlineStylesheet appends the stylesheet to the document head as a <style>
// element so a rendered snapshot is self-contained.
func InlineStylesheet(doc *dom.Document) {
	head := doc.Head()
	if head == nil {
		return
	}
	style := dom.NewElement("style")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: stylesCSS})
	head.AppendChild(style)
}
