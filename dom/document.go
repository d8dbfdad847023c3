// Package dom is a minimal document object model over golang.org/x/net/html:
// element helpers, a Document to look elements up in, and a Window that
// delivers page lifecycle events.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const emptyPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document owns a parsed node tree.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML page. Missing html, head and body elements are
// synthesised the same way a browser does.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument returns an empty page.
func NewDocument() *Document {
	doc, err := ParseString(emptyPage)
	if err != nil {
		// the tokenizer does not fail on in-memory input
		panic(err)
	}
	return doc
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) Head() *html.Node {
	return Query(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Head })
}

func (d *Document) Body() *html.Node {
	return Query(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
}

// GetElementByID returns the first element whose id is id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return Query(d.root, ByAttr("id", id))
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}
