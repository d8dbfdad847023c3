package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, keeping the position of an existing one.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ClassList returns the element's classes in document order.
func ClassList(n *html.Node) []string {
	v, _ := GetAttr(n, "class")
	return strings.Fields(v)
}

func HasClass(n *html.Node, class string) bool {
	return slices.Contains(ClassList(n), class)
}

// AddClass appends classes that are not already present.
func AddClass(n *html.Node, classes ...string) {
	list := ClassList(n)
	changed := false
	for _, c := range classes {
		if c == "" || slices.Contains(list, c) {
			continue
		}
		list = append(list, c)
		changed = true
	}
	if changed {
		SetAttr(n, "class", strings.Join(list, " "))
	}
}

// Style returns the value of one inline style property, or "" when unset.
func Style(n *html.Node, property string) string {
	for _, decl := range parseStyle(n) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets one inline style property. An empty value removes it.
func SetStyle(n *html.Node, property, value string) {
	decls := parseStyle(n)
	out := decls[:0]
	replaced := false
	for _, decl := range decls {
		if decl[0] == property {
			if value == "" || replaced {
				continue
			}
			decl[1] = value
			replaced = true
		}
		out = append(out, decl)
	}
	if !replaced && value != "" {
		out = append(out, [2]string{property, value})
	}

	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(out))
	for i, decl := range out {
		parts[i] = decl[0] + ": " + decl[1]
	}
	SetAttr(n, "style", strings.Join(parts, "; "))
}

func parseStyle(n *html.Node) [][2]string {
	v, ok := GetAttr(n, "style")
	if !ok {
		return nil
	}
	var decls [][2]string
	for _, part := range strings.Split(v, ";") {
		prop, val, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, val})
	}
	return decls
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			out = append(out, c)
		}
	}
	return out
}

// QueryAll walks the subtree under root depth-first and returns every element
// matching pred, root included.
func QueryAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if IsElement(n) && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Query returns the first element matching pred, or nil.
func Query(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if found := QueryAll(root, pred); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ByClass matches elements carrying class.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

// ByAttr matches elements whose attribute key equals val.
func ByAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := GetAttr(n, key)
		return ok && v == val
	}
}

// OuterHTML serialises n and its subtree.
func OuterHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
