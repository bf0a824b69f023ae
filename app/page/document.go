// Package page loads html pages and adapts them to the theme switcher.
package page

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/umputun/themer/app/theme"
)

// Document is a parsed html page implementing theme.Document.
type Document struct {
	root *html.Node
	html *html.Node
	head *html.Node
	body *html.Node
}

// Parse reads an html page. Missing html, head or body elements are synthesized by the parser.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{root: root}
	d.html = findFirst(root, func(n *html.Node) bool { return n.DataAtom == atom.Html })
	if d.html == nil {
		return nil, errors.New("no html element")
	}
	d.head = findFirst(d.html, func(n *html.Node) bool { return n.DataAtom == atom.Head })
	d.body = findFirst(d.html, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	if d.head == nil || d.body == nil {
		return nil, errors.New("no head or body element")
	}
	return d, nil
}

// SetRootAttr sets or replaces an attribute on the html element.
func (d *Document) SetRootAttr(name, value string) {
	setAttr(d.html, name, value)
}

// RootAttr returns an attribute of the html element.
func (d *Document) RootAttr(name string) (string, bool) {
	return getAttr(d.html, name)
}

// HasControl reports whether any element carries the class.
func (d *Document) HasControl(class string) bool {
	return d.CountClass(class) > 0
}

// CountClass returns the number of elements carrying the class.
func (d *Document) CountClass(class string) int {
	count := 0
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			count++
		}
	})
	return count
}

// AppendControl appends the control as a button at the end of body.
func (d *Document) AppendControl(c theme.Control) error {
	if c.Class == "" {
		return errors.New("control without class")
	}
	btn := element(atom.Button, "",
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "class", Val: c.Class},
		html.Attribute{Key: "aria-label", Val: c.Label},
	)
	for _, icon := range c.Icons {
		svg := element(0, "svg",
			html.Attribute{Key: "class", Val: icon.Class},
			html.Attribute{Key: "viewBox", Val: "0 0 24 24"},
			html.Attribute{Key: "fill", Val: "none"},
		)
		svg.Namespace = "svg"
		p := element(0, "path",
			html.Attribute{Key: "d", Val: icon.Path},
			html.Attribute{Key: "stroke", Val: "currentColor"},
			html.Attribute{Key: "stroke-width", Val: "2"},
			html.Attribute{Key: "stroke-linecap", Val: "round"},
			html.Attribute{Key: "stroke-linejoin", Val: "round"},
		)
		p.Namespace = "svg"
		svg.AppendChild(p)
		btn.AppendChild(svg)
	}
	d.body.AppendChild(btn)
	return nil
}

// EnsureScript adds a deferred script to head unless a script with the same src exists.
func (d *Document) EnsureScript(src string) {
	found := findFirst(d.root, func(n *html.Node) bool {
		if n.DataAtom != atom.Script {
			return false
		}
		v, ok := getAttr(n, "src")
		return ok && v == src
	})
	if found != nil {
		return
	}
	d.head.AppendChild(element(atom.Script, "",
		html.Attribute{Key: "src", Val: src},
		html.Attribute{Key: "defer"},
	))
}

// Render writes the document as html.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// String renders the document to a string, for logging and tests.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

func element(a atom.Atom, name string, attrs ...html.Attribute) *html.Node {
	if name == "" {
		name = a.String()
	}
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name, Attr: attrs}
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	v, ok := getAttr(n, "class")
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(v), class)
}
