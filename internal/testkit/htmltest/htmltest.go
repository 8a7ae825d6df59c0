// Package htmltest parses rendered markup for assertions in tests.
package htmltest

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// Doc is a parsed document.
type Doc struct {
	Root   *html.Node
	Source string
}

// Render renders c with a background context and parses the output.
func Render(t testing.TB, c templ.Component) *Doc {
	t.Helper()
	return RenderContext(t, context.Background(), c)
}

// RenderContext renders c with ctx and parses the output.
func RenderContext(t testing.TB, ctx context.Context, c templ.Component) *Doc {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return Parse(t, buf.String())
}

// Parse parses markup.
func Parse(t testing.TB, source string) *Doc {
	t.Helper()
	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return &Doc{Root: root, Source: source}
}

// Find returns every element matching pred in document order.
func (d *Doc) Find(pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// All returns the elements named tag.
func (d *Doc) All(tag string) []*html.Node {
	return d.Find(func(n *html.Node) bool { return n.Data == tag })
}

// First returns the first element named tag, failing the test when absent.
func (d *Doc) First(t testing.TB, tag string) *html.Node {
	t.Helper()
	nodes := d.All(tag)
	if len(nodes) == 0 {
		t.Fatalf("no <%s> in %s", tag, d.Source)
	}
	return nodes[0]
}

// ByID returns the element with id, failing the test when absent.
func (d *Doc) ByID(t testing.TB, id string) *html.Node {
	t.Helper()
	nodes := d.Find(func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
	if len(nodes) == 0 {
		t.Fatalf("no element with id %q in %s", id, d.Source)
	}
	return nodes[0]
}

// ByAttr returns the elements whose attribute name equals value.
func (d *Doc) ByAttr(name, value string) []*html.Node {
	return d.Find(func(n *html.Node) bool {
		v, ok := Attr(n, name)
		return ok && v == value
	})
}

// ByRole returns the elements with the explicit or implicit ARIA role.
func (d *Doc) ByRole(role string) []*html.Node {
	return d.Find(func(n *html.Node) bool { return Role(n) == role })
}

// LabelFor returns the text of the label associated with id.
func (d *Doc) LabelFor(id string) string {
	for _, label := range d.ByAttr("for", id) {
		if label.Data == "label" {
			if text := Text(label); text != "" {
				return text
			}
		}
	}
	return ""
}

// Description returns the text referenced by the aria-describedby of n.
func (d *Doc) Description(n *html.Node) string {
	ref, ok := Attr(n, "aria-describedby")
	if !ok {
		return ""
	}
	var parts []string
	for _, id := range strings.Fields(ref) {
		for _, target := range d.ByAttr("id", id) {
			parts = append(parts, Text(target))
		}
	}
	return strings.Join(parts, " ")
}

// Count returns how many times substr occurs in the raw source.
func (d *Doc) Count(substr string) int {
	return strings.Count(d.Source, substr)
}

// Attr returns the value of attribute name.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether n carries attribute name.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the collapsed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Role returns the explicit role of n, or its implicit role for the
// elements the component library renders.
func Role(n *html.Node) string {
	if role, ok := Attr(n, "role"); ok {
		return role
	}
	switch n.Data {
	case "button":
		return "button"
	case "textarea":
		return "textbox"
	case "input":
		typ, _ := Attr(n, "type")
		switch strings.ToLower(typ) {
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "button", "submit", "reset":
			return "button"
		case "", "text", "email", "tel", "url", "search", "password":
			return "textbox"
		}
	}
	return ""
}

// Disabled reports whether n is disabled, directly or through an
// ancestor fieldset.
func Disabled(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if p == n || p.Data == "fieldset" {
			if HasAttr(p, "disabled") {
				return true
			}
		}
	}
	return false
}

// Activate reports whether a click on n would dispatch its activation
// handler. Disabled form controls swallow activation.
func Activate(n *html.Node) bool {
	return n != nil && !Disabled(n)
}
