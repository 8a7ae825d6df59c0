// Package markup writes escaped HTML for hand-built templ components.
package markup

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Name  string
	Value string
	Bool  bool
	skip  bool
}

// A returns a valued attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Opt returns a valued attribute that is omitted when value is empty.
func Opt(name, value string) Attr {
	return Attr{Name: name, Value: value, skip: value == ""}
}

// If returns a valued attribute that is omitted unless cond holds.
func If(cond bool, name, value string) Attr {
	return Attr{Name: name, Value: value, skip: !cond}
}

// Flag returns a boolean attribute present only when on.
func Flag(name string, on bool) Attr {
	return Attr{Name: name, Bool: true, skip: !on}
}

// Rest converts caller pass-through attributes, dropping names listed in
// claimed and names that are not valid attribute names. Output is sorted by
// name.
func Rest(attrs templ.Attributes, claimed ...string) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	skip := make(map[string]struct{}, len(claimed))
	for _, name := range claimed {
		skip[strings.ToLower(name)] = struct{}{}
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if _, ok := skip[strings.ToLower(name)]; ok || !validName(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Attr, 0, len(names))
	for _, name := range names {
		switch v := attrs[name].(type) {
		case nil:
		case bool:
			out = append(out, Flag(name, v))
		case string:
			out = append(out, A(name, v))
		case int:
			out = append(out, A(name, strconv.Itoa(v)))
		case fmt.Stringer:
			out = append(out, A(name, v.String()))
		default:
			out = append(out, A(name, fmt.Sprint(v)))
		}
	}
	return out
}

// validName reports whether name is safe to write as an attribute name:
// letters, digits and any of ":_.@-".
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ':' || r == '_' || r == '.' || r == '@' || r == '-':
		default:
			return false
		}
	}
	return true
}

// Has reports whether attrs carries name, ignoring case.
func Has(attrs templ.Attributes, name string) bool {
	for key := range attrs {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

// Writer accumulates the first write error so call sites stay linear.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewWriter wraps w for rendering within ctx.
func NewWriter(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

// Open writes a start tag. Void elements such as <input> use Open alone.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.raw("<" + tag)
	m.attrs(attrs)
	m.raw(">")
}

// OpenWith writes a start tag with pass-through attributes appended.
func (m *Writer) OpenWith(tag string, rest []Attr, attrs ...Attr) {
	m.raw("<" + tag)
	m.attrs(attrs)
	m.attrs(rest)
	m.raw(">")
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.raw("</" + tag + ">")
}

// Text writes escaped text.
func (m *Writer) Text(s string) {
	m.raw(templ.EscapeString(s))
}

// Raw writes trusted markup verbatim.
func (m *Writer) Raw(s string) {
	m.raw(s)
}

// Component renders c when it is non-nil.
func (m *Writer) Component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// ComponentIn renders c with ctx in place of the writer's context.
func (m *Writer) ComponentIn(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *Writer) attrs(attrs []Attr) {
	for _, attr := range attrs {
		if attr.skip || attr.Name == "" {
			continue
		}
		name := templ.EscapeString(attr.Name)
		if attr.Bool {
			m.raw(" " + name)
			continue
		}
		m.raw(" " + name + `="` + templ.EscapeString(attr.Value) + `"`)
	}
}

func (m *Writer) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}
