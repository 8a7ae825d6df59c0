package templates

import (
	"context"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// out writes markup and keeps the first error.
type out struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newOut(ctx context.Context, w io.Writer) *out {
	return &out{ctx: ctx, w: w}
}

func (o *out) raw(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *out) text(s string) {
	o.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternate name, value; pairs with an
// empty value are skipped.
func (o *out) open(tag string, attrs ...string) {
	o.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		o.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	o.raw(">")
}

// openMap writes a start tag from a map, sorted for stable output.
func (o *out) openMap(tag string, attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, name, attrs[name])
	}
	o.open(tag, pairs...)
}

func (o *out) close(tag string) {
	o.raw("</" + tag + ">")
}

func (o *out) component(c templ.Component) {
	if o.err != nil || c == nil {
		return
	}
	o.err = c.Render(o.ctx, o.w)
}
