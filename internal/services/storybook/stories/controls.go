package stories

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

const (
	argChecked       = "checked"
	argIndeterminate = "indeterminate"
	argDisabled      = "disabled"
	argError         = "error"
	argSize          = "size"
	argVariant       = "variant"
	argLabel         = "label"
	argDescription   = "description"
)

func names[V fmt.Stringer](values []V) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

func selectControl[V fmt.Stringer](name string, values []V) Control {
	var zero V
	return Control{Name: name, Kind: ControlSelect, Options: names(values), Default: zero.String()}
}

func boolControl(name string) Control {
	return Control{Name: name, Kind: ControlBool, Default: strconv.FormatBool(false)}
}

func textControl(name, def string) Control {
	return Control{Name: name, Kind: ControlText, Default: def}
}

func controlSize(a Args) ui.ControlSize {
	size, _ := ui.ParseControlSize(a.String(argSize))
	return size
}

// box wraps items in a div with class.
func box(class string, items ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="`+templ.EscapeString(class)+`">`); err != nil {
			return err
		}
		for _, item := range items {
			if item == nil {
				continue
			}
			if err := item.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func row(items ...templ.Component) templ.Component {
	return box("flex flex-wrap items-center gap-4", items...)
}

func column(items ...templ.Component) templ.Component {
	return box("flex flex-col gap-4", items...)
}

// span renders escaped text in a span with class.
func span(class, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="`+templ.EscapeString(class)+`">`+templ.EscapeString(text)+`</span>`)
		return err
	})
}

// caption labels a showcase row.
func caption(text string) templ.Component {
	return span("w-24 text-sm text-[var(--color-muted-foreground)]", text)
}

func labelled(label string, items ...templ.Component) templ.Component {
	return row(append([]templ.Component{caption(label)}, items...)...)
}
