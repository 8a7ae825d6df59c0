package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

// CanvasID is the id of the element that holds the rendered story.
const CanvasID = "story-canvas"

// ControlField is one editable argument on a story page.
type ControlField struct {
	Name    string
	Kind    string
	Options []string
	Value   string
}

// StoryView is everything a story page shows.
type StoryView struct {
	ComponentTitle string
	Summary        string
	StoryName      string
	ComponentSlug  string
	StorySlug      string
	Controls       []ControlField
	// Args are carried by the interaction form so the server sees the
	// current state.
	Args   []ControlField
	Canvas templ.Component
	// Interactive marks stories whose control posts activations.
	Interactive bool
}

// Story renders a story page body.
func Story(page PageContext, view StoryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := newOut(ctx, w)
		o.raw(`<header class="sb-header">`)
		o.open("p", "class", "sb-eyebrow")
		o.text(view.ComponentTitle)
		o.close("p")
		o.raw("<h1>")
		o.text(view.StoryName)
		o.raw("</h1>")
		o.open("p", "class", "sb-lede")
		o.text(view.Summary)
		o.close("p")
		o.raw("</header>")
		o.component(Canvas(page, view))
		controlsPanel(o, page, view)
		return o.err
	})
}

// Canvas renders the story frame. Interactive stories are wrapped in a form
// that posts each change to the toggle endpoint and swaps the frame.
func Canvas(page PageContext, view StoryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := newOut(ctx, w)
		o.open("section", "id", CanvasID, "class", "sb-canvas", "aria-label", T(page.Loc, "storybook.story.canvas"),
			"data-component", view.ComponentSlug, "data-story", view.StorySlug)
		toggle := ""
		if view.Interactive && page.Links.Toggle != nil {
			toggle = page.Links.Toggle(view.ComponentSlug, view.StorySlug)
		}
		if toggle == "" {
			o.component(view.Canvas)
			o.close("section")
			return o.err
		}
		o.open("form", "method", "post", "action", toggle,
			"hx-post", toggle, "hx-trigger", "change", "hx-target", "#"+CanvasID, "hx-swap", "outerHTML")
		for _, arg := range view.Args {
			o.open("input", "type", "hidden", "name", arg.Name, "value", arg.Value)
		}
		o.component(view.Canvas)
		o.open("p", "class", "sb-hint")
		o.text(T(page.Loc, "storybook.story.interactive"))
		o.close("p")
		o.close("form")
		o.close("section")
		return o.err
	})
}

func controlsPanel(o *out, page PageContext, view StoryView) {
	o.open("section", "class", "sb-controls", "aria-label", T(page.Loc, "storybook.story.controls"))
	o.raw("<h2>")
	o.text(T(page.Loc, "storybook.story.controls"))
	o.raw("</h2>")
	if len(view.Controls) == 0 || page.Links.Story == nil {
		o.open("p", "class", "sb-hint")
		o.text(T(page.Loc, "storybook.story.no_controls"))
		o.close("p")
		o.close("section")
		return
	}
	if page.Static {
		o.raw(`<dl class="sb-controls-form">`)
		for _, field := range view.Controls {
			o.raw(`<div class="sb-control"><dt>`)
			o.text(field.Name)
			o.raw("</dt><dd>")
			o.text(field.Value)
			o.raw("</dd></div>")
		}
		o.raw("</dl>")
		o.close("section")
		return
	}
	action := page.Links.Story(view.ComponentSlug, view.StorySlug)
	o.open("form", "method", "get", "action", action, "class", "sb-controls-form")
	for _, field := range view.Controls {
		o.raw(`<div class="sb-control">`)
		switch field.Kind {
		case "select":
			selectField(o, field)
		case "boolean":
			// The hidden false precedes the switch so an unchecked switch
			// still submits a value.
			o.open("input", "type", "hidden", "name", field.Name, "value", "false")
			checked, _ := strconv.ParseBool(field.Value)
			o.component(ui.Switch(ui.SwitchProps{
				ID:      "control-" + field.Name,
				Name:    field.Name,
				Value:   "true",
				Label:   field.Name,
				Size:    ui.SizeSM,
				Checked: checked,
			}))
		default:
			o.component(ui.Input(ui.InputProps{
				ID:    "control-" + field.Name,
				Name:  field.Name,
				Value: field.Value,
				Label: field.Name,
				Size:  ui.SizeSM,
			}))
		}
		o.raw("</div>")
	}
	for _, hidden := range []string{"lang", "theme"} {
		value := ""
		switch hidden {
		case "lang":
			value = page.Lang
		case "theme":
			value = page.Theme
		}
		o.open("input", "type", "hidden", "name", hidden, "value", value)
	}
	o.component(ui.Button(ui.ButtonProps{Type: "submit", Size: ui.ButtonSizeSM, Label: T(page.Loc, "storybook.story.apply")}))
	o.close("form")
	o.close("section")
}

func selectField(o *out, field ControlField) {
	id := "control-" + field.Name
	o.open("label", "for", id, "class", ui.InputLabelClasses(ui.SizeSM, false))
	o.text(field.Name)
	o.close("label")
	o.open("select", "id", id, "name", field.Name, "class", ui.InputClasses(ui.InputStyle{Size: ui.SizeSM}))
	for _, option := range field.Options {
		if option == field.Value {
			o.open("option", "value", option, "selected", "selected")
		} else {
			o.open("option", "value", option)
		}
		o.text(option)
		o.close("option")
	}
	o.close("select")
}

// ErrorPage renders a failed request.
func ErrorPage(page PageContext, status int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := newOut(ctx, w)
		o.open("section", "class", "sb-error", "role", "alert", "data-status", strconv.Itoa(status))
		o.raw("<h1>")
		o.text(strconv.Itoa(status))
		o.raw("</h1><p>")
		o.text(message)
		o.raw("</p>")
		o.open("a", "href", page.Links.Index)
		o.text(T(page.Loc, "storybook.error.back"))
		o.close("a")
		o.close("section")
		return o.err
	})
}
