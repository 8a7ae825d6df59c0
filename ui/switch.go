package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui/internal/markup"
	"github.com/louisbranch/vtnds/ui/variant"
)

var switchTrackBase = []string{
	"relative inline-flex items-center shrink-0",
	"cursor-pointer",
	"rounded-full",
	"border-2 border-transparent",
	tv("bg", tokens.ColorInput),
	"transition-colors duration-150",
	"has-[:focus-visible]:outline-none has-[:focus-visible]:ring-2",
	tv("has-[:focus-visible]:ring", tokens.ColorRing),
	"has-[:focus-visible]:ring-offset-2",
	tv("has-[:checked]:bg", tokens.ColorPrimaryDefault),
	"has-[:disabled]:cursor-not-allowed has-[:disabled]:opacity-50",
}

var switchTrackSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"h-5 w-9"},
		SizeMD: {"h-6 w-11"},
		SizeLG: {"h-7 w-[52px]"},
	},
}

var switchTrackError = variant.Flag{On: []string{
	tv("bg", tokens.ColorDestructiveDefault),
	tv("has-[:checked]:bg", tokens.ColorDestructiveDefault),
}}

var switchThumbBase = []string{
	"pointer-events-none inline-block rounded-full",
	tv("bg", tokens.ColorBackground),
	"shadow-sm ring-0",
	"transition-transform duration-150",
}

var switchThumbSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"h-4 w-4", "translate-x-0", "peer-checked:translate-x-4"},
		SizeMD: {"h-5 w-5", "translate-x-0", "peer-checked:translate-x-5"},
		SizeLG: {"h-6 w-6", "translate-x-0", "peer-checked:translate-x-6"},
	},
}

// SwitchStyle selects the Switch variant axes.
type SwitchStyle struct {
	Size  ControlSize
	Error bool
}

// SwitchTrackClasses resolves the track classes.
func SwitchTrackClasses(style SwitchStyle, overrides ...string) string {
	return variant.Resolve([][]string{
		switchTrackBase,
		switchTrackSizeAxis.Tokens(style.Size),
		switchTrackError.Tokens(style.Error),
	}, overrides...)
}

// SwitchThumbClasses resolves the thumb classes.
func SwitchThumbClasses(size ControlSize) string {
	return variant.Resolve([][]string{switchThumbBase, switchThumbSizeAxis.Tokens(size)})
}

// SwitchLabelClasses resolves the label classes; they match Checkbox.
func SwitchLabelClasses(size ControlSize) string {
	return CheckboxLabelClasses(size)
}

// SwitchDescriptionClasses resolves the description classes; they match Checkbox.
func SwitchDescriptionClasses(size ControlSize) string {
	return CheckboxDescriptionClasses(size)
}

// SwitchProps configures a Switch.
type SwitchProps struct {
	ID          string
	Name        string
	Value       string
	Label       string
	Description string
	Size        ControlSize
	Error       bool
	Checked     bool
	Disabled    bool
	// Class overrides the track classes.
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

var switchClaimed = []string{
	"id", "type", "role", "class", "name", "value", "checked", "disabled",
	"aria-describedby", "aria-invalid",
}

// Switch renders a checkbox with role="switch" inside a styled track.
func Switch(props SwitchProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		controlID, err := ControlID(ctx, KindSwitch, props.ID)
		if err != nil {
			return err
		}
		descriptionID := ""
		if props.Description != "" {
			descriptionID = controlID + "-description"
		}
		state := "unchecked"
		if props.Checked {
			state = "checked"
		}

		m := markup.NewWriter(ctx, w)
		m.Open("div",
			markup.A("class", variant.CN("flex items-start gap-2", props.WrapperClass)),
			markup.A("data-component", KindSwitch),
		)
		m.Open("label",
			markup.A("for", controlID),
			markup.A("class", SwitchTrackClasses(SwitchStyle{Size: props.Size, Error: props.Error}, props.Class)),
			markup.A("data-state", state),
		)
		m.OpenWith("input", markup.Rest(props.Attrs, switchClaimed...),
			markup.A("type", "checkbox"),
			markup.A("role", "switch"),
			markup.A("id", controlID),
			markup.Opt("name", props.Name),
			markup.Opt("value", props.Value),
			markup.A("class", "peer sr-only"),
			markup.Flag("checked", props.Checked),
			markup.Flag("disabled", props.Disabled),
			markup.Opt("aria-describedby", descriptionID),
			markup.If(props.Error, "aria-invalid", "true"),
		)
		m.Open("span", markup.A("class", SwitchThumbClasses(props.Size)), markup.A("data-state", state))
		m.Close("span")
		m.Close("label")
		writeChoiceText(m, controlID, descriptionID, props.Label, props.Description, props.Size)
		m.Close("div")
		return m.Err()
	})
}
