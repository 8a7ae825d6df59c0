package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui/internal/markup"
	"github.com/louisbranch/vtnds/ui/variant"
)

var checkboxBase = []string{
	"peer",
	"shrink-0",
	"appearance-none",
	"border",
	tv("border", tokens.ColorInput),
	tv("bg", tokens.ColorBackground),
	"transition-colors duration-150",
	"focus-visible:outline-none focus-visible:ring-2",
	tv("focus-visible:ring", tokens.ColorRing),
	"focus-visible:ring-offset-2",
	tv("checked:bg", tokens.ColorPrimaryDefault),
	tv("checked:border", tokens.ColorPrimaryDefault),
	tv("indeterminate:bg", tokens.ColorPrimaryDefault),
	tv("indeterminate:border", tokens.ColorPrimaryDefault),
	"disabled:cursor-not-allowed disabled:opacity-50",
	"cursor-pointer",
}

var checkboxSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"h-4 w-4", tv("rounded", tokens.RadiusSmall)},
		SizeMD: {"h-5 w-5", tv("rounded", tokens.RadiusSmall)},
		SizeLG: {"h-6 w-6", tv("rounded", tokens.RadiusDefault)},
	},
}

var checkboxError = variant.Flag{On: []string{tv("border", tokens.ColorDestructiveDefault)}}

// glyphSizeAxis sizes the check and minus glyphs drawn over a Checkbox.
var glyphSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"h-3 w-3"},
		SizeMD: {"h-3.5 w-3.5"},
		SizeLG: {"h-4 w-4"},
	},
}

var choiceLabelBase = []string{
	"font-medium",
	tv("text", tokens.ColorForeground),
	"cursor-pointer",
	"peer-disabled:cursor-not-allowed peer-disabled:opacity-50",
}

var choiceDescriptionBase = []string{
	tv("text", tokens.ColorMutedForeground),
	"peer-disabled:opacity-50",
}

// CheckboxStyle selects the Checkbox variant axes.
type CheckboxStyle struct {
	Size  ControlSize
	Error bool
}

// CheckboxClasses resolves the classes of the native checkbox.
func CheckboxClasses(style CheckboxStyle, overrides ...string) string {
	return variant.Resolve([][]string{
		checkboxBase,
		checkboxSizeAxis.Tokens(style.Size),
		checkboxError.Tokens(style.Error),
	}, overrides...)
}

// CheckboxLabelClasses resolves the label classes for size.
func CheckboxLabelClasses(size ControlSize) string {
	return variant.Resolve([][]string{choiceLabelBase, labelAxis.Tokens(size)})
}

// CheckboxDescriptionClasses resolves the description classes for size.
func CheckboxDescriptionClasses(size ControlSize) string {
	return variant.Resolve([][]string{choiceDescriptionBase, descriptionAxis.Tokens(size)})
}

// CheckboxProps configures a Checkbox.
type CheckboxProps struct {
	ID          string
	Name        string
	Value       string
	Label       string
	Description string
	Size        ControlSize
	Error       bool
	Checked     bool
	// Indeterminate shows the minus glyph in place of the check glyph and
	// sets the live control's indeterminate property.
	Indeterminate bool
	Disabled      bool
	// Class overrides the native checkbox classes.
	Class string
	// WrapperClass overrides the outer container classes.
	WrapperClass string
	Attrs        templ.Attributes
}

var checkboxClaimed = []string{
	"id", "type", "class", "name", "value", "checked", "disabled",
	"aria-describedby", "aria-invalid", "data-indeterminate",
}

// Checkbox renders a native checkbox with an optional label and description.
// The indeterminate sync script is written after the first checkbox of each
// scope.
func Checkbox(props CheckboxProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		controlID, err := ControlID(ctx, KindCheckbox, props.ID)
		if err != nil {
			return err
		}
		descriptionID := ""
		if props.Description != "" {
			descriptionID = controlID + "-description"
		}

		m := markup.NewWriter(ctx, w)
		m.Open("div",
			markup.A("class", variant.CN("flex items-start gap-2", props.WrapperClass)),
			markup.A("data-component", KindCheckbox),
		)
		m.Open("div", markup.A("class", "relative flex items-center justify-center"))
		m.OpenWith("input", markup.Rest(props.Attrs, checkboxClaimed...),
			markup.A("type", "checkbox"),
			markup.A("id", controlID),
			markup.Opt("name", props.Name),
			markup.Opt("value", props.Value),
			markup.A("class", CheckboxClasses(CheckboxStyle{Size: props.Size, Error: props.Error}, props.Class)),
			markup.Flag("checked", props.Checked),
			markup.Flag("disabled", props.Disabled),
			markup.Opt("aria-describedby", descriptionID),
			markup.If(props.Error, "aria-invalid", "true"),
			markup.A("data-indeterminate", boolString(props.Indeterminate)),
		)
		glyph := strings.Join(glyphSizeAxis.Tokens(props.Size), " ")
		writeCheckGlyph(m, variant.CN(glyph, "opacity-0 peer-checked:opacity-100", hiddenIf(props.Indeterminate)))
		writeMinusGlyph(m, variant.CN(glyph, "opacity-100", hiddenIf(!props.Indeterminate)))
		m.Close("div")
		writeChoiceText(m, controlID, descriptionID, props.Label, props.Description, props.Size)
		m.Close("div")
		m.Component(IndeterminateSync())
		return m.Err()
	})
}

// writeChoiceText writes the label and description column shared by
// Checkbox and Switch.
func writeChoiceText(m *markup.Writer, controlID, descriptionID, label, description string, size ControlSize) {
	if label == "" && description == "" {
		return
	}
	m.Open("div", markup.A("class", "flex flex-col"))
	if label != "" {
		m.Open("label", markup.A("for", controlID), markup.A("class", CheckboxLabelClasses(size)))
		m.Text(label)
		m.Close("label")
	}
	if description != "" {
		m.Open("span", markup.A("id", descriptionID), markup.A("class", CheckboxDescriptionClasses(size)))
		m.Text(description)
		m.Close("span")
	}
	m.Close("div")
}

func hiddenIf(cond bool) string {
	if cond {
		return "hidden"
	}
	return ""
}
