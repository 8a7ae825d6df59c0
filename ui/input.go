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

// InputVariant selects the Input treatment.
type InputVariant int

// Input variants. The zero value is InputVariantDefault.
const (
	InputVariantDefault InputVariant = iota
	InputVariantFile
)

func (v InputVariant) String() string {
	if v == InputVariantFile {
		return "file"
	}
	return "default"
}

// Valid reports whether v is one of the declared variants.
func (v InputVariant) Valid() bool {
	return v == InputVariantDefault || v == InputVariantFile
}

// InputVariants lists the declared variants.
func InputVariants() []InputVariant {
	return []InputVariant{InputVariantDefault, InputVariantFile}
}

// ParseInputVariant parses "default" or "file". An empty string yields the default.
func ParseInputVariant(raw string) (InputVariant, error) {
	return variant.Parse("variant", raw, InputVariantDefault, InputVariants()...)
}

var inputBase = []string{
	"w-full",
	"border",
	tv("bg", tokens.ColorBackground),
	tv("text", tokens.ColorForeground),
	tv("placeholder:text", tokens.ColorMutedForeground),
	"transition-colors duration-150",
	"focus-visible:outline-none focus-visible:ring-2",
	tv("focus-visible:ring", tokens.ColorRing),
	tv("focus-visible:border", tokens.ColorRing),
	"disabled:cursor-not-allowed disabled:opacity-50",
	"shadow-sm",
}

var inputSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"h-6", "px-2", "py-1", "text-xs", tv("rounded", tokens.RadiusDefault)},
		SizeMD: {"h-7", "px-2.5", "py-1.5", "text-xs", tv("rounded", tokens.RadiusDefault)},
		SizeLG: {"h-8", "px-3", "py-2", "text-sm", tv("rounded", tokens.RadiusDefault)},
	},
}

var inputVariantAxis = variant.Axis[InputVariant]{
	Name:    "variant",
	Default: InputVariantDefault,
	Values: map[InputVariant][]string{
		InputVariantDefault: {tv("border", tokens.ColorInput)},
		InputVariantFile: {
			tv("border", tokens.ColorInput),
			"file:border-0 file:bg-transparent file:text-sm file:font-medium",
			tv("file:text", tokens.ColorForeground),
			"file:mr-3",
			"cursor-pointer",
		},
	},
}

var inputError = variant.Flag{On: []string{
	tv("border", tokens.ColorDestructiveDefault),
	tv("focus-visible:border", tokens.ColorDestructiveDefault),
	tvAlpha("focus-visible:ring", tokens.ColorDestructiveDefault, "20"),
}}

var inputLabelSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"text-xs"},
		SizeMD: {"text-sm"},
		SizeLG: {"text-sm"},
	},
}

var inputHelperSizeAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"text-xs"},
		SizeMD: {"text-xs"},
		SizeLG: {"text-sm"},
	},
}

// InputStyle selects the Input variant axes.
type InputStyle struct {
	Size    ControlSize
	Variant InputVariant
	Error   bool
}

// InputClasses resolves the classes of the native input.
func InputClasses(style InputStyle, overrides ...string) string {
	return variant.Resolve([][]string{
		inputBase,
		inputSizeAxis.Tokens(style.Size),
		inputVariantAxis.Tokens(style.Variant),
		inputError.Tokens(style.Error),
	}, overrides...)
}

// InputLabelClasses resolves the label classes.
func InputLabelClasses(size ControlSize, disabled bool) string {
	return variant.Resolve([][]string{
		{"block", "font-medium", tv("text", tokens.ColorForeground), "mb-1.5"},
		inputLabelSizeAxis.Tokens(size),
		variant.When(disabled, "opacity-50", "cursor-not-allowed"),
	})
}

// InputHelperClasses resolves the helper or error text classes.
func InputHelperClasses(size ControlSize, hasError, disabled bool) string {
	tone := tv("text", tokens.ColorMutedForeground)
	if hasError {
		tone = tv("text", tokens.ColorDestructiveDefault)
	}
	return variant.Resolve([][]string{
		{"mt-1.5"},
		inputHelperSizeAxis.Tokens(size),
		{tone},
		variant.When(disabled, "opacity-50"),
	})
}

// InputBottomText returns the text shown below an Input: the error message
// when the input is in error and has one, otherwise the helper text.
func InputBottomText(hasError bool, helperText, errorMessage string) string {
	if hasError && errorMessage != "" {
		return errorMessage
	}
	return helperText
}

// EffectiveInputVariant returns the variant used for an input of the given
// native type. File inputs always use the file variant.
func EffectiveInputVariant(inputType string, v InputVariant) InputVariant {
	if strings.EqualFold(strings.TrimSpace(inputType), "file") {
		return InputVariantFile
	}
	return v
}

// InputProps configures an Input.
type InputProps struct {
	ID          string
	Type        string
	Name        string
	Value       string
	Placeholder string
	Label       string
	HelperText  string
	// ErrorMessage replaces HelperText while Error is set.
	ErrorMessage string
	Size         ControlSize
	Variant      InputVariant
	Error        bool
	Disabled     bool
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

var inputClaimed = []string{
	"id", "type", "class", "name", "value", "placeholder", "disabled",
	"aria-describedby", "aria-invalid",
}

// Input renders a labelled native input with optional helper or error text.
func Input(props InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		controlID, err := ControlID(ctx, KindInput, props.ID)
		if err != nil {
			return err
		}
		bottom := InputBottomText(props.Error, props.HelperText, props.ErrorMessage)
		helperID := ""
		if bottom != "" {
			helperID = controlID + "-helper"
		}

		m := markup.NewWriter(ctx, w)
		m.Open("div",
			markup.A("class", variant.CN("flex flex-col", props.WrapperClass)),
			markup.A("data-component", KindInput),
		)
		if props.Label != "" {
			m.Open("label", markup.A("for", controlID), markup.A("class", InputLabelClasses(props.Size, props.Disabled)))
			m.Text(props.Label)
			m.Close("label")
		}
		m.OpenWith("input", markup.Rest(props.Attrs, inputClaimed...),
			markup.A("id", controlID),
			markup.Opt("type", props.Type),
			markup.Opt("name", props.Name),
			markup.Opt("value", props.Value),
			markup.Opt("placeholder", props.Placeholder),
			markup.A("class", InputClasses(InputStyle{
				Size:    props.Size,
				Variant: EffectiveInputVariant(props.Type, props.Variant),
				Error:   props.Error,
			}, props.Class)),
			markup.Flag("disabled", props.Disabled),
			markup.Opt("aria-describedby", helperID),
			markup.If(props.Error, "aria-invalid", "true"),
		)
		if bottom != "" {
			m.Open("span", markup.A("id", helperID), markup.A("class", InputHelperClasses(props.Size, props.Error, props.Disabled)))
			m.Text(bottom)
			m.Close("span")
		}
		m.Close("div")
		return m.Err()
	})
}
