package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui/internal/markup"
	"github.com/louisbranch/vtnds/ui/variant"
)

// ButtonVariant is the visual intent of a Button.
type ButtonVariant int

// Button variants. The zero value is ButtonVariantDefault.
const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDestructive
	ButtonVariantOutline
	ButtonVariantGhost
	ButtonVariantLink
)

var buttonVariantNames = map[ButtonVariant]string{
	ButtonVariantDefault:     "default",
	ButtonVariantSecondary:   "secondary",
	ButtonVariantDestructive: "destructive",
	ButtonVariantOutline:     "outline",
	ButtonVariantGhost:       "ghost",
	ButtonVariantLink:        "link",
}

func (v ButtonVariant) String() string {
	if name, ok := buttonVariantNames[v]; ok {
		return name
	}
	return buttonVariantNames[ButtonVariantDefault]
}

// Valid reports whether v is one of the declared variants.
func (v ButtonVariant) Valid() bool {
	_, ok := buttonVariantNames[v]
	return ok
}

// ButtonVariants lists the declared variants in documentation order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{
		ButtonVariantDefault,
		ButtonVariantSecondary,
		ButtonVariantDestructive,
		ButtonVariantOutline,
		ButtonVariantGhost,
		ButtonVariantLink,
	}
}

// ParseButtonVariant parses a variant name. An empty string yields the default.
func ParseButtonVariant(raw string) (ButtonVariant, error) {
	return variant.Parse("variant", raw, ButtonVariantDefault, ButtonVariants()...)
}

// ButtonSize controls height, padding and type scale.
// Heights: sm 24px, md 32px, lg 40px. Icon sizes are squares of the same heights.
type ButtonSize int

// Button sizes. The zero value is ButtonSizeMD.
const (
	ButtonSizeMD ButtonSize = iota
	ButtonSizeSM
	ButtonSizeLG
	ButtonSizeIconSM
	ButtonSizeIconMD
	ButtonSizeIconLG
)

var buttonSizeNames = map[ButtonSize]string{
	ButtonSizeMD:     "md",
	ButtonSizeSM:     "sm",
	ButtonSizeLG:     "lg",
	ButtonSizeIconSM: "icon-sm",
	ButtonSizeIconMD: "icon-md",
	ButtonSizeIconLG: "icon-lg",
}

func (s ButtonSize) String() string {
	if name, ok := buttonSizeNames[s]; ok {
		return name
	}
	return buttonSizeNames[ButtonSizeMD]
}

// Valid reports whether s is one of the declared sizes.
func (s ButtonSize) Valid() bool {
	_, ok := buttonSizeNames[s]
	return ok
}

// ButtonSizes lists the declared sizes in documentation order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSizeSM, ButtonSizeMD, ButtonSizeLG, ButtonSizeIconSM, ButtonSizeIconMD, ButtonSizeIconLG}
}

// ParseButtonSize parses a size name. An empty string yields the default.
func ParseButtonSize(raw string) (ButtonSize, error) {
	return variant.Parse("size", raw, ButtonSizeMD, ButtonSizes()...)
}

var buttonBase = []string{
	"inline-flex items-center justify-center",
	"font-medium",
	"transition-colors duration-150",
	"focus-visible:outline-none focus-visible:ring-2",
	tv("focus-visible:ring", tokens.ColorRing),
	"focus-visible:ring-offset-2",
	"disabled:pointer-events-none disabled:opacity-50",
	"border-0 cursor-pointer",
}

var buttonVariantAxis = variant.Axis[ButtonVariant]{
	Name:    "variant",
	Default: ButtonVariantDefault,
	Values: map[ButtonVariant][]string{
		ButtonVariantDefault: {
			tv("bg", tokens.ColorPrimaryDefault),
			tv("text", tokens.ColorPrimaryForeground),
			tv("hover:bg", tokens.ColorPrimaryHover),
			tv("active:bg", tokens.ColorPrimaryActive),
		},
		ButtonVariantSecondary: {
			tv("bg", tokens.ColorSecondaryDefault),
			tv("text", tokens.ColorSecondaryForeground),
			tv("hover:bg", tokens.ColorSecondaryHover),
			tv("active:bg", tokens.ColorSecondaryActive),
		},
		ButtonVariantDestructive: {
			tv("bg", tokens.ColorDestructiveDefault),
			tv("text", tokens.ColorDestructiveForeground),
			tv("hover:bg", tokens.ColorDestructiveHover),
			tv("active:bg", tokens.ColorDestructiveActive),
			"focus-visible:ring-red-500/20",
		},
		ButtonVariantOutline: {
			tv("bg", tokens.ColorOutlineDefault),
			tv("text", tokens.ColorForeground),
			"border", tv("border", tokens.ColorOutlineBorder),
			tv("hover:bg", tokens.ColorOutlineHover),
			tv("active:bg", tokens.ColorOutlineActive),
		},
		ButtonVariantGhost: {
			tv("bg", tokens.ColorGhostDefault),
			tv("text", tokens.ColorForeground),
			tv("hover:bg", tokens.ColorGhostHover),
			tv("active:bg", tokens.ColorGhostActive),
		},
		ButtonVariantLink: {
			"bg-transparent",
			tv("text", tokens.ColorPrimaryDefault),
			"underline-offset-4",
			"hover:underline",
			tv("hover:text", tokens.ColorPrimaryHover),
			"p-0 h-auto",
		},
	},
}

var buttonSizeAxis = variant.Axis[ButtonSize]{
	Name:    "size",
	Default: ButtonSizeMD,
	Values: map[ButtonSize][]string{
		ButtonSizeSM:     {"h-6", "px-2", "text-xs", tv("rounded", tokens.RadiusDefault), "gap-1"},
		ButtonSizeMD:     {"h-8", "px-2.5", "text-sm", tv("rounded", tokens.RadiusDefault), "gap-1.5"},
		ButtonSizeLG:     {"h-10", "px-3", "text-sm", tv("rounded", tokens.RadiusDefault), "gap-2"},
		ButtonSizeIconSM: {"h-6 w-6", "p-0", tv("rounded", tokens.RadiusDefault)},
		ButtonSizeIconMD: {"h-8 w-8", "p-0", tv("rounded", tokens.RadiusDefault)},
		ButtonSizeIconLG: {"h-10 w-10", "p-0", tv("rounded", tokens.RadiusDefault)},
	},
}

var buttonFullWidth = variant.Flag{On: []string{"w-full"}}

// ButtonStyle selects the Button variant axes.
type ButtonStyle struct {
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
}

// ButtonClasses resolves the Button classes for style followed by overrides.
func ButtonClasses(style ButtonStyle, overrides ...string) string {
	return variant.Resolve([][]string{
		buttonBase,
		buttonVariantAxis.Tokens(style.Variant),
		buttonSizeAxis.Tokens(style.Size),
		buttonFullWidth.Tokens(style.FullWidth),
	}, overrides...)
}

// ButtonProps configures a Button.
type ButtonProps struct {
	// ID is rendered verbatim when set.
	ID string
	// Type is the native button type; empty leaves the browser default.
	Type      string
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	Disabled  bool
	// Loading shows a spinner, disables interaction and marks the button busy.
	Loading bool
	// Label is the text content. Children, when set, renders after Label.
	Label    string
	Children templ.Component
	// LeftIcon is replaced by the spinner while loading.
	LeftIcon templ.Component
	// RightIcon is not rendered while loading.
	RightIcon templ.Component
	// Class holds override tokens merged after the variant classes.
	Class string
	// Attrs are native attributes such as hx-post, name or aria-label.
	Attrs templ.Attributes
}

// Interactive reports whether the button accepts activation.
func (p ButtonProps) Interactive() bool {
	return !p.Disabled && !p.Loading
}

var buttonClaimed = []string{"id", "type", "class", "disabled", "aria-disabled", "aria-busy"}

// Button renders a native button. Icon-only buttons need an aria-label in
// Attrs; the component cannot detect its absence.
func Button(props ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.NewWriter(ctx, w)
		disabled := !props.Interactive()
		m.OpenWith("button", markup.Rest(props.Attrs, buttonClaimed...),
			markup.Opt("id", props.ID),
			markup.Opt("type", props.Type),
			markup.A("class", ButtonClasses(ButtonStyle{
				Variant:   props.Variant,
				Size:      props.Size,
				FullWidth: props.FullWidth,
			}, props.Class)),
			markup.Flag("disabled", disabled),
			markup.A("aria-disabled", boolString(disabled)),
			markup.A("aria-busy", boolString(props.Loading)),
		)
		switch {
		case props.Loading:
			writeSpinner(m, "shrink-0")
		case props.LeftIcon != nil:
			writeIconSlot(m, props.LeftIcon, "left")
		}
		if props.Label != "" || props.Children != nil {
			m.Open("span")
			m.Text(props.Label)
			m.Component(props.Children)
			m.Close("span")
		}
		if props.RightIcon != nil && !props.Loading {
			writeIconSlot(m, props.RightIcon, "right")
		}
		m.Close("button")
		return m.Err()
	})
}

func writeIconSlot(m *markup.Writer, icon templ.Component, slot string) {
	m.Open("span", markup.A("class", "shrink-0"), markup.A("aria-hidden", "true"), markup.A("data-slot", slot+"-icon"))
	m.Component(icon)
	m.Close("span")
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
