package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui/internal/markup"
	"github.com/louisbranch/vtnds/ui/variant"
)

// AddonAlign positions an addon relative to the group control.
type AddonAlign int

// Addon alignments. The zero value is AlignInlineStart.
const (
	AlignInlineStart AddonAlign = iota
	AlignInlineEnd
	AlignBlockStart
	AlignBlockEnd
)

var addonAlignNames = map[AddonAlign]string{
	AlignInlineStart: "inline-start",
	AlignInlineEnd:   "inline-end",
	AlignBlockStart:  "block-start",
	AlignBlockEnd:    "block-end",
}

func (a AddonAlign) String() string {
	if name, ok := addonAlignNames[a]; ok {
		return name
	}
	return addonAlignNames[AlignInlineStart]
}

// Valid reports whether a is one of the declared alignments.
func (a AddonAlign) Valid() bool {
	_, ok := addonAlignNames[a]
	return ok
}

// Inline reports whether a is an inline alignment. Unknown values count as
// inline-start.
func (a AddonAlign) Inline() bool {
	return a != AlignBlockStart && a != AlignBlockEnd
}

// AddonAligns lists the declared alignments.
func AddonAligns() []AddonAlign {
	return []AddonAlign{AlignInlineStart, AlignInlineEnd, AlignBlockStart, AlignBlockEnd}
}

// ParseAddonAlign parses an alignment name. An empty string yields inline-start.
func ParseAddonAlign(raw string) (AddonAlign, error) {
	return variant.Parse("align", raw, AlignInlineStart, AddonAligns()...)
}

// GroupButtonVariant is the visual intent of an InputGroupButton.
type GroupButtonVariant int

// Group button variants. The zero value is GroupButtonGhost.
const (
	GroupButtonGhost GroupButtonVariant = iota
	GroupButtonDefault
	GroupButtonSecondary
	GroupButtonDestructive
	GroupButtonOutline
	GroupButtonLink
)

var groupButtonVariantNames = map[GroupButtonVariant]string{
	GroupButtonGhost:       "ghost",
	GroupButtonDefault:     "default",
	GroupButtonSecondary:   "secondary",
	GroupButtonDestructive: "destructive",
	GroupButtonOutline:     "outline",
	GroupButtonLink:        "link",
}

func (v GroupButtonVariant) String() string {
	if name, ok := groupButtonVariantNames[v]; ok {
		return name
	}
	return groupButtonVariantNames[GroupButtonGhost]
}

// Valid reports whether v is one of the declared variants.
func (v GroupButtonVariant) Valid() bool {
	_, ok := groupButtonVariantNames[v]
	return ok
}

// GroupButtonVariants lists the declared variants.
func GroupButtonVariants() []GroupButtonVariant {
	return []GroupButtonVariant{
		GroupButtonDefault, GroupButtonSecondary, GroupButtonDestructive,
		GroupButtonOutline, GroupButtonGhost, GroupButtonLink,
	}
}

// ParseGroupButtonVariant parses a variant name. An empty string yields ghost.
func ParseGroupButtonVariant(raw string) (GroupButtonVariant, error) {
	return variant.Parse("variant", raw, GroupButtonGhost, GroupButtonVariants()...)
}

// GroupButtonSize is the compact size scale of an InputGroupButton.
type GroupButtonSize int

// Group button sizes. The zero value is GroupButtonXS.
const (
	GroupButtonXS GroupButtonSize = iota
	GroupButtonSM
	GroupButtonIconXS
	GroupButtonIconSM
)

var groupButtonSizeNames = map[GroupButtonSize]string{
	GroupButtonXS:     "xs",
	GroupButtonSM:     "sm",
	GroupButtonIconXS: "icon-xs",
	GroupButtonIconSM: "icon-sm",
}

func (s GroupButtonSize) String() string {
	if name, ok := groupButtonSizeNames[s]; ok {
		return name
	}
	return groupButtonSizeNames[GroupButtonXS]
}

// Valid reports whether s is one of the declared sizes.
func (s GroupButtonSize) Valid() bool {
	_, ok := groupButtonSizeNames[s]
	return ok
}

// GroupButtonSizes lists the declared sizes.
func GroupButtonSizes() []GroupButtonSize {
	return []GroupButtonSize{GroupButtonXS, GroupButtonSM, GroupButtonIconXS, GroupButtonIconSM}
}

// ParseGroupButtonSize parses a size name. An empty string yields xs.
func ParseGroupButtonSize(raw string) (GroupButtonSize, error) {
	return variant.Parse("size", raw, GroupButtonXS, GroupButtonSizes()...)
}

var inputGroupBase = []string{
	"relative flex min-w-0 w-full",
	"focus-within:ring-2",
	tv("focus-within:ring", tokens.ColorRing),
	tv("rounded", tokens.RadiusDefault),
	"transition-shadow duration-150",
}

var inputGroupFocused = variant.Flag{On: []string{"ring-2", tv("ring", tokens.ColorRing)}}

var inputGroupAddonBase = []string{"flex items-center gap-1 pointer-events-auto"}

var inputGroupAddonAxis = variant.Axis[AddonAlign]{
	Name:    "align",
	Default: AlignInlineStart,
	Values: map[AddonAlign][]string{
		AlignInlineStart: {"absolute left-0 top-0 bottom-0", "pl-3", "z-10"},
		AlignInlineEnd:   {"absolute right-0 top-0 bottom-0", "pr-3", "z-10"},
		AlignBlockStart:  {"w-full", "pb-2", "order-first"},
		AlignBlockEnd:    {"w-full", "pt-2", "order-last"},
	},
}

var groupButtonBase = []string{
	"inline-flex items-center justify-center",
	"font-medium",
	"transition-colors duration-150",
	"focus-visible:outline-none focus-visible:ring-2",
	tv("focus-visible:ring", tokens.ColorRing),
	"focus-visible:ring-offset-1",
	"disabled:pointer-events-none disabled:opacity-50",
	"border-0 cursor-pointer",
}

var groupButtonVariantAxis = variant.Axis[GroupButtonVariant]{
	Name:    "variant",
	Default: GroupButtonGhost,
	Values: map[GroupButtonVariant][]string{
		GroupButtonDefault:     buttonVariantAxis.Values[ButtonVariantDefault],
		GroupButtonSecondary:   buttonVariantAxis.Values[ButtonVariantSecondary],
		GroupButtonDestructive: {
			tv("bg", tokens.ColorDestructiveDefault),
			tv("text", tokens.ColorDestructiveForeground),
			tv("hover:bg", tokens.ColorDestructiveHover),
			tv("active:bg", tokens.ColorDestructiveActive),
		},
		GroupButtonOutline:     buttonVariantAxis.Values[ButtonVariantOutline],
		GroupButtonGhost: {
			"bg-transparent",
			tv("text", tokens.ColorForeground),
			tv("hover:bg", tokens.ColorGhostHover),
			tv("active:bg", tokens.ColorGhostActive),
		},
		GroupButtonLink: {
			"bg-transparent",
			tv("text", tokens.ColorPrimaryDefault),
			"underline-offset-4",
			"hover:underline",
			tv("hover:text", tokens.ColorPrimaryHover),
		},
	},
}

var groupButtonSizeAxis = variant.Axis[GroupButtonSize]{
	Name:    "size",
	Default: GroupButtonXS,
	Values: map[GroupButtonSize][]string{
		GroupButtonXS:     {"h-5", "px-2", "text-xs", tv("rounded", tokens.RadiusSmall), "gap-1"},
		GroupButtonSM:     {"h-6", "px-2", "text-xs", tv("rounded", tokens.RadiusDefault), "gap-1"},
		GroupButtonIconXS: {"h-5 w-5", "p-0", tv("rounded", tokens.RadiusSmall)},
		GroupButtonIconSM: {"h-6 w-6", "p-0", tv("rounded", tokens.RadiusDefault)},
	},
}

var groupControlBase = []string{
	"flex w-full",
	"border",
	tv("border", tokens.ColorInput),
	tv("bg", tokens.ColorBackground),
	tv("text", tokens.ColorForeground),
	tv("placeholder:text", tokens.ColorMutedForeground),
	"transition-colors duration-150",
	"text-sm",
	tv("rounded", tokens.RadiusDefault),
	"shadow-sm",
	"focus-visible:outline-none focus-visible:ring-0",
	tv("focus-visible:border", tokens.ColorRing),
	"disabled:cursor-not-allowed disabled:opacity-50",
	"data-[slot=input-group-control]:w-full",
}

var groupInputBox = []string{"h-8", "px-3", "py-1.5"}

var groupTextareaBox = []string{"min-h-[80px]", "px-3", "py-2", "resize-y"}

var inputGroupTextBase = []string{
	"text-sm",
	tv("text", tokens.ColorMutedForeground),
	"whitespace-nowrap select-none",
}

// GroupState is the state an InputGroup shares with its slots.
type GroupState struct {
	// Focused is set when the caller marks the group focused or a control
	// slot requests autofocus.
	Focused  bool
	Disabled bool
	// InlineStart and InlineEnd report occupied inline edges.
	InlineStart bool
	InlineEnd   bool
	BlockStart  bool
	BlockEnd    bool
}

type groupKey struct{}

// WithGroupState returns ctx carrying state for group slots.
func WithGroupState(ctx context.Context, state GroupState) context.Context {
	return context.WithValue(ctx, groupKey{}, state)
}

// GroupStateFrom returns the enclosing group state, if any.
func GroupStateFrom(ctx context.Context) (GroupState, bool) {
	if ctx == nil {
		return GroupState{}, false
	}
	state, ok := ctx.Value(groupKey{}).(GroupState)
	return state, ok
}

// InputGroupClasses resolves the container classes.
func InputGroupClasses(state GroupState, overrides ...string) string {
	return variant.Resolve([][]string{
		inputGroupBase,
		inputGroupFocused.Tokens(state.Focused),
		variant.When(state.BlockStart || state.BlockEnd, "flex-wrap"),
	}, overrides...)
}

// InputGroupAddonClasses resolves the addon classes for align.
func InputGroupAddonClasses(align AddonAlign, overrides ...string) string {
	return variant.Resolve([][]string{inputGroupAddonBase, inputGroupAddonAxis.Tokens(align)}, overrides...)
}

// GroupButtonStyle selects the InputGroupButton variant axes.
type GroupButtonStyle struct {
	Variant GroupButtonVariant
	Size    GroupButtonSize
}

// InputGroupButtonClasses resolves the group button classes.
func InputGroupButtonClasses(style GroupButtonStyle, overrides ...string) string {
	return variant.Resolve([][]string{
		groupButtonBase,
		groupButtonVariantAxis.Tokens(style.Variant),
		groupButtonSizeAxis.Tokens(style.Size),
	}, overrides...)
}

// InputGroupInputClasses resolves the group input classes, padding the
// inline edges occupied by addons.
func InputGroupInputClasses(state GroupState, overrides ...string) string {
	return variant.Resolve([][]string{groupControlBase, groupInputBox, edgePadding(state)}, overrides...)
}

// InputGroupTextareaClasses resolves the group textarea classes.
func InputGroupTextareaClasses(state GroupState, overrides ...string) string {
	return variant.Resolve([][]string{groupControlBase, groupTextareaBox, edgePadding(state)}, overrides...)
}

// InputGroupTextClasses resolves the text slot classes.
func InputGroupTextClasses(overrides ...string) string {
	return variant.Resolve([][]string{inputGroupTextBase}, overrides...)
}

func edgePadding(state GroupState) []string {
	return variant.Compose(
		variant.When(state.InlineStart, "pl-9"),
		variant.When(state.InlineEnd, "pr-9"),
	)
}

// InputGroupProps configures an InputGroup.
type InputGroupProps struct {
	ID string
	// Focused renders the shared focus ring without live focus.
	Focused bool
	// Disabled disables every control and button slot.
	Disabled bool
	Class    string
	Attrs    templ.Attributes
}

// InputGroup renders a container that draws one focus ring around its
// slots. Addon and control slots built by this package are inspected to
// derive the GroupState passed to every slot.
func InputGroup(props InputGroupProps, slots ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := GroupState{Focused: props.Focused, Disabled: props.Disabled}
		for _, slot := range slots {
			switch s := slot.(type) {
			case *AddonSlot:
				switch s.props.Align {
				case AlignInlineEnd:
					state.InlineEnd = true
				case AlignBlockStart:
					state.BlockStart = true
				case AlignBlockEnd:
					state.BlockEnd = true
				default:
					state.InlineStart = true
				}
			case *ControlSlot:
				if s.autofocus() {
					state.Focused = true
				}
			}
		}

		m := markup.NewWriter(ctx, w)
		m.OpenWith("div", markup.Rest(props.Attrs, "id", "class", "role", "data-slot", "data-focused", "data-disabled"),
			markup.Opt("id", props.ID),
			markup.A("class", InputGroupClasses(state, props.Class)),
			markup.A("role", "group"),
			markup.A("data-slot", "input-group"),
			markup.A("data-focused", boolString(state.Focused)),
			markup.If(state.Disabled, "data-disabled", "true"),
		)
		slotCtx := WithGroupState(ctx, state)
		for _, slot := range slots {
			m.ComponentIn(slotCtx, slot)
		}
		m.Close("div")
		return m.Err()
	})
}

// AddonProps configures an InputGroupAddon.
type AddonProps struct {
	Align AddonAlign
	Class string
	Attrs templ.Attributes
}

// AddonSlot is an addon child of an InputGroup.
type AddonSlot struct {
	props    AddonProps
	children []templ.Component
}

// InputGroupAddon positions children at the edge selected by Align.
func InputGroupAddon(props AddonProps, children ...templ.Component) *AddonSlot {
	return &AddonSlot{props: props, children: children}
}

// Align reports the addon alignment.
func (a *AddonSlot) Align() AddonAlign {
	return a.props.Align
}

// Render implements templ.Component.
func (a *AddonSlot) Render(ctx context.Context, w io.Writer) error {
	m := markup.NewWriter(ctx, w)
	m.OpenWith("div", markup.Rest(a.props.Attrs, "class", "data-slot", "data-align"),
		markup.A("class", InputGroupAddonClasses(a.props.Align, a.props.Class)),
		markup.A("data-slot", "input-group-addon"),
		markup.A("data-align", a.props.Align.String()),
	)
	for _, child := range a.children {
		m.Component(child)
	}
	m.Close("div")
	return m.Err()
}

// GroupButtonProps configures an InputGroupButton.
type GroupButtonProps struct {
	// Type defaults to "button" so the control never submits a form.
	Type     string
	Variant  GroupButtonVariant
	Size     GroupButtonSize
	Disabled bool
	Label    string
	Children templ.Component
	Class    string
	Attrs    templ.Attributes
}

// InputGroupButton renders a compact button for use inside an addon.
func InputGroupButton(props GroupButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state, _ := GroupStateFrom(ctx)
		buttonType := props.Type
		if buttonType == "" {
			buttonType = "button"
		}
		disabled := props.Disabled || state.Disabled
		m := markup.NewWriter(ctx, w)
		m.OpenWith("button", markup.Rest(props.Attrs, "type", "class", "disabled"),
			markup.A("type", buttonType),
			markup.A("class", InputGroupButtonClasses(GroupButtonStyle{Variant: props.Variant, Size: props.Size}, props.Class)),
			markup.Flag("disabled", disabled),
		)
		m.Text(props.Label)
		m.Component(props.Children)
		m.Close("button")
		return m.Err()
	})
}

// InputGroupTextProps configures an InputGroupText.
type InputGroupTextProps struct {
	Text     string
	Children templ.Component
	Class    string
	Attrs    templ.Attributes
}

// InputGroupText renders static, non-selectable text.
func InputGroupText(props InputGroupTextProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.NewWriter(ctx, w)
		m.OpenWith("span", markup.Rest(props.Attrs, "class"),
			markup.A("class", InputGroupTextClasses(props.Class)),
		)
		m.Text(props.Text)
		m.Component(props.Children)
		m.Close("span")
		return m.Err()
	})
}

// GroupControlProps configures an InputGroupInput or InputGroupTextarea.
type GroupControlProps struct {
	ID          string
	Type        string
	Name        string
	Value       string
	Placeholder string
	// Rows applies to textareas only.
	Rows      int
	Disabled  bool
	Autofocus bool
	Class     string
	Attrs     templ.Attributes
}

// ControlSlot is the input or textarea child of an InputGroup.
type ControlSlot struct {
	kind  string
	props GroupControlProps
}

// InputGroupInput renders the group's single-line control.
func InputGroupInput(props GroupControlProps) *ControlSlot {
	return &ControlSlot{kind: KindInput, props: props}
}

// InputGroupTextarea renders the group's multi-line control.
func InputGroupTextarea(props GroupControlProps) *ControlSlot {
	return &ControlSlot{kind: KindTextarea, props: props}
}

func (c *ControlSlot) autofocus() bool {
	return c.props.Autofocus || markup.Has(c.props.Attrs, "autofocus")
}

var groupControlClaimed = []string{
	"id", "type", "class", "name", "value", "placeholder", "rows",
	"disabled", "autofocus", "data-slot",
}

// Render implements templ.Component.
func (c *ControlSlot) Render(ctx context.Context, w io.Writer) error {
	controlID, err := ControlID(ctx, c.kind, c.props.ID)
	if err != nil {
		return err
	}
	state, _ := GroupStateFrom(ctx)
	disabled := c.props.Disabled || state.Disabled
	rest := markup.Rest(c.props.Attrs, groupControlClaimed...)

	m := markup.NewWriter(ctx, w)
	if c.kind == KindTextarea {
		rows := ""
		if c.props.Rows > 0 {
			rows = strconv.Itoa(c.props.Rows)
		}
		m.OpenWith("textarea", rest,
			markup.A("id", controlID),
			markup.Opt("name", c.props.Name),
			markup.Opt("placeholder", c.props.Placeholder),
			markup.Opt("rows", rows),
			markup.A("class", InputGroupTextareaClasses(state, c.props.Class)),
			markup.Flag("disabled", disabled),
			markup.Flag("autofocus", c.autofocus()),
			markup.A("data-slot", "input-group-control"),
		)
		m.Text(c.props.Value)
		m.Close("textarea")
		return m.Err()
	}
	m.OpenWith("input", rest,
		markup.A("id", controlID),
		markup.Opt("type", c.props.Type),
		markup.Opt("name", c.props.Name),
		markup.Opt("value", c.props.Value),
		markup.Opt("placeholder", c.props.Placeholder),
		markup.A("class", InputGroupInputClasses(state, c.props.Class)),
		markup.Flag("disabled", disabled),
		markup.Flag("autofocus", c.autofocus()),
		markup.A("data-slot", "input-group-control"),
	)
	return m.Err()
}
