package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/testkit/htmltest"
	"github.com/louisbranch/vtnds/ui/variant"
)

func TestInputGroupContainer(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, InputGroup(InputGroupProps{ID: "search"},
		InputGroupInput(GroupControlProps{ID: "q", Placeholder: "Search"}),
	))
	group := doc.ByID(t, "search")
	if htmltest.Role(group) != "group" {
		t.Fatalf("role = %q", htmltest.Role(group))
	}
	if v, _ := htmltest.Attr(group, "data-focused"); v != "false" {
		t.Fatalf("data-focused = %q", v)
	}
	if !htmltest.HasClass(group, "focus-within:ring-2") || htmltest.HasClass(group, "ring-2") {
		t.Fatalf("unfocused group classes = %v", htmltest.Classes(group))
	}
	input := doc.ByID(t, "q")
	if v, _ := htmltest.Attr(input, "data-slot"); v != "input-group-control" {
		t.Fatalf("data-slot = %q", v)
	}
	if !htmltest.HasClass(input, "focus-visible:ring-0") {
		t.Fatalf("control should delegate the ring: %v", htmltest.Classes(input))
	}
}

func TestInputGroupFocusFromAutofocusedSlot(t *testing.T) {
	t.Parallel()

	for _, control := range []*ControlSlot{
		InputGroupInput(GroupControlProps{Autofocus: true}),
		InputGroupTextarea(GroupControlProps{Attrs: templ.Attributes{"autofocus": true}}),
	} {
		doc := htmltest.Render(t, InputGroup(InputGroupProps{ID: "g"}, control))
		group := doc.ByID(t, "g")
		if v, _ := htmltest.Attr(group, "data-focused"); v != "true" {
			t.Fatalf("data-focused = %q", v)
		}
		if !htmltest.HasClass(group, "ring-2") {
			t.Fatalf("focused group missing ring: %v", htmltest.Classes(group))
		}
		controls := doc.ByAttr("data-slot", "input-group-control")
		if len(controls) != 1 || !htmltest.HasAttr(controls[0], "autofocus") {
			t.Fatalf("control should carry autofocus: %s", doc.Source)
		}
	}

	doc := htmltest.Render(t, InputGroup(InputGroupProps{ID: "g", Focused: true}))
	if !htmltest.HasClass(doc.ByID(t, "g"), "ring-2") {
		t.Fatalf("Focused prop should draw the ring")
	}
}

func TestInputGroupAddonAlignment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		align AddonAlign
		want  []string
	}{
		{AlignInlineStart, []string{"absolute", "left-0", "pl-3"}},
		{AlignInlineEnd, []string{"absolute", "right-0", "pr-3"}},
		{AlignBlockStart, []string{"w-full", "pb-2", "order-first"}},
		{AlignBlockEnd, []string{"w-full", "pt-2", "order-last"}},
	}
	for _, tc := range cases {
		doc := htmltest.Render(t, InputGroupAddon(AddonProps{Align: tc.align}, InputGroupText(InputGroupTextProps{Text: "@"})))
		addon := doc.ByAttr("data-slot", "input-group-addon")[0]
		if v, _ := htmltest.Attr(addon, "data-align"); v != tc.align.String() {
			t.Fatalf("data-align = %q, want %q", v, tc.align)
		}
		for _, class := range tc.want {
			if !htmltest.HasClass(addon, class) {
				t.Fatalf("%s addon missing %q: %v", tc.align, class, htmltest.Classes(addon))
			}
		}
	}
}

func TestInputGroupInlineAddonsPadControl(t *testing.T) {
	t.Parallel()

	// inline-end placed first in the DOM still sits at the right edge.
	doc := htmltest.Render(t, InputGroup(InputGroupProps{},
		InputGroupAddon(AddonProps{Align: AlignInlineEnd}, InputGroupButton(GroupButtonProps{Label: "Go"})),
		InputGroupInput(GroupControlProps{ID: "q"}),
		InputGroupAddon(AddonProps{}, InputGroupText(InputGroupTextProps{Text: "$"})),
	))
	input := doc.ByID(t, "q")
	if !htmltest.HasClass(input, "pl-9") || !htmltest.HasClass(input, "pr-9") {
		t.Fatalf("control should pad both inline edges: %v", htmltest.Classes(input))
	}
	addons := doc.ByAttr("data-slot", "input-group-addon")
	if !htmltest.HasClass(addons[0], "right-0") || !htmltest.HasClass(addons[1], "left-0") {
		t.Fatalf("addon edges depend on DOM order: %s", doc.Source)
	}

	plain := InputGroupInputClasses(GroupState{})
	if contains(variant.Fields(plain), "pl-9") || contains(variant.Fields(plain), "pr-9") {
		t.Fatalf("unoccupied edges padded: %q", plain)
	}
}

func TestInputGroupBlockAddonsWrap(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, InputGroup(InputGroupProps{ID: "g"},
		InputGroupTextarea(GroupControlProps{ID: "msg", Rows: 4, Value: "hi <there>"}),
		InputGroupAddon(AddonProps{Align: AlignBlockStart}, InputGroupText(InputGroupTextProps{Text: "Message"})),
	))
	if !htmltest.HasClass(doc.ByID(t, "g"), "flex-wrap") {
		t.Fatalf("group with block addon should wrap")
	}
	area := doc.ByID(t, "msg")
	if area.Data != "textarea" || htmltest.Text(area) != "hi <there>" {
		t.Fatalf("textarea = %s", doc.Source)
	}
	if v, _ := htmltest.Attr(area, "rows"); v != "4" {
		t.Fatalf("rows = %q", v)
	}
	if !htmltest.HasClass(area, "resize-y") || htmltest.HasClass(area, "pl-9") {
		t.Fatalf("textarea classes = %v", htmltest.Classes(area))
	}
}

func TestInputGroupButtonDefaults(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, InputGroupButton(GroupButtonProps{Label: "Copy"}))
	button := doc.First(t, "button")
	if v, _ := htmltest.Attr(button, "type"); v != "button" {
		t.Fatalf("type = %q, want button", v)
	}
	for _, class := range []string{"h-5", "px-2", "text-xs", "bg-transparent"} {
		if !htmltest.HasClass(button, class) {
			t.Fatalf("default group button missing %q: %v", class, htmltest.Classes(button))
		}
	}
	if htmltest.HasClass(button, "h-8") {
		t.Fatalf("group button should not use the standalone default size")
	}

	submit := htmltest.Render(t, InputGroupButton(GroupButtonProps{Type: "submit", Size: GroupButtonIconSM, Variant: GroupButtonDefault}))
	b := submit.First(t, "button")
	if v, _ := htmltest.Attr(b, "type"); v != "submit" {
		t.Fatalf("type override = %q", v)
	}
	if !htmltest.HasClass(b, "w-6") || !htmltest.HasClass(b, "bg-[var(--color-primary-default)]") {
		t.Fatalf("icon-sm default classes = %v", htmltest.Classes(b))
	}
}

func TestInputGroupDisabledPropagates(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, InputGroup(InputGroupProps{ID: "g", Disabled: true},
		InputGroupInput(GroupControlProps{ID: "q"}),
		InputGroupAddon(AddonProps{Align: AlignInlineEnd}, InputGroupButton(GroupButtonProps{Label: "Go"})),
	))
	if htmltest.Activate(doc.ByID(t, "q")) || htmltest.Activate(doc.First(t, "button")) {
		t.Fatalf("disabled group slots accepted activation")
	}
	if v, _ := htmltest.Attr(doc.ByID(t, "g"), "data-disabled"); v != "true" {
		t.Fatalf("data-disabled = %q", v)
	}
}

func TestInputGroupText(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, InputGroupText(InputGroupTextProps{Text: "https://"}))
	span := doc.First(t, "span")
	if !htmltest.HasClass(span, "select-none") || htmltest.Text(span) != "https://" {
		t.Fatalf("text slot = %s", doc.Source)
	}
}

func TestInputGroupScopedIDs(t *testing.T) {
	t.Parallel()

	ctx := WithScope(context.Background())
	doc := htmltest.RenderContext(t, ctx, InputGroup(InputGroupProps{},
		InputGroupInput(GroupControlProps{}),
		InputGroupTextarea(GroupControlProps{}),
	))
	doc.ByID(t, "input-r0")
	doc.ByID(t, "textarea-r1")
}

func TestGroupStateFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := GroupStateFrom(context.Background()); ok {
		t.Fatalf("state outside a group")
	}
	ctx := WithGroupState(context.Background(), GroupState{InlineEnd: true})
	state, ok := GroupStateFrom(ctx)
	if !ok || !state.InlineEnd {
		t.Fatalf("state = %+v, %v", state, ok)
	}
}

func TestParseGroupAxes(t *testing.T) {
	t.Parallel()

	if a, err := ParseAddonAlign("block-end"); err != nil || a != AlignBlockEnd {
		t.Fatalf("ParseAddonAlign = %v, %v", a, err)
	}
	if _, err := ParseAddonAlign("middle"); !errors.Is(err, variant.ErrInvalidVariant) {
		t.Fatalf("ParseAddonAlign(middle) err = %v", err)
	}
	if v, err := ParseGroupButtonVariant(""); err != nil || v != GroupButtonGhost {
		t.Fatalf("ParseGroupButtonVariant(empty) = %v, %v", v, err)
	}
	if s, err := ParseGroupButtonSize("icon-xs"); err != nil || s != GroupButtonIconXS {
		t.Fatalf("ParseGroupButtonSize = %v, %v", s, err)
	}
	if AddonAlign(9).Inline() != true || AlignBlockStart.Inline() {
		t.Fatalf("Inline classification wrong")
	}
}
