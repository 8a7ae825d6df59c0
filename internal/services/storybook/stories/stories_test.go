package stories

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/vtnds/internal/testkit/htmltest"
	"github.com/louisbranch/vtnds/ui"
)

func TestDefaultRegistryRendersEveryStory(t *testing.T) {
	t.Parallel()

	registry := Default()
	components := registry.Components()
	if len(components) == 0 {
		t.Fatal("expected components")
	}
	for _, c := range components {
		for _, s := range c.Stories {
			doc := htmltest.RenderContext(t, ui.WithScope(context.Background()), s.Render(s.Defaults()))
			if doc.Source == "" {
				t.Errorf("%s/%s rendered nothing", c.Slug, s.Slug)
			}
		}
	}
}

func TestDefaultRegistryCoversComponents(t *testing.T) {
	t.Parallel()

	var got []string
	for _, c := range Default().Components() {
		got = append(got, c.Slug)
	}
	want := []string{"introduction", "button", "checkbox", "input", "switch", "inputgroup"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryStoryLookup(t *testing.T) {
	t.Parallel()

	registry := Default()
	c, s, ok := registry.Story("button", "loading")
	if !ok {
		t.Fatal("expected button/loading")
	}
	if c.Slug != "button" || s.Slug != "loading" {
		t.Fatalf("lookup = %s/%s", c.Slug, s.Slug)
	}
	if _, _, ok := registry.Story("button", "missing"); ok {
		t.Fatal("expected missing story lookup to fail")
	}
	if _, _, ok := registry.Story("missing", "default"); ok {
		t.Fatal("expected missing component lookup to fail")
	}
}

func TestParseArgsAppliesDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("button", "destructive")
	args, err := s.ParseArgs(url.Values{
		"size":     {"lg"},
		"disabled": {"true"},
		"lang":     {"pt-BR"},
		"label":    {""},
	})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	want := Args{
		"variant":   "destructive",
		"size":      "lg",
		"disabled":  "true",
		"loading":   "false",
		"fullWidth": "false",
		"label":     "Delete",
	}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgsRejectsValuesOutsideDomain(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("button", "default")
	cases := []url.Values{
		{"variant": {"neon"}},
		{"size": {"xl"}},
		{"disabled": {"maybe"}},
	}
	for _, values := range cases {
		if _, err := s.ParseArgs(values); !errors.Is(err, ErrInvalidArg) {
			t.Errorf("ParseArgs(%v) error = %v, want ErrInvalidArg", values, err)
		}
	}
}

func TestQueryEncodesOnlyChangedArgs(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("switch", "default")
	args := s.Defaults().With("checked", "true").With("size", "lg")
	got := s.Query(args).Encode()
	if got != "checked=true&size=lg" {
		t.Fatalf("Query() = %q", got)
	}
}

func TestNewRejectsInvalidRegistries(t *testing.T) {
	t.Parallel()

	render := func(Args) templ.Component { return templ.NopComponent }
	valid := Story{Slug: "default", Render: render}
	cases := map[string][]Component{
		"blank component":   {{Stories: []Story{valid}}},
		"duplicate":         {{Slug: "a", Stories: []Story{valid}}, {Slug: "a", Stories: []Story{valid}}},
		"no stories":        {{Slug: "a"}},
		"duplicate story":   {{Slug: "a", Stories: []Story{valid, valid}}},
		"missing render":    {{Slug: "a", Stories: []Story{{Slug: "x"}}}},
		"toggle no checked": {{Slug: "a", Stories: []Story{{Slug: "x", Render: render, Toggle: ui.KindSwitch}}}},
		"bad toggle kind":   {{Slug: "a", Stories: []Story{{Slug: "x", Render: render, Toggle: ui.KindInput}}}},
		"bad story arg": {{Slug: "a", Stories: []Story{{
			Slug:     "x",
			Render:   render,
			Controls: []Control{boolControl("on")},
			Args:     Args{"on": "sometimes"},
		}}}},
	}
	for name, components := range cases {
		if _, err := New(components...); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestApplyToggleClearsIndeterminate(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("checkbox", "indeterminate")
	next, ok := ApplyToggle(s, s.Defaults())
	if !ok {
		t.Fatal("expected activation")
	}
	if !next.Bool("checked") || next.Bool("indeterminate") {
		t.Fatalf("next = checked %s indeterminate %s", next["checked"], next["indeterminate"])
	}
}

func TestApplyToggleIgnoresDisabled(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("switch", "disabled-checked")
	args := s.Defaults()
	next, ok := ApplyToggle(s, args)
	if ok {
		t.Fatal("disabled switch accepted activation")
	}
	if diff := cmp.Diff(args, next); diff != "" {
		t.Fatalf("args changed (-want +got):\n%s", diff)
	}
}

func TestApplyToggleFlipsSwitch(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("switch", "checked")
	next, ok := ApplyToggle(s, s.Defaults())
	if !ok || next.Bool("checked") {
		t.Fatalf("ApplyToggle() = %v, %v", next, ok)
	}
	if _, has := next["indeterminate"]; has {
		t.Fatal("switch args gained indeterminate")
	}
}

func TestApplyToggleStaticStory(t *testing.T) {
	t.Parallel()

	_, s, _ := Default().Story("button", "default")
	if _, ok := ApplyToggle(s, s.Defaults()); ok {
		t.Fatal("static story accepted toggle")
	}
}

func TestSelectAllDerivesParentState(t *testing.T) {
	t.Parallel()

	_, s, ok := Default().Story("checkbox", "select-all")
	if !ok {
		t.Fatal("expected checkbox/select-all")
	}
	cases := []struct {
		values        url.Values
		checked       bool
		indeterminate string
	}{
		{url.Values{}, false, "true"},
		{url.Values{"alpha": {"false"}}, false, "false"},
		{url.Values{"bravo": {"true"}, "charlie": {"true"}}, true, "false"},
	}
	for _, tc := range cases {
		args, err := s.ParseArgs(tc.values)
		if err != nil {
			t.Fatalf("ParseArgs() error = %v", err)
		}
		doc := htmltest.RenderContext(t, ui.WithScope(context.Background()), s.Render(args))
		boxes := doc.ByAttr("type", "checkbox")
		if len(boxes) != 4 {
			t.Fatalf("checkboxes = %d, want 4", len(boxes))
		}
		parent := boxes[0]
		if got := htmltest.HasAttr(parent, "checked"); got != tc.checked {
			t.Errorf("%v: parent checked = %v, want %v", tc.values, got, tc.checked)
		}
		if got, _ := htmltest.Attr(parent, "data-indeterminate"); got != tc.indeterminate {
			t.Errorf("%v: parent indeterminate = %q, want %q", tc.values, got, tc.indeterminate)
		}
	}
}
