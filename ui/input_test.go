package ui

import (
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/testkit/htmltest"
	"github.com/louisbranch/vtnds/ui/variant"
)

func TestInputBottomText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		hasError bool
		helper   string
		message  string
		want     string
	}{
		{"helper only", false, "We never share it", "", "We never share it"},
		{"error with message", true, "We never share it", "Required", "Required"},
		{"error without message", true, "We never share it", "", "We never share it"},
		{"message without error", false, "We never share it", "Required", "We never share it"},
		{"nothing", false, "", "", ""},
	}
	for _, tc := range cases {
		if got := InputBottomText(tc.hasError, tc.helper, tc.message); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInputLabelAndHelper(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, Input(InputProps{
		ID:          "email",
		Type:        "email",
		Label:       "Email",
		HelperText:  "We never share it",
		Placeholder: "you@example.com",
	}))
	input := doc.ByID(t, "email")
	if got := doc.LabelFor("email"); got != "Email" {
		t.Fatalf("label = %q", got)
	}
	if v, _ := htmltest.Attr(input, "aria-describedby"); v != "email-helper" {
		t.Fatalf("aria-describedby = %q", v)
	}
	if got := doc.Description(input); got != "We never share it" {
		t.Fatalf("helper = %q", got)
	}
	if htmltest.HasAttr(input, "aria-invalid") {
		t.Fatalf("aria-invalid without error")
	}
	if v, _ := htmltest.Attr(input, "placeholder"); v != "you@example.com" {
		t.Fatalf("placeholder = %q", v)
	}
}

func TestInputErrorMessage(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, Input(InputProps{
		ID:           "pw",
		Type:         "password",
		HelperText:   "At least 8 characters",
		ErrorMessage: "Too short",
		Error:        true,
	}))
	input := doc.ByID(t, "pw")
	if v, _ := htmltest.Attr(input, "aria-invalid"); v != "true" {
		t.Fatalf("aria-invalid = %q", v)
	}
	helper := doc.ByID(t, "pw-helper")
	if got := htmltest.Text(helper); got != "Too short" {
		t.Fatalf("bottom text = %q", got)
	}
	class, _ := htmltest.Attr(helper, "class")
	if !strings.Contains(class, "destructive") {
		t.Fatalf("helper should use destructive tone: %q", class)
	}
}

func TestInputWithoutText(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, Input(InputProps{ID: "q"}))
	if len(doc.All("label")) != 0 || len(doc.All("span")) != 0 {
		t.Fatalf("unexpected label or helper: %s", doc.Source)
	}
	if htmltest.HasAttr(doc.ByID(t, "q"), "aria-describedby") {
		t.Fatalf("aria-describedby without helper")
	}
}

func TestInputFileTypeForcesFileVariant(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, Input(InputProps{ID: "doc", Type: "file"}))
	if !htmltest.HasClass(doc.ByID(t, "doc"), "file:mr-3") {
		t.Fatalf("file variant not applied for type=file")
	}
	if EffectiveInputVariant("text", InputVariantFile) != InputVariantFile {
		t.Fatalf("explicit file variant should be kept")
	}
	if EffectiveInputVariant("text", InputVariantDefault) != InputVariantDefault {
		t.Fatalf("text input should keep default variant")
	}
}

func TestInputSizes(t *testing.T) {
	t.Parallel()

	want := map[ControlSize]string{SizeSM: "h-6", SizeMD: "h-7", SizeLG: "h-8"}
	for size, height := range want {
		if !contains(variant.Fields(InputClasses(InputStyle{Size: size})), height) {
			t.Fatalf("size %s missing %s", size, height)
		}
	}
}

func TestInputDisabled(t *testing.T) {
	t.Parallel()

	doc := htmltest.Render(t, Input(InputProps{ID: "x", Label: "Name", Disabled: true, Attrs: templ.Attributes{"autocomplete": "off"}}))
	input := doc.ByID(t, "x")
	if htmltest.Activate(input) {
		t.Fatalf("disabled input accepted activation")
	}
	if v, _ := htmltest.Attr(input, "autocomplete"); v != "off" {
		t.Fatalf("autocomplete = %q", v)
	}
	label := doc.First(t, "label")
	if !htmltest.HasClass(label, "opacity-50") || !htmltest.HasClass(label, "cursor-not-allowed") {
		t.Fatalf("disabled label classes = %v", htmltest.Classes(label))
	}
}
