package variant

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type size string

func (s size) String() string { return string(s) }

const (
	sizeMD size = ""
	sizeSM size = "sm"
	sizeLG size = "lg"
)

var sizes = Axis[size]{
	Name:    "size",
	Default: sizeMD,
	Values: map[size][]string{
		sizeMD: {"h-8", "px-2.5"},
		sizeSM: {"h-6", "px-2"},
		sizeLG: {"h-10", "px-3"},
	},
}

func TestAxisTokens(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{"h-6", "px-2"}, sizes.Tokens(sizeSM)); diff != "" {
		t.Fatalf("Tokens(sm) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"h-8", "px-2.5"}, sizes.Tokens(size("huge"))); diff != "" {
		t.Fatalf("unknown value should resolve to default (-want +got):\n%s", diff)
	}
	if sizes.Has(size("huge")) {
		t.Fatal("expected unknown value to be reported as absent")
	}
}

func TestFlagTokens(t *testing.T) {
	t.Parallel()

	f := Flag{On: []string{"w-full"}}
	if diff := cmp.Diff([]string{"w-full"}, f.Tokens(true)); diff != "" {
		t.Fatalf("Tokens(true) mismatch (-want +got):\n%s", diff)
	}
	if got := f.Tokens(false); len(got) != 0 {
		t.Fatalf("Tokens(false) = %v, want empty", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse("size", "lg", sizeMD, sizeMD, sizeSM, sizeLG)
	if err != nil {
		t.Fatalf("Parse(lg) error = %v", err)
	}
	if got != sizeLG {
		t.Fatalf("Parse(lg) = %q, want %q", got, sizeLG)
	}

	got, err = Parse("size", " ", sizeMD, sizeMD, sizeSM, sizeLG)
	if err != nil || got != sizeMD {
		t.Fatalf("Parse(blank) = %q, %v; want default", got, err)
	}

	_, err = Parse("size", "xl", sizeMD, sizeMD, sizeSM, sizeLG)
	if !errors.Is(err, ErrInvalidVariant) {
		t.Fatalf("Parse(xl) error = %v, want ErrInvalidVariant", err)
	}
}

func TestCNLaterConflictingClassWins(t *testing.T) {
	t.Parallel()

	if got := CN("h-8 px-2", "h-10"); got != "px-2 h-10" {
		t.Fatalf("CN = %q, want %q", got, "px-2 h-10")
	}
}

func TestCNDropsEmptyPartsAndDuplicates(t *testing.T) {
	t.Parallel()

	if got := CN("", "  flex  ", "flex", "items-center"); got != "flex items-center" {
		t.Fatalf("CN = %q, want %q", got, "flex items-center")
	}
	if got := CN(); got != "" {
		t.Fatalf("CN() = %q, want empty", got)
	}
}

func TestResolveKeepsDeclaredOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		groups    [][]string
		overrides []string
		want      string
	}{
		{
			name:   "conflict free",
			groups: [][]string{{"inline-flex", "items-center", "font-medium"}, {"rounded-md", "border"}, {"w-full", "select-none"}},
			want:   "inline-flex items-center font-medium rounded-md border w-full select-none",
		},
		{
			name:      "override replaces height",
			groups:    [][]string{{"inline-flex", "font-medium"}, {"h-10", "px-3"}, {"w-full"}},
			overrides: []string{"h-12"},
			want:      "inline-flex font-medium px-3 w-full h-12",
		},
		{
			name:      "size table",
			groups:    [][]string{{"inline-flex", "font-medium"}, sizes.Tokens(sizeLG), When(true, "w-full")},
			overrides: []string{"h-12"},
			want:      "inline-flex font-medium px-3 w-full h-12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(tt.groups, tt.overrides...); got != tt.want {
				t.Fatalf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWhen(t *testing.T) {
	t.Parallel()

	if got := When(false, "hidden"); got != nil {
		t.Fatalf("When(false) = %v, want nil", got)
	}
	if diff := cmp.Diff([]string{"hidden"}, When(true, "hidden")); diff != "" {
		t.Fatalf("When(true) mismatch (-want +got):\n%s", diff)
	}
}
