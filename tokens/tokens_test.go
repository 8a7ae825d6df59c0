package tokens

import (
	"slices"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	t.Parallel()

	if got := Var(ColorRing); got != "var(--color-ring)" {
		t.Fatalf("Var(ColorRing) = %q, want %q", got, "var(--color-ring)")
	}
	if got := Var("--radius-sm"); got != "var(--radius-sm)" {
		t.Fatalf("Var(--radius-sm) = %q, want %q", got, "var(--radius-sm)")
	}
}

func TestThemeDeclaresEveryNamedToken(t *testing.T) {
	t.Parallel()

	declared := Names()
	for _, name := range []string{
		ColorBackground, ColorForeground, ColorMutedForeground, ColorInput, ColorRing,
		ColorPrimaryDefault, ColorPrimaryHover, ColorPrimaryActive, ColorPrimaryForeground,
		ColorSecondaryDefault, ColorSecondaryHover, ColorSecondaryActive, ColorSecondaryForeground,
		ColorDestructiveDefault, ColorDestructiveHover, ColorDestructiveActive, ColorDestructiveForeground,
		ColorOutlineDefault, ColorOutlineBorder, ColorOutlineHover, ColorOutlineActive,
		ColorGhostDefault, ColorGhostHover, ColorGhostActive,
		RadiusSmall, RadiusDefault, RadiusLarge, SpacingUnit,
		DurationFast, DurationDefault, DurationSlow,
	} {
		if !slices.Contains(declared, name) {
			t.Fatalf("theme.css does not declare --%s", name)
		}
	}
}

func TestThemeHasDarkBlock(t *testing.T) {
	t.Parallel()

	if !strings.Contains(ThemeCSS(), ".dark {") {
		t.Fatal("expected dark theme block in theme.css")
	}
}
