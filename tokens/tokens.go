// Package tokens exposes the VTNDS design tokens.
//
// Tokens are CSS custom properties declared in an embedded theme stylesheet.
// Components refer to tokens by name only, so a consumer can swap the
// stylesheet without touching component code.
package tokens

import (
	_ "embed"
	"strings"
)

// Version identifies the token set shipped with this module.
const Version = "0.0.1"

//go:embed theme.css
var themeCSS string

// Token names referenced by the component style tables.
const (
	ColorBackground      = "color-background"
	ColorForeground      = "color-foreground"
	ColorMutedForeground = "color-muted-foreground"
	ColorInput           = "color-input"
	ColorRing            = "color-ring"

	ColorPrimaryDefault    = "color-primary-default"
	ColorPrimaryHover      = "color-primary-hover"
	ColorPrimaryActive     = "color-primary-active"
	ColorPrimaryForeground = "color-primary-foreground"

	ColorSecondaryDefault    = "color-secondary-default"
	ColorSecondaryHover      = "color-secondary-hover"
	ColorSecondaryActive     = "color-secondary-active"
	ColorSecondaryForeground = "color-secondary-foreground"

	ColorDestructiveDefault    = "color-destructive-default"
	ColorDestructiveHover      = "color-destructive-hover"
	ColorDestructiveActive     = "color-destructive-active"
	ColorDestructiveForeground = "color-destructive-foreground"

	ColorOutlineDefault = "color-outline-default"
	ColorOutlineBorder  = "color-outline-border"
	ColorOutlineHover   = "color-outline-hover"
	ColorOutlineActive  = "color-outline-active"

	ColorGhostDefault = "color-ghost-default"
	ColorGhostHover   = "color-ghost-hover"
	ColorGhostActive  = "color-ghost-active"

	RadiusSmall   = "radius-sm"
	RadiusDefault = "radius-default"
	RadiusLarge   = "radius-lg"

	SpacingUnit = "spacing-unit"

	DurationFast    = "duration-fast"
	DurationDefault = "duration-default"
	DurationSlow    = "duration-slow"
)

// ThemeCSS returns the theme stylesheet.
func ThemeCSS() string {
	return themeCSS
}

// Var returns the CSS var() reference for a token name.
// A leading "--" on name is accepted.
func Var(name string) string {
	return "var(--" + strings.TrimPrefix(strings.TrimSpace(name), "--") + ")"
}

// Names lists every token declared in the root block of the theme stylesheet,
// in declaration order.
func Names() []string {
	root := themeCSS
	if start := strings.Index(root, ":root"); start >= 0 {
		root = root[start:]
	}
	if end := strings.Index(root, "}"); end >= 0 {
		root = root[:end]
	}
	var names []string
	for _, line := range strings.Split(root, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "--") {
			continue
		}
		name, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		names = append(names, strings.TrimPrefix(name, "--"))
	}
	return names
}
