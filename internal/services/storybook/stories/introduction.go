package stories

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/platform/icons"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui"
)

func introductionStories() Component {
	return Component{
		Slug:       "introduction",
		TitleKey:   "storybook.component.introduction.title",
		SummaryKey: "storybook.component.introduction.summary",
		Stories: []Story{
			staticStory("welcome", "Welcome", welcome),
			staticStory("tokens", "Design tokens", tokenTable),
			staticStory("icons", "Icons", iconGallery),
		},
	}
}

func welcome() templ.Component {
	return box("max-w-xl flex flex-col gap-4 text-[var(--color-foreground)]",
		span("text-2xl font-semibold", "VTNDS "+tokens.Version),
		span("text-sm text-[var(--color-muted-foreground)]",
			"Industrial components for dense, keyboard-first interfaces. Every control reads its colors, radii and timings from design tokens, so themes change by swapping one stylesheet."),
		row(
			ui.Button(ui.ButtonProps{Label: "Primary"}),
			ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantOutline, Label: "Outline"}),
			ui.Checkbox(ui.CheckboxProps{Label: "Checkbox", Checked: true}),
			ui.Switch(ui.SwitchProps{Label: "Switch", Checked: true}),
		),
	)
}

// swatch renders a token sample. Color tokens fill the square; every other
// token is shown by its value only.
func swatch(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fill := ""
		if strings.HasPrefix(name, "color-") {
			fill = ` style="background:` + templ.EscapeString(tokens.Var(name)) + `"`
		}
		_, err := io.WriteString(w, `<div class="flex items-center gap-3" data-token="`+templ.EscapeString(name)+`">`+
			`<span class="h-6 w-6 shrink-0 rounded-[var(--radius-sm)] border border-[var(--color-input)]"`+fill+`></span>`+
			`<code class="text-xs text-[var(--color-foreground)]">--`+templ.EscapeString(name)+`</code></div>`)
		return err
	})
}

func tokenTable() templ.Component {
	names := tokens.Names()
	items := make([]templ.Component, 0, len(names))
	for _, name := range names {
		items = append(items, swatch(name))
	}
	return box("grid grid-cols-2 gap-3", items...)
}

func iconGallery() templ.Component {
	defs := icons.Catalog()
	items := make([]templ.Component, 0, len(defs))
	for _, def := range defs {
		items = append(items, box("flex items-center gap-3 text-[var(--color-foreground)]",
			icons.Lucide(def.ID, "h-5 w-5"),
			span("text-sm font-medium", def.Name),
			span("text-xs text-[var(--color-muted-foreground)]", def.Description),
		))
	}
	return box("flex flex-col gap-3", items...)
}
