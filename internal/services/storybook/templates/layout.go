package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	tailwindBrowserURL = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	htmxURL            = "https://unpkg.com/htmx.org@2.0.4"
)

// Layout wraps body in the harness document: head assets, sidebar and main
// column.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := newOut(ctx, w)
		htmlClass := ""
		if page.dark() {
			htmlClass = "dark"
		}
		o.raw("<!DOCTYPE html>")
		o.open("html", "lang", page.Lang, "class", htmlClass, "data-theme", page.Theme)
		o.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		o.raw("<title>")
		o.text(page.Title)
		o.raw("</title>")
		if page.Links.Asset != nil {
			o.open("link", "rel", "stylesheet", "href", page.Links.Asset("theme.css"))
			o.open("link", "rel", "stylesheet", "href", page.Links.Asset("harness.css"))
		}
		o.open("script", "src", tailwindBrowserURL, "nonce", page.Nonce)
		o.close("script")
		if page.Links.Toggle != nil {
			o.open("script", "src", htmxURL, "nonce", page.Nonce)
			o.close("script")
		}
		o.raw("</head>")
		o.open("body", "class", "sb-body bg-[var(--color-background)] text-[var(--color-foreground)]")
		o.raw(`<div class="sb-shell">`)
		sidebar(o, page)
		o.raw(`<main class="sb-main" id="main">`)
		o.component(body)
		o.raw("</main></div></body></html>")
		return o.err
	})
}

func sidebar(o *out, page PageContext) {
	o.open("nav", "class", "sb-sidebar", "aria-label", T(page.Loc, "storybook.nav.components"))
	o.open("a", "class", "sb-brand", "href", page.Links.Index)
	o.text(page.AppName)
	o.raw(`<span class="sb-version">`)
	o.text(page.Version)
	o.raw("</span></a>")
	for _, group := range page.Nav {
		o.raw(`<div class="sb-nav-group">`)
		o.open("p", "class", "sb-nav-title")
		o.text(group.Title)
		o.close("p")
		o.raw("<ul>")
		for _, item := range group.Stories {
			current := ""
			if group.Slug == page.ActiveComponent && item.Slug == page.ActiveStory {
				current = "page"
			}
			o.raw("<li>")
			href := ""
			if page.Links.Story != nil {
				href = page.Links.Story(group.Slug, item.Slug)
			}
			o.open("a", "class", "sb-nav-link", "href", href, "aria-current", current)
			o.text(item.Name)
			o.close("a")
			o.raw("</li>")
		}
		o.raw("</ul></div>")
	}
	switchers(o, page)
	o.close("nav")
}

// switchers renders the theme and language links.
func switchers(o *out, page PageContext) {
	if page.Links.Switch == nil {
		return
	}
	o.raw(`<div class="sb-switchers">`)
	o.open("p", "class", "sb-nav-title")
	o.text(T(page.Loc, "core.theme"))
	o.close("p")
	for _, theme := range []string{ThemeLight, ThemeDark} {
		current := ""
		if theme == page.Theme {
			current = "true"
		}
		o.open("a", "class", "sb-switch", "href", page.Links.Switch("theme", theme), "aria-current", current, "data-theme-option", theme)
		o.text(T(page.Loc, "storybook.theme."+theme))
		o.close("a")
	}
	if len(page.Languages) > 1 {
		o.open("p", "class", "sb-nav-title")
		o.text(T(page.Loc, "core.language"))
		o.close("p")
		for _, lang := range page.Languages {
			current := ""
			if lang == page.Lang {
				current = "true"
			}
			o.open("a", "class", "sb-switch", "href", page.Links.Switch("lang", lang), "hreflang", lang, "aria-current", current)
			o.text(T(page.Loc, "core.lang."+lang))
			o.close("a")
		}
	}
	o.raw("</div>")
}
