package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// IndexEntry summarises one component on the index page.
type IndexEntry struct {
	Slug       string
	Title      string
	Summary    string
	FirstStory string
	Stories    int
}

// Index renders the component overview.
func Index(page PageContext, entries []IndexEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := newOut(ctx, w)
		o.raw(`<header class="sb-header">`)
		o.raw("<h1>")
		o.text(T(page.Loc, "storybook.index.title"))
		o.raw("</h1>")
		o.open("p", "class", "sb-lede")
		o.text(T(page.Loc, "storybook.index.intro"))
		o.close("p")
		o.raw("</header>")
		o.raw(`<ul class="sb-cards">`)
		for _, entry := range entries {
			href := ""
			if page.Links.Story != nil {
				href = page.Links.Story(entry.Slug, entry.FirstStory)
			}
			o.open("li", "class", "sb-card", "data-component", entry.Slug)
			o.open("a", "href", href)
			o.raw("<h2>")
			o.text(entry.Title)
			o.raw("</h2>")
			o.raw("<p>")
			o.text(entry.Summary)
			o.raw("</p>")
			o.open("span", "class", "sb-count")
			o.text(T(page.Loc, "storybook.index.stories", entry.Stories))
			o.close("span")
			o.raw("</a></li>")
		}
		o.raw("</ul>")
		return o.err
	})
}
