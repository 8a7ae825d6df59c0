package icons

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// lucideBodies holds the inner SVG markup of each icon, taken from Lucide.
var lucideBodies = map[ID]string{
	ArrowRight: `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	AtSign:     `<circle cx="12" cy="12" r="4"/><path d="M16 8v5a3 3 0 0 0 6 0v-1a10 10 0 1 0-4 8"/>`,
	Copy:       `<rect width="14" height="14" x="8" y="8" rx="2" ry="2"/><path d="M4 16c-1.1 0-2-.9-2-2V4c0-1.1.9-2 2-2h10c1.1 0 2 .9 2 2"/>`,
	Download:   `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><polyline points="7 10 12 15 17 10"/><line x1="12" x2="12" y1="15" y2="3"/>`,
	Eye:        `<path d="M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7Z"/><circle cx="12" cy="12" r="3"/>`,
	Mail:       `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	Plus:       `<path d="M5 12h14"/><path d="M12 5v14"/>`,
	Search:     `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	Send:       `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`,
	Trash:      `<path d="M3 6h18"/><path d="M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"/><path d="M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"/>`,
	X:          `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

const defaultIconClass = "h-4 w-4"

// Lucide renders icon id as inline SVG. An empty class uses h-4 w-4. Unknown
// ids render nothing.
func Lucide(id ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		body, ok := lucideBodies[id]
		if !ok {
			return nil
		}
		if class == "" {
			class = defaultIconClass
		}
		_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="`+
			templ.EscapeString(class)+`" data-lucide="`+templ.EscapeString(string(id))+`">`+body+`</svg>`)
		return err
	})
}

// Has reports whether id has a glyph.
func Has(id ID) bool {
	_, ok := lucideBodies[id]
	return ok
}
