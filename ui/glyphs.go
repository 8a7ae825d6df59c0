package ui

import (
	"github.com/louisbranch/vtnds/ui/internal/markup"
	"github.com/louisbranch/vtnds/ui/variant"
)

const svgNS = "http://www.w3.org/2000/svg"

func writeSpinner(m *markup.Writer, class string) {
	m.Open("svg",
		markup.A("class", variant.CN("animate-spin", class)),
		markup.A("xmlns", svgNS),
		markup.A("fill", "none"),
		markup.A("viewBox", "0 0 24 24"),
		markup.A("width", "16"),
		markup.A("height", "16"),
		markup.A("aria-hidden", "true"),
		markup.A("data-glyph", "spinner"),
	)
	m.Open("circle",
		markup.A("class", "opacity-25"),
		markup.A("cx", "12"), markup.A("cy", "12"), markup.A("r", "10"),
		markup.A("stroke", "currentColor"), markup.A("stroke-width", "4"),
	)
	m.Close("circle")
	m.Open("path",
		markup.A("class", "opacity-75"),
		markup.A("fill", "currentColor"),
		markup.A("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
	)
	m.Close("path")
	m.Close("svg")
}

func openStrokeGlyph(m *markup.Writer, name, class string) {
	m.Open("svg",
		markup.A("class", variant.CN("pointer-events-none absolute text-white", class)),
		markup.A("xmlns", svgNS),
		markup.A("viewBox", "0 0 24 24"),
		markup.A("fill", "none"),
		markup.A("stroke", "currentColor"),
		markup.A("stroke-width", "3"),
		markup.A("stroke-linecap", "round"),
		markup.A("stroke-linejoin", "round"),
		markup.A("aria-hidden", "true"),
		markup.A("data-glyph", name),
	)
}

func writeCheckGlyph(m *markup.Writer, class string) {
	openStrokeGlyph(m, "check", class)
	m.Open("polyline", markup.A("points", "20 6 9 17 4 12"))
	m.Close("polyline")
	m.Close("svg")
}

func writeMinusGlyph(m *markup.Writer, class string) {
	openStrokeGlyph(m, "minus", class)
	m.Open("line", markup.A("x1", "5"), markup.A("y1", "12"), markup.A("x2", "19"), markup.A("y2", "12"))
	m.Close("line")
	m.Close("svg")
}
