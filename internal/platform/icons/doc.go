// Package icons provides the Lucide glyphs used by the documentation stories.
//
// Glyphs render inline as stroked 24x24 SVG so that they inherit the text
// color of the component that hosts them.
package icons
