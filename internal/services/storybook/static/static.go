package static

import "embed"

// FS exposes the harness stylesheet for HTTP serving and export.
//
//go:embed *.css
var FS embed.FS
