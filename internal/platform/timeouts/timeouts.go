// Package timeouts defines the HTTP timeouts shared by the harness server
// and its tests.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Export caps a full static build of the story catalog.
const Export = 2 * time.Minute
