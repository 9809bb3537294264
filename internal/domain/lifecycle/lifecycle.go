// Package lifecycle holds constants shared by components that start and
// stop with the application.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as pinging the
// database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
