// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as DB pings and
// graceful HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
