// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// server drain and database pings.
const DefaultTimeout = 10 * time.Second
