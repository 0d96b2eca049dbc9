// Package lifecycle holds values shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (database ping, server shutdown).
const DefaultTimeout = 10 * time.Second
