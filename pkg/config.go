package wifiscan

import "time"

type Config struct {
	// Interface pins the wireless device to scan on. Empty means
	// discover one (Linux only; netsh surveys every adapter itself).
	Interface string

	// Timeout bounds each utility invocation. Zero means no limit.
	Timeout time.Duration

	Verbose bool
}
