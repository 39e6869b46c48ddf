// Package debug provides env-gated diagnostic logging to stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled = os.Getenv("JOICE_DEBUG") == "1"
	out     io.Writer = os.Stderr
)

// Logf writes a timestamped debug line when JOICE_DEBUG=1.
// The TUI runs in the alternate screen, so redirect stderr to a file
// (joice 2>debug.log) to read these while it is open.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetOutput enables or disables logging and redirects it to w. It returns a
// function that restores the previous settings.
func SetOutput(w io.Writer, on bool) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevEnabled := out, enabled
	out, enabled = w, on
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out, enabled = prevOut, prevEnabled
	}
}
