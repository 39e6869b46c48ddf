// Package timing records startup checkpoints when JOICE_DEBUG_TIMING=1.
package timing

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled bool
	out     io.Writer = os.Stderr
	start   time.Time
	last    time.Time
)

func init() {
	enabled = os.Getenv("JOICE_DEBUG_TIMING") == "1"
	start = time.Now()
	last = start
}

// Log prints label with the time since the previous checkpoint and since
// process start.
func Log(label string) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	now := time.Now()
	fmt.Fprintf(out, "[TIMING] %s: +%dms (total: %dms)\n",
		label, now.Sub(last).Milliseconds(), now.Sub(start).Milliseconds())
	last = now
}
