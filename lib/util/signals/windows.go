//go:build windows

package signals

import (
	"os"
	"os/signal"
)

func init() {
	signal.Notify(sigChan, os.Interrupt)
}

// Handle runs the interrupt handlers for every Ctrl+C or Ctrl+Break.
// Windows has no SIGTERM delivery through os/signal, so os.Interrupt is the
// only signal registered. Returns once StopHandle closes the channel.
func Handle() {
	for range sigChan {
		handleInterrupted()
	}
}
