package termstate

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	ptylib "github.com/creack/pty"
)

// CopyWinsize applies the real terminal's current window size to the PTY
// master, so the child starts with the geometry the user actually has.
func CopyWinsize(tty, master *os.File) error {
	return ptylib.InheritSize(tty, master)
}

// WatchWinsize re-copies the window size onto master whenever the real
// terminal is resized, for the lifetime of the session. The returned stop
// function releases the signal watch. On a nil snapshot this is a no-op.
func (s *Snapshot) WatchWinsize(master *os.File) (stop func()) {
	if s == nil {
		return func() {}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			if err := ptylib.InheritSize(s.tty, master); err != nil {
				log.Printf("[ptyrun] resize pty: %v", err)
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}
