package termstate

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrTerminalQuery is returned when the real terminal's mode cannot be read.
// Proceeding without a snapshot would make restoration impossible to reason
// about, so callers treat this as fatal.
var ErrTerminalQuery = errors.New("cannot query terminal state")

// Snapshot holds the mode of the real terminal as it was before the session
// mutated anything. At most one snapshot exists per run and it is restored
// exactly once; all methods are safe on a nil receiver, which is what
// Capture returns when no real terminal is attached.
type Snapshot struct {
	tty     *os.File
	isInput bool
	state   *term.State

	restoreOnce sync.Once
}

// Capture inspects stdin then stdout and snapshots the first one that is a
// real terminal. If neither is, it returns (nil, nil): the session then runs
// without raw-mode translation and nothing is restored afterwards.
func Capture(stdin, stdout *os.File) (*Snapshot, error) {
	var tty *os.File
	isInput := false
	switch {
	case term.IsTerminal(int(stdin.Fd())):
		tty = stdin
		isInput = true
	case term.IsTerminal(int(stdout.Fd())):
		tty = stdout
	default:
		return nil, nil
	}

	state, err := term.GetState(int(tty.Fd()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTerminalQuery, tty.Name(), err)
	}

	return &Snapshot{tty: tty, isInput: isInput, state: state}, nil
}

// TTY returns the real terminal file the snapshot was taken from.
func (s *Snapshot) TTY() *os.File {
	if s == nil {
		return nil
	}
	return s.tty
}

// IsInput reports whether the snapshotted terminal is standard input.
func (s *Snapshot) IsInput() bool {
	return s != nil && s.isInput
}

// RawInput switches standard input to raw mode so every byte reaches the
// child uninterpreted: no line buffering, no echo, no signal characters.
// It is a no-op when the real terminal is not standard input.
func (s *Snapshot) RawInput() error {
	if !s.IsInput() {
		return nil
	}
	// The pre-mutation state is already held in s.state; MakeRaw's copy is
	// redundant.
	if _, err := term.MakeRaw(int(s.tty.Fd())); err != nil {
		return fmt.Errorf("%w: set raw mode: %w", ErrTerminalQuery, err)
	}
	return nil
}

// Restore puts the terminal back into its snapshotted mode. Safe to call on
// every exit path; only the first call does anything.
func (s *Snapshot) Restore() {
	if s == nil {
		return
	}
	s.restoreOnce.Do(func() {
		if err := term.Restore(int(s.tty.Fd()), s.state); err != nil {
			log.Printf("[ptyrun] restore terminal mode: %v", err)
		}
	})
}
