package pty

import (
	"io"
	"os"
	"os/exec"

	ptylib "github.com/creack/pty"
)

// Session represents a single running program attached to a freshly
// allocated pseudo-terminal. The master side is owned by this process for
// the session's lifetime; the slave side is owned by the child and is closed
// here as soon as the child holds it.
type Session struct {
	ID        string
	Cmd       *exec.Cmd
	Master    *os.File
	SlavePath string
}

// Write sends data to the child through the PTY master.
func (s *Session) Write(data []byte) (int, error) {
	if s.Master == nil {
		return 0, io.ErrClosedPipe
	}
	return s.Master.Write(data)
}

// Resize changes the session's terminal dimensions.
func (s *Session) Resize(cols, rows uint16) error {
	if s.Master == nil {
		return io.ErrClosedPipe
	}
	return ptylib.Setsize(s.Master, &ptylib.Winsize{
		Rows: rows,
		Cols: cols,
	})
}
