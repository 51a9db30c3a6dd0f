package pty

import (
	"log"
	"syscall"
	"time"
)

// stopGrace is how long Close waits for the child between escalation steps.
const stopGrace = 3 * time.Second

// Close releases the session: the master side is closed and the child is
// reaped. A child that is still running when Close is called (interrupt
// path) loses its controlling terminal when the master closes, which
// normally ends it; one that ignores the hangup is sent SIGTERM and finally
// SIGKILL. Close blocks until the child is reaped.
func (s *Session) Close() {
	if s == nil {
		return
	}

	if s.Master != nil {
		s.Master.Close()
		s.Master = nil
	}

	if s.Cmd == nil || s.Cmd.Process == nil {
		return
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Cmd.Wait()
	}()

	select {
	case <-done:
		return
	case <-time.After(stopGrace):
	}

	if err := s.Cmd.Process.Signal(syscall.SIGTERM); err != nil {
		log.Printf("[ptyrun] session %s: SIGTERM to pid %d: %v", s.ID, s.Cmd.Process.Pid, err)
	}
	select {
	case <-done:
		return
	case <-time.After(stopGrace):
	}

	if err := s.Cmd.Process.Kill(); err != nil {
		log.Printf("[ptyrun] session %s: kill pid %d: %v", s.ID, s.Cmd.Process.Pid, err)
	}
	<-done
}
