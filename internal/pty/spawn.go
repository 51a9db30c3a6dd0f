package pty

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	ptylib "github.com/creack/pty"
	"github.com/google/uuid"
)

// Spawn allocates a new master/slave PTY pair and starts name with args
// attached to the slave side as its controlling terminal.
//
// The child is started in a new session (Setsid) and claims the slave as its
// controlling terminal (Setctty), so shells and curses programs manage their
// output correctly. The slave descriptor is closed in this process once the
// child owns it; the returned Session keeps the master open.
func Spawn(name string, args ...string) (*Session, error) {
	master, slave, err := ptylib.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0, // child fd 0, the slave
	}

	if err := cmd.Start(); err != nil {
		master.Close()
		slave.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrExec, name, err)
	}

	// The slave belongs to the child now; keeping it open here would hold
	// the PTY alive past the child's exit and the relay would never see
	// the closed-slave condition.
	if err := slave.Close(); err != nil {
		master.Close()
		cmd.Process.Kill()
		cmd.Wait()
		return nil, fmt.Errorf("%w: close slave: %w", ErrSessionSetup, err)
	}

	return &Session{
		ID:        uuid.New().String(),
		Cmd:       cmd,
		Master:    master,
		SlavePath: slave.Name(),
	}, nil
}
