package pty

import "errors"

// Sentinel errors for the pty package. Fatal errors wrap one of these so
// callers can classify failures with errors.Is while the underlying OS error
// stays reachable in the chain.
var (
	// ErrAllocation is returned when the master/slave pair cannot be
	// obtained or prepared. Nothing is spawned after this.
	ErrAllocation = errors.New("pty allocation failed")

	// ErrSessionSetup is returned when the session is allocated but the
	// child process cannot be bound to its slave side.
	ErrSessionSetup = errors.New("session setup failed")

	// ErrExec is returned when the target program cannot be started.
	ErrExec = errors.New("cannot start program")

	// ErrRelayRead is returned on an unexpected I/O failure on either
	// relay source. A closed-slave condition is not an error; see Relay.
	ErrRelayRead = errors.New("relay failed")
)
