// Package pty manages a single pseudo-terminal session: allocation of the
// master/slave pair, launching a program attached to the slave as its
// controlling terminal, the bidirectional byte relay against the master, and
// resource cleanup.
package pty
