// Package termstate captures and restores the state of the real terminal
// around a PTY session: mode snapshot, raw input, and window size.
package termstate
