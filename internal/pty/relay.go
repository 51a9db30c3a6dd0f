package pty

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// relayBufSize bounds each read chunk. Chunks are transient; nothing is
// retained across relay cycles.
const relayBufSize = 4096

// chunk is one read result from a relay source.
type chunk struct {
	data []byte
	err  error
}

// Relay copies bytes between the real standard streams and the session's
// PTY master until the child releases the slave side.
//
// Input read from in is written to the master; output read from the master
// is written to out. Bytes from one source keep their order; the two
// directions interleave in whatever order they become ready, which is the
// normal duplex behavior of a terminal.
//
// Relay returns nil when the master read reports that the slave side closed
// (the child exited), or when a signal arrives on interrupt. Any other read
// or write failure returns an error wrapping ErrRelayRead. Input EOF is not
// a termination condition: the session keeps relaying child output.
func (s *Session) Relay(in io.Reader, out io.Writer, interrupt <-chan os.Signal) error {
	inCh := readChunks(in)
	masterCh := readChunks(s.Master)

	for {
		select {
		case <-interrupt:
			return nil

		case c := <-inCh:
			if c.err != nil {
				if errors.Is(c.err, io.EOF) {
					// No more input to forward; child output
					// still flows.
					inCh = nil
					continue
				}
				return fmt.Errorf("%w: read standard input: %w", ErrRelayRead, c.err)
			}
			if _, err := s.Master.Write(c.data); err != nil {
				return fmt.Errorf("%w: write to pty master: %w", ErrRelayRead, err)
			}

		case c := <-masterCh:
			if c.err != nil {
				if isSlaveClosed(c.err) {
					return nil
				}
				return fmt.Errorf("%w: read pty master: %w", ErrRelayRead, c.err)
			}
			if _, err := out.Write(c.data); err != nil {
				return fmt.Errorf("%w: write standard output: %w", ErrRelayRead, err)
			}
		}
	}
}

// readChunks pumps bounded reads from r into a channel. Each chunk gets its
// own copy of the bytes so the shared buffer is never retained. The goroutine
// ends after delivering the first read error.
func readChunks(r io.Reader) <-chan chunk {
	ch := make(chan chunk, 1)
	go func() {
		buf := make([]byte, relayBufSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				ch <- chunk{data: data}
			}
			if err != nil {
				ch <- chunk{err: err}
				close(ch)
				return
			}
		}
	}()
	return ch
}

// isSlaveClosed reports whether a master read error means the slave side was
// released because the child exited. On Linux the PTY subsystem reports EIO;
// os.File may also surface it as a plain EOF.
func isSlaveClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO)
}
