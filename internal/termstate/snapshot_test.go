package termstate

import (
	"os"
	"testing"

	ptylib "github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// osPipe returns a pipe pair cleaned up with the test; pipes stand in for
// non-terminal standard streams.
func osPipe(t *testing.T) (*os.File, *os.File, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err == nil {
		t.Cleanup(func() {
			r.Close()
			w.Close()
		})
	}
	return r, w, err
}

func TestCaptureNoTerminal(t *testing.T) {
	r, w, err := osPipe(t)
	require.NoError(t, err)

	snap, err := Capture(r, w)
	require.NoError(t, err)
	require.Nil(t, snap, "pipes are not terminals, no snapshot expected")

	// All operations must be safe no-ops without a snapshot.
	assert.Nil(t, snap.TTY())
	assert.False(t, snap.IsInput())
	assert.NoError(t, snap.RawInput())
	snap.Restore()
	stop := snap.WatchWinsize(w)
	stop()
}

func TestCaptureInputTerminal(t *testing.T) {
	master, tty, err := ptylib.Open()
	require.NoError(t, err)
	defer master.Close()
	defer tty.Close()

	snap, err := Capture(tty, tty)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.True(t, snap.IsInput())
	assert.Equal(t, tty, snap.TTY())

	require.NoError(t, snap.RawInput())
	snap.Restore()
	snap.Restore() // second restore is a no-op
}

func TestCaptureOutputTerminal(t *testing.T) {
	master, tty, err := ptylib.Open()
	require.NoError(t, err)
	defer master.Close()
	defer tty.Close()

	r, _, err := osPipe(t)
	require.NoError(t, err)

	snap, err := Capture(r, tty)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.False(t, snap.IsInput(), "stdin is a pipe, snapshot source must be stdout")

	// Raw mode applies to real terminal input only.
	require.NoError(t, snap.RawInput())
	snap.Restore()
}
