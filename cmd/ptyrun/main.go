package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"ptyrun/internal/pty"
	"ptyrun/internal/termstate"
)

var errUsage = errors.New("no program to run")

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-shell] program [parameters]

Runs program attached to a freshly allocated pseudo-terminal and relays
bytes between it and the invoking terminal. The program believes it owns
a real terminal: raw input, window size and controlling-terminal
ownership are preserved.

Flags:
  -shell    launch your shell instead of naming a program
`, os.Args[0])
}

// target resolves what to launch from the trailing arguments. The first
// trailing argument is the executable, the rest are passed to it verbatim.
// With -shell and no arguments the user's shell is resolved instead.
func target(args []string, shell bool) (string, []string, error) {
	if len(args) > 0 {
		return args[0], args[1:], nil
	}
	if shell {
		name, err := pty.DetectShell()
		if err != nil {
			return "", nil, err
		}
		return name, nil, nil
	}
	return "", nil, errUsage
}

func run(name string, args []string) error {
	sess, err := pty.Spawn(name, args...)
	if err != nil {
		return err
	}
	defer sess.Close()

	snap, err := termstate.Capture(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer snap.Restore()

	if snap != nil {
		if err := termstate.CopyWinsize(snap.TTY(), sess.Master); err != nil {
			log.Printf("[ptyrun] copy window size: %v", err)
		}
		stop := snap.WatchWinsize(sess.Master)
		defer stop()

		if err := snap.RawInput(); err != nil {
			return err
		}
	}

	// The interrupt is only recorded here; the relay loop observes it
	// after its blocking wait and returns normally, so the deferred
	// restore and cleanup always run.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	return sess.Relay(os.Stdin, os.Stdout, interrupt)
}

func main() {
	shell := flag.Bool("shell", false, "launch your shell instead of naming a program")
	flag.Usage = usage
	flag.Parse()

	name, args, err := target(flag.Args(), *shell)
	if err != nil {
		if errors.Is(err, errUsage) {
			usage()
		} else {
			fmt.Fprintf(os.Stderr, "ptyrun: %v\n", err)
		}
		os.Exit(1)
	}

	if err := run(name, args); err != nil {
		fmt.Fprintf(os.Stderr, "ptyrun: %v\n", err)
		os.Exit(1)
	}
}
