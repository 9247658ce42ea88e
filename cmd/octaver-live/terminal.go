package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// terminal puts stdin in raw mode and delivers single key presses.
type terminal struct {
	fd       int
	oldState *term.State
	keys     chan byte
}

func openTerminal(f *os.File) (*terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}

	t := &terminal{fd: fd, oldState: oldState, keys: make(chan byte, 16)}
	go t.readLoop(f)

	return t, nil
}

func (t *terminal) readLoop(f *os.File) {
	defer close(t.keys)

	buf := make([]byte, 1)
	for {
		n, err := f.Read(buf)
		if err != nil {
			return
		}
		if n == 1 {
			t.keys <- buf[0]
		}
	}
}

// Keys returns key presses until stdin closes.
func (t *terminal) Keys() <-chan byte { return t.keys }

// Close restores the original terminal state.
func (t *terminal) Close() {
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}
