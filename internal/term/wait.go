// Package term implements the per-street wait: block until the user presses
// a continue key or a countdown timeout elapses, whichever comes first.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl-C during a wait.
// Raw mode disables the terminal's own signal generation, so the byte has to
// be translated back into a stop here.
var ErrInterrupted = errors.New("interrupted")

// KeyWaiter waits out each street on a key press or a timeout. The clock and
// terminal detection are injected so tests can drive the timeout and the
// interactive path without a real terminal or real time passing.
type KeyWaiter struct {
	in      io.Reader
	out     *termenv.Output
	clock   quartz.Clock
	timeout time.Duration
	logger  *log.Logger

	isTerminal func() bool
}

// NewKeyWaiter creates a waiter reading keys from in (normally os.Stdin) and
// drawing its countdown on out (normally os.Stdout).
func NewKeyWaiter(in io.Reader, out io.Writer, clock quartz.Clock, timeout time.Duration, logger *log.Logger) *KeyWaiter {
	return &KeyWaiter{
		in:      in,
		out:     termenv.NewOutput(out),
		clock:   clock,
		timeout: timeout,
		logger:  logger.WithPrefix("wait"),
		isTerminal: func() bool {
			f, ok := in.(*os.File)
			return ok && xterm.IsTerminal(int(f.Fd()))
		},
	}
}

// Wait blocks until a continue key (space, enter) is pressed or the timeout
// elapses; both return nil. Ctrl-C returns ErrInterrupted and context
// cancellation returns the context's error.
//
// When in is not an interactive terminal no key watcher runs and the wait
// resolves purely on the timeout, which is what keeps scripted and test runs
// from hanging. A zero timeout returns immediately.
func (w *KeyWaiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.timeout <= 0 {
		return nil
	}

	keyCh := make(chan struct{}, 1)
	intrCh := make(chan struct{}, 1)

	interactive := w.isTerminal()
	if interactive {
		if f, ok := w.in.(*os.File); ok {
			state, err := xterm.MakeRaw(int(f.Fd()))
			if err != nil {
				w.logger.Debug("could not enter raw mode", "error", err)
			} else {
				// Restore on every exit path: key, timeout, cancellation.
				defer xterm.Restore(int(f.Fd()), state) //nolint:errcheck
			}
		}

		reader, err := cancelreader.NewReader(w.in)
		if err != nil {
			w.logger.Debug("could not watch input", "error", err)
			interactive = false
		} else {
			// The watcher is abandoned once the wait resolves;
			// cancelling the reader unblocks its pending Read.
			defer reader.Cancel()
			go watchKeys(reader, keyCh, intrCh)
		}
	}

	timer := w.clock.NewTimer(w.timeout)
	defer timer.Stop()

	deadline := w.clock.Now().Add(w.timeout)
	var tick <-chan time.Time
	if interactive {
		ticker := w.clock.NewTicker(time.Second)
		defer ticker.Stop()
		tick = ticker.C
		w.renderCountdown(deadline)
	}

	for {
		select {
		case <-ctx.Done():
			w.clearCountdown(interactive)
			return ctx.Err()
		case <-intrCh:
			w.clearCountdown(interactive)
			return ErrInterrupted
		case <-keyCh:
			w.clearCountdown(interactive)
			w.logger.Debug("advancing on key press")
			return nil
		case <-timer.C:
			w.clearCountdown(interactive)
			w.logger.Debug("advancing on timeout")
			return nil
		case <-tick:
			w.renderCountdown(deadline)
		}
	}
}

// renderCountdown repaints the remaining seconds in place on the current line
func (w *KeyWaiter) renderCountdown(deadline time.Time) {
	remaining := int(deadline.Sub(w.clock.Now()).Round(time.Second) / time.Second)
	if remaining < 0 {
		remaining = 0
	}
	w.out.ClearLine()
	fmt.Fprintf(w.out, "\r\t\t%3ds", remaining)
}

func (w *KeyWaiter) clearCountdown(interactive bool) {
	if !interactive {
		return
	}
	w.out.ClearLine()
	fmt.Fprint(w.out, "\r")
}

// watchKeys reads single bytes until it sees a continue key or Ctrl-C, then
// reports on the matching channel and exits. Reads fail once the reader is
// cancelled, which ends the goroutine after an abandoned wait.
func watchKeys(r io.Reader, key, intr chan<- struct{}) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case 0x03: // Ctrl-C
			select {
			case intr <- struct{}{}:
			default:
			}
			return
		case ' ', '\r', '\n':
			select {
			case key <- struct{}{}:
			default:
			}
			return
		}
	}
}
