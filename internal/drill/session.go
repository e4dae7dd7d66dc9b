package drill

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-drill/internal/randutil"
)

// Prompter blocks until the user signals to continue, a timeout elapses, or
// the context is cancelled. A key press and a timeout are equivalent; only a
// non-nil error stops the session.
type Prompter interface {
	Wait(ctx context.Context) error
}

// Session runs a fixed number of drill hands, revealing each street in turn
// and pausing on the prompter between streets.
type Session struct {
	Out      io.Writer
	Prompter Prompter
	Logger   *log.Logger

	Hands      int
	Seed       int64
	Seeded     bool // deal hand i from Seed+i-1 instead of wall-clock entropy
	ShowResult bool
}

// Run plays all configured hands. It returns the prompter's error unchanged
// when a wait is cut short, so callers can distinguish a user stop from a
// deal failure.
func (s *Session) Run(ctx context.Context) error {
	for i := 1; i <= s.Hands; i++ {
		if err := s.runHand(ctx, i); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.Out, "\nDone. Good session.")
	return nil
}

func (s *Session) runHand(ctx context.Context, n int) error {
	rng := s.handRNG(n)
	hand, board, err := NewDealer(rng, s.Logger).Deal()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\nHand %d:\n", n)
	for street := Preflop; street <= River; street++ {
		fmt.Fprintf(s.Out, "%-8s %s\n", street.String()+":", FormatCards(street.Reveal(hand, board)))
		if err := s.Prompter.Wait(ctx); err != nil {
			s.Logger.Debug("session stopped mid-hand", "hand", n, "street", street)
			return err
		}
	}

	if s.ShowResult {
		desc, err := DescribeShowdown(hand, board)
		if err != nil {
			s.Logger.Warn("could not describe hand", "error", err)
			return nil
		}
		fmt.Fprintf(s.Out, "%-8s %s\n", "Result:", desc)
	}
	return nil
}

// handRNG derives the random source for hand n. Seeded sessions step the seed
// once per hand so repeated runs reproduce the same varied sequence.
func (s *Session) handRNG(n int) *rand.Rand {
	if s.Seeded {
		return randutil.New(s.Seed + int64(n-1))
	}
	return randutil.New(time.Now().UnixNano())
}
