// Package ranges classifies hole cards against the button opening range the
// drill trains: roughly the top 45% of starting hands.
package ranges

import "github.com/lox/preflop-drill/internal/deck"

// InRange reports whether two distinct hole cards fall inside the button
// opening range. Every pocket pair is an open; non-pairs are checked against
// per-high-card kicker thresholds, one table for suited and one for offsuit.
func InRange(c1, c2 deck.Card) bool {
	hi, lo := c1.Rank, c2.Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	switch {
	case c1.Rank == c2.Rank:
		return true
	case c1.Suit == c2.Suit:
		return inSuitedRange(hi, lo)
	default:
		return inOffsuitRange(hi, lo)
	}
}

// inSuitedRange holds the suited half of the chart: A/K/Q with any kicker,
// then a sliding kicker floor down to exactly 43s.
func inSuitedRange(hi, lo deck.Rank) bool {
	switch hi {
	case deck.Ace, deck.King, deck.Queen:
		return true
	case deck.Jack:
		return lo >= deck.Four
	case deck.Ten, deck.Nine:
		return lo >= deck.Six
	case deck.Eight, deck.Seven:
		return lo >= deck.Five
	case deck.Six:
		return lo >= deck.Four
	case deck.Five:
		return lo >= deck.Three
	case deck.Four:
		return lo == deck.Three
	default:
		return false
	}
}

// inOffsuitRange holds the offsuit half: A3o+, K8o+ through T8o+, and 98o.
func inOffsuitRange(hi, lo deck.Rank) bool {
	switch hi {
	case deck.Ace:
		return lo >= deck.Three
	case deck.King, deck.Queen, deck.Jack, deck.Ten:
		return lo >= deck.Eight
	case deck.Nine:
		return lo == deck.Eight
	default:
		return false
	}
}
