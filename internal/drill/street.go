package drill

import "github.com/lox/preflop-drill/internal/deck"

// Street identifies one reveal step of a hand. Streets advance strictly in
// order: preflop, flop, turn, river.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the display label for the street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "?"
	}
}

// Reveal returns the cards newly visible on this street
func (s Street) Reveal(hand Hand, board Board) []deck.Card {
	switch s {
	case Preflop:
		return hand[:]
	case Flop:
		return board.Flop()
	case Turn:
		return []deck.Card{board.Turn()}
	case River:
		return []deck.Card{board.River()}
	default:
		return nil
	}
}
