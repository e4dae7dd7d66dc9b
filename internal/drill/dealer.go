// Package drill deals in-range button hands and runs the street-by-street
// reveal session.
package drill

import (
	"errors"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-drill/internal/deck"
	"github.com/lox/preflop-drill/internal/ranges"
)

// maxDealAttempts bounds the rejection-sampling loop. The range covers close
// to half of all combos, so hitting this means the RNG is broken.
const maxDealAttempts = 100000

// ErrNoRangeHand is returned when no in-range hand shows up within the
// attempt budget.
var ErrNoRangeHand = errors.New("no in-range hand found within attempt budget")

// Hand is the player's two hole cards
type Hand [2]deck.Card

// Board is the five community cards, revealed as flop, turn, river
type Board [5]deck.Card

// Flop returns the first three board cards
func (b Board) Flop() []deck.Card { return b[0:3] }

// Turn returns the fourth board card
func (b Board) Turn() deck.Card { return b[3] }

// River returns the fifth board card
func (b Board) River() deck.Card { return b[4] }

// Dealer produces in-range hands plus boards from an explicit random source
type Dealer struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewDealer creates a dealer around the supplied random source
func NewDealer(rng *rand.Rand, logger *log.Logger) *Dealer {
	return &Dealer{
		rng:    rng,
		logger: logger.WithPrefix("dealer"),
	}
}

// Deal shuffles a fresh 52-card deck and takes the top two cards as the hand.
// If the hand is outside the opening range the entire shuffle is discarded
// and redone, which keeps the sampling uniform over in-range combos. The five
// cards after an accepted hand become the board, disjoint from the hand by
// construction.
func (d *Dealer) Deal() (Hand, Board, error) {
	dk := deck.New(d.rng)
	for attempt := 1; attempt <= maxDealAttempts; attempt++ {
		cards := dk.Deal(7)
		if !ranges.InRange(cards[0], cards[1]) {
			dk.Shuffle()
			continue
		}

		var hand Hand
		var board Board
		copy(hand[:], cards[:2])
		copy(board[:], cards[2:7])

		d.logger.Debug("dealt in-range hand",
			"hand", hand[0].String()+hand[1].String(),
			"attempts", attempt)
		return hand, board, nil
	}
	return Hand{}, Board{}, ErrNoRangeHand
}
