package drill

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"github.com/lox/preflop-drill/internal/deck"
)

// DescribeShowdown returns a description of the best five-card hand makeable
// from the hole cards and board, e.g. "two pair, kings and fours". Used for
// the optional post-river result line.
func DescribeShowdown(hand Hand, board Board) (string, error) {
	all := make([]poker.Card, 0, 7)
	for _, c := range append(hand[:], board[:]...) {
		pc, err := toLibCard(c)
		if err != nil {
			return "", err
		}
		all = append(all, pc)
	}

	desc, err := poker.Describe(all)
	if err != nil {
		return "", fmt.Errorf("describing hand: %w", err)
	}
	return desc, nil
}

// toLibCard converts to the evaluator library's card type. The library counts
// aces low (Ace=1), ours are high (Ace=14).
func toLibCard(c deck.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case deck.Spades:
		s = poker.Spade
	case deck.Hearts:
		s = poker.Heart
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Clubs:
		s = poker.Club
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
