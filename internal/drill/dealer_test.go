package drill

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-drill/internal/deck"
	"github.com/lox/preflop-drill/internal/randutil"
	"github.com/lox/preflop-drill/internal/ranges"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDealProducesInRangeHandAndDistinctCards(t *testing.T) {
	for seed := int64(0); seed < 1000; seed++ {
		hand, board, err := NewDealer(randutil.New(seed), testLogger()).Deal()
		require.NoError(t, err)

		require.True(t, ranges.InRange(hand[0], hand[1]),
			"seed %d dealt out-of-range hand %s %s", seed, hand[0], hand[1])

		seen := make(map[deck.Card]bool)
		for _, c := range append(hand[:], board[:]...) {
			require.False(t, seen[c], "seed %d dealt duplicate card %s", seed, c)
			seen[c] = true
		}
		require.Len(t, seen, 7)
	}
}

func TestDealIsReproduciblePerSeed(t *testing.T) {
	hand1, board1, err := NewDealer(randutil.New(42), testLogger()).Deal()
	require.NoError(t, err)

	hand2, board2, err := NewDealer(randutil.New(42), testLogger()).Deal()
	require.NoError(t, err)

	require.Equal(t, hand1, hand2)
	require.Equal(t, board1, board2)
}

func TestDealDifferentSeedsDiffer(t *testing.T) {
	hand1, board1, err := NewDealer(randutil.New(1), testLogger()).Deal()
	require.NoError(t, err)

	hand2, board2, err := NewDealer(randutil.New(2), testLogger()).Deal()
	require.NoError(t, err)

	require.False(t, hand1 == hand2 && board1 == board2,
		"seeds 1 and 2 dealt identical cards")
}

func TestBoardStreets(t *testing.T) {
	board := Board{
		deck.MustParseCard("2c"),
		deck.MustParseCard("7d"),
		deck.MustParseCard("Jh"),
		deck.MustParseCard("Qs"),
		deck.MustParseCard("As"),
	}

	require.Equal(t, []deck.Card{board[0], board[1], board[2]}, board.Flop())
	require.Equal(t, board[3], board.Turn())
	require.Equal(t, board[4], board.River())
}
