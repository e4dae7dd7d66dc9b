package drill

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/preflop-drill/internal/deck"
)

// Four-color deck, bright variants for dark terminals
var suitStyles = map[deck.Suit]lipgloss.Style{
	deck.Spades:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	deck.Hearts:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	deck.Diamonds: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	deck.Clubs:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// FormatCard renders a card as its colored rank-plus-glyph form (e.g., "A♠"
// in bright white)
func FormatCard(c deck.Card) string {
	return suitStyles[c.Suit].Render(c.String())
}

// FormatCards renders cards space-separated in board order
func FormatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = FormatCard(c)
	}
	return strings.Join(parts, " ")
}
