package deck

import (
	"testing"

	"github.com/lox/preflop-drill/internal/randutil"
)

func TestDeckHas52DistinctCards(t *testing.T) {
	d := New(randutil.New(1))
	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		if seen[c] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDealConsumesDeck(t *testing.T) {
	d := New(randutil.New(1))
	if got := d.CardsRemaining(); got != 52 {
		t.Fatalf("fresh deck has %d cards", got)
	}

	cards := d.Deal(7)
	if len(cards) != 7 {
		t.Fatalf("Deal(7) returned %d cards", len(cards))
	}
	if got := d.CardsRemaining(); got != 45 {
		t.Errorf("expected 45 remaining, got %d", got)
	}
	if d.Deal(46) != nil {
		t.Error("over-deal should return nil")
	}
}

func TestShuffleRewindsDeck(t *testing.T) {
	d := New(randutil.New(1))
	d.Deal(52)
	d.Shuffle()
	if got := d.CardsRemaining(); got != 52 {
		t.Errorf("reshuffled deck has %d cards remaining", got)
	}
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	a := New(randutil.New(42)).Deal(52)
	b := New(randutil.New(42)).Deal(52)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at position %d: %s vs %s", i, a[i], b[i])
		}
	}

	c := New(randutil.New(43)).Deal(52)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical shuffles")
	}
}
