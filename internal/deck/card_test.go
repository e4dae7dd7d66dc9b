package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "A♠"},
		{NewCard(Ten, Hearts), "T♥"},
		{NewCard(Two, Clubs), "2♣"},
		{NewCard(King, Diamonds), "K♦"},
	}

	for _, tc := range tests {
		if got := tc.card.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{
			name:  "ace of spades",
			input: "As",
			want:  Card{Rank: Ace, Suit: Spades},
		},
		{
			name:  "two of hearts",
			input: "2h",
			want:  Card{Rank: Two, Suit: Hearts},
		},
		{
			name:  "ten with T notation",
			input: "Tc",
			want:  Card{Rank: Ten, Suit: Clubs},
		},
		{
			name:  "case insensitive",
			input: "kD",
			want:  Card{Rank: King, Suit: Diamonds},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "Asd",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && card != tc.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.want)
			}
		})
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Ace, Hearts).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Ace, Diamonds).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Ace, Spades).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Ace, Clubs).IsRed() {
		t.Error("clubs should not be red")
	}
}

func TestMustParseCardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid notation")
		}
	}()
	MustParseCard("zz")
}
