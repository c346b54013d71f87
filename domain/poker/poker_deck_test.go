package poker

import "testing"

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}
	seen := NewKnownCards(deck...)
	if seen.Len() != DeckSize {
		t.Fatalf("deck holds duplicates: %d distinct cards", seen.Len())
	}
}

func TestKnownCards(t *testing.T) {
	as := MustCard(Spade, Ace)
	kd := MustCard(Diamond, King)
	known := NewKnownCards(as, as, Card{})
	if known.Len() != 1 {
		t.Fatalf("expected duplicates and invalid cards to collapse, got %d", known.Len())
	}
	if !known.Contains(as) || known.Contains(kd) {
		t.Fatal("membership test is wrong")
	}
	known.Add(kd)
	if !known.ContainsAny(MustCard(Club, 2), kd) {
		t.Fatal("ContainsAny should find kd")
	}
	cards := known.Cards()
	if len(cards) != 2 || cards[0] != kd || cards[1] != as {
		t.Fatalf("unexpected cards %v", cards)
	}
}

func TestRemainingDeck(t *testing.T) {
	sets := []KnownCards{
		NewKnownCards(),
		NewKnownCards(MustCard(Heart, Queen), MustCard(Diamond, Queen)),
		NewKnownCards(FullDeck()[:30]...),
		NewKnownCards(FullDeck()...),
	}
	for _, known := range sets {
		rest := RemainingDeck(known)
		if len(rest) != DeckSize-known.Len() {
			t.Fatalf("expected %d remaining cards, got %d", DeckSize-known.Len(), len(rest))
		}
		for _, c := range rest {
			if known.Contains(c) {
				t.Fatalf("remaining deck holds known card %s", c)
			}
		}
	}
}
