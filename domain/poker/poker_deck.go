package poker

import (
	"errors"
	"math/bits"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks two through ace within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Two through Ace)
//   - 14-26: Diamonds (Two through Ace)
//   - 27-39: Hearts (Two through Ace)
//   - 40-52: Spades (Two through Ace)
//
// Returns the corresponding Card or an error if the number is outside valid range.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + Two)
	return NewCard(suit, rank)
}

// CardToInt is the inverse of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()) - Two + 1
}

// FullDeck returns the 52 cards in card-number order.
func FullDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		c, _ := IntToCard(i)
		deck = append(deck, c)
	}
	return deck
}

// KnownCards is the set of cards already held by the hero, the board, a
// declared villain or a friend. Adding a card twice is a no-op.
type KnownCards struct {
	mask uint64
}

// NewKnownCards returns a set holding every valid card in cards.
func NewKnownCards(cards ...Card) KnownCards {
	var k KnownCards
	k.Add(cards...)
	return k
}

// Add marks the cards as known. Invalid cards are ignored.
func (k *KnownCards) Add(cards ...Card) {
	for _, c := range cards {
		if c.Valid() {
			k.mask |= 1 << CardToInt(c)
		}
	}
}

// Contains reports whether c is known.
func (k KnownCards) Contains(c Card) bool {
	return c.Valid() && k.mask&(1<<CardToInt(c)) != 0
}

// ContainsAny reports whether any of the cards is known.
func (k KnownCards) ContainsAny(cards ...Card) bool {
	for _, c := range cards {
		if k.Contains(c) {
			return true
		}
	}
	return false
}

// Len returns the number of known cards.
func (k KnownCards) Len() int {
	return bits.OnesCount64(k.mask)
}

// Cards returns the known cards in card-number order.
func (k KnownCards) Cards() []Card {
	cards := make([]Card, 0, k.Len())
	for _, c := range FullDeck() {
		if k.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// RemainingDeck returns every card of the deck that is not known, in
// card-number order. The result is empty when the whole deck is known.
func RemainingDeck(known KnownCards) []Card {
	deck := make([]Card, 0, DeckSize-known.Len())
	for _, c := range FullDeck() {
		if !known.Contains(c) {
			deck = append(deck, c)
		}
	}
	return deck
}
