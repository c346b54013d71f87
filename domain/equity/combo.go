package equity

import (
	"fmt"

	"github.com/luca-patrignani/range-equity/domain/poker"
)

// Combo is an unordered two-card hand. High is always the greater card in
// card order, so {c1, c2} and {c2, c1} are the same Combo value.
type Combo struct {
	High poker.Card
	Low  poker.Card
}

// NewCombo orders the two cards into a Combo.
func NewCombo(a, b poker.Card) Combo {
	if a.Less(b) {
		return Combo{High: b, Low: a}
	}
	return Combo{High: a, Low: b}
}

func (c Combo) String() string {
	return c.High.Short() + c.Low.Short()
}

// Cards returns the two cards, high first.
func (c Combo) Cards() []poker.Card {
	return []poker.Card{c.High, c.Low}
}

// Cell returns the matrix cell holding the combo.
func (c Combo) Cell() Cell {
	hi, lo := rankIndex(c.High.Rank()), rankIndex(c.Low.Rank())
	switch {
	case hi == lo:
		return Cell{Row: hi, Col: hi}
	case c.High.Suit() == c.Low.Suit():
		return Cell{Row: hi, Col: lo}
	default:
		return Cell{Row: lo, Col: hi}
	}
}

// RangeCombos enumerates every unordered pair of the remaining deck exactly
// once, skipping any combo that touches a known card.
func RangeCombos(known poker.KnownCards) []Combo {
	deck := poker.RemainingDeck(known)
	combos := make([]Combo, 0, len(deck)*(len(deck)-1)/2)
	for i, c1 := range deck {
		for _, c2 := range deck[:i] {
			combos = append(combos, NewCombo(c1, c2))
		}
	}
	return combos
}

// HeadsUpCombos returns the single declared villain hand.
func HeadsUpCombos(villain []poker.Card) ([]Combo, error) {
	if len(villain) != 2 {
		return nil, fmt.Errorf("heads-up needs exactly 2 villain cards, got %d", len(villain))
	}
	if villain[0] == villain[1] {
		return nil, fmt.Errorf("villain holds %s twice", villain[0])
	}
	return []Combo{NewCombo(villain[0], villain[1])}, nil
}
