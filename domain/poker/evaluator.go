package poker

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulhankin/poker"
)

var (
	// ErrEvaluation is wrapped by every failure to score a card set.
	ErrEvaluation = errors.New("hand evaluation failed")
	// ErrCardCount is returned for card sets outside 5-7 cards.
	ErrCardCount = errors.New("hand must have 5 to 7 cards")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// HandScore is a totally ordered hand strength. A lower score is a stronger
// hand. Scores from one Evaluator are comparable across 5, 6 and 7 card sets.
type HandScore int32

// Evaluator maps 5 to 7 cards to a HandScore.
type Evaluator interface {
	Evaluate(cards []Card) (HandScore, error)
}

// LibraryEvaluator scores hands with github.com/paulhankin/poker, whose
// scores grow with hand strength; they are negated into HandScore.
type LibraryEvaluator struct{}

// NewEvaluator returns the default Evaluator.
func NewEvaluator() LibraryEvaluator {
	return LibraryEvaluator{}
}

// Evaluate implements Evaluator.
func (LibraryEvaluator) Evaluate(cards []Card) (HandScore, error) {
	hand, err := toLibrary(cards)
	if err != nil {
		return 0, err
	}

	var score int16
	switch len(hand) {
	case 5:
		var h [5]poker.Card
		copy(h[:], hand)
		score = poker.Eval5(&h)
	case 6:
		score = bestOfSix(hand)
	case 7:
		var h [7]poker.Card
		copy(h[:], hand)
		score = poker.Eval7(&h)
	}
	return HandScore(math.MaxInt16 - int32(score)), nil
}

// bestOfSix scores the strongest five-card subset of six cards.
func bestOfSix(hand []poker.Card) int16 {
	best := int16(math.MinInt16)
	var five [5]poker.Card
	for skip := range hand {
		n := 0
		for i, c := range hand {
			if i != skip {
				five[n] = c
				n++
			}
		}
		if s := poker.Eval5(&five); s > best {
			best = s
		}
	}
	return best
}

// Describe returns a human description of the best hand in cards, e.g.
// "three of a kind, queens".
func Describe(cards []Card) (string, error) {
	hand, err := toLibrary(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand)
}

func toLibrary(cards []Card) ([]poker.Card, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrEvaluation, ErrCardCount, len(cards))
	}
	var seen KnownCards
	hand := make([]poker.Card, len(cards))
	for i, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %w at idx %d", ErrEvaluation, ErrInvalidCard, i)
		}
		if seen.Contains(c) {
			return nil, fmt.Errorf("%w: %w %s", ErrEvaluation, ErrDuplicateCard, c)
		}
		seen.Add(c)

		card, err := poker.MakeCard(poker.Suit(c.suit), libraryRank(c.rank))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid card at idx %d: %w", ErrEvaluation, i, err)
		}
		hand[i] = card
	}
	return hand, nil
}

// libraryRank maps 2-14 onto the library's 1-13, where the ace is 1.
func libraryRank(rank uint8) poker.Rank {
	if rank == Ace {
		return poker.Rank(1)
	}
	return poker.Rank(rank)
}
