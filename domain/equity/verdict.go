package equity

import (
	"fmt"

	"github.com/luca-patrignani/range-equity/domain/poker"
)

// Verdict is the showdown result of one opponent combo, seen from the hero.
type Verdict uint8

const (
	HeroWins Verdict = iota
	VillainWins
	Tie
)

func (v Verdict) String() string {
	switch v {
	case HeroWins:
		return "hero wins"
	case VillainWins:
		return "villain wins"
	default:
		return "tie"
	}
}

// Classify compares two scores where lower is stronger.
func Classify(hero, villain poker.HandScore) Verdict {
	switch {
	case villain < hero:
		return VillainWins
	case hero < villain:
		return HeroWins
	default:
		return Tie
	}
}

// classifier scores opponent combos on a fixed board against a fixed hero
// score.
type classifier struct {
	evaluator poker.Evaluator
	hero      poker.HandScore
	hand      []poker.Card // combo in the first two slots, then the board
}

func newClassifier(evaluator poker.Evaluator, board []poker.Card, hero poker.HandScore) *classifier {
	hand := make([]poker.Card, 2, 2+len(board))
	hand = append(hand, board...)
	return &classifier{evaluator: evaluator, hero: hero, hand: hand}
}

// classify evaluates combo plus board. The returned error wraps
// poker.ErrEvaluation and means the combo must not be counted.
func (c *classifier) classify(combo Combo) (Verdict, error) {
	c.hand[0], c.hand[1] = combo.High, combo.Low
	score, err := c.evaluator.Evaluate(c.hand)
	if err != nil {
		return 0, fmt.Errorf("classify %s: %w", combo, err)
	}
	return Classify(c.hero, score), nil
}
