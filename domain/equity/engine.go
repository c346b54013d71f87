package equity

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/range-equity/domain/poker"
)

// ErrInsufficientInformation is returned while the hero has fewer than two
// cards or the board fewer than three. No totals are produced in that case.
var ErrInsufficientInformation = errors.New("insufficient information")

// Mode tells whether the totals were computed against a range or one hand.
type Mode string

const (
	RangeMode   Mode = "range"
	HeadsUpMode Mode = "heads_up"
)

// Snapshot is the full engine input. The caller owns the selection state and
// passes a fresh Snapshot on every change.
type Snapshot struct {
	Hero     []poker.Card
	Board    []poker.Card
	Villain  []poker.Card // 0, 1 or 2 cards; only 2 cards switch to heads-up
	Friends  [][]poker.Card
	Excluded Exclusions
}

// Known returns every card held by the hero, the board, the villain or a
// friend.
func (s Snapshot) Known() poker.KnownCards {
	known := poker.NewKnownCards(s.Hero...)
	known.Add(s.Board...)
	known.Add(s.Villain...)
	for _, f := range s.Friends {
		known.Add(f...)
	}
	return known
}

// Mode reports heads-up when exactly two villain cards are declared.
func (s Snapshot) Mode() Mode {
	if len(s.Villain) == 2 {
		return HeadsUpMode
	}
	return RangeMode
}

// Ready reports whether the hero hand can be evaluated.
func (s Snapshot) Ready() bool {
	return len(s.Hero) == 2 && len(s.Board) >= 3
}

// CellResult is one aggregated matrix cell.
type CellResult struct {
	Cell   Cell
	Counts CellCounts
	State  State
}

// Result is the engine output for one Snapshot.
type Result struct {
	Mode       Mode
	HeroScored bool
	HeroScore  poker.HandScore
	Totals     Totals
	Matrix     [MatrixSize][MatrixSize]CellResult
}

// Cell returns the aggregated cell c.
func (r Result) Cell(c Cell) CellResult {
	return r.Matrix[c.Row][c.Col]
}

// Equity is a shortcut for r.Totals.Equity().
func (r Result) Equity() Equity {
	return r.Totals.Equity()
}

// Engine computes Results. It holds no state between calls and is safe to
// share.
type Engine struct {
	evaluator poker.Evaluator
	logger    *slog.Logger
}

type option func(Engine) Engine

// NewEngine returns an Engine using the library evaluator unless an option
// overrides it.
func NewEngine(opts ...option) Engine {
	e := Engine{
		evaluator: poker.NewEvaluator(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

func WithEvaluator(evaluator poker.Evaluator) option {
	return func(e Engine) Engine {
		e.evaluator = evaluator
		return e
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(e Engine) Engine {
		e.logger = logger
		return e
	}
}

// Compute evaluates the snapshot from scratch.
//
// When the hero cannot be scored the returned error wraps
// ErrInsufficientInformation; the Result then still carries the matrix with
// total and blocked counts and shape-only states, but zero totals.
func (e Engine) Compute(s Snapshot) (Result, error) {
	known := s.Known()
	res := Result{Mode: s.Mode()}

	var err error
	if !s.Ready() {
		err = fmt.Errorf("%w: hero has %d cards, board has %d", ErrInsufficientInformation, len(s.Hero), len(s.Board))
	} else {
		heroHand := append(append(make([]poker.Card, 0, 7), s.Hero...), s.Board...)
		res.HeroScore, err = e.evaluator.Evaluate(heroHand)
		if err != nil {
			err = fmt.Errorf("%w: hero hand: %w", ErrInsufficientInformation, err)
		} else {
			res.HeroScored = true
		}
	}

	var outcomes map[Combo]outcome
	if res.HeroScored {
		cls := newClassifier(e.evaluator, s.Board, res.HeroScore)
		outcomes = e.classifyAll(cls, RangeCombos(known))
		if res.Mode == HeadsUpMode {
			res.Totals = e.headsUp(cls, s)
		} else {
			for _, o := range outcomes {
				if o.failed {
					res.Totals.Failed++
				} else {
					res.Totals.add(o.verdict)
				}
			}
		}
	}

	for _, cell := range AllCells() {
		cr := CellResult{Cell: cell}
		for combo := range cell.Combos() {
			cr.Counts.Total++
			if known.ContainsAny(combo.High, combo.Low) {
				cr.Counts.Blocked++
				continue
			}
			o, ok := outcomes[combo]
			switch {
			case !ok:
			case o.failed:
				cr.Counts.Failed++
			default:
				cr.Counts.add(o.verdict)
			}
		}
		cr.State = ClassifyCell(cr.Counts, cell.Shape(), s.Excluded.Contains(cell), res.HeroScored)
		res.Matrix[cell.Row][cell.Col] = cr
	}

	if res.HeroScored {
		e.logger.Debug("equity computed",
			"mode", res.Mode,
			"possible", res.Totals.Possible,
			"winning", res.Totals.Winning,
			"losing", res.Totals.Losing,
			"ties", res.Totals.Ties,
			"failed", res.Totals.Failed,
		)
	}
	return res, err
}

type outcome struct {
	verdict Verdict
	failed  bool
}

// classifyAll runs every combo through cls. Evaluation errors are logged and
// recorded as failed; they never stop the enumeration.
func (e Engine) classifyAll(cls *classifier, combos []Combo) map[Combo]outcome {
	outcomes := make(map[Combo]outcome, len(combos))
	for _, combo := range combos {
		v, err := cls.classify(combo)
		if err != nil {
			e.logger.Warn("combo skipped", "combo", combo.String(), "error", err)
			outcomes[combo] = outcome{failed: true}
			continue
		}
		outcomes[combo] = outcome{verdict: v}
	}
	return outcomes
}

// headsUp classifies the declared villain hand. A villain card that is also
// held by the hero, the board or a friend makes the hand impossible, so it is
// left out of the totals.
func (e Engine) headsUp(cls *classifier, s Snapshot) Totals {
	var t Totals
	combos, err := HeadsUpCombos(s.Villain)
	if err != nil {
		e.logger.Warn("villain hand ignored", "error", err)
		return t
	}
	others := Snapshot{Hero: s.Hero, Board: s.Board, Friends: s.Friends}.Known()
	combo := combos[0]
	if others.ContainsAny(combo.High, combo.Low) {
		e.logger.Warn("villain hand overlaps known cards", "combo", combo.String())
		return t
	}
	v, err := cls.classify(combo)
	if err != nil {
		e.logger.Warn("combo skipped", "combo", combo.String(), "error", err)
		t.Failed++
		return t
	}
	t.add(v)
	return t
}
