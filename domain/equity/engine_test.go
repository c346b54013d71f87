package equity

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/range-equity/domain/poker"
)

func cards(t *testing.T, s string) []poker.Card {
	t.Helper()
	c, err := poker.ParseCards(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func cell(t *testing.T, name string) Cell {
	t.Helper()
	c, err := ParseCell(name)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestHeadsUpQueensAgainstAces(t *testing.T) {
	res, err := NewEngine().Compute(Snapshot{
		Hero:    cards(t, "Qh Qd"),
		Board:   cards(t, "As 8d Qc"),
		Villain: cards(t, "Ah Ad"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != HeadsUpMode {
		t.Fatalf("expected heads-up mode, got %s", res.Mode)
	}
	want := Totals{Possible: 1, Losing: 1}
	if res.Totals != want {
		t.Fatalf("expected %+v, got %+v", want, res.Totals)
	}
	if eq := res.Equity(); eq.Lose != 100 || eq.Win != 0 {
		t.Fatalf("unexpected equity %+v", eq)
	}
}

func TestInsufficientBoard(t *testing.T) {
	friends := [][]poker.Card{cards(t, "Kc Kd"), cards(t, "2s 3s")}
	for _, known := range [][][]poker.Card{nil, friends} {
		res, err := NewEngine().Compute(Snapshot{
			Hero:    cards(t, "As Ah"),
			Friends: known,
		})
		if !errors.Is(err, ErrInsufficientInformation) {
			t.Fatalf("expected ErrInsufficientInformation, got %v", err)
		}
		if res.Totals != (Totals{}) || res.HeroScored {
			t.Fatalf("expected no totals, got %+v", res.Totals)
		}
	}
}

func TestInsufficientHero(t *testing.T) {
	_, err := NewEngine().Compute(Snapshot{
		Hero:  cards(t, "As"),
		Board: cards(t, "Kd 7c 2h"),
	})
	if !errors.Is(err, ErrInsufficientInformation) {
		t.Fatalf("expected ErrInsufficientInformation, got %v", err)
	}
}

func TestHeroSharesBoardCard(t *testing.T) {
	_, err := NewEngine().Compute(Snapshot{
		Hero:  cards(t, "As Kd"),
		Board: cards(t, "As 7c 2h"),
	})
	if !errors.Is(err, ErrInsufficientInformation) || !errors.Is(err, poker.ErrDuplicateCard) {
		t.Fatalf("expected insufficient information caused by a duplicate, got %v", err)
	}
}

func TestPreflopMatrix(t *testing.T) {
	res, _ := NewEngine().Compute(Snapshot{Hero: cards(t, "As Ah")})

	aa := res.Cell(cell(t, "AA"))
	if aa.Counts.Total != 6 || aa.Counts.Blocked != 5 || aa.Counts.Pending() != 1 {
		t.Fatalf("unexpected AA counts %+v", aa.Counts)
	}
	if aa.State != PreflopPair {
		t.Fatalf("expected preflop pair, got %s", aa.State)
	}
	if s := res.Cell(cell(t, "KQs")).State; s != PreflopSuited {
		t.Fatalf("expected preflop suited, got %s", s)
	}
	if s := res.Cell(cell(t, "72o")).State; s != PreflopOffsuit {
		t.Fatalf("expected preflop offsuit, got %s", s)
	}
}

func TestRangeTotalsMatchMatrix(t *testing.T) {
	s := Snapshot{
		Hero:    cards(t, "Js Jh"),
		Board:   cards(t, "Jd 7c 2h 9s"),
		Friends: [][]poker.Card{cards(t, "Ac Kc")},
		Villain: cards(t, "Qd"),
	}
	res, err := NewEngine().Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != RangeMode {
		t.Fatalf("one villain card must not switch to heads-up, got %s", res.Mode)
	}

	remaining := poker.DeckSize - s.Known().Len()
	if want := remaining * (remaining - 1) / 2; res.Totals.Possible != want {
		t.Fatalf("expected %d possible hands, got %d", want, res.Totals.Possible)
	}
	if res.Totals.Possible != res.Totals.Winning+res.Totals.Losing+res.Totals.Ties {
		t.Fatalf("totals do not add up: %+v", res.Totals)
	}

	var sum CellCounts
	for _, row := range res.Matrix {
		for _, cr := range row {
			c := cr.Counts
			if c.Total != cr.Cell.ComboCount() {
				t.Fatalf("%s: total %d, expected %d", cr.Cell, c.Total, cr.Cell.ComboCount())
			}
			if c.Pending() != 0 {
				t.Fatalf("%s: %d combos left unevaluated", cr.Cell, c.Pending())
			}
			sum.Winning += c.Winning
			sum.Losing += c.Losing
			sum.Ties += c.Ties
		}
	}
	if sum.Winning != res.Totals.Winning || sum.Losing != res.Totals.Losing || sum.Ties != res.Totals.Ties {
		t.Fatalf("matrix %+v disagrees with totals %+v", sum, res.Totals)
	}
}

func TestBoardPlaysForEveryone(t *testing.T) {
	res, err := NewEngine().Compute(Snapshot{
		Hero:  cards(t, "2c 3d"),
		Board: cards(t, "As Ks Qs Js Ts"),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := Totals{Possible: 45 * 44 / 2, Ties: 45 * 44 / 2}
	if res.Totals != want {
		t.Fatalf("expected %+v, got %+v", want, res.Totals)
	}
	if s := res.Cell(cell(t, "AKs")).State; s != Split {
		t.Fatalf("expected split for AKs, got %s", s)
	}
}

func TestIdempotentCompute(t *testing.T) {
	s := Snapshot{
		Hero:     cards(t, "Ah Kh"),
		Board:    cards(t, "Qh 7h 2c"),
		Friends:  [][]poker.Card{cards(t, "9c 9d")},
		Excluded: Exclusions{cell(t, "72o"): {}},
	}
	e := NewEngine()
	first, err := e.Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("two runs on the same snapshot differ")
	}
}

func TestTotalsStableWithoutKnownChange(t *testing.T) {
	e := NewEngine()
	for _, board := range []string{"", "Kd 7c 2h", "Kd 7c 2h 5s", "Kd 7c 2h 5s 9d"} {
		res, _ := e.Compute(Snapshot{Hero: cards(t, "Qs Jd"), Board: cards(t, board)})
		for _, c := range AllCells() {
			if got := res.Cell(c).Counts.Total; got != c.ComboCount() {
				t.Fatalf("board %q, %s: total %d, expected %d", board, c, got, c.ComboCount())
			}
		}
	}
}

func TestExclusionIsDisplayOnly(t *testing.T) {
	s := Snapshot{
		Hero:  cards(t, "As Ad"),
		Board: cards(t, "Ac 8d 3h"),
	}
	e := NewEngine()
	before, err := e.Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	k7 := cell(t, "K7o")
	if before.Cell(k7).State != Safe || before.Cell(k7).Counts.Winning == 0 {
		t.Fatalf("expected K7o to be safe for trip aces, got %+v", before.Cell(k7))
	}

	s.Excluded = Exclusions{}
	s.Excluded.Toggle(k7)
	after, err := e.Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	if after.Cell(k7).State != Excluded {
		t.Fatalf("expected excluded, got %s", after.Cell(k7).State)
	}
	if after.Cell(k7).Counts != before.Cell(k7).Counts || after.Totals != before.Totals {
		t.Fatal("exclusion must not change counts")
	}
}

func TestFullyBlockedCell(t *testing.T) {
	res, err := NewEngine().Compute(Snapshot{
		Hero:    cards(t, "Ks Kh"),
		Board:   cards(t, "Kd 7c 2h"),
		Friends: [][]poker.Card{cards(t, "Kc 3d")},
	})
	if err != nil {
		t.Fatal(err)
	}
	kk := res.Cell(cell(t, "KK"))
	if kk.State != FullyBlocked || !kk.Counts.FullyBlocked() {
		t.Fatalf("expected KK fully blocked, got %+v", kk)
	}
}

// failingEvaluator rejects every hand containing bad.
type failingEvaluator struct {
	bad  poker.Card
	next poker.Evaluator
}

func (f failingEvaluator) Evaluate(c []poker.Card) (poker.HandScore, error) {
	for _, card := range c {
		if card == f.bad {
			return 0, poker.ErrEvaluation
		}
	}
	return f.next.Evaluate(c)
}

func TestEvaluationErrorsAreSkipped(t *testing.T) {
	bad := poker.MustCard(poker.Heart, 9)
	e := NewEngine(WithEvaluator(failingEvaluator{bad: bad, next: poker.NewEvaluator()}))
	res, err := e.Compute(Snapshot{
		Hero:  cards(t, "As Kd"),
		Board: cards(t, "Qc Jc 4s"),
	})
	if err != nil {
		t.Fatal(err)
	}
	// 9h pairs with each of the other 46 unknown cards
	if res.Totals.Failed != 46 {
		t.Fatalf("expected 46 failed combos, got %d", res.Totals.Failed)
	}
	if want := 47*46/2 - 46; res.Totals.Possible != want {
		t.Fatalf("expected %d possible hands, got %d", want, res.Totals.Possible)
	}
	for _, c := range AllCells() {
		counts := res.Cell(c).Counts
		sum := counts.Blocked + counts.Winning + counts.Losing + counts.Ties + counts.Failed
		if sum != counts.Total {
			t.Fatalf("%s: %+v does not add up", c, counts)
		}
	}
	if res.Cell(cell(t, "99")).Counts.Failed != 3 {
		t.Fatalf("expected 3 failed 99 combos, got %+v", res.Cell(cell(t, "99")).Counts)
	}
}

func TestHeadsUpVillainOverlapsBoard(t *testing.T) {
	res, err := NewEngine().Compute(Snapshot{
		Hero:    cards(t, "Qh Qd"),
		Board:   cards(t, "As 8d Qc"),
		Villain: cards(t, "As Ad"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Totals.Possible != 0 {
		t.Fatalf("an impossible villain hand must not be counted, got %+v", res.Totals)
	}
}
