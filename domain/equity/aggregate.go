package equity

// Totals are the global counts over every evaluated opponent combo.
type Totals struct {
	Possible int // combos actually evaluated
	Winning  int // the hero wins
	Losing   int // the villain wins
	Ties     int
	Failed   int // skipped after an evaluation error, not part of Possible
}

func (t *Totals) add(v Verdict) {
	t.Possible++
	switch v {
	case HeroWins:
		t.Winning++
	case VillainWins:
		t.Losing++
	default:
		t.Ties++
	}
}

// Equity is the share of possible hands per outcome, in percent.
type Equity struct {
	Win  float64
	Lose float64
	Tie  float64
}

// Equity returns zero percentages when nothing was evaluated.
func (t Totals) Equity() Equity {
	if t.Possible == 0 {
		return Equity{}
	}
	n := float64(t.Possible)
	return Equity{
		Win:  float64(t.Winning) / n * 100,
		Lose: float64(t.Losing) / n * 100,
		Tie:  float64(t.Ties) / n * 100,
	}
}

// CellCounts are the per-cell counters. Once the hero has a score,
// Total == Blocked + Winning + Losing + Ties + Failed.
type CellCounts struct {
	Total   int
	Blocked int
	Winning int
	Losing  int
	Ties    int
	Failed  int
}

func (c *CellCounts) add(v Verdict) {
	switch v {
	case HeroWins:
		c.Winning++
	case VillainWins:
		c.Losing++
	default:
		c.Ties++
	}
}

// Pending is the number of unblocked combos that were not evaluated, which
// is non-zero only before the hero hand can be scored.
func (c CellCounts) Pending() int {
	return c.Total - c.Blocked - c.Winning - c.Losing - c.Ties - c.Failed
}

// FullyBlocked reports whether every combo of the cell is held by a known card.
func (c CellCounts) FullyBlocked() bool {
	return c.Total > 0 && c.Blocked == c.Total
}
