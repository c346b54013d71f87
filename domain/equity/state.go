package equity

import "fmt"

// State is the display state of a matrix cell.
type State uint8

const (
	Excluded State = iota
	FullyBlocked
	Danger
	Safe
	Split
	NeutralEvaluated
	PreflopPair
	PreflopSuited
	PreflopOffsuit
)

var stateNames = [...]string{
	Excluded:         "excluded",
	FullyBlocked:     "blocked",
	Danger:           "danger",
	Safe:             "safe",
	Split:            "split",
	NeutralEvaluated: "neutral",
	PreflopPair:      "preflop_pair",
	PreflopSuited:    "preflop_suited",
	PreflopOffsuit:   "preflop_offsuit",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// MarshalText lets states travel as their names in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cell state %q", b)
}

// ClassifyCell derives the display state of a cell. The first matching rule
// wins, in the order of the State constants.
func ClassifyCell(counts CellCounts, shape Shape, excluded, heroScored bool) State {
	switch {
	case excluded:
		return Excluded
	case counts.FullyBlocked():
		return FullyBlocked
	case counts.Losing > 0:
		return Danger
	case counts.Winning > 0:
		return Safe
	case counts.Ties > 0:
		return Split
	case heroScored:
		return NeutralEvaluated
	}
	switch shape {
	case Pair:
		return PreflopPair
	case Suited:
		return PreflopSuited
	default:
		return PreflopOffsuit
	}
}
