package poker

type Round string

const (
	PreFlop Round = "preflop"
	Flop    Round = "flop"
	Turn    Round = "turn"
	River   Round = "river"
)

// BoardSize is the number of community cards on a complete board.
const BoardSize = 5

// RoundOf returns the betting round reached by a board of n cards. Boards
// of one or two cards are still preflop: the flop is dealt at once.
func RoundOf(n int) Round {
	switch {
	case n >= 5:
		return River
	case n == 4:
		return Turn
	case n == 3:
		return Flop
	default:
		return PreFlop
	}
}

// BoardLabel names the board slot idx (0-4) after the round it is dealt on.
func BoardLabel(idx int) string {
	switch {
	case idx < 3:
		return "Flop"
	case idx == 3:
		return "Turn"
	default:
		return "River"
	}
}
