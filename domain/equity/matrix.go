package equity

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/luca-patrignani/range-equity/domain/poker"
)

// MatrixSize is the number of rows and columns of the starting-hand matrix.
const MatrixSize = len(poker.RanksDescending)

// ErrInvalidCell is returned when a cell name cannot be parsed.
var ErrInvalidCell = errors.New("invalid matrix cell")

// Shape is the starting-hand shape of a matrix cell.
type Shape uint8

const (
	Pair Shape = iota
	Suited
	Offsuit
)

func (s Shape) String() string {
	switch s {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	default:
		return "offsuit"
	}
}

// Cell identifies one of the 169 matrix cells. Row and Col index
// poker.RanksDescending: the diagonal holds pocket pairs, the upper triangle
// (Row < Col) suited hands and the lower triangle offsuit hands.
type Cell struct {
	Row int
	Col int
}

// AllCells returns the 169 cells row by row.
func AllCells() []Cell {
	cells := make([]Cell, 0, MatrixSize*MatrixSize)
	for r := 0; r < MatrixSize; r++ {
		for c := 0; c < MatrixSize; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// Valid reports whether both indices are inside the matrix.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < MatrixSize && c.Col >= 0 && c.Col < MatrixSize
}

func (c Cell) Shape() Shape {
	switch {
	case c.Row == c.Col:
		return Pair
	case c.Row < c.Col:
		return Suited
	default:
		return Offsuit
	}
}

// Ranks returns the higher and the lower rank of the cell.
func (c Cell) Ranks() (high, low uint8) {
	a, b := poker.RanksDescending[c.Row], poker.RanksDescending[c.Col]
	if a < b {
		return b, a
	}
	return a, b
}

// Name returns the conventional hand name: "AA", "AKs" or "AKo".
func (c Cell) Name() string {
	high, low := c.Ranks()
	name := poker.RankString(high) + poker.RankString(low)
	switch c.Shape() {
	case Suited:
		name += "s"
	case Offsuit:
		name += "o"
	}
	return name
}

func (c Cell) String() string {
	return c.Name()
}

// ComboCount is the number of theoretical combos of the cell shape.
func (c Cell) ComboCount() int {
	switch c.Shape() {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// Combos yields every theoretical combo of the cell, blocked or not. The
// sequence is finite and can be ranged over any number of times.
func (c Cell) Combos() iter.Seq[Combo] {
	high, low := c.Ranks()
	shape := c.Shape()
	return func(yield func(Combo) bool) {
		for _, s1 := range poker.Suits {
			for _, s2 := range poker.Suits {
				switch shape {
				case Pair:
					if s1 >= s2 {
						continue
					}
				case Suited:
					if s1 != s2 {
						continue
					}
				case Offsuit:
					if s1 == s2 {
						continue
					}
				}
				combo := NewCombo(poker.MustCard(s1, high), poker.MustCard(s2, low))
				if !yield(combo) {
					return
				}
			}
		}
	}
}

// ParseCell parses a hand name such as "AA", "AKs", "KAo" or "T9s".
// Two distinct ranks without a suffix are rejected.
func ParseCell(name string) (Cell, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 3 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, name)
	}
	r1, err := poker.ParseRank(name[0:1])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %w", ErrInvalidCell, name, err)
	}
	r2, err := poker.ParseRank(name[1:2])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %w", ErrInvalidCell, name, err)
	}
	hi, lo := rankIndex(r1), rankIndex(r2)
	if hi > lo {
		hi, lo = lo, hi
	}

	suffix := strings.ToLower(name[2:])
	switch {
	case r1 == r2 && suffix == "":
		return Cell{Row: hi, Col: hi}, nil
	case r1 != r2 && suffix == "s":
		return Cell{Row: hi, Col: lo}, nil
	case r1 != r2 && suffix == "o":
		return Cell{Row: lo, Col: hi}, nil
	}
	return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, name)
}

// rankIndex returns the position of rank in poker.RanksDescending.
func rankIndex(rank uint8) int {
	return int(poker.Ace - rank)
}

// Exclusions is the set of cells the user switched off. It only changes how
// a cell is displayed; counts are never affected.
type Exclusions map[Cell]struct{}

// ParseExclusions builds a set from hand names, e.g. []string{"AKs", "QQ"}.
func ParseExclusions(names ...string) (Exclusions, error) {
	ex := Exclusions{}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		c, err := ParseCell(n)
		if err != nil {
			return nil, err
		}
		ex[c] = struct{}{}
	}
	return ex, nil
}

func (e Exclusions) Contains(c Cell) bool {
	_, ok := e[c]
	return ok
}

// Toggle flips the exclusion of c and reports whether c is now excluded.
func (e Exclusions) Toggle(c Cell) bool {
	if e.Contains(c) {
		delete(e, c)
		return false
	}
	e[c] = struct{}{}
	return true
}

func (e Exclusions) Len() int {
	return len(e)
}

// Clone returns an independent copy.
func (e Exclusions) Clone() Exclusions {
	out := make(Exclusions, len(e))
	for c := range e {
		out[c] = struct{}{}
	}
	return out
}

// Names returns the excluded cell names sorted in matrix order.
func (e Exclusions) Names() []string {
	cells := make([]Cell, 0, len(e))
	for c := range e {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.Name()
	}
	return names
}
