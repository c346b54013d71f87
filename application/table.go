package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/range-equity/domain/equity"
	"github.com/luca-patrignani/range-equity/domain/poker"
)

// FriendSeats is the default number of friend seats at the table.
const FriendSeats = 3

var (
	// ErrCardInUse is returned when a card is already held by another slot.
	ErrCardInUse = errors.New("card already in use")
	// ErrInvalidSlot is returned for a slot outside the table layout.
	ErrInvalidSlot = errors.New("invalid slot")
)

// SlotKind tells which hand a slot belongs to.
type SlotKind string

const (
	HeroSlot    SlotKind = "hero"
	BoardSlot   SlotKind = "board"
	VillainSlot SlotKind = "villain"
	FriendSlot  SlotKind = "friend"
)

// Slot addresses one card position at the table. Friend is only used by
// FriendSlot.
type Slot struct {
	Kind   SlotKind
	Friend int
	Index  int
}

func Hero(i int) Slot { return Slot{Kind: HeroSlot, Index: i} }

func Board(i int) Slot { return Slot{Kind: BoardSlot, Index: i} }

func Villain(i int) Slot { return Slot{Kind: VillainSlot, Index: i} }

func Friend(f, i int) Slot { return Slot{Kind: FriendSlot, Friend: f, Index: i} }

func (s Slot) String() string {
	if s.Kind == FriendSlot {
		return fmt.Sprintf("%s %d card %d", s.Kind, s.Friend+1, s.Index+1)
	}
	if s.Kind == BoardSlot {
		return fmt.Sprintf("%s %d (%s)", s.Kind, s.Index+1, poker.BoardLabel(s.Index))
	}
	return fmt.Sprintf("%s card %d", s.Kind, s.Index+1)
}

// Table owns the mutable card selection and the manual exclusions. Every
// change is followed by a fresh Evaluate; the engine never calls back.
type Table struct {
	hero     [2]*poker.Card
	board    [poker.BoardSize]*poker.Card
	villain  [2]*poker.Card
	friends  [][2]*poker.Card
	excluded equity.Exclusions

	engine equity.Engine
	logger *slog.Logger
}

// NewTable returns an empty table with the given number of friend seats.
func NewTable(engine equity.Engine, friendSeats int, logger *slog.Logger) *Table {
	if friendSeats < 0 {
		friendSeats = 0
	}
	return &Table{
		friends:  make([][2]*poker.Card, friendSeats),
		excluded: equity.Exclusions{},
		engine:   engine,
		logger:   logger,
	}
}

func (t *Table) slot(s Slot) (**poker.Card, error) {
	switch s.Kind {
	case HeroSlot:
		if s.Index >= 0 && s.Index < len(t.hero) {
			return &t.hero[s.Index], nil
		}
	case BoardSlot:
		if s.Index >= 0 && s.Index < len(t.board) {
			return &t.board[s.Index], nil
		}
	case VillainSlot:
		if s.Index >= 0 && s.Index < len(t.villain) {
			return &t.villain[s.Index], nil
		}
	case FriendSlot:
		if s.Friend >= 0 && s.Friend < len(t.friends) && s.Index >= 0 && s.Index < 2 {
			return &t.friends[s.Friend][s.Index], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, s)
}

// Card returns the card in slot s, if any.
func (t *Table) Card(s Slot) (poker.Card, bool) {
	p, err := t.slot(s)
	if err != nil || *p == nil {
		return poker.Card{}, false
	}
	return **p, true
}

// Assign puts c into slot s. A card held by any other slot is refused,
// re-assigning the same card to its own slot is a no-op.
func (t *Table) Assign(s Slot, c poker.Card) error {
	p, err := t.slot(s)
	if err != nil {
		return err
	}
	if *p != nil && **p == c {
		return nil
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %s", poker.ErrInvalidCard, c)
	}
	if t.Known().Contains(c) {
		return fmt.Errorf("%w: %s", ErrCardInUse, c)
	}
	*p = &c
	t.logger.Debug("card assigned", "slot", s.String(), "card", c.Short())
	return nil
}

// Clear empties slot s.
func (t *Table) Clear(s Slot) error {
	p, err := t.slot(s)
	if err != nil {
		return err
	}
	*p = nil
	return nil
}

// Reset clears every slot and every exclusion.
func (t *Table) Reset() {
	t.hero = [2]*poker.Card{}
	t.board = [poker.BoardSize]*poker.Card{}
	t.villain = [2]*poker.Card{}
	t.friends = make([][2]*poker.Card, len(t.friends))
	t.excluded = equity.Exclusions{}
}

// ToggleExclusion flips the manual exclusion of cell and reports whether the
// cell is now excluded.
func (t *Table) ToggleExclusion(cell equity.Cell) (bool, error) {
	if !cell.Valid() {
		return false, fmt.Errorf("%w: %+v", equity.ErrInvalidCell, cell)
	}
	return t.excluded.Toggle(cell), nil
}

// Known returns every card currently at the table. It is the membership test
// used to disable cards in a selector.
func (t *Table) Known() poker.KnownCards {
	return t.Snapshot().Known()
}

// Snapshot copies the current selection into an engine input.
func (t *Table) Snapshot() equity.Snapshot {
	s := equity.Snapshot{
		Hero:     collect(t.hero[:]),
		Board:    collect(t.board[:]),
		Villain:  collect(t.villain[:]),
		Excluded: t.excluded.Clone(),
	}
	for _, f := range t.friends {
		if cards := collect(f[:]); len(cards) > 0 {
			s.Friends = append(s.Friends, cards)
		}
	}
	return s
}

// Evaluate runs the engine on the current selection.
func (t *Table) Evaluate() (equity.Result, error) {
	res, err := t.engine.Compute(t.Snapshot())
	if err != nil && !errors.Is(err, equity.ErrInsufficientInformation) {
		t.logger.Error("equity computation failed", "error", err)
	}
	return res, err
}

// collect keeps the filled slots in order.
func collect(slots []*poker.Card) []poker.Card {
	var cards []poker.Card
	for _, c := range slots {
		if c != nil {
			cards = append(cards, *c)
		}
	}
	return cards
}
