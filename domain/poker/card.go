package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace.
// Ace is ranked high; it becomes low only inside a wheel straight, which the
// evaluator handles.
const (
	Two   = 2
	Ten   = 10
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A
)

// ErrInvalidCard is wrapped by every card construction and parsing failure.
var ErrInvalidCard = errors.New("invalid card")

// Suits lists the four suits in card order.
var Suits = [4]uint8{Club, Diamond, Heart, Spade}

// RanksDescending is the fixed presentation order of ranks: A,K,Q,J,T,9..2.
// Matrix rows and columns are indices into this array.
var RanksDescending = [13]uint8{Ace, King, Queen, Jack, Ten, 9, 8, 7, 6, 5, 4, 3, Two}

// Card represents a playing card with suit and rank.
// The zero Card is not a valid card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 2-14: two through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// MustCard is NewCard for constant inputs; it panics on invalid values.
func MustCard(suit uint8, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (2-14: two through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// Valid reports whether c was built from a legal suit and rank.
func (c Card) Valid() bool {
	return c.suit <= Spade && c.rank >= Two && c.rank <= Ace
}

// Less orders cards by rank, then suit. Combos are emitted with the greater
// card first so every unordered pair has exactly one representation.
func (c Card) Less(o Card) bool {
	if c.rank != o.rank {
		return c.rank < o.rank
	}
	return c.suit < o.suit
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, K, Q, J, 10 or number).
func (c Card) String() string {
	if !c.Valid() {
		return "?"
	}
	rank := RankString(c.rank)
	if c.rank == Ten {
		rank = "10"
	}
	return rank + suitSymbol(c.suit)
}

// Short returns the two character notation used for input, e.g. "As" or "Td".
func (c Card) Short() string {
	if !c.Valid() {
		return "??"
	}
	return RankString(c.rank) + string("cdhs"[c.suit])
}

// Styled is String with the suit colour used by the terminal front end.
func (c Card) Styled() string {
	switch c.suit {
	case Heart:
		return pterm.LightRed(c.String())
	case Diamond:
		return pterm.LightBlue(c.String())
	case Club:
		return pterm.LightGreen(c.String())
	default:
		return pterm.FgWhite.Sprint(c.String())
	}
}

// RankString returns the single character for a rank (T for ten).
func RankString(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	default:
		if rank >= Two && rank < Ten {
			return string(rune('0' + rank))
		}
		return "?"
	}
}

func suitSymbol(suit uint8) string {
	switch suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// ParseRank converts a rank character (2-9, T, J, Q, K, A) or "10".
func ParseRank(s string) (uint8, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return s[0] - '0', nil
	}
	return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, s)
}

// ParseSuit converts a suit letter (c, d, h, s) or symbol (♣, ♦, ♥, ♠).
func ParseSuit(s string) (uint8, error) {
	switch strings.ToLower(s) {
	case "c", "♣":
		return Club, nil
	case "d", "♦":
		return Diamond, nil
	case "h", "♥":
		return Heart, nil
	case "s", "♠":
		return Spade, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, s)
}

// ParseCard parses a single card such as "As", "Th", "10h" or "A♠".
func ParseCard(s string) (Card, error) {
	r := []rune(strings.TrimSpace(s))
	if len(r) < 2 || len(r) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := ParseRank(string(r[:len(r)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(r[len(r)-1]))
	if err != nil {
		return Card{}, err
	}
	return NewCard(suit, rank)
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("As Kd, 7c") or written as one run ("AsKd7c").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var cards []Card
	for _, f := range fields {
		run, err := splitRun(f)
		if err != nil {
			return nil, err
		}
		for _, token := range run {
			c, err := ParseCard(token)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", s, err)
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// splitRun cuts "AsKd10h" into card tokens: a token ends at each suit character.
func splitRun(run string) ([]string, error) {
	var tokens []string
	start := 0
	r := []rune(run)
	for i, ch := range r {
		if _, err := ParseSuit(string(ch)); err == nil && i > start {
			tokens = append(tokens, string(r[start:i+1]))
			start = i + 1
		}
	}
	if start != len(r) {
		return nil, fmt.Errorf("%w: trailing %q", ErrInvalidCard, string(r[start:]))
	}
	return tokens, nil
}
