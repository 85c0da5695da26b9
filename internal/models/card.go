// internal/models/card.go
package models

import (
	"fmt"
)

// Suit is one of the four French suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists all four suits in a fixed iteration order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

// Char returns the canonical one-character suit code.
func (s Suit) Char() byte {
	switch s {
	case Spades:
		return 'S'
	case Hearts:
		return 'H'
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	}
	panic(fmt.Sprintf("models: invalid suit %d", int(s)))
}

// SameColor reports whether two suits share a color. The same-color partner
// of a trump suit contributes its jack (the jick) to the trump suit.
func SameColor(a, b Suit) bool {
	switch a {
	case Spades, Clubs:
		return b == Spades || b == Clubs
	default:
		return b == Hearts || b == Diamonds
	}
}

// Partner returns the same-color partner of a suit (clubs<->spades,
// hearts<->diamonds).
func (s Suit) Partner() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	default:
		return Hearts
	}
}

// Value is a card rank, 2 through ace.
type Value int

const (
	Two   Value = 2
	Three Value = 3
	Four  Value = 4
	Five  Value = 5
	Six   Value = 6
	Seven Value = 7
	Eight Value = 8
	Nine  Value = 9
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
	Ace   Value = 14
)

// Values lists the thirteen ranks low to high.
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (v Value) String() string {
	switch v {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return fmt.Sprintf("%d", int(v))
	}
}

// Char returns the canonical one-character rank code. Ten is '0'.
func (v Value) Char() byte {
	switch v {
	case Ten:
		return '0'
	case Jack:
		return 'J'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	case Ace:
		return 'A'
	default:
		if v >= Two && v <= Nine {
			return byte('0' + int(v))
		}
	}
	panic(fmt.Sprintf("models: invalid value %d", int(v)))
}

// GamePoints returns the game-point value a card carries for the "game"
// honor: 10=10, J=1, Q=2, K=3, A=4, everything else 0. The full deck carries
// exactly 80 game points.
func (v Value) GamePoints() int {
	switch v {
	case Ten:
		return 10
	case Jack:
		return 1
	case Queen:
		return 2
	case King:
		return 3
	case Ace:
		return 4
	}
	return 0
}

// Card is an immutable value object; equality is by (value, suit).
type Card struct {
	Value Value `json:"value"`
	Suit  Suit  `json:"suit"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}

// Code returns the canonical two-character wire/storage representation,
// rank char followed by suit char (e.g. "0H" for the ten of hearts).
func (c Card) Code() string {
	return string([]byte{c.Value.Char(), c.Suit.Char()})
}

// ErrInvalidCardCode is returned when a two-character card code cannot be
// parsed.
var ErrInvalidCardCode = fmt.Errorf("invalid card code")

// ParseCard parses the canonical two-character card code.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}
	var v Value
	switch ch := code[0]; {
	case ch == '0':
		v = Ten
	case ch == 'J':
		v = Jack
	case ch == 'Q':
		v = Queen
	case ch == 'K':
		v = King
	case ch == 'A':
		v = Ace
	case ch >= '2' && ch <= '9':
		v = Value(ch - '0')
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}
	var s Suit
	switch code[1] {
	case 'S':
		s = Spades
	case 'H':
		s = Hearts
	case 'C':
		s = Clubs
	case 'D':
		s = Diamonds
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}
	return Card{Value: v, Suit: s}, nil
}

// Rank returns the plain 13-level rank (2 lowest, ace highest), used for
// non-trump comparisons and off-suit heuristics.
func (c Card) Rank() int {
	return int(c.Value)
}

// IsTrump reports whether a card belongs to the trump suit for the hand:
// every card of the trump suit, plus the jack of the same-color partner
// suit (the jick).
func (c Card) IsTrump(trump Suit) bool {
	if c.Suit == trump {
		return true
	}
	return c.Value == Jack && SameColor(c.Suit, trump)
}

// TrumpRank ranks a trump card within the 14-card trump suit:
// 2..10 -> 1..9, jick -> 10, jack -> 11, Q/K/A -> 12/13/14.
// Calling it on a non-trump card is a programming error.
func (c Card) TrumpRank(trump Suit) int {
	if !c.IsTrump(trump) {
		panic(fmt.Sprintf("models: TrumpRank on non-trump %s (trump %s)", c, trump))
	}
	switch {
	case c.Value >= Two && c.Value <= Ten:
		return int(c.Value) - 1
	case c.Value == Jack && c.Suit == trump:
		return 11
	case c.Value == Jack:
		return 10
	default:
		// queen 12, king 13, ace 14
		return int(c.Value)
	}
}

// EffectiveSuit returns the suit a card counts as for following and
// counting purposes: the jick belongs to the trump suit, not its printed
// suit.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsTrump(trump) {
		return trump
	}
	return c.Suit
}

// LessThan reports whether b beats a in trick resolution, with a the
// incumbent (played earlier):
//  1. trump beats non-trump outright;
//  2. two trump cards compare by TrumpRank (the jack outranks the jick);
//  3. two non-trump cards of different suits: the later card never wins;
//  4. two non-trump cards of the same suit compare by Rank.
func LessThan(a, b Card, trump Suit) bool {
	at, bt := a.IsTrump(trump), b.IsTrump(trump)
	switch {
	case bt && !at:
		return true
	case at && !bt:
		return false
	case at && bt:
		return a.TrumpRank(trump) < b.TrumpRank(trump)
	case a.Suit != b.Suit:
		return false
	default:
		return a.Rank() < b.Rank()
	}
}
