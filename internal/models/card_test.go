// internal/models/card_test.go
package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCards() []Card {
	out := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, v := range Values {
			out = append(out, Card{Value: v, Suit: s})
		}
	}
	return out
}

func TestCardCodeRoundTrip(t *testing.T) {
	for _, c := range allCards() {
		code := c.Code()
		require.Len(t, code, 2)
		parsed, err := ParseCard(code)
		require.NoError(t, err, "code %s", code)
		assert.Equal(t, c, parsed)
	}
	// ten uses '0', not 'T'
	assert.Equal(t, "0H", Card{Value: Ten, Suit: Hearts}.Code())
}

func TestParseCardRejectsMalformed(t *testing.T) {
	for _, code := range []string{"", "A", "AHH", "1S", "TS", "AX", "xH", "a h"} {
		_, err := ParseCard(code)
		assert.ErrorIs(t, err, ErrInvalidCardCode, "code %q", code)
	}
}

func TestTrumpRankMapping(t *testing.T) {
	trump := Hearts

	assert.Equal(t, 1, Card{Value: Two, Suit: Hearts}.TrumpRank(trump))
	assert.Equal(t, 9, Card{Value: Ten, Suit: Hearts}.TrumpRank(trump))
	assert.Equal(t, 10, Card{Value: Jack, Suit: Diamonds}.TrumpRank(trump)) // jick
	assert.Equal(t, 11, Card{Value: Jack, Suit: Hearts}.TrumpRank(trump))  // jack
	assert.Equal(t, 12, Card{Value: Queen, Suit: Hearts}.TrumpRank(trump))
	assert.Equal(t, 13, Card{Value: King, Suit: Hearts}.TrumpRank(trump))
	assert.Equal(t, 14, Card{Value: Ace, Suit: Hearts}.TrumpRank(trump))

	// the jack of the off-color suits is not trump at all
	assert.False(t, Card{Value: Jack, Suit: Spades}.IsTrump(trump))
	assert.False(t, Card{Value: Jack, Suit: Clubs}.IsTrump(trump))
	assert.True(t, Card{Value: Jack, Suit: Diamonds}.IsTrump(trump))
}

func TestJackBeatsJick(t *testing.T) {
	for _, trump := range Suits {
		jack := Card{Value: Jack, Suit: trump}
		jick := Card{Value: Jack, Suit: trump.Partner()}
		assert.True(t, LessThan(jick, jack, trump), "trump %s", trump)
		assert.False(t, LessThan(jack, jick, trump), "trump %s", trump)
	}
}

// TestLessThanIsStrict checks antisymmetry and irreflexivity over every
// card pair under every trump.
func TestLessThanIsStrict(t *testing.T) {
	cards := allCards()
	for _, trump := range Suits {
		for _, a := range cards {
			assert.False(t, LessThan(a, a, trump))
			for _, b := range cards {
				if a == b {
					continue
				}
				if LessThan(a, b, trump) {
					assert.False(t, LessThan(b, a, trump), "%s vs %s trump %s", a, b, trump)
				}
			}
		}
	}
}

func TestLessThanRules(t *testing.T) {
	trump := Spades

	// trump beats non-trump outright, regardless of rank
	assert.True(t, LessThan(Card{Ace, Hearts}, Card{Two, Spades}, trump))
	assert.False(t, LessThan(Card{Two, Spades}, Card{Ace, Hearts}, trump))

	// off-suit non-trump never beats the incumbent
	assert.False(t, LessThan(Card{Two, Hearts}, Card{Ace, Diamonds}, trump))

	// same-suit non-trump compares by rank
	assert.True(t, LessThan(Card{Nine, Hearts}, Card{Ten, Hearts}, trump))
	assert.False(t, LessThan(Card{Ten, Hearts}, Card{Nine, Hearts}, trump))

	// among trump: jick beats ten of trump, ace beats jack
	assert.True(t, LessThan(Card{Ten, Spades}, Card{Jack, Clubs}, trump))
	assert.True(t, LessThan(Card{Jack, Spades}, Card{Ace, Spades}, trump))
}

func TestDeckGamePointsTotal(t *testing.T) {
	total := 0
	for _, c := range allCards() {
		total += c.Value.GamePoints()
	}
	assert.Equal(t, 80, total)
}

func TestEffectiveSuit(t *testing.T) {
	trump := Clubs
	assert.Equal(t, Clubs, Card{Jack, Spades}.EffectiveSuit(trump))
	assert.Equal(t, Hearts, Card{Jack, Hearts}.EffectiveSuit(trump))
	assert.Equal(t, Clubs, Card{Two, Clubs}.EffectiveSuit(trump))
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	a := NewDeck(rand.NewSource(7))
	b := NewDeck(rand.NewSource(7))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Deal(52), b.Deal(52))
}
