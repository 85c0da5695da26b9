// internal/models/deck.go
package models

import (
	"math/rand"
	"time"
)

// Deck is the 52-card pack for one hand. It is the only source of
// randomness in the core; the rand source is injectable so deals can be
// reproduced in tests.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds an unshuffled 52-card deck. A nil source falls back to a
// time-seeded one.
func NewDeck(src rand.Source) *Deck {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rand.New(src),
	}
	for _, s := range Suits {
		for _, v := range Values {
			d.cards = append(d.cards, Card{Value: v, Suit: s})
		}
	}
	return d
}

// Shuffle randomizes the deal order.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the first n cards. Asking for more cards than
// remain is a programming error.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(d.cards) {
		panic("models: deal exceeds remaining deck")
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out
}

// Remaining returns how many cards have not been dealt.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
