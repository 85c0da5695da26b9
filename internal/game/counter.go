// internal/game/counter.go
package game

import (
	"github.com/google/uuid"

	"github.com/smeargame/smear/internal/models"
)

// CardCounter derives, from the sequence of plays in a hand, which players
// are provably out of which suits, and answers safety queries for the
// computer player. One counter lives per hand, created once trump is known.
//
// The out-of-suit sets are monotonic: entries are only ever added.
type CardCounter struct {
	trump   models.Suit
	players []*models.Player // seat order

	outOfSuit map[models.Suit]map[uuid.UUID]bool
	played    map[models.Card]bool
}

// NewCardCounter builds a counter for one hand.
func NewCardCounter(trump models.Suit, players []*models.Player) *CardCounter {
	out := make(map[models.Suit]map[uuid.UUID]bool, len(models.Suits))
	for _, s := range models.Suits {
		out[s] = make(map[uuid.UUID]bool)
	}
	return &CardCounter{
		trump:     trump,
		players:   players,
		outOfSuit: out,
		played:    make(map[models.Card]bool, 52),
	}
}

// suitSize returns how many of the 52 cards logically belong to a suit once
// trump is fixed: the trump suit gains the jick (14), its same-color partner
// loses its jack (12), plain suits keep 13.
func (cc *CardCounter) suitSize(s models.Suit) int {
	switch {
	case s == cc.trump:
		return 14
	case s == cc.trump.Partner():
		return 12
	default:
		return 13
	}
}

// MarkOut records that a player holds no card of the given effective suit.
func (cc *CardCounter) MarkOut(s models.Suit, playerID uuid.UUID) {
	cc.outOfSuit[s][playerID] = true
}

// IsOut reports whether a player is known to hold none of the suit.
func (cc *CardCounter) IsOut(s models.Suit, playerID uuid.UUID) bool {
	return cc.outOfSuit[s][playerID]
}

// Observe updates the counter after a play. lead is the card that led the
// trick, or nil when this play is itself the lead.
//
// Two inference rules apply: a player who does not follow a non-trump lead
// and does not trump is out of the lead suit (out of trump when trump was
// led and not followed), and once every card of a suit has hit the table
// everyone is out of it.
func (cc *CardCounter) Observe(play Play, lead *models.Card) {
	cc.played[play.Card] = true

	if lead != nil {
		leadSuit := lead.EffectiveSuit(cc.trump)
		played := play.Card.EffectiveSuit(cc.trump)
		if leadSuit == cc.trump {
			if played != cc.trump {
				cc.MarkOut(cc.trump, play.Player.ID)
			}
		} else if played != leadSuit && played != cc.trump {
			cc.MarkOut(leadSuit, play.Player.ID)
		}
	}

	for _, s := range models.Suits {
		if cc.playedCount(s) == cc.suitSize(s) {
			for _, p := range cc.players {
				cc.MarkOut(s, p.ID)
			}
		}
	}
}

func (cc *CardCounter) playedCount(s models.Suit) int {
	n := 0
	for c := range cc.played {
		if c.EffectiveSuit(cc.trump) == s {
			n++
		}
	}
	return n
}

// Played reports whether the card has been observed on the table this hand.
func (cc *CardCounter) Played(c models.Card) bool {
	return cc.played[c]
}

// HighestCardStillOut returns the highest card of the given effective suit
// not yet observed as played, or nil when the suit is exhausted. ignore,
// when non-nil, excludes one card presumed already committed (typically the
// candidate the caller is about to play).
func (cc *CardCounter) HighestCardStillOut(s models.Suit, ignore *models.Card) *models.Card {
	var best *models.Card
	for _, suit := range models.Suits {
		for _, v := range models.Values {
			c := models.Card{Value: v, Suit: suit}
			if c.EffectiveSuit(cc.trump) != s {
				continue
			}
			if cc.played[c] {
				continue
			}
			if ignore != nil && c == *ignore {
				continue
			}
			if best == nil || models.LessThan(*best, c, cc.trump) {
				b := c
				best = &b
			}
		}
	}
	return best
}

// CouldBeDefeated reports whether any player acting after p in the trick
// could legally still hold a card that beats the candidate. alreadyPlayed
// marks the candidate as committed to the table (so it is not excluded from
// the still-out pool a second time).
//
// The walk visits each remaining seat once: a candidate that is trump and
// the highest card left of its suit is safe outright; a teammate is never a
// threat; any other seat threatens unless the counter proves it out of the
// relevant suits (trump alone when the candidate is trump or the highest
// left of its suit, both the candidate's suit and trump otherwise).
func (cc *CardCounter) CouldBeDefeated(t *Trick, p *models.Player, card models.Card, playsSoFar int, alreadyPlayed bool) bool {
	effSuit := card.EffectiveSuit(cc.trump)
	var ignore *models.Card
	if !alreadyPlayed {
		c := card
		ignore = &c
	}
	highest := cc.HighestCardStillOut(effSuit, ignore)
	isHighest := highest == nil || !models.LessThan(card, *highest, cc.trump)
	isTrump := card.IsTrump(cc.trump)

	if isTrump && isHighest {
		return false
	}

	remaining := len(cc.players) - playsSoFar - 1
	cur := cc.nextPlayer(p)
	for i := 0; i < remaining; i++ {
		if models.SameSide(p, cur) {
			cur = cc.nextPlayer(cur)
			continue
		}
		if isTrump || isHighest {
			if !cc.IsOut(cc.trump, cur.ID) {
				return true
			}
		} else if !cc.IsOut(effSuit, cur.ID) || !cc.IsOut(cc.trump, cur.ID) {
			return true
		}
		cur = cc.nextPlayer(cur)
	}
	return false
}

// SafeToPlay reports whether the candidate cannot be defeated by anyone
// still to act and either already beats the current winning play or a
// teammate holds it. A lead with no winning play yet only needs the
// defeat check.
func (cc *CardCounter) SafeToPlay(t *Trick, p *models.Player, card models.Card) bool {
	if cc.CouldBeDefeated(t, p, card, len(t.Plays), false) {
		return false
	}
	w := t.WinningPlay(cc.trump)
	if w == nil {
		return true
	}
	if models.SameSide(p, w.Player) {
		return true
	}
	return models.LessThan(w.Card, card, cc.trump)
}

// IsTeammateTakingTrick reports whether, in team play, the current winning
// play belongs to a teammate whose card would still win against everyone
// left to act.
func (cc *CardCounter) IsTeammateTakingTrick(t *Trick, p *models.Player) bool {
	if p.Team == nil {
		return false
	}
	w := t.WinningPlay(cc.trump)
	if w == nil || w.Player == p || !models.SameSide(p, w.Player) {
		return false
	}
	return !cc.CouldBeDefeated(t, p, w.Card, len(t.Plays), true)
}

func (cc *CardCounter) nextPlayer(p *models.Player) *models.Player {
	return cc.players[(p.Seat+1)%len(cc.players)]
}
