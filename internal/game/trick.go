// internal/game/trick.go
package game

import (
	"fmt"

	"github.com/smeargame/smear/internal/models"
)

// Play is one card laid by one player; immutable once recorded.
type Play struct {
	Player *models.Player
	Card   models.Card
}

// Trick collects exactly one play per active player, in ring order from the
// lead seat. It moves LEAD_AWAITED -> IN_PROGRESS -> FINISHED as plays land.
type Trick struct {
	Num   int
	Plays []Play
	Taker *models.Player

	leadSeat   int
	activeSeat int
	finished   bool
}

func newTrick(num, leadSeat int) *Trick {
	return &Trick{
		Num:        num,
		leadSeat:   leadSeat,
		activeSeat: leadSeat,
	}
}

// ActiveSeat returns the seat expected to play next.
func (t *Trick) ActiveSeat() int { return t.activeSeat }

// Finished reports whether every seat has played.
func (t *Trick) Finished() bool { return t.finished }

// LeadCard returns the card that led the trick, or nil before the lead.
func (t *Trick) LeadCard() *models.Card {
	if len(t.Plays) == 0 {
		return nil
	}
	return &t.Plays[0].Card
}

// WinningPlay returns the play currently winning the trick, or nil before
// the lead. Ties are impossible: cards are unique and off-suit non-trump
// plays never win.
func (t *Trick) WinningPlay(trump models.Suit) *Play {
	if len(t.Plays) == 0 {
		return nil
	}
	best := &t.Plays[0]
	for i := 1; i < len(t.Plays); i++ {
		if models.LessThan(best.Card, t.Plays[i].Card, trump) {
			best = &t.Plays[i]
		}
	}
	return best
}

// GamePointsOnTable sums the game points carried by the cards played so far.
func (t *Trick) GamePointsOnTable() int {
	pts := 0
	for _, pl := range t.Plays {
		pts += pl.Card.Value.GamePoints()
	}
	return pts
}

// checkPlayLegal enforces the follow-suit rules of the trick. The hand's
// trump must be set by the time any play is checked.
func (t *Trick) checkPlayLegal(p *models.Player, card models.Card, trump models.Suit) error {
	lead := t.LeadCard()
	if lead == nil {
		return nil // any held card may lead
	}
	leadSuit := lead.EffectiveSuit(trump)
	if leadSuit == trump {
		if !card.IsTrump(trump) && p.HasTrump(trump) {
			return fmt.Errorf("%w: trump was led and %s holds trump", ErrIllegalPlay, p.Name)
		}
		return nil
	}
	if card.EffectiveSuit(trump) != leadSuit && !card.IsTrump(trump) && p.HasSuit(leadSuit, trump) {
		return fmt.Errorf("%w: %s must follow %s or trump", ErrIllegalPlay, p.Name, leadSuit)
	}
	return nil
}

// submitPlay validates and applies one play for the hand's current trick.
// Returns whether the play completed the trick.
func (h *Hand) submitPlay(p *models.Player, card models.Card) (bool, error) {
	if h.Phase != HandPlayingTrick {
		return false, fmt.Errorf("%w: hand %d is in %s, not playing", ErrPhaseViolation, h.Num, h.Phase)
	}
	t := h.currentTrick()
	if t == nil || t.finished {
		panic("game: playing phase with no open trick")
	}
	if p.Seat != t.activeSeat {
		return false, fmt.Errorf("%w: seat %d to play, not %s (seat %d)", ErrOutOfTurn, t.activeSeat, p.Name, p.Seat)
	}
	if !p.HasCard(card) {
		return false, fmt.Errorf("%w: %s does not hold %s", ErrIllegalPlay, p.Name, card)
	}
	if err := t.checkPlayLegal(p, card, h.Trump); err != nil {
		return false, err
	}

	lead := t.LeadCard()
	p.RemoveCard(card)
	play := Play{Player: p, Card: card}
	t.Plays = append(t.Plays, play)
	h.Counter.Observe(play, lead)
	t.activeSeat = h.game.nextSeat(t.activeSeat)

	if len(t.Plays) < len(h.game.Players) {
		return false, nil
	}
	h.resolveTrick(t)
	return true, nil
}

// resolveTrick finds the winner, credits the trick's game points to the
// taker, and records jack/jick captures for the hand's honors.
func (h *Hand) resolveTrick(t *Trick) {
	w := t.WinningPlay(h.Trump)
	t.Taker = w.Player
	t.finished = true
	h.GamePoints[w.Player.ID] += t.GamePointsOnTable()

	jack := models.Card{Value: models.Jack, Suit: h.Trump}
	jick := models.Card{Value: models.Jack, Suit: h.Trump.Partner()}
	for _, pl := range t.Plays {
		switch pl.Card {
		case jack:
			h.JackWinner = t.Taker
		case jick:
			h.JickWinner = t.Taker
		}
	}

	h.game.logger().WithField("hand", h.Num).WithField("trick", t.Num).
		Debugf("trick taken by %s with %s", t.Taker.Name, w.Card)

	if t.Num == TricksPerHand {
		h.finalize()
		return
	}
	h.Tricks = append(h.Tricks, newTrick(t.Num+1, t.Taker.Seat))
}
