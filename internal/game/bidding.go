// internal/game/bidding.go
package game

import (
	"fmt"

	"github.com/smeargame/smear/internal/models"
)

// Bid values: 0 passes, 2 through 5 bid that many honor points. 1 is never
// a legal bid.
const (
	MinBid = 2
	MaxBid = 5
)

// NoBidPenalty is subtracted from the dealer's contestant when every seat
// passes: the dealer eats the forced minimum bid.
const NoBidPenalty = MinBid

// Bid records one bidding action. Trump is set only when the bidder chose
// to attach it, which short-circuits the declaration phase if the bid wins.
type Bid struct {
	Player *models.Player
	Value  int
	Trump  *models.Suit
}

// submitBid validates and applies one bid. Bidding starts left of the
// dealer and finishes once the dealer has acted; every seat bids exactly
// once. Returns whether this bid finalized the auction.
func (h *Hand) submitBid(p *models.Player, value int, trump *models.Suit) (bool, error) {
	if h.Phase != HandBidding {
		return false, fmt.Errorf("%w: hand %d is in %s, not bidding", ErrPhaseViolation, h.Num, h.Phase)
	}
	if p.Seat != h.bidTurn {
		return false, fmt.Errorf("%w: seat %d to bid, not %s (seat %d)", ErrOutOfTurn, h.bidTurn, p.Name, p.Seat)
	}
	if value != 0 {
		if value < MinBid || value > MaxBid {
			return false, fmt.Errorf("%w: %d is not a bid value", ErrIllegalBid, value)
		}
		if h.HighBid != nil && value <= h.HighBid.Value {
			return false, fmt.Errorf("%w: %d does not exceed the high bid of %d", ErrIllegalBid, value, h.HighBid.Value)
		}
	}

	bid := Bid{Player: p, Value: value, Trump: trump}
	h.Bids = append(h.Bids, bid)
	if value > 0 {
		h.HighBid = &h.Bids[len(h.Bids)-1]
	}

	finished := p.Seat == h.Dealer.Seat
	h.bidTurn = h.game.nextSeat(h.bidTurn)
	if finished {
		h.finalizeBidding()
	}
	return finished, nil
}

// finalizeBidding ends the auction: either nobody bid and the hand ends
// immediately with the dealer's side penalized, or the high bidder takes
// the hand into trump declaration (skipped when trump rode in on the bid).
func (h *Hand) finalizeBidding() {
	if h.HighBid == nil {
		h.NoBid = true
		h.game.logger().WithField("hand", h.Num).
			Infof("no bids; %s forfeits %d", h.Dealer.Contestant().DisplayName(), NoBidPenalty)
		h.Dealer.Contestant().AddScore(-NoBidPenalty)
		h.Phase = HandFinished
		h.game.completeHand(h)
		return
	}

	h.Bidder = h.HighBid.Player
	h.game.logger().WithField("hand", h.Num).
		Infof("%s won the bid at %d", h.Bidder.Name, h.HighBid.Value)
	if h.HighBid.Trump != nil {
		h.setTrump(*h.HighBid.Trump)
		return
	}
	h.Phase = HandDeclaringTrump
}

// declareTrump is the separate trump declaration path, valid exactly once,
// only from the high bidder, before any play is recorded.
func (h *Hand) declareTrump(p *models.Player, trump models.Suit) error {
	if h.Phase != HandDeclaringTrump {
		return fmt.Errorf("%w: hand %d is in %s, not declaring trump", ErrPhaseViolation, h.Num, h.Phase)
	}
	if p != h.Bidder {
		return fmt.Errorf("%w: only the bidder %s declares trump", ErrOutOfTurn, h.Bidder.Name)
	}
	h.setTrump(trump)
	return nil
}
