// internal/game/hand.go
package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smeargame/smear/internal/models"
)

// TricksPerHand is fixed: six cards are dealt, six tricks are played,
// unless bidding produces no bid at all.
const TricksPerHand = 6

// CardsPerPlayer dealt at the start of every hand.
const CardsPerPlayer = 6

// HandPhase tracks one hand's progression.
type HandPhase int

const (
	HandNew HandPhase = iota
	HandBidding
	HandDeclaringTrump
	HandPlayingTrick
	HandFinished
)

func (ph HandPhase) String() string {
	switch ph {
	case HandNew:
		return "new"
	case HandBidding:
		return "bidding"
	case HandDeclaringTrump:
		return "declaring trump"
	case HandPlayingTrick:
		return "playing trick"
	case HandFinished:
		return "finished"
	}
	return "unknown"
}

// Hand is one deal: bidding, trump declaration, six tricks, scoring.
type Hand struct {
	Num    int
	Dealer *models.Player
	Bidder *models.Player

	Trump    models.Suit
	TrumpSet bool

	Bids    []Bid
	HighBid *Bid
	NoBid   bool

	Phase  HandPhase
	Tricks []*Trick

	Counter *CardCounter

	// GamePoints accumulates, per player, the game points of the tricks
	// that player has taken. Summed over a completed hand it equals the
	// game points among the dealt cards.
	GamePoints map[uuid.UUID]int

	// The five honors. High and low are fixed at trump declaration from
	// the dealt holdings; jack and jick are set as those cards are
	// captured; the game honor is settled at finalization (nil on a tie).
	HighWinner *models.Player
	LowWinner  *models.Player
	JackWinner *models.Player
	JickWinner *models.Player
	GameWinner models.Contestant

	BidWon bool

	bidTurn int
	game    *Game
}

func newHand(g *Game, num int, dealer *models.Player) *Hand {
	return &Hand{
		Num:        num,
		Dealer:     dealer,
		Phase:      HandNew,
		GamePoints: make(map[uuid.UUID]int, len(g.Players)),
		bidTurn:    g.nextSeat(dealer.Seat),
		game:       g,
	}
}

// start shuffles a fresh deck and deals six cards to every seat, beginning
// left of the dealer, then opens bidding.
func (h *Hand) start() {
	deck := models.NewDeck(h.game.Rand)
	deck.Shuffle()
	seat := h.game.nextSeat(h.Dealer.Seat)
	for range h.game.Players {
		p := h.game.playerAt(seat)
		p.Hand = deck.Deal(CardsPerPlayer)
		seat = h.game.nextSeat(seat)
	}
	h.Phase = HandBidding
	h.game.logger().WithFields(logrus.Fields{
		"hand":   h.Num,
		"dealer": h.Dealer.Name,
	}).Info("hand dealt")
}

// setTrump fixes trump for the hand, precomputes the high and low honor
// holders from the dealt hands, and opens the first trick with the bidder
// on the lead. High/low reflect holdings at deal time and are never
// recomputed as trump is played.
func (h *Hand) setTrump(trump models.Suit) {
	if h.TrumpSet {
		panic("game: trump set twice")
	}
	h.Trump = trump
	h.TrumpSet = true
	h.Counter = NewCardCounter(trump, h.game.Players)

	var high, low *models.Player
	var highCard, lowCard models.Card
	for _, p := range h.game.Players {
		for _, c := range p.Hand {
			if !c.IsTrump(trump) {
				continue
			}
			if high == nil || models.LessThan(highCard, c, trump) {
				high, highCard = p, c
			}
			if low == nil || models.LessThan(c, lowCard, trump) {
				low, lowCard = p, c
			}
		}
	}
	h.HighWinner = high
	h.LowWinner = low

	h.Phase = HandPlayingTrick
	h.Tricks = append(h.Tricks, newTrick(1, h.Bidder.Seat))
	h.game.logger().WithFields(logrus.Fields{
		"hand":  h.Num,
		"trump": trump.String(),
	}).Infof("%s declared trump", h.Bidder.Name)
}

func (h *Hand) currentTrick() *Trick {
	if len(h.Tricks) == 0 {
		return nil
	}
	return h.Tricks[len(h.Tricks)-1]
}

// LegalPlaysFor returns the cards the player could legally play on the
// current trick. It does not take the game lock: it exists for Decider
// implementations, which already run under it. Nil outside the playing
// phase.
func (h *Hand) LegalPlaysFor(p *models.Player) []models.Card {
	if h.Phase != HandPlayingTrick {
		return nil
	}
	t := h.currentTrick()
	var out []models.Card
	for _, c := range p.Hand {
		if t.checkPlayLegal(p, c, h.Trump) == nil {
			out = append(out, c)
		}
	}
	return out
}

// gameHonorWinner aggregates game points per contestant and returns the
// highest accumulator, or nil when two or more contestants tie for it.
func (h *Hand) gameHonorWinner() models.Contestant {
	totals := make(map[models.Contestant]int)
	for _, p := range h.game.Players {
		totals[p.Contestant()] += h.GamePoints[p.ID]
	}
	var best models.Contestant
	bestPts, tied := -1, false
	for c, pts := range totals {
		switch {
		case pts > bestPts:
			best, bestPts, tied = c, pts, false
		case pts == bestPts:
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}

// finalize scores a hand after its sixth trick: determine bid success,
// apply the set penalty if the bidder fell short, and award each honor to
// its winner's contestant. A set bidder collects nothing that hand beyond
// the deduction.
func (h *Hand) finalize() {
	if h.Dealer == nil || h.Bidder == nil || h.HighBid == nil {
		panic("game: finalizing a hand with no bid on record")
	}
	h.GameWinner = h.gameHonorWinner()
	bidderSide := h.Bidder.Contestant()

	honors := make([]models.Contestant, 0, 5)
	for _, w := range []*models.Player{h.HighWinner, h.LowWinner, h.JackWinner, h.JickWinner} {
		if w != nil {
			honors = append(honors, w.Contestant())
		}
	}
	if h.GameWinner != nil {
		honors = append(honors, h.GameWinner)
	}

	bidderPoints := 0
	for _, side := range honors {
		if side == bidderSide {
			bidderPoints++
		}
	}
	h.BidWon = bidderPoints >= h.HighBid.Value

	if !h.BidWon {
		bidderSide.AddScore(-h.HighBid.Value)
	}
	for _, side := range honors {
		if side == bidderSide && !h.BidWon {
			continue
		}
		side.AddScore(1)
	}

	h.Phase = HandFinished
	h.game.logger().WithFields(logrus.Fields{
		"hand":    h.Num,
		"bidder":  h.Bidder.Name,
		"bid":     h.HighBid.Value,
		"honors":  bidderPoints,
		"bid_won": h.BidWon,
	}).Info("hand scored")
	h.game.completeHand(h)
}
