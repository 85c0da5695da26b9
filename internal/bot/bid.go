// internal/bot/bid.go
package bot

import (
	"math"

	"github.com/smeargame/smear/internal/game"
	"github.com/smeargame/smear/internal/models"
)

// CalculateBid scores every suit as a candidate trump and converts the best
// expected value into a legal bid. The estimate sums four independent
// terms: the chance of holding the eventual highest trump, the chance of
// holding the eventual lowest, the game points carried, and jack/jick
// possession. The total is rounded with the aggression bias, clamped into
// {0,2..5}, and turned into a pass if it would not beat the current high
// bid.
func (b *StandardBot) CalculateBid(g *game.Game, h *game.Hand, p *models.Player) (int, models.Suit) {
	bestSuit := models.Spades
	bestTotal := math.Inf(-1)
	for _, s := range models.Suits {
		total := b.estimateSuit(g, p, s)
		if total > bestTotal {
			bestSuit, bestTotal = s, total
		}
	}

	bid := int(math.Round(bestTotal + b.Aggression))
	if bid > game.MaxBid {
		bid = game.MaxBid
	}
	if bid < game.MinBid {
		// Anti-sandbagging: a dealer who calculated exactly 1 with no bid
		// on the board would otherwise pass and eat the forced-minimum
		// penalty, so take the 2 instead.
		if bid == 1 && p == h.Dealer && h.HighBid == nil {
			bid = game.MinBid
		} else {
			bid = 0
		}
	}
	if bid != 0 && h.HighBid != nil && bid <= h.HighBid.Value {
		bid = 0
	}
	return bid, bestSuit
}

// estimateSuit sums the four expected-value terms for one candidate trump.
func (b *StandardBot) estimateSuit(g *game.Game, p *models.Player, trump models.Suit) float64 {
	var trumps []models.Card
	for _, c := range p.Hand {
		if c.IsTrump(trump) {
			trumps = append(trumps, c)
		}
	}
	if len(trumps) == 0 {
		return 0
	}

	unseen := 52 - len(p.Hand)
	oppCards := (len(g.Players) - 1) * game.CardsPerPlayer

	best, worst := trumps[0], trumps[0]
	for _, c := range trumps[1:] {
		if models.LessThan(best, c, trump) {
			best = c
		}
		if models.LessThan(c, worst, trump) {
			worst = c
		}
	}
	higher := countTrumpOutside(p, trump, func(r int) bool { return r > best.TrumpRank(trump) })
	lower := countTrumpOutside(p, trump, func(r int) bool { return r < worst.TrumpRank(trump) })

	// An unseen higher trump only matters if an opponent was actually
	// dealt it; cards left in the deck win nothing.
	evHigh := probNoneDealt(unseen, higher, oppCards)
	evLow := probNoneDealt(unseen, lower, oppCards)

	evGame := 0.0
	for _, c := range p.Hand {
		switch {
		case c.IsTrump(trump) && c.Value == models.Ten:
			evGame += 0.3
		case c.IsTrump(trump):
			// trump honors are valued by the high/jack terms
		case c.Value == models.Ace:
			evGame += 0.25
		case c.Value == models.King:
			evGame += 0.15
		case c.Value == models.Queen:
			evGame += 0.05
		}
	}
	if evGame > 1 {
		evGame = 1
	}

	jack := models.Card{Value: models.Jack, Suit: trump}
	jick := models.Card{Value: models.Jack, Suit: trump.Partner()}
	evJacks := 0.0
	if p.HasCard(jack) {
		evJacks += 0.8 + 0.05*float64(min(len(trumps)-1, 4))
	}
	if p.HasCard(jick) {
		evJacks += 0.5 + 0.05*float64(min(len(trumps)-1, 4))
	}
	if p.HasCard(jack) && p.HasCard(jick) {
		// holding both locks the partner honor in as well
		evJacks += 0.4
	}

	return evHigh + evLow + evGame + evJacks
}

// countTrumpOutside counts trump cards of the candidate suit, not in the
// player's own hand, whose trump rank satisfies the predicate.
func countTrumpOutside(p *models.Player, trump models.Suit, pred func(rank int) bool) int {
	n := 0
	for _, s := range models.Suits {
		for _, v := range models.Values {
			c := models.Card{Value: v, Suit: s}
			if !c.IsTrump(trump) || p.HasCard(c) {
				continue
			}
			if pred(c.TrumpRank(trump)) {
				n++
			}
		}
	}
	return n
}

// probNoneDealt is the hypergeometric probability that none of k marked
// cards appear among r cards drawn from an unseen pool of n, computed as
// the binomial-coefficient ratio C(n-k,r)/C(n,r) without materializing the
// coefficients.
func probNoneDealt(n, k, r int) float64 {
	if k <= 0 {
		return 1
	}
	if n-k < r {
		return 0
	}
	p := 1.0
	for i := 0; i < r; i++ {
		p *= float64(n-k-i) / float64(n-i)
	}
	return p
}

