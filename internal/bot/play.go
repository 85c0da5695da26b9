// internal/bot/play.go
package bot

import (
	"github.com/smeargame/smear/internal/game"
	"github.com/smeargame/smear/internal/models"
)

// turnContext bundles the read-only state one card decision needs.
type turnContext struct {
	g     *game.Game
	h     *game.Hand
	t     *game.Trick
	p     *models.Player
	trump models.Suit
	legal []models.Card
	cc    *game.CardCounter
}

// heuristic is one named rule in the decision chain: it either selects a
// card or declines, and the first match wins. Keeping the chain as an
// ordered list lets new rules slot in without restructuring control flow.
type heuristic struct {
	name       string
	selectCard func(*turnContext) (models.Card, bool)
}

var leadChain = []heuristic{
	{"lead trump face card", leadTrumpFace},
	{"bidder leads low trump on the first trick", leadBidderLowTrumpFirst},
	{"bidder leads spare trump on the second trick", leadBidderSpareTrumpSecond},
	{"lead off-suit face card", leadOffSuitFace},
	{"lead low off-suit", leadLowOffSuit},
	{"lead low trump", leadLowTrump},
	{"lead anything", leadAnything},
}

var followChain = []heuristic{
	{"give teammate the jack or jick", giveTeammateHonor},
	{"capture an opponent's jack or jick", takeOpponentHonor},
	{"take a tabled honor home while big trump is out", takeHonorHomeSafely},
	{"capture a tabled ten", takeLedTen},
	{"give teammate a ten", giveTeammateTen},
	{"take own ten home safely", takeOwnTenHomeSafely},
	{"take the trick with a safe off-suit card", takeWithSafeOffSuit},
	{"spend low trump on a pointed trick", takeWithLowTrumpForPoints},
	{"throw off", throwOff},
}

// ChooseCard runs the decision chain for the player's turn: the leading
// chain when no card has been played yet, the following chain otherwise.
// The chain is re-evaluated fresh on every turn.
func (b *StandardBot) ChooseCard(g *game.Game, h *game.Hand, t *game.Trick, p *models.Player) models.Card {
	ctx := &turnContext{
		g:     g,
		h:     h,
		t:     t,
		p:     p,
		trump: h.Trump,
		legal: h.LegalPlaysFor(p),
		cc:    h.Counter,
	}
	chain := followChain
	if len(t.Plays) == 0 {
		chain = leadChain
	}
	for _, rule := range chain {
		if c, ok := rule.selectCard(ctx); ok {
			return c
		}
	}
	panic("bot: decision chain selected nothing")
}

// --- leading ---

// leadTrumpFace leads the highest trump ace, king or queen held.
func leadTrumpFace(ctx *turnContext) (models.Card, bool) {
	var best *models.Card
	for _, c := range ctx.p.Hand {
		if !c.IsTrump(ctx.trump) || c.Value < models.Queen {
			continue
		}
		if best == nil || models.LessThan(*best, c, ctx.trump) {
			cc := c
			best = &cc
		}
	}
	if best == nil {
		return models.Card{}, false
	}
	return *best, true
}

// leadBidderLowTrumpFirst: the bidder opens the hand by leading its lowest
// trump, flushing trump while every seat still holds six cards.
func leadBidderLowTrumpFirst(ctx *turnContext) (models.Card, bool) {
	if ctx.p != ctx.h.Bidder || ctx.t.Num != 1 || len(ctx.p.Hand) != game.CardsPerPlayer {
		return models.Card{}, false
	}
	return lowestTrump(ctx.p.Hand, ctx.trump)
}

// leadBidderSpareTrumpSecond: on the second trick the bidder keeps pulling
// trump, but only with a spare, never an honor card.
func leadBidderSpareTrumpSecond(ctx *turnContext) (models.Card, bool) {
	if ctx.p != ctx.h.Bidder || ctx.t.Num != 2 || len(ctx.p.Hand) != game.CardsPerPlayer-1 {
		return models.Card{}, false
	}
	var spares []models.Card
	for _, c := range ctx.p.Hand {
		if c.IsTrump(ctx.trump) && c.Value != models.Jack && c.Value < models.Queen {
			spares = append(spares, c)
		}
	}
	return lowestTrump(spares, ctx.trump)
}

// leadOffSuitFace leads the highest off-suit ace, king, queen or jack.
func leadOffSuitFace(ctx *turnContext) (models.Card, bool) {
	var best *models.Card
	for _, c := range ctx.p.Hand {
		if c.IsTrump(ctx.trump) || c.Value < models.Jack {
			continue
		}
		if best == nil || best.Rank() < c.Rank() {
			cc := c
			best = &cc
		}
	}
	if best == nil {
		return models.Card{}, false
	}
	return *best, true
}

// leadLowOffSuit leads the lowest off-suit card that is not a ten.
func leadLowOffSuit(ctx *turnContext) (models.Card, bool) {
	var low *models.Card
	for _, c := range ctx.p.Hand {
		if c.IsTrump(ctx.trump) || c.Value == models.Ten {
			continue
		}
		if low == nil || c.Rank() < low.Rank() {
			cc := c
			low = &cc
		}
	}
	if low == nil {
		return models.Card{}, false
	}
	return *low, true
}

func leadLowTrump(ctx *turnContext) (models.Card, bool) {
	return lowestTrump(ctx.p.Hand, ctx.trump)
}

func leadAnything(ctx *turnContext) (models.Card, bool) {
	return ctx.p.Hand[0], true
}

// --- following ---

// giveTeammateHonor banks the jack or jick under a teammate who is taking
// the trick; the jick goes first to keep the higher honor home.
func giveTeammateHonor(ctx *turnContext) (models.Card, bool) {
	if !ctx.cc.IsTeammateTakingTrick(ctx.t, ctx.p) {
		return models.Card{}, false
	}
	jick := models.Card{Value: models.Jack, Suit: ctx.trump.Partner()}
	jack := models.Card{Value: models.Jack, Suit: ctx.trump}
	if ctx.p.HasCard(jick) {
		return jick, true
	}
	if ctx.p.HasCard(jack) {
		return jack, true
	}
	return models.Card{}, false
}

// takeOpponentHonor captures a jack or jick an opponent has put on the
// table, with a trump face card when one beats the current winner, or with
// the jack itself when only the jick is exposed and the jack is safe.
func takeOpponentHonor(ctx *turnContext) (models.Card, bool) {
	jackOnTable, jickOnTable := false, false
	for _, pl := range ctx.t.Plays {
		if pl.Card.Value != models.Jack || !pl.Card.IsTrump(ctx.trump) || models.SameSide(ctx.p, pl.Player) {
			continue
		}
		if pl.Card.Suit == ctx.trump {
			jackOnTable = true
		} else {
			jickOnTable = true
		}
	}
	if !jackOnTable && !jickOnTable {
		return models.Card{}, false
	}
	w := ctx.t.WinningPlay(ctx.trump)
	var best *models.Card
	for _, c := range ctx.p.Hand {
		if !c.IsTrump(ctx.trump) || c.Value < models.Queen {
			continue
		}
		if !models.LessThan(w.Card, c, ctx.trump) {
			continue
		}
		if best == nil || models.LessThan(c, *best, ctx.trump) {
			cc := c
			best = &cc
		}
	}
	if best != nil {
		return *best, true
	}
	if jickOnTable && !jackOnTable {
		jack := models.Card{Value: models.Jack, Suit: ctx.trump}
		if ctx.p.HasCard(jack) && ctx.cc.SafeToPlay(ctx.t, ctx.p, jack) {
			return jack, true
		}
	}
	return models.Card{}, false
}

// takeHonorHomeSafely takes a tabled jack or jick when the big trump that
// could punish the capture is still unseen and the capturing card is safe.
func takeHonorHomeSafely(ctx *turnContext) (models.Card, bool) {
	if !honorOnTable(ctx) {
		return models.Card{}, false
	}
	high := ctx.cc.HighestCardStillOut(ctx.trump, nil)
	if high == nil || high.Value < models.Queen || ctx.p.HasCard(*high) {
		return models.Card{}, false
	}
	w := ctx.t.WinningPlay(ctx.trump)
	var best *models.Card
	for _, c := range ctx.legal {
		if !models.LessThan(w.Card, c, ctx.trump) {
			continue
		}
		if !ctx.cc.SafeToPlay(ctx.t, ctx.p, c) {
			continue
		}
		if best == nil || lessForSpend(c, *best, ctx.trump) {
			cc := c
			best = &cc
		}
	}
	if best == nil {
		return models.Card{}, false
	}
	return *best, true
}

// takeLedTen fights for a tabled ten the team is not already winning:
// beat it in suit, then with the trump ten or jack, then with low trump,
// and only spend an A/K/Q of trump once no jack or jick is left out.
func takeLedTen(ctx *turnContext) (models.Card, bool) {
	if !tenOnTable(ctx) || ctx.cc.IsTeammateTakingTrick(ctx.t, ctx.p) {
		return models.Card{}, false
	}
	w := ctx.t.WinningPlay(ctx.trump)
	lead := ctx.t.LeadCard()
	leadSuit := lead.EffectiveSuit(ctx.trump)

	// in-suit beat
	var best *models.Card
	for _, c := range ctx.legal {
		if c.IsTrump(ctx.trump) || c.EffectiveSuit(ctx.trump) != leadSuit {
			continue
		}
		if !models.LessThan(w.Card, c, ctx.trump) {
			continue
		}
		if best == nil || c.Rank() < best.Rank() {
			cc := c
			best = &cc
		}
	}
	if best != nil {
		return *best, true
	}

	// the trump ten and the jack, cheapest first
	for _, cand := range []models.Card{
		{Value: models.Ten, Suit: ctx.trump},
		{Value: models.Jack, Suit: ctx.trump},
	} {
		if ctx.p.HasCard(cand) && models.LessThan(w.Card, cand, ctx.trump) {
			return cand, true
		}
	}

	// low trump
	for _, c := range lowTrumpAscending(ctx.p.Hand, ctx.trump) {
		if models.LessThan(w.Card, c, ctx.trump) {
			return c, true
		}
	}

	// A/K/Q only when no jack or jick can still show up to claim it
	if !trumpHonorsRemainOut(ctx) {
		for _, c := range ctx.p.Hand {
			if c.IsTrump(ctx.trump) && c.Value >= models.Queen && models.LessThan(w.Card, c, ctx.trump) {
				return c, true
			}
		}
	}
	return models.Card{}, false
}

// giveTeammateTen banks a held ten under a teammate who is taking the
// trick.
func giveTeammateTen(ctx *turnContext) (models.Card, bool) {
	if !ctx.cc.IsTeammateTakingTrick(ctx.t, ctx.p) {
		return models.Card{}, false
	}
	for _, c := range ctx.legal {
		if c.Value == models.Ten {
			return c, true
		}
	}
	return models.Card{}, false
}

// takeOwnTenHomeSafely plays a held ten that wins the trick outright when
// nobody left to act can beat it, capturing its ten game points.
func takeOwnTenHomeSafely(ctx *turnContext) (models.Card, bool) {
	w := ctx.t.WinningPlay(ctx.trump)
	for _, c := range ctx.legal {
		if c.Value != models.Ten {
			continue
		}
		if models.LessThan(w.Card, c, ctx.trump) && ctx.cc.SafeToPlay(ctx.t, ctx.p, c) {
			return c, true
		}
	}
	return models.Card{}, false
}

// takeWithSafeOffSuit takes the trick with the cheapest non-trump card
// that wins and cannot be beaten by anyone still to act.
func takeWithSafeOffSuit(ctx *turnContext) (models.Card, bool) {
	w := ctx.t.WinningPlay(ctx.trump)
	var best *models.Card
	for _, c := range ctx.legal {
		if c.IsTrump(ctx.trump) {
			continue
		}
		if !models.LessThan(w.Card, c, ctx.trump) {
			continue
		}
		if !ctx.cc.SafeToPlay(ctx.t, ctx.p, c) {
			continue
		}
		if best == nil || c.Rank() < best.Rank() {
			cc := c
			best = &cc
		}
	}
	if best == nil {
		return models.Card{}, false
	}
	return *best, true
}

// takeWithLowTrumpForPoints spends a low trump on a trick carrying at
// least two game points, but only with two or more spare low trump in
// hand.
func takeWithLowTrumpForPoints(ctx *turnContext) (models.Card, bool) {
	if ctx.t.GamePointsOnTable() < 2 {
		return models.Card{}, false
	}
	low := lowTrumpAscending(ctx.p.Hand, ctx.trump)
	if len(low) < 2 {
		return models.Card{}, false
	}
	w := ctx.t.WinningPlay(ctx.trump)
	for _, c := range low {
		if models.LessThan(w.Card, c, ctx.trump) {
			return c, true
		}
	}
	return models.Card{}, false
}

// throwOff is the terminal rule: the lowest legal card, trump ranked above
// plain suits so honors are not dumped by accident.
func throwOff(ctx *turnContext) (models.Card, bool) {
	best := ctx.legal[0]
	for _, c := range ctx.legal[1:] {
		if lessForSpend(c, best, ctx.trump) {
			best = c
		}
	}
	return best, true
}

// --- shared helpers ---

func lowestTrump(cards []models.Card, trump models.Suit) (models.Card, bool) {
	var low *models.Card
	for _, c := range cards {
		if !c.IsTrump(trump) {
			continue
		}
		if low == nil || models.LessThan(c, *low, trump) {
			cc := c
			low = &cc
		}
	}
	if low == nil {
		return models.Card{}, false
	}
	return *low, true
}

// lowTrumpAscending returns the player's trump below the jick, cheapest
// first.
func lowTrumpAscending(cards []models.Card, trump models.Suit) []models.Card {
	var out []models.Card
	for _, c := range cards {
		if c.IsTrump(trump) && c.TrumpRank(trump) < 10 {
			out = append(out, c)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].TrumpRank(trump) < out[j-1].TrumpRank(trump); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func honorOnTable(ctx *turnContext) bool {
	for _, pl := range ctx.t.Plays {
		if pl.Card.Value == models.Jack && pl.Card.IsTrump(ctx.trump) {
			return true
		}
	}
	return false
}

func tenOnTable(ctx *turnContext) bool {
	for _, pl := range ctx.t.Plays {
		if pl.Card.Value == models.Ten {
			return true
		}
	}
	return false
}

// trumpHonorsRemainOut reports whether the jack or jick could still appear
// from another hand: unseen and not held by this player.
func trumpHonorsRemainOut(ctx *turnContext) bool {
	jack := models.Card{Value: models.Jack, Suit: ctx.trump}
	jick := models.Card{Value: models.Jack, Suit: ctx.trump.Partner()}
	for _, c := range []models.Card{jack, jick} {
		if !ctx.cc.Played(c) && !ctx.p.HasCard(c) {
			return true
		}
	}
	return false
}

// lessForSpend orders cards by how cheap they are to part with: any
// non-trump below any trump, then by rank within the class.
func lessForSpend(a, b models.Card, trump models.Suit) bool {
	at, bt := a.IsTrump(trump), b.IsTrump(trump)
	if at != bt {
		return bt
	}
	if at {
		return a.TrumpRank(trump) < b.TrumpRank(trump)
	}
	return a.Rank() < b.Rank()
}
