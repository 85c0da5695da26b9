// internal/game/game.go
package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smeargame/smear/internal/models"
)

// Config carries the per-game rule settings.
type Config struct {
	NumPlayers    int
	NumTeams      int // 0 plays every player for themselves
	ScoreToPlayTo int
	MustBidToWin  bool
}

// State is the game-level phase, driven by the current hand.
type State int

const (
	StateNewHand State = iota
	StateBidding
	StateDeclaringTrump
	StatePlayingTrick
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNewHand:
		return "new hand"
	case StateBidding:
		return "bidding"
	case StateDeclaringTrump:
		return "declaring trump"
	case StatePlayingTrick:
		return "playing trick"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Decider supplies decisions for computer seats. Implementations must be
// pure reads of the game state: they are invoked under the game lock and
// return a choice that is then applied through the normal validated path.
type Decider interface {
	// CalculateBid returns the bid value (0 to pass) and the trump suit
	// the player would declare if the bid wins.
	CalculateBid(g *Game, h *Hand, p *models.Player) (int, models.Suit)

	// ChooseCard returns the card to play on the player's turn.
	ChooseCard(g *Game, h *Hand, t *Trick, p *models.Player) models.Card
}

// Game is one independent, single-threaded Smear state machine. All
// mutations for one game are serialized under its mutex; distinct games
// share no mutable state.
type Game struct {
	ID     uuid.UUID
	Config Config

	// Players is the seating ring in seat order; each player's next seat
	// is (seat+1) mod NumPlayers.
	Players []*models.Player
	Teams   []*models.Team

	// Spectators holds non-participating viewers; it never scores.
	Spectators *models.Team

	Hands []*Hand

	// Decider drives computer seats. Required when any seated player is
	// a computer; inject before StartGame.
	Decider Decider

	// Logger is optional; nil logs are discarded.
	Logger *logrus.Logger

	// Rand seeds each hand's deck; nil uses a time-seeded source.
	Rand rand.Source

	dealerSeat   int
	state        State
	winners      []models.Contestant
	scoreHistory map[string][]int
	started      bool
	lastActivity time.Time

	mu sync.Mutex
}

// NewGame builds an unstarted game with defaulted settings.
func NewGame(cfg Config) *Game {
	if cfg.ScoreToPlayTo == 0 {
		cfg.ScoreToPlayTo = 11
	}
	return &Game{
		ID:           uuid.New(),
		Config:       cfg,
		Spectators:   models.NewTeam("Spectators"),
		scoreHistory: make(map[string][]int),
		lastActivity: time.Now(),
	}
}

// StartGame seats the given players, builds teams when configured, and
// deals the first hand. The active player count must match the
// configuration exactly.
func (g *Game) StartGame(players []*models.Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	if g.started {
		return fmt.Errorf("%w: game already started", ErrPhaseViolation)
	}
	cfg := g.Config
	if cfg.NumPlayers < 2 || cfg.NumPlayers > 8 {
		return fmt.Errorf("%w: num_players must be 2..8, got %d", ErrConfiguration, cfg.NumPlayers)
	}
	if len(players) != cfg.NumPlayers {
		return fmt.Errorf("%w: expected %d active players, got %d", ErrConfiguration, cfg.NumPlayers, len(players))
	}
	if cfg.NumTeams > 0 && cfg.NumPlayers%cfg.NumTeams != 0 {
		return fmt.Errorf("%w: %d players do not split evenly into %d teams", ErrConfiguration, cfg.NumPlayers, cfg.NumTeams)
	}
	for _, p := range players {
		if p.IsComputer && g.Decider == nil {
			return fmt.Errorf("%w: computer player %s seated with no decider", ErrConfiguration, p.Name)
		}
	}

	g.Players = make([]*models.Player, len(players))
	copy(g.Players, players)
	if cfg.NumTeams > 0 {
		g.Teams = make([]*models.Team, cfg.NumTeams)
		for i := range g.Teams {
			g.Teams[i] = models.NewTeam(fmt.Sprintf("Team %d", i+1))
		}
	}
	for i, p := range g.Players {
		p.Seat = i
		if cfg.NumTeams > 0 {
			g.Teams[i%cfg.NumTeams].AddPlayer(p)
		}
	}
	for _, c := range g.Contestants() {
		g.scoreHistory[c.ContestantID()] = []int{}
	}

	g.started = true
	g.dealerSeat = 0
	g.logger().WithFields(logrus.Fields{
		"game":    g.ID,
		"players": len(g.Players),
		"teams":   cfg.NumTeams,
	}).Info("game started")

	g.startNextHand()
	g.advanceComputers()
	return nil
}

// AddSpectator parks a viewer on the spectator pseudo-team. Spectators are
// never part of the ring and never score.
func (g *Game) AddSpectator(p *models.Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Spectators.AddPlayer(p)
}

// SubmitBid applies one bid from a human seat and runs any resulting
// computer cascade before returning. Reports whether bidding finished.
func (g *Game) SubmitBid(playerID uuid.UUID, value int, trump *models.Suit) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	h, err := g.handInPhase(HandBidding)
	if err != nil {
		return false, err
	}
	p, err := g.playerByID(playerID)
	if err != nil {
		return false, err
	}
	finished, err := h.submitBid(p, value, trump)
	if err != nil {
		return false, err
	}
	g.syncState()
	g.advanceComputers()
	return finished, nil
}

// DeclareTrump sets trump from the high bidder when it did not arrive
// attached to the winning bid.
func (g *Game) DeclareTrump(playerID uuid.UUID, trump models.Suit) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	h, err := g.handInPhase(HandDeclaringTrump)
	if err != nil {
		return err
	}
	p, err := g.playerByID(playerID)
	if err != nil {
		return err
	}
	if err := h.declareTrump(p, trump); err != nil {
		return err
	}
	g.syncState()
	g.advanceComputers()
	return nil
}

// SubmitPlay applies one card play from a human seat and runs any
// resulting computer cascade before returning. Reports whether the play
// completed its trick.
func (g *Game) SubmitPlay(playerID uuid.UUID, card models.Card) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	h, err := g.handInPhase(HandPlayingTrick)
	if err != nil {
		return false, err
	}
	p, err := g.playerByID(playerID)
	if err != nil {
		return false, err
	}
	finished, err := h.submitPlay(p, card)
	if err != nil {
		return false, err
	}
	g.syncState()
	g.advanceComputers()
	return finished, nil
}

// LegalPlays returns the cards the player could legally submit right now,
// nil outside the playing phase. Useful for rendering a hand.
func (g *Game) LegalPlays(playerID uuid.UUID) []models.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	h := g.currentHand()
	if h == nil {
		return nil
	}
	p, err := g.playerByID(playerID)
	if err != nil {
		return nil
	}
	return h.LegalPlaysFor(p)
}

// Standing is one contestant's row in the score table.
type Standing struct {
	ContestantID string
	Name         string
	Score        int
	History      []int
}

// Standings returns the score table, one row per contestant, with the
// per-hand cumulative history.
func (g *Game) Standings() []Standing {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Standing, 0, len(g.Contestants()))
	for _, c := range g.Contestants() {
		hist := g.scoreHistory[c.ContestantID()]
		out = append(out, Standing{
			ContestantID: c.ContestantID(),
			Name:         c.DisplayName(),
			Score:        c.Score(),
			History:      append([]int(nil), hist...),
		})
	}
	return out
}

// State returns the game-level phase.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Winners returns the winning contestants once the game is over; ties make
// every tied contestant a winner.
func (g *Game) Winners() []models.Contestant {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Contestant(nil), g.winners...)
}

// CurrentHand returns the hand in progress, nil before the first deal or
// after game over.
func (g *Game) CurrentHand() *Hand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentHand()
}

// Finish tears the game down, used by the cleanup collaborator when a game
// expires. Terminal and idempotent.
func (g *Game) Finish() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateGameOver {
		g.state = StateGameOver
		g.logger().WithField("game", g.ID).Info("game finished externally")
	}
}

// IdleSince returns the time of the last externally-triggered transition.
func (g *Game) IdleSince() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActivity
}

// Contestants returns the scoring units: teams when team play is
// configured, the players themselves otherwise.
func (g *Game) Contestants() []models.Contestant {
	if len(g.Teams) > 0 {
		out := make([]models.Contestant, len(g.Teams))
		for i, t := range g.Teams {
			out[i] = t
		}
		return out
	}
	out := make([]models.Contestant, len(g.Players))
	for i, p := range g.Players {
		out[i] = p
	}
	return out
}

// --- internal transitions; callers hold g.mu ---

func (g *Game) startNextHand() {
	h := newHand(g, len(g.Hands)+1, g.playerAt(g.dealerSeat))
	g.Hands = append(g.Hands, h)
	h.start()
	g.state = StateBidding
}

// completeHand runs after a hand finalizes (scored or no-bid): append one
// score-history entry per contestant, check for a winner, and either end
// the game or rotate the dealer and deal again.
func (g *Game) completeHand(h *Hand) {
	for _, c := range g.Contestants() {
		id := c.ContestantID()
		g.scoreHistory[id] = append(g.scoreHistory[id], c.Score())
	}

	if !h.NoBid {
		if winners := g.checkWin(h); len(winners) > 0 {
			g.winners = winners
			g.state = StateGameOver
			names := make([]string, len(winners))
			for i, w := range winners {
				names[i] = w.DisplayName()
			}
			g.logger().WithField("game", g.ID).Infof("game over, won by %v", names)
			return
		}
	}

	g.dealerSeat = g.nextSeat(g.dealerSeat)
	g.startNextHand()
}

// checkWin applies the win condition after a scored hand. Under
// must-bid-to-win only the bidder's contestant can end the game, and only
// by reaching the threshold on a won bid; otherwise the highest scorer at
// or over the threshold wins, with ties shared.
func (g *Game) checkWin(h *Hand) []models.Contestant {
	target := g.Config.ScoreToPlayTo
	if g.Config.MustBidToWin {
		side := h.Bidder.Contestant()
		if h.BidWon && side.Score() >= target {
			return []models.Contestant{side}
		}
		return nil
	}
	best := target - 1
	var winners []models.Contestant
	for _, c := range g.Contestants() {
		switch {
		case c.Score() > best:
			best = c.Score()
			winners = []models.Contestant{c}
		case len(winners) > 0 && c.Score() == best:
			// ties share the win, but only once somebody has actually
			// reached the target
			winners = append(winners, c)
		}
	}
	return winners
}

// advanceComputers drives every pending computer decision synchronously:
// bids, a trump declaration, and plays, until a human seat must act or the
// game ends. Decisions come back through the same validated submission
// paths as human input; a rejection here is an internal fault.
func (g *Game) advanceComputers() {
	for g.state != StateGameOver {
		h := g.currentHand()
		if h == nil {
			return
		}
		switch h.Phase {
		case HandBidding:
			p := g.playerAt(h.bidTurn)
			if !p.IsComputer {
				return
			}
			value, trump := g.Decider.CalculateBid(g, h, p)
			var tr *models.Suit
			if value > 0 {
				t := trump
				tr = &t
			}
			if _, err := h.submitBid(p, value, tr); err != nil {
				panic(fmt.Sprintf("game: computer bid rejected: %v", err))
			}
		case HandDeclaringTrump:
			p := h.Bidder
			if !p.IsComputer {
				return
			}
			_, trump := g.Decider.CalculateBid(g, h, p)
			if err := h.declareTrump(p, trump); err != nil {
				panic(fmt.Sprintf("game: computer trump declaration rejected: %v", err))
			}
		case HandPlayingTrick:
			t := h.currentTrick()
			p := g.playerAt(t.activeSeat)
			if !p.IsComputer {
				return
			}
			card := g.Decider.ChooseCard(g, h, t, p)
			if _, err := h.submitPlay(p, card); err != nil {
				panic(fmt.Sprintf("game: computer play rejected: %v", err))
			}
		default:
			return
		}
		g.syncState()
	}
}

// syncState mirrors the current hand's phase into the game-level state.
func (g *Game) syncState() {
	if g.state == StateGameOver {
		return
	}
	h := g.currentHand()
	if h == nil {
		return
	}
	switch h.Phase {
	case HandBidding:
		g.state = StateBidding
	case HandDeclaringTrump:
		g.state = StateDeclaringTrump
	case HandPlayingTrick:
		g.state = StatePlayingTrick
	}
}

func (g *Game) currentHand() *Hand {
	if g.state == StateGameOver || len(g.Hands) == 0 {
		return nil
	}
	h := g.Hands[len(g.Hands)-1]
	if h.Phase == HandFinished {
		return nil
	}
	return h
}

func (g *Game) handInPhase(ph HandPhase) (*Hand, error) {
	if g.state == StateGameOver {
		return nil, fmt.Errorf("%w: game is over", ErrPhaseViolation)
	}
	h := g.currentHand()
	if h == nil {
		return nil, fmt.Errorf("%w: no hand in progress", ErrPhaseViolation)
	}
	if h.Phase != ph {
		return nil, fmt.Errorf("%w: hand %d is in %s, not %s", ErrPhaseViolation, h.Num, h.Phase, ph)
	}
	return h, nil
}

func (g *Game) playerByID(id uuid.UUID) (*models.Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: player %s is not seated in this game", ErrOutOfTurn, id)
}

func (g *Game) playerAt(seat int) *models.Player {
	return g.Players[seat]
}

func (g *Game) nextSeat(seat int) int {
	return (seat + 1) % len(g.Players)
}

func (g *Game) touch() {
	g.lastActivity = time.Now()
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}()

func (g *Game) logger() *logrus.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return discard
}
