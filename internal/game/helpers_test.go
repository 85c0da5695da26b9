// internal/game/helpers_test.go
package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smeargame/smear/internal/models"
)

// newTestGame seats numPlayers human players and starts the game with a
// seeded deck. Seat 0 is the dealer of the first hand, so seat 1 bids
// first.
func newTestGame(t *testing.T, numPlayers, numTeams int) (*Game, []*models.Player) {
	t.Helper()
	players := make([]*models.Player, numPlayers)
	for i := range players {
		players[i] = models.NewPlayer(fmt.Sprintf("p%d", i+1), false)
	}
	g := NewGame(Config{
		NumPlayers:    numPlayers,
		NumTeams:      numTeams,
		ScoreToPlayTo: 11,
	})
	g.Rand = rand.NewSource(42)
	require.NoError(t, g.StartGame(players))
	return g, players
}

// setHands replaces the dealt cards with a scripted layout; valid any time
// before trump is declared.
func setHands(t *testing.T, players []*models.Player, hands ...string) {
	t.Helper()
	require.Len(t, hands, len(players))
	for i, codes := range hands {
		players[i].Hand = cards(t, codes)
	}
}

func card(t *testing.T, code string) models.Card {
	t.Helper()
	c, err := models.ParseCard(code)
	require.NoError(t, err)
	return c
}

// cards parses a space-separated list of two-character codes.
func cards(t *testing.T, codes string) []models.Card {
	t.Helper()
	var out []models.Card
	for i := 0; i+2 <= len(codes); i += 3 {
		out = append(out, card(t, codes[i:i+2]))
	}
	return out
}

func suitPtr(s models.Suit) *models.Suit { return &s }

// mustPlay submits a play that is expected to succeed.
func mustPlay(t *testing.T, g *Game, p *models.Player, code string) {
	t.Helper()
	_, err := g.SubmitPlay(p.ID, card(t, code))
	require.NoError(t, err, "%s plays %s", p.Name, code)
}

// mustBid submits a bid that is expected to succeed.
func mustBid(t *testing.T, g *Game, p *models.Player, value int, trump *models.Suit) {
	t.Helper()
	_, err := g.SubmitBid(p.ID, value, trump)
	require.NoError(t, err, "%s bids %d", p.Name, value)
}
