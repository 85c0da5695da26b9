// internal/bot/bot_test.go
package bot

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smeargame/smear/internal/game"
	"github.com/smeargame/smear/internal/models"
)

// TestFullGameWithComputerPlayers runs complete games on fixed seeds: four
// computer seats drive every bid, declaration and play through the
// validated submission paths until someone reaches the target score.
func TestFullGameWithComputerPlayers(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		seed := seed
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			players := make([]*models.Player, 4)
			for i := range players {
				players[i] = models.NewPlayer(fmt.Sprintf("cpu-%d", i+1), true)
			}
			g := game.NewGame(game.Config{NumPlayers: 4, NumTeams: 2, ScoreToPlayTo: 11})
			g.Decider = New()
			g.Rand = rand.NewSource(seed)

			require.NoError(t, g.StartGame(players))

			assert.Equal(t, game.StateGameOver, g.State())
			require.NotEmpty(t, g.Winners())
			for _, w := range g.Winners() {
				assert.GreaterOrEqual(t, w.Score(), 11)
			}
			assert.NotEmpty(t, g.Hands)

			// Every hand left a score-history entry for both teams.
			for _, s := range g.Standings() {
				assert.Len(t, s.History, len(g.Hands))
			}
		})
	}
}

func TestTeamGameWithComputerPlayersIsDeterministic(t *testing.T) {
	run := func() []game.Standing {
		players := make([]*models.Player, 4)
		for i := range players {
			players[i] = models.NewPlayer(fmt.Sprintf("cpu-%d", i+1), true)
		}
		g := game.NewGame(game.Config{NumPlayers: 4, NumTeams: 2, ScoreToPlayTo: 11})
		g.Decider = New()
		g.Rand = rand.NewSource(99)
		if err := g.StartGame(players); err != nil {
			t.Fatal(err)
		}
		return g.Standings()
	}

	first, second := run(), run()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].History, second[i].History)
	}
}
