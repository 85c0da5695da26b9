// cmd/smear/main.go
package main

import (
	"fmt"
	"log"
	"math/rand"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/smeargame/smear/internal/bot"
	"github.com/smeargame/smear/internal/config"
	"github.com/smeargame/smear/internal/game"
	"github.com/smeargame/smear/internal/models"
)

// Plays one full game of Smear between computer players and prints the
// standings, exercising the engine end to end through its public API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	g := game.NewGame(game.Config{
		NumPlayers:    cfg.NumPlayers,
		NumTeams:      cfg.NumTeams,
		ScoreToPlayTo: cfg.ScoreToPlayTo,
		MustBidToWin:  cfg.MustBidToWin,
	})
	g.Logger = logger
	g.Decider = bot.New()
	if cfg.Seed != 0 {
		g.Rand = rand.NewSource(cfg.Seed)
	}

	store := game.NewGameStore()
	store.AddGame(g)

	players := make([]*models.Player, cfg.NumPlayers)
	for i := range players {
		players[i] = models.NewPlayer(fmt.Sprintf("cpu-%d", i+1), true)
	}

	// An all-computer table cascades to completion inside StartGame.
	if err := g.StartGame(players); err != nil {
		log.Fatalf("start: %v", err)
	}

	fmt.Printf("game over after %d hands\n", len(g.Hands))
	for _, row := range g.Standings() {
		fmt.Printf("%-10s %3d  %v\n", row.Name, row.Score, row.History)
	}
	for _, w := range g.Winners() {
		fmt.Printf("winner: %s\n", w.DisplayName())
	}

	store.FinishGame(g.ID)
}
