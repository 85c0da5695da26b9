// internal/game/store.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// GameStore is the registry of live games owned by the surrounding
// service. The store mutex guards membership only; each game serializes
// its own transitions under its own lock, so operations on distinct games
// never contend here beyond the map lookup.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*Game
}

// NewGameStore builds an empty registry.
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*Game),
	}
}

// AddGame registers a game.
func (store *GameStore) AddGame(g *Game) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.games[g.ID] = g
}

// GetGame looks a game up by id.
func (store *GameStore) GetGame(id uuid.UUID) (*Game, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	g, exists := store.games[id]
	return g, exists
}

// DeleteGame drops a game from the registry.
func (store *GameStore) DeleteGame(id uuid.UUID) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.games, id)
}

// FinishGame tears a game down and drops it, for the cleanup collaborator.
func (store *GameStore) FinishGame(id uuid.UUID) {
	g, ok := store.GetGame(id)
	if !ok {
		return
	}
	g.Finish()
	store.DeleteGame(id)
}

// ExpireIdle finishes and drops every game idle for longer than maxAge,
// returning how many were expired. Idleness is read per game under that
// game's own lock; the store lock is only held to snapshot membership.
func (store *GameStore) ExpireIdle(maxAge time.Duration) int {
	store.mu.Lock()
	candidates := make([]*Game, 0, len(store.games))
	for _, g := range store.games {
		candidates = append(candidates, g)
	}
	store.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	expired := 0
	for _, g := range candidates {
		if g.IdleSince().Before(cutoff) {
			store.FinishGame(g.ID)
			expired++
		}
	}
	return expired
}
