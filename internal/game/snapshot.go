// internal/game/snapshot.go
package game

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/smeargame/smear/internal/models"
)

// Persisted-state shapes. The surrounding service stores these opaquely;
// they must round-trip exactly, so they are explicitly typed maps with
// validation at the boundary rather than free-form documents.

var suitKeys = map[models.Suit]string{
	models.Spades:   "spades",
	models.Hearts:   "hearts",
	models.Clubs:    "clubs",
	models.Diamonds: "diamonds",
}

// HandRecord is the persisted snapshot of one hand's inference and scoring
// state.
type HandRecord struct {
	// PlayersOutOfSuits maps suit name to the player ids proven out of
	// that suit.
	PlayersOutOfSuits map[string][]string `json:"players_out_of_suits"`

	// GamePointsByPlayer maps player id to accumulated game points.
	GamePointsByPlayer map[string]int `json:"game_points_by_player"`
}

// GameRecord is the persisted snapshot of a game's scoring history.
type GameRecord struct {
	// ScoresByContestant maps contestant id to the cumulative score after
	// each completed hand, one entry per hand.
	ScoresByContestant map[string][]int `json:"scores_by_contestant"`
}

// HandSnapshot captures the persisted shape of the hand's current state.
// Call with the game lock not held (it locks internally).
func (g *Game) HandSnapshot() *HandRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	h := g.currentHand()
	if h == nil {
		return nil
	}
	rec := &HandRecord{
		PlayersOutOfSuits:  make(map[string][]string, len(models.Suits)),
		GamePointsByPlayer: make(map[string]int, len(g.Players)),
	}
	for _, s := range models.Suits {
		rec.PlayersOutOfSuits[suitKeys[s]] = []string{}
	}
	if h.Counter != nil {
		for _, s := range models.Suits {
			ids := []string{}
			for _, p := range g.Players {
				if h.Counter.IsOut(s, p.ID) {
					ids = append(ids, p.ID.String())
				}
			}
			rec.PlayersOutOfSuits[suitKeys[s]] = ids
		}
	}
	for _, p := range g.Players {
		if pts, ok := h.GamePoints[p.ID]; ok {
			rec.GamePointsByPlayer[p.ID.String()] = pts
		}
	}
	return rec
}

// GameSnapshot captures the persisted shape of the score history.
func (g *Game) GameSnapshot() *GameRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := &GameRecord{ScoresByContestant: make(map[string][]int, len(g.scoreHistory))}
	for id, hist := range g.scoreHistory {
		rec.ScoresByContestant[id] = append([]int(nil), hist...)
	}
	return rec
}

// Validate rejects a hand record that could not have come from this core.
func (r *HandRecord) Validate() error {
	known := make(map[string]bool, len(suitKeys))
	for _, name := range suitKeys {
		known[name] = true
	}
	for suit, ids := range r.PlayersOutOfSuits {
		if !known[suit] {
			return fmt.Errorf("hand record: unknown suit %q", suit)
		}
		for _, id := range ids {
			if _, err := uuid.Parse(id); err != nil {
				return fmt.Errorf("hand record: bad player id %q in %s: %w", id, suit, err)
			}
		}
	}
	for id, pts := range r.GamePointsByPlayer {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("hand record: bad player id %q: %w", id, err)
		}
		if pts < 0 || pts > 80 {
			return fmt.Errorf("hand record: game points %d for %s out of range", pts, id)
		}
	}
	return nil
}

// Validate rejects a game record with malformed contestant ids or an empty
// shape where history is expected.
func (r *GameRecord) Validate() error {
	for id := range r.ScoresByContestant {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("game record: bad contestant id %q: %w", id, err)
		}
	}
	return nil
}

// DecodeHandRecord parses and validates a stored hand record.
func DecodeHandRecord(data []byte) (*HandRecord, error) {
	var rec HandRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("hand record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DecodeGameRecord parses and validates a stored game record.
func DecodeGameRecord(data []byte) (*GameRecord, error) {
	var rec GameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("game record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}
