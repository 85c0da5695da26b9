// internal/models/player.go
package models

import (
	"github.com/google/uuid"
)

// Contestant is the scoring unit of a game: a lone player, or a team when
// the game is played in teams. Scoring and win detection always operate on
// contestants.
type Contestant interface {
	ContestantID() string
	DisplayName() string
	Score() int
	AddScore(delta int)
}

// Player occupies one seat in the ring.
type Player struct {
	ID         uuid.UUID
	Name       string
	Seat       int
	Hand       []Card
	IsComputer bool

	// Team is nil when the game has no teams; the player then scores as
	// its own contestant.
	Team *Team

	score int
}

// NewPlayer builds an unseated player.
func NewPlayer(name string, isComputer bool) *Player {
	return &Player{
		ID:         uuid.New(),
		Name:       name,
		Seat:       -1,
		Hand:       []Card{},
		IsComputer: isComputer,
	}
}

// Contestant returns the unit this player scores as: its team when seated
// on one, otherwise itself.
func (p *Player) Contestant() Contestant {
	if p.Team != nil {
		return p.Team
	}
	return p
}

func (p *Player) ContestantID() string { return p.ID.String() }
func (p *Player) DisplayName() string  { return p.Name }
func (p *Player) Score() int           { return p.score }
func (p *Player) AddScore(delta int)   { p.score += delta }

// HasCard reports whether the card is currently in the player's hand.
func (p *Player) HasCard(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// RemoveCard takes the card out of the player's hand, reporting whether it
// was held.
func (p *Player) RemoveCard(c Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasSuit reports whether the player holds any card of the given effective
// suit (trump-aware: the jick counts as trump, never as its printed suit).
func (p *Player) HasSuit(s Suit, trump Suit) bool {
	for _, h := range p.Hand {
		if h.EffectiveSuit(trump) == s {
			return true
		}
	}
	return false
}

// HasTrump reports whether the player holds any trump, jick included.
func (p *Player) HasTrump(trump Suit) bool {
	return p.HasSuit(trump, trump)
}

// SameSide reports whether two players score as the same contestant.
func SameSide(a, b *Player) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	return a.Team != nil && a.Team == b.Team
}

// Team aggregates players into one scoring unit.
type Team struct {
	ID      uuid.UUID
	Name    string
	Players []*Player

	score int
}

// NewTeam builds an empty team.
func NewTeam(name string) *Team {
	return &Team{
		ID:   uuid.New(),
		Name: name,
	}
}

// AddPlayer attaches the player to this team.
func (t *Team) AddPlayer(p *Player) {
	p.Team = t
	t.Players = append(t.Players, p)
}

func (t *Team) ContestantID() string { return t.ID.String() }
func (t *Team) DisplayName() string  { return t.Name }
func (t *Team) Score() int           { return t.score }
func (t *Team) AddScore(delta int)   { t.score += delta }
