// internal/models/player_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHandMutation(t *testing.T) {
	p := NewPlayer("alice", false)
	ace := Card{Value: Ace, Suit: Spades}
	two := Card{Value: Two, Suit: Hearts}
	p.Hand = []Card{ace, two}

	assert.True(t, p.HasCard(ace))
	assert.False(t, p.HasCard(Card{Value: King, Suit: Spades}))

	assert.True(t, p.RemoveCard(ace))
	assert.False(t, p.HasCard(ace))
	assert.Len(t, p.Hand, 1)

	assert.False(t, p.RemoveCard(ace), "already gone")
}

func TestHasSuitIsTrumpAware(t *testing.T) {
	p := NewPlayer("bob", false)
	p.Hand = []Card{{Value: Jack, Suit: Clubs}} // the jick under spades

	assert.True(t, p.HasSuit(Spades, Spades))
	assert.False(t, p.HasSuit(Clubs, Spades), "the jick is not a club while spades are trump")
	assert.True(t, p.HasTrump(Spades))
	assert.False(t, p.HasTrump(Hearts))

	// Under a different trump the same card is a plain club.
	assert.True(t, p.HasSuit(Clubs, Hearts))
}

func TestContestantIsTeamWhenSeatedOnOne(t *testing.T) {
	solo := NewPlayer("solo", false)
	require.Equal(t, Contestant(solo), solo.Contestant())

	solo.AddScore(3)
	assert.Equal(t, 3, solo.Score())

	team := NewTeam("us")
	a, b := NewPlayer("a", false), NewPlayer("b", false)
	team.AddPlayer(a)
	team.AddPlayer(b)

	require.Equal(t, Contestant(team), a.Contestant())
	a.Contestant().AddScore(2)
	b.Contestant().AddScore(1)
	assert.Equal(t, 3, team.Score())
	assert.Zero(t, a.Score(), "team play never touches the player's own score")
}

func TestSameSide(t *testing.T) {
	a, b, c := NewPlayer("a", false), NewPlayer("b", false), NewPlayer("c", false)

	assert.True(t, SameSide(a, a))
	assert.False(t, SameSide(a, b), "no teams, distinct players")
	assert.False(t, SameSide(a, nil))

	team := NewTeam("us")
	team.AddPlayer(a)
	team.AddPlayer(b)
	other := NewTeam("them")
	other.AddPlayer(c)

	assert.True(t, SameSide(a, b))
	assert.False(t, SameSide(a, c))
}
