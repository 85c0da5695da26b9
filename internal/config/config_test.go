// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SMEAR_PLAYERS", "SMEAR_TEAMS", "SMEAR_SCORE_TO_PLAY_TO",
		"SMEAR_MUST_BID_TO_WIN", "SMEAR_SEED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NumPlayers)
	assert.Equal(t, 2, cfg.NumTeams)
	assert.Equal(t, 11, cfg.ScoreToPlayTo)
	assert.False(t, cfg.MustBidToWin)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SMEAR_PLAYERS", "6")
	t.Setenv("SMEAR_TEAMS", "3")
	t.Setenv("SMEAR_SCORE_TO_PLAY_TO", "15")
	t.Setenv("SMEAR_MUST_BID_TO_WIN", "true")
	t.Setenv("SMEAR_SEED", "12345")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumPlayers)
	assert.Equal(t, 3, cfg.NumTeams)
	assert.Equal(t, 15, cfg.ScoreToPlayTo)
	assert.True(t, cfg.MustBidToWin)
	assert.Equal(t, int64(12345), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SMEAR_PLAYERS", "four")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SMEAR_PLAYERS", "4")
	t.Setenv("SMEAR_MUST_BID_TO_WIN", "definitely")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SMEAR_MUST_BID_TO_WIN", "false")
	t.Setenv("SMEAR_SEED", "not-a-number")
	_, err = Load()
	assert.Error(t, err)
}
