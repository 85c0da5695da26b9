// internal/config/config.go

// Package config loads engine defaults from the environment. A .env file
// is honored when present (godotenv); unset variables fall back to the
// standard Smear table: four players, two teams, play to 11.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven defaults for new games.
type Config struct {
	NumPlayers    int
	NumTeams      int
	ScoreToPlayTo int
	MustBidToWin  bool
	Seed          int64 // 0 means time-seeded deals
	LogLevel      string
}

// Load reads the environment, after loading .env if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		NumPlayers:    4,
		NumTeams:      2,
		ScoreToPlayTo: 11,
		LogLevel:      "info",
	}
	var err error
	if cfg.NumPlayers, err = intVar("SMEAR_PLAYERS", cfg.NumPlayers); err != nil {
		return Config{}, err
	}
	if cfg.NumTeams, err = intVar("SMEAR_TEAMS", cfg.NumTeams); err != nil {
		return Config{}, err
	}
	if cfg.ScoreToPlayTo, err = intVar("SMEAR_SCORE_TO_PLAY_TO", cfg.ScoreToPlayTo); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("SMEAR_MUST_BID_TO_WIN"); v != "" {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return Config{}, fmt.Errorf("config: SMEAR_MUST_BID_TO_WIN: %w", perr)
		}
		cfg.MustBidToWin = b
	}
	if v := os.Getenv("SMEAR_SEED"); v != "" {
		s, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("config: SMEAR_SEED: %w", perr)
		}
		cfg.Seed = s
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func intVar(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
