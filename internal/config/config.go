// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/jason-s-yu/dominion/internal/game"
	"github.com/joho/godotenv"
)

// Config controls which card tests run and how the game is set up.
type Config struct {
	Seed     uint64   `env:"DOMINION_SEED"      envDefault:"10"`
	Players  int      `env:"DOMINION_PLAYERS"   envDefault:"2"`
	Kingdom  []string `env:"DOMINION_KINGDOM"   envSeparator:"," envDefault:"adventurer,gardens,embargo,village,minion,mine,cutpurse,sea_hag,tribute,smithy"`
	Suites   []string `env:"DOMINION_SUITES"    envSeparator:"," envDefault:"adventurer"`
	LogLevel string   `env:"DOMINION_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFile reads the configuration from a .env file only, ignoring the process environment.
func LoadFile(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read env file %s: %w", path, err)
	}
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Players < game.MinPlayers || cfg.Players > game.MaxPlayers {
		return Config{}, fmt.Errorf("DOMINION_PLAYERS: %w: got %d", game.ErrInvalidPlayerCount, cfg.Players)
	}
	if len(cfg.Suites) == 0 {
		return Config{}, errors.New("DOMINION_SUITES must name at least one suite")
	}
	return cfg, nil
}

// ParsedKingdom resolves the configured kingdom card names.
func (c Config) ParsedKingdom() (game.Kingdom, error) {
	k, err := game.ParseKingdom(c.Kingdom)
	if err != nil {
		return game.Kingdom{}, fmt.Errorf("DOMINION_KINGDOM: %w", err)
	}
	return k, nil
}
