// Package config loads process configuration from the environment and
// command-line flags. Flags override environment values.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for both the console game and the HTTP API.
type Config struct {
	LogLevel         string  `env:"LOG_LEVEL" envDefault:"info"`
	Classic          bool    `env:"GUESS_CLASSIC"`
	Seed             int64   `env:"GUESS_SEED"`
	Daily            bool    `env:"GUESS_DAILY"`
	DailySalt        string  `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	DifficultiesFile string  `env:"GUESS_DIFFICULTIES_FILE"`
	Addr             string  `env:"GUESS_ADDR" envDefault:":5175"`
	GuessRate        float64 `env:"GUESS_RATE" envDefault:"10"`
	GuessBurst       int     `env:"GUESS_BURST" envDefault:"20"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Classic, "classic", cfg.Classic, "Skip difficulty and hint questions: 1-100, 5 attempts, hints on")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for a replayable secret (0 draws from crypto/rand)")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "Use today's secret (same for everyone on the same range)")
	fs.StringVar(&cfg.DifficultiesFile, "difficulties", cfg.DifficultiesFile, "Difficulty catalog file (name min max attempts per line)")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for serve")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if cfg.Seed != 0 && cfg.Daily {
		return Config{}, errors.New("-seed and -daily are mutually exclusive")
	}
	return cfg, nil
}
