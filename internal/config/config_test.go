package config

import (
	"flag"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("guess", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.Classic || cfg.Daily || cfg.Seed != 0 {
		t.Fatalf("expected extended game with crypto secret, got %+v", cfg)
	}
	if cfg.Addr != ":5175" || cfg.DailySalt != "local_dev_salt" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.GuessRate != 10 || cfg.GuessBurst != 20 {
		t.Fatalf("unexpected rate defaults %+v", cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("GUESS_CLASSIC", "true")
	t.Setenv("GUESS_SEED", "99")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.Classic || cfg.Seed != 99 || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GUESS_ADDR", ":9000")

	cfg, err := ParseConfig(newFlagSet(), []string{"-addr", "127.0.0.1:9999", "-difficulties", "levels.txt", "-daily"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
	if cfg.DifficultiesFile != "levels.txt" || !cfg.Daily {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigEnvError(t *testing.T) {
	t.Setenv("GUESS_SEED", "not-an-int")

	_, err := ParseConfig(newFlagSet(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseConfigRejectsSeedWithDaily(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-seed", "3", "-daily"}); err == nil {
		t.Fatal("expected error for -seed with -daily")
	}
}

func TestParseConfigUnknownFlag(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
