package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/robalobadob/diceguess/internal/config"
	"github.com/robalobadob/diceguess/internal/console"
	"github.com/robalobadob/diceguess/internal/daily"
	"github.com/robalobadob/diceguess/internal/difficulty"
	"github.com/robalobadob/diceguess/internal/game"
	"github.com/robalobadob/diceguess/internal/httpserver"
	"github.com/robalobadob/diceguess/internal/store"
)

// usage: guess [flags]        play in the terminal
//        guess serve [flags]  run the HTTP API
func main() {
	_ = godotenv.Load()

	args := os.Args[1:]
	mode := "play"
	if len(args) > 0 && args[0] == "serve" {
		mode, args = "serve", args[1:]
	}
	cfg, err := config.ParseConfig(flag.NewFlagSet("guess "+mode, flag.ExitOnError), args)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg.LogLevel)

	catalog, err := difficulty.Load(cfg.DifficultiesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load difficulty catalog")
	}

	if mode == "serve" {
		serve(cfg, catalog)
		return
	}
	play(cfg, catalog)
}

func play(cfg config.Config, catalog *difficulty.Catalog) {
	var src game.Source
	if cfg.Daily {
		src = daily.Today(cfg.DailySalt)
	} else {
		seed := cfg.Seed
		if seed == 0 {
			var err error
			if seed, err = game.NewSeed(); err != nil {
				log.Fatal().Err(err).Msg("failed to seed secret")
			}
		}
		log.Debug().Int64("seed", seed).Msg("secret source")
		src = game.NewSeededSource(seed)
	}

	_, err := console.Play(console.NewTerminal(os.Stdin, os.Stdout), console.Options{
		Classic: cfg.Classic,
		Catalog: catalog,
		Source:  src,
		Logger:  log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func serve(cfg config.Config, catalog *difficulty.Catalog) {
	var src game.Source = game.CryptoSource{}
	if cfg.Seed != 0 {
		src = game.NewSeededSource(cfg.Seed)
	}
	srv := httpserver.New(httpserver.Options{
		Store:      store.NewMemoryStore(),
		Catalog:    catalog,
		Source:     src,
		DailySalt:  cfg.DailySalt,
		GuessRate:  rate.Limit(cfg.GuessRate),
		GuessBurst: cfg.GuessBurst,
	})
	log.Info().Str("addr", cfg.Addr).Strs("difficulties", catalog.Names()).Msg("starting diceguess server")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogging sets the global level and switches to human-readable output
// when stderr is a terminal. Game text goes to stdout, logs to stderr.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
