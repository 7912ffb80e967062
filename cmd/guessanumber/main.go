// Package main is the entry point for Guess a Number.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/guessanumber/internal/config"
	"github.com/samdwyer/guessanumber/internal/game"
	"github.com/samdwyer/guessanumber/internal/logging"
	"github.com/samdwyer/guessanumber/internal/telemetry"
)

func main() {
	auto := flag.Int("auto", 0, "play the given secret without a terminal UI and print the guesses")
	flag.Parse()

	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	gameCfg := game.Config{Policy: cfg.Policy, Seed: cfg.Seed}

	var closer io.Closer = logging.NopCloser{}
	if *auto != 0 {
		log.Logger = logging.Console(cfg.LogLevel)
	} else {
		log.Logger, closer, err = logging.File(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			log.Logger = logging.Console(cfg.LogLevel)
			log.Fatal().Err(err).Msg("failed to open log file")
		}
	}
	defer closer.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, cfg.TelemetryOptions())
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, continuing without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	}

	if *auto != 0 {
		if err := runAuto(ctx, *auto, gameCfg, os.Stdout); err != nil {
			log.Error().Err(err).Int("secret", *auto).Msg("autoplay failed")
			os.Exit(1)
		}
		return
	}

	g, err := game.New(gameCfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize game")
	}
	g.Session().OnGameOver = func(rounds, secret int) {
		log.Info().Int("rounds", rounds).Int("secret", secret).Msg("phone found the number")
	}

	if err := g.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game error")
	}
}

// runAuto plays one game with truthful answers and prints each round.
func runAuto(ctx context.Context, secret int, cfg game.Config, w io.Writer) error {
	res, err := game.Autoplay(ctx, secret, cfg)
	if err != nil {
		return err
	}
	for i, r := range res.Rounds {
		fmt.Fprintf(w, "round %d: guess %2d -> %-7s [%d..%d]\n", i+1, r.Guess, r.Feedback, r.Low, r.High)
	}
	fmt.Fprintf(w, "Your phone needed %d rounds to guess the number %d.\n", len(res.Rounds), res.Secret)
	log.Debug().Int("rounds", len(res.Rounds)).Str("policy", cfg.Policy.String()).Msg("autoplay done")
	return nil
}
