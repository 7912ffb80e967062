package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guessanumber/internal/engine"
	"github.com/samdwyer/guessanumber/internal/telemetry"
)

// Round is one guess and the answer it received.
type Round struct {
	Guess    int
	Feedback engine.Feedback
	Low      int // bounds after the answer
	High     int
}

// Result is the trace of a game played without a user.
type Result struct {
	Secret int
	Rounds []Round
}

// Autoplay plays a whole game against secret with truthful answers.
func Autoplay(ctx context.Context, secret int, cfg Config) (Result, error) {
	tracer := telemetry.Tracer("autoplay")
	_, span := tracer.Start(ctx, "autoplay.run")
	defer span.End()

	e, err := engine.Start(secret, engine.WithPolicy(cfg.Policy), engine.WithRand(cfg.newRand()))
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	res := Result{Secret: secret}
	for !e.IsFinished() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		guess, err := e.NextGuess()
		if err != nil {
			return res, fmt.Errorf("round %d: %w", e.RoundCount()+1, err)
		}
		fb := engine.Truthful(secret, guess)
		if err := e.ApplyFeedback(fb); err != nil {
			return res, fmt.Errorf("round %d: %w", e.RoundCount(), err)
		}

		low, high := e.Bounds()
		res.Rounds = append(res.Rounds, Round{Guess: guess, Feedback: fb, Low: low, High: high})
	}

	span.SetAttributes(
		attribute.Int("secret", secret),
		attribute.Int("rounds", e.RoundCount()),
		attribute.String("policy", cfg.Policy.String()),
	)
	return res, nil
}
