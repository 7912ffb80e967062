package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/guessanumber/internal/engine"
)

func TestAutoplayEverySecret(t *testing.T) {
	configs := []Config{
		{Policy: engine.PolicyBisect},
		{Policy: engine.PolicyJitter, Seed: 12345},
	}

	for _, cfg := range configs {
		for secret := engine.MinSecret; secret <= engine.MaxSecret; secret++ {
			res, err := Autoplay(context.Background(), secret, cfg)
			if err != nil {
				t.Fatalf("%v: Autoplay(%d) error = %v", cfg.Policy, secret, err)
			}
			if len(res.Rounds) == 0 || len(res.Rounds) > engine.MaxRounds {
				t.Errorf("%v: Autoplay(%d) took %d rounds", cfg.Policy, secret, len(res.Rounds))
			}

			last := res.Rounds[len(res.Rounds)-1]
			if last.Guess != secret || last.Feedback != engine.Correct {
				t.Errorf("%v: Autoplay(%d) ended with %d/%v", cfg.Policy, secret, last.Guess, last.Feedback)
			}
			for _, r := range res.Rounds {
				if r.Low > secret || r.High < secret {
					t.Errorf("%v: Autoplay(%d) bounds %d..%d exclude the secret", cfg.Policy, secret, r.Low, r.High)
				}
			}
		}
	}
}

func TestAutoplayTrace(t *testing.T) {
	res, err := Autoplay(context.Background(), 1, Config{})
	if err != nil {
		t.Fatalf("Autoplay(1) error = %v", err)
	}

	want := []Round{
		{50, engine.Lower, 1, 49},
		{25, engine.Lower, 1, 24},
		{12, engine.Lower, 1, 11},
		{6, engine.Lower, 1, 5},
		{3, engine.Lower, 1, 2},
		{1, engine.Correct, 1, 2},
	}
	if len(res.Rounds) != len(want) {
		t.Fatalf("Autoplay(1) rounds = %+v, want %+v", res.Rounds, want)
	}
	for i := range want {
		if res.Rounds[i] != want[i] {
			t.Errorf("round %d = %+v, want %+v", i+1, res.Rounds[i], want[i])
		}
	}
}

func TestAutoplayInvalidSecret(t *testing.T) {
	for _, secret := range []int{0, 100} {
		if _, err := Autoplay(context.Background(), secret, Config{}); !errors.Is(err, engine.ErrInvalidSecret) {
			t.Errorf("Autoplay(%d) error = %v, want ErrInvalidSecret", secret, err)
		}
	}
}

func TestAutoplayCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Autoplay(ctx, 42, Config{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Autoplay() error = %v, want context.Canceled", err)
	}
}
