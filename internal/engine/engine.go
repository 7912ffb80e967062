// Package engine implements the device side of the number guessing game.
//
// An Engine runs a bounded binary search over [MinSecret, MaxSecret]. The host
// asks for a guess, shows it to the user, and feeds the user's answer back
// until the engine reports that it is finished. Engines are not safe for
// concurrent use; a host must serialize calls on one session.
package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// MinSecret is the smallest secret a user may pick.
	MinSecret = 1
	// MaxSecret is the largest secret a user may pick.
	MaxSecret = 99
	// MaxRounds is ceil(log2(MaxSecret)), the most guesses truthful
	// feedback can ever require.
	MaxRounds = 7
)

// State represents the lifecycle of a guessing session.
type State int

const (
	// StateActive means the engine is still searching.
	StateActive State = iota
	// StateFinished means the last guess was confirmed correct.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Option configures an Engine at start.
type Option func(*Engine)

// WithPolicy sets the guess selection policy. The default is PolicyBisect.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithRand sets the random source used by PolicyJitter.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// Engine holds the state of one guessing session.
type Engine struct {
	secret    int
	low, high int
	guess     int
	pending   bool // guess made, feedback not yet applied
	rounds    int
	state     State
	guesses   []int
	policy    Policy
	rng       *rand.Rand
}

// Start begins a session for the given secret.
func Start(secret int, opts ...Option) (*Engine, error) {
	if secret < MinSecret || secret > MaxSecret {
		return nil, fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidSecret, secret, MinSecret, MaxSecret)
	}

	e := &Engine{
		secret:  secret,
		low:     MinSecret,
		high:    MaxSecret,
		state:   StateActive,
		guesses: make([]int, 0, MaxRounds),
		policy:  PolicyBisect,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.policy == PolicyJitter && e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// ParseSecret converts user input into a secret, rejecting anything that is
// not an integer in range.
func ParseSecret(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidSecret, s)
	}
	if n < MinSecret || n > MaxSecret {
		return 0, fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidSecret, n, MinSecret, MaxSecret)
	}
	return n, nil
}

// NextGuess proposes a value inside the current bounds and counts a round.
// Until feedback is applied, repeated calls return the same guess without
// counting another round.
func (e *Engine) NextGuess() (int, error) {
	if e.state == StateFinished {
		return 0, ErrFinished
	}
	if e.pending {
		return e.guess, nil
	}

	e.guess = e.pick()
	e.pending = true
	e.rounds++
	e.guesses = append(e.guesses, e.guess)
	return e.guess, nil
}

// ApplyFeedback narrows the bounds around the pending guess, or finishes the
// session on Correct. Feedback that contradicts the secret is rejected with
// ErrInconsistentFeedback and changes nothing.
func (e *Engine) ApplyFeedback(fb Feedback) error {
	if e.state == StateFinished {
		return ErrFinished
	}
	if !e.pending {
		return ErrNoGuess
	}

	low, high := e.low, e.high
	switch fb {
	case Correct:
		if e.guess != e.secret {
			return fmt.Errorf("%w: %d is not the secret", ErrInconsistentFeedback, e.guess)
		}
		e.pending = false
		e.state = StateFinished
		return nil
	case Lower:
		high = e.guess - 1
	case Higher:
		low = e.guess + 1
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFeedback, int(fb))
	}

	if low > high {
		return fmt.Errorf("%w: %s than %d leaves no candidates", ErrInconsistentFeedback, fb, e.guess)
	}
	if e.secret < low || e.secret > high {
		return fmt.Errorf("%w: secret is not %s than %d", ErrInconsistentFeedback, fb, e.guess)
	}

	e.low, e.high = low, high
	e.pending = false
	return nil
}

// RoundCount returns the number of guesses made so far.
func (e *Engine) RoundCount() int { return e.rounds }

// IsFinished reports whether the secret has been found.
func (e *Engine) IsFinished() bool { return e.state == StateFinished }

// State returns the session state.
func (e *Engine) State() State { return e.state }

// Bounds returns the inclusive range of remaining candidates.
func (e *Engine) Bounds() (low, high int) { return e.low, e.high }

// CurrentGuess returns the most recent guess, or 0 before the first round.
func (e *Engine) CurrentGuess() int { return e.guess }

// Secret returns the number being searched for.
func (e *Engine) Secret() int { return e.secret }

// Policy returns the guess selection policy.
func (e *Engine) Policy() Policy { return e.policy }

// Guesses returns a copy of every guess made, oldest first.
func (e *Engine) Guesses() []int {
	out := make([]int, len(e.guesses))
	copy(out, e.guesses)
	return out
}
