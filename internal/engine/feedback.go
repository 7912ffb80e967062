package engine

import (
	"fmt"
	"strings"
)

// Feedback is the user's answer to a guess.
type Feedback int

const (
	// FeedbackUnknown is the zero value and is never accepted.
	FeedbackUnknown Feedback = iota
	// Lower means the secret is smaller than the guess.
	Lower
	// Higher means the secret is larger than the guess.
	Higher
	// Correct means the guess is the secret.
	Correct
)

// String returns a human-readable feedback name.
func (f Feedback) String() string {
	switch f {
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// ParseFeedback reads a feedback value from its name or shorthand.
func ParseFeedback(s string) (Feedback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower", "l", "-":
		return Lower, nil
	case "higher", "h", "+":
		return Higher, nil
	case "correct", "c", "=":
		return Correct, nil
	default:
		return FeedbackUnknown, fmt.Errorf("%w: %q", ErrUnknownFeedback, s)
	}
}

// Truthful returns the honest answer for guess when the secret is known.
func Truthful(secret, guess int) Feedback {
	switch {
	case secret < guess:
		return Lower
	case secret > guess:
		return Higher
	default:
		return Correct
	}
}
