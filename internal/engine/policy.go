package engine

import (
	"fmt"
	"strings"
)

// Policy selects how the next guess is picked inside the current bounds.
type Policy int

const (
	// PolicyBisect always guesses floor((low+high)/2).
	PolicyBisect Policy = iota
	// PolicyJitter picks the floor or ceil midpoint at random and never
	// opens with the secret itself.
	PolicyJitter
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyBisect:
		return "bisect"
	case PolicyJitter:
		return "jitter"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bisect":
		return PolicyBisect, nil
	case "jitter":
		return PolicyJitter, nil
	default:
		return PolicyBisect, fmt.Errorf("unknown guess policy %q", s)
	}
}

// UnmarshalText parses a policy name, so config decoders can fill a Policy.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// pick returns the next candidate in [e.low, e.high].
// Either midpoint halves the remaining range, so both policies keep the
// MaxRounds bound. Stepping one off the midpoint on round one leaves at most
// 50 candidates, which six more rounds still cover.
func (e *Engine) pick() int {
	mid := (e.low + e.high) / 2
	if e.policy != PolicyJitter || e.low == e.high {
		return mid
	}

	if (e.low+e.high)%2 != 0 && e.rng.Intn(2) == 1 {
		mid++
	}

	if e.rounds == 0 && mid == e.secret {
		switch {
		case mid-e.low >= e.high-mid && mid > e.low:
			mid--
		case mid < e.high:
			mid++
		}
	}
	return mid
}
