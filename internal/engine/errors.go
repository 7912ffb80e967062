package engine

import "errors"

var (
	// ErrInvalidSecret is returned when a session is started with a secret
	// outside [MinSecret, MaxSecret] or one that is not an integer.
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrInconsistentFeedback is returned when feedback contradicts what the
	// engine already knows: the narrowed range would be empty, or the secret
	// would fall outside it. The engine state is left untouched.
	ErrInconsistentFeedback = errors.New("inconsistent feedback")

	// ErrFinished is returned by operations that need an active session.
	ErrFinished = errors.New("session finished")

	// ErrNoGuess is returned when feedback arrives before a guess was made.
	ErrNoGuess = errors.New("no guess to answer")

	// ErrUnknownFeedback is returned when a Feedback value is not one of
	// Higher, Lower or Correct.
	ErrUnknownFeedback = errors.New("unknown feedback")
)
