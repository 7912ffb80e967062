package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guessanumber/internal/engine"
	"github.com/samdwyer/guessanumber/internal/gamedata"
	"github.com/samdwyer/guessanumber/internal/telemetry"
	"github.com/samdwyer/guessanumber/internal/ui"
)

const maxInputLen = 2

var (
	// ErrInvalidNumber is returned by Confirm when the entry is not a
	// number between 1 and 99.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNotConfirmed is returned by StartGame before a number was confirmed.
	ErrNotConfirmed = errors.New("no number confirmed")
	// ErrWrongState is returned when an action does not apply to the
	// current screen.
	ErrWrongState = errors.New("action not allowed on this screen")
)

// Session is the host side of the game: it moves between the start, playing
// and over screens and owns the engine for the current round trip.
type Session struct {
	cfg   Config
	texts gamedata.Texts
	log   zerolog.Logger
	rng   *rand.Rand

	state    State
	input    string
	selected int
	engine   *engine.Engine
	guess    int
	rounds   int
	message  string
	alert    bool

	// OnGameOver is called once per game with the final round count.
	OnGameOver func(rounds, secret int)
}

// NewSession creates a session on the start screen.
func NewSession(cfg Config, texts gamedata.Texts, log zerolog.Logger) *Session {
	return &Session{
		cfg:   cfg,
		texts: texts,
		log:   log,
		rng:   cfg.newRand(),
		state: StateStart,
	}
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Input returns the digits typed so far.
func (s *Session) Input() string { return s.input }

// Selected returns the confirmed number, or 0.
func (s *Session) Selected() int { return s.selected }

// Guess returns the engine's current guess while playing.
func (s *Session) Guess() int { return s.guess }

// Rounds returns the final round count once the game is over, else 0.
func (s *Session) Rounds() int { return s.rounds }

// Message returns the last status or alert message.
func (s *Session) Message() string { return s.message }

// TypeDigit appends r to the entry. Non-digits and input past two
// characters are ignored.
func (s *Session) TypeDigit(r rune) {
	if s.state != StateStart || r < '0' || r > '9' || len(s.input) >= maxInputLen {
		return
	}
	s.input += string(r)
	s.clearMessage()
}

// Backspace deletes the last typed digit.
func (s *Session) Backspace() {
	if s.state != StateStart || s.input == "" {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// ResetInput clears the entry and any confirmed number.
func (s *Session) ResetInput() {
	if s.state != StateStart {
		return
	}
	s.input = ""
	s.selected = 0
	s.clearMessage()
}

// Confirm validates the entry and, if valid, selects it as the secret.
// An invalid entry is cleared and an alert message is set.
func (s *Session) Confirm() error {
	if s.state != StateStart {
		return ErrWrongState
	}

	n, err := engine.ParseSecret(s.input)
	if err != nil {
		s.log.Debug().Str("input", s.input).Msg("rejected number")
		s.ResetInput()
		s.setAlert(s.texts.Start.InvalidTitle + " " + s.texts.Start.InvalidBody)
		return fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}

	s.selected = n
	s.input = ""
	s.clearMessage()
	return nil
}

// StartGame creates an engine for the confirmed number and makes its first guess.
func (s *Session) StartGame(ctx context.Context) error {
	if s.state != StateStart {
		return ErrWrongState
	}
	if s.selected == 0 {
		return ErrNotConfirmed
	}

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "session.start")
	defer span.End()

	e, err := engine.Start(s.selected,
		engine.WithPolicy(s.cfg.Policy),
		engine.WithRand(s.rng),
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("start engine: %w", err)
	}
	span.SetAttributes(
		attribute.Int("secret", s.selected),
		attribute.String("policy", e.Policy().String()),
	)

	s.engine = e
	s.rounds = 0
	s.state = StatePlaying
	s.clearMessage()
	s.log.Info().Int("secret", s.selected).Str("policy", e.Policy().String()).Msg("game started")

	return s.nextGuess()
}

// Answer applies the user's feedback to the current guess. Contradictory
// feedback is refused with engine.ErrInconsistentFeedback and the same
// guess stays on screen.
func (s *Session) Answer(ctx context.Context, fb engine.Feedback) error {
	if s.state != StatePlaying || s.engine == nil {
		return ErrWrongState
	}

	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.round")
	defer span.End()

	span.SetAttributes(
		attribute.Int("round", s.engine.RoundCount()),
		attribute.Int("guess", s.guess),
		attribute.String("feedback", fb.String()),
	)

	if err := s.engine.ApplyFeedback(fb); err != nil {
		if errors.Is(err, engine.ErrInconsistentFeedback) {
			span.SetAttributes(attribute.Bool("rejected", true))
			s.log.Warn().Int("guess", s.guess).Str("feedback", fb.String()).Msg("inconsistent feedback")
			s.setAlert(s.texts.Play.Lie)
		}
		return err
	}
	s.clearMessage()

	low, high := s.engine.Bounds()
	span.SetAttributes(attribute.Int("low", low), attribute.Int("high", high))

	if s.engine.IsFinished() {
		s.finish(ctx)
		return nil
	}
	return s.nextGuess()
}

// Restart returns to the start screen with nothing selected.
func (s *Session) Restart() {
	s.state = StateStart
	s.input = ""
	s.selected = 0
	s.engine = nil
	s.guess = 0
	s.rounds = 0
	s.clearMessage()
}

// View returns the render snapshot for the current screen.
func (s *Session) View() ui.View {
	v := ui.View{
		Kind:     s.state.viewKind(),
		Input:    s.input,
		Selected: s.selected,
		Guess:    s.guess,
		Rounds:   s.rounds,
		Secret:   s.selected,
		Message:  s.message,
		Alert:    s.alert,
	}
	if s.engine != nil {
		v.Low, v.High = s.engine.Bounds()
		if s.state == StatePlaying {
			v.Rounds = s.engine.RoundCount()
		}
	}
	return v
}

func (s *Session) nextGuess() error {
	guess, err := s.engine.NextGuess()
	if err != nil {
		return fmt.Errorf("next guess: %w", err)
	}
	s.guess = guess
	s.log.Debug().Int("guess", guess).Int("round", s.engine.RoundCount()).Msg("guess")
	return nil
}

func (s *Session) finish(ctx context.Context) {
	s.rounds = s.engine.RoundCount()
	s.state = StateOver

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "session.over")
	span.SetAttributes(
		attribute.Int("rounds", s.rounds),
		attribute.Int("secret", s.selected),
	)
	span.End()

	s.log.Info().Int("rounds", s.rounds).Int("secret", s.selected).Msg("game over")

	if s.OnGameOver != nil {
		s.OnGameOver(s.rounds, s.selected)
	}
}

func (s *Session) setAlert(msg string) {
	s.message = msg
	s.alert = true
}

func (s *Session) clearMessage() {
	s.message = ""
	s.alert = false
}
