// Package game provides the main game loop and state management.
package game

import "github.com/samdwyer/guessanumber/internal/ui"

// State represents which screen the host is showing.
type State int

const (
	// StateStart is the number entry screen shown when the game opens.
	StateStart State = iota
	// StatePlaying is the guessing screen, one engine round at a time.
	StatePlaying
	// StateOver is the summary screen shown after a correct guess.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

func (s State) viewKind() ui.ViewKind {
	switch s {
	case StatePlaying:
		return ui.ViewPlaying
	case StateOver:
		return ui.ViewOver
	default:
		return ui.ViewStart
	}
}
