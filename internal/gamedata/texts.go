package gamedata

import (
	"strconv"
	"strings"
)

// Texts holds the copy shown on each screen, loaded from texts.json.
type Texts struct {
	Title string     `json:"title"`
	Start StartTexts `json:"start"`
	Play  PlayTexts  `json:"play"`
	Over  OverTexts  `json:"over"`
}

// StartTexts is the copy for the number entry screen.
type StartTexts struct {
	Title        string `json:"title"`
	Prompt       string `json:"prompt"`
	Selected     string `json:"selected"`
	StartButton  string `json:"startButton"`
	Help         string `json:"help"`
	InvalidTitle string `json:"invalidTitle"`
	InvalidBody  string `json:"invalidBody"`
}

// PlayTexts is the copy for the guessing screen.
type PlayTexts struct {
	Title string `json:"title"`
	Round string `json:"round"` // {rounds}
	Help  string `json:"help"`
	Lie   string `json:"lie"`
}

// OverTexts is the copy for the summary screen.
type OverTexts struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"` // {rounds}, {secret}
	RestartButton string `json:"restartButton"`
	Help          string `json:"help"`
}

// LoadTexts loads screen copy from the embedded texts.json file.
func LoadTexts() (Texts, error) {
	return Load[Texts]("texts.json")
}

// Format replaces {rounds} and {secret} placeholders in s.
func Format(s string, rounds, secret int) string {
	return strings.NewReplacer(
		"{rounds}", strconv.Itoa(rounds),
		"{secret}", strconv.Itoa(secret),
	).Replace(s)
}
