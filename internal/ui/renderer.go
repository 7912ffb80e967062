package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/guessanumber/internal/gamedata"
)

// ViewKind selects which screen the renderer draws.
type ViewKind int

const (
	// ViewStart asks the player to pick a secret number.
	ViewStart ViewKind = iota
	// ViewPlaying shows the current guess and the remaining range.
	ViewPlaying
	// ViewOver shows the summary once the number is found.
	ViewOver
)

// View is a snapshot of everything the renderer needs for one frame.
type View struct {
	Kind     ViewKind
	Input    string // digits typed so far
	Selected int    // confirmed number, 0 if none
	Guess    int
	Low      int
	High     int
	Rounds   int
	Secret   int
	Message  string
	Alert    bool // Message is an error
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	texts   gamedata.Texts
	palette gamedata.Palette
	base    tcell.Style
}

// NewRenderer creates a new renderer for the given screen. The screen is
// cleared to the palette background from then on.
func NewRenderer(screen *Screen, texts gamedata.Texts, palette gamedata.Palette) *Renderer {
	base := tcell.StyleDefault.Background(palette.Background).Foreground(palette.Text)
	screen.SetStyle(base)
	return &Renderer{screen: screen, texts: texts, palette: palette, base: base}
}

// Render draws the header and the view for the current screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	header := r.base.Background(r.palette.Primary).Bold(true)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', header)
		r.screen.SetContent(x, 1, ' ', header)
		r.screen.SetContent(x, 2, ' ', header)
	}
	r.screen.DrawCentered(1, r.texts.Title, header)

	switch v.Kind {
	case ViewStart:
		r.renderStart(v)
	case ViewPlaying:
		r.renderPlaying(v)
	case ViewOver:
		r.renderOver(v)
	}

	if v.Message != "" {
		style := r.base
		if v.Alert {
			style = style.Foreground(r.palette.Primary).Bold(true)
		}
		r.screen.DrawCentered(height-3, v.Message, style)
	}

	r.screen.Show()
}

func (r *Renderer) renderStart(v View) {
	title := r.base.Bold(true)
	body := r.base

	r.screen.DrawCentered(4, r.texts.Start.Title, title)
	r.screen.DrawCentered(6, r.texts.Start.Prompt, body)
	r.screen.DrawCentered(7, fmt.Sprintf("[ %-2s ]", v.Input), r.base.Foreground(r.palette.Accent))

	if v.Selected > 0 {
		r.screen.DrawCentered(10, r.texts.Start.Selected, body)
		r.drawNumber(11, v.Selected)
		r.screen.DrawCentered(15, r.texts.Start.StartButton, r.base.Background(r.palette.Primary))
	}

	r.drawHelp(r.texts.Start.Help)
}

func (r *Renderer) renderPlaying(v View) {
	body := r.base

	r.screen.DrawCentered(4, r.texts.Play.Title, body.Bold(true))
	r.drawNumber(6, v.Guess)
	r.screen.DrawCentered(10, gamedata.Format(r.texts.Play.Round, v.Rounds, v.Secret), body)
	r.screen.DrawCentered(11, fmt.Sprintf("%d .. %d", v.Low, v.High), r.base.Foreground(r.palette.Muted))

	r.drawHelp(r.texts.Play.Help)
}

func (r *Renderer) renderOver(v View) {
	body := r.base

	r.screen.DrawCentered(4, r.texts.Over.Title, body.Bold(true))
	r.screen.DrawCentered(7, gamedata.Format(r.texts.Over.Summary, v.Rounds, v.Secret), body)
	r.screen.DrawCentered(10, r.texts.Over.RestartButton, r.base.Background(r.palette.Primary))

	r.drawHelp(r.texts.Over.Help)
}

// drawNumber draws n inside a three-row accent box starting at row y.
func (r *Renderer) drawNumber(y, n int) {
	style := r.base.Foreground(r.palette.Accent).Bold(true)
	label := strconv.Itoa(n)
	border := "+" + repeat('-', len(label)+4) + "+"

	r.screen.DrawCentered(y, border, style)
	r.screen.DrawCentered(y+1, "|  "+label+"  |", style)
	r.screen.DrawCentered(y+2, border, style)
}

func (r *Renderer) drawHelp(text string) {
	_, height := r.screen.Size()
	r.screen.DrawCentered(height-1, text, r.base.Foreground(r.palette.Muted))
}

func repeat(ch rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = ch
	}
	return string(out)
}
