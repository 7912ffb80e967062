package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/guessanumber/internal/engine"
	"github.com/samdwyer/guessanumber/internal/gamedata"
	"github.com/samdwyer/guessanumber/internal/ui"
)

// Game ties a Session to a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      zerolog.Logger
	running  bool
	closed   bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, log zerolog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, log)
}

func newGame(screen *ui.Screen, cfg Config, log zerolog.Logger) (*Game, error) {
	texts, err := gamedata.LoadTexts()
	if err != nil {
		screen.Close()
		return nil, err
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, texts, theme.Palette()),
		session:  NewSession(cfg, texts, log),
		log:      log,
		running:  true,
	}, nil
}

// Session exposes the game's session, e.g. to set OnGameOver.
func (g *Game) Session() *Session { return g.session }

// Run executes the main game loop until the user quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks, so cancellation has to arrive as an event.
	go func() {
		select {
		case <-ctx.Done():
			if err := g.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				g.log.Warn().Err(err).Msg("post interrupt")
			}
		case <-done:
		}
	}()

	for g.running && ctx.Err() == nil {
		g.renderer.Render(g.session.View())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		g.log.Debug().Msg("interrupted")
		g.running = false
	case nil:
		// screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input for the current screen.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
		g.running = false
		return
	}

	var err error
	switch g.session.State() {
	case StateStart:
		err = g.handleStartKey(ctx, ev)
	case StatePlaying:
		err = g.handlePlayingKey(ctx, ev)
	case StateOver:
		g.handleOverKey(ev)
	}
	if err != nil {
		g.log.Debug().Err(err).Str("state", g.session.State().String()).Msg("key rejected")
	}
}

func (g *Game) handleStartKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		g.session.Backspace()
	case tcell.KeyEnter:
		// Enter confirms what was typed; with nothing typed it starts the game.
		if g.session.Selected() > 0 && g.session.Input() == "" {
			return g.session.StartGame(ctx)
		}
		return g.session.Confirm()
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'r', 'R':
			g.session.ResetInput()
		default:
			g.session.TypeDigit(r)
		}
	}
	return nil
}

func (g *Game) handlePlayingKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyDown:
		return g.session.Answer(ctx, engine.Lower)
	case tcell.KeyRight, tcell.KeyUp:
		return g.session.Answer(ctx, engine.Higher)
	case tcell.KeyRune:
		fb, err := engine.ParseFeedback(string(ev.Rune()))
		if err != nil {
			return nil
		}
		return g.session.Answer(ctx, fb)
	}
	return nil
}

func (g *Game) handleOverKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N')) {
		g.session.Restart()
	}
}

// Close restores the terminal. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil && !g.closed {
		g.closed = true
		g.screen.Close()
	}
}
