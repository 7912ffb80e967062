package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/guessanumber/internal/gamedata"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	screen := NewScreenFrom(sim)
	return NewRenderer(screen, testTexts(t), testPalette(t)), sim
}

func testTexts(t *testing.T) gamedata.Texts {
	t.Helper()
	texts, err := gamedata.LoadTexts()
	if err != nil {
		t.Fatalf("LoadTexts() error = %v", err)
	}
	return texts
}

func testPalette(t *testing.T) gamedata.Palette {
	t.Helper()
	theme, err := gamedata.LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	return theme.Palette()
}

// screenText returns every row of the simulation screen joined by newlines.
func screenText(s tcell.Screen) string {
	width, height := s.Size()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := s.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRenderStart(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.Render(View{Kind: ViewStart, Input: "4"})
	text := screenText(sim)

	for _, want := range []string{"Guess a Number", "Start a New Game!", "Select a Number", "[ 4  ]"} {
		if !strings.Contains(text, want) {
			t.Errorf("start view missing %q", want)
		}
	}
	if strings.Contains(text, "START GAME") {
		t.Error("start button shown before a number was confirmed")
	}

	r.Render(View{Kind: ViewStart, Selected: 42})
	text = screenText(sim)
	for _, want := range []string{"You selected", "|  42  |", "START GAME"} {
		if !strings.Contains(text, want) {
			t.Errorf("confirmed start view missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.Render(View{Kind: ViewPlaying, Guess: 25, Low: 1, High: 49, Rounds: 2, Message: "Don't lie!", Alert: true})
	text := screenText(sim)

	for _, want := range []string{"Opponent's Guess", "|  25  |", "Round 2", "1 .. 49", "Don't lie!"} {
		if !strings.Contains(text, want) {
			t.Errorf("playing view missing %q", want)
		}
	}
}

func TestRenderOver(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.Render(View{Kind: ViewOver, Rounds: 7, Secret: 42})
	text := screenText(sim)

	for _, want := range []string{"The Game is Over!", "Your phone needed 7 rounds to guess the number 42.", "NEW GAME"} {
		if !strings.Contains(text, want) {
			t.Errorf("over view missing %q", want)
		}
	}
}

func TestDrawCenteredClampsToLeftEdge(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sim.SetSize(4, 1)
	defer sim.Fini()

	s := NewScreenFrom(sim)
	s.DrawCentered(0, "abcdef", tcell.StyleDefault)

	if r, _, _, _ := sim.GetContent(0, 0); r != 'a' {
		t.Errorf("GetContent(0, 0) = %q, want 'a'", r)
	}
}

func TestRenderFillsThemeBackground(t *testing.T) {
	r, sim := newTestRenderer(t)
	palette := testPalette(t)

	r.Render(View{Kind: ViewStart})

	_, _, style, _ := sim.GetContent(0, 5)
	fg, bg, _ := style.Decompose()
	if bg != palette.Background {
		t.Errorf("blank cell background = %v, want %v", bg, palette.Background)
	}
	if fg != palette.Text {
		t.Errorf("blank cell foreground = %v, want %v", fg, palette.Text)
	}

	_, _, style, _ = sim.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); bg != palette.Primary {
		t.Errorf("header background = %v, want %v", bg, palette.Primary)
	}
}
