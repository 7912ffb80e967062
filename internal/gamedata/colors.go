package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the hex colours used by the renderer, loaded from theme.json.
type Theme struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Background string `json:"background"`
}

// Palette is a Theme resolved to tcell colours.
type Palette struct {
	Primary    tcell.Color
	Accent     tcell.Color
	Text       tcell.Color
	Muted      tcell.Color
	Background tcell.Color
}

// LoadTheme loads the theme from the embedded theme.json file.
func LoadTheme() (Theme, error) {
	return Load[Theme]("theme.json")
}

// Palette resolves every theme colour. Invalid entries fall back to white.
func (t Theme) Palette() Palette {
	return Palette{
		Primary:    colorOr(t.Primary, tcell.ColorWhite),
		Accent:     colorOr(t.Accent, tcell.ColorWhite),
		Text:       colorOr(t.Text, tcell.ColorWhite),
		Muted:      colorOr(t.Muted, tcell.ColorGray),
		Background: colorOr(t.Background, tcell.ColorBlack),
	}
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
