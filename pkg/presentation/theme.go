// Package presentation holds display concerns that sit on top of the EMI
// numbers: the light/dark palettes and the principal versus interest chart.
package presentation

import (
	"fmt"
	"strings"
)

// Mode is the active display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode validates a mode name; an empty name selects Light.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("expected display mode of %s or %s, got %s", Light, Dark, name)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette is the set of colours used for one mode.
type Palette struct {
	Mode      Mode   `json:"mode"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Accent    string `json:"accent"`
	Text      string `json:"text"`
	Muted     string `json:"muted"`
}

var palettes = map[Mode]Palette{
	Light: {
		Mode:      Light,
		Principal: "#9b87f5",
		Interest:  "#E5DEFF",
		Accent:    "#9b87f5",
		Text:      "#1e293b",
		Muted:     "#64748b",
	},
	Dark: {
		Mode:      Dark,
		Principal: "#7E69AB",
		Interest:  "#473b63",
		Accent:    "#7E69AB",
		Text:      "#e2e8f0",
		Muted:     "#94a3b8",
	},
}

// PaletteFor returns the palette for a mode, falling back to Light.
func PaletteFor(m Mode) Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Light]
}
