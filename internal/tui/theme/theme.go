// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Theme struct {
	Enabled bool
	Mode    Mode
	Dialog  DialogStyles
	Huh     *huh.Theme
}

type DialogStyles struct {
	Frame         lipgloss.Style
	Title         lipgloss.Style
	Message       lipgloss.Style
	Item          lipgloss.Style
	ItemSelected  lipgloss.Style
	Cursor        lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Hint          lipgloss.Style
	Dim           lipgloss.Style
}

type manager struct {
	mu     sync.Mutex
	cached *Theme
}

var global = &manager{}

func ForOutput(out io.Writer) Theme {
	if !EnabledForOutput(out) {
		return Plain()
	}
	return global.theme()
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Plain returns colourless styles; the frame and padding are kept so the
// dialog still reads as a box.
func Plain() Theme {
	return Theme{
		Dialog: DialogStyles{
			Frame:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Title:         lipgloss.NewStyle(),
			Message:       lipgloss.NewStyle(),
			Item:          lipgloss.NewStyle(),
			ItemSelected:  lipgloss.NewStyle(),
			Cursor:        lipgloss.NewStyle(),
			Button:        lipgloss.NewStyle().Padding(0, 1),
			ButtonFocused: lipgloss.NewStyle().Padding(0, 1),
			Hint:          lipgloss.NewStyle(),
			Dim:           lipgloss.NewStyle(),
		},
	}
}

func (m *manager) theme() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cached == nil {
		t := buildTheme(paletteFromEnv())
		m.cached = &t
	}
	return *m.cached
}

type tokens struct {
	accent     string
	muted      string
	label      string
	value      string
	helpHeader string
	error      string
	border     string
	selection  string
}

var darkTokens = tokens{
	accent:     "213",
	muted:      "243",
	label:      "244",
	value:      "252",
	helpHeader: "81",
	error:      "203",
	border:     "240",
	selection:  "237",
}

var lightTokens = tokens{
	accent:     "163",
	muted:      "240",
	label:      "238",
	value:      "234",
	helpHeader: "23",
	error:      "160",
	border:     "245",
	selection:  "254",
}

func buildTheme(palette Palette) Theme {
	mode := modeFromPalette(palette)
	if mode == ModeUnknown {
		mode = ModeDark
	}

	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}

	dialog := DialogStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(pal.border)).
			Padding(0, 1),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.helpHeader)),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		ItemSelected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(pal.selection)),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.accent)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.label)).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(pal.accent)).
			Padding(0, 1),
		Hint: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color(pal.border)),
	}

	return Theme{
		Enabled: true,
		Mode:    mode,
		Dialog:  dialog,
		Huh:     buildHuhTheme(pal),
	}
}
