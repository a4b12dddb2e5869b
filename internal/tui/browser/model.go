// Package browser is an interactive terminal browser for a palette: themes
// as tabs, theme colors as a list, and the selected swatch with its
// variants rendered as cards.
package browser

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/ui/swatch"
)

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// Model is the browser state.
type Model struct {
	palette  *palette.Palette
	renderer *swatch.Renderer

	themeIndex  int
	colorIndex  int
	swatchIndex int // 0 is the main color, then variants in order

	keys     keyMap
	help     help.Model
	showHelp bool

	clipboard Clipboard
	notice    string
	err       error

	width  int
	height int
}

// Option customizes a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard.
func WithClipboard(clip Clipboard) Option {
	return func(m *Model) {
		m.clipboard = clip
	}
}

// NewModel builds a browser over p.
func NewModel(p *palette.Palette, renderer *swatch.Renderer, opts ...Option) Model {
	m := Model{
		palette:   p,
		renderer:  renderer,
		keys:      defaultKeyMap(),
		help:      help.New(),
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	for i, t := range p.Themes() {
		if t.Name() == p.DefaultThemeName() {
			m.themeIndex = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentTheme returns the selected theme, or nil for an empty palette.
func (m Model) CurrentTheme() *palette.Theme {
	themes := m.palette.Themes()
	if m.themeIndex >= len(themes) {
		return nil
	}
	return themes[m.themeIndex]
}

// CurrentColor returns the selected theme color.
func (m Model) CurrentColor() *palette.ThemeColor {
	theme := m.CurrentTheme()
	if theme == nil {
		return nil
	}
	colors := theme.Colors()
	if m.colorIndex >= len(colors) {
		return nil
	}
	return colors[m.colorIndex]
}

// CurrentSwatch returns the selected main color or variant.
func (m Model) CurrentSwatch() *palette.Color {
	tc := m.CurrentColor()
	if tc == nil {
		return nil
	}
	if m.swatchIndex == 0 {
		return tc.Main()
	}
	vs := tc.Variants()
	if m.swatchIndex > len(vs) {
		return tc.Main()
	}
	return vs[m.swatchIndex-1]
}

func (m *Model) moveTheme(delta int) {
	n := len(m.palette.Themes())
	if n == 0 {
		return
	}
	m.themeIndex = (m.themeIndex + delta + n) % n
	m.colorIndex = 0
	m.swatchIndex = 0
}

func (m *Model) moveColor(delta int) {
	theme := m.CurrentTheme()
	if theme == nil {
		return
	}
	m.colorIndex = clamp(m.colorIndex+delta, len(theme.Colors())-1)
	m.swatchIndex = 0
}

func (m *Model) moveSwatch(delta int) {
	tc := m.CurrentColor()
	if tc == nil {
		return
	}
	m.swatchIndex = clamp(m.swatchIndex+delta, len(tc.Variants()))
}

func clamp(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
