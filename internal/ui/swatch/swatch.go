// Package swatch renders colors, theme colors, themes and palettes as
// terminal swatch cards: a block filled with the color, sample text in the
// foreground, the contrast ratio graded against WCAG and the color name.
package swatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
)

const (
	cardWidth = 14
	cardGap   = 1
)

// Renderer draws swatch cards for one output.
type Renderer struct {
	lg     *lipgloss.Renderer
	color  bool
	width  int
	styles styles
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithColor forces color output on or off regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
		if enabled {
			r.lg.SetColorProfile(termenv.TrueColor)
		} else {
			r.lg.SetColorProfile(termenv.Ascii)
		}
	}
}

// WithWidth wraps rows of cards at width columns. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// NewRenderer detects the color profile of w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.NewRenderer(w), color: true}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = newStyles(r.lg)
	return r
}

// SwatchCard renders a single color.
func (r *Renderer) SwatchCard(c *palette.Color) (string, error) {
	fg, err := c.Fg()
	if err != nil {
		return "", err
	}
	info, err := color.Contrast(c.Value(), fg)
	if err != nil {
		return "", err
	}

	bg, err := hex6(c.Value())
	if err != nil {
		return "", err
	}
	text, err := hex6(fg)
	if err != nil {
		return "", err
	}

	preview := r.styles.preview
	if r.color {
		preview = preview.
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(text))
	}

	grade := info.Grade()
	body := lipgloss.JoinVertical(lipgloss.Left,
		preview.Render("Aa\n"+info.RatioLabel()),
		r.styles.name.Render(c.Name()),
		r.GradeStyle(grade).Render(string(grade)),
	)
	return body, nil
}

// ColorCard renders the main swatch of a theme color followed by its variants.
func (r *Renderer) ColorCard(tc *palette.ThemeColor) (string, error) {
	colors := append([]*palette.Color{tc.Main()}, tc.Variants()...)
	cards := make([]string, 0, len(colors))
	for _, c := range colors {
		card, err := r.SwatchCard(c)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}
	return r.row(cards), nil
}

// ThemeCard renders a bordered block with one row per theme color.
func (r *Renderer) ThemeCard(t *palette.Theme) (string, error) {
	header := t.Name()
	if t.AutoDetect() {
		header += r.styles.muted.Render(" (prefers-color-scheme)")
	}

	rows := []string{r.styles.title.Render(header)}
	for _, tc := range t.Colors() {
		row, err := r.ColorCard(tc)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}
	if len(t.Colors()) == 0 {
		rows = append(rows, r.styles.muted.Render("no colors"))
	}

	return r.styles.theme.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)), nil
}

// PaletteCard stacks every theme card under the palette title.
func (r *Renderer) PaletteCard(p *palette.Palette) (string, error) {
	parts := []string{r.styles.title.Render(p.Name())}
	for _, t := range p.Themes() {
		card, err := r.ThemeCard(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
}

// row joins cards horizontally, wrapping to the configured width.
func (r *Renderer) row(cards []string) string {
	perLine := len(cards)
	if r.width > 0 {
		perLine = r.width / (cardWidth + cardGap)
		if perLine < 1 {
			perLine = 1
		}
	}

	gap := strings.Repeat(" ", cardGap)
	var lines []string
	for start := 0; start < len(cards); start += perLine {
		end := min(start+perLine, len(cards))
		spaced := make([]string, 0, 2*(end-start))
		for i, card := range cards[start:end] {
			if i > 0 {
				spaced = append(spaced, gap)
			}
			spaced = append(spaced, card)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, spaced...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// hex6 drops alpha; terminals cannot blend.
func hex6(v color.Value) (string, error) {
	rgba, err := color.ToRGBA(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R(), rgba.G(), rgba.B()), nil
}
