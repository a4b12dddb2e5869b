package palette

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/palettegen/internal/variants"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// DefaultThemeName is the theme colors land in when none is named.
const DefaultThemeName = "default"

// Palette is a named, ordered collection of themes.
type Palette struct {
	name         string
	defaultTheme string
	themes       []*Theme
	clock        func() time.Time
}

// Option customizes a palette.
type Option func(*Palette)

// WithClock sets the time source used for CSS date stamps.
func WithClock(clock func() time.Time) Option {
	return func(p *Palette) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithDefaultTheme overrides the fallback theme name.
func WithDefaultTheme(name string) Option {
	return func(p *Palette) {
		if name != "" {
			p.defaultTheme = name
		}
	}
}

// New creates an empty palette. The name must not be blank.
func New(name string, opts ...Option) (*Palette, error) {
	p := &Palette{defaultTheme: DefaultThemeName, clock: time.Now}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// SetName renames the palette.
func (p *Palette) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return palerrors.NewValidationError("name", "palette name is required", nil)
	}
	p.name = name
	return nil
}

// DefaultThemeName returns the fallback theme name.
func (p *Palette) DefaultThemeName() string { return p.defaultTheme }

// Themes returns a copy of the theme list.
func (p *Palette) Themes() []*Theme {
	out := make([]*Theme, len(p.themes))
	copy(out, p.themes)
	return out
}

// SetThemes detaches every current theme and adopts themes.
func (p *Palette) SetThemes(themes []*Theme) error {
	for i, t := range themes {
		if t == nil {
			return palerrors.NewValidationError(fmt.Sprintf("themes[%d]", i), "theme is required", nil)
		}
	}
	for _, t := range p.Themes() {
		p.RemoveTheme(t)
	}
	for _, t := range themes {
		p.AddTheme(t)
	}
	return nil
}

// Theme finds a theme by name.
func (p *Palette) Theme(name string) (*Theme, bool) {
	for _, t := range p.themes {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// HasTheme reports membership by identity.
func (p *Palette) HasTheme(t *Theme) bool {
	for _, existing := range p.themes {
		if existing == t {
			return true
		}
	}
	return false
}

// AddTheme appends t once and takes ownership.
func (p *Palette) AddTheme(t *Theme) {
	if t == nil {
		return
	}
	if !p.HasTheme(t) {
		p.themes = append(p.themes, t)
	}
	if t.palette != p {
		if t.palette != nil {
			t.palette.RemoveTheme(t)
		}
		t.palette = p
	}
}

// RemoveTheme drops t and clears its palette link when it points here.
func (p *Palette) RemoveTheme(t *Theme) {
	if p == nil || t == nil {
		return
	}
	for i, existing := range p.themes {
		if existing == t {
			p.themes = append(p.themes[:i], p.themes[i+1:]...)
			break
		}
	}
	if t.palette == p {
		t.palette = nil
	}
}

// ThemeOrDefault returns the named theme, else the default theme, creating
// the default theme when it does not exist yet.
func (p *Palette) ThemeOrDefault(name string) (*Theme, error) {
	if t, ok := p.Theme(name); ok {
		return t, nil
	}
	if t, ok := p.Theme(p.defaultTheme); ok {
		return t, nil
	}

	t, err := NewTheme(p.defaultTheme, false)
	if err != nil {
		return nil, err
	}
	p.AddTheme(t)
	return t, nil
}

// AddThemeColor wraps c in a theme color and files it under themeName, or
// the default theme when that does not exist.
func (p *Palette) AddThemeColor(c *Color, themeName string) (*ThemeColor, error) {
	t, err := p.ThemeOrDefault(themeName)
	if err != nil {
		return nil, err
	}
	tc, err := NewThemeColor(c)
	if err != nil {
		return nil, err
	}
	t.AddColor(tc)
	return tc, nil
}

// GenerateVariants regenerates the variants of every theme.
func (p *Palette) GenerateVariants(gen variants.Generator, opts variants.Options) error {
	for _, t := range p.themes {
		if err := t.GenerateVariants(gen, opts); err != nil {
			return err
		}
	}
	return nil
}

// DateStamp formats t the way CSS comments carry it.
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CSSLines renders the palette comment followed by every theme.
func (p *Palette) CSSLines() ([]string, error) {
	date := DateStamp(p.clock())
	lines := []string{fmt.Sprintf("/* PALETTE '%s' [%s] */", p.name, date)}
	for _, t := range p.themes {
		themeLines, err := t.CSSLines(date)
		if err != nil {
			return nil, err
		}
		lines = append(lines, themeLines...)
	}
	return lines, nil
}

// CSS joins the declaration lines with newlines.
func (p *Palette) CSS() (string, error) {
	lines, err := p.CSSLines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// MinifiedCSS joins the declaration lines without separators.
func (p *Palette) MinifiedCSS() (string, error) {
	lines, err := p.CSSLines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}
