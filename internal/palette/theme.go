package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/palettegen/internal/variants"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// Theme is a named set of theme colors. An auto-detected theme is emitted
// under a prefers-color-scheme media query instead of a class selector.
type Theme struct {
	name       string
	autoDetect bool
	colors     []*ThemeColor
	palette    *Palette
}

// NewTheme validates the name, which becomes part of CSS selectors.
func NewTheme(name string, autoDetect bool) (*Theme, error) {
	t := &Theme{autoDetect: autoDetect}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// ValidThemeName reports whether name can be used as a theme name. Unlike
// color names, a leading "--" is not stripped.
func ValidThemeName(name string) bool {
	return identPattern.MatchString(name)
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.name }

// SetName validates and stores a new name.
func (t *Theme) SetName(name string) error {
	if !ValidThemeName(name) {
		return palerrors.NewValidationError("theme", fmt.Sprintf("invalid theme name %q", name), nil)
	}
	t.name = name
	return nil
}

// AutoDetect reports whether the theme follows prefers-color-scheme.
func (t *Theme) AutoDetect() bool { return t.autoDetect }

// SetAutoDetect toggles media query emission.
func (t *Theme) SetAutoDetect(v bool) { t.autoDetect = v }

// Palette returns the owning palette, or nil.
func (t *Theme) Palette() *Palette { return t.palette }

// SetPalette moves the theme to p. A nil palette only detaches.
func (t *Theme) SetPalette(p *Palette) {
	if t.palette == p {
		return
	}
	if p == nil {
		t.palette.RemoveTheme(t)
		return
	}
	p.AddTheme(t)
}

// Colors returns a copy of the color list.
func (t *Theme) Colors() []*ThemeColor {
	out := make([]*ThemeColor, len(t.colors))
	copy(out, t.colors)
	return out
}

// SetColors detaches every current color and adopts colors.
func (t *Theme) SetColors(colors []*ThemeColor) error {
	for i, c := range colors {
		if c == nil {
			return palerrors.NewValidationError(fmt.Sprintf("colors[%d]", i), "theme color is required", nil)
		}
	}
	for _, c := range t.Colors() {
		t.RemoveColor(c)
	}
	for _, c := range colors {
		t.AddColor(c)
	}
	return nil
}

// HasColor reports membership by identity.
func (t *Theme) HasColor(c *ThemeColor) bool {
	for _, existing := range t.colors {
		if existing == c {
			return true
		}
	}
	return false
}

// Color finds a theme color by name.
func (t *Theme) Color(name string) (*ThemeColor, bool) {
	for _, c := range t.colors {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// AddColor appends c once and takes ownership, removing it from any
// previous theme.
func (t *Theme) AddColor(c *ThemeColor) {
	if c == nil {
		return
	}
	if !t.HasColor(c) {
		t.colors = append(t.colors, c)
	}
	if c.theme != t {
		if c.theme != nil {
			c.theme.RemoveColor(c)
		}
		c.theme = t
	}
}

// RemoveColor drops c and clears its theme link when it points here.
func (t *Theme) RemoveColor(c *ThemeColor) {
	if t == nil || c == nil {
		return
	}
	for i, existing := range t.colors {
		if existing == c {
			t.colors = append(t.colors[:i], t.colors[i+1:]...)
			break
		}
	}
	if c.theme == t {
		c.theme = nil
	}
}

// GenerateVariants regenerates the variants of every color.
func (t *Theme) GenerateVariants(gen variants.Generator, opts variants.Options) error {
	for _, c := range t.colors {
		if err := c.GenerateVariants(gen, opts); err != nil {
			return fmt.Errorf("theme %s: color %s: %w", t.name, c.Name(), err)
		}
	}
	return nil
}

// CSSLines renders the theme block.
func (t *Theme) CSSLines(date string) ([]string, error) {
	lines := []string{fmt.Sprintf("/* THEME '%s' [%s] */", t.name, date)}
	if t.autoDetect {
		lines = append(lines, fmt.Sprintf("@media (prefers-color-scheme: %s) {", t.name), ":root {")
	} else {
		lines = append(lines, fmt.Sprintf(".theme-%s {", t.name))
	}

	for _, c := range t.colors {
		colorLines, err := c.CSSLines(date)
		if err != nil {
			return nil, err
		}
		lines = append(lines, colorLines...)
	}

	if t.autoDetect {
		lines = append(lines, "}", "}")
	} else {
		lines = append(lines, "}")
	}
	return lines, nil
}
