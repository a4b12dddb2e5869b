// Package palette holds the palette entities: named colors, theme colors
// with their variants, themes and the palette that groups them. Entities
// are mutable and keep their parent links consistent in both directions.
package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// NormalizeName strips one leading "--" and reports whether the rest is a
// valid CSS custom property name.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimPrefix(name, "--")
	return name, identPattern.MatchString(name)
}

// Color is a named color value with an optional foreground. A missing
// foreground is resolved on first use to the best contrasting candidate.
type Color struct {
	name  string
	value color.Value
	fg    color.Value
}

// NewColor validates the name and value. fg may be nil.
func NewColor(name string, value, fg color.Value) (*Color, error) {
	c := &Color{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetValue(value); err != nil {
		return nil, err
	}
	c.fg = fg
	return c, nil
}

// ColorFromCSS parses css and builds a Color without a foreground.
func ColorFromCSS(name, css string) (*Color, error) {
	value, err := color.Parse(css)
	if err != nil {
		return nil, err
	}
	return NewColor(name, value, nil)
}

// Name returns the name without the leading "--".
func (c *Color) Name() string {
	return c.name
}

// SetName validates and stores a new name.
func (c *Color) SetName(name string) error {
	normalized, ok := NormalizeName(name)
	if !ok {
		return palerrors.NewValidationError("name", fmt.Sprintf("invalid color name %q", name), nil)
	}
	c.name = normalized
	return nil
}

// Value returns the color value.
func (c *Color) Value() color.Value {
	return c.value
}

// SetValue replaces the color value. A resolved foreground is kept.
func (c *Color) SetValue(value color.Value) error {
	if value == nil {
		return palerrors.NewValidationError("value", "color value is required", nil)
	}
	c.value = value
	return nil
}

// Fg returns the foreground, resolving it first when unset.
func (c *Color) Fg() (color.Value, error) {
	if c.fg == nil {
		if err := c.FindBestForeground(); err != nil {
			return nil, err
		}
	}
	return c.fg, nil
}

// HasFg reports whether a foreground is set or already resolved.
func (c *Color) HasFg() bool {
	return c.fg != nil
}

// SetFg sets the foreground. nil restores automatic resolution.
func (c *Color) SetFg(fg color.Value) {
	c.fg = fg
}

// FindBestForeground picks the foreground among black, white and the
// complementary color.
func (c *Color) FindBestForeground() error {
	black, err := color.Black()
	if err != nil {
		return err
	}
	white, err := color.White()
	if err != nil {
		return err
	}
	return c.FindBestForegroundAmong([]color.Value{black, white}, true)
}

// FindBestForegroundAmong picks the best contrasting candidate, optionally
// adding the complementary color to the set.
func (c *Color) FindBestForegroundAmong(candidates []color.Value, includeComplementary bool) error {
	pool := make([]color.Value, 0, len(candidates)+1)
	pool = append(pool, candidates...)
	if includeComplementary {
		comp, err := color.Complementary(c.value)
		if err != nil {
			return err
		}
		pool = append(pool, comp)
	}

	best, ok, err := color.PickBestContrast(c.value, pool)
	if err != nil {
		return err
	}
	if !ok {
		return palerrors.NewValidationError("fg", "no foreground candidates", nil)
	}
	c.fg = best
	return nil
}

// CSSVariableName returns "--name".
func (c *Color) CSSVariableName() string {
	return "--" + c.name
}

// FgCSSVariableName returns "--name-fg".
func (c *Color) FgCSSVariableName() string {
	return "--" + c.name + "-fg"
}

// CSSVariableReference returns "var(--name)".
func (c *Color) CSSVariableReference() string {
	return "var(" + c.CSSVariableName() + ")"
}

// FgCSSVariableReference returns "var(--name-fg)".
func (c *Color) FgCSSVariableReference() string {
	return "var(" + c.FgCSSVariableName() + ")"
}

// CSSDeclaration renders the value as an eight digit hex custom property.
func (c *Color) CSSDeclaration() (string, error) {
	hex, err := hex8(c.value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s;", c.CSSVariableName(), hex), nil
}

// FgCSSDeclaration renders the foreground custom property.
func (c *Color) FgCSSDeclaration() (string, error) {
	fg, err := c.Fg()
	if err != nil {
		return "", err
	}
	hex, err := hex8(fg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s;", c.FgCSSVariableName(), hex), nil
}

// ConvertTo replaces the value with its hex, rgba or hsla form.
func (c *Color) ConvertTo(format string) error {
	converted, err := color.To(c.value, format)
	if err != nil {
		return err
	}
	c.value = converted
	return nil
}

// Clone copies the name and value. The foreground is not carried over.
func (c *Color) Clone() *Color {
	return &Color{name: c.name, value: c.value.Clone()}
}

func hex8(v color.Value) (string, error) {
	rgba, err := color.ToRGBA(v)
	if err != nil {
		return "", err
	}
	hex, err := color.RGBAToHex(rgba)
	if err != nil {
		return "", err
	}
	return hex.CSS(), nil
}
