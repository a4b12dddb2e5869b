package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// ThemeColor is a main color plus its variants, owned by at most one theme.
type ThemeColor struct {
	main     *Color
	variants []*Color
	theme    *Theme
}

var _ variants.Source = (*ThemeColor)(nil)

// NewThemeColor wraps main. The result belongs to no theme until added.
func NewThemeColor(main *Color) (*ThemeColor, error) {
	if main == nil {
		return nil, palerrors.NewValidationError("main", "theme color requires a main color", nil)
	}
	return &ThemeColor{main: main}, nil
}

// ThemeColorFromCSS parses css into the main color.
func ThemeColorFromCSS(name, css string) (*ThemeColor, error) {
	main, err := ColorFromCSS(name, css)
	if err != nil {
		return nil, err
	}
	return NewThemeColor(main)
}

// Main returns the main color.
func (tc *ThemeColor) Main() *Color { return tc.main }

// Name returns the main color name.
func (tc *ThemeColor) Name() string { return tc.main.Name() }

// SetName renames the main color.
func (tc *ThemeColor) SetName(name string) error { return tc.main.SetName(name) }

// Value returns the main color value.
func (tc *ThemeColor) Value() color.Value { return tc.main.Value() }

// SetValue replaces the main color value.
func (tc *ThemeColor) SetValue(v color.Value) error { return tc.main.SetValue(v) }

// Theme returns the owning theme, or nil.
func (tc *ThemeColor) Theme() *Theme { return tc.theme }

// SetTheme moves the color to t, detaching it from its previous theme.
// A nil theme only detaches.
func (tc *ThemeColor) SetTheme(t *Theme) {
	if tc.theme == t {
		return
	}
	if t == nil {
		tc.theme.RemoveColor(tc)
		return
	}
	t.AddColor(tc)
}

// MainName implements variants.Source.
func (tc *ThemeColor) MainName() string { return tc.main.Name() }

// MainValue implements variants.Source.
func (tc *ThemeColor) MainValue() color.Value { return tc.main.Value() }

// ThemeName implements variants.Source. It is empty without a theme.
func (tc *ThemeColor) ThemeName() string {
	if tc.theme == nil {
		return ""
	}
	return tc.theme.Name()
}

// Variants returns a copy of the variant list.
func (tc *ThemeColor) Variants() []*Color {
	out := make([]*Color, len(tc.variants))
	copy(out, tc.variants)
	return out
}

// SetVariants replaces every variant.
func (tc *ThemeColor) SetVariants(vs []*Color) error {
	for i, v := range vs {
		if v == nil {
			return palerrors.NewValidationError(fmt.Sprintf("variants[%d]", i), "variant must be a color", nil)
		}
	}
	tc.variants = append([]*Color(nil), vs...)
	return nil
}

// AddVariant appends a variant.
func (tc *ThemeColor) AddVariant(v *Color) error {
	if v == nil {
		return palerrors.NewValidationError("variant", "variant must be a color", nil)
	}
	tc.variants = append(tc.variants, v)
	return nil
}

// RemoveVariant drops v and reports whether it was present.
func (tc *ThemeColor) RemoveVariant(v *Color) bool {
	for i, existing := range tc.variants {
		if existing == v {
			tc.variants = append(tc.variants[:i], tc.variants[i+1:]...)
			return true
		}
	}
	return false
}

// Variant finds a variant by name.
func (tc *ThemeColor) Variant(name string) (*Color, bool) {
	for _, v := range tc.variants {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// GenerateVariants replaces the variants with the generator output.
func (tc *ThemeColor) GenerateVariants(gen variants.Generator, opts variants.Options) error {
	if gen == nil {
		return palerrors.NewValidationError("generator", "variants generator is required", nil)
	}

	generated, err := gen.Generate(tc, opts)
	if err != nil {
		return err
	}

	out := make([]*Color, 0, len(generated))
	for _, g := range generated {
		c, err := NewColor(g.Name, g.Value, nil)
		if err != nil {
			return err
		}
		out = append(out, c)
	}
	tc.variants = out
	return nil
}

// GenerateLightnessVariants runs the lightness generator.
func (tc *ThemeColor) GenerateLightnessVariants(opts variants.Options) error {
	return tc.GenerateVariants(variants.Lightness{}, opts)
}

// CSSLines renders the color comment, then the main and each variant
// declaration, each followed by its foreground.
func (tc *ThemeColor) CSSLines(date string) ([]string, error) {
	lines := []string{fmt.Sprintf("/* COLOR '%s' (%s) [%s] */", tc.Name(), tc.ThemeName(), date)}

	for _, c := range append([]*Color{tc.main}, tc.variants...) {
		decl, err := c.CSSDeclaration()
		if err != nil {
			return nil, err
		}
		fg, err := c.FgCSSDeclaration()
		if err != nil {
			return nil, err
		}
		lines = append(lines, decl, fg)
	}

	return lines, nil
}
