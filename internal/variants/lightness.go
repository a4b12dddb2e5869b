package variants

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// LightnessName is the registry name of the lightness generator.
const LightnessName = "lightness"

// Lightness steps the HSLA lightness of the source color.
//
// In a dark theme the labels count down from 100 while the stored lightness
// still counts up, and the finished sequence is reversed. A dark "brand-0"
// is therefore the lightest variant.
type Lightness struct{}

// Name implements Generator.
func (Lightness) Name() string { return LightnessName }

// Generate implements Generator.
func (Lightness) Generate(src Source, opts Options) ([]Variant, error) {
	if src == nil {
		return nil, palerrors.NewValidationError("source", "variants require a source color", nil)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	base, err := color.ToHSLA(src.MainValue())
	if err != nil {
		return nil, err
	}

	dark := IsDarkTheme(src.ThemeName())
	out := make([]Variant, 0, (opts.End-opts.Start)/opts.Step+1)

	for l := opts.Start; l <= opts.End; l += opts.Step {
		label := l
		if dark {
			label = 100 - l
		}

		value, err := base.WithL(l)
		if err != nil {
			return nil, err
		}

		out = append(out, Variant{
			Name:  fmt.Sprintf("%s-%d", src.MainName(), label),
			Value: value,
		})
	}

	if dark {
		slices.Reverse(out)
	}

	return out, nil
}

// IsDarkTheme reports whether a theme name selects dark mode: "dark" or a
// "dark-" prefix, compared case-insensitively. An empty name is light.
func IsDarkTheme(name string) bool {
	name = strings.ToLower(name)
	return name == "dark" || strings.HasPrefix(name, "dark-")
}
