package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
)

// Build turns a validated definition into a palette. Variants are
// generated after each color joins its theme so dark themes are honored.
func (f *PaletteFile) Build(opts ...palette.Option) (*palette.Palette, error) {
	all := append([]palette.Option{palette.WithDefaultTheme(f.DefaultTheme)}, opts...)
	p, err := palette.New(f.Name, all...)
	if err != nil {
		return nil, err
	}

	for i, def := range f.Themes {
		theme, err := palette.NewTheme(def.Name, def.AutoDetect)
		if err != nil {
			return nil, err
		}
		p.AddTheme(theme)

		for j, cdef := range def.Colors {
			if err := addColor(theme, cdef); err != nil {
				return nil, fmt.Errorf("%s: %w", fieldForColor(i, j, "value"), err)
			}
		}
	}

	return p, nil
}

func addColor(theme *palette.Theme, def ColorDef) error {
	value, err := color.Parse(def.Value)
	if err != nil {
		return err
	}
	if def.Format != "" {
		if value, err = color.To(value, def.Format); err != nil {
			return err
		}
	}

	var fg color.Value
	if !def.GenerateFg && def.Fg != "" {
		if fg, err = color.Parse(def.Fg); err != nil {
			return err
		}
	}

	main, err := palette.NewColor(def.Name, value, fg)
	if err != nil {
		return err
	}
	if def.GenerateFg {
		if err := main.FindBestForeground(); err != nil {
			return err
		}
	}

	tc, err := palette.NewThemeColor(main)
	if err != nil {
		return err
	}
	theme.AddColor(tc)

	if def.Variants == nil {
		return nil
	}
	gen, err := variants.Lookup(def.Variants.GeneratorName())
	if err != nil {
		return err
	}
	return tc.GenerateVariants(gen, def.Variants.Options())
}
