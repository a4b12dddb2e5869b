// Package config loads YAML palette definition files, validates them and
// builds palettes from them.
package config

import (
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
)

// PaletteFile is the root of a palette definition document.
type PaletteFile struct {
	Name         string     `yaml:"name" validate:"required,min=1,max=100"`
	DefaultTheme string     `yaml:"default_theme,omitempty" validate:"omitempty,theme_name"`
	Themes       []ThemeDef `yaml:"themes" validate:"required,min=1,dive"`
}

// ThemeDef declares one theme and its colors.
type ThemeDef struct {
	Name       string     `yaml:"name" validate:"required,theme_name"`
	AutoDetect bool       `yaml:"auto_detect,omitempty"`
	Colors     []ColorDef `yaml:"colors,omitempty" validate:"omitempty,dive"`
}

// ColorDef declares a theme color. Fg is ignored when GenerateFg is set;
// with neither, the foreground is resolved when first needed.
type ColorDef struct {
	Name       string       `yaml:"name" validate:"required,css_ident"`
	Value      string       `yaml:"value" validate:"required,css_color"`
	Format     string       `yaml:"format,omitempty" validate:"omitempty,color_format"`
	Fg         string       `yaml:"fg,omitempty" validate:"omitempty,css_color"`
	GenerateFg bool         `yaml:"generate_fg,omitempty"`
	Variants   *VariantsDef `yaml:"variants,omitempty"`
}

// VariantsDef selects a generator. Unset bounds take the generator defaults.
type VariantsDef struct {
	Generator string `yaml:"generator,omitempty" validate:"omitempty,generator"`
	Start     *int   `yaml:"start,omitempty" validate:"omitempty,min=0,max=100"`
	End       *int   `yaml:"end,omitempty" validate:"omitempty,min=0,max=100"`
	Step      *int   `yaml:"step,omitempty" validate:"omitempty,gt=0"`
}

// GeneratorName returns the generator, defaulting to lightness.
func (v VariantsDef) GeneratorName() string {
	if v.Generator == "" {
		return variants.LightnessName
	}
	return v.Generator
}

// Options overlays the declared bounds on the defaults.
func (v VariantsDef) Options() variants.Options {
	opts := variants.DefaultOptions()
	if v.Start != nil {
		opts.Start = *v.Start
	}
	if v.End != nil {
		opts.End = *v.End
	}
	if v.Step != nil {
		opts.Step = *v.Step
	}
	return opts
}
