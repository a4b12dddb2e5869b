package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

func intPtr(v int) *int { return &v }

func validFile() *PaletteFile {
	return &PaletteFile{
		Name: "brand",
		Themes: []ThemeDef{
			{Name: "light", Colors: []ColorDef{{Name: "primary", Value: "#3366cc"}}},
			{Name: "dark", AutoDetect: true, Colors: []ColorDef{{Name: "primary", Value: "#3366cc"}}},
		},
	}
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()
	require.Same(t, validatorInstance(), validatorInstance())
}

func TestValidateAcceptsValidFile(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(validFile()))
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(f *PaletteFile)
		field  string
	}{
		{"nil file", nil, "palette"},
		{"missing name", func(f *PaletteFile) { f.Name = "" }, "name"},
		{"theme name not an identifier", func(f *PaletteFile) { f.Themes[0].Name = "high contrast" }, "themes[0].name"},
		{"theme name keeps custom property prefix", func(f *PaletteFile) { f.Themes[1].Name = "--dark" }, "themes[1].name"},
		{"default theme keeps custom property prefix", func(f *PaletteFile) { f.DefaultTheme = "--light" }, "default_theme"},
		{"duplicate theme", func(f *PaletteFile) { f.Themes[1].Name = "light" }, "themes[1].name"},
		{"color name not an identifier", func(f *PaletteFile) { f.Themes[0].Colors[0].Name = "9lives" }, "themes[0].colors[0].name"},
		{"duplicate color after normalization", func(f *PaletteFile) {
			f.Themes[0].Colors = append(f.Themes[0].Colors, ColorDef{Name: "--primary", Value: "#fff"})
		}, "themes[0].colors[1].name"},
		{"bad fg", func(f *PaletteFile) { f.Themes[0].Colors[0].Fg = "white" }, "themes[0].colors[0].fg"},
		{"bad format", func(f *PaletteFile) { f.Themes[0].Colors[0].Format = "cmyk" }, "themes[0].colors[0].format"},
		{"unknown generator", func(f *PaletteFile) {
			f.Themes[0].Colors[0].Variants = &VariantsDef{Generator: "saturation"}
		}, "themes[0].colors[0].variants.generator"},
		{"step must be positive", func(f *PaletteFile) {
			f.Themes[0].Colors[0].Variants = &VariantsDef{Step: intPtr(0)}
		}, "themes[0].colors[0].variants.step"},
		{"start after end", func(f *PaletteFile) {
			f.Themes[0].Colors[0].Variants = &VariantsDef{Start: intPtr(90), End: intPtr(10)}
		}, "themes[0].colors[0].variants"},
		{"unknown default theme", func(f *PaletteFile) { f.DefaultTheme = "sepia" }, "default_theme"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f *PaletteFile
			if tc.mutate != nil {
				f = validFile()
				tc.mutate(f)
			}

			err := Validate(f)
			var validationErr *palerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestVariantsDefOptions(t *testing.T) {
	t.Parallel()

	opts := VariantsDef{Step: intPtr(25)}.Options()
	require.Equal(t, 0, opts.Start)
	require.Equal(t, 100, opts.End)
	require.Equal(t, 25, opts.Step)
	require.Equal(t, "lightness", VariantsDef{}.GeneratorName())
}
