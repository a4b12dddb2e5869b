package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/variants"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			_, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			_, ok := palette.NormalizeName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return palette.ValidThemeName(fl.Field().String())
		})

		_ = v.RegisterValidation("color_format", func(fl validator.FieldLevel) bool {
			_, err := color.ParseFormat(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("generator", func(fl validator.FieldLevel) bool {
			_, err := variants.Lookup(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a palette file.
func Validate(f *PaletteFile) error {
	if f == nil {
		return palerrors.NewValidationError("palette", "palette file is nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	themes := make(map[string]int, len(f.Themes))
	for i, theme := range f.Themes {
		if _, exists := themes[theme.Name]; exists {
			return palerrors.NewValidationError(fieldForTheme(i, "name"), fmt.Sprintf("duplicate theme %q", theme.Name), nil)
		}
		themes[theme.Name] = i

		colors := make(map[string]struct{}, len(theme.Colors))
		for j, c := range theme.Colors {
			name, _ := palette.NormalizeName(c.Name)
			if _, exists := colors[name]; exists {
				return palerrors.NewValidationError(fieldForColor(i, j, "name"), fmt.Sprintf("duplicate color %q", name), nil)
			}
			colors[name] = struct{}{}

			if c.Variants != nil {
				if err := c.Variants.Options().Validate(); err != nil {
					msg := err.Error()
					var ve *palerrors.ValidationError
					if errors.As(err, &ve) {
						msg = ve.Message
					}
					return palerrors.NewValidationError(fieldForColor(i, j, "variants"), msg, err)
				}
			}
		}
	}

	if f.DefaultTheme != "" {
		if _, ok := themes[f.DefaultTheme]; !ok {
			return palerrors.NewValidationError("default_theme", fmt.Sprintf("references unknown theme %q", f.DefaultTheme), nil)
		}
	}

	return nil
}
