// Package variants derives named color variants from a theme color.
//
// A Generator turns a Source (the main color of a theme color plus the
// theme it belongs to) into an ordered list of variants. Generators are
// registered by name and resolved with Lookup, which is how palette
// definitions refer to them.
package variants

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// Source is the color a generator derives variants from.
type Source interface {
	MainName() string
	MainValue() color.Value
	ThemeName() string
}

// Variant is one generated color.
type Variant struct {
	Name  string
	Value color.Value
}

// Options bounds and spaces a generated sequence.
type Options struct {
	Start int `json:"start" yaml:"start" validate:"min=0,max=100,ltefield=End"`
	End   int `json:"end" yaml:"end" validate:"min=0,max=100"`
	Step  int `json:"step" yaml:"step" validate:"gt=0"`
}

// DefaultOptions covers the full lightness range in steps of ten.
func DefaultOptions() Options {
	return Options{Start: 0, End: 100, Step: 10}
}

// Validate checks the bounds: 0 <= start <= end <= 100 and step > 0.
func (o Options) Validate() error {
	if err := validatorInstance().Struct(o); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Generator derives variants from a source color.
type Generator interface {
	Name() string
	Generate(src Source, opts Options) ([]Variant, error)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := "variants." + strings.ToLower(ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return palerrors.NewValidationError(field, msg, err)
	}
	return palerrors.NewValidationError("variants", err.Error(), err)
}
