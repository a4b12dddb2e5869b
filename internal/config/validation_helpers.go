package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// convertValidationError normalizes validator errors into palette validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return palerrors.NewValidationError(field, msg, err)
	}

	return palerrors.NewValidationError("palette", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the yaml-named namespace.
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}

func fieldForColor(theme, index int, field string) string {
	return fmt.Sprintf("themes[%d].colors[%d].%s", theme, index, field)
}
