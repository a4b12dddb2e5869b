package color

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure categories raised by the color model.
type ErrorCode string

const (
	ErrCodeInvalidValue      ErrorCode = "INVALID_COLOR_VALUE"
	ErrCodeFormat            ErrorCode = "FORMAT_ERROR"
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeUnsupportedType   ErrorCode = "UNSUPPORTED_COLOR_TYPE"
	ErrCodeNotImplemented    ErrorCode = "NOT_IMPLEMENTED"
)

// Sentinels for errors.Is checks. Matching is done on the code only.
var (
	ErrInvalidColorValue    = &Error{Code: ErrCodeInvalidValue}
	ErrFormat               = &Error{Code: ErrCodeFormat}
	ErrUnsupportedFormat    = &Error{Code: ErrCodeUnsupportedFormat}
	ErrUnsupportedColorType = &Error{Code: ErrCodeUnsupportedType}
	ErrNotImplemented       = &Error{Code: ErrCodeNotImplemented}
)

// Error is a typed color failure enriched with contextual data.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = "color error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a color error carrying the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Code == other.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *Error) WithContext(ctx map[string]interface{}) *Error {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

func newError(code ErrorCode, message string, context map[string]interface{}) *Error {
	return &Error{Code: code, Message: message, Context: context}
}

func invalidValueError(kind string, payload interface{}) *Error {
	return newError(ErrCodeInvalidValue, "invalid color value", map[string]interface{}{
		"kind":    kind,
		"payload": payload,
	})
}

func formatError(kind, css string) *Error {
	return newError(ErrCodeFormat, fmt.Sprintf("invalid %s CSS string", kind), map[string]interface{}{
		"input": css,
	})
}

func unsupportedFormatError(format string) *Error {
	return newError(ErrCodeUnsupportedFormat, "unsupported color format", map[string]interface{}{
		"format": format,
	})
}

func unsupportedTypeError(v Value) *Error {
	return newError(ErrCodeUnsupportedType, "unsupported color value type", map[string]interface{}{
		"type": fmt.Sprintf("%T", v),
	})
}

// NotImplemented reports that no implementation exists for the named capability.
func NotImplemented(what string) *Error {
	return newError(ErrCodeNotImplemented, fmt.Sprintf("%s is not implemented", what), map[string]interface{}{
		"name": what,
	})
}
