package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is the store-level sentinel for an absent row. Services
// translate it into a NotFoundError carrying the lookup parameters.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that a meal does not exist for the targeted owner.
// A meal owned by someone else is deliberately indistinguishable from a
// meal that never existed.
type NotFoundError struct {
	MealID  int64
	OwnerID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Meal with id=%d not found for userId=%s", e.MealID, e.OwnerID)
}

// IsNotFoundError reports whether err is (or wraps) a NotFoundError.
func IsNotFoundError(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// ValidationError carries field-level violations for a rejected MealInput.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid meal input: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// MalformedPayloadError reports a request body that cannot be parsed as a
// MealInput at all. The failure is generic and never attributed to a field.
type MalformedPayloadError struct{}

func (MalformedPayloadError) Error() string { return "Malformed JSON request" }

// IsMalformedPayloadError reports whether err is (or wraps) a MalformedPayloadError.
func IsMalformedPayloadError(err error) bool {
	var me MalformedPayloadError
	return errors.As(err, &me)
}

// TypeMismatchError reports a path or query parameter that cannot be
// coerced to its expected type, e.g. a non-numeric meal id.
type TypeMismatchError struct {
	Field string
	Raw   string
}

func (e TypeMismatchError) Error() string {
	return invalidValueMessage(e.Field, e.Raw)
}

// IsTypeMismatchError reports whether err is (or wraps) a TypeMismatchError.
func IsTypeMismatchError(err error) bool {
	var te TypeMismatchError
	return errors.As(err, &te)
}

func invalidValueMessage(field, raw string) string {
	return fmt.Sprintf("Invalid value for field '%s': %s", field, raw)
}
