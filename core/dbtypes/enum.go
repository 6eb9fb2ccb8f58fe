package dbtypes

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidEnumValue is returned when a string is not a member of an enum.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// EnumValue is implemented by every generated enum type.
type EnumValue interface {
	~string
	Valid() bool
}

// Enum describes a database enum type: its name and its labels in
// declaration order.
type Enum struct {
	Name   string
	Values []string

	goValues []string
}

// NewEnum builds a descriptor from the database labels and the generated Go
// constants, which Verify compares element by element.
func NewEnum[E ~string](name string, values []string, goValues []E) *Enum {
	return &Enum{
		Name:     name,
		Values:   values,
		goValues: EnumStrings(goValues),
	}
}

// Contains reports whether s is one of the enum's labels.
func (e *Enum) Contains(s string) bool {
	return slices.Contains(e.Values, s)
}

// ParseEnum converts s into E, rejecting anything outside the enum.
func ParseEnum[E EnumValue](s string) (E, error) {
	v := E(s)
	if !v.Valid() {
		var zero E
		return zero, fmt.Errorf("%w: %q", ErrInvalidEnumValue, s)
	}
	return v, nil
}

// ScanEnum implements sql.Scanner for generated enums.
func ScanEnum[E EnumValue](dst *E, src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidEnumValue)
	default:
		return fmt.Errorf("cannot scan %T into enum", src)
	}

	v, err := ParseEnum[E](s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// EnumDriverValue implements driver.Valuer for generated enums.
func EnumDriverValue[E EnumValue](e E) (driver.Value, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnumValue, string(e))
	}
	return string(e), nil
}

// EnumStrings converts a slice of enum values to plain strings, which is
// how enum arrays are passed to stored functions.
func EnumStrings[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
