package dbtypes

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultFiller supplies the value the database would use for a column
// left out of an insert. Returning nil leaves the Row field at its zero
// value.
type DefaultFiller func(column string) any

// fieldTag is the parsed db and json tags of one struct field.
type fieldTag struct {
	column    string
	omitEmpty bool
	omitZero  bool
}

func parseFieldTag(f reflect.StructField) (fieldTag, bool) {
	column, ok := f.Tag.Lookup("db")
	if !ok || column == "" || column == "-" {
		return fieldTag{}, false
	}

	tag := fieldTag{column: column}
	if js, ok := f.Tag.Lookup("json"); ok {
		opts := strings.Split(js, ",")[1:]
		for _, o := range opts {
			switch o {
			case "omitempty":
				tag.omitEmpty = true
			case "omitzero":
				tag.omitZero = true
			}
		}
	}
	return tag, true
}

func structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.Kind() == reflect.Struct
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// InsertColumns returns the columns and values of an Insert shape. Fields
// tagged omitempty are skipped while nil and Patch fields while unset, so the
// column default applies; every other field is always written.
func InsertColumns(in any) ([]string, []any) {
	rv, ok := structValue(in)
	if !ok {
		return nil, nil
	}

	var (
		cols []string
		vals []any
	)
	rt := rv.Type()
	for i := range rt.NumField() {
		tag, ok := parseFieldTag(rt.Field(i))
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if p, ok := fv.Interface().(patcher); ok {
			if v, set := p.patchState(); set {
				cols = append(cols, tag.column)
				vals = append(vals, v)
			}
			continue
		}
		if tag.omitEmpty && isNilable(fv.Kind()) && (fv.IsNil() || (fv.Kind() == reflect.Slice && fv.Len() == 0)) {
			continue
		}
		cols = append(cols, tag.column)
		vals = append(vals, fv.Interface())
	}
	return cols, vals
}

// UpdateAssignments returns the columns and values of every set Patch field
// of an Update shape, in field order.
func UpdateAssignments(update any) ([]string, []any) {
	rv, ok := structValue(update)
	if !ok {
		return nil, nil
	}

	var (
		cols []string
		vals []any
	)
	rt := rv.Type()
	for i := range rt.NumField() {
		tag, ok := parseFieldTag(rt.Field(i))
		if !ok {
			continue
		}
		p, ok := rv.Field(i).Interface().(patcher)
		if !ok {
			continue
		}
		if v, set := p.patchState(); set {
			cols = append(cols, tag.column)
			vals = append(vals, v)
		}
	}
	return cols, vals
}

// Widen copies an Insert shape into its Row shape. Fields with the same db
// tag are copied directly when the types match and dereferenced when the
// Insert holds a pointer to the Row's type. Columns the Insert leaves unset
// are taken from fill.
func Widen[R any](in any, fill DefaultFiller) (R, error) {
	var row R

	src, ok := structValue(in)
	if !ok {
		return row, fmt.Errorf("widen: %T is not a struct", in)
	}
	dst := reflect.ValueOf(&row).Elem()
	if dst.Kind() != reflect.Struct {
		return row, fmt.Errorf("widen: %T is not a struct", row)
	}

	supplied := make(map[string]reflect.Value)
	for i := range src.NumField() {
		if tag, ok := parseFieldTag(src.Type().Field(i)); ok {
			supplied[tag.column] = src.Field(i)
		}
	}

	for i := range dst.NumField() {
		tag, ok := parseFieldTag(dst.Type().Field(i))
		if !ok {
			continue
		}
		field := dst.Field(i)

		if sv, ok := supplied[tag.column]; ok {
			if p, isPatch := sv.Interface().(patcher); isPatch {
				if v, set := p.patchState(); set {
					if err := assignAny(field, v); err != nil {
						return row, fmt.Errorf("widen %s: %w", tag.column, err)
					}
					continue
				}
			} else if !isUnset(sv) {
				if err := assign(field, sv); err != nil {
					return row, fmt.Errorf("widen %s: %w", tag.column, err)
				}
				continue
			}
		}

		if fill == nil {
			continue
		}
		def := fill(tag.column)
		if def == nil {
			continue
		}
		if err := assign(field, reflect.ValueOf(def)); err != nil {
			return row, fmt.Errorf("widen %s default: %w", tag.column, err)
		}
	}

	return row, nil
}

func isUnset(v reflect.Value) bool {
	return isNilable(v.Kind()) && v.IsNil()
}

// assignAny assigns a value read through an interface; nil stores the zero
// value, which for a nullable column is NULL.
func assignAny(dst reflect.Value, v any) error {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	return assign(dst, reflect.ValueOf(v))
}

func assign(dst, src reflect.Value) error {
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case src.Kind() == reflect.Pointer && src.Type().Elem().AssignableTo(dst.Type()):
		dst.Set(src.Elem())
	case dst.Kind() == reflect.Pointer && src.Type().AssignableTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src)
		dst.Set(p)
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}
