package dbtypes

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

var patchPkgPath = reflect.TypeFor[Patch[int]]().PkgPath()

// Verify checks that every registered Go shape still matches its metadata:
//
//   - Row fields mirror the columns in order; nullable columns are nilable
//   - Insert fields mirror the writable columns; a field is required exactly
//     when its column is NOT NULL without a default
//   - Update fields are Patch values of the Row field types
//   - enum labels and generated constants agree element for element
//   - relationships name columns that exist on both sides
//   - optional function arguments come after required ones
//
// All problems are returned together.
func Verify(s *Schema) error {
	var errs []error

	for _, t := range s.Tables() {
		info := t.Info()
		errs = append(errs, verifyRow(info)...)
		errs = append(errs, verifyInsert(info)...)
		errs = append(errs, verifyUpdate(info)...)
		errs = append(errs, verifyRelationships(s, info)...)
		errs = append(errs, verifyColumnEnums(s, info)...)
	}
	for _, e := range s.Enums() {
		errs = append(errs, verifyEnum(e)...)
	}
	for _, f := range s.Functions() {
		errs = append(errs, verifyFunction(f)...)
	}

	return errors.Join(errs...)
}

type taggedField struct {
	field reflect.StructField
	tag   fieldTag
}

func taggedFields(t reflect.Type) []taggedField {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var out []taggedField
	for i := range t.NumField() {
		f := t.Field(i)
		if tag, ok := parseFieldTag(f); ok {
			out = append(out, taggedField{field: f, tag: tag})
		}
	}
	return out
}

func fieldColumns(fields []taggedField) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.tag.column
	}
	return names
}

func writableColumns(info *TableInfo) []Column {
	var cols []Column
	for _, c := range info.Columns {
		if c.Writable() {
			cols = append(cols, c)
		}
	}
	return cols
}

func columnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func verifyRow(info *TableInfo) []error {
	fields := taggedFields(info.RowType)
	if got, want := fieldColumns(fields), info.ColumnNames(); !slices.Equal(got, want) {
		return []error{fmt.Errorf("%s row: fields %v do not match columns %v", info.Name, got, want)}
	}

	var errs []error
	for i, f := range fields {
		col := info.Columns[i]
		nilable := isNilable(f.field.Type.Kind())
		if col.Nullable && !nilable {
			errs = append(errs, fmt.Errorf("%s row: nullable column %s has non-nilable type %s", info.Name, col.Name, f.field.Type))
		}
		if !col.Nullable && f.field.Type.Kind() == reflect.Pointer {
			errs = append(errs, fmt.Errorf("%s row: NOT NULL column %s has pointer type %s", info.Name, col.Name, f.field.Type))
		}
	}
	return errs
}

func verifyInsert(info *TableInfo) []error {
	cols := writableColumns(info)
	fields := taggedFields(info.InsertType)
	if got, want := fieldColumns(fields), columnNames(cols); !slices.Equal(got, want) {
		return []error{fmt.Errorf("%s insert: fields %v do not match writable columns %v", info.Name, got, want)}
	}

	rowTypes := make(map[string]reflect.Type)
	for _, f := range taggedFields(info.RowType) {
		rowTypes[f.tag.column] = f.field.Type
	}

	var errs []error
	for i, f := range fields {
		col := cols[i]
		rowType := rowTypes[col.Name]
		if col.InsertRequired() {
			if f.tag.omitEmpty || f.field.Type != rowType {
				errs = append(errs, fmt.Errorf("%s insert: column %s is required and must be %s without omitempty", info.Name, col.Name, rowType))
			}
			continue
		}

		if col.Nullable && col.HasDefault {
			if value, ok := patchValueType(f.field.Type); !ok || value != rowType || !f.tag.omitZero {
				errs = append(errs, fmt.Errorf("%s insert: nullable column %s has a default and must be a Patch of %s with omitzero", info.Name, col.Name, rowType))
			}
			continue
		}

		want := rowType
		if rowType != nil && !isNilable(rowType.Kind()) {
			want = reflect.PointerTo(rowType)
		}
		if !f.tag.omitEmpty || f.field.Type != want {
			errs = append(errs, fmt.Errorf("%s insert: column %s is optional and must be %s with omitempty", info.Name, col.Name, want))
		}
	}
	return errs
}

// patchValueType returns T when t is a Patch[T].
func patchValueType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || t.PkgPath() != patchPkgPath || !strings.HasPrefix(t.Name(), "Patch[") {
		return nil, false
	}
	value, _ := t.FieldByName("Value")
	return value.Type, true
}

func verifyUpdate(info *TableInfo) []error {
	cols := writableColumns(info)
	fields := taggedFields(info.UpdateType)
	if got, want := fieldColumns(fields), columnNames(cols); !slices.Equal(got, want) {
		return []error{fmt.Errorf("%s update: fields %v do not match writable columns %v", info.Name, got, want)}
	}

	rowTypes := make(map[string]reflect.Type)
	for _, f := range taggedFields(info.RowType) {
		rowTypes[f.tag.column] = f.field.Type
	}

	var errs []error
	for _, f := range fields {
		ft := f.field.Type
		value, isPatch := patchValueType(ft)
		if !isPatch {
			errs = append(errs, fmt.Errorf("%s update: column %s must be a Patch, got %s", info.Name, f.tag.column, ft))
			continue
		}
		if value != rowTypes[f.tag.column] {
			errs = append(errs, fmt.Errorf("%s update: column %s patches %s, row has %s", info.Name, f.tag.column, value, rowTypes[f.tag.column]))
		}
		if !f.tag.omitZero {
			errs = append(errs, fmt.Errorf("%s update: column %s must be tagged omitzero", info.Name, f.tag.column))
		}
	}
	return errs
}

func verifyRelationships(s *Schema, info *TableInfo) []error {
	var errs []error
	for _, rel := range info.Relationships {
		if len(rel.Columns) == 0 || len(rel.Columns) != len(rel.ReferencedColumns) {
			errs = append(errs, fmt.Errorf("%s relationship %s: %d columns reference %d columns",
				info.Name, rel.ForeignKeyName, len(rel.Columns), len(rel.ReferencedColumns)))
			continue
		}
		for _, c := range rel.Columns {
			if !info.HasColumn(c) {
				errs = append(errs, fmt.Errorf("%s relationship %s: unknown column %s", info.Name, rel.ForeignKeyName, c))
			}
		}

		target, ok := s.Table(rel.ReferencedRelation)
		if !ok {
			errs = append(errs, fmt.Errorf("%s relationship %s: unknown table %s", info.Name, rel.ForeignKeyName, rel.ReferencedRelation))
			continue
		}
		for _, c := range rel.ReferencedColumns {
			if !target.Info().HasColumn(c) {
				errs = append(errs, fmt.Errorf("%s relationship %s: unknown column %s.%s",
					info.Name, rel.ForeignKeyName, rel.ReferencedRelation, c))
			}
		}
	}
	return errs
}

func verifyColumnEnums(s *Schema, info *TableInfo) []error {
	var errs []error
	for _, c := range info.Columns {
		if c.Enum == "" {
			continue
		}
		if _, ok := s.Enum(c.Enum); !ok {
			errs = append(errs, fmt.Errorf("%s column %s: unknown enum %s", info.Name, c.Name, c.Enum))
		}
	}
	return errs
}

func verifyEnum(e *Enum) []error {
	var errs []error
	if len(e.Values) == 0 {
		errs = append(errs, fmt.Errorf("enum %s: no values", e.Name))
	}

	seen := make(map[string]bool, len(e.Values))
	for _, v := range e.Values {
		if seen[v] {
			errs = append(errs, fmt.Errorf("enum %s: duplicate value %q", e.Name, v))
		}
		seen[v] = true
	}

	if !slices.Equal(e.Values, e.goValues) {
		errs = append(errs, fmt.Errorf("enum %s: values %v do not match Go constants %v", e.Name, e.Values, e.goValues))
	}
	return errs
}

func verifyFunction(f *Function) []error {
	optional := false
	for _, a := range f.Args {
		if a.Optional {
			optional = true
			continue
		}
		if optional {
			return []error{fmt.Errorf("function %s: required argument %s follows an optional one", f.Name, a.Name)}
		}
	}
	return nil
}
