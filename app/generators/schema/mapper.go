package schema

import (
	"fmt"
	"strings"
)

const (
	uuidImport   = "github.com/google/uuid"
	timeImport   = "time"
	pgtypeImport = "github.com/jackc/pgx/v5/pgtype"
)

// anyType is used for Postgres types without a mapping. pgx scans them
// into their default Go representation.
var anyType = GoType{Name: "any", Nilable: true}

// typeMap contains PostgreSQL to Go type mappings for non-null values
var typeMap = map[string]GoType{
	// UUIDs
	"uuid": {Name: "uuid.UUID", Import: uuidImport},

	// Strings
	"text":              {Name: "string"},
	"varchar":           {Name: "string"},
	"character varying": {Name: "string"},
	"char":              {Name: "string"},
	"character":         {Name: "string"},
	"bpchar":            {Name: "string"},
	"citext":            {Name: "string"},
	"inet":              {Name: "string"},

	// Integers
	"integer":  {Name: "int"},
	"int":      {Name: "int"},
	"int4":     {Name: "int"},
	"smallint": {Name: "int16"},
	"int2":     {Name: "int16"},
	"bigint":   {Name: "int64"},
	"int8":     {Name: "int64"},

	// Floating point and numeric
	"real":             {Name: "float32"},
	"float4":           {Name: "float32"},
	"double precision": {Name: "float64"},
	"float8":           {Name: "float64"},
	"numeric":          {Name: "float64"},
	"decimal":          {Name: "float64"},

	// Boolean
	"boolean": {Name: "bool"},
	"bool":    {Name: "bool"},

	// Dates and timestamps
	"timestamp with time zone":    {Name: "time.Time", Import: timeImport},
	"timestamp without time zone": {Name: "time.Time", Import: timeImport},
	"timestamptz":                 {Name: "time.Time", Import: timeImport},
	"timestamp":                   {Name: "time.Time", Import: timeImport},
	"date":                        {Name: "time.Time", Import: timeImport},

	// Times of day and durations have no lossless standard library type
	"time without time zone": {Name: "pgtype.Time", Import: pgtypeImport},
	"time":                   {Name: "pgtype.Time", Import: pgtypeImport},
	"time with time zone":    {Name: "string"},
	"timetz":                 {Name: "string"},
	"interval":               {Name: "pgtype.Interval", Import: pgtypeImport},

	// JSON is passed through verbatim
	"json":  {Name: "dbtypes.JSON", Import: dbtypesImport, Nilable: true},
	"jsonb": {Name: "dbtypes.JSON", Import: dbtypesImport, Nilable: true},

	// Binary
	"bytea": {Name: "[]byte", Nilable: true},
}

// MapPostgreSQLType converts a PostgreSQL type to the Go type of a non-null
// value. enums maps Postgres enum names to their generated Go type names.
func MapPostgreSQLType(dbType string, enums map[string]string) (GoType, error) {
	normalized := strings.ToLower(strings.TrimSpace(dbType))

	if elem, ok := strings.CutSuffix(normalized, "[]"); ok {
		inner, err := MapPostgreSQLType(elem, enums)
		if err != nil {
			return GoType{}, err
		}
		return GoType{Name: "[]" + inner.Name, Import: inner.Import, Nilable: true}, nil
	}

	if goName, ok := enums[normalized]; ok {
		return GoType{Name: goName}, nil
	}

	if mapping, ok := typeMap[extractBaseType(normalized)]; ok {
		return mapping, nil
	}

	return GoType{}, fmt.Errorf("unknown PostgreSQL type: %s", dbType)
}

// mapOrFallback maps dbType, falling back to any. The returned warning is
// empty when a mapping exists.
func mapOrFallback(dbType string, enums map[string]string) (GoType, string) {
	t, err := MapPostgreSQLType(dbType, enums)
	if err != nil {
		return anyType, err.Error()
	}
	return t, ""
}

// extractBaseType removes parameters from type definition
// Examples: "varchar(100)" -> "varchar", "numeric(10,2)" -> "numeric"
func extractBaseType(dbType string) string {
	if idx := strings.Index(dbType, "("); idx != -1 {
		return strings.TrimSpace(dbType[:idx])
	}
	return dbType
}

// rowType is the Row field type: nullable values become pointers unless the
// Go type already has a nil state.
func rowType(t GoType, nullable bool) string {
	if nullable && !t.Nilable {
		return "*" + t.Name
	}
	return t.Name
}

// insertType is the Insert field type. Optional fields must be able to say
// "not supplied" so the database default applies.
func insertType(t GoType, nullable, optional bool) string {
	if optional && !t.Nilable {
		return "*" + t.Name
	}
	return rowType(t, nullable)
}
