package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jrazmi/sitebook/schema/reflector"
)

// LoadModel reads a reflected JSON schema file and builds the generator model
func LoadModel(jsonPath string) (*Model, error) {
	reflected, err := reflector.ReadJSON(jsonPath)
	if err != nil {
		return nil, err
	}
	return BuildModel(reflected)
}

// ListTables returns all table names in a reflected JSON schema file
func ListTables(jsonPath string) ([]string, error) {
	reflected, err := reflector.ReadJSON(jsonPath)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(reflected.Tables)), nil
}

// BuildModel converts a reflection into Go names and types. Types without a
// mapping fall back to any and are listed in Model.Warnings; name collisions
// between generated declarations are reported together.
func BuildModel(reflected *reflector.ReflectedSchema) (*Model, error) {
	m := &Model{
		SchemaName: reflected.SchemaName,
		Source:     fmt.Sprintf("%s %s.%s", reflected.Source, reflected.Database, reflected.SchemaName),
	}

	enumTypes := make(map[string]string, len(reflected.Enums))
	for _, e := range reflected.Enums {
		enum := convertEnum(e)
		enumTypes[e.Name] = enum.GoName
		m.Enums = append(m.Enums, enum)
	}
	slices.SortFunc(m.Enums, func(a, b *Enum) int { return strings.Compare(a.Name, b.Name) })

	tableNames := make(map[string]bool)
	for _, name := range slices.Sorted(maps.Keys(reflected.Tables)) {
		table, warnings := convertTable(reflected.Tables[name], enumTypes)
		m.Warnings = append(m.Warnings, warnings...)
		tableNames[name] = true
		m.Tables = append(m.Tables, table)
	}

	for _, fi := range reflected.Functions {
		fn, warnings := convertFunction(fi, enumTypes, tableNames)
		m.Warnings = append(m.Warnings, warnings...)
		m.Functions = append(m.Functions, fn)
	}

	if err := errors.Join(checkNames(m)...); err != nil {
		return nil, err
	}
	return m, nil
}

func convertEnum(e reflector.EnumInfo) *Enum {
	enum := &Enum{
		Name:    e.Name,
		GoName:  ToPascalCase(e.Name),
		Comment: e.Comment,
	}
	for _, v := range e.Values {
		enum.Values = append(enum.Values, EnumValue{
			Label: v,
			Const: enum.GoName + pascalWords(v),
		})
	}
	return enum
}

func convertTable(ti *reflector.TableInfo, enumTypes map[string]string) (*Table, []string) {
	t := &Table{
		Name:       ti.TableName,
		Schema:     ti.Schema,
		Comment:    ti.Comment,
		Entity:     EntityName(ti.TableName),
		Descriptor: ToPascalCase(ti.TableName),
		FileName:   ti.TableName + "_gen.go",
		PrimaryKey: ti.PrimaryKey,
	}
	if t.Descriptor == t.Entity {
		t.Descriptor += "Table"
	}

	cols := slices.Clone(ti.Columns)
	slices.SortStableFunc(cols, func(a, b reflector.ColumnInfo) int { return a.Ordinal - b.Ordinal })

	var warnings []string
	for _, ci := range cols {
		col, warning := convertColumn(ci, enumTypes)
		if warning != "" {
			warnings = append(warnings, fmt.Sprintf("table %s: column %s: %s", ti.TableName, ci.Name, warning))
		}
		t.Columns = append(t.Columns, col)
	}

	for _, fk := range ti.ForeignKeys {
		t.Relationships = append(t.Relationships, Relationship{
			Name:       fk.Name,
			Columns:    fk.Columns,
			OneToOne:   fk.IsOneToOne,
			RefTable:   fk.RefTable,
			RefColumns: fk.RefColumns,
		})
	}
	slices.SortFunc(t.Relationships, func(a, b Relationship) int { return strings.Compare(a.Name, b.Name) })

	return t, warnings
}

func convertColumn(ci reflector.ColumnInfo, enumTypes map[string]string) (*Column, string) {
	goType, warning := mapOrFallback(ci.DBType, enumTypes)

	col := &Column{
		Name:       ci.Name,
		GoName:     ToPascalCase(ci.Name),
		DBType:     ci.DBType,
		Comment:    ci.Comment,
		Nullable:   ci.IsNullable,
		HasDefault: ci.HasDefault,
		Identity:   ci.IsIdentity,
		Generated:  ci.IsGenerated,
		Enum:       ci.EnumName,
		Type:       goType,
	}
	col.InsertOptional = !col.InsertRequired()
	col.RowType = rowType(goType, col.Nullable)
	col.InsertType = insertType(goType, col.Nullable, col.InsertOptional)
	col.UpdateType = "dbtypes.Patch[" + col.RowType + "]"
	if col.Nullable && col.HasDefault && !col.Generated {
		// A nil pointer cannot tell "use the default" from "write NULL".
		col.InsertPatch = true
		col.InsertType = col.UpdateType
	}

	return col, warning
}

func convertFunction(fi reflector.FunctionInfo, enumTypes map[string]string, tables map[string]bool) (*Function, []string) {
	fn := &Function{
		Name:       fi.Name,
		GoName:     ToPascalCase(fi.Name),
		Schema:     fi.Schema,
		Comment:    fi.Comment,
		ReturnType: fi.ReturnType,
		ReturnsSet: fi.ReturnsSet,
	}

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("function %s: ", fi.Name)+fmt.Sprintf(format, args...))
	}

	for _, a := range fi.Args {
		goType, warning := mapOrFallback(a.DBType, enumTypes)
		if warning != "" {
			warn("argument %s: %s", a.Name, warning)
		}
		fn.Args = append(fn.Args, FunctionArg{
			Name:     a.Name,
			Field:    ArgFieldName(a.Name),
			DBType:   a.DBType,
			GoType:   insertType(goType, false, a.HasDefault),
			Optional: a.HasDefault,
			Enum:     a.EnumName,
			IsArray:  a.IsArray,
			Import:   goType.Import,
		})
	}

	switch {
	case fi.ReturnType == "void":
		fn.Void = true
		return fn, warnings
	case tables[fi.ReturnType]:
		fn.RowResult = true
		fn.ResultElem = EntityName(fi.ReturnType)
	case fi.ReturnType == "record" && len(fi.ResultColumns) > 0:
		fn.RowResult = true
		fn.ResultStruct = fn.GoName + "Result"
		fn.ResultElem = fn.ResultStruct
		for _, c := range fi.ResultColumns {
			goType, warning := mapOrFallback(c.DBType, enumTypes)
			if warning != "" {
				warn("result column %s: %s", c.Name, warning)
			}
			// Function results carry no NOT NULL constraint.
			fn.ResultFields = append(fn.ResultFields, ResultField{
				Name:   c.Name,
				GoName: ToPascalCase(c.Name),
				Type:   rowType(goType, true),
				Import: goType.Import,
			})
		}
	default:
		rt, warning := mapOrFallback(fi.ReturnType, enumTypes)
		if warning != "" {
			warn("result: %s", warning)
		}
		fn.ResultElem = rt.Name
	}

	fn.Result = fn.ResultElem
	if fn.ReturnsSet {
		fn.Result = "[]" + fn.ResultElem
	}
	return fn, warnings
}

// reservedNames are declared by every generated package.
var reservedNames = map[string]string{
	"SchemaName":   "the schema name constant",
	"Schema":       "the schema registry",
	"Functions":    "the function wrappers",
	"NewFunctions": "the function wrappers",
}

var reservedFiles = map[string]string{
	"enums_gen.go":     "the enum declarations",
	"functions_gen.go": "the function wrappers",
	"schema_gen.go":    "the schema registry",
	"doc.go":           "the package documentation",
}

type structField struct {
	goName string
	source string
}

// checkNames reports generated identifiers and files that would be declared
// twice in the output package, and fields declared twice in one struct.
func checkNames(m *Model) []error {
	var errs []error

	owners := maps.Clone(reservedNames)
	claim := func(name, owner string) {
		if prev, ok := owners[name]; ok {
			errs = append(errs, fmt.Errorf("%s and %s both declare %s", prev, owner, name))
			return
		}
		owners[name] = owner
	}

	files := maps.Clone(reservedFiles)
	fields := func(owner string, fs []structField) {
		seen := make(map[string]string, len(fs))
		for _, f := range fs {
			if prev, ok := seen[f.goName]; ok {
				errs = append(errs, fmt.Errorf("%s: %s and %s both map to field %s", owner, prev, f.source, f.goName))
				continue
			}
			seen[f.goName] = f.source
		}
	}

	for _, t := range m.Tables {
		owner := "table " + t.Name
		for _, name := range []string{t.Entity, t.Entity + "Insert", t.Entity + "Update", t.Descriptor} {
			claim(name, owner)
		}
		if prev, ok := files[t.FileName]; ok {
			errs = append(errs, fmt.Errorf("%s and %s both write %s", prev, owner, t.FileName))
		}
		files[t.FileName] = owner

		var cols []structField
		for _, c := range t.Columns {
			cols = append(cols, structField{c.GoName, "column " + c.Name})
		}
		fields(owner, cols)
	}

	for _, e := range m.Enums {
		owner := "enum " + e.Name
		for _, name := range []string{e.GoName, e.GoName + "Values", e.GoName + "Enum"} {
			claim(name, owner)
		}
		for _, v := range e.Values {
			claim(v.Const, fmt.Sprintf("%s label %q", owner, v.Label))
		}
	}

	overloaded := make(map[string]bool)
	for _, f := range m.Functions {
		if overloaded[f.Name] {
			errs = append(errs, fmt.Errorf("function %s is overloaded; only one signature can be bound", f.Name))
			continue
		}
		overloaded[f.Name] = true

		owner := "function " + f.Name
		claim(f.ArgsType(), owner)
		claim(f.DescriptorName(), owner)
		if f.ResultStruct != "" {
			claim(f.ResultStruct, owner)
		}

		var args []structField
		for _, a := range f.Args {
			args = append(args, structField{a.Field, "argument " + a.Name})
		}
		fields(owner, args)

		var results []structField
		for _, r := range f.ResultFields {
			results = append(results, structField{r.GoName, "result column " + r.Name})
		}
		fields(owner, results)
	}

	return errs
}
