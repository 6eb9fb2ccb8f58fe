package bindgen

const header = `// Code generated by sitebook generate. DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}
`

const tableTemplate = header + `
import (
{{- range .Table.Imports}}
	"{{.}}"
{{- end}}
)

// {{.Table.Entity}} is a row of {{.Table.Name}}.
{{- if .Table.Comment}}
{{comment .Table.Comment}}
{{- end}}
type {{.Table.Entity}} struct {
{{- range .Table.Columns}}
	{{.GoName}} {{.RowType}} ` + "`" + `db:"{{.Name}}" json:"{{.Name}}"` + "`" + `
{{- end}}
}

// {{.Table.Entity}}Insert is the payload for inserting into {{.Table.Name}}.
// Omitted fields take the column default.
type {{.Table.Entity}}Insert struct {
{{- range .Table.WritableColumns}}
	{{.GoName}} {{.InsertType}} ` + "`" + `db:"{{.Name}}" json:"{{.Name}}{{if .InsertPatch}},omitzero{{else if .InsertOptional}},omitempty{{end}}"` + "`" + `
{{- end}}
}

// {{.Table.Entity}}Update is a partial update of {{.Table.Name}}. Only set fields are written.
type {{.Table.Entity}}Update struct {
{{- range .Table.WritableColumns}}
	{{.GoName}} {{.UpdateType}} ` + "`" + `db:"{{.Name}}" json:"{{.Name}},omitzero"` + "`" + `
{{- end}}
}

// {{.Table.Descriptor}} describes {{.Table.Name}}.
var {{.Table.Descriptor}} = dbtypes.NewTable[{{.Table.Entity}}, {{.Table.Entity}}Insert, {{.Table.Entity}}Update](dbtypes.TableInfo{
	Schema:     SchemaName,
	Name:       "{{.Table.Name}}",
{{- if .Table.Comment}}
	Comment:    {{printf "%q" .Table.Comment}},
{{- end}}
	PrimaryKey: []string{ {{- quoteJoin .Table.PrimaryKey -}} },
	Columns: []dbtypes.Column{
{{- range .Table.Columns}}
		{{columnLiteral .}},
{{- end}}
	},
{{- if .Table.Relationships}}
	Relationships: []dbtypes.Relationship{
{{- range .Table.Relationships}}
		{
			ForeignKeyName:     "{{.Name}}",
			Columns:            []string{ {{- quoteJoin .Columns -}} },
			IsOneToOne:         {{.OneToOne}},
			ReferencedRelation: "{{.RefTable}}",
			ReferencedColumns:  []string{ {{- quoteJoin .RefColumns -}} },
		},
{{- end}}
	},
{{- end}}
})
`

const enumsTemplate = header + `
import (
	"database/sql/driver"
	"slices"

	"github.com/jrazmi/sitebook/core/dbtypes"
)
{{range $e := .Enums}}
// {{$e.GoName}} is the {{$e.Name}} enum.
{{- if $e.Comment}}
{{comment $e.Comment}}
{{- end}}
type {{$e.GoName}} string

const (
{{- range $e.Values}}
	{{.Const}} {{$e.GoName}} = {{printf "%q" .Label}}
{{- end}}
)

// {{$e.GoName}}Values lists the {{$e.Name}} labels in database order.
var {{$e.GoName}}Values = []{{$e.GoName}}{
{{- range $e.Values}}
	{{.Const}},
{{- end}}
}

// Valid reports whether e is a {{$e.Name}} label.
func (e {{$e.GoName}}) Valid() bool { return slices.Contains({{$e.GoName}}Values, e) }

// Scan implements sql.Scanner.
func (e *{{$e.GoName}}) Scan(src any) error { return dbtypes.ScanEnum(e, src) }

// Value implements driver.Valuer.
func (e {{$e.GoName}}) Value() (driver.Value, error) { return dbtypes.EnumDriverValue(e) }

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown labels.
func (e *{{$e.GoName}}) UnmarshalText(text []byte) error {
	v, err := dbtypes.ParseEnum[{{$e.GoName}}](string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
{{end}}
// Enum descriptors.
var (
{{- range .Enums}}
	{{.GoName}}Enum = dbtypes.NewEnum("{{.Name}}", []string{ {{- enumLabels . -}} }, {{.GoName}}Values)
{{- end}}
)
`

const functionsTemplate = header + `
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// Functions calls the schema's stored functions.
type Functions struct {
	q postgresdb.Querier
}

// NewFunctions binds the wrappers to a pool, connection or transaction.
func NewFunctions(q postgresdb.Querier) *Functions {
	return &Functions{q: q}
}
{{range $f := .Functions}}
{{- if $f.ResultStruct}}
// {{$f.ResultStruct}} is one row returned by {{$f.Name}}.
type {{$f.ResultStruct}} struct {
{{- range $f.ResultFields}}
	{{.GoName}} {{.Type}} ` + "`" + `db:"{{.Name}}" json:"{{.Name}}"` + "`" + `
{{- end}}
}
{{end}}
// {{$f.ArgsType}} are the arguments of {{$f.Name}}.
{{- if hasOptional $f}} Nil fields are left out of the call.{{end}}
type {{$f.ArgsType}} struct {
{{- range $f.Args}}
	{{.Field}} {{.GoType}}
{{- end}}
}

func (a {{$f.ArgsType}}) funcArgs() []postgresdb.FuncArg {
	return []postgresdb.FuncArg{
{{- range $f.Args}}
		{{funcArgLiteral .}},
{{- end}}
	}
}

// {{$f.GoName}} calls {{$f.Name}}.
{{- if $f.Comment}}
{{comment $f.Comment}}
{{- end}}
{{- if $f.Void}}
func (f *Functions) {{$f.GoName}}(ctx context.Context, args {{$f.ArgsType}}) error {
	return postgresdb.CallExec(ctx, f.q, SchemaName, "{{$f.Name}}", args.funcArgs()...)
}
{{- else}}
func (f *Functions) {{$f.GoName}}(ctx context.Context, args {{$f.ArgsType}}) ({{$f.Result}}, error) {
	return postgresdb.{{$f.Caller}}[{{$f.ResultElem}}](ctx, f.q, SchemaName, "{{$f.Name}}", args.funcArgs()...)
}
{{- end}}

// {{$f.DescriptorName}} describes {{$f.Name}}.
var {{$f.DescriptorName}} = &dbtypes.Function{
	Schema: SchemaName,
	Name:   "{{$f.Name}}",
	Args: []dbtypes.FunctionArg{
{{- range $f.Args}}
		{{functionArgLiteral .}},
{{- end}}
	},
	Returns:    "{{$f.ReturnType}}",
	ReturnsSet: {{$f.ReturnsSet}},
}
{{end}}`

const schemaTemplate = header + `
import "github.com/jrazmi/sitebook/core/dbtypes"

// SchemaName is the Postgres schema these bindings describe.
const SchemaName = "{{.SchemaName}}"

// Schema registers every table, enum and function of the schema by name.
var Schema = dbtypes.MustSchema(SchemaName,
	dbtypes.WithTables(
{{- range .Tables}}
		{{.Descriptor}},
{{- end}}
	),
	dbtypes.WithEnums(
{{- range .Enums}}
		{{.GoName}}Enum,
{{- end}}
	),
	dbtypes.WithFunctions(
{{- range .Functions}}
		{{.DescriptorName}},
{{- end}}
	),
)
`

const docTemplate = `// Package {{.Package}} holds the generated Go bindings of the {{.SchemaName}}
// schema: Row, Insert and Update shapes per table, enum types and typed
// wrappers for stored functions. Regenerate with "sitebook generate".
package {{.Package}}
`
