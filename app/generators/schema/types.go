package schema

// Model is everything the binding generator needs for one database schema.
type Model struct {
	SchemaName string
	Source     string // e.g. "postgres sitebook.public"
	Tables     []*Table
	Enums      []*Enum
	Functions  []*Function

	// Warnings lists types that fell back to any.
	Warnings []string
}

// Table is one table with derived Go names and field projections.
type Table struct {
	Name       string // "gl_journal_entries"
	Schema     string // "public"
	Comment    string
	Entity     string // "GLJournalEntry": Row type, prefix of Insert/Update
	Descriptor string // "GLJournalEntries": the dbtypes.Table variable
	FileName   string // "gl_journal_entries_gen.go"

	Columns       []*Column
	PrimaryKey    []string
	Relationships []Relationship
}

// WritableColumns returns the columns present in Insert and Update shapes.
func (t *Table) WritableColumns() []*Column {
	var out []*Column
	for _, c := range t.Columns {
		if !c.Generated {
			out = append(out, c)
		}
	}
	return out
}

// Imports returns the import paths the table's shapes need.
func (t *Table) Imports() []string {
	set := map[string]bool{dbtypesImport: true}
	for _, c := range t.Columns {
		if c.Type.Import != "" {
			set[c.Type.Import] = true
		}
	}
	return sortedKeys(set)
}

// Column is one column and the Go types of its Row, Insert and Update fields.
type Column struct {
	Name       string // "project_manager_id"
	GoName     string // "ProjectManagerID"
	DBType     string
	Comment    string
	Nullable   bool
	HasDefault bool
	Identity   bool
	Generated  bool
	Enum       string // Postgres enum name when the column (or its element) is an enum

	Type GoType // the non-null Go type of a value

	RowType        string // "*uuid.UUID"
	InsertType     string // "*uuid.UUID"
	InsertOptional bool
	InsertPatch    bool   // nullable with a default: unset, a value or NULL
	UpdateType     string // "dbtypes.Patch[*uuid.UUID]"
}

// InsertRequired reports whether Insert shapes must supply the column.
func (c *Column) InsertRequired() bool {
	return !c.Nullable && !c.HasDefault && !c.Identity && !c.Generated
}

// GoType is a Go type expression and the import it needs.
type GoType struct {
	Name    string // "uuid.UUID", "[]string", "JobStatus"
	Import  string // "github.com/google/uuid"
	Nilable bool   // slices and dbtypes.JSON carry their own null
}

// Relationship is a foreign key seen from the referencing table.
type Relationship struct {
	Name       string
	Columns    []string
	OneToOne   bool
	RefTable   string
	RefColumns []string
}

// Enum is a Postgres enum rendered as a named string type.
type Enum struct {
	Name    string // "job_status"
	GoName  string // "JobStatus"
	Comment string
	Values  []EnumValue
}

// EnumValue is one label and its Go constant.
type EnumValue struct {
	Label string // "pre_construction"
	Const string // "JobStatusPreConstruction"
}

// Function is a stored function exposed as a typed RPC wrapper.
type Function struct {
	Name       string // "next_sequence_number"
	GoName     string // "NextSequenceNumber"
	Schema     string
	Comment    string
	Args       []FunctionArg
	ReturnType string // Postgres return type
	ReturnsSet bool
	Void       bool   // returns void; the wrapper only reports errors
	RowResult  bool   // returns rows of a table type or of ResultStruct
	Result     string // Go result: "string", "bool", "[]UserInvitation"
	ResultElem string // Go type of one returned value or row

	// ResultStruct names the generated row type of a RETURNS TABLE or
	// multi-OUT function; ResultFields are its columns.
	ResultStruct string
	ResultFields []ResultField
}

// ResultField is one column of a generated function result row.
type ResultField struct {
	Name   string // "billed"
	GoName string // "Billed"
	Type   string // "*float64"
	Import string
}

// Caller names the postgresdb helper that runs the call.
func (f *Function) Caller() string {
	switch {
	case f.Void:
		return "CallExec"
	case f.RowResult && f.ReturnsSet:
		return "CallRows"
	case f.RowResult:
		return "CallRow"
	case f.ReturnsSet:
		return "CallScalars"
	default:
		return "CallScalar"
	}
}

// ArgsType is the name of the generated argument struct.
func (f *Function) ArgsType() string {
	return f.GoName + "Args"
}

// DescriptorName is the name of the generated dbtypes.Function variable.
func (f *Function) DescriptorName() string {
	return f.GoName + "Function"
}

// FunctionArg is one input argument of a stored function.
type FunctionArg struct {
	Name     string // "p_job_id"
	Field    string // "JobID"
	DBType   string // "uuid"
	GoType   string // "*uuid.UUID"
	Optional bool
	Enum     string // set for enum and enum array arguments
	IsArray  bool
	Import   string
}

// ValueExpr is the Go expression passed as the argument value.
func (a FunctionArg) ValueExpr(recv string) string {
	v := recv + "." + a.Field
	switch {
	case a.Enum != "" && a.IsArray:
		return "dbtypes.EnumStrings(" + v + ")"
	case a.Enum != "" && a.Optional:
		return v
	case a.Enum != "":
		return "string(" + v + ")"
	}
	return v
}

const (
	dbtypesImport    = "github.com/jrazmi/sitebook/core/dbtypes"
	postgresdbImport = "github.com/jrazmi/sitebook/infrastructure/postgresdb"
)

// FunctionImports returns the import paths functions_gen.go needs.
func (m *Model) FunctionImports() []string {
	set := map[string]bool{
		"context":        true,
		dbtypesImport:    true,
		postgresdbImport: true,
	}
	for _, f := range m.Functions {
		for _, a := range f.Args {
			if a.Import != "" {
				set[a.Import] = true
			}
		}
		for _, r := range f.ResultFields {
			if r.Import != "" {
				set[r.Import] = true
			}
		}
	}
	return sortedKeys(set)
}
