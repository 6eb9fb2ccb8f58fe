package bindgen

import (
	"bytes"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jrazmi/sitebook/app/generators/schema"
	"github.com/jrazmi/sitebook/schema/reflector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T) *schema.Model {
	t.Helper()
	m, err := schema.BuildModel(&reflector.ReflectedSchema{
		Source:     "postgres",
		Database:   "sitebook",
		SchemaName: "public",
		Enums: []reflector.EnumInfo{
			{Name: "punch_item_status", Values: []string{"open", "in_progress", "closed"}},
			{Name: "user_role", Values: []string{"owner", "viewer"}},
		},
		Tables: map[string]*reflector.TableInfo{
			"punch_items": {
				TableName:  "punch_items",
				Schema:     "public",
				Comment:    "Open items found during walkthroughs",
				PrimaryKey: []string{"id"},
				Columns: []reflector.ColumnInfo{
					{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true},
					{Name: "job_id", Ordinal: 2, DBType: "uuid"},
					{Name: "title", Ordinal: 3, DBType: "text"},
					{Name: "status", Ordinal: 4, DBType: "punch_item_status", EnumName: "punch_item_status", HasDefault: true},
					{Name: "photos", Ordinal: 5, DBType: "text[]", IsNullable: true},
					{Name: "due_date", Ordinal: 6, DBType: "date", IsNullable: true},
					{Name: "trade", Ordinal: 7, DBType: "text", IsNullable: true, HasDefault: true},
				},
				ForeignKeys: []reflector.ForeignKeyInfo{
					{Name: "punch_items_job_id_fkey", Columns: []string{"job_id"}, RefTable: "jobs", RefColumns: []string{"id"}},
				},
			},
		},
		Functions: []reflector.FunctionInfo{
			{
				Name:       "user_has_role",
				Schema:     "public",
				ReturnType: "boolean",
				Args: []reflector.FunctionArgInfo{
					{Name: "p_user_id", DBType: "uuid"},
					{Name: "p_roles", DBType: "user_role[]", IsArray: true, EnumName: "user_role"},
					{Name: "p_job_id", DBType: "uuid", HasDefault: true},
				},
			},
		},
	})
	require.NoError(t, err)
	return m
}

func TestRender(t *testing.T) {
	files, err := Render(testModel(t), "platform")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"punch_items_gen.go",
		"enums_gen.go",
		"functions_gen.go",
		"schema_gen.go",
		"doc.go",
	}, keys(files))

	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		assert.NoError(t, err, name)
	}

	table := string(files["punch_items_gen.go"])
	assert.Contains(t, table, "// Code generated by sitebook generate. DO NOT EDIT.")
	assert.Contains(t, table, "package platform")
	assert.Contains(t, table, "// Open items found during walkthroughs")
	assert.Contains(t, table, "type PunchItem struct {")
	assert.Contains(t, table, "type PunchItemInsert struct {")
	assert.Contains(t, table, "type PunchItemUpdate struct {")
	assert.Regexp(t, `JobID\s+uuid\.UUID\s+`+"`"+`db:"job_id" json:"job_id"`+"`", table)
	assert.Regexp(t, `Status\s+\*PunchItemStatus\s+`+"`"+`db:"status" json:"status,omitempty"`+"`", table)
	assert.Regexp(t, `Photos\s+dbtypes\.Patch\[\[\]string\]\s+`+"`"+`db:"photos" json:"photos,omitzero"`+"`", table)
	// Insert and Update both carry the nullable column with a default as a Patch.
	trade := regexp.MustCompile(`Trade\s+dbtypes\.Patch\[\*string\]\s+` + "`" + `db:"trade" json:"trade,omitzero"` + "`")
	assert.Len(t, trade.FindAllString(table, -1), 2)
	assert.Contains(t, table, "var PunchItems = dbtypes.NewTable[PunchItem, PunchItemInsert, PunchItemUpdate](dbtypes.TableInfo{")
	assert.Contains(t, table, `{Name: "status", DBType: "punch_item_status", HasDefault: true, Enum: "punch_item_status"},`)
	assert.Regexp(t, `ForeignKeyName:\s+"punch_items_job_id_fkey"`, table)
	assert.Contains(t, table, `"time"`)

	enums := string(files["enums_gen.go"])
	assert.Regexp(t, `PunchItemStatusInProgress\s+PunchItemStatus = "in_progress"`, enums)
	assert.Contains(t, enums, "func (e *UserRole) UnmarshalText(text []byte) error {")
	assert.Contains(t, enums, `dbtypes.NewEnum("user_role", []string{"owner", "viewer"}, UserRoleValues)`)

	fns := string(files["functions_gen.go"])
	assert.Contains(t, fns, "// UserHasRoleArgs are the arguments of user_has_role. Nil fields are left out of the call.")
	assert.Contains(t, fns, `{Name: "p_roles", Value: dbtypes.EnumStrings(a.Roles), Cast: "user_role[]"},`)
	assert.Contains(t, fns, `{Name: "p_job_id", Value: a.JobID, Omit: a.JobID == nil},`)
	assert.Contains(t, fns, "func (f *Functions) UserHasRole(ctx context.Context, args UserHasRoleArgs) (bool, error) {")
	assert.Contains(t, fns, `postgresdb.CallScalar[bool](ctx, f.q, SchemaName, "user_has_role", args.funcArgs()...)`)

	reg := string(files["schema_gen.go"])
	assert.Contains(t, reg, `const SchemaName = "public"`)
	assert.Contains(t, reg, "\t\tPunchItems,\n")
	assert.Contains(t, reg, "\t\tUserRoleEnum,\n")
	assert.Contains(t, reg, "\t\tUserHasRoleFunction,\n")
}

func TestRenderUnusualShapes(t *testing.T) {
	m, err := schema.BuildModel(&reflector.ReflectedSchema{
		Source:     "postgres",
		Database:   "sitebook",
		SchemaName: "public",
		Enums: []reflector.EnumInfo{
			{Name: "weather", Comment: "Site conditions\nrecorded at 7am", Values: []string{"clear", "rain-heavy", `say "stop"`}},
		},
		Tables: map[string]*reflector.TableInfo{
			"crew_shifts": {
				TableName:  "crew_shifts",
				Schema:     "public",
				PrimaryKey: []string{"id"},
				Columns: []reflector.ColumnInfo{
					{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true},
					{Name: "start_time", Ordinal: 2, DBType: "time without time zone"},
					{Name: "duration", Ordinal: 3, DBType: "interval", IsNullable: true},
					{Name: "search", Ordinal: 4, DBType: "tsvector", IsNullable: true},
				},
			},
		},
		Functions: []reflector.FunctionInfo{
			{
				Name:       "touch_job",
				Schema:     "public",
				ReturnType: "void",
				Args:       []reflector.FunctionArgInfo{{Name: "p_job_id", DBType: "uuid"}},
			},
			{
				Name:       "job_totals",
				Schema:     "public",
				ReturnType: "record",
				ReturnsSet: true,
				Comment:    "Billed totals per job.\nExcludes voided invoices.",
				Args:       []reflector.FunctionArgInfo{{Name: "p_company_id", DBType: "uuid"}},
				ResultColumns: []reflector.FunctionColumnInfo{
					{Name: "job_id", DBType: "uuid"},
					{Name: "billed", DBType: "numeric"},
					{Name: "window", DBType: "interval"},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"table crew_shifts: column search: unknown PostgreSQL type: tsvector"}, m.Warnings)

	files, err := Render(m, "platform")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		assert.NoError(t, err, name)
	}

	enums := string(files["enums_gen.go"])
	assert.Regexp(t, `WeatherRainHeavy\s+Weather = "rain-heavy"`, enums)
	assert.Regexp(t, `WeatherSayStop\s+Weather = "say \\"stop\\""`, enums)
	assert.Contains(t, enums, "// Site conditions\n// recorded at 7am\n")

	table := string(files["crew_shifts_gen.go"])
	assert.Contains(t, table, `"github.com/jackc/pgx/v5/pgtype"`)
	assert.Regexp(t, `StartTime\s+pgtype\.Time\s+`, table)
	assert.Regexp(t, `Duration\s+\*pgtype\.Interval\s+`, table)
	assert.Regexp(t, `Search\s+any\s+`, table)

	fns := string(files["functions_gen.go"])
	assert.Contains(t, fns, "func (f *Functions) TouchJob(ctx context.Context, args TouchJobArgs) error {")
	assert.Contains(t, fns, `return postgresdb.CallExec(ctx, f.q, SchemaName, "touch_job", args.funcArgs()...)`)
	assert.Contains(t, fns, "// JobTotalsResult is one row returned by job_totals.\ntype JobTotalsResult struct {")
	assert.Regexp(t, `Billed\s+\*float64\s+`+"`"+`db:"billed" json:"billed"`+"`", fns)
	assert.Regexp(t, `Window\s+\*pgtype\.Interval\s+`, fns)
	assert.Contains(t, fns, "// Billed totals per job.\n// Excludes voided invoices.\n")
	assert.Contains(t, fns, "func (f *Functions) JobTotals(ctx context.Context, args JobTotalsArgs) ([]JobTotalsResult, error) {")
	assert.Contains(t, fns, `postgresdb.CallRows[JobTotalsResult](ctx, f.q, SchemaName, "job_totals", args.funcArgs()...)`)
	assert.Contains(t, fns, `"github.com/jackc/pgx/v5/pgtype"`)
}

func TestGenerateLogsFallbacks(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "public.json")
	require.NoError(t, reflector.WriteJSON(&reflector.ReflectedSchema{
		Source:     "postgres",
		SchemaName: "public",
		Tables: map[string]*reflector.TableInfo{
			"documents": {
				TableName: "documents",
				Schema:    "public",
				Columns:   []reflector.ColumnInfo{{Name: "search", Ordinal: 1, DBType: "tsvector", IsNullable: true}},
			},
		},
	}, input))

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	g := New(Config{InputPath: input, OutputDir: filepath.Join(dir, "out"), PackageName: "out"}, log)
	require.NoError(t, g.Generate())

	assert.Contains(t, buf.String(), `msg="type mapped to any"`)
	assert.Contains(t, buf.String(), "unknown PostgreSQL type: tsvector")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.go"), []byte("// custom\npackage platform\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dropped_table_gen.go"), []byte("package platform\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helpers.go"), []byte("package platform\n"), 0o644))

	files, err := Render(testModel(t), "platform")
	require.NoError(t, err)
	require.NoError(t, WriteFiles(dir, files, nil))

	doc, err := os.ReadFile(filepath.Join(dir, "doc.go"))
	require.NoError(t, err)
	assert.Equal(t, "// custom\npackage platform\n", string(doc))

	assert.NoFileExists(t, filepath.Join(dir, "dropped_table_gen.go"))
	assert.FileExists(t, filepath.Join(dir, "helpers.go"))
	assert.FileExists(t, filepath.Join(dir, "punch_items_gen.go"))

	got, err := os.ReadFile(filepath.Join(dir, "schema_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, files["schema_gen.go"], got)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "public.json")

	r := &reflector.ReflectedSchema{
		Source:     "postgres",
		SchemaName: "public",
		Tables: map[string]*reflector.TableInfo{
			"vendors": {
				TableName:  "vendors",
				Schema:     "public",
				PrimaryKey: []string{"id"},
				Columns:    []reflector.ColumnInfo{{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true}},
			},
		},
	}
	require.NoError(t, reflector.WriteJSON(r, input))

	out := filepath.Join(dir, "bindings")
	g := New(Config{InputPath: input, OutputDir: out, PackageName: "bindings"}, nil)
	require.NoError(t, g.Generate())

	assert.FileExists(t, filepath.Join(out, "vendors_gen.go"))
	assert.FileExists(t, filepath.Join(out, "schema_gen.go"))
	assert.FileExists(t, filepath.Join(out, "doc.go"))
	assert.NoFileExists(t, filepath.Join(out, "enums_gen.go"))
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
