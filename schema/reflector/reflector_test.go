package reflector

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tables      []string
	columns     map[string][]ColumnInfo
	primaryKeys map[string][]string
	foreignKeys map[string][]ForeignKeyInfo
	indexes     map[string][]IndexInfo
	enums       []EnumInfo
	functions   []FunctionInfo
	columnsErr  error
}

func (f *fakeStore) GetTables(context.Context, string) ([]string, error) { return f.tables, nil }

func (f *fakeStore) GetColumns(_ context.Context, _, table string) ([]ColumnInfo, error) {
	if f.columnsErr != nil {
		return nil, f.columnsErr
	}
	return append([]ColumnInfo(nil), f.columns[table]...), nil
}

func (f *fakeStore) GetPrimaryKey(_ context.Context, _, table string) ([]string, error) {
	return f.primaryKeys[table], nil
}

func (f *fakeStore) GetForeignKeys(_ context.Context, _, table string) ([]ForeignKeyInfo, error) {
	return append([]ForeignKeyInfo(nil), f.foreignKeys[table]...), nil
}

func (f *fakeStore) GetIndexes(_ context.Context, _, table string) ([]IndexInfo, error) {
	return f.indexes[table], nil
}

func (f *fakeStore) GetConstraints(context.Context, string, string) ([]ConstraintInfo, error) {
	return nil, nil
}

func (f *fakeStore) GetTableComment(_ context.Context, _, table string) (string, error) {
	if table == "jobs" {
		return "Construction projects", nil
	}
	return "", nil
}

func (f *fakeStore) GetEnums(context.Context, string) ([]EnumInfo, error) { return f.enums, nil }

func (f *fakeStore) GetFunctions(context.Context, string) ([]FunctionInfo, error) {
	return append([]FunctionInfo(nil), f.functions...), nil
}

func (f *fakeStore) GetDatabaseName() string { return "sitebook" }
func (f *fakeStore) GetSourceType() string   { return "postgres" }

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: []string{"budgets", "jobs", "user_company_memberships"},
		columns: map[string][]ColumnInfo{
			"jobs": {
				{Name: "id", DBType: "uuid", UDTName: "uuid", HasDefault: true},
				{Name: "company_id", DBType: "uuid", UDTName: "uuid"},
				{Name: "status", DBType: "job_status", UDTName: "job_status", HasDefault: true},
			},
			"budgets": {
				{Name: "id", DBType: "uuid", UDTName: "uuid", HasDefault: true},
				{Name: "job_id", DBType: "uuid", UDTName: "uuid", Comment: "One budget per job's contract"},
			},
			"user_company_memberships": {
				{Name: "user_id", DBType: "uuid", UDTName: "uuid"},
				{Name: "company_id", DBType: "uuid", UDTName: "uuid"},
				{Name: "roles", DBType: "user_role[]", UDTName: "_user_role", IsArray: true, IsNullable: true},
			},
		},
		primaryKeys: map[string][]string{
			"jobs":                     {"id"},
			"budgets":                  {"id"},
			"user_company_memberships": {"user_id", "company_id"},
		},
		foreignKeys: map[string][]ForeignKeyInfo{
			"jobs": {
				{Name: "jobs_company_id_fkey", Columns: []string{"company_id"}, RefSchema: "public", RefTable: "companies", RefColumns: []string{"id"}},
			},
			"budgets": {
				{Name: "budgets_job_id_fkey", Columns: []string{"job_id"}, RefSchema: "public", RefTable: "jobs", RefColumns: []string{"id"}},
			},
			"user_company_memberships": {
				{Name: "ucm_pair_fkey", Columns: []string{"company_id", "user_id"}, RefSchema: "public", RefTable: "seats", RefColumns: []string{"company_id", "user_id"}},
			},
		},
		indexes: map[string][]IndexInfo{
			"budgets": {{Name: "budgets_job_id_key", Columns: []string{"job_id"}, Unique: true, Method: "btree"}},
			"jobs":    {{Name: "jobs_company_id_idx", Columns: []string{"company_id"}, Method: "btree"}},
		},
		enums: []EnumInfo{
			{Name: "job_status", Schema: "public", Values: []string{"pre_construction", "active"}},
			{Name: "user_role", Schema: "public", Values: []string{"owner", "viewer"}},
		},
		functions: []FunctionInfo{
			{
				Name:       "user_has_role",
				Schema:     "public",
				ReturnType: "boolean",
				Args: []FunctionArgInfo{
					{Name: "p_user_id", DBType: "uuid"},
					{Name: "p_roles", DBType: "user_role[]", IsArray: true},
				},
			},
			{
				Name:       "job_totals",
				Schema:     "public",
				ReturnType: "record",
				ReturnsSet: true,
				Args:       []FunctionArgInfo{{Name: "p_company_id", DBType: "uuid"}},
				ResultColumns: []FunctionColumnInfo{
					{Name: "job_id", DBType: "uuid"},
					{Name: "status", DBType: "job_status"},
					{Name: "billed", DBType: "numeric"},
				},
			},
		},
	}
}

func TestReflect(t *testing.T) {
	r := NewReflector(newFakeStore(), WithConcurrency(2))
	r.now = func() time.Time { return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC) }

	schema, err := r.Reflect(context.Background(), "public")
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, schema.Version)
	assert.Equal(t, "postgres", schema.Source)
	assert.Equal(t, "sitebook", schema.Database)
	assert.Len(t, schema.Tables, 3)
	assert.Len(t, schema.Enums, 2)

	jobs := schema.Tables["jobs"]
	require.NotNil(t, jobs)
	assert.Equal(t, "Construction projects", jobs.Comment)
	assert.Equal(t, []string{"id"}, jobs.PrimaryKey)
	assert.True(t, jobs.Column("id").IsPrimaryKey)
	assert.True(t, jobs.Column("company_id").IsForeignKey)
	assert.Equal(t, "job_status", jobs.Column("status").EnumName)
	assert.Empty(t, jobs.Column("id").EnumName)

	ucm := schema.Tables["user_company_memberships"]
	assert.Equal(t, "user_role", ucm.Column("roles").EnumName)

	require.Len(t, schema.Functions, 2)
	args := schema.Functions[0].Args
	assert.Empty(t, args[0].EnumName)
	assert.Equal(t, "user_role", args[1].EnumName)

	cols := schema.Functions[1].ResultColumns
	require.Len(t, cols, 3)
	assert.Empty(t, cols[0].EnumName)
	assert.Equal(t, "job_status", cols[1].EnumName)
}

func TestReflectOneToOne(t *testing.T) {
	schema, err := NewReflector(newFakeStore()).Reflect(context.Background(), "public")
	require.NoError(t, err)

	tests := []struct {
		table string
		want  bool
	}{
		{table: "budgets", want: true},                  // unique index on job_id
		{table: "jobs", want: false},                    // plain index only
		{table: "user_company_memberships", want: true}, // same set as the primary key
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			fks := schema.Tables[tt.table].ForeignKeys
			require.Len(t, fks, 1)
			assert.Equal(t, tt.want, fks[0].IsOneToOne)
		})
	}
}

func TestReflectPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.columnsErr = errors.New("connection reset")

	_, err := NewReflector(store).Reflect(context.Background(), "public")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBuildFunctionArgs(t *testing.T) {
	args := buildFunctionArgs(
		[]string{"p_company_id", "p_entity_type", "p_job_id"},
		nil,
		[]string{"uuid", "text", "uuid"},
		1,
	)
	require.Len(t, args, 3)
	assert.Equal(t, "p_company_id", args[0].Name)
	assert.False(t, args[0].HasDefault)
	assert.False(t, args[1].HasDefault)
	assert.True(t, args[2].HasDefault)

	// OUT arguments appear in names and modes but not in input types.
	args = buildFunctionArgs(
		[]string{"p_id", "total", "p_roles"},
		[]string{"i", "o", "i"},
		[]string{"uuid", "user_role[]"},
		0,
	)
	require.Len(t, args, 2)
	assert.Equal(t, "p_roles", args[1].Name)
	assert.True(t, args[1].IsArray)

	args = buildFunctionArgs(nil, nil, []string{"int4"}, 0)
	assert.Equal(t, "arg1", args[0].Name)
}

func TestBuildResultColumns(t *testing.T) {
	// RETURNS TABLE(job_id uuid, billed numeric) with one input argument.
	cols := buildResultColumns(
		[]string{"p_company_id", "job_id", "billed"},
		[]string{"i", "t", "t"},
		[]string{"uuid", "uuid", "numeric"},
	)
	assert.Equal(t, []FunctionColumnInfo{
		{Name: "job_id", DBType: "uuid"},
		{Name: "billed", DBType: "numeric"},
	}, cols)

	// INOUT arguments are both inputs and result columns; unnamed ones get a position.
	cols = buildResultColumns(
		[]string{"p_total", ""},
		[]string{"b", "o"},
		[]string{"integer", "text"},
	)
	assert.Equal(t, []FunctionColumnInfo{
		{Name: "p_total", DBType: "integer"},
		{Name: "column2", DBType: "text"},
	}, cols)

	assert.Empty(t, buildResultColumns([]string{"p_id"}, nil, nil))
}

func TestNormalizePostgresType(t *testing.T) {
	n := func(v int) *int { return &v }

	tests := []struct {
		dataType string
		udt      string
		max      *int
		prec     *int
		scale    *int
		want     string
	}{
		{dataType: "uuid", udt: "uuid", want: "uuid"},
		{dataType: "character varying", udt: "varchar", max: n(255), want: "varchar(255)"},
		{dataType: "numeric", udt: "numeric", prec: n(14), scale: n(2), want: "numeric(14,2)"},
		{dataType: "numeric", udt: "numeric", want: "numeric"},
		{dataType: "ARRAY", udt: "_text", want: "text[]"},
		{dataType: "ARRAY", udt: "_int4", want: "integer[]"},
		{dataType: "ARRAY", udt: "_user_role", want: "user_role[]"},
		{dataType: "USER-DEFINED", udt: "job_status", want: "job_status"},
		{dataType: "timestamp with time zone", udt: "timestamptz", want: "timestamp with time zone"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePostgresType(tt.dataType, tt.udt, tt.max, tt.prec, tt.scale))
		})
	}
}

func TestCleanDefaultValue(t *testing.T) {
	assert.Equal(t, "pre_construction", cleanDefaultValue("'pre_construction'::job_status"))
	assert.Equal(t, "{}", cleanDefaultValue("'{}'::text[]"))
	assert.Equal(t, "now()", cleanDefaultValue("now()"))
}

func TestReferentialAction(t *testing.T) {
	assert.Equal(t, "CASCADE", referentialAction("c"))
	assert.Equal(t, "SET_NULL", referentialAction("n"))
	assert.Equal(t, "NO_ACTION", referentialAction("a"))
}

func TestWriteAndReadJSON(t *testing.T) {
	schema, err := NewReflector(newFakeStore()).Reflect(context.Background(), "public")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public.json")
	require.NoError(t, WriteJSON(schema, path))

	loaded, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, schema.Tables["budgets"].ForeignKeys, loaded.Tables["budgets"].ForeignKeys)
	assert.Equal(t, schema.Enums, loaded.Enums)
	assert.Equal(t, schema.Functions, loaded.Functions)
}

func TestRenderSQL(t *testing.T) {
	schema, err := NewReflector(newFakeStore()).Reflect(context.Background(), "public")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderSQL(&buf, schema))
	out := buf.String()

	assert.Contains(t, out, "CREATE TYPE public.job_status AS ENUM ('pre_construction', 'active');")
	assert.Contains(t, out, "CREATE TABLE public.jobs (")
	assert.Contains(t, out, "    PRIMARY KEY (user_id, company_id)")
	assert.Contains(t, out, "CONSTRAINT budgets_job_id_fkey FOREIGN KEY (job_id) REFERENCES public.jobs(id)")
	assert.Contains(t, out, "CREATE UNIQUE INDEX budgets_job_id_key ON public.budgets USING btree (job_id);")
	assert.Contains(t, out, "COMMENT ON TABLE public.jobs IS 'Construction projects';")
	assert.Contains(t, out, "COMMENT ON COLUMN public.budgets.job_id IS 'One budget per job''s contract';")
	assert.Contains(t, out, "-- FUNCTION public.user_has_role(p_user_id uuid, p_roles user_role[]) RETURNS boolean")
	assert.Contains(t, out, "-- FUNCTION public.job_totals(p_company_id uuid) RETURNS TABLE(job_id uuid, status job_status, billed numeric)")
}
