package schema

import (
	"testing"

	"github.com/jrazmi/sitebook/schema/reflector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"id":                 "ID",
		"company_id":         "CompanyID",
		"avatar_url":         "AvatarURL",
		"osha_recordable":    "OSHARecordable",
		"gl_journal_entries": "GLJournalEntries",
		"in_app":             "InApp",
		"sms":                "SMS",
		"pre_construction":   "PreConstruction",
		"rain-heavy":         "RainHeavy",
		"net 30":             "Net30",
		"2fa_required":       "X2faRequired",
		"__weird__name":      "WeirdName",
		"ça_va":              "ÇaVa",
		"":                   "X",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToPascalCase(in), in)
	}
}

func TestEntityName(t *testing.T) {
	tests := map[string]string{
		"jobs":                     "Job",
		"companies":                "Company",
		"gl_journal_entries":       "GLJournalEntry",
		"ap_bills":                 "APBill",
		"user_company_memberships": "UserCompanyMembership",
		"schedule_dependencies":    "ScheduleDependency",
		"addresses":                "Address",
		"boxes":                    "Box",
		"access":                   "Access",
	}
	for in, want := range tests {
		assert.Equal(t, want, EntityName(in), in)
	}
}

func TestArgFieldName(t *testing.T) {
	assert.Equal(t, "CompanyID", ArgFieldName("p_company_id"))
	assert.Equal(t, "Roles", ArgFieldName("p_roles"))
	assert.Equal(t, "Limit", ArgFieldName("limit"))
}

func TestMapPostgreSQLType(t *testing.T) {
	enums := map[string]string{"job_status": "JobStatus", "user_role": "UserRole"}

	tests := []struct {
		dbType string
		want   GoType
	}{
		{"uuid", GoType{Name: "uuid.UUID", Import: uuidImport}},
		{"text", GoType{Name: "string"}},
		{"varchar(255)", GoType{Name: "string"}},
		{"numeric(14,2)", GoType{Name: "float64"}},
		{"integer", GoType{Name: "int"}},
		{"bigint", GoType{Name: "int64"}},
		{"boolean", GoType{Name: "bool"}},
		{"date", GoType{Name: "time.Time", Import: timeImport}},
		{"timestamp with time zone", GoType{Name: "time.Time", Import: timeImport}},
		{"jsonb", GoType{Name: "dbtypes.JSON", Import: dbtypesImport, Nilable: true}},
		{"text[]", GoType{Name: "[]string", Nilable: true}},
		{"uuid[]", GoType{Name: "[]uuid.UUID", Import: uuidImport, Nilable: true}},
		{"job_status", GoType{Name: "JobStatus"}},
		{"user_role[]", GoType{Name: "[]UserRole", Nilable: true}},
		{"time without time zone", GoType{Name: "pgtype.Time", Import: pgtypeImport}},
		{"time(0) without time zone", GoType{Name: "pgtype.Time", Import: pgtypeImport}},
		{"time with time zone", GoType{Name: "string"}},
		{"interval", GoType{Name: "pgtype.Interval", Import: pgtypeImport}},
	}
	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			got, err := MapPostgreSQLType(tt.dbType, enums)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MapPostgreSQLType("tsvector", enums)
	assert.Error(t, err)
}

func reflectedFixture() *reflector.ReflectedSchema {
	return &reflector.ReflectedSchema{
		Source:     "postgres",
		Database:   "sitebook",
		SchemaName: "public",
		Enums: []reflector.EnumInfo{
			{Name: "user_role", Values: []string{"owner", "viewer"}},
			{Name: "job_status", Values: []string{"pre_construction", "active"}},
		},
		Tables: map[string]*reflector.TableInfo{
			"jobs": {
				TableName:  "jobs",
				Schema:     "public",
				PrimaryKey: []string{"id"},
				Columns: []reflector.ColumnInfo{
					{Name: "name", Ordinal: 3, DBType: "text"},
					{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true},
					{Name: "company_id", Ordinal: 2, DBType: "uuid"},
					{Name: "status", Ordinal: 4, DBType: "job_status", EnumName: "job_status", HasDefault: true},
					{Name: "description", Ordinal: 5, DBType: "text", IsNullable: true},
					{Name: "address", Ordinal: 6, DBType: "jsonb", IsNullable: true},
					{Name: "tags", Ordinal: 7, DBType: "text[]", HasDefault: true},
					{Name: "total", Ordinal: 8, DBType: "numeric", IsNullable: true, IsGenerated: true},
					{Name: "shift", Ordinal: 9, DBType: "text", IsNullable: true, HasDefault: true},
				},
				ForeignKeys: []reflector.ForeignKeyInfo{
					{Name: "jobs_company_id_fkey", Columns: []string{"company_id"}, RefTable: "companies", RefColumns: []string{"id"}},
				},
			},
			"user_invitations": {
				TableName:  "user_invitations",
				Schema:     "public",
				PrimaryKey: []string{"id"},
				Columns: []reflector.ColumnInfo{
					{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true},
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
					{Name: "p_at", DBType: "date", HasDefault: true},
				},
			},
			{
				Name:       "get_invitation_by_token",
				Schema:     "public",
				ReturnType: "user_invitations",
				ReturnsSet: true,
				Args:       []reflector.FunctionArgInfo{{Name: "p_token_hash", DBType: "text"}},
			},
		},
	}
}

func TestBuildModel(t *testing.T) {
	m, err := BuildModel(reflectedFixture())
	require.NoError(t, err)

	assert.Equal(t, "postgres sitebook.public", m.Source)
	require.Len(t, m.Enums, 2)
	assert.Equal(t, "job_status", m.Enums[0].Name)
	assert.Equal(t, "JobStatusPreConstruction", m.Enums[0].Values[0].Const)

	require.Len(t, m.Tables, 2)
	jobs := m.Tables[0]
	assert.Equal(t, "Job", jobs.Entity)
	assert.Equal(t, "Jobs", jobs.Descriptor)
	assert.Equal(t, "jobs_gen.go", jobs.FileName)

	var names []string
	for _, c := range jobs.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"id", "company_id", "name", "status", "description", "address", "tags", "total", "shift"}, names)

	byName := make(map[string]*Column)
	for _, c := range jobs.Columns {
		byName[c.Name] = c
	}

	tests := []struct {
		column   string
		row      string
		insert   string
		optional bool
		update   string
	}{
		{"id", "uuid.UUID", "*uuid.UUID", true, "dbtypes.Patch[uuid.UUID]"},
		{"company_id", "uuid.UUID", "uuid.UUID", false, "dbtypes.Patch[uuid.UUID]"},
		{"name", "string", "string", false, "dbtypes.Patch[string]"},
		{"status", "JobStatus", "*JobStatus", true, "dbtypes.Patch[JobStatus]"},
		{"description", "*string", "*string", true, "dbtypes.Patch[*string]"},
		{"address", "dbtypes.JSON", "dbtypes.JSON", true, "dbtypes.Patch[dbtypes.JSON]"},
		{"tags", "[]string", "[]string", true, "dbtypes.Patch[[]string]"},
		{"shift", "*string", "dbtypes.Patch[*string]", true, "dbtypes.Patch[*string]"},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			c := byName[tt.column]
			assert.Equal(t, tt.row, c.RowType)
			assert.Equal(t, tt.insert, c.InsertType)
			assert.Equal(t, tt.optional, c.InsertOptional)
			assert.Equal(t, tt.update, c.UpdateType)
		})
	}

	assert.True(t, byName["shift"].InsertPatch)
	assert.False(t, byName["description"].InsertPatch)
	assert.Len(t, jobs.WritableColumns(), 8)
	assert.Equal(t, []string{uuidImport, dbtypesImport}, jobs.Imports())
	assert.Equal(t, []Relationship{
		{Name: "jobs_company_id_fkey", Columns: []string{"company_id"}, RefTable: "companies", RefColumns: []string{"id"}},
	}, jobs.Relationships)
}

func TestBuildModelFunctions(t *testing.T) {
	m, err := BuildModel(reflectedFixture())
	require.NoError(t, err)
	require.Len(t, m.Functions, 2)

	hasRole := m.Functions[0]
	assert.Equal(t, "UserHasRole", hasRole.GoName)
	assert.Equal(t, "UserHasRoleArgs", hasRole.ArgsType())
	assert.Equal(t, "UserHasRoleFunction", hasRole.DescriptorName())
	assert.Equal(t, "bool", hasRole.Result)
	assert.Equal(t, "CallScalar", hasRole.Caller())

	require.Len(t, hasRole.Args, 3)
	assert.Equal(t, "uuid.UUID", hasRole.Args[0].GoType)
	assert.Equal(t, "[]UserRole", hasRole.Args[1].GoType)
	assert.Equal(t, "dbtypes.EnumStrings(a.Roles)", hasRole.Args[1].ValueExpr("a"))
	assert.Equal(t, "*time.Time", hasRole.Args[2].GoType)
	assert.True(t, hasRole.Args[2].Optional)

	invite := m.Functions[1]
	assert.True(t, invite.RowResult)
	assert.Equal(t, "[]UserInvitation", invite.Result)
	assert.Equal(t, "UserInvitation", invite.ResultElem)
	assert.Equal(t, "CallRows", invite.Caller())

	assert.Equal(t, []string{"context", uuidImport, dbtypesImport, postgresdbImport, timeImport}, m.FunctionImports())
}

func TestBuildModelFallsBackToAny(t *testing.T) {
	r := reflectedFixture()
	r.Tables["jobs"].Columns = append(r.Tables["jobs"].Columns,
		reflector.ColumnInfo{Name: "search", Ordinal: 10, DBType: "tsvector"},
		reflector.ColumnInfo{Name: "area", Ordinal: 11, DBType: "point", IsNullable: true},
	)

	m, err := BuildModel(r)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"table jobs: column search: unknown PostgreSQL type: tsvector",
		"table jobs: column area: unknown PostgreSQL type: point",
	}, m.Warnings)

	search := m.Tables[0].Columns[9]
	assert.Equal(t, "any", search.RowType)
	assert.Equal(t, "any", search.InsertType)
	assert.Equal(t, "dbtypes.Patch[any]", search.UpdateType)
	assert.Equal(t, "any", m.Tables[0].Columns[10].RowType)
}

func TestBuildModelTimeColumns(t *testing.T) {
	r := reflectedFixture()
	r.Tables["jobs"].Columns = append(r.Tables["jobs"].Columns,
		reflector.ColumnInfo{Name: "start_time", Ordinal: 10, DBType: "time without time zone", IsNullable: true},
		reflector.ColumnInfo{Name: "duration", Ordinal: 11, DBType: "interval"},
	)

	m, err := BuildModel(r)
	require.NoError(t, err)
	assert.Empty(t, m.Warnings)

	jobs := m.Tables[0]
	assert.Equal(t, "*pgtype.Time", jobs.Columns[9].RowType)
	assert.Equal(t, "pgtype.Interval", jobs.Columns[10].RowType)
	assert.Equal(t, "pgtype.Interval", jobs.Columns[10].InsertType)
	assert.Contains(t, jobs.Imports(), pgtypeImport)
}

func TestBuildModelVoidFunction(t *testing.T) {
	r := reflectedFixture()
	r.Functions = append(r.Functions, reflector.FunctionInfo{
		Name:       "touch_job",
		Schema:     "public",
		ReturnType: "void",
		Args:       []reflector.FunctionArgInfo{{Name: "p_job_id", DBType: "uuid"}},
	})

	m, err := BuildModel(r)
	require.NoError(t, err)
	require.Len(t, m.Functions, 3)

	touch := m.Functions[2]
	assert.True(t, touch.Void)
	assert.Equal(t, "CallExec", touch.Caller())
	assert.Empty(t, touch.Result)
	assert.Empty(t, m.Warnings)
}

func TestBuildModelTableFunction(t *testing.T) {
	r := reflectedFixture()
	r.Functions = append(r.Functions, reflector.FunctionInfo{
		Name:       "job_totals",
		Schema:     "public",
		ReturnType: "record",
		ReturnsSet: true,
		Args:       []reflector.FunctionArgInfo{{Name: "p_company_id", DBType: "uuid"}},
		ResultColumns: []reflector.FunctionColumnInfo{
			{Name: "job_id", DBType: "uuid"},
			{Name: "status", DBType: "job_status", EnumName: "job_status"},
			{Name: "billed", DBType: "numeric"},
			{Name: "last_billed_at", DBType: "timestamp with time zone"},
		},
	})

	m, err := BuildModel(r)
	require.NoError(t, err)

	totals := m.Functions[2]
	assert.True(t, totals.RowResult)
	assert.Equal(t, "JobTotalsResult", totals.ResultStruct)
	assert.Equal(t, "[]JobTotalsResult", totals.Result)
	assert.Equal(t, "CallRows", totals.Caller())
	assert.Equal(t, []ResultField{
		{Name: "job_id", GoName: "JobID", Type: "*uuid.UUID", Import: uuidImport},
		{Name: "status", GoName: "Status", Type: "*JobStatus"},
		{Name: "billed", GoName: "Billed", Type: "*float64"},
		{Name: "last_billed_at", GoName: "LastBilledAt", Type: "*time.Time", Import: timeImport},
	}, totals.ResultFields)

	// A bare record without column names cannot be described.
	r.Functions[2].ResultColumns = nil
	m, err = BuildModel(r)
	require.NoError(t, err)
	assert.Equal(t, "[]any", m.Functions[2].Result)
	assert.Equal(t, []string{"function job_totals: result: unknown PostgreSQL type: record"}, m.Warnings)
}

func TestBuildModelEnumLabelsBecomeIdentifiers(t *testing.T) {
	r := reflectedFixture()
	r.Enums = append(r.Enums, reflector.EnumInfo{Name: "weather", Values: []string{"clear", "rain-heavy", "30+ mph wind"}})

	m, err := BuildModel(r)
	require.NoError(t, err)

	weather := m.Enums[2]
	assert.Equal(t, []EnumValue{
		{Label: "clear", Const: "WeatherClear"},
		{Label: "rain-heavy", Const: "WeatherRainHeavy"},
		{Label: "30+ mph wind", Const: "Weather30MphWind"},
	}, weather.Values)
}

func TestBuildModelRejectsNameCollisions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *reflector.ReflectedSchema)
		want   string
	}{
		{
			name: "enum and table entity",
			modify: func(r *reflector.ReflectedSchema) {
				r.Enums = append(r.Enums, reflector.EnumInfo{Name: "job", Values: []string{"a"}})
			},
			want: "table jobs and enum job both declare Job",
		},
		{
			name: "enum constant and enum type",
			modify: func(r *reflector.ReflectedSchema) {
				r.Enums = append(r.Enums, reflector.EnumInfo{Name: "job_status_active", Values: []string{"x"}})
			},
			want: `enum job_status label "active" and enum job_status_active both declare JobStatusActive`,
		},
		{
			name: "tables with the same entity",
			modify: func(r *reflector.ReflectedSchema) {
				r.Tables["job"] = &reflector.TableInfo{TableName: "job", Schema: "public"}
			},
			want: "table job and table jobs both declare Job",
		},
		{
			name: "table file and enums file",
			modify: func(r *reflector.ReflectedSchema) {
				r.Tables["enums"] = &reflector.TableInfo{TableName: "enums", Schema: "public"}
			},
			want: "the enum declarations and table enums both write enums_gen.go",
		},
		{
			name: "columns with the same field",
			modify: func(r *reflector.ReflectedSchema) {
				r.Tables["user_invitations"].Columns = append(r.Tables["user_invitations"].Columns,
					reflector.ColumnInfo{Name: "token-hash", Ordinal: 2, DBType: "text"},
					reflector.ColumnInfo{Name: "token_hash", Ordinal: 3, DBType: "text"},
				)
			},
			want: "table user_invitations: column token-hash and column token_hash both map to field TokenHash",
		},
		{
			name: "overloaded function",
			modify: func(r *reflector.ReflectedSchema) {
				r.Functions = append(r.Functions, reflector.FunctionInfo{
					Name:       "user_has_role",
					Schema:     "public",
					ReturnType: "boolean",
					Args:       []reflector.FunctionArgInfo{{Name: "p_user_id", DBType: "uuid"}},
				})
			},
			want: "function user_has_role is overloaded",
		},
		{
			name: "registry and table",
			modify: func(r *reflector.ReflectedSchema) {
				r.Tables["schema"] = &reflector.TableInfo{TableName: "schema", Schema: "public"}
			},
			want: "the schema registry and table schema both declare Schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reflectedFixture()
			tt.modify(r)

			_, err := BuildModel(r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildModelSingularTableDescriptor(t *testing.T) {
	r := reflectedFixture()
	r.Tables["equipment"] = &reflector.TableInfo{
		TableName: "equipment",
		Schema:    "public",
		Columns:   []reflector.ColumnInfo{{Name: "id", Ordinal: 1, DBType: "uuid"}},
	}

	m, err := BuildModel(r)
	require.NoError(t, err)

	equipment := m.Tables[0]
	assert.Equal(t, "Equipment", equipment.Entity)
	assert.Equal(t, "EquipmentTable", equipment.Descriptor)
}
