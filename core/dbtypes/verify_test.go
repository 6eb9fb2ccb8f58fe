package dbtypes

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyConsistentSchema(t *testing.T) {
	s, err := testSchema()
	require.NoError(t, err)
	assert.NoError(t, Verify(s))
}

type badSiteRow struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Notes string    `db:"notes"`
}

type badSiteInsert struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  *string   `db:"name" json:"name,omitempty"`
	Notes *string   `db:"notes" json:"notes,omitempty"`
}

type badSiteUpdate struct {
	ID    Patch[uuid.UUID] `db:"id" json:"id,omitzero"`
	Name  Patch[*string]   `db:"name" json:"name,omitzero"`
	Notes *string          `db:"notes" json:"notes,omitempty"`
}

func badSiteInfo() TableInfo {
	return TableInfo{
		Schema: "public",
		Name:   "bad_sites",
		Columns: []Column{
			{Name: "id", DBType: "uuid", HasDefault: true},
			{Name: "name", DBType: "text"},
			{Name: "notes", DBType: "text", Nullable: true},
		},
	}
}

func TestVerifyReportsShapeMismatches(t *testing.T) {
	s, err := NewSchema("public", WithTables(
		NewTable[badSiteRow, badSiteInsert, badSiteUpdate](badSiteInfo()),
	))
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "bad_sites row: nullable column notes")
	assert.Contains(t, msg, "bad_sites insert: column id is optional")
	assert.Contains(t, msg, "bad_sites insert: column name is required")
	assert.Contains(t, msg, "bad_sites update: column name patches *string, row has string")
	assert.Contains(t, msg, "bad_sites update: column notes must be a Patch")
}

type crewPointerInsert struct {
	ID    *uuid.UUID `db:"id" json:"id,omitempty"`
	Shift *string    `db:"shift" json:"shift,omitempty"`
}

func TestVerifyNullableColumnWithDefault(t *testing.T) {
	s, err := NewSchema("public", WithTables(
		NewTable[crew, crewInsert, crewUpdate](crewInfo()),
	))
	require.NoError(t, err)
	assert.NoError(t, Verify(s))

	s, err = NewSchema("public", WithTables(
		NewTable[crew, crewPointerInsert, crewUpdate](crewInfo()),
	))
	require.NoError(t, err)
	err = Verify(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crews insert: nullable column shift has a default and must be a Patch of *string with omitzero")
}

type reorderedRow struct {
	Name string    `db:"name"`
	ID   uuid.UUID `db:"id"`
}

func TestVerifyReportsColumnOrder(t *testing.T) {
	s, err := NewSchema("public", WithTables(
		NewTable[reorderedRow, companyInsert, companyUpdate](companyInfo()),
	))
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "companies row: fields [name id] do not match columns [id name]")
}

type stampedRow struct {
	ID      uuid.UUID  `db:"id"`
	Stamped *time.Time `db:"stamped"`
}

type stampedInsert struct {
	ID      *uuid.UUID `db:"id" json:"id,omitempty"`
	Stamped *time.Time `db:"stamped" json:"stamped,omitempty"`
}

type stampedUpdate struct {
	ID      Patch[uuid.UUID]  `db:"id" json:"id,omitzero"`
	Stamped Patch[*time.Time] `db:"stamped" json:"stamped"`
}

func TestVerifyRequiresOmitzeroOnPatches(t *testing.T) {
	s, err := NewSchema("public", WithTables(NewTable[stampedRow, stampedInsert, stampedUpdate](TableInfo{
		Name: "stamps",
		Columns: []Column{
			{Name: "id", DBType: "uuid", HasDefault: true},
			{Name: "stamped", DBType: "timestamp with time zone", Nullable: true},
		},
	})))
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column stamped must be tagged omitzero")
}

func TestVerifyReportsBrokenRelationships(t *testing.T) {
	info := siteInfo()
	info.Relationships = []Relationship{
		{ForeignKeyName: "sites_owner_fkey", Columns: []string{"owner_id"}, ReferencedRelation: "companies", ReferencedColumns: []string{"id"}},
		{ForeignKeyName: "sites_region_fkey", Columns: []string{"company_id"}, ReferencedRelation: "regions", ReferencedColumns: []string{"id"}},
		{ForeignKeyName: "sites_pair_fkey", Columns: []string{"company_id", "name"}, ReferencedRelation: "companies", ReferencedColumns: []string{"id"}},
		{ForeignKeyName: "sites_slug_fkey", Columns: []string{"name"}, ReferencedRelation: "companies", ReferencedColumns: []string{"slug"}},
	}

	s, err := NewSchema("public",
		WithTables(
			NewTable[company, companyInsert, companyUpdate](companyInfo()),
			NewTable[site, siteInsert, siteUpdate](info),
		),
		WithEnums(siteStatusEnum),
	)
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "sites relationship sites_owner_fkey: unknown column owner_id")
	assert.Contains(t, msg, "sites relationship sites_region_fkey: unknown table regions")
	assert.Contains(t, msg, "sites relationship sites_pair_fkey: 2 columns reference 1 columns")
	assert.Contains(t, msg, "sites relationship sites_slug_fkey: unknown column companies.slug")
}

func TestVerifyReportsUnknownColumnEnum(t *testing.T) {
	s, err := NewSchema("public", WithTables(
		NewTable[company, companyInsert, companyUpdate](companyInfo()),
		NewTable[site, siteInsert, siteUpdate](siteInfo()),
	))
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sites column status: unknown enum site_status")
}

func TestVerifyEnums(t *testing.T) {
	tests := []struct {
		name string
		enum *Enum
		want string
	}{
		{
			name: "empty",
			enum: NewEnum[siteStatus]("empty_status", nil, nil),
			want: "enum empty_status: no values",
		},
		{
			name: "duplicate",
			enum: NewEnum("dup_status", []string{"open", "open"}, []siteStatus{"open", "open"}),
			want: `enum dup_status: duplicate value "open"`,
		},
		{
			name: "drifted constants",
			enum: NewEnum("drift_status", []string{"open", "closed", "archived"}, siteStatusValues),
			want: "enum drift_status: values [open closed archived] do not match Go constants [open closed]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema("public", WithEnums(tt.enum))
			require.NoError(t, err)

			err = Verify(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerifyFunctionArgumentOrder(t *testing.T) {
	fn := &Function{
		Name: "bad_defaults",
		Args: []FunctionArg{
			{Name: "p_a", DBType: "uuid", Optional: true},
			{Name: "p_b", DBType: "uuid"},
		},
	}
	s, err := NewSchema("public", WithFunctions(fn))
	require.NoError(t, err)

	err = Verify(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function bad_defaults: required argument p_b follows an optional one")
}
