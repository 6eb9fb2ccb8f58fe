package dbtypes

import (
	"database/sql/driver"
	"slices"
	"time"

	"github.com/google/uuid"
)

type siteStatus string

const (
	siteStatusOpen   siteStatus = "open"
	siteStatusClosed siteStatus = "closed"
)

var siteStatusValues = []siteStatus{siteStatusOpen, siteStatusClosed}

func (s siteStatus) Valid() bool { return slices.Contains(siteStatusValues, s) }

func (s *siteStatus) Scan(src any) error { return ScanEnum(s, src) }

func (s siteStatus) Value() (driver.Value, error) { return EnumDriverValue(s) }

var siteStatusEnum = NewEnum("site_status", []string{"open", "closed"}, siteStatusValues)

type company struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

type companyInsert struct {
	ID   *uuid.UUID `db:"id" json:"id,omitempty"`
	Name string     `db:"name" json:"name"`
}

type companyUpdate struct {
	ID   Patch[uuid.UUID] `db:"id" json:"id,omitzero"`
	Name Patch[string]    `db:"name" json:"name,omitzero"`
}

type site struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	CompanyID uuid.UUID  `db:"company_id" json:"company_id"`
	Name      string     `db:"name" json:"name"`
	Status    siteStatus `db:"status" json:"status"`
	Tags      []string   `db:"tags" json:"tags"`
	Meta      JSON       `db:"meta" json:"meta"`
	Notes     *string    `db:"notes" json:"notes"`
	Area      *float64   `db:"area" json:"area"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at"`
}

type siteInsert struct {
	ID        *uuid.UUID  `db:"id" json:"id,omitempty"`
	CompanyID uuid.UUID   `db:"company_id" json:"company_id"`
	Name      string      `db:"name" json:"name"`
	Status    *siteStatus `db:"status" json:"status,omitempty"`
	Tags      []string    `db:"tags" json:"tags,omitempty"`
	Meta      JSON        `db:"meta" json:"meta,omitempty"`
	Notes     *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt *time.Time  `db:"created_at" json:"created_at,omitempty"`
	DeletedAt *time.Time  `db:"deleted_at" json:"deleted_at,omitempty"`
}

type siteUpdate struct {
	ID        Patch[uuid.UUID]  `db:"id" json:"id,omitzero"`
	CompanyID Patch[uuid.UUID]  `db:"company_id" json:"company_id,omitzero"`
	Name      Patch[string]     `db:"name" json:"name,omitzero"`
	Status    Patch[siteStatus] `db:"status" json:"status,omitzero"`
	Tags      Patch[[]string]   `db:"tags" json:"tags,omitzero"`
	Meta      Patch[JSON]       `db:"meta" json:"meta,omitzero"`
	Notes     Patch[*string]    `db:"notes" json:"notes,omitzero"`
	CreatedAt Patch[time.Time]  `db:"created_at" json:"created_at,omitzero"`
	DeletedAt Patch[*time.Time] `db:"deleted_at" json:"deleted_at,omitzero"`
}

func companyInfo() TableInfo {
	return TableInfo{
		Schema:     "public",
		Name:       "companies",
		PrimaryKey: []string{"id"},
		Columns: []Column{
			{Name: "id", DBType: "uuid", HasDefault: true},
			{Name: "name", DBType: "text"},
		},
	}
}

func siteInfo() TableInfo {
	return TableInfo{
		Schema:     "public",
		Name:       "sites",
		PrimaryKey: []string{"id"},
		Columns: []Column{
			{Name: "id", DBType: "uuid", HasDefault: true},
			{Name: "company_id", DBType: "uuid"},
			{Name: "name", DBType: "text"},
			{Name: "status", DBType: "site_status", HasDefault: true, Enum: "site_status"},
			{Name: "tags", DBType: "text[]", HasDefault: true},
			{Name: "meta", DBType: "jsonb", HasDefault: true},
			{Name: "notes", DBType: "text", Nullable: true},
			{Name: "area", DBType: "numeric", Nullable: true, Generated: true},
			{Name: "created_at", DBType: "timestamp with time zone", HasDefault: true},
			{Name: "deleted_at", DBType: "timestamp with time zone", Nullable: true},
		},
		Relationships: []Relationship{
			{
				ForeignKeyName:     "sites_company_id_fkey",
				Columns:            []string{"company_id"},
				ReferencedRelation: "companies",
				ReferencedColumns:  []string{"id"},
			},
		},
	}
}

var touchSite = &Function{
	Schema:  "public",
	Name:    "touch_site",
	Returns: "boolean",
	Args: []FunctionArg{
		{Name: "p_site_id", DBType: "uuid"},
		{Name: "p_at", DBType: "timestamp with time zone", Optional: true},
	},
}

func testSchema() (*Schema, error) {
	return NewSchema("public",
		WithTables(
			NewTable[company, companyInsert, companyUpdate](companyInfo()),
			NewTable[site, siteInsert, siteUpdate](siteInfo()),
		),
		WithEnums(siteStatusEnum),
		WithFunctions(touchSite),
	)
}

// crews.shift is nullable with a default, so inserts can leave it out,
// supply a value or write an explicit NULL.
type crew struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Shift *string   `db:"shift" json:"shift"`
}

type crewInsert struct {
	ID    *uuid.UUID     `db:"id" json:"id,omitempty"`
	Shift Patch[*string] `db:"shift" json:"shift,omitzero"`
}

type crewUpdate struct {
	ID    Patch[uuid.UUID] `db:"id" json:"id,omitzero"`
	Shift Patch[*string]   `db:"shift" json:"shift,omitzero"`
}

func crewInfo() TableInfo {
	return TableInfo{
		Schema:     "public",
		Name:       "crews",
		PrimaryKey: []string{"id"},
		Columns: []Column{
			{Name: "id", DBType: "uuid", HasDefault: true},
			{Name: "shift", DBType: "text", Nullable: true, HasDefault: true},
		},
	}
}
