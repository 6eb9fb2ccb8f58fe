package reflector

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jrazmi/sitebook/core/dbtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Fax  *string   `db:"fax"`
}

type vendorInsert struct{}

type vendorUpdate struct{}

func boundSchema(t *testing.T) *dbtypes.Schema {
	t.Helper()
	s, err := dbtypes.NewSchema("public",
		dbtypes.WithTables(dbtypes.NewTable[vendorRow, vendorInsert, vendorUpdate](dbtypes.TableInfo{
			Name: "vendors",
			Columns: []dbtypes.Column{
				{Name: "id", DBType: "uuid", HasDefault: true},
				{Name: "name", DBType: "text"},
				{Name: "fax", DBType: "text", Nullable: true},
			},
		})),
		dbtypes.WithEnums(dbtypes.NewEnum("bid_status", []string{"draft", "open"}, []string{"draft", "open"})),
		dbtypes.WithFunctions(&dbtypes.Function{Name: "retired_fn"}),
	)
	require.NoError(t, err)
	return s
}

func TestDrift(t *testing.T) {
	live := &ReflectedSchema{
		Tables: map[string]*TableInfo{
			"vendors": {
				TableName: "vendors",
				Columns: []ColumnInfo{
					{Name: "id", DBType: "uuid", HasDefault: true},
					{Name: "name", DBType: "text", IsNullable: true},
					{Name: "trade", DBType: "text", IsNullable: true},
				},
			},
			"permits": {TableName: "permits"},
		},
		Enums: []EnumInfo{
			{Name: "bid_status", Values: []string{"draft", "open", "closed"}},
		},
		Functions: []FunctionInfo{{Name: "is_feature_enabled"}},
	}

	assert.Equal(t, []string{
		"table permits: missing from bindings",
		"column vendors.name: nullable is true in database, false in bindings",
		"column vendors.trade: missing from bindings",
		"column vendors.fax: not in database",
		"enum bid_status: values [draft open closed] in database, [draft open] in bindings",
		"function is_feature_enabled: missing from bindings",
		"function retired_fn: not in database",
	}, Drift(live, boundSchema(t)))
}

func TestDriftNone(t *testing.T) {
	live := &ReflectedSchema{
		Tables: map[string]*TableInfo{
			"vendors": {
				TableName: "vendors",
				Columns: []ColumnInfo{
					{Name: "id"},
					{Name: "name"},
					{Name: "fax", IsNullable: true},
				},
			},
		},
		Enums:     []EnumInfo{{Name: "bid_status", Values: []string{"draft", "open"}}},
		Functions: []FunctionInfo{{Name: "retired_fn"}},
	}
	assert.Empty(t, Drift(live, boundSchema(t)))
}
