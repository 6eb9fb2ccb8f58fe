package dbtypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertColumnsSkipsUnsetOptionals(t *testing.T) {
	companyID := uuid.New()
	notes := "north lot"

	cols, vals := InsertColumns(siteInsert{
		CompanyID: companyID,
		Name:      "Main St Duplex",
		Notes:     &notes,
	})

	assert.Equal(t, []string{"company_id", "name", "notes"}, cols)
	require.Len(t, vals, 3)
	assert.Equal(t, companyID, vals[0])
	assert.Equal(t, "Main St Duplex", vals[1])
	assert.Equal(t, &notes, vals[2])
}

func TestInsertColumnsAlwaysWritesRequired(t *testing.T) {
	cols, _ := InsertColumns(&siteInsert{})
	assert.Equal(t, []string{"company_id", "name"}, cols)

	cols, vals := InsertColumns(nil)
	assert.Nil(t, cols)
	assert.Nil(t, vals)
}

func TestInsertNullableColumnWithDefault(t *testing.T) {
	night := "night"

	cols, vals := InsertColumns(crewInsert{})
	assert.Empty(t, cols)
	assert.Empty(t, vals)

	cols, vals = InsertColumns(crewInsert{Shift: Set(&night)})
	assert.Equal(t, []string{"shift"}, cols)
	assert.Equal(t, []any{&night}, vals)

	cols, vals = InsertColumns(crewInsert{Shift: Null[string]()})
	assert.Equal(t, []string{"shift"}, cols)
	assert.Equal(t, []any{(*string)(nil)}, vals)

	body, err := json.Marshal(crewInsert{Shift: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shift":null}`, string(body))

	body, err = json.Marshal(crewInsert{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestWidenNullableColumnWithDefault(t *testing.T) {
	fill := func(column string) any {
		if column == "shift" {
			return "day"
		}
		return nil
	}

	row, err := Widen[crew](crewInsert{}, fill)
	require.NoError(t, err)
	require.NotNil(t, row.Shift)
	assert.Equal(t, "day", *row.Shift)

	row, err = Widen[crew](crewInsert{Shift: Null[string]()}, fill)
	require.NoError(t, err)
	assert.Nil(t, row.Shift)

	night := "night"
	row, err = Widen[crew](crewInsert{Shift: Set(&night)}, fill)
	require.NoError(t, err)
	assert.Equal(t, &night, row.Shift)
}

func TestUpdateAssignments(t *testing.T) {
	u := siteUpdate{
		Name:  Set("Renamed"),
		Notes: Null[string](),
	}

	cols, vals := UpdateAssignments(u)
	assert.Equal(t, []string{"name", "notes"}, cols)
	require.Len(t, vals, 2)
	assert.Equal(t, "Renamed", vals[0])
	assert.Nil(t, vals[1])

	cols, _ = UpdateAssignments(siteUpdate{})
	assert.Empty(t, cols)
}

func TestWidenAppliesDefaults(t *testing.T) {
	id := uuid.New()
	companyID := uuid.New()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	fill := func(column string) any {
		switch column {
		case "id":
			return id
		case "status":
			return siteStatusOpen
		case "tags":
			return []string{}
		case "meta":
			return JSON(`{}`)
		case "created_at":
			return now
		}
		return nil
	}

	tbl := NewTable[site, siteInsert, siteUpdate](siteInfo())
	row, err := tbl.Widen(siteInsert{CompanyID: companyID, Name: "Warehouse"}, fill)
	require.NoError(t, err)

	assert.Equal(t, id, row.ID)
	assert.Equal(t, companyID, row.CompanyID)
	assert.Equal(t, "Warehouse", row.Name)
	assert.Equal(t, siteStatusOpen, row.Status)
	assert.Equal(t, []string{}, row.Tags)
	assert.Equal(t, JSON(`{}`), row.Meta)
	assert.Equal(t, now, row.CreatedAt)
	assert.Nil(t, row.Notes)
	assert.Nil(t, row.Area)
	assert.Nil(t, row.DeletedAt)
}

func TestWidenDereferencesSuppliedOptionals(t *testing.T) {
	id := uuid.New()
	status := siteStatusClosed

	row, err := Widen[site](siteInsert{ID: &id, Status: &status}, nil)
	require.NoError(t, err)
	assert.Equal(t, id, row.ID)
	assert.Equal(t, siteStatusClosed, row.Status)
}

func TestWidenWrapsDefaultsForNullableColumns(t *testing.T) {
	row, err := Widen[site](siteInsert{}, func(column string) any {
		if column == "area" {
			return 120.5
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, row.Area)
	assert.InDelta(t, 120.5, *row.Area, 0.0001)
}

func TestWidenRejectsMismatchedDefault(t *testing.T) {
	_, err := Widen[site](siteInsert{}, func(column string) any {
		if column == "name" {
			return 42
		}
		return nil
	})
	// name is supplied as "" (required, never unset), so the filler is not asked.
	require.NoError(t, err)

	_, err = Widen[site](siteInsert{}, func(column string) any {
		if column == "created_at" {
			return "yesterday"
		}
		return nil
	})
	assert.Error(t, err)
}

func TestTableConstructors(t *testing.T) {
	tbl := NewTable[site, siteInsert, siteUpdate](siteInfo())
	assert.Equal(t, site{}, tbl.NewRow())
	assert.Equal(t, siteInsert{}, tbl.NewInsert())
	assert.True(t, tbl.NewUpdate().Name.IsZero())

	cols, _ := tbl.InsertColumns(siteInsert{Name: "x"})
	assert.Equal(t, []string{"company_id", "name"}, cols)
	cols, _ = tbl.UpdateAssignments(siteUpdate{Tags: Set([]string{"roofing"})})
	assert.Equal(t, []string{"tags"}, cols)
}
