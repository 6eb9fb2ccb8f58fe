package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaLookups(t *testing.T) {
	s, err := testSchema()
	require.NoError(t, err)

	assert.Equal(t, "public", s.Name())
	assert.Equal(t, []string{"companies", "sites"}, s.TableNames())
	assert.Len(t, s.Tables(), 2)

	d, ok := s.Table("sites")
	require.True(t, ok)
	info := d.Info()
	assert.True(t, info.TenantScoped())
	assert.True(t, info.SoftDeletable())
	assert.Equal(t, []string{"id"}, info.PrimaryKey)

	col, ok := info.Column("status")
	require.True(t, ok)
	assert.Equal(t, "site_status", col.Enum)
	assert.False(t, col.InsertRequired())

	_, ok = s.Table("nope")
	assert.False(t, ok)

	e, ok := s.Enum("site_status")
	require.True(t, ok)
	assert.Equal(t, []string{"open", "closed"}, e.Values)
	assert.Len(t, s.Enums(), 1)

	f, ok := s.Function("touch_site")
	require.True(t, ok)
	assert.Equal(t, []string{"p_site_id"}, f.RequiredArgs())
	assert.Len(t, s.Functions(), 1)
}

func TestSchemaTableFor(t *testing.T) {
	s, err := testSchema()
	require.NoError(t, err)

	tbl, ok := TableFor[site, siteInsert, siteUpdate](s, "sites")
	require.True(t, ok)
	assert.Equal(t, "sites", tbl.Name)

	_, ok = TableFor[company, companyInsert, companyUpdate](s, "sites")
	assert.False(t, ok)
}

func TestSchemaRejectsDuplicates(t *testing.T) {
	_, err := NewSchema("public", WithTables(
		NewTable[company, companyInsert, companyUpdate](companyInfo()),
		NewTable[company, companyInsert, companyUpdate](companyInfo()),
	))
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = NewSchema("public", WithEnums(siteStatusEnum, siteStatusEnum))
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = NewSchema("public", WithFunctions(touchSite, touchSite))
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.Panics(t, func() {
		MustSchema("public", WithEnums(siteStatusEnum, siteStatusEnum))
	})
}
