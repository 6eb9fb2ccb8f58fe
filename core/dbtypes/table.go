package dbtypes

import (
	"reflect"
	"slices"
)

// Column describes one column of a table.
type Column struct {
	Name       string
	DBType     string
	Nullable   bool
	HasDefault bool
	Identity   bool
	Generated  bool
	Enum       string
}

// InsertRequired reports whether an Insert shape must supply the column.
func (c Column) InsertRequired() bool {
	return !c.Nullable && !c.HasDefault && !c.Identity && !c.Generated
}

// Writable reports whether the column may appear in Insert and Update shapes.
func (c Column) Writable() bool {
	return !c.Generated
}

// Relationship is a foreign key as seen from the referencing table.
type Relationship struct {
	ForeignKeyName     string
	Columns            []string
	IsOneToOne         bool
	ReferencedRelation string
	ReferencedColumns  []string
}

// TableInfo is the untyped metadata of a table.
type TableInfo struct {
	Schema        string
	Name          string
	Comment       string
	Columns       []Column
	PrimaryKey    []string
	Relationships []Relationship

	RowType    reflect.Type
	InsertType reflect.Type
	UpdateType reflect.Type
}

// Column looks up a column by name.
func (t *TableInfo) Column(name string) (Column, bool) {
	i := slices.IndexFunc(t.Columns, func(c Column) bool { return c.Name == name })
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

// ColumnNames returns the column names in table order.
func (t *TableInfo) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the table has a column called name.
func (t *TableInfo) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// TenantScoped reports whether rows belong to a single company.
func (t *TableInfo) TenantScoped() bool {
	c, ok := t.Column(TenantColumn)
	return ok && !c.Nullable
}

// SoftDeletable reports whether the table marks rows deleted with deleted_at.
func (t *TableInfo) SoftDeletable() bool {
	return t.HasColumn(SoftDeleteColumn)
}

// Column names shared by the platform's table conventions.
const (
	TenantColumn     = "company_id"
	SoftDeleteColumn = "deleted_at"
)

// TableDescriptor is the type-erased view of a Table used by Schema.
type TableDescriptor interface {
	Info() *TableInfo
}

// Table binds a table's metadata to its Row, Insert and Update shapes.
type Table[R, I, U any] struct {
	TableInfo
}

// NewTable records the Go shapes for info and returns the typed descriptor.
func NewTable[R, I, U any](info TableInfo) *Table[R, I, U] {
	info.RowType = reflect.TypeFor[R]()
	info.InsertType = reflect.TypeFor[I]()
	info.UpdateType = reflect.TypeFor[U]()
	return &Table[R, I, U]{TableInfo: info}
}

// Info implements TableDescriptor.
func (t *Table[R, I, U]) Info() *TableInfo {
	return &t.TableInfo
}

// NewRow returns a zero Row.
func (t *Table[R, I, U]) NewRow() R {
	var r R
	return r
}

// NewInsert returns a zero Insert.
func (t *Table[R, I, U]) NewInsert() I {
	var i I
	return i
}

// NewUpdate returns an Update with no fields set.
func (t *Table[R, I, U]) NewUpdate() U {
	var u U
	return u
}

// InsertColumns returns the columns and values that in supplies, skipping unset
// optional fields so the database applies its defaults.
func (t *Table[R, I, U]) InsertColumns(in I) ([]string, []any) {
	return InsertColumns(in)
}

// UpdateAssignments returns the columns and values of every set field in u.
func (t *Table[R, I, U]) UpdateAssignments(u U) ([]string, []any) {
	return UpdateAssignments(u)
}

// Widen converts an Insert into a Row, asking fill for every column in leaves
// unset, the way the database would apply defaults.
func (t *Table[R, I, U]) Widen(in I, fill DefaultFiller) (R, error) {
	return Widen[R](in, fill)
}
