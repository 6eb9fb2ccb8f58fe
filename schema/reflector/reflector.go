package reflector

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many tables are reflected at once.
const DefaultConcurrency = 4

// Reflector is the repository layer that orchestrates schema reflection
// It uses a Store (dependency injected) to query the database
type Reflector struct {
	store       Store
	log         *slog.Logger
	concurrency int
	now         func() time.Time
}

// Option configures a Reflector.
type Option func(*Reflector)

// WithLogger sets the logger used for progress and warnings.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reflector) {
		r.log = log
	}
}

// WithConcurrency sets how many tables are reflected in parallel.
func WithConcurrency(n int) Option {
	return func(r *Reflector) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewReflector creates a new Reflector with the given store
func NewReflector(store Store, opts ...Option) *Reflector {
	r := &Reflector{
		store:       store,
		log:         slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reflect queries the database via the store and returns a complete schema reflection
func (r *Reflector) Reflect(ctx context.Context, schemaName string) (*ReflectedSchema, error) {
	schema := &ReflectedSchema{
		Version:     FormatVersion,
		Source:      r.store.GetSourceType(),
		Database:    r.store.GetDatabaseName(),
		SchemaName:  schemaName,
		ReflectedAt: r.now().UTC(),
		Tables:      make(map[string]*TableInfo),
	}

	enums, err := r.store.GetEnums(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("get enums: %w", err)
	}
	schema.Enums = enums

	tables, err := r.store.GetTables(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("get tables: %w", err)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, tableName := range tables {
		g.Go(func() error {
			table, err := r.reflectTable(gctx, schemaName, tableName)
			if err != nil {
				return err
			}
			mu.Lock()
			schema.Tables[tableName] = table
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	MarkEnumColumns(schema)

	funcs, err := r.store.GetFunctions(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("get functions: %w", err)
	}
	enumNames := enumNameSet(enums)
	for i := range funcs {
		for j := range funcs[i].Args {
			arg := &funcs[i].Args[j]
			arg.EnumName = enumFor(enumNames, strings.TrimSuffix(arg.DBType, "[]"))
		}
		for j := range funcs[i].ResultColumns {
			col := &funcs[i].ResultColumns[j]
			col.EnumName = enumFor(enumNames, strings.TrimSuffix(col.DBType, "[]"))
		}
	}
	schema.Functions = funcs

	r.log.InfoContext(ctx, "schema reflected",
		"schema", schemaName,
		"tables", len(schema.Tables),
		"enums", len(schema.Enums),
		"functions", len(schema.Functions))

	return schema, nil
}

func (r *Reflector) reflectTable(ctx context.Context, schemaName, tableName string) (*TableInfo, error) {
	tableInfo := &TableInfo{
		TableName:   tableName,
		Schema:      schemaName,
		PrimaryKey:  []string{},
		Columns:     []ColumnInfo{},
		ForeignKeys: []ForeignKeyInfo{},
		Indexes:     []IndexInfo{},
		Constraints: []ConstraintInfo{},
	}

	columns, err := r.store.GetColumns(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get columns for %s: %w", tableName, err)
	}
	tableInfo.Columns = columns

	pk, err := r.store.GetPrimaryKey(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get primary key for %s: %w", tableName, err)
	}
	if len(pk) == 0 {
		r.log.WarnContext(ctx, "table has no primary key", "table", tableName)
	} else {
		tableInfo.PrimaryKey = pk
	}

	fks, err := r.store.GetForeignKeys(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get foreign keys for %s: %w", tableName, err)
	}
	if fks != nil {
		tableInfo.ForeignKeys = fks
	}

	indexes, err := r.store.GetIndexes(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get indexes for %s: %w", tableName, err)
	}
	if indexes != nil {
		tableInfo.Indexes = indexes
	}

	constraints, err := r.store.GetConstraints(ctx, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("get constraints for %s: %w", tableName, err)
	}
	if constraints != nil {
		tableInfo.Constraints = constraints
	}

	comment, err := r.store.GetTableComment(ctx, schemaName, tableName)
	if err != nil {
		r.log.WarnContext(ctx, "could not read table comment", "table", tableName, "error", err)
	}
	tableInfo.Comment = comment

	markColumns(tableInfo)
	for i := range tableInfo.ForeignKeys {
		tableInfo.ForeignKeys[i].IsOneToOne = isOneToOne(tableInfo, tableInfo.ForeignKeys[i].Columns)
	}

	return tableInfo, nil
}

// markColumns flags primary and foreign key columns.
func markColumns(t *TableInfo) {
	for i := range t.Columns {
		col := &t.Columns[i]
		col.IsPrimaryKey = slices.Contains(t.PrimaryKey, col.Name)
		for _, fk := range t.ForeignKeys {
			if slices.Contains(fk.Columns, col.Name) {
				col.IsForeignKey = true
			}
		}
	}
}

// MarkEnumColumns sets EnumName on every column whose type, or array
// element type, is one of the schema's enums.
func MarkEnumColumns(schema *ReflectedSchema) {
	names := enumNameSet(schema.Enums)
	for _, t := range schema.Tables {
		for i := range t.Columns {
			col := &t.Columns[i]
			col.EnumName = enumFor(names, strings.TrimPrefix(col.UDTName, "_"))
		}
	}
}

func enumNameSet(enums []EnumInfo) map[string]bool {
	names := make(map[string]bool, len(enums))
	for _, e := range enums {
		names[e.Name] = true
	}
	return names
}

func enumFor(names map[string]bool, typeName string) string {
	if names[typeName] {
		return typeName
	}
	return ""
}

// isOneToOne reports whether at most one row can reference a given target
// row: the referencing columns are exactly the primary key or the columns
// of a unique index.
func isOneToOne(t *TableInfo, columns []string) bool {
	if sameColumnSet(t.PrimaryKey, columns) {
		return true
	}
	for _, idx := range t.Indexes {
		if idx.Unique && sameColumnSet(idx.Columns, columns) {
			return true
		}
	}
	return false
}

func sameColumnSet(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	sa := slices.Sorted(slices.Values(a))
	sb := slices.Sorted(slices.Values(b))
	return slices.Equal(sa, sb)
}
