package reflector

import (
	"context"
	"time"
)

// FormatVersion is written to every reflected artifact.
const FormatVersion = "2.0"

// ReflectedSchema represents the complete schema reflection for a single database schema
type ReflectedSchema struct {
	Version     string                `json:"version"`      // Artifact format version
	Source      string                `json:"source"`       // Database type (e.g., "postgres")
	Database    string                `json:"database"`     // Database name
	SchemaName  string                `json:"schema_name"`  // Schema name (e.g., "public")
	ReflectedAt time.Time             `json:"reflected_at"` // Timestamp of reflection
	Tables      map[string]*TableInfo `json:"tables"`       // Map of table_name -> TableInfo
	Enums       []EnumInfo            `json:"enums"`
	Functions   []FunctionInfo        `json:"functions"`
}

// TableInfo represents a single table's metadata
type TableInfo struct {
	TableName   string           `json:"table_name"`
	Schema      string           `json:"schema"`
	PrimaryKey  []string         `json:"primary_key"`
	Columns     []ColumnInfo     `json:"columns"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys"`
	Indexes     []IndexInfo      `json:"indexes"`
	Constraints []ConstraintInfo `json:"constraints"`
	Comment     string           `json:"comment,omitempty"`
}

// Column returns the column called name, or nil.
func (t *TableInfo) Column(name string) *ColumnInfo {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnInfo represents a single column's metadata
type ColumnInfo struct {
	Name         string `json:"name"`
	Ordinal      int    `json:"ordinal"`
	DBType       string `json:"db_type"`  // e.g. "uuid", "varchar(255)", "job_status", "text[]"
	UDTName      string `json:"udt_name"` // pg_type name, "_text" for text[]
	IsArray      bool   `json:"is_array,omitempty"`
	EnumName     string `json:"enum_name,omitempty"` // set when the column (or its element) is an enum
	IsNullable   bool   `json:"is_nullable"`
	IsPrimaryKey bool   `json:"is_primary_key"`
	IsForeignKey bool   `json:"is_foreign_key"`
	DefaultValue string `json:"default_value,omitempty"`
	HasDefault   bool   `json:"has_default"`
	IsIdentity   bool   `json:"is_identity,omitempty"`
	IsGenerated  bool   `json:"is_generated,omitempty"`
	MaxLength    int    `json:"max_length,omitempty"` // For varchar(n)
	Precision    int    `json:"precision,omitempty"`  // For numeric(p,s)
	Scale        int    `json:"scale,omitempty"`      // For numeric(p,s)
	Comment      string `json:"comment,omitempty"`
}

// ForeignKeyInfo represents a foreign key constraint. Columns and
// RefColumns are positionally paired.
type ForeignKeyInfo struct {
	Name       string   `json:"name"`
	Columns    []string `json:"columns"`
	RefSchema  string   `json:"ref_schema"`
	RefTable   string   `json:"ref_table"`
	RefColumns []string `json:"ref_columns"`
	OnDelete   string   `json:"on_delete"` // CASCADE, SET_NULL, SET_DEFAULT, RESTRICT, NO_ACTION
	OnUpdate   string   `json:"on_update"`
	IsOneToOne bool     `json:"is_one_to_one"`
}

// IndexInfo represents an index
type IndexInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
	Method  string   `json:"method"` // btree, hash, gin, gist, etc.
}

// ConstraintInfo represents a table constraint (CHECK, UNIQUE, EXCLUDE)
type ConstraintInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`       // CHECK, UNIQUE, EXCLUDE
	Definition string `json:"definition"` // The constraint expression
}

// EnumInfo is a Postgres enum type with its labels in sort order.
type EnumInfo struct {
	Name    string   `json:"name"`
	Schema  string   `json:"schema"`
	Values  []string `json:"values"`
	Comment string   `json:"comment,omitempty"`
}

// FunctionInfo is a stored function callable as an RPC.
type FunctionInfo struct {
	Name       string            `json:"name"`
	Schema     string            `json:"schema"`
	Args       []FunctionArgInfo `json:"args"`
	ReturnType string            `json:"return_type"`
	ReturnsSet bool              `json:"returns_set"`
	Volatility string            `json:"volatility"` // IMMUTABLE, STABLE, VOLATILE
	Comment    string            `json:"comment,omitempty"`

	// ResultColumns are the OUT, INOUT and RETURNS TABLE columns, in order.
	ResultColumns []FunctionColumnInfo `json:"result_columns,omitempty"`
}

// FunctionColumnInfo is one named column of a function's row result.
type FunctionColumnInfo struct {
	Name     string `json:"name"`
	DBType   string `json:"db_type"`
	EnumName string `json:"enum_name,omitempty"`
}

// FunctionArgInfo is one input argument of a function.
type FunctionArgInfo struct {
	Name       string `json:"name"`
	DBType     string `json:"db_type"`
	HasDefault bool   `json:"has_default"`
	IsArray    bool   `json:"is_array,omitempty"`
	EnumName   string `json:"enum_name,omitempty"`
}

// Store is the interface that database stores must implement for reflection
// This is the "store" layer - it knows how to query the database
type Store interface {
	// GetTables returns all table names in the schema
	GetTables(ctx context.Context, schemaName string) ([]string, error)

	// GetColumns returns column metadata for a table in ordinal order
	GetColumns(ctx context.Context, schemaName, tableName string) ([]ColumnInfo, error)

	// GetPrimaryKey returns the primary key columns in key order
	GetPrimaryKey(ctx context.Context, schemaName, tableName string) ([]string, error)

	// GetForeignKeys returns foreign key constraints
	GetForeignKeys(ctx context.Context, schemaName, tableName string) ([]ForeignKeyInfo, error)

	// GetIndexes returns index information
	GetIndexes(ctx context.Context, schemaName, tableName string) ([]IndexInfo, error)

	// GetConstraints returns constraint information
	GetConstraints(ctx context.Context, schemaName, tableName string) ([]ConstraintInfo, error)

	// GetTableComment returns table comment
	GetTableComment(ctx context.Context, schemaName, tableName string) (string, error)

	// GetEnums returns the enum types of the schema
	GetEnums(ctx context.Context, schemaName string) ([]EnumInfo, error)

	// GetFunctions returns the callable functions of the schema
	GetFunctions(ctx context.Context, schemaName string) ([]FunctionInfo, error)

	// GetDatabaseName returns the database name
	GetDatabaseName() string

	// GetSourceType returns the database type (e.g., "postgres")
	GetSourceType() string
}

// Config holds configuration for schema reflection output
type Config struct {
	SchemaName string `env:"REFLECT_SCHEMA" envDefault:"public"`
	OutputDir  string `env:"REFLECT_OUTPUT_DIR" envDefault:"schema/reflected"`
}
