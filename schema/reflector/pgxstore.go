package reflector

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/sitebook/infrastructure/postgresdb"
)

// PostgresStore implements the Store interface for PostgreSQL databases using pgx
type PostgresStore struct {
	db     postgresdb.Querier
	dbName string
}

// NewPostgresStore creates a new PostgreSQL store over a pool, connection or transaction
func NewPostgresStore(db postgresdb.Querier, dbName string) *PostgresStore {
	return &PostgresStore{
		db:     db,
		dbName: dbName,
	}
}

// GetDatabaseName implements the Store interface
func (s *PostgresStore) GetDatabaseName() string {
	return s.dbName
}

// GetSourceType implements the Store interface
func (s *PostgresStore) GetSourceType() string {
	return "postgres"
}

// GetTables implements the Store interface. The migration ledger is skipped.
func (s *PostgresStore) GetTables(ctx context.Context, schemaName string) ([]string, error) {
	query := `
		SELECT table_name::text
		FROM information_schema.tables
		WHERE table_schema = $1
		  AND table_type = 'BASE TABLE'
		  AND table_name <> 'schema_migrations'
		ORDER BY table_name
	`

	rows, err := s.db.Query(ctx, query, schemaName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// GetColumns implements the Store interface
func (s *PostgresStore) GetColumns(ctx context.Context, schemaName, tableName string) ([]ColumnInfo, error) {
	query := `
		SELECT
			c.column_name::text,
			c.ordinal_position::int,
			c.data_type::text,
			c.udt_name::text,
			c.is_nullable::text,
			c.column_default::text,
			c.is_identity::text,
			c.is_generated::text,
			c.character_maximum_length::int,
			c.numeric_precision::int,
			c.numeric_scale::int,
			pgd.description
		FROM information_schema.columns c
		LEFT JOIN pg_catalog.pg_statio_all_tables pst
			ON c.table_schema = pst.schemaname
			AND c.table_name = pst.relname
		LEFT JOIN pg_catalog.pg_description pgd
			ON pgd.objoid = pst.relid
			AND pgd.objsubid = c.ordinal_position
		WHERE c.table_schema = $1
		  AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := s.db.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var (
			col                     ColumnInfo
			dataType, udtName       string
			isNullable              string
			defaultValue            *string
			isIdentity, isGenerated string
			maxLength               *int
			precision               *int
			scale                   *int
			comment                 *string
		)

		err := rows.Scan(
			&col.Name,
			&col.Ordinal,
			&dataType,
			&udtName,
			&isNullable,
			&defaultValue,
			&isIdentity,
			&isGenerated,
			&maxLength,
			&precision,
			&scale,
			&comment,
		)
		if err != nil {
			return nil, err
		}

		col.UDTName = udtName
		col.IsArray = dataType == "ARRAY"
		col.DBType = normalizePostgresType(dataType, udtName, maxLength, precision, scale)
		col.IsNullable = isNullable == "YES"
		col.IsIdentity = isIdentity == "YES"
		col.IsGenerated = isGenerated == "ALWAYS"

		if defaultValue != nil {
			col.HasDefault = true
			col.DefaultValue = cleanDefaultValue(*defaultValue)
		}
		if maxLength != nil {
			col.MaxLength = *maxLength
		}
		if precision != nil {
			col.Precision = *precision
		}
		if scale != nil {
			col.Scale = *scale
		}
		if comment != nil {
			col.Comment = *comment
		}

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// GetPrimaryKey implements the Store interface
func (s *PostgresStore) GetPrimaryKey(ctx context.Context, schemaName, tableName string) ([]string, error) {
	query := `
		SELECT a.attname::text
		FROM pg_index ix
		JOIN pg_class t ON t.oid = ix.indrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		CROSS JOIN LATERAL unnest(ix.indkey::int2[]) WITH ORDINALITY AS k(attnum, ord)
		JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = k.attnum
		WHERE n.nspname = $1
		  AND t.relname = $2
		  AND ix.indisprimary
		ORDER BY k.ord
	`

	rows, err := s.db.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// GetForeignKeys implements the Store interface
func (s *PostgresStore) GetForeignKeys(ctx context.Context, schemaName, tableName string) ([]ForeignKeyInfo, error) {
	query := `
		SELECT
			con.conname::text,
			ARRAY(
				SELECT a.attname::text
				FROM unnest(con.conkey) WITH ORDINALITY AS k(attnum, ord)
				JOIN pg_attribute a ON a.attrelid = con.conrelid AND a.attnum = k.attnum
				ORDER BY k.ord
			) AS columns,
			rn.nspname::text,
			rt.relname::text,
			ARRAY(
				SELECT a.attname::text
				FROM unnest(con.confkey) WITH ORDINALITY AS k(attnum, ord)
				JOIN pg_attribute a ON a.attrelid = con.confrelid AND a.attnum = k.attnum
				ORDER BY k.ord
			) AS ref_columns,
			con.confupdtype::text,
			con.confdeltype::text
		FROM pg_constraint con
		JOIN pg_class t ON t.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		JOIN pg_class rt ON rt.oid = con.confrelid
		JOIN pg_namespace rn ON rn.oid = rt.relnamespace
		WHERE con.contype = 'f'
		  AND n.nspname = $1
		  AND t.relname = $2
		ORDER BY con.conname
	`

	rows, err := s.db.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []ForeignKeyInfo
	for rows.Next() {
		var fk ForeignKeyInfo
		var onUpdate, onDelete string
		err := rows.Scan(
			&fk.Name,
			&fk.Columns,
			&fk.RefSchema,
			&fk.RefTable,
			&fk.RefColumns,
			&onUpdate,
			&onDelete,
		)
		if err != nil {
			return nil, err
		}

		fk.OnUpdate = referentialAction(onUpdate)
		fk.OnDelete = referentialAction(onDelete)

		fks = append(fks, fk)
	}

	return fks, rows.Err()
}

// GetIndexes implements the Store interface
func (s *PostgresStore) GetIndexes(ctx context.Context, schemaName, tableName string) ([]IndexInfo, error) {
	query := `
		SELECT
			i.relname::text AS index_name,
			am.amname::text AS index_method,
			ix.indisunique AS is_unique,
			ARRAY(
				SELECT a.attname::text
				FROM unnest(ix.indkey::int2[]) WITH ORDINALITY AS k(attnum, ord)
				JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = k.attnum
				ORDER BY k.ord
			) AS column_names
		FROM pg_class t
		JOIN pg_index ix ON t.oid = ix.indrelid
		JOIN pg_class i ON i.oid = ix.indexrelid
		JOIN pg_am am ON i.relam = am.oid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		WHERE n.nspname = $1
		  AND t.relname = $2
		  AND NOT ix.indisprimary
		  AND ix.indpred IS NULL
		ORDER BY i.relname
	`

	rows, err := s.db.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var indexes []IndexInfo
	for rows.Next() {
		var idx IndexInfo
		err := rows.Scan(
			&idx.Name,
			&idx.Method,
			&idx.Unique,
			&idx.Columns,
		)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, idx)
	}

	return indexes, rows.Err()
}

// GetConstraints implements the Store interface
func (s *PostgresStore) GetConstraints(ctx context.Context, schemaName, tableName string) ([]ConstraintInfo, error) {
	query := `
		SELECT
			con.conname::text AS constraint_name,
			CASE con.contype
				WHEN 'c' THEN 'CHECK'
				WHEN 'u' THEN 'UNIQUE'
				WHEN 'x' THEN 'EXCLUDE'
			END AS constraint_type,
			pg_get_constraintdef(con.oid) AS constraint_definition
		FROM pg_constraint con
		JOIN pg_namespace nsp ON nsp.oid = con.connamespace
		JOIN pg_class cls ON cls.oid = con.conrelid
		WHERE nsp.nspname = $1
		  AND cls.relname = $2
		  AND con.contype IN ('c', 'u', 'x')
		ORDER BY con.conname
	`

	rows, err := s.db.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[ConstraintInfo])
}

// GetTableComment implements the Store interface
func (s *PostgresStore) GetTableComment(ctx context.Context, schemaName, tableName string) (string, error) {
	query := `
		SELECT pg_catalog.obj_description(c.oid, 'pg_class')
		FROM pg_catalog.pg_class c
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE n.nspname = $1 AND c.relname = $2
	`

	var comment *string
	err := s.db.QueryRow(ctx, query, schemaName, tableName).Scan(&comment)
	if err != nil {
		return "", err
	}

	if comment != nil {
		return *comment, nil
	}
	return "", nil
}

// GetEnums implements the Store interface
func (s *PostgresStore) GetEnums(ctx context.Context, schemaName string) ([]EnumInfo, error) {
	query := `
		SELECT
			t.typname::text,
			n.nspname::text,
			array_agg(e.enumlabel::text ORDER BY e.enumsortorder),
			COALESCE(obj_description(t.oid, 'pg_type'), '')
		FROM pg_type t
		JOIN pg_enum e ON e.enumtypid = t.oid
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE n.nspname = $1
		GROUP BY t.oid, t.typname, n.nspname
		ORDER BY t.typname
	`

	rows, err := s.db.Query(ctx, query, schemaName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[EnumInfo])
}

// GetFunctions implements the Store interface. Trigger functions and
// functions owned by extensions are not callable as RPCs and are skipped.
func (s *PostgresStore) GetFunctions(ctx context.Context, schemaName string) ([]FunctionInfo, error) {
	query := `
		SELECT
			p.proname::text,
			COALESCE(p.proargnames, '{}'::text[]),
			COALESCE(p.proargmodes::text[], '{}'::text[]),
			ARRAY(
				SELECT format_type(a.t, NULL)
				FROM unnest(p.proargtypes::oid[]) WITH ORDINALITY AS a(t, ord)
				ORDER BY a.ord
			),
			ARRAY(
				SELECT format_type(a.t, NULL)
				FROM unnest(p.proallargtypes) WITH ORDINALITY AS a(t, ord)
				ORDER BY a.ord
			),
			p.pronargdefaults::int,
			format_type(p.prorettype, NULL),
			p.proretset,
			p.provolatile::text,
			COALESCE(obj_description(p.oid, 'pg_proc'), '')
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		WHERE n.nspname = $1
		  AND p.prokind = 'f'
		  AND p.prorettype <> 'trigger'::regtype
		  AND NOT EXISTS (
			SELECT 1 FROM pg_depend d
			WHERE d.objid = p.oid AND d.deptype = 'e'
		  )
		ORDER BY p.proname
	`

	rows, err := s.db.Query(ctx, query, schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var funcs []FunctionInfo
	for rows.Next() {
		var (
			fn        FunctionInfo
			names     []string
			modes     []string
			types     []string
			allTypes  []string
			nDefaults int
			retType   string
			volatile  string
		)
		err := rows.Scan(&fn.Name, &names, &modes, &types, &allTypes, &nDefaults, &retType, &fn.ReturnsSet, &volatile, &fn.Comment)
		if err != nil {
			return nil, err
		}

		fn.Schema = schemaName
		fn.Args = buildFunctionArgs(names, modes, types, nDefaults)
		fn.ResultColumns = buildResultColumns(names, modes, allTypes)
		fn.ReturnType = stripSchema(retType, schemaName)
		fn.Volatility = volatility(volatile)

		funcs = append(funcs, fn)
	}

	return funcs, rows.Err()
}

// Helper functions

// buildFunctionArgs pairs input argument types with their names. proargnames
// and proargmodes cover every argument (OUT included) while proargtypes only
// lists inputs; the trailing nDefaults inputs have defaults.
func buildFunctionArgs(names, modes, types []string, nDefaults int) []FunctionArgInfo {
	var inputNames []string
	for i, name := range names {
		if len(modes) > 0 && i < len(modes) && modes[i] != "i" && modes[i] != "b" && modes[i] != "v" {
			continue
		}
		inputNames = append(inputNames, name)
	}

	args := make([]FunctionArgInfo, len(types))
	for i, t := range types {
		name := fmt.Sprintf("arg%d", i+1)
		if i < len(inputNames) && inputNames[i] != "" {
			name = inputNames[i]
		}
		args[i] = FunctionArgInfo{
			Name:       name,
			DBType:     t,
			IsArray:    strings.HasSuffix(t, "[]"),
			HasDefault: i >= len(types)-nDefaults,
		}
	}
	return args
}

// buildResultColumns returns the output columns of a function. They only
// appear in proallargtypes, which is empty when every argument is an input.
func buildResultColumns(names, modes, allTypes []string) []FunctionColumnInfo {
	var cols []FunctionColumnInfo
	for i, mode := range modes {
		if mode != "o" && mode != "b" && mode != "t" {
			continue
		}
		if i >= len(allTypes) {
			break
		}
		name := fmt.Sprintf("column%d", len(cols)+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		cols = append(cols, FunctionColumnInfo{Name: name, DBType: allTypes[i]})
	}
	return cols
}

func stripSchema(typeName, schemaName string) string {
	return strings.TrimPrefix(typeName, schemaName+".")
}

func volatility(code string) string {
	switch code {
	case "i":
		return "IMMUTABLE"
	case "s":
		return "STABLE"
	default:
		return "VOLATILE"
	}
}

func referentialAction(code string) string {
	switch code {
	case "r":
		return "RESTRICT"
	case "c":
		return "CASCADE"
	case "n":
		return "SET_NULL"
	case "d":
		return "SET_DEFAULT"
	default:
		return "NO_ACTION"
	}
}

// arrayElementTypes maps udt names of built-in array elements to their
// information_schema spelling.
var arrayElementTypes = map[string]string{
	"text":        "text",
	"varchar":     "character varying",
	"int2":        "smallint",
	"int4":        "integer",
	"int8":        "bigint",
	"float4":      "real",
	"float8":      "double precision",
	"numeric":     "numeric",
	"bool":        "boolean",
	"uuid":        "uuid",
	"date":        "date",
	"timestamptz": "timestamp with time zone",
	"timestamp":   "timestamp without time zone",
	"jsonb":       "jsonb",
	"json":        "json",
}

func normalizePostgresType(dataType, udtName string, maxLength, precision, scale *int) string {
	switch dataType {
	case "ARRAY":
		elem := strings.TrimPrefix(udtName, "_")
		if mapped, ok := arrayElementTypes[elem]; ok {
			elem = mapped
		}
		return elem + "[]"
	case "USER-DEFINED":
		return udtName
	case "character varying":
		if maxLength != nil && *maxLength > 0 {
			return fmt.Sprintf("varchar(%d)", *maxLength)
		}
		return "varchar"
	case "character":
		if maxLength != nil && *maxLength > 0 {
			return fmt.Sprintf("char(%d)", *maxLength)
		}
		return "char"
	case "numeric":
		if precision != nil && scale != nil && *precision > 0 && *scale > 0 {
			return fmt.Sprintf("numeric(%d,%d)", *precision, *scale)
		} else if precision != nil && *precision > 0 {
			return fmt.Sprintf("numeric(%d)", *precision)
		}
		return "numeric"
	default:
		return dataType
	}
}

var castSuffix = regexp.MustCompile(`::[\w\s]+(\[\])?`)

func cleanDefaultValue(defaultVal string) string {
	defaultVal = castSuffix.ReplaceAllString(defaultVal, "")
	defaultVal = strings.TrimSpace(defaultVal)
	defaultVal = strings.Trim(defaultVal, "'")
	return defaultVal
}
