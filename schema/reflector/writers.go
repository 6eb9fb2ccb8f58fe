package reflector

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jrazmi/sitebook/infrastructure/postgresdb"
)

// ReadJSON loads a reflected artifact written by WriteJSON.
func ReadJSON(filePath string) (*ReflectedSchema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	var schema ReflectedSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	return &schema, nil
}

// WriteJSON writes the schema to a JSON file
func WriteJSON(schema *ReflectedSchema, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	return encoder.Encode(schema)
}

// WriteSQL writes the schema to an SQL file (documentation format)
func WriteSQL(schema *ReflectedSchema, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return RenderSQL(file, schema)
}

// RenderSQL writes documentation DDL for schema to w.
func RenderSQL(w io.Writer, schema *ReflectedSchema) error {
	fmt.Fprintf(w, "-- =============================================================================\n")
	fmt.Fprintf(w, "-- Schema Reflection: %s.%s\n", schema.Database, schema.SchemaName)
	fmt.Fprintf(w, "-- Reflected at: %s\n", schema.ReflectedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "-- Tables: %d, Enums: %d, Functions: %d\n", len(schema.Tables), len(schema.Enums), len(schema.Functions))
	fmt.Fprintf(w, "-- =============================================================================\n\n")

	for _, e := range schema.Enums {
		quoted := make([]string, len(e.Values))
		for i, v := range e.Values {
			quoted[i] = postgresdb.QuoteLiteral(v)
		}
		fmt.Fprintf(w, "CREATE TYPE %s.%s AS ENUM (%s);\n", e.Schema, e.Name, strings.Join(quoted, ", "))
	}
	if len(schema.Enums) > 0 {
		fmt.Fprintln(w)
	}

	for _, tableName := range slices.Sorted(maps.Keys(schema.Tables)) {
		writeTableSQL(w, schema.Tables[tableName])
		fmt.Fprintln(w)
	}

	for _, fn := range schema.Functions {
		writeFunctionSQL(w, fn)
	}

	return nil
}

// writeTableSQL writes a single table's SQL definition
func writeTableSQL(w io.Writer, table *TableInfo) {
	fmt.Fprintf(w, "-- -----------------------------------------------------------------------------\n")
	fmt.Fprintf(w, "-- Table: %s\n", table.TableName)
	if table.Comment != "" {
		fmt.Fprintf(w, "-- %s\n", table.Comment)
	}
	fmt.Fprintf(w, "-- -----------------------------------------------------------------------------\n")

	fmt.Fprintf(w, "CREATE TABLE %s.%s (\n", table.Schema, table.TableName)

	columnLines := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		line := fmt.Sprintf("    %s %s", col.Name, col.DBType)

		if !col.IsNullable {
			line += " NOT NULL"
		}
		switch {
		case col.IsIdentity:
			line += " GENERATED ALWAYS AS IDENTITY"
		case col.IsGenerated:
			line += " GENERATED ALWAYS"
		case col.HasDefault && col.DefaultValue != "":
			line += fmt.Sprintf(" DEFAULT %s", col.DefaultValue)
		}

		columnLines = append(columnLines, line)
	}

	if len(table.PrimaryKey) > 0 {
		columnLines = append(columnLines, fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(table.PrimaryKey, ", ")))
	}

	for _, fk := range table.ForeignKeys {
		fkLine := fmt.Sprintf("    CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s.%s(%s)",
			fk.Name,
			strings.Join(fk.Columns, ", "),
			fk.RefSchema,
			fk.RefTable,
			strings.Join(fk.RefColumns, ", "),
		)

		if fk.OnDelete != "" && fk.OnDelete != "NO_ACTION" {
			fkLine += fmt.Sprintf(" ON DELETE %s", strings.ReplaceAll(fk.OnDelete, "_", " "))
		}
		if fk.OnUpdate != "" && fk.OnUpdate != "NO_ACTION" {
			fkLine += fmt.Sprintf(" ON UPDATE %s", strings.ReplaceAll(fk.OnUpdate, "_", " "))
		}

		columnLines = append(columnLines, fkLine)
	}

	for _, constraint := range table.Constraints {
		if constraint.Type == "CHECK" {
			columnLines = append(columnLines, fmt.Sprintf("    CONSTRAINT %s %s", constraint.Name, constraint.Definition))
		}
	}

	fmt.Fprint(w, strings.Join(columnLines, ",\n"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, ");")

	for _, idx := range table.Indexes {
		uniqueStr := ""
		if idx.Unique {
			uniqueStr = "UNIQUE "
		}

		fmt.Fprintf(w, "CREATE %sINDEX %s ON %s.%s USING %s (%s);\n",
			uniqueStr,
			idx.Name,
			table.Schema,
			table.TableName,
			idx.Method,
			strings.Join(idx.Columns, ", "),
		)
	}

	if table.Comment != "" {
		fmt.Fprintf(w, "\nCOMMENT ON TABLE %s.%s IS %s;\n",
			table.Schema,
			table.TableName,
			postgresdb.QuoteLiteral(table.Comment),
		)
	}

	for _, col := range table.Columns {
		if col.Comment != "" {
			fmt.Fprintf(w, "COMMENT ON COLUMN %s.%s.%s IS %s;\n",
				table.Schema,
				table.TableName,
				col.Name,
				postgresdb.QuoteLiteral(col.Comment),
			)
		}
	}
}

func writeFunctionSQL(w io.Writer, fn FunctionInfo) {
	args := make([]string, len(fn.Args))
	for i, a := range fn.Args {
		args[i] = a.Name + " " + a.DBType
		if a.HasDefault {
			args[i] += " DEFAULT ..."
		}
	}

	ret := fn.ReturnType
	switch {
	case fn.ReturnsSet && fn.ReturnType == "record" && len(fn.ResultColumns) > 0:
		cols := make([]string, len(fn.ResultColumns))
		for i, c := range fn.ResultColumns {
			cols[i] = c.Name + " " + c.DBType
		}
		ret = "TABLE(" + strings.Join(cols, ", ") + ")"
	case fn.ReturnsSet:
		ret = "SETOF " + ret
	}

	fmt.Fprintf(w, "-- FUNCTION %s.%s(%s) RETURNS %s %s\n", fn.Schema, fn.Name, strings.Join(args, ", "), ret, fn.Volatility)
}
