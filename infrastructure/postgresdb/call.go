package postgresdb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// FuncArg is one named argument of a stored function call. Omitted
// arguments are left out of the call so the function's own default applies.
//
// Cast names a type the driver cannot encode directly, such as a custom
// enum or enum array. The value is then sent as text and cast server side.
type FuncArg struct {
	Name  string
	Value any
	Omit  bool
	Cast  string
}

var castPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\[\])?$`)

func placeholder(n int, cast string) (string, error) {
	if cast == "" {
		return fmt.Sprintf("$%d", n), nil
	}
	if !castPattern.MatchString(cast) {
		return "", fmt.Errorf("invalid cast type %q", cast)
	}
	via := "text"
	if strings.HasSuffix(cast, "[]") {
		via = "text[]"
	}
	return fmt.Sprintf("$%d::%s::%s", n, via, cast), nil
}

// BuildCall renders `SELECT * FROM schema.fn(arg => $1, ...)` using named
// notation, so optional arguments can be skipped in any position.
func BuildCall(schema, fn string, args []FuncArg) (string, []any, error) {
	target := fn
	if schema != "" {
		target = schema + "." + fn
	}
	quoted, err := QuoteIdentifier(target)
	if err != nil {
		return "", nil, fmt.Errorf("function name: %w", err)
	}

	var (
		parts  []string
		params []any
	)
	for _, arg := range args {
		if arg.Omit {
			continue
		}
		name, err := QuoteIdentifier(arg.Name)
		if err != nil {
			return "", nil, fmt.Errorf("argument name: %w", err)
		}
		params = append(params, arg.Value)
		ph, err := placeholder(len(params), arg.Cast)
		if err != nil {
			return "", nil, fmt.Errorf("argument %s: %w", arg.Name, err)
		}
		parts = append(parts, name+" => "+ph)
	}

	return fmt.Sprintf("SELECT * FROM %s(%s)", quoted, strings.Join(parts, ", ")), params, nil
}

// CallScalar invokes a function returning a single value.
func CallScalar[T any](ctx context.Context, q Querier, schema, fn string, args ...FuncArg) (T, error) {
	var zero T

	sql, params, err := BuildCall(schema, fn, args)
	if err != nil {
		return zero, err
	}

	rows, err := q.Query(ctx, sql, params...)
	if err != nil {
		return zero, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[T])
	if err != nil {
		return zero, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	return v, nil
}

// CallRows invokes a set-returning function and maps each row onto T by
// its `db` struct tags.
func CallRows[T any](ctx context.Context, q Querier, schema, fn string, args ...FuncArg) ([]T, error) {
	sql, params, err := BuildCall(schema, fn, args)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, params...)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	return out, nil
}

// CallScalars invokes a set-returning function of a scalar type.
func CallScalars[T any](ctx context.Context, q Querier, schema, fn string, args ...FuncArg) ([]T, error) {
	sql, params, err := BuildCall(schema, fn, args)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, params...)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[T])
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	return out, nil
}

// CallRow invokes a function returning exactly one row of a table type.
func CallRow[T any](ctx context.Context, q Querier, schema, fn string, args ...FuncArg) (T, error) {
	var zero T

	sql, params, err := BuildCall(schema, fn, args)
	if err != nil {
		return zero, err
	}

	rows, err := q.Query(ctx, sql, params...)
	if err != nil {
		return zero, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	return v, nil
}

// CallExec invokes a function for its side effects, discarding any result.
func CallExec(ctx context.Context, q Querier, schema, fn string, args ...FuncArg) error {
	sql, params, err := BuildCall(schema, fn, args)
	if err != nil {
		return err
	}

	if _, err := q.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("call %s: %w", fn, HandlePgError(err))
	}

	return nil
}
