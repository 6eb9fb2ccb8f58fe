package reflector

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jrazmi/sitebook/core/dbtypes"
)

// Drift lists the differences between a live reflection and compiled
// bindings: tables, columns, enum labels and functions present on one side
// only, plus columns whose nullability changed. An empty result means the
// bindings are current.
func Drift(live *ReflectedSchema, bound *dbtypes.Schema) []string {
	var out []string

	for _, name := range slices.Sorted(maps.Keys(live.Tables)) {
		table := live.Tables[name]
		d, ok := bound.Table(name)
		if !ok {
			out = append(out, fmt.Sprintf("table %s: missing from bindings", name))
			continue
		}
		info := d.Info()

		for _, col := range table.Columns {
			bc, ok := info.Column(col.Name)
			if !ok {
				out = append(out, fmt.Sprintf("column %s.%s: missing from bindings", name, col.Name))
				continue
			}
			if bc.Nullable != col.IsNullable {
				out = append(out, fmt.Sprintf("column %s.%s: nullable is %t in database, %t in bindings", name, col.Name, col.IsNullable, bc.Nullable))
			}
		}
		for _, bc := range info.Columns {
			if table.Column(bc.Name) == nil {
				out = append(out, fmt.Sprintf("column %s.%s: not in database", name, bc.Name))
			}
		}
	}
	for _, name := range bound.TableNames() {
		if _, ok := live.Tables[name]; !ok {
			out = append(out, fmt.Sprintf("table %s: not in database", name))
		}
	}

	liveEnums := make(map[string]bool)
	for _, e := range live.Enums {
		liveEnums[e.Name] = true
		be, ok := bound.Enum(e.Name)
		if !ok {
			out = append(out, fmt.Sprintf("enum %s: missing from bindings", e.Name))
			continue
		}
		if !slices.Equal(be.Values, e.Values) {
			out = append(out, fmt.Sprintf("enum %s: values %v in database, %v in bindings", e.Name, e.Values, be.Values))
		}
	}
	for _, e := range bound.Enums() {
		if !liveEnums[e.Name] {
			out = append(out, fmt.Sprintf("enum %s: not in database", e.Name))
		}
	}

	liveFuncs := make(map[string]bool)
	for _, fn := range live.Functions {
		liveFuncs[fn.Name] = true
		if _, ok := bound.Function(fn.Name); !ok {
			out = append(out, fmt.Sprintf("function %s: missing from bindings", fn.Name))
		}
	}
	for _, fn := range bound.Functions() {
		if !liveFuncs[fn.Name] {
			out = append(out, fmt.Sprintf("function %s: not in database", fn.Name))
		}
	}

	return out
}
