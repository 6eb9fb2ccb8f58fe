package dbtypes

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when two descriptors share a name.
var ErrDuplicate = errors.New("duplicate name")

// Schema is a registry of the tables, enums and functions of one database
// schema, keyed by their SQL names.
type Schema struct {
	name      string
	tables    map[string]TableDescriptor
	tableList []string
	enums     map[string]*Enum
	enumList  []string
	funcs     map[string]*Function
	funcList  []string
}

// SchemaOption registers descriptors in a new Schema.
type SchemaOption func(*Schema) error

// WithTables registers table descriptors.
func WithTables(tables ...TableDescriptor) SchemaOption {
	return func(s *Schema) error {
		for _, t := range tables {
			name := t.Info().Name
			if _, ok := s.tables[name]; ok {
				return fmt.Errorf("table %s: %w", name, ErrDuplicate)
			}
			s.tables[name] = t
			s.tableList = append(s.tableList, name)
		}
		return nil
	}
}

// WithEnums registers enum descriptors.
func WithEnums(enums ...*Enum) SchemaOption {
	return func(s *Schema) error {
		for _, e := range enums {
			if _, ok := s.enums[e.Name]; ok {
				return fmt.Errorf("enum %s: %w", e.Name, ErrDuplicate)
			}
			s.enums[e.Name] = e
			s.enumList = append(s.enumList, e.Name)
		}
		return nil
	}
}

// WithFunctions registers function descriptors.
func WithFunctions(funcs ...*Function) SchemaOption {
	return func(s *Schema) error {
		for _, f := range funcs {
			if _, ok := s.funcs[f.Name]; ok {
				return fmt.Errorf("function %s: %w", f.Name, ErrDuplicate)
			}
			s.funcs[f.Name] = f
			s.funcList = append(s.funcList, f.Name)
		}
		return nil
	}
}

// NewSchema builds a registry from opts.
func NewSchema(name string, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		name:   name,
		tables: make(map[string]TableDescriptor),
		enums:  make(map[string]*Enum),
		funcs:  make(map[string]*Function),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
	}
	return s, nil
}

// MustSchema is NewSchema for package-level variables in generated code.
func MustSchema(name string, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the SQL schema name.
func (s *Schema) Name() string {
	return s.name
}

// Table resolves a table name to its descriptor.
func (s *Schema) Table(name string) (TableDescriptor, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Tables returns every table in registration order.
func (s *Schema) Tables() []TableDescriptor {
	out := make([]TableDescriptor, len(s.tableList))
	for i, name := range s.tableList {
		out[i] = s.tables[name]
	}
	return out
}

// TableNames returns every table name in registration order.
func (s *Schema) TableNames() []string {
	return append([]string(nil), s.tableList...)
}

// Enum resolves an enum name to its descriptor.
func (s *Schema) Enum(name string) (*Enum, bool) {
	e, ok := s.enums[name]
	return e, ok
}

// Enums returns every enum in registration order.
func (s *Schema) Enums() []*Enum {
	out := make([]*Enum, len(s.enumList))
	for i, name := range s.enumList {
		out[i] = s.enums[name]
	}
	return out
}

// Function resolves a function name to its descriptor.
func (s *Schema) Function(name string) (*Function, bool) {
	f, ok := s.funcs[name]
	return f, ok
}

// Functions returns every function in registration order.
func (s *Schema) Functions() []*Function {
	out := make([]*Function, len(s.funcList))
	for i, name := range s.funcList {
		out[i] = s.funcs[name]
	}
	return out
}

// TableFor returns the typed descriptor registered under name, or false if
// the name is unknown or bound to different shapes.
func TableFor[R, I, U any](s *Schema, name string) (*Table[R, I, U], bool) {
	d, ok := s.Table(name)
	if !ok {
		return nil, false
	}
	t, ok := d.(*Table[R, I, U])
	return t, ok
}
