// Package bindgen renders Go bindings from a reflected schema.
package bindgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/jrazmi/sitebook/app/generators/schema"
	"golang.org/x/tools/imports"
)

const (
	genSuffix = "_gen.go"
	docFile   = "doc.go"
)

// Config holds the generator inputs.
type Config struct {
	InputPath   string `env:"GENERATE_INPUT" envDefault:"schema/reflected/public.json"`
	OutputDir   string `env:"GENERATE_OUTPUT_DIR" envDefault:"core/platform"`
	PackageName string `env:"GENERATE_PACKAGE" envDefault:"platform"`
}

// Generator writes binding files for one schema.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// New returns a Generator.
func New(cfg Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, log: log}
}

// Generate loads the reflected schema and writes the bindings.
func (g *Generator) Generate() error {
	model, err := schema.LoadModel(g.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	for _, w := range model.Warnings {
		g.log.Warn("type mapped to any", "detail", w)
	}

	files, err := Render(model, g.cfg.PackageName)
	if err != nil {
		return err
	}

	if err := WriteFiles(g.cfg.OutputDir, files, g.log); err != nil {
		return err
	}

	g.log.Info("bindings generated",
		"output", g.cfg.OutputDir,
		"tables", len(model.Tables),
		"enums", len(model.Enums),
		"functions", len(model.Functions))
	return nil
}

var funcs = template.FuncMap{
	"quoteJoin":          quoteJoin,
	"columnLiteral":      columnLiteral,
	"enumLabels":         enumLabels,
	"funcArgLiteral":     funcArgLiteral,
	"functionArgLiteral": functionArgLiteral,
	"hasOptional":        hasOptional,
	"comment":            comment,
}

var (
	tableTmpl     = template.Must(template.New("table").Funcs(funcs).Parse(tableTemplate))
	enumsTmpl     = template.Must(template.New("enums").Funcs(funcs).Parse(enumsTemplate))
	functionsTmpl = template.Must(template.New("functions").Funcs(funcs).Parse(functionsTemplate))
	schemaTmpl    = template.Must(template.New("schema").Funcs(funcs).Parse(schemaTemplate))
	docTmpl       = template.Must(template.New("doc").Parse(docTemplate))
)

// Render produces formatted source for every binding file, keyed by file name.
func Render(m *schema.Model, pkg string) (map[string][]byte, error) {
	base := struct {
		*schema.Model
		Package string
	}{m, pkg}

	files := make(map[string][]byte)
	var errs []error

	render := func(name string, tmpl *template.Template, data any) {
		src, err := execute(name, tmpl, data)
		if err != nil {
			errs = append(errs, err)
			return
		}
		files[name] = src
	}

	for _, t := range m.Tables {
		render(t.FileName, tableTmpl, struct {
			Source  string
			Package string
			Table   *schema.Table
		}{m.Source, pkg, t})
	}
	if len(m.Enums) > 0 {
		render("enums"+genSuffix, enumsTmpl, base)
	}
	if len(m.Functions) > 0 {
		render("functions"+genSuffix, functionsTmpl, struct {
			Source    string
			Package   string
			Imports   []string
			Functions []*schema.Function
		}{m.Source, pkg, m.FunctionImports(), m.Functions})
	}
	render("schema"+genSuffix, schemaTmpl, base)
	render(docFile, docTmpl, base)

	return files, errors.Join(errs...)
}

func execute(name string, tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	src, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", name, err, buf.String())
	}
	return src, nil
}

// WriteFiles writes generated files into dir. Generated files are always
// overwritten and stale ones removed; doc.go is only created when missing.
func WriteFiles(dir string, files map[string][]byte, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	existing, err := filepath.Glob(filepath.Join(dir, "*"+genSuffix))
	if err != nil {
		return err
	}
	for _, path := range existing {
		if _, ok := files[filepath.Base(path)]; ok {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale %s: %w", path, err)
		}
		log.Info("removed stale file", "file", path)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if name == docFile {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug("wrote file", "file", path)
	}
	return nil
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}

func enumLabels(e *schema.Enum) string {
	labels := make([]string, len(e.Values))
	for i, v := range e.Values {
		labels[i] = v.Label
	}
	return quoteJoin(labels)
}

func columnLiteral(c *schema.Column) string {
	parts := []string{
		"Name: " + strconv.Quote(c.Name),
		"DBType: " + strconv.Quote(c.DBType),
	}
	if c.Nullable {
		parts = append(parts, "Nullable: true")
	}
	if c.HasDefault {
		parts = append(parts, "HasDefault: true")
	}
	if c.Identity {
		parts = append(parts, "Identity: true")
	}
	if c.Generated {
		parts = append(parts, "Generated: true")
	}
	if c.Enum != "" {
		parts = append(parts, "Enum: "+strconv.Quote(c.Enum))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func funcArgLiteral(a schema.FunctionArg) string {
	parts := []string{
		"Name: " + strconv.Quote(a.Name),
		"Value: " + a.ValueExpr("a"),
	}
	if a.Optional {
		parts = append(parts, "Omit: a."+a.Field+" == nil")
	}
	if a.Enum != "" {
		parts = append(parts, "Cast: "+strconv.Quote(a.DBType))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func functionArgLiteral(a schema.FunctionArg) string {
	parts := []string{
		"Name: " + strconv.Quote(a.Name),
		"DBType: " + strconv.Quote(a.DBType),
	}
	if a.Optional {
		parts = append(parts, "Optional: true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// comment renders a database comment as Go line comments.
func comment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(line), " ")
	}
	return strings.Join(lines, "\n")
}

func hasOptional(f *schema.Function) bool {
	return slices.ContainsFunc(f.Args, func(a schema.FunctionArg) bool { return a.Optional })
}
