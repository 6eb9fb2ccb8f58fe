package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/sitebook/schema/reflector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func discardLog() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func vendorsSchema() *reflector.ReflectedSchema {
	return &reflector.ReflectedSchema{
		Version:    reflector.FormatVersion,
		Source:     "postgres",
		Database:   "sitebook",
		SchemaName: "public",
		Enums: []reflector.EnumInfo{
			{Name: "bid_status", Schema: "public", Values: []string{"draft", "open", "awarded"}},
		},
		Tables: map[string]*reflector.TableInfo{
			"vendors": {
				TableName:  "vendors",
				Schema:     "public",
				PrimaryKey: []string{"id"},
				Columns: []reflector.ColumnInfo{
					{Name: "id", Ordinal: 1, DBType: "uuid", HasDefault: true},
					{Name: "company_id", Ordinal: 2, DBType: "uuid"},
					{Name: "name", Ordinal: 3, DBType: "text"},
					{Name: "insurance_expires_on", Ordinal: 4, DBType: "date", IsNullable: true},
				},
			},
		},
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "public.json")
	require.NoError(t, reflector.WriteJSON(vendorsSchema(), input))
	out := filepath.Join(dir, "bindings")

	err := Root(discardLog(), "test").Run(context.Background(), []string{
		"sitebook", "generate",
		"--input", input,
		"--output", out,
		"--package", "bindings",
	})
	require.NoError(t, err)

	for _, name := range []string{"vendors_gen.go", "enums_gen.go", "schema_gen.go", "doc.go"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NoFileExists(t, filepath.Join(out, "functions_gen.go"))

	src, err := os.ReadFile(filepath.Join(out, "vendors_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package bindings")
	assert.Contains(t, string(src), "type VendorInsert struct")
}

func TestGenerateCommandMissingInput(t *testing.T) {
	err := Root(discardLog(), "test").Run(context.Background(), []string{
		"sitebook", "generate",
		"--input", filepath.Join(t.TempDir(), "missing.json"),
		"--output", t.TempDir(),
	})
	require.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	err := Root(discardLog(), "test").Run(context.Background(), []string{"sitebook", "verify"})
	require.NoError(t, err)
}

func TestReportDrift(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, reportDrift(ctx, discardLog(), nil))

	err := reportDrift(ctx, discardLog(), []string{
		"table rfis: missing from bindings",
		"column jobs.region: not in database",
	})
	require.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, err.Error(), "2 differences")
}

func TestReflectConfig(t *testing.T) {
	t.Setenv("SITEBOOK_REFLECT_SCHEMA", "tenant")
	out := t.TempDir()

	var cfg reflector.Config
	cmd := Reflect(discardLog())
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		var err error
		cfg, err = reflectConfig(c)
		return err
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"reflect", "--output", out}))
	assert.Equal(t, "tenant", cfg.SchemaName)
	assert.Equal(t, out, cfg.OutputDir)
}

func TestWriteReflection(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reflected")

	require.NoError(t, writeReflection(context.Background(), discardLog(), vendorsSchema(), dir))

	got, err := reflector.ReadJSON(filepath.Join(dir, "public.json"))
	require.NoError(t, err)
	assert.Contains(t, got.Tables, "vendors")

	sql, err := os.ReadFile(filepath.Join(dir, "public.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(sql), "CREATE TYPE")
}

func TestMetricsConfigFromEnv(t *testing.T) {
	t.Setenv("SITEBOOK_PG_METRICS", "true")
	t.Setenv("SITEBOOK_PG_METRICS_FILE", "/var/lib/node_exporter/sitebook.prom")
	cfg, err := loadMetricsConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "/var/lib/node_exporter/sitebook.prom", cfg.File)
}

func TestQueryMetricsDisabled(t *testing.T) {
	metrics, err := newQueryMetrics(metricsConfig{})
	require.NoError(t, err)
	assert.Nil(t, metrics)
	assert.Empty(t, metrics.options())

	metrics.report(context.Background(), discardLog())
}

func TestQueryMetricsReport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sitebook.prom")
	metrics, err := newQueryMetrics(metricsConfig{Enabled: true, File: file})
	require.NoError(t, err)
	require.Len(t, metrics.options(), 1)

	ctx := metrics.tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM pg_enum"})
	metrics.tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	metrics.report(context.Background(), log)

	out := buf.String()
	assert.Contains(t, out, "msg=\"db queries\" verb=SELECT status=ok count=1")
	assert.Contains(t, out, "query metrics written")

	prom, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "sitebook_db_queries_total")
	assert.Contains(t, string(prom), `verb="SELECT"`)
}
