package postgresdb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrintSQL(t *testing.T) {
	sql := `
		SELECT id, name
		FROM jobs
		WHERE company_id = $1
		  AND status IN ( 'active' )
	`
	assert.Equal(t, "SELECT id, name FROM jobs WHERE company_id = $1 AND status IN('active')", prettyPrintSQL(sql))
}

func TestSQLVerb(t *testing.T) {
	assert.Equal(t, "SELECT", sqlVerb("  select * from jobs"))
	assert.Equal(t, "WITH", sqlVerb("with x as (select 1) select * from x"))
	assert.Equal(t, "OTHER", sqlVerb("LISTEN jobs"))
	assert.Equal(t, "UNKNOWN", sqlVerb(""))
}

func TestLoggingQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := NewLoggingQueryTracer(log)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1", Args: []any{1}})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "query start")
	assert.Contains(t, out, "sql=\"SELECT 1\"")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}

func TestMetricsQueryTracer(t *testing.T) {
	reg := prometheus.NewRegistry()
	tracer, err := NewMetricsQueryTracer("sitebook", reg)
	require.NoError(t, err)

	multi := NewMultiQueryTracer(tracer)
	ctx := multi.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM jobs"})
	multi.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	ctx = multi.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "INSERT INTO jobs DEFAULT VALUES"})
	multi.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("nope")})

	// End without a matching start is ignored.
	multi.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	assert.Equal(t, 1.0, testutil.ToFloat64(tracer.queries.WithLabelValues("SELECT", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tracer.queries.WithLabelValues("INSERT", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(tracer.duration))

	assert.Equal(t, []QueryCount{
		{Verb: "INSERT", Status: "error", Count: 1},
		{Verb: "SELECT", Status: "ok", Count: 1},
	}, tracer.Counts())

	_, err = NewMetricsQueryTracer("sitebook", reg)
	require.Error(t, err, "duplicate registration")
}
