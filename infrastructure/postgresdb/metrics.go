package postgresdb

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricsQueryTracer records query counts and latencies, labelled by the
// leading SQL verb so cardinality stays bounded.
type MetricsQueryTracer struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsQueryTracer creates the collectors and registers them with reg.
// Passing nil skips registration, which tests rely on.
func NewMetricsQueryTracer(namespace string, reg prometheus.Registerer) (*MetricsQueryTracer, error) {
	t := &MetricsQueryTracer{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_queries_total",
				Help:      "Total number of database queries",
			},
			[]string{"verb", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Duration of database queries in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"verb"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{t.queries, t.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func (t *MetricsQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return withQueryStart(ctx, data.SQL)
}

func (t *MetricsQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	qs, ok := queryStartFrom(ctx)
	if !ok {
		return
	}

	verb := sqlVerb(qs.sql)
	status := "ok"
	if data.Err != nil {
		status = "error"
	}

	t.queries.WithLabelValues(verb, status).Inc()
	t.duration.WithLabelValues(verb).Observe(time.Since(qs.at).Seconds())
}

// QueryCount is the number of queries seen for one verb and outcome.
type QueryCount struct {
	Verb   string
	Status string
	Count  uint64
}

// Counts reads the query counters, ordered by verb then status.
func (t *MetricsQueryTracer) Counts() []QueryCount {
	ch := make(chan prometheus.Metric)
	go func() {
		t.queries.Collect(ch)
		close(ch)
	}()

	var counts []QueryCount
	for m := range ch {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			continue
		}
		qc := QueryCount{Count: uint64(pb.GetCounter().GetValue())}
		for _, l := range pb.GetLabel() {
			switch l.GetName() {
			case "verb":
				qc.Verb = l.GetValue()
			case "status":
				qc.Status = l.GetValue()
			}
		}
		counts = append(counts, qc)
	}

	slices.SortFunc(counts, func(a, b QueryCount) int {
		return cmp.Or(strings.Compare(a.Verb, b.Verb), strings.Compare(a.Status, b.Status))
	})
	return counts
}

// sqlVerb returns the upper-cased first keyword of a statement.
func sqlVerb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	verb := strings.ToUpper(strings.TrimLeft(fields[0], "("))
	switch verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "WITH", "CREATE", "ALTER", "DROP", "BEGIN", "COMMIT", "ROLLBACK":
		return verb
	default:
		return "OTHER"
	}
}
