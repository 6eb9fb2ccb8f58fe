package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrazmi/sitebook/infrastructure/postgresdb"
	"github.com/jrazmi/sitebook/sdk/environment"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "sitebook"

// metricsConfig controls query metrics for commands that open the database.
// File is written in the Prometheus text format, ready for a node_exporter
// textfile collector.
type metricsConfig struct {
	Enabled bool   `env:"PG_METRICS" envDefault:"false"`
	File    string `env:"PG_METRICS_FILE"`
}

func loadMetricsConfig() (metricsConfig, error) {
	var cfg metricsConfig
	if err := environment.ParseEnvTags(AppName, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing metrics config: %w", err)
	}
	return cfg, nil
}

type queryMetrics struct {
	file     string
	registry *prometheus.Registry
	tracer   *postgresdb.MetricsQueryTracer
}

// newQueryMetrics returns nil when metrics are disabled; a nil
// *queryMetrics adds no options and reports nothing.
func newQueryMetrics(cfg metricsConfig) (*queryMetrics, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	registry := prometheus.NewRegistry()
	tracer, err := postgresdb.NewMetricsQueryTracer(metricsNamespace, registry)
	if err != nil {
		return nil, fmt.Errorf("registering query metrics: %w", err)
	}

	return &queryMetrics{file: cfg.File, registry: registry, tracer: tracer}, nil
}

func (m *queryMetrics) options() []postgresdb.Option {
	if m == nil {
		return nil
	}
	return []postgresdb.Option{postgresdb.WithTracer(m.tracer)}
}

// report logs the gathered query counters and writes the metrics file.
func (m *queryMetrics) report(ctx context.Context, log *slog.Logger) {
	if m == nil {
		return
	}

	for _, c := range m.tracer.Counts() {
		log.InfoContext(ctx, "db queries", "verb", c.Verb, "status", c.Status, "count", c.Count)
	}

	if m.file == "" {
		return
	}
	if err := prometheus.WriteToTextfile(m.file, m.registry); err != nil {
		log.WarnContext(ctx, "write query metrics", "file", m.file, "error", err)
		return
	}
	log.InfoContext(ctx, "query metrics written", "file", m.file)
}
