package environment

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnvTags fills a struct from environment variables using `env` and
// `envDefault` struct tags. A non-empty prefix namespaces every key, so
// prefix "SITEBOOK" turns `env:"LOG_LEVEL"` into SITEBOOK_LOG_LEVEL.
func ParseEnvTags(prefix string, cfg any) error {
	var opts env.Options
	if prefix != "" {
		opts.Prefix = GetNamespaceEnvKey(prefix, "")
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
