package depanalyzer

import "log/slog"

// analyzeConfig holds the resolved configuration for an analysis.
type analyzeConfig struct {
	logger *slog.Logger
	checks []Check
}

// Option configures an analysis.
type Option func(*analyzeConfig)

// WithLogger sets the logger that receives progress records (debug level)
// and check failures (warn level).
func WithLogger(l *slog.Logger) Option {
	return func(c *analyzeConfig) {
		c.logger = l
	}
}

// WithChecks registers checks to run against the target, in order.
func WithChecks(checks ...Check) Option {
	return func(c *analyzeConfig) {
		c.checks = append(c.checks, checks...)
	}
}
