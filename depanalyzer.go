// Package depanalyzer provides a public API for analyzing the dependencies of
// a project path.
//
// This is the library entry point. For the CLI tool, see cmd/depanalyzer/.
package depanalyzer

import (
	"context"

	"github.com/depanalyzer/depanalyzer/internal/analyzer"
	"github.com/depanalyzer/depanalyzer/internal/ctxlog"
	"github.com/depanalyzer/depanalyzer/internal/types"
)

// Re-export core types from internal/types so consumers don't need to
// import internal packages.
type (
	Severity       = types.Severity
	Status         = types.Status
	Finding        = types.Finding
	AnalysisResult = types.AnalysisResult

	// Check contributes findings for a target. See WithChecks.
	Check = analyzer.Check

	// TargetNotFoundError is returned when the target path does not exist.
	TargetNotFoundError = analyzer.TargetNotFoundError
)

const (
	SeverityInfo     = types.SeverityInfo
	SeverityLow      = types.SeverityLow
	SeverityMedium   = types.SeverityMedium
	SeverityHigh     = types.SeverityHigh
	SeverityCritical = types.SeverityCritical

	StatusSuccess = types.StatusSuccess
)

// Analyze validates path and returns its analysis result. Without
// WithChecks the result carries no findings.
func Analyze(ctx context.Context, path string, opts ...Option) (*AnalysisResult, error) {
	cfg := applyOpts(opts)

	a := analyzer.New()
	for _, c := range cfg.checks {
		a.RegisterCheck(c)
	}
	if cfg.logger != nil {
		ctx = ctxlog.WithLogger(ctx, cfg.logger)
	}
	return a.Analyze(ctx, path)
}

func applyOpts(opts []Option) *analyzeConfig {
	cfg := &analyzeConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
