// Package analyzer validates analysis targets and runs the registered checks
// against them to build an AnalysisResult.
package analyzer

import (
	"context"
	"slices"
	"sort"

	"github.com/depanalyzer/depanalyzer/internal/ctxlog"
	"github.com/depanalyzer/depanalyzer/internal/types"
)

// Check is the interface a dependency check implements to contribute
// findings for a target. No checks ship with the tool yet.
type Check interface {
	Name() string
	Check(ctx context.Context, target string) ([]types.Finding, error)
}

// Analyzer orchestrates validation and the registered checks.
type Analyzer struct {
	checks []Check
}

// New creates an Analyzer with no checks registered.
func New() *Analyzer {
	return &Analyzer{}
}

// RegisterCheck adds a check to the pipeline.
func (a *Analyzer) RegisterCheck(c Check) {
	a.checks = append(a.checks, c)
}

// Checks returns a copy of the registered checks in registration order.
func (a *Analyzer) Checks() []Check {
	return slices.Clone(a.checks)
}

// Analyze validates target and returns its result. With no checks registered
// the result is a success with an empty findings list.
func (a *Analyzer) Analyze(ctx context.Context, target string) (*types.AnalysisResult, error) {
	log := ctxlog.FromContext(ctx)

	if err := Validate(ctx, target); err != nil {
		return nil, err
	}

	result := types.NewAnalysisResult(target)
	for _, c := range a.checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		findings, err := c.Check(ctx, target)
		if err != nil {
			log.Warn("check failed", "check", c.Name(), "error", err)
			continue
		}
		result.Findings = append(result.Findings, findings...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortFindings(result.Findings)
	log.Debug("analysis finished", "target", target, "checks", len(a.checks), "findings", len(result.Findings))
	return result, nil
}

func sortFindings(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity > findings[j].Severity
		}
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		return findings[i].Line < findings[j].Line
	})
}
