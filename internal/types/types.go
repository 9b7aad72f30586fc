// Package types defines the shared data structures (AnalysisResult, Finding,
// Severity) used by the analyzer and output packages.
package types

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity level.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	case "INFO":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity: %q", s)
	}
}

// MarshalText renders the severity by name so JSON and YAML documents stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Status is the outcome recorded on an AnalysisResult.
type Status string

// StatusSuccess is the only status a completed analysis carries. Failures
// surface as errors before a result exists.
const StatusSuccess Status = "success"

// Finding is a single analysis result produced by a check.
type Finding struct {
	Check    string   `json:"check" yaml:"check"`
	Path     string   `json:"path" yaml:"path"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// AnalysisResult holds the complete result of analyzing one target.
// Field order is the serialized key order.
type AnalysisResult struct {
	Status   Status    `json:"status" yaml:"status"`
	Target   string    `json:"target" yaml:"target"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// NewAnalysisResult returns a successful result for target with an empty,
// non-nil findings list.
func NewAnalysisResult(target string) *AnalysisResult {
	return &AnalysisResult{
		Status:   StatusSuccess,
		Target:   target,
		Findings: []Finding{},
	}
}
