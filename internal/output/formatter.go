// Package output renders analysis results as a text report, JSON, YAML or
// Markdown, and writes machine-readable documents to files.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// Format names accepted by New.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the supported format names in help order.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// Formatter is the interface for outputting analysis results.
type Formatter interface {
	Format(w io.Writer, result *types.AnalysisResult) error
}

// New returns the formatter registered under name. Matching is
// case-insensitive; "md" and "yml" are accepted aliases.
func New(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML, "yml":
		return &YAMLFormatter{}, nil
	case FormatMarkdown, "md":
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Formats, ", "))
	}
}

// IsMachine reports whether name selects a machine-readable format, in which
// standard output must carry nothing but the document.
func IsMachine(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText, "":
		return false
	default:
		return true
	}
}
