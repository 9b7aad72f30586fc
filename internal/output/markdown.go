package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// MarkdownFormatter outputs the result as GitHub-flavored markdown,
// suitable for CI job summaries.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, result *types.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "### Dependency Analysis: %s\n\n", result.Status)
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Target | %s |\n", codeSpan(escapeCell(result.Target)))
	fmt.Fprintf(&b, "| Status | %s |\n", result.Status)
	fmt.Fprintf(&b, "| Findings | %d |\n\n", len(result.Findings))

	if len(result.Findings) == 0 {
		b.WriteString("No findings.\n")
	} else {
		b.WriteString("#### Findings\n\n")
		b.WriteString("| Severity | Check | Location | Message |\n|---|---|---|---|\n")
		for _, fd := range result.Findings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				fd.Severity, escapeCell(fd.Check), codeSpan(escapeCell(location(fd))), escapeCell(fd.Message))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func location(f types.Finding) string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.Path, f.Line)
	}
	return f.Path
}

// codeSpan wraps s in a backtick fence longer than any backtick run inside it.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

// escapeCell keeps pipes and newlines from breaking the table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
