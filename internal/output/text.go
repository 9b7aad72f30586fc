package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

const reportWidth = 50

// TextFormatter writes the fixed-width human report.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, result *types.AnalysisResult) error {
	sep := strings.Repeat("=", reportWidth)
	_, err := fmt.Fprintf(w, "\n%s\nDEPENDENCY ANALYSIS REPORT\n%s\nTarget: %s\nStatus: %s\nFindings: %d\n%s\n",
		sep, sep, result.Target, result.Status, len(result.Findings), sep)
	return err
}
