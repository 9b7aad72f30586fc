package output

import (
	"encoding/json"
	"io"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// JSONFormatter writes the analysis result as one JSON object indented by two
// spaces, keys in status, target, findings order.
type JSONFormatter struct{}

// Format encodes result to w. Results holding invalid UTF-8 are rejected, as
// encoding/json would silently substitute U+FFFD.
func (f *JSONFormatter) Format(w io.Writer, result *types.AnalysisResult) error {
	if err := checkUTF8(result); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
