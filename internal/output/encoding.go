package output

import (
	"fmt"
	"unicode/utf8"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// checkUTF8 rejects results whose text fields cannot round-trip through a
// JSON or YAML document. Paths on Linux are arbitrary bytes.
func checkUTF8(result *types.AnalysisResult) error {
	if !utf8.ValidString(result.Target) {
		return fmt.Errorf("target %q is not valid UTF-8 and cannot be encoded losslessly", result.Target)
	}
	for _, f := range result.Findings {
		for _, s := range []string{f.Check, f.Path, f.Message} {
			if !utf8.ValidString(s) {
				return fmt.Errorf("finding from %q holds invalid UTF-8 text %q", f.Check, s)
			}
		}
	}
	return nil
}
