package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// YAMLFormatter outputs the result as a YAML document.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, result *types.AnalysisResult) error {
	if err := checkUTF8(result); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
