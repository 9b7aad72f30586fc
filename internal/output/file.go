package output

import (
	"bytes"
	"fmt"
	"os"

	"github.com/depanalyzer/depanalyzer/internal/types"
)

// FileError reports a failure writing the output file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("writing output file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// WriteFile renders result with f into the file at path, creating or
// truncating it. The parent directory must already exist. Nothing is written
// when rendering fails.
func WriteFile(path string, f Formatter, result *types.AnalysisResult) error {
	var buf bytes.Buffer
	if err := f.Format(&buf, result); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}
