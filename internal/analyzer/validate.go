package analyzer

import (
	"context"
	"fmt"
	"os"

	"github.com/depanalyzer/depanalyzer/internal/ctxlog"
)

// TargetNotFoundError reports a target path that does not exist or cannot be
// stat'ed.
type TargetNotFoundError struct {
	Path string
	Err  error
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target path does not exist: %s", e.Path)
}

func (e *TargetNotFoundError) Unwrap() error { return e.Err }

// Validate checks that path exists on the filesystem. Files and directories
// are both accepted.
func Validate(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &TargetNotFoundError{Path: path, Err: err}
	}
	ctxlog.FromContext(ctx).Debug("target exists", "path", path, "dir", info.IsDir())
	return nil
}
