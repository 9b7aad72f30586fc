package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/depanalyzer/depanalyzer/internal/analyzer"
	"github.com/depanalyzer/depanalyzer/internal/ctxlog"
	"github.com/depanalyzer/depanalyzer/internal/output"
)

func runAnalyze(cmd *cobra.Command, opts Options) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	machine := output.IsMachine(opts.Format)

	// Everything that is not the document goes to msgs. In machine mode
	// stdout is reserved for the document.
	msgs := stdout
	if machine {
		msgs = stderr
	}

	ctx := ctxlog.WithLogger(cmd.Context(), newLogger(msgs, opts.Verbose))

	formatter, err := output.New(opts.Format)
	if err != nil {
		return err
	}

	fmt.Fprintf(msgs, "Analyzing %s...\n", opts.Target)

	result, err := analyzer.New().Analyze(ctx, opts.Target)
	if err != nil {
		return err
	}

	switch {
	case machine && opts.Output != "":
		if err := output.WriteFile(opts.Output, formatter, result); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Results written to %s\n", opts.Output)
	case opts.Output != "":
		fmt.Fprintf(stderr, "warning: --output applies to machine-readable formats only; ignoring %s\n", opts.Output)
		fallthrough
	default:
		if err := formatter.Format(stdout, result); err != nil {
			return fmt.Errorf("writing %s output: %w", opts.Format, err)
		}
	}

	fmt.Fprintln(msgs, "Analysis complete.")
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
