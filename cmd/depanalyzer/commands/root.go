package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depanalyzer/depanalyzer/internal/output"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError marks a malformed invocation: missing or extra arguments,
// unknown flags or conflicting flag values.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Options is the resolved, immutable configuration for one run.
type Options struct {
	Target  string
	Verbose bool
	Format  string
	Output  string
}

// rootFlags holds raw flag values before resolution.
type rootFlags struct {
	verbose bool
	json    bool
	format  string
	output  string
}

// NewRootCommand creates the depanalyzer command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "depanalyzer <target>",
		Short: "Analyze the dependencies of a project path",
		Long: `Dependency Analyzer validates a target path and reports its dependency findings
as a text report, or as a JSON, YAML or Markdown document for machine consumption.

In JSON mode (and the other machine-readable formats) standard output carries only
the document; progress and diagnostics go to standard error.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable progress logging")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output JSON (shorthand for --format json)")
	cmd.Flags().StringVar(&flags.format, "format", output.FormatText, "Output format ("+strings.Join(output.Formats, ", ")+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the machine-readable document to this file instead of stdout")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	setVersion(cmd)
	return cmd
}

func (f *rootFlags) resolve(cmd *cobra.Command, args []string) (Options, error) {
	format := f.format
	if f.json {
		if cmd.Flags().Changed("format") && !strings.EqualFold(format, output.FormatJSON) {
			return Options{}, &UsageError{Err: fmt.Errorf("--json conflicts with --format %s", format)}
		}
		format = output.FormatJSON
	}
	if _, err := output.New(format); err != nil {
		return Options{}, &UsageError{Err: fmt.Errorf("invalid --format: %w", err)}
	}
	return Options{
		Target:  args[0],
		Verbose: f.verbose,
		Format:  format,
		Output:  f.output,
	}, nil
}

// Execute runs the root command against os.Args and returns the process exit code.
func Execute() int {
	ctx, cancel := contextWithInterrupt()
	defer cancel()
	return execute(ctx, NewRootCommand())
}

func execute(ctx context.Context, root *cobra.Command) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}

	errOut := root.ErrOrStderr()
	fmt.Fprintf(errOut, "Error: %v\n", err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprint(errOut, cmd.UsageString())
		return ExitUsage
	}
	return ExitFailure
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
