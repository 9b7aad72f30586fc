package commands

import "github.com/spf13/cobra"

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// setVersion enables the --version flag. A version subcommand would shadow a
// target path of the same name.
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("depanalyzer {{.Version}} (commit: " + Commit + ")\n")
}
