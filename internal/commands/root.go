package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shiftlog-dev/shiftlog/internal/buildinfo"
	"github.com/shiftlog-dev/shiftlog/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "shiftlog",
		Short:   "Track shifts, hours and pay",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	defaultDir := os.Getenv(config.EnvDir)
	if defaultDir == "" {
		defaultDir = "."
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDir, "data directory (env "+config.EnvDir+")")

	dir := func() string { return dataDir }

	rootCmd.AddCommand(
		newInitCommand(dir),
		newAddCommand(dir),
		newEditCommand(dir),
		newDeleteCommand(dir),
		newClearCommand(dir),
		newListCommand(dir),
		newMonthsCommand(dir),
		newTotalsCommand(dir),
		newExportCommand(dir),
		newImportCommand(dir),
	)

	return rootCmd
}
