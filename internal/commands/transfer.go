package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiftlog-dev/shiftlog/internal/report"
	"github.com/shiftlog-dev/shiftlog/internal/sheet"
)

func newExportCommand(dataDir func() string) *cobra.Command {
	var outPath string
	var month string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write work sessions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				list := report.Filter(s.tracker.Entries(), month)

				if outPath == "" {
					return sheet.WriteEntries(cmd.OutOrStdout(), list)
				}

				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				if err := sheet.WriteEntries(f, list); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("closing %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", len(list), outPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&month, "month", report.AllMonths, `month to export, e.g. "October 2023", or "all"`)

	return cmd
}

func newImportCommand(dataDir func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append work sessions from a CSV file",
		Long:  "Append work sessions from a CSV file in the export format. Hours and pay are recomputed; ids are always new.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			forms, err := sheet.ReadForms(f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}

			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				added, err := s.tracker.Import(cmd.Context(), forms, filepath.Base(path))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", len(added), path)
				return nil
			})
		},
	}
}
