package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(dataDir func() string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				confirm := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
				deleted, err := s.tracker.Delete(cmd.Context(), id, confirm)
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newClearCommand(dataDir func() string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				n := len(s.tracker.Entries())
				confirm := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
				cleared, err := s.tracker.Clear(cmd.Context(), confirm)
				if err != nil {
					return err
				}
				if !cleared {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries\n", n)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
