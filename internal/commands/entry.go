package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shiftlog-dev/shiftlog/internal/entries"
	"github.com/shiftlog-dev/shiftlog/internal/model"
	"github.com/shiftlog-dev/shiftlog/internal/tracker"
)

func bindFormFlags(cmd *cobra.Command, form *tracker.Form) {
	cmd.Flags().StringVar(&form.Date, "date", "", "work date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Branch, "branch", "", "branch or site name")
	cmd.Flags().StringVar(&form.TimeIn, "in", "", "clock-in time (HH:MM)")
	cmd.Flags().StringVar(&form.TimeOut, "out", "", "clock-out time (HH:MM)")
}

func newAddCommand(dataDir func() string) *cobra.Command {
	var form tracker.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				e, err := s.tracker.Submit(cmd.Context(), tracker.Creating(), form)
				if err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), "Added", e)
				return nil
			})
		},
	}

	bindFormFlags(cmd, &form)
	for _, name := range []string{"date", "branch", "in", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newEditCommand(dataDir func() string) *cobra.Command {
	var form tracker.Form

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a work session, keeping its position",
		Long:  "Replace a work session. Flags that are not given keep the entry's current values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				current, ok := s.tracker.Get(id)
				if !ok {
					return fmt.Errorf("%w: %s", entries.ErrNotFound, id)
				}
				merged := mergeForm(current, form, cmd)

				e, err := s.tracker.Submit(cmd.Context(), tracker.Editing(id), merged)
				if err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), "Updated", e)
				return nil
			})
		},
	}

	bindFormFlags(cmd, &form)

	return cmd
}

// mergeForm prefills a form from an existing entry and overlays changed flags.
func mergeForm(current model.Entry, form tracker.Form, cmd *cobra.Command) tracker.Form {
	merged := tracker.Form{
		Date:    current.RawDate,
		Branch:  current.Branch,
		TimeIn:  current.TimeIn,
		TimeOut: current.TimeOut,
	}
	flags := cmd.Flags()
	if flags.Changed("date") {
		merged.Date = form.Date
	}
	if flags.Changed("branch") {
		merged.Branch = form.Branch
	}
	if flags.Changed("in") {
		merged.TimeIn = form.TimeIn
	}
	if flags.Changed("out") {
		merged.TimeOut = form.TimeOut
	}
	return merged
}

func printSaved(w io.Writer, verb string, e model.Entry) {
	fmt.Fprintf(w, "%s %s: %s (%s) %s %s-%s, %s, Gross: $%s | Net: $%s | CPF: $%s\n",
		verb, e.ID, e.DisplayDate, e.Weekday, e.Branch, e.TimeIn, e.TimeOut,
		e.Hours, e.Gross, e.Net, e.EmployerContribution)
}
