package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftlog-dev/shiftlog/internal/report"
)

func newListCommand(dataDir func() string) *cobra.Command {
	var month string
	var calendarOrder bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show work sessions grouped by month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				var (
					r   report.Report
					err error
				)
				if calendarOrder {
					r, err = report.Build(s.tracker.Entries(), month, report.OrderCalendar)
				} else {
					r, err = s.tracker.View(month)
				}
				if err != nil {
					return err
				}
				return report.Render(cmd.OutOrStdout(), r)
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", report.AllMonths, `month to show, e.g. "October 2023", or "all"`)
	cmd.Flags().BoolVar(&calendarOrder, "calendar", false, "order month groups by calendar date")

	return cmd
}

func newMonthsCommand(dataDir func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that have work sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				for _, m := range s.tracker.Months() {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
				return nil
			})
		},
	}
}

func newTotalsCommand(dataDir func() string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Print total hours and pay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), dataDir(), cmd.ErrOrStderr(), func(s *session) error {
				r, err := s.tracker.View(month)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d entries)\n", report.TotalsLine(r.Totals), r.Totals.Count)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", report.AllMonths, `month to total, e.g. "October 2023", or "all"`)

	return cmd
}
