package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shiftlog-dev/shiftlog/internal/calendar"
	"github.com/shiftlog-dev/shiftlog/internal/model"
)

// EmptyMessage is printed when the filtered set has no entries.
const EmptyMessage = "No entries for this month."

type styles struct {
	header lipgloss.Style
	date   lipgloss.Style
	id     lipgloss.Style
	totals lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		date:   r.NewStyle().Bold(true),
		id:     r.NewStyle().Faint(true),
		totals: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// Render writes the grouped view followed by the overall totals line.
// Colors are only emitted when w is a terminal.
func Render(w io.Writer, r Report) error {
	st := newStyles(w)
	var b strings.Builder

	if len(r.Groups) == 0 {
		b.WriteString(EmptyMessage + "\n")
	}
	for _, g := range r.Groups {
		b.WriteString(st.header.Render(fmt.Sprintf("%s | %s", g.Month, TotalsLine(g.Totals))))
		b.WriteString("\n")
		for _, e := range g.Entries {
			b.WriteString("  ")
			b.WriteString(st.date.Render(e.DisplayDate))
			fmt.Fprintf(&b, " (%s)  %s  %s-%s  %s  Gross: $%s | Net: $%s | CPF: $%s  ",
				e.Weekday, e.Branch, e.TimeIn, e.TimeOut, e.Hours, e.Gross, e.Net, e.EmployerContribution)
			b.WriteString(st.id.Render(e.ID))
			b.WriteString("\n")
		}
	}
	b.WriteString(st.totals.Render("Total | " + TotalsLine(r.Totals)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// TotalsLine formats aggregate figures the way month headers show them.
func TotalsLine(t model.Totals) string {
	return fmt.Sprintf("Hours: %s, Gross: $%s, Net: $%s, CPF: $%s",
		calendar.FormatHoursLabel(t.Hours),
		t.Gross.StringFixed(2),
		t.Net.StringFixed(2),
		t.EmployerContribution.StringFixed(2))
}
