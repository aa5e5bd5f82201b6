package tracker

import (
	"github.com/shiftlog-dev/shiftlog/internal/calendar"
	"github.com/shiftlog-dev/shiftlog/internal/clock"
	"github.com/shiftlog-dev/shiftlog/internal/model"
	"github.com/shiftlog-dev/shiftlog/internal/pay"
)

// Form is the raw input for one work session.
type Form struct {
	Date    string // YYYY-MM-DD
	Branch  string
	TimeIn  string // HH:MM
	TimeOut string // HH:MM
}

// BuildEntry derives a complete entry (without ID) from raw form fields.
func BuildEntry(f Form) model.Entry {
	span := clock.Elapsed(f.TimeIn, f.TimeOut)
	figures := pay.Compute(span.DecimalHours)
	gross, net, employer := figures.Rounded()
	display := calendar.FormatDisplayDate(f.Date)

	return model.Entry{
		RawDate:              f.Date,
		DisplayDate:          display.Text,
		Weekday:              display.Weekday,
		Month:                calendar.MonthKey(f.Date),
		Branch:               f.Branch,
		TimeIn:               f.TimeIn,
		TimeOut:              f.TimeOut,
		Hours:                calendar.FormatHoursLabel(span.DecimalHours),
		DecimalHours:         span.DecimalHours,
		Gross:                gross,
		Net:                  net,
		EmployerContribution: employer,
	}
}
