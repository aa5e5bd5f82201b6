// Package calendar formats work dates and durations for display and grouping.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidDate is shown in place of a date that cannot be parsed.
const InvalidDate = "Invalid Date"

const (
	displayLayout  = "02 Jan 2006"
	monthKeyLayout = "January 2006"
)

// Accepted input layouts, most specific first.
var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006/01/02",
}

var sixty = decimal.NewFromInt(60)

// Display is a formatted work date.
type Display struct {
	Text    string // "08 Nov 2025"
	Weekday string // "Saturday"
}

// Parse reads a work date. The bool is false when no layout matches.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDisplayDate renders raw as "08 Nov 2025" plus its weekday.
// Unparseable input yields InvalidDate and an empty weekday.
func FormatDisplayDate(raw string) Display {
	t, ok := Parse(raw)
	if !ok {
		return Display{Text: InvalidDate}
	}
	return Display{
		Text:    t.Format(displayLayout),
		Weekday: t.Weekday().String(),
	}
}

// MonthKey returns the "November 2025" grouping key for raw.
// The key is compared for equality only; its lexical order is not calendar order.
func MonthKey(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return InvalidDate
	}
	return t.Format(monthKeyLayout)
}

// ParseMonthKey returns the first day of the month named by key.
func ParseMonthKey(key string) (time.Time, bool) {
	t, err := time.Parse(monthKeyLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatHoursLabel renders decimal hours as "Xhrs Ymins" where X is the floor
// of h and Y the rounded leftover minutes. A leftover that rounds to 60
// carries into X.
func FormatHoursLabel(h decimal.Decimal) string {
	whole := h.Floor()
	mins := h.Sub(whole).Mul(sixty).Round(0)
	if mins.Equal(sixty) {
		whole = whole.Add(decimal.NewFromInt(1))
		mins = decimal.Zero
	}
	return fmt.Sprintf("%shrs %smins", whole.String(), mins.String())
}
