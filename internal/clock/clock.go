// Package clock does wall-clock arithmetic on "HH:MM" strings.
package clock

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Span is the elapsed time between two wall-clock readings on the same day.
type Span struct {
	Minutes          int // out - in; negative when out is before in
	WholeHours       int // floor(Minutes / 60)
	RemainderMinutes int // always in [0, 60)
	DecimalHours     decimal.Decimal
}

// ParseClockMinutes converts "HH:MM" into minutes since midnight.
// Ranges are not checked: "25:99" yields 1599. Parts that are not numbers count as 0.
func ParseClockMinutes(s string) int {
	h, m, _ := strings.Cut(strings.TrimSpace(s), ":")
	return atoi(h)*60 + atoi(m)
}

// Elapsed returns the span from in to out. No clamping or overnight wraparound.
func Elapsed(in, out string) Span {
	diff := ParseClockMinutes(out) - ParseClockMinutes(in)
	whole := floorDiv(diff, 60)
	return Span{
		Minutes:          diff,
		WholeHours:       whole,
		RemainderMinutes: diff - whole*60,
		DecimalHours:     decimal.NewFromInt(int64(diff)).Div(sixty),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
