// Package report filters, groups and totals timesheet entries by month.
package report

import (
	"fmt"
	"sort"

	"github.com/shiftlog-dev/shiftlog/internal/calendar"
	"github.com/shiftlog-dev/shiftlog/internal/model"
)

// AllMonths is the filter value meaning "no month filter".
const AllMonths = "all"

// Order controls how month groups are sequenced.
type Order string

const (
	// OrderFirstSeen lists months in the order their first entry appears.
	OrderFirstSeen Order = "first-seen"
	// OrderCalendar lists months chronologically; unparseable keys go last.
	OrderCalendar Order = "calendar"
)

// IsValid reports whether o is a known order.
func (o Order) IsValid() bool {
	return o == OrderFirstSeen || o == OrderCalendar
}

// Group is one month of entries with its totals.
type Group struct {
	Month   string
	Entries []model.Entry
	Totals  model.Totals
}

// Report is the aggregated view of a filtered entry set.
type Report struct {
	Filter string
	Groups []Group
	Totals model.Totals
	Months []string // every month key in the unfiltered set, for the filter control
}

// Filter keeps entries in the given month. "" and AllMonths keep everything.
func Filter(entries []model.Entry, month string) []model.Entry {
	if month == "" || month == AllMonths {
		return entries
	}
	var out []model.Entry
	for _, e := range entries {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out
}

// GroupByMonth buckets entries by month key in a single pass. Groups come
// out in first-seen order and entries keep their relative order.
func GroupByMonth(entries []model.Entry) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Month]
		if !ok {
			i = len(groups)
			index[e.Month] = i
			groups = append(groups, Group{Month: e.Month})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Sum adds up hours and the stored money figures. Amounts are parsed back
// from their 2-decimal text, so totals match what each entry displayed.
func Sum(entries []model.Entry) (model.Totals, error) {
	var t model.Totals
	for _, e := range entries {
		gross, err := e.Gross.Decimal()
		if err != nil {
			return model.Totals{}, fmt.Errorf("entry %s gross: %w", e.ID, err)
		}
		net, err := e.Net.Decimal()
		if err != nil {
			return model.Totals{}, fmt.Errorf("entry %s net: %w", e.ID, err)
		}
		employer, err := e.EmployerContribution.Decimal()
		if err != nil {
			return model.Totals{}, fmt.Errorf("entry %s cpf: %w", e.ID, err)
		}
		t = t.Add(e.DecimalHours, gross, net, employer)
	}
	return t, nil
}

// MonthKeys returns the distinct month keys in first-seen order.
func MonthKeys(entries []model.Entry) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Month] {
			seen[e.Month] = true
			keys = append(keys, e.Month)
		}
	}
	return keys
}

// SortCalendar orders groups chronologically by month key. It is stable, so
// keys that do not parse keep their relative order at the end.
func SortCalendar(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		ti, iok := calendar.ParseMonthKey(groups[i].Month)
		tj, jok := calendar.ParseMonthKey(groups[j].Month)
		switch {
		case iok && jok:
			return ti.Before(tj)
		case iok:
			return true
		default:
			return false
		}
	})
}

// Build filters, groups and totals entries.
func Build(entries []model.Entry, filter string, order Order) (Report, error) {
	if filter == "" {
		filter = AllMonths
	}
	r := Report{
		Filter: filter,
		Months: MonthKeys(entries),
	}

	working := Filter(entries, filter)
	r.Groups = GroupByMonth(working)
	if order == OrderCalendar {
		SortCalendar(r.Groups)
	}

	for i := range r.Groups {
		t, err := Sum(r.Groups[i].Entries)
		if err != nil {
			return Report{}, fmt.Errorf("totalling %s: %w", r.Groups[i].Month, err)
		}
		r.Groups[i].Totals = t
	}

	t, err := Sum(working)
	if err != nil {
		return Report{}, fmt.Errorf("totalling report: %w", err)
	}
	r.Totals = t
	return r, nil
}
