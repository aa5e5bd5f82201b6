// Package sheet reads and writes timesheet entries as CSV.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shiftlog-dev/shiftlog/internal/model"
	"github.com/shiftlog-dev/shiftlog/internal/tracker"
)

// Header is the CSV header for exported timesheets.
const Header = "id,date,branch,time_in,time_out,hours,decimal_hours,gross,net,cpf"

const (
	numFields    = 10
	colID        = 0
	colDate      = 1
	colBranch    = 2
	colTimeIn    = 3
	colTimeOut   = 4
	colHours     = 5
	colDecimal   = 6
	colGross     = 7
	colNet       = 8
	colCPF       = 9
	minImportCol = colTimeOut + 1
)

// WriteEntries writes entries to w (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colDate] = e.RawDate
	row[colBranch] = e.Branch
	row[colTimeIn] = e.TimeIn
	row[colTimeOut] = e.TimeOut
	row[colHours] = e.Hours
	row[colDecimal] = e.DecimalHours.String()
	row[colGross] = e.Gross.String()
	row[colNet] = e.Net.String()
	row[colCPF] = e.EmployerContribution.String()
	return row
}

// ReadForms reads rows from r as raw form input. Only the date, branch and
// clock columns are used; derived figures are recomputed on import. Rows may
// carry fewer than numFields columns as long as time_out is present.
func ReadForms(r io.Reader) ([]tracker.Form, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading timesheet CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !isHeader(records[0]) {
		return nil, errors.New("missing timesheet CSV header")
	}

	var forms []tracker.Form
	for i, rec := range records[1:] {
		f, err := UnmarshalForm(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		forms = append(forms, f)
	}
	return forms, nil
}

// UnmarshalForm converts a CSV row to a Form.
func UnmarshalForm(record []string) (tracker.Form, error) {
	if len(record) < minImportCol {
		return tracker.Form{}, fmt.Errorf("expected at least %d fields, got %d", minImportCol, len(record))
	}
	f := tracker.Form{
		Date:    strings.TrimSpace(record[colDate]),
		Branch:  record[colBranch],
		TimeIn:  strings.TrimSpace(record[colTimeIn]),
		TimeOut: strings.TrimSpace(record[colTimeOut]),
	}
	if f.TimeIn == "" || f.TimeOut == "" {
		return tracker.Form{}, fmt.Errorf("time_in and time_out are required")
	}
	return f, nil
}

func isHeader(rec []string) bool {
	return len(rec) > colID && strings.EqualFold(strings.TrimSpace(rec[colID]), "id")
}
