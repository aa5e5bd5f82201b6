package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Entry is one recorded work session with its derived pay figures.
//
// JSON field names follow the persisted blob layout so older blobs load as-is.
type Entry struct {
	ID                   string          `json:"id"`
	RawDate              string          `json:"rawDate"`     // "2025-11-08", as entered
	DisplayDate          string          `json:"displayDate"` // "08 Nov 2025"
	Weekday              string          `json:"day"`
	Month                string          `json:"month"` // grouping key, "November 2025"
	Branch               string          `json:"branch"`
	TimeIn               string          `json:"timeIn"`
	TimeOut              string          `json:"timeOut"`
	Hours                string          `json:"hours"` // "8hrs 30mins"
	DecimalHours         decimal.Decimal `json:"decimalHours"`
	Gross                Amount          `json:"gross"`
	Net                  Amount          `json:"net"`
	EmployerContribution Amount          `json:"cpf"`
}

// Amount is a money figure stored as fixed 2-decimal text ("93.50").
type Amount string

// NewAmount rounds d to 2 places (half away from zero) and stores it as text.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.StringFixed(2))
}

// Decimal parses the stored text back into a number.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", string(a), err)
	}
	return d, nil
}

// String returns the stored text.
func (a Amount) String() string { return string(a) }
