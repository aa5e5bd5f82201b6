package model

import "github.com/shopspring/decimal"

// Totals is the aggregate of a set of entries.
type Totals struct {
	Hours                decimal.Decimal
	Gross                decimal.Decimal
	Net                  decimal.Decimal
	EmployerContribution decimal.Decimal
	Count                int
}

// Add accumulates one entry's figures. Money values are taken as already parsed.
func (t Totals) Add(hours, gross, net, employer decimal.Decimal) Totals {
	return Totals{
		Hours:                t.Hours.Add(hours),
		Gross:                t.Gross.Add(gross),
		Net:                  t.Net.Add(net),
		EmployerContribution: t.EmployerContribution.Add(employer),
		Count:                t.Count + 1,
	}
}
