// Package pay turns worked hours into gross, net and employer CPF figures.
package pay

import (
	"github.com/shopspring/decimal"

	"github.com/shiftlog-dev/shiftlog/internal/model"
)

// Fixed-rate model. These are build-time constants and are not read from config.
const (
	hourlyRate   = "11"
	cpfDeduction = "0.20" // employee share, deducted from gross
	cpfEmployer  = "0.37" // employer share, computed on top of gross
)

var (
	HourlyRate   = decimal.RequireFromString(hourlyRate)
	CPFDeduction = decimal.RequireFromString(cpfDeduction)
	CPFEmployer  = decimal.RequireFromString(cpfEmployer)

	netShare = decimal.NewFromInt(1).Sub(CPFDeduction)
)

// Figures holds unrounded pay amounts.
type Figures struct {
	Gross                decimal.Decimal
	Net                  decimal.Decimal
	EmployerContribution decimal.Decimal
}

// Compute derives pay figures from decimal hours. Negative hours give negative pay.
func Compute(decimalHours decimal.Decimal) Figures {
	gross := decimalHours.Mul(HourlyRate)
	return Figures{
		Gross:                gross,
		Net:                  gross.Mul(netShare),
		EmployerContribution: gross.Mul(CPFEmployer),
	}
}

// Rounded returns the figures as stored 2-decimal amounts.
func (f Figures) Rounded() (gross, net, employer model.Amount) {
	return model.NewAmount(f.Gross), model.NewAmount(f.Net), model.NewAmount(f.EmployerContribution)
}
