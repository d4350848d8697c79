// Package emi computes the Equated Monthly Installment of a fixed-rate loan
// along with the derived total payment and total interest.
package emi

import (
	"math"
	"strconv"

	"github.com/iwvelando/emi-calculator/pkg/constants"
)

// Inputs holds the three user-controlled quantities.
type Inputs struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermMonths        int     `json:"termMonths" yaml:"termMonths"`
}

// DefaultInputs returns the inputs a new calculator starts with.
func DefaultInputs() Inputs {
	return Inputs{
		Principal:         constants.DefaultPrincipal,
		AnnualRatePercent: constants.DefaultAnnualRatePercent,
		TermMonths:        constants.DefaultTermMonths,
	}
}

// Result holds the derived outputs for one set of inputs.
type Result struct {
	Inputs             Inputs  `json:"inputs"`
	MonthlyRate        float64 `json:"monthlyRate"`
	MonthlyInstallment float64 `json:"monthlyInstallment"`
	TotalInterest      float64 `json:"totalInterest"`
	TotalPayment       float64 `json:"totalPayment"`
}

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
}

// Validate rejects inputs for which the installment is undefined or meaningless.
func Validate(in Inputs) error {
	switch {
	case math.IsNaN(in.Principal) || math.IsInf(in.Principal, 0):
		return NewInputValidationError(constants.FieldPrincipal, formatFloat(in.Principal), "must be a finite number")
	case in.Principal < 0:
		return NewInputValidationError(constants.FieldPrincipal, formatFloat(in.Principal), "must not be negative")
	case math.IsNaN(in.AnnualRatePercent) || math.IsInf(in.AnnualRatePercent, 0):
		return NewInputValidationError(constants.FieldRate, formatFloat(in.AnnualRatePercent), "must be a finite number")
	case in.AnnualRatePercent < 0:
		return NewInputValidationError(constants.FieldRate, formatFloat(in.AnnualRatePercent), "must not be negative")
	case in.TermMonths <= 0:
		return NewInputValidationError(constants.FieldTerm, strconv.Itoa(in.TermMonths), "must be at least one month")
	}
	return nil
}

// MonthlyInstallment calculates the installment using the standard
// amortization formula P*r*(1+r)^n / ((1+r)^n - 1).
func MonthlyInstallment(principal, annualRatePercent float64, termMonths int) (float64, error) {
	in := Inputs{Principal: principal, AnnualRatePercent: annualRatePercent, TermMonths: termMonths}
	if err := Validate(in); err != nil {
		return 0, err
	}
	return checkedInstallment(in)
}

// Calculate validates the inputs and returns the installment with its totals.
// totalInterest is always derived as totalPayment - principal.
func Calculate(in Inputs) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	monthly, err := checkedInstallment(in)
	if err != nil {
		return Result{}, err
	}
	totalPayment := monthly * float64(in.TermMonths)
	if math.IsInf(totalPayment, 0) {
		return Result{}, NewInputValidationError(constants.FieldPrincipal, formatFloat(in.Principal), "total payment overflows")
	}
	return Result{
		Inputs:             in,
		MonthlyRate:        MonthlyRate(in.AnnualRatePercent),
		MonthlyInstallment: monthly,
		TotalInterest:      totalPayment - in.Principal,
		TotalPayment:       totalPayment,
	}, nil
}

func checkedInstallment(in Inputs) (float64, error) {
	monthly := installment(in)
	if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return 0, NewInputValidationError(constants.FieldRate, formatFloat(in.AnnualRatePercent), "produces an unbounded installment")
	}
	return monthly, nil
}

func installment(in Inputs) float64 {
	r := MonthlyRate(in.AnnualRatePercent)
	n := float64(in.TermMonths)
	if r == 0 {
		// Zero interest is a straight division of the principal over the term.
		return in.Principal / n
	}

	power := math.Pow(1+r, n)
	if power == 1 {
		// r is below float64 resolution around 1; the loan is effectively interest free.
		return in.Principal / n
	}
	return in.Principal * r * power / (power - 1)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
