package presentation

import (
	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/format"
)

// Formatted holds the display strings for a result.
type Formatted struct {
	Principal          string `json:"principal"`
	MonthlyInstallment string `json:"monthlyInstallment"`
	TotalInterest      string `json:"totalInterest"`
	TotalPayment       string `json:"totalPayment"`
}

// Summary is everything a view needs to render one result.
type Summary struct {
	Result    emi.Result `json:"result"`
	Formatted Formatted  `json:"formatted"`
	Chart     []Slice    `json:"chart"`
	Palette   Palette    `json:"palette"`
	Currency  string     `json:"currency"`
}

// Summarize formats a result and builds its chart for the given mode.
func Summarize(result emi.Result, currency *format.Currency, mode Mode) Summary {
	if currency == nil {
		currency = format.DefaultCurrency()
	}
	return Summary{
		Result: result,
		Formatted: Formatted{
			Principal:          currency.Format(result.Inputs.Principal),
			MonthlyInstallment: currency.Format(result.MonthlyInstallment),
			TotalInterest:      currency.Format(result.TotalInterest),
			TotalPayment:       currency.Format(result.TotalPayment),
		},
		Chart:    Breakdown(result, mode),
		Palette:  PaletteFor(mode),
		Currency: currency.Code(),
	}
}
