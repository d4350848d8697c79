// Package output provides utilities for formatting and displaying EMI results
// in the terminal.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Styles holds the lipgloss styles derived from a palette.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Principal lipgloss.Style
	Interest  lipgloss.Style
	Box       lipgloss.Style
}

// NewStyles maps a presentation palette onto terminal styles.
func NewStyles(p presentation.Palette) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent)),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Width(16),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent)),
		Principal: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Principal)),
		Interest:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Interest)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Accent)).
			Padding(0, 1),
	}
}

// PrettyFormat writes a human-readable summary box.
func PrettyFormat(w io.Writer, summary presentation.Summary) error {
	styles := NewStyles(summary.Palette)
	p := message.NewPrinter(language.English)
	in := summary.Result.Inputs

	row := func(label, value string, style lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(label), style.Render(value))
	}

	var legend []string
	for _, slice := range summary.Chart {
		style := styles.Principal
		if slice.Name == "Interest" {
			style = styles.Interest
		}
		legend = append(legend, style.Render("■ "+slice.Label))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Loan EMI Calculator"),
		"",
		row("Loan Amount", summary.Formatted.Principal, styles.Value),
		row("Interest Rate", p.Sprintf("%.2f%% per year", in.AnnualRatePercent), styles.Value),
		row("Loan Term", p.Sprintf("%d months", in.TermMonths), styles.Value),
		"",
		row("Monthly EMI", summary.Formatted.MonthlyInstallment, styles.Highlight),
		row("Total Interest", summary.Formatted.TotalInterest, styles.Value),
		row("Total Payment", summary.Formatted.TotalPayment, styles.Value),
		"",
		strings.Join(legend, "  "),
	)

	_, err := fmt.Fprintln(w, styles.Box.Render(body))
	return err
}

// CsvFormat writes a header row and one data row.
func CsvFormat(w io.Writer, summary presentation.Summary) error {
	r := summary.Result
	writer := csv.NewWriter(w)
	records := [][]string{
		{
			constants.FieldPrincipal, constants.FieldRate, constants.FieldTerm,
			"monthlyInstallment", "totalInterest", "totalPayment", "currency",
		},
		{
			fixed(r.Inputs.Principal),
			fixed(r.Inputs.AnnualRatePercent),
			fmt.Sprintf("%d", r.Inputs.TermMonths),
			fixed(r.MonthlyInstallment),
			fixed(r.TotalInterest),
			fixed(r.TotalPayment),
			summary.Currency,
		},
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// fixed renders two decimal places without a negative-zero artifact.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// CsvString returns the CSV rendering as a string.
func CsvString(summary presentation.Summary) string {
	var b strings.Builder
	_ = CsvFormat(&b, summary)
	return b.String()
}

// JSONFormat writes the summary as indented JSON.
func JSONFormat(w io.Writer, summary presentation.Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

// Write dispatches on an output format name.
func Write(w io.Writer, outputFormat string, summary presentation.Summary) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, summary)
	case constants.OutputFormatCSV:
		return CsvFormat(w, summary)
	case constants.OutputFormatJSON:
		return JSONFormat(w, summary)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}
