package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
)

func defaultSummary(t *testing.T, mode presentation.Mode) presentation.Summary {
	t.Helper()
	result, err := emi.Calculate(emi.DefaultInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return presentation.Summarize(result, nil, mode)
}

func TestPrettyFormat(t *testing.T) {
	for _, mode := range []presentation.Mode{presentation.Light, presentation.Dark} {
		t.Run(string(mode), func(t *testing.T) {
			var buf bytes.Buffer
			if err := PrettyFormat(&buf, defaultSummary(t, mode)); err != nil {
				t.Fatalf("PrettyFormat() error = %v", err)
			}
			output := buf.String()

			for _, expected := range []string{
				"Loan EMI Calculator",
				"Loan Amount",
				"₹1,00,000",
				"8.00% per year",
				"12 months",
				"Monthly EMI",
				"₹8,699",
				"₹4,386",
				"₹1,04,386",
				"Principal: 96%",
				"Interest: 4%",
			} {
				if !strings.Contains(output, expected) {
					t.Errorf("PrettyFormat missing %q in:\n%s", expected, output)
				}
			}
		})
	}
}

func TestCsvFormat(t *testing.T) {
	output := CsvString(defaultSummary(t, presentation.Light))
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), output)
	}
	if lines[0] != "principal,annualRatePercent,termMonths,monthlyInstallment,totalInterest,totalPayment,currency" {
		t.Errorf("unexpected header %s", lines[0])
	}
	if lines[1] != "100000.00,8.00,12,8698.84,4386.11,104386.11,INR" {
		t.Errorf("unexpected row %s", lines[1])
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, defaultSummary(t, presentation.Dark)); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded presentation.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if decoded.Formatted.MonthlyInstallment != "₹8,699" {
		t.Errorf("unexpected formatted installment %s", decoded.Formatted.MonthlyInstallment)
	}
	if decoded.Palette.Mode != presentation.Dark {
		t.Errorf("expected dark palette, got %s", decoded.Palette.Mode)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "xml", defaultSummary(t, presentation.Light)); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := Write(&buf, "csv", defaultSummary(t, presentation.Light)); err != nil {
		t.Errorf("Write(csv) error = %v", err)
	}
}
