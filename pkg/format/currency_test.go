package format

import "testing"

func TestDefaultCurrencyFormat(t *testing.T) {
	c := DefaultCurrency()

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Default principal", 100000, "₹1,00,000"},
		{"Default installment", 8698.8429, "₹8,699"},
		{"Default total payment", 104386.1149, "₹1,04,386"},
		{"Default total interest", 4386.1149, "₹4,386"},
		{"Crore", 12345678, "₹1,23,45,678"},
		{"Small amount", 999.4, "₹999"},
		{"Rounds up into new group", 999.5, "₹1,000"},
		{"Zero", 0, "₹0"},
		{"Negative", -4386.5, "-₹4,387"},
		{"Negative rounds to zero", -0.4, "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Format(tt.amount)
			if result != tt.expected {
				t.Errorf("Format(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestWesternGrouping(t *testing.T) {
	c, err := NewCurrency("en-US", "USD", 2)
	if err != nil {
		t.Fatalf("NewCurrency() error = %v", err)
	}

	tests := []struct {
		amount   float64
		expected string
	}{
		{1234567.891, "$1,234,567.89"},
		{100000, "$100,000.00"},
		{12.5, "$12.50"},
		{-1234.567, "-$1,234.57"},
	}

	for _, tt := range tests {
		if result := c.Format(tt.amount); result != tt.expected {
			t.Errorf("Format(%v) = %s, expected %s", tt.amount, result, tt.expected)
		}
	}

	if result := c.FormatNumber(-1234.567); result != "-1,234.57" {
		t.Errorf("FormatNumber() = %s, expected -1,234.57", result)
	}
}

func TestNewCurrencyDefaultsAndErrors(t *testing.T) {
	c, err := NewCurrency("", "", 0)
	if err != nil {
		t.Fatalf("NewCurrency() error = %v", err)
	}
	if c.Code() != "INR" {
		t.Errorf("expected INR default, got %s", c.Code())
	}
	if c.Symbol() != "₹" {
		t.Errorf("expected rupee symbol, got %s", c.Symbol())
	}

	if _, err := NewCurrency("en-IN", "NOTACODE", 0); err == nil {
		t.Error("expected error for invalid currency code")
	}
	if _, err := NewCurrency("not a locale!", "INR", 0); err == nil {
		t.Error("expected error for invalid locale")
	}
	if _, err := NewCurrency("en-IN", "INR", -1); err == nil {
		t.Error("expected error for negative decimals")
	}
}

func TestUnknownSymbolFallsBackToCode(t *testing.T) {
	c, err := NewCurrency("en-CH", "CHF", 0)
	if err != nil {
		t.Fatalf("NewCurrency() error = %v", err)
	}
	if result := c.Format(1500); result != "CHF 1,500" {
		t.Errorf("Format() = %s, expected CHF 1,500", result)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		expected string
	}{
		{95.797, 0, "96%"},
		{4.2, 0, "4%"},
		{50, 0, "50%"},
		{33.3333, 1, "33.3%"},
		{12.5, -1, "13%"},
	}

	for _, tt := range tests {
		if result := Percent(tt.value, tt.decimals); result != tt.expected {
			t.Errorf("Percent(%v, %d) = %s, expected %s", tt.value, tt.decimals, result, tt.expected)
		}
	}
}
