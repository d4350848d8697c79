// Package format renders monetary amounts and percentages for display.
package format

import (
	"fmt"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Currency formats amounts in one currency for one locale.
type Currency struct {
	code     string
	symbol   string
	locale   language.Tag
	decimals int32
	// indian selects 3-2-2 digit grouping (1,00,000) instead of 3-3 (100,000).
	indian bool
}

// NewCurrency builds a formatter for a BCP 47 locale and an ISO 4217 code.
func NewCurrency(locale, code string, decimals int) (*Currency, error) {
	if locale == "" {
		locale = constants.DefaultLocale
	}
	if code == "" {
		code = constants.DefaultCurrency
	}
	if decimals < 0 {
		return nil, fmt.Errorf("decimal places must not be negative, got %d", decimals)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	iso := unit.String()
	symbol, ok := symbols[iso]
	if !ok {
		symbol = iso + " "
	}

	region, _ := tag.Region()
	return &Currency{
		code:     iso,
		symbol:   symbol,
		locale:   tag,
		decimals: int32(decimals),
		indian:   region.String() == "IN",
	}, nil
}

// DefaultCurrency returns the en-IN rupee formatter with zero decimal places.
func DefaultCurrency() *Currency {
	c, err := NewCurrency(constants.DefaultLocale, constants.DefaultCurrency, 0)
	if err != nil {
		panic(fmt.Sprintf("default currency formatter: %v", err))
	}
	return c
}

// Code returns the ISO 4217 code.
func (c *Currency) Code() string {
	return c.code
}

// Symbol returns the display symbol.
func (c *Currency) Symbol() string {
	return c.symbol
}

// Locale returns the locale tag used for grouping.
func (c *Currency) Locale() language.Tag {
	return c.locale
}

// Format returns the amount with symbol and grouping, e.g. "₹1,00,000" or "-₹4,386".
func (c *Currency) Format(amount float64) string {
	number, negative := c.number(amount)
	if negative {
		return "-" + c.symbol + number
	}
	return c.symbol + number
}

// FormatNumber returns the grouped amount without a symbol, e.g. "1,00,000".
func (c *Currency) FormatNumber(amount float64) string {
	number, negative := c.number(amount)
	if negative {
		return "-" + number
	}
	return number
}

func (c *Currency) number(amount float64) (string, bool) {
	rounded := decimal.NewFromFloat(amount).Round(c.decimals)
	negative := rounded.Sign() < 0

	formatted := rounded.Abs().StringFixed(c.decimals)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := group(parts[0], c.indian)
	if len(parts) == 2 {
		return intPart + "." + parts[1], negative
	}
	return intPart, negative
}

// group inserts separators into a string of digits. Indian grouping keeps the
// last three digits together and groups the rest in pairs.
func group(digits string, indian bool) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	size := 3
	if indian {
		size = 2
	}

	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%size == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}

// Percent renders a percentage rounded to the given decimal places, e.g. "92%".
func Percent(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return decimal.NewFromFloat(value).StringFixed(int32(decimals)) + "%"
}
