// Package input parses the calculator's direct-entry fields and describes the
// slider controls paired with them.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/emi"
)

// Policy decides what happens to text that does not parse as a number.
type Policy string

const (
	// Reject returns an InputValidationError.
	Reject Policy = constants.InputPolicyReject
	// Zero substitutes 0 for unparsable text.
	Zero Policy = constants.InputPolicyZero
)

// ParsePolicy validates a policy name; an empty name selects Reject.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", constants.InputPolicyReject:
		return Reject, nil
	case constants.InputPolicyZero:
		return Zero, nil
	default:
		return "", fmt.Errorf("expected input policy of %s or %s, got %s",
			constants.InputPolicyReject, constants.InputPolicyZero, name)
	}
}

// Parser converts field text to numbers under a Policy.
type Parser struct {
	Policy Policy
}

// NewParser returns a Parser using the given policy.
func NewParser(policy Policy) Parser {
	if policy == "" {
		policy = Reject
	}
	return Parser{Policy: policy}
}

// ParsePrincipal parses a loan amount, ignoring grouping commas ("1,00,000").
func (p Parser) ParsePrincipal(text string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return p.fallback(constants.FieldPrincipal, text, "is not a number")
	}
	return value, nil
}

// ParseRate parses an annual percentage rate.
func (p Parser) ParseRate(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return p.fallback(constants.FieldRate, text, "is not a number")
	}
	return value, nil
}

// ParseTerm parses a loan term as a whole number of months.
func (p Parser) ParseTerm(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		if _, ferr := p.fallback(constants.FieldTerm, text, "is not a whole number of months"); ferr != nil {
			return 0, ferr
		}
		return 0, nil
	}
	return value, nil
}

// ParseInputs parses all three fields, returning the first failure.
func (p Parser) ParseInputs(principal, rate, term string) (emi.Inputs, error) {
	var in emi.Inputs
	var err error

	if in.Principal, err = p.ParsePrincipal(principal); err != nil {
		return emi.Inputs{}, err
	}
	if in.AnnualRatePercent, err = p.ParseRate(rate); err != nil {
		return emi.Inputs{}, err
	}
	if in.TermMonths, err = p.ParseTerm(term); err != nil {
		return emi.Inputs{}, err
	}
	return in, nil
}

func (p Parser) fallback(field, text, reason string) (float64, error) {
	if p.Policy == Zero {
		return 0, nil
	}
	return 0, emi.NewInputValidationError(field, text, reason)
}
