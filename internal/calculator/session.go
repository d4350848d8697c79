// Package calculator holds the interactive state of one EMI calculator: the
// three inputs and the outputs derived from them. Every mutation recomputes the
// outputs synchronously, so a read always reflects the latest valid inputs.
//
// A Session is owned by a single caller and is not safe for concurrent use.
package calculator

import (
	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/input"
	"go.uber.org/zap"
)

// Session is the state behind one calculator view.
type Session struct {
	logger *zap.Logger
	parser input.Parser

	inputs emi.Inputs
	result emi.Result
	// hasResult is false until some set of inputs has computed successfully.
	hasResult bool
	err       error
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Inputs emi.Inputs  `json:"inputs"`
	Result *emi.Result `json:"result,omitempty"`
	Valid  bool        `json:"valid"`
	Error  string      `json:"error,omitempty"`
	Field  string      `json:"field,omitempty"`
}

// New creates a session seeded with the given inputs and computes once.
func New(logger *zap.Logger, initial emi.Inputs, policy input.Policy) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		logger: logger,
		parser: input.NewParser(policy),
		inputs: initial,
	}
	_ = s.recompute()
	return s
}

// Inputs returns the current inputs, including ones that failed validation.
func (s *Session) Inputs() emi.Inputs {
	return s.inputs
}

// Result returns the last successfully computed result and whether one exists.
// After an invalid entry this is still the result of the last valid inputs.
func (s *Session) Result() (emi.Result, bool) {
	return s.result, s.hasResult
}

// Valid reports whether the current inputs produced the current result.
func (s *Session) Valid() bool {
	return s.err == nil
}

// Err returns the validation error for the current inputs, if any.
func (s *Session) Err() error {
	return s.err
}

// SetPrincipal updates the loan amount.
func (s *Session) SetPrincipal(v float64) error {
	s.inputs.Principal = v
	return s.recompute()
}

// SetRate updates the annual interest rate in percent.
func (s *Session) SetRate(v float64) error {
	s.inputs.AnnualRatePercent = v
	return s.recompute()
}

// SetTerm updates the loan term in months.
func (s *Session) SetTerm(months int) error {
	s.inputs.TermMonths = months
	return s.recompute()
}

// SetInputs replaces all three inputs at once.
func (s *Session) SetInputs(in emi.Inputs) error {
	s.inputs = in
	return s.recompute()
}

// SetPrincipalText parses and applies a direct-entry loan amount.
func (s *Session) SetPrincipalText(text string) error {
	v, err := s.parser.ParsePrincipal(text)
	if err != nil {
		return s.reject(err)
	}
	return s.SetPrincipal(v)
}

// SetRateText parses and applies a direct-entry interest rate.
func (s *Session) SetRateText(text string) error {
	v, err := s.parser.ParseRate(text)
	if err != nil {
		return s.reject(err)
	}
	return s.SetRate(v)
}

// SetTermText parses and applies a direct-entry loan term.
func (s *Session) SetTermText(text string) error {
	v, err := s.parser.ParseTerm(text)
	if err != nil {
		return s.reject(err)
	}
	return s.SetTerm(v)
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Inputs: s.inputs, Valid: s.err == nil}
	if s.hasResult {
		result := s.result
		snap.Result = &result
	}
	if s.err != nil {
		snap.Error = s.err.Error()
		snap.Field, _ = emi.FieldOf(s.err)
	}
	return snap
}

func (s *Session) recompute() error {
	result, err := emi.Calculate(s.inputs)
	if err != nil {
		return s.reject(err)
	}

	s.result = result
	s.hasResult = true
	s.err = nil
	s.logger.Debug("recomputed installment",
		zap.String("op", "calculator.recompute"),
		zap.Float64("principal", s.inputs.Principal),
		zap.Float64("annualRatePercent", s.inputs.AnnualRatePercent),
		zap.Int("termMonths", s.inputs.TermMonths),
		zap.Float64("monthlyInstallment", result.MonthlyInstallment),
	)
	return nil
}

// reject records err and leaves the last valid result in place.
func (s *Session) reject(err error) error {
	s.err = err
	s.logger.Debug("keeping last valid result",
		zap.String("op", "calculator.reject"),
		zap.Error(err),
	)
	return err
}
