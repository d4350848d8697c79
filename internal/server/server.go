// Package server serves the calculator web UI and its JSON API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/emi-calculator/internal/calculator"
	"github.com/iwvelando/emi-calculator/internal/config"
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/emi"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/input"
	"github.com/iwvelando/emi-calculator/pkg/presentation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures NewHandler.
type Options struct {
	MaxRequestSize int64
	Version        string
	// Calculator supplies defaults, display and input policy; nil selects config.Default().
	Calculator *config.Configuration
}

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	defaults       emi.Inputs
	policy         input.Policy
	currency       *format.Currency
	mode           presentation.Mode
}

// NewHandler constructs the HTTP handler that serves the web UI and EMI API.
func NewHandler(logger *zap.Logger, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxRequestSize := opts.MaxRequestSize
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	conf := opts.Calculator
	if conf == nil {
		conf = config.Default()
	}
	currency, err := conf.CurrencyFormatter()
	if err != nil {
		return nil, err
	}
	mode, err := conf.ThemeMode()
	if err != nil {
		return nil, err
	}
	policy, err := conf.InputPolicy()
	if err != nil {
		return nil, err
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		defaults:       conf.DefaultInputs(),
		policy:         policy,
		currency:       currency,
		mode:           mode,
	}

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare embedded static files: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/emi", h.handleCalculateQuery)
		r.Post("/emi", h.handleCalculate)
		r.Get("/sliders", h.handleSliders)
		r.Get("/theme/{mode}", h.handleTheme)
		r.Get("/version", h.handleVersion)
	})
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r, nil
}

// calculateRequest carries either numeric values (from sliders) or raw text
// (from the direct-entry fields). Text wins when both are present; missing
// fields fall back to the configured defaults.
type calculateRequest struct {
	Principal         *float64 `json:"principal"`
	AnnualRatePercent *float64 `json:"annualRatePercent"`
	TermMonths        *int     `json:"termMonths"`
	PrincipalText     *string  `json:"principalText"`
	RateText          *string  `json:"rateText"`
	TermText          *string  `json:"termText"`
	Mode              string   `json:"mode"`
}

type errorResponse struct {
	Error  string      `json:"error"`
	Field  string      `json:"field,omitempty"`
	Inputs *emi.Inputs `json:"inputs,omitempty"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				errorResponse{Error: fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize)}, op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest,
			errorResponse{Error: fmt.Sprintf("failed to decode request: %v", err)}, op)
		return
	}

	h.calculate(w, req, op)
}

func (h *handler) handleCalculateQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := calculateRequest{Mode: query.Get("mode")}
	if query.Has("principal") {
		v := query.Get("principal")
		req.PrincipalText = &v
	}
	if query.Has("rate") {
		v := query.Get("rate")
		req.RateText = &v
	}
	if query.Has("term") {
		v := query.Get("term")
		req.TermText = &v
	}

	h.calculate(w, req, "server.handleCalculateQuery")
}

func (h *handler) calculate(w http.ResponseWriter, req calculateRequest, op string) {
	start := time.Now()

	mode := h.mode
	if req.Mode != "" {
		parsed, err := presentation.ParseMode(req.Mode)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "mode"}, op)
			return
		}
		mode = parsed
	}

	session := calculator.New(h.logger, h.defaults, h.policy)
	if err := applyRequest(session, req); err != nil {
		field, _ := emi.FieldOf(err)
		inputs := session.Inputs()
		h.respondErrorWithOp(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: field, Inputs: &inputs}, op)
		return
	}

	result, _ := session.Result()

	summary := presentation.Summarize(result, h.currency, mode)
	h.logger.Info("installment computed",
		zap.String("op", op),
		zap.Float64("monthlyInstallment", result.MonthlyInstallment),
		zap.String("mode", string(mode)),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, summary)
}

// applyRequest replays the request's fields onto the session in input order,
// stopping at the first rejected value.
func applyRequest(s *calculator.Session, req calculateRequest) error {
	steps := []func() error{
		func() error {
			switch {
			case req.PrincipalText != nil:
				return s.SetPrincipalText(*req.PrincipalText)
			case req.Principal != nil:
				return s.SetPrincipal(*req.Principal)
			}
			return nil
		},
		func() error {
			switch {
			case req.RateText != nil:
				return s.SetRateText(*req.RateText)
			case req.AnnualRatePercent != nil:
				return s.SetRate(*req.AnnualRatePercent)
			}
			return nil
		},
		func() error {
			switch {
			case req.TermText != nil:
				return s.SetTermText(*req.TermText)
			case req.TermMonths != nil:
				return s.SetTerm(*req.TermMonths)
			}
			return nil
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	// Covers requests that change nothing on top of an invalid seed.
	return s.Err()
}

type slidersResponse struct {
	Sliders  input.Sliders `json:"sliders"`
	Defaults emi.Inputs    `json:"defaults"`
	Mode     string        `json:"mode"`
	Currency string        `json:"currency"`
	Symbol   string        `json:"symbol"`
}

func (h *handler) handleSliders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, slidersResponse{
		Sliders:  input.DefaultSliders(),
		Defaults: h.defaults,
		Mode:     string(h.mode),
		Currency: h.currency.Code(),
		Symbol:   h.currency.Symbol(),
	})
}

func (h *handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	mode, err := presentation.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, errorResponse{Error: err.Error(), Field: "mode"}, "server.handleTheme")
		return
	}
	h.writeJSON(w, http.StatusOK, presentation.PaletteFor(mode))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("requestID", middleware.GetReqID(r.Context())),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, resp errorResponse, op string) {
	h.logger.Warn("emi request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("field", resp.Field),
		zap.String("error", resp.Error),
	)
	h.writeJSON(w, status, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
