package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stockanalyzer/internal/analysis"
	"stockanalyzer/internal/marketdata/alphavantage"
	"stockanalyzer/models"
)

const defaultHoldingPeriodDays = 30

// handleRoot reports basic service information
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Stock Market Analyzer API",
		"version": "1.0.0",
		"status":  "running",
	})
}

// handleHealth is the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"api_key_configured": s.cfg.AlphaVantageAPIKey != "",
	})
}

// handleStock returns the raw daily series for a symbol
func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	if !s.requireAPIKey(w) {
		return
	}

	symbol, candles, err := s.data.GetDailySeries(r.Context(), chi.URLParam(r, "symbol"))
	if err != nil {
		s.respondProviderError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"symbol":  symbol,
		"candles": candles,
	})
}

// handleSearch looks up symbols by keywords
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireAPIKey(w) {
		return
	}

	matches, err := s.data.SearchSymbols(r.Context(), chi.URLParam(r, "keywords"))
	if err != nil {
		s.respondProviderError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleAnalyze runs the risk/reward analysis and returns the result as JSON
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// handleAnalyzeReport runs the analysis and renders the HTML report
func (s *Server) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}
	s.renderReport(w, result)
}

// runAnalysis parses the trade proposal from the query, fetches the series
// and runs the core analysis. On failure it writes the error response and
// returns ok=false.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request) (*models.AnalysisResult, bool) {
	if !s.requireAPIKey(w) {
		return nil, false
	}

	proposal, err := proposalFromQuery(r, s.cfg.RiskFreeRate)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	symbol, candles, err := s.data.GetDailySeries(r.Context(), chi.URLParam(r, "symbol"))
	if err != nil {
		s.respondProviderError(w, err)
		return nil, false
	}

	result, err := analysis.Analyze(candles, proposal, s.cfg.AnalysisConfig())
	if err != nil {
		s.respondError(w, analysisStatus(err), err.Error())
		return nil, false
	}
	result.Symbol = symbol

	return result, true
}

// proposalFromQuery builds a TradeProposal from the request query parameters.
// target, stop and volume are required; horizon and risk_free_rate have
// defaults. The full ordering validation happens inside the core.
func proposalFromQuery(r *http.Request, defaultRiskFreeRate float64) (models.TradeProposal, error) {
	target, err := queryFloat(r, "target")
	if err != nil {
		return models.TradeProposal{}, err
	}
	stop, err := queryFloat(r, "stop")
	if err != nil {
		return models.TradeProposal{}, err
	}
	volume, err := queryFloat(r, "volume")
	if err != nil {
		return models.TradeProposal{}, err
	}
	horizon, err := queryIntDefault(r, "horizon", defaultHoldingPeriodDays)
	if err != nil {
		return models.TradeProposal{}, err
	}
	riskFree, err := queryFloatDefault(r, "risk_free_rate", defaultRiskFreeRate)
	if err != nil {
		return models.TradeProposal{}, err
	}

	return models.TradeProposal{
		TargetPrice:       target,
		StopLoss:          stop,
		PositionSize:      volume,
		HoldingPeriodDays: horizon,
		RiskFreeRate:      riskFree,
	}, nil
}

// requireAPIKey rejects data-dependent requests when no provider key is set
func (s *Server) requireAPIKey(w http.ResponseWriter) bool {
	if s.cfg.AlphaVantageAPIKey == "" {
		s.respondError(w, http.StatusInternalServerError,
			"Alpha Vantage API key not configured. Please set ALPHA_VANTAGE_API_KEY.")
		return false
	}
	return true
}

// analysisStatus maps the core error taxonomy to HTTP status codes
func analysisStatus(err error) int {
	var insufficient *analysis.InsufficientHistoryError
	var badData *analysis.InvalidPriceDataError
	var badParams *analysis.InvalidParametersError
	var badSim *analysis.SimulationConfigError

	switch {
	case errors.As(err, &badParams), errors.As(err, &badSim):
		return http.StatusBadRequest
	case errors.As(err, &insufficient), errors.As(err, &badData):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondProviderError maps data provider failures to HTTP status codes
func (s *Server) respondProviderError(w http.ResponseWriter, err error) {
	var provErr *alphavantage.ProviderError
	switch {
	case errors.Is(err, alphavantage.ErrRateLimited):
		s.respondError(w, http.StatusTooManyRequests, "API rate limit exceeded")
	case errors.As(err, &provErr):
		s.respondError(w, http.StatusBadRequest, provErr.Message)
	default:
		s.logger.Error().Err(err).Msg("Market data fetch failed")
		s.respondError(w, http.StatusInternalServerError, "error fetching data")
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, &analysis.InvalidParametersError{Field: name, Reason: "query parameter is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &analysis.InvalidParametersError{Field: name, Reason: "must be a number"}
	}
	return v, nil
}

func queryFloatDefault(r *http.Request, name string, def float64) (float64, error) {
	if r.URL.Query().Get(name) == "" {
		return def, nil
	}
	return queryFloat(r, name)
}

func queryIntDefault(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &analysis.InvalidParametersError{Field: name, Reason: "must be an integer"}
	}
	return v, nil
}
