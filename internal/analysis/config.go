package analysis

import "math"

// RiskWeights controls how the four risk dimensions blend into the combined
// score. The weights must be non-negative and sum to 1.
type RiskWeights struct {
	Volatility float64 `json:"volatility"`
	Drawdown   float64 `json:"drawdown"`
	Liquidity  float64 `json:"liquidity"`
	Bearish    float64 `json:"bearish"`
}

// Config holds the tunables of a single analysis run
type Config struct {
	RSIWindow             int         `json:"rsi_window"`              // lookback for the momentum oscillator
	BearishThreshold      float64     `json:"bearish_threshold"`       // RSI level counted as bearish
	RiskWeights           RiskWeights `json:"risk_weights"`            // must sum to 1
	SimulationPaths       int         `json:"simulation_paths"`        // Monte Carlo path count
	SimulationWorkers     int         `json:"simulation_workers"`      // 0 = GOMAXPROCS
	Seed                  int64       `json:"seed"`                    // 0 = time-based
	TradingPeriodsPerYear float64     `json:"trading_periods_per_year"`
}

// DefaultRiskWeights weighs the four dimensions equally
func DefaultRiskWeights() RiskWeights {
	return RiskWeights{
		Volatility: 0.25,
		Drawdown:   0.25,
		Liquidity:  0.25,
		Bearish:    0.25,
	}
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		RSIWindow:             14,
		BearishThreshold:      30,
		RiskWeights:           DefaultRiskWeights(),
		SimulationPaths:       1000,
		SimulationWorkers:     0,
		Seed:                  0,
		TradingPeriodsPerYear: 252,
	}
}

// Validate rejects configurations that would make the analysis undefined
func (c Config) Validate() error {
	if c.RSIWindow < 1 {
		return &InvalidParametersError{Field: "rsiWindow", Reason: "must be at least 1"}
	}
	if c.BearishThreshold <= 0 || c.BearishThreshold >= 100 {
		return &InvalidParametersError{Field: "bearishThreshold", Reason: "must be between 0 and 100"}
	}
	if c.TradingPeriodsPerYear <= 0 {
		return &InvalidParametersError{Field: "tradingPeriodsPerYear", Reason: "must be positive"}
	}
	if c.SimulationPaths < 1 {
		return &SimulationConfigError{Field: "simulationPaths", Reason: "must be at least 1"}
	}
	w := c.RiskWeights
	if w.Volatility < 0 || w.Drawdown < 0 || w.Liquidity < 0 || w.Bearish < 0 {
		return &InvalidParametersError{Field: "riskWeights", Reason: "weights must be non-negative"}
	}
	if math.Abs(w.Volatility+w.Drawdown+w.Liquidity+w.Bearish-1) > 1e-9 {
		return &InvalidParametersError{Field: "riskWeights", Reason: "weights must sum to 1"}
	}
	return nil
}
