package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("SIMULATION_PATHS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 14, cfg.RSIWindow)
	assert.Equal(t, 30.0, cfg.BearishThreshold)
	assert.Equal(t, 1000, cfg.SimulationPaths)
	assert.Equal(t, 252.0, cfg.TradingPeriodsPerYear)
	assert.Equal(t, 0.04, cfg.RiskFreeRate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("SIMULATION_PATHS", "5000")
	t.Setenv("SIMULATION_SEED", "42")
	t.Setenv("RISK_WEIGHT_VOLATILITY", "0.4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.AlphaVantageAPIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5000, cfg.SimulationPaths)
	assert.Equal(t, int64(42), cfg.SimulationSeed)
	assert.Equal(t, 0.4, cfg.RiskWeightVolatility)
}

func TestAnalysisConfig(t *testing.T) {
	cfg := &Config{
		RSIWindow:             10,
		BearishThreshold:      25,
		SimulationPaths:       500,
		SimulationWorkers:     2,
		SimulationSeed:        7,
		TradingPeriodsPerYear: 252,
		RiskWeightVolatility:  0.25,
		RiskWeightDrawdown:    0.25,
		RiskWeightLiquidity:   0.25,
		RiskWeightBearish:     0.25,
	}

	ac := cfg.AnalysisConfig()
	assert.Equal(t, 10, ac.RSIWindow)
	assert.Equal(t, 25.0, ac.BearishThreshold)
	assert.Equal(t, 500, ac.SimulationPaths)
	assert.Equal(t, int64(7), ac.Seed)
	require.NoError(t, ac.Validate())
}
