package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stockanalyzer/internal/analysis"
)

// Config holds all application configuration
type Config struct {
	AlphaVantageAPIKey string `env:"ALPHA_VANTAGE_API_KEY"`
	Port               int    `env:"PORT" envDefault:"8000"`
	RequestTimeout     int    `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	// Analysis tunables
	RSIWindow             int     `env:"RSI_WINDOW" envDefault:"14"`
	BearishThreshold      float64 `env:"BEARISH_THRESHOLD" envDefault:"30"`
	SimulationPaths       int     `env:"SIMULATION_PATHS" envDefault:"1000"`
	SimulationWorkers     int     `env:"SIMULATION_WORKERS" envDefault:"0"` // 0 = GOMAXPROCS
	SimulationSeed        int64   `env:"SIMULATION_SEED" envDefault:"0"`    // 0 = time-based
	TradingPeriodsPerYear float64 `env:"TRADING_PERIODS_PER_YEAR" envDefault:"252"`
	RiskFreeRate          float64 `env:"RISK_FREE_RATE" envDefault:"0.04"` // annual
	RiskWeightVolatility  float64 `env:"RISK_WEIGHT_VOLATILITY" envDefault:"0.25"`
	RiskWeightDrawdown    float64 `env:"RISK_WEIGHT_DRAWDOWN" envDefault:"0.25"`
	RiskWeightLiquidity   float64 `env:"RISK_WEIGHT_LIQUIDITY" envDefault:"0.25"`
	RiskWeightBearish     float64 `env:"RISK_WEIGHT_BEARISH" envDefault:"0.25"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	cfg.AlphaVantageAPIKey = os.Getenv("ALPHA_VANTAGE_API_KEY")
	cfg.Port = getEnvIntWithDefault("PORT", 8000)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	cfg.RSIWindow = getEnvIntWithDefault("RSI_WINDOW", 14)
	cfg.BearishThreshold = getEnvFloatWithDefault("BEARISH_THRESHOLD", 30)
	cfg.SimulationPaths = getEnvIntWithDefault("SIMULATION_PATHS", 1000)
	cfg.SimulationWorkers = getEnvIntWithDefault("SIMULATION_WORKERS", 0)
	cfg.SimulationSeed = int64(getEnvIntWithDefault("SIMULATION_SEED", 0))
	cfg.TradingPeriodsPerYear = getEnvFloatWithDefault("TRADING_PERIODS_PER_YEAR", 252)
	cfg.RiskFreeRate = getEnvFloatWithDefault("RISK_FREE_RATE", 0.04)
	cfg.RiskWeightVolatility = getEnvFloatWithDefault("RISK_WEIGHT_VOLATILITY", 0.25)
	cfg.RiskWeightDrawdown = getEnvFloatWithDefault("RISK_WEIGHT_DRAWDOWN", 0.25)
	cfg.RiskWeightLiquidity = getEnvFloatWithDefault("RISK_WEIGHT_LIQUIDITY", 0.25)
	cfg.RiskWeightBearish = getEnvFloatWithDefault("RISK_WEIGHT_BEARISH", 0.25)

	return &cfg, nil
}

// AnalysisConfig builds the analysis configuration from the loaded settings
func (c *Config) AnalysisConfig() analysis.Config {
	return analysis.Config{
		RSIWindow:        c.RSIWindow,
		BearishThreshold: c.BearishThreshold,
		RiskWeights: analysis.RiskWeights{
			Volatility: c.RiskWeightVolatility,
			Drawdown:   c.RiskWeightDrawdown,
			Liquidity:  c.RiskWeightLiquidity,
			Bearish:    c.RiskWeightBearish,
		},
		SimulationPaths:       c.SimulationPaths,
		SimulationWorkers:     c.SimulationWorkers,
		Seed:                  c.SimulationSeed,
		TradingPeriodsPerYear: c.TradingPeriodsPerYear,
	}
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
