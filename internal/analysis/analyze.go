// Package analysis turns a historical price series and a trade proposal into
// a structured risk/reward assessment: normalized risk scores, Sharpe and
// payoff ratios, a Monte Carlo success probability and an aggregate star
// rating. Every function is a pure computation over immutable inputs; the
// data fetching and rendering collaborators live elsewhere.
package analysis

import (
	"math"

	"stockanalyzer/models"
)

// Analyze runs the full assessment. All validation happens up front: a bad
// series, proposal or config fails before any computation and never yields a
// partial result.
func Analyze(series []models.Candle, proposal models.TradeProposal, cfg Config) (*models.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSeries(series, cfg.RSIWindow); err != nil {
		return nil, err
	}
	currentPrice := series[len(series)-1].Close
	if err := validateProposal(proposal, currentPrice); err != nil {
		return nil, err
	}

	returns, err := Returns(series)
	if err != nil {
		return nil, err
	}
	vol := AnnualizedVolatility(returns, cfg.TradingPeriodsPerYear)

	rsi, err := RSISeries(series, cfg.RSIWindow)
	if err != nil {
		return nil, err
	}
	bearishFreq := BearishFrequency(rsi, cfg.BearishThreshold)

	risk := ScoreRisk(series, proposal, vol, bearishFreq, cfg.RiskWeights)
	reward := ScoreReward(returns, vol, currentPrice, proposal, cfg.TradingPeriodsPerYear)

	successProb, err := EstimateSuccessProbability(returns, currentPrice, proposal, cfg)
	if err != nil {
		return nil, err
	}
	reward.SuccessProbability = successProb

	return &models.AnalysisResult{
		CurrentPrice: currentPrice,
		Proposal:     proposal,
		Risk:         risk,
		Reward:       reward,
		Rating:       RateTrade(risk, reward),
	}, nil
}

// validateSeries enforces the ordering and data invariants of the price
// series. The RSI window is the binding minimum length: window+1 bars.
func validateSeries(series []models.Candle, rsiWindow int) error {
	if len(series) < rsiWindow+1 {
		return &InsufficientHistoryError{Op: "analyze", Need: rsiWindow + 1, Got: len(series)}
	}
	for i, c := range series {
		if math.IsNaN(c.Close) || math.IsInf(c.Close, 0) || c.Close <= 0 {
			return &InvalidPriceDataError{Field: "close", Index: i, Reason: "must be a positive finite number"}
		}
		if c.Volume <= 0 {
			return &InvalidPriceDataError{Field: "volume", Index: i, Reason: "must be positive"}
		}
		if i > 0 && series[i-1].Datetime >= c.Datetime {
			return &InvalidPriceDataError{Field: "datetime", Index: i, Reason: "timestamps must be strictly increasing"}
		}
	}
	return nil
}

// validateProposal enforces the long-position ordering invariant
// stopLoss < currentPrice < targetPrice plus positive size and horizon.
func validateProposal(p models.TradeProposal, currentPrice float64) error {
	if p.StopLoss >= currentPrice {
		return &InvalidParametersError{Field: "stopLoss", Reason: "must be below the current price"}
	}
	if p.TargetPrice <= currentPrice {
		return &InvalidParametersError{Field: "targetPrice", Reason: "must be above the current price"}
	}
	if p.StopLoss <= 0 {
		return &InvalidParametersError{Field: "stopLoss", Reason: "must be positive"}
	}
	if p.PositionSize <= 0 {
		return &InvalidParametersError{Field: "positionSize", Reason: "must be positive"}
	}
	if p.HoldingPeriodDays <= 0 {
		return &InvalidParametersError{Field: "holdingPeriodDays", Reason: "must be positive"}
	}
	return nil
}
