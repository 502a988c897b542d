package analysis

import (
	"gonum.org/v1/gonum/stat"

	"stockanalyzer/models"
)

// ScoreReward computes the Sharpe ratio and the payoff ratio of the proposal.
// The expected return is the mean periodic return annualized with the same
// period count as the volatility. A zero volatility trips the guard and yields
// a Sharpe ratio of 0 instead of a division by zero. SuccessProbability is
// left for the Monte Carlo estimator to fill in.
func ScoreReward(returns []float64, annualizedVol, currentPrice float64, proposal models.TradeProposal, periodsPerYear float64) models.RewardProfile {
	expectedReturn := stat.Mean(returns, nil) * periodsPerYear

	sharpe := 0.0
	if annualizedVol > 0 {
		sharpe = (expectedReturn - proposal.RiskFreeRate) / annualizedVol
	}

	// Denominator is positive for any proposal that passed validation
	riskReward := (proposal.TargetPrice - currentPrice) / (currentPrice - proposal.StopLoss)

	return models.RewardProfile{
		SharpeRatio:         sharpe,
		AnnualizedReturnPct: expectedReturn * 100,
		RiskRewardRatio:     riskReward,
	}
}
