package analysis

import "stockanalyzer/models"

// Rating composite: each input is mapped to [0,1] and blended with fixed
// weights, then the blended score is bucketed into stars. A Sharpe ratio of
// 2 and a payoff ratio of 3 score full marks on their axes; the combined risk
// score contributes inverted, as a safety margin.
const (
	sharpeCeiling = 2.0
	payoffCeiling = 3.0

	ratingWeightSharpe  = 0.30
	ratingWeightPayoff  = 0.20
	ratingWeightSuccess = 0.30
	ratingWeightSafety  = 0.20
)

// Star thresholds on the blended [0,1] score
const (
	excellentThreshold = 0.80
	goodThreshold      = 0.65
	fairThreshold      = 0.50
	weakThreshold      = 0.35
)

// RateTrade maps the combined risk and reward metrics onto a 1-5 star rating
// with a qualitative label. Identical inputs always produce the same rating.
func RateTrade(risk models.RiskProfile, reward models.RewardProfile) models.Rating {
	score := ratingWeightSharpe*clamp01(reward.SharpeRatio/sharpeCeiling) +
		ratingWeightPayoff*clamp01(reward.RiskRewardRatio/payoffCeiling) +
		ratingWeightSuccess*reward.SuccessProbability +
		ratingWeightSafety*(1-risk.CombinedScore)

	switch {
	case score >= excellentThreshold:
		return models.Rating{Stars: 5, Label: "Excellent"}
	case score >= goodThreshold:
		return models.Rating{Stars: 4, Label: "Good"}
	case score >= fairThreshold:
		return models.Rating{Stars: 3, Label: "Fair"}
	case score >= weakThreshold:
		return models.Rating{Stars: 2, Label: "Weak"}
	default:
		return models.Rating{Stars: 1, Label: "Poor"}
	}
}
