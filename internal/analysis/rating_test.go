package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockanalyzer/models"
)

func TestRateTradeBands(t *testing.T) {
	tests := []struct {
		name      string
		risk      models.RiskProfile
		reward    models.RewardProfile
		wantStars int
		wantLabel string
	}{
		{
			name:      "excellent trade",
			risk:      models.RiskProfile{CombinedScore: 0.10},
			reward:    models.RewardProfile{SharpeRatio: 2.5, RiskRewardRatio: 3.5, SuccessProbability: 0.85},
			wantStars: 5,
			wantLabel: "Excellent",
		},
		{
			name:      "good trade",
			risk:      models.RiskProfile{CombinedScore: 0.35},
			reward:    models.RewardProfile{SharpeRatio: 1.4, RiskRewardRatio: 2.0, SuccessProbability: 0.65},
			wantStars: 4,
			wantLabel: "Good",
		},
		{
			name:      "fair trade",
			risk:      models.RiskProfile{CombinedScore: 0.45},
			reward:    models.RewardProfile{SharpeRatio: 1.0, RiskRewardRatio: 1.5, SuccessProbability: 0.55},
			wantStars: 3,
			wantLabel: "Fair",
		},
		{
			name:      "weak trade",
			risk:      models.RiskProfile{CombinedScore: 0.55},
			reward:    models.RewardProfile{SharpeRatio: 0.6, RiskRewardRatio: 1.0, SuccessProbability: 0.40},
			wantStars: 2,
			wantLabel: "Weak",
		},
		{
			name:      "poor trade",
			risk:      models.RiskProfile{CombinedScore: 0.90},
			reward:    models.RewardProfile{SharpeRatio: -0.5, RiskRewardRatio: 0.3, SuccessProbability: 0.10},
			wantStars: 1,
			wantLabel: "Poor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rating := RateTrade(tt.risk, tt.reward)
			assert.Equal(t, tt.wantStars, rating.Stars)
			assert.Equal(t, tt.wantLabel, rating.Label)
		})
	}
}

func TestRateTradeDeterministic(t *testing.T) {
	risk := models.RiskProfile{CombinedScore: 0.42}
	reward := models.RewardProfile{SharpeRatio: 1.1, RiskRewardRatio: 1.7, SuccessProbability: 0.58}

	first := RateTrade(risk, reward)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RateTrade(risk, reward))
	}
}

func TestRateTradeNegativeMetricsClamped(t *testing.T) {
	// Hostile inputs must still land inside the 1-5 band
	rating := RateTrade(
		models.RiskProfile{CombinedScore: 1.0},
		models.RewardProfile{SharpeRatio: -10, RiskRewardRatio: -2, SuccessProbability: 0},
	)
	assert.Equal(t, 1, rating.Stars)
	assert.Equal(t, "Poor", rating.Label)
}
