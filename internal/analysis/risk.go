package analysis

import (
	"gonum.org/v1/gonum/stat"

	"stockanalyzer/models"
)

// Normalization caps for the risk scores. Each raw metric is divided by its
// cap and clamped to [0,1], so the caps fix where a dimension saturates.
const (
	volatilityCap = 0.50 // 50% annualized volatility
	drawdownCap   = 0.30 // 30% loss from current price to the stop
	liquidityCap  = 0.70 // recent volume 70% below the historical average
	bearishCap    = 0.30 // RSI bearish 30% of the observed periods
)

const (
	recentVolumeWindow    = 20   // bars used for the recent-volume average
	volumeImpactThreshold = 0.05 // order size above 5% of recent volume scales liquidity risk up
)

// ScoreRisk maps the raw metrics of a validated series and proposal onto
// normalized per-dimension risk scores plus a weighted combined score.
// Drawdown risk grows with the potential loss magnitude
// (currentPrice-stopLoss)/currentPrice: a wider stop means more capital at
// risk. All scores are deterministic in their inputs.
func ScoreRisk(series []models.Candle, proposal models.TradeProposal, annualizedVol, bearishFreq float64, weights RiskWeights) models.RiskProfile {
	currentPrice := series[len(series)-1].Close

	drawdown := (currentPrice - proposal.StopLoss) / currentPrice

	volumes := make([]float64, len(series))
	for i, c := range series {
		volumes[i] = float64(c.Volume)
	}
	avgVolume := stat.Mean(volumes, nil)
	recent := volumes
	if len(volumes) > recentVolumeWindow {
		recent = volumes[len(volumes)-recentVolumeWindow:]
	}
	recentVolume := stat.Mean(recent, nil)

	liquidity := 1 - recentVolume/avgVolume
	volumeImpact := proposal.PositionSize / recentVolume
	if volumeImpact > volumeImpactThreshold {
		liquidity *= 1 + volumeImpact
	}

	profile := models.RiskProfile{
		VolatilityRisk:  clamp01(annualizedVol / volatilityCap),
		DrawdownRisk:    clamp01(drawdown / drawdownCap),
		LiquidityRisk:   clamp01(liquidity / liquidityCap),
		BearishPressure: clamp01(bearishFreq / bearishCap),

		AnnualizedVolatility: annualizedVol,
		DrawdownPct:          drawdown,
		BearishFrequency:     bearishFreq,
		RecentAvgVolume:      recentVolume,
		VolumeImpact:         volumeImpact,
	}
	profile.CombinedScore = weights.Volatility*profile.VolatilityRisk +
		weights.Drawdown*profile.DrawdownRisk +
		weights.Liquidity*profile.LiquidityRisk +
		weights.Bearish*profile.BearishPressure
	return profile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
