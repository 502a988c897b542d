package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockanalyzer/models"
)

func mcConfig(paths int, seed int64) Config {
	cfg := DefaultConfig()
	cfg.SimulationPaths = paths
	cfg.SimulationWorkers = 4
	cfg.Seed = seed
	return cfg
}

func TestEstimateSuccessProbabilityBounded(t *testing.T) {
	proposal := models.TradeProposal{TargetPrice: 110, StopLoss: 90, HoldingPeriodDays: 20}
	returns := []float64{0.01, -0.02, 0.015, -0.005, 0.02}

	for _, paths := range []int{1, 2, 100, 1000} {
		prob, err := EstimateSuccessProbability(returns, 100, proposal, mcConfig(paths, 7))
		require.NoError(t, err, "paths=%d", paths)
		assert.GreaterOrEqual(t, prob, 0.0, "paths=%d", paths)
		assert.LessOrEqual(t, prob, 1.0, "paths=%d", paths)
	}
}

func TestEstimateSuccessProbabilityDeterministicWithSeed(t *testing.T) {
	proposal := models.TradeProposal{TargetPrice: 115, StopLoss: 85, HoldingPeriodDays: 30}
	returns := []float64{0.01, -0.02, 0.015, -0.005, 0.02, 0.003, -0.011}
	cfg := mcConfig(2000, 42)

	first, err := EstimateSuccessProbability(returns, 100, proposal, cfg)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := EstimateSuccessProbability(returns, 100, proposal, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEstimateSuccessProbabilityStrongDrift(t *testing.T) {
	// Steady 1% daily gains with little noise: the nearby target should be
	// reached first almost always.
	returns := []float64{0.010, 0.011, 0.009, 0.010, 0.011, 0.009, 0.010, 0.011, 0.009, 0.010}

	up := models.TradeProposal{TargetPrice: 105, StopLoss: 80, HoldingPeriodDays: 30}
	prob, err := EstimateSuccessProbability(returns, 100, up, mcConfig(2000, 11))
	require.NoError(t, err)
	assert.Greater(t, prob, 0.95)

	// An unreachable target within the horizon is a failure
	far := models.TradeProposal{TargetPrice: 1000, StopLoss: 80, HoldingPeriodDays: 5}
	prob, err = EstimateSuccessProbability(returns, 100, far, mcConfig(2000, 11))
	require.NoError(t, err)
	assert.Less(t, prob, 0.05)
}

func TestEstimateSuccessProbabilityZeroVariance(t *testing.T) {
	// No drift, no noise: the price never moves and the horizon expires
	returns := []float64{0, 0, 0, 0, 0}
	proposal := models.TradeProposal{TargetPrice: 110, StopLoss: 90, HoldingPeriodDays: 10}

	prob, err := EstimateSuccessProbability(returns, 100, proposal, mcConfig(500, 3))
	require.NoError(t, err)
	assert.Zero(t, prob)
}

func TestEstimateSuccessProbabilityConfigErrors(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.02}

	_, err := EstimateSuccessProbability(returns, 100,
		models.TradeProposal{TargetPrice: 110, StopLoss: 90, HoldingPeriodDays: 10}, mcConfig(0, 1))
	var simErr *SimulationConfigError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, "simulationPaths", simErr.Field)

	_, err = EstimateSuccessProbability(returns, 100,
		models.TradeProposal{TargetPrice: 110, StopLoss: 90, HoldingPeriodDays: 0}, mcConfig(100, 1))
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, "holdingPeriodDays", simErr.Field)
}

func TestEstimateSuccessProbabilityInsufficientReturns(t *testing.T) {
	proposal := models.TradeProposal{TargetPrice: 110, StopLoss: 90, HoldingPeriodDays: 10}

	_, err := EstimateSuccessProbability([]float64{0.01}, 100, proposal, mcConfig(100, 1))
	var insufficient *InsufficientHistoryError
	require.ErrorAs(t, err, &insufficient)
}
