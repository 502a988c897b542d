package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockanalyzer/models"
)

// seriesFromCloses builds a daily series with ascending dates and a constant
// volume, used across the package tests.
func seriesFromCloses(closes []float64, volume int64) []models.Candle {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, len(closes))
	for i, c := range closes {
		candles[i] = models.Candle{
			Datetime: start.AddDate(0, 0, i).Format("2006-01-02"),
			Open:     c,
			High:     c,
			Low:      c,
			Close:    c,
			Volume:   volume,
		}
	}
	return candles
}

// steadySeries rises linearly from start to end over n bars
func steadySeries(n int, start, end float64, volume int64) []models.Candle {
	closes := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return seriesFromCloses(closes, volume)
}

func TestReturns(t *testing.T) {
	series := seriesFromCloses([]float64{100, 110, 99}, 1000)

	returns, err := Returns(series)
	require.NoError(t, err)
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-12)
	assert.InDelta(t, -0.10, returns[1], 1e-12)
}

func TestReturnsInsufficientHistory(t *testing.T) {
	series := seriesFromCloses([]float64{100}, 1000)

	_, err := Returns(series)
	var insufficient *InsufficientHistoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Need)
	assert.Equal(t, 1, insufficient.Got)
}

func TestReturnsInvalidPriceData(t *testing.T) {
	tests := []struct {
		name  string
		close float64
	}{
		{"zero close", 0},
		{"negative close", -5},
		{"nan close", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := seriesFromCloses([]float64{100, tt.close, 102}, 1000)

			_, err := Returns(series)
			var invalid *InvalidPriceDataError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "close", invalid.Field)
			assert.Equal(t, 1, invalid.Index)
		})
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.02, -0.02}

	// stddev scaled by sqrt(252)
	want := 0.0182574185835055 * math.Sqrt(252)
	got := AnnualizedVolatility(returns, 252)
	assert.InDelta(t, want, got, 1e-9)
}

func TestAnnualizedVolatilityZeroVariance(t *testing.T) {
	returns := []float64{0.01, 0.01, 0.01, 0.01}
	assert.Zero(t, AnnualizedVolatility(returns, 252))
}

func TestAnnualizedVolatilityShortInput(t *testing.T) {
	assert.Zero(t, AnnualizedVolatility(nil, 252))
	assert.Zero(t, AnnualizedVolatility([]float64{0.01}, 252))
}
