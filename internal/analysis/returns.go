package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"stockanalyzer/models"
)

// Returns derives the periodic fractional returns from the closes of series.
// The result has length len(series)-1.
func Returns(series []models.Candle) ([]float64, error) {
	if len(series) < 2 {
		return nil, &InsufficientHistoryError{Op: "returns", Need: 2, Got: len(series)}
	}
	for i, c := range series {
		if math.IsNaN(c.Close) || math.IsInf(c.Close, 0) || c.Close <= 0 {
			return nil, &InvalidPriceDataError{Field: "close", Index: i, Reason: "must be a positive finite number"}
		}
	}

	returns := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		returns[i-1] = (series[i].Close - series[i-1].Close) / series[i-1].Close
	}
	return returns, nil
}

// AnnualizedVolatility scales the standard deviation of periodic returns by
// sqrt(trading periods per year). Fewer than two returns yield zero.
func AnnualizedVolatility(returns []float64, periodsPerYear float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(periodsPerYear)
}
