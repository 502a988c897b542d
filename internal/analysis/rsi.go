package analysis

import "stockanalyzer/models"

// RSISeries computes the Relative Strength Index of the closes using a simple
// rolling average of up-moves and down-moves over the given window. The first
// window-1 values use an expanding warm-up average over the moves seen so far.
// When the window contains no losses the RSI is 100. One value is produced per
// price change, so the result has length len(series)-1.
func RSISeries(series []models.Candle, window int) ([]float64, error) {
	if window < 1 {
		return nil, &InvalidParametersError{Field: "rsiWindow", Reason: "must be at least 1"}
	}
	if len(series) < window+1 {
		return nil, &InsufficientHistoryError{Op: "rsi", Need: window + 1, Got: len(series)}
	}

	n := len(series) - 1
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < len(series); i++ {
		change := series[i].Close - series[i-1].Close
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}

	rsi := make([]float64, n)
	var gainSum, lossSum float64
	for t := 0; t < n; t++ {
		gainSum += gains[t]
		lossSum += losses[t]
		if t >= window {
			gainSum -= gains[t-window]
			lossSum -= losses[t-window]
		}

		w := float64(window)
		if t+1 < window {
			w = float64(t + 1)
		}
		avgGain := gainSum / w
		avgLoss := lossSum / w

		if avgLoss == 0 {
			rsi[t] = 100
			continue
		}
		rs := avgGain / avgLoss
		rsi[t] = 100 - 100/(1+rs)
	}
	return rsi, nil
}

// BearishFrequency returns the fraction of periods with RSI below threshold
func BearishFrequency(rsi []float64, threshold float64) float64 {
	if len(rsi) == 0 {
		return 0
	}
	bearish := 0
	for _, v := range rsi {
		if v < threshold {
			bearish++
		}
	}
	return float64(bearish) / float64(len(rsi))
}
