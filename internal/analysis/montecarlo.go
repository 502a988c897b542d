package analysis

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"stockanalyzer/models"
)

// Offset between per-worker seeds so each worker draws from an independent
// stream while staying reproducible under a fixed seed.
const workerSeedStride = 0x9E3779B97F4A7C15

// EstimateSuccessProbability simulates geometric Brownian motion price paths
// with daily drift and volatility taken from the historical returns, and
// returns the fraction of paths that touch the target before the stop-loss
// within the holding horizon. First touch wins; a path that reaches the
// horizon without touching the target counts as a failure.
//
// Paths are independent, so the work is split across workers that only merge
// their success counts at the end. With cfg.Seed != 0 and a fixed
// cfg.SimulationWorkers the result is bit-identical across runs.
func EstimateSuccessProbability(returns []float64, currentPrice float64, proposal models.TradeProposal, cfg Config) (float64, error) {
	if cfg.SimulationPaths < 1 {
		return 0, &SimulationConfigError{Field: "simulationPaths", Reason: "must be at least 1"}
	}
	if proposal.HoldingPeriodDays < 1 {
		return 0, &SimulationConfigError{Field: "holdingPeriodDays", Reason: "must be at least 1"}
	}
	if len(returns) < 2 {
		return 0, &InsufficientHistoryError{Op: "monte carlo", Need: 3, Got: len(returns) + 1}
	}

	mu := stat.Mean(returns, nil)
	sigma := stat.StdDev(returns, nil)
	drift := mu - 0.5*sigma*sigma

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	workers := cfg.SimulationWorkers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.SimulationPaths {
		workers = cfg.SimulationPaths
	}

	counts := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		paths := cfg.SimulationPaths / workers
		if w < cfg.SimulationPaths%workers {
			paths++
		}

		wg.Add(1)
		go func(w, paths int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(uint64(seed) + uint64(w)*workerSeedStride)))

			hits := 0
			for p := 0; p < paths; p++ {
				price := currentPrice
				for d := 0; d < proposal.HoldingPeriodDays; d++ {
					price *= math.Exp(drift + sigma*rng.NormFloat64())
					if price >= proposal.TargetPrice {
						hits++
						break
					}
					if price <= proposal.StopLoss {
						break
					}
				}
			}
			counts[w] = hits
		}(w, paths)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return float64(total) / float64(cfg.SimulationPaths), nil
}
