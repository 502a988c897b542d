package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stockanalyzer/config"
	"stockanalyzer/internal/analysis"
	"stockanalyzer/internal/marketdata/alphavantage"
	"stockanalyzer/models"
)

func main() {
	symbol := flag.String("symbol", "", "stock symbol to analyze (required)")
	target := flag.Float64("target", 0, "target selling price (required)")
	stop := flag.Float64("stop", 0, "stop-loss price (required)")
	volume := flag.Float64("volume", 0, "number of shares to buy (required)")
	horizon := flag.Int("horizon", 30, "holding period in days")
	seed := flag.Int64("seed", 0, "simulation seed, 0 = time-based")
	flag.Parse()

	if *symbol == "" || *target <= 0 || *stop <= 0 || *volume <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)

	// 3. Fetch the price series
	avClient := alphavantage.NewClient(alphavantage.ClientOptions{
		APIKey:         cfg.AlphaVantageAPIKey,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info().Str("symbol", *symbol).Msg("Fetching daily series...")
	canonical, candles, err := avClient.GetDailySeries(ctx, *symbol)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch price series")
	}

	// 4. Run the analysis
	proposal := models.TradeProposal{
		TargetPrice:       *target,
		StopLoss:          *stop,
		PositionSize:      *volume,
		HoldingPeriodDays: *horizon,
		RiskFreeRate:      cfg.RiskFreeRate,
	}

	analysisCfg := cfg.AnalysisConfig()
	if *seed != 0 {
		analysisCfg.Seed = *seed
	}

	result, err := analysis.Analyze(candles, proposal, analysisCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}
	result.Symbol = canonical

	// 5. Print the assessment
	printResult(result)
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printResult outputs the analysis sections
func printResult(r *models.AnalysisResult) {
	fmt.Printf("\n===== RISK/REWARD ANALYSIS: %s =====\n", r.Symbol)
	fmt.Printf("Current: $%.2f | Target: $%.2f | Stop: $%.2f | Horizon: %d days\n",
		r.CurrentPrice, r.Proposal.TargetPrice, r.Proposal.StopLoss, r.Proposal.HoldingPeriodDays)

	fmt.Println("\nRisk Profile:")
	fmt.Printf("Volatility: %.3f (annualized %.2f%%) | ", r.Risk.VolatilityRisk, r.Risk.AnnualizedVolatility*100)
	fmt.Printf("Drawdown: %.3f (%.2f%% to stop)\n", r.Risk.DrawdownRisk, r.Risk.DrawdownPct*100)
	fmt.Printf("Liquidity: %.3f (order is %.1f%% of recent volume) | ", r.Risk.LiquidityRisk, r.Risk.VolumeImpact*100)
	fmt.Printf("Bearish Pressure: %.3f\n", r.Risk.BearishPressure)
	fmt.Printf("Combined Risk Score: %.3f\n", r.Risk.CombinedScore)

	fmt.Println("\nReward Analysis:")
	fmt.Printf("Sharpe Ratio: %.3f | Annualized Return: %.2f%%\n",
		r.Reward.SharpeRatio, r.Reward.AnnualizedReturnPct)
	fmt.Printf("Risk/Reward Ratio: %.3f | Success Probability: %.1f%%\n",
		r.Reward.RiskRewardRatio, r.Reward.SuccessProbability*100)

	fmt.Printf("\nRating: %d/5 (%s)\n\n", r.Rating.Stars, r.Rating.Label)
}
