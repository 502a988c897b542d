package models

// Candle represents a single daily price bar
type Candle struct {
	Datetime string  `json:"datetime"` // YYYY-MM-DD, ascending
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume,omitempty"`
}

// TradeProposal describes the trade being evaluated. The entry price is
// implicit: the last close of the analyzed series.
type TradeProposal struct {
	TargetPrice       float64 `json:"target_price"`
	StopLoss          float64 `json:"stop_loss"`
	PositionSize      float64 `json:"position_size"` // shares the user intends to buy
	HoldingPeriodDays int     `json:"holding_period_days"`
	RiskFreeRate      float64 `json:"risk_free_rate"` // annual, e.g. 0.04
}

// RiskProfile holds the normalized per-dimension risk scores, each in [0,1].
// The normalized scores double as the radar-chart axes for the rendering layer.
type RiskProfile struct {
	VolatilityRisk  float64 `json:"volatility_risk"`
	DrawdownRisk    float64 `json:"drawdown_risk"`
	LiquidityRisk   float64 `json:"liquidity_risk"`
	BearishPressure float64 `json:"bearish_pressure"`
	CombinedScore   float64 `json:"combined_score"`

	// Raw metrics behind the scores, reported for display
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	DrawdownPct          float64 `json:"drawdown_pct"` // (current - stop) / current
	BearishFrequency     float64 `json:"bearish_frequency"`
	RecentAvgVolume      float64 `json:"recent_avg_volume"`
	VolumeImpact         float64 `json:"volume_impact"` // user volume / recent avg volume
}

// RewardProfile holds the reward-side metrics of the analysis
type RewardProfile struct {
	SharpeRatio         float64 `json:"sharpe_ratio"`
	AnnualizedReturnPct float64 `json:"annualized_return_pct"`
	RiskRewardRatio     float64 `json:"risk_reward_ratio"`
	SuccessProbability  float64 `json:"success_probability"`
}

// Rating is the aggregate star rating
type Rating struct {
	Stars int    `json:"stars"` // 1-5
	Label string `json:"label"` // Poor, Weak, Fair, Good, Excellent
}

// AnalysisResult is the full risk/reward assessment returned to the caller.
// It is a plain value object; rendering happens elsewhere.
type AnalysisResult struct {
	Symbol       string        `json:"symbol,omitempty"`
	CurrentPrice float64       `json:"current_price"`
	Proposal     TradeProposal `json:"proposal"`
	Risk         RiskProfile   `json:"risk_analysis"`
	Reward       RewardProfile `json:"reward_analysis"`
	Rating       Rating        `json:"rating"`
}

// DailyResponse represents the Alpha Vantage TIME_SERIES_DAILY payload
type DailyResponse struct {
	Meta struct {
		Symbol        string `json:"2. Symbol"`
		LastRefreshed string `json:"3. Last Refreshed"`
	} `json:"Meta Data"`
	Series map[string]struct {
		Open   float64 `json:"1. open,string"`
		High   float64 `json:"2. high,string"`
		Low    float64 `json:"3. low,string"`
		Close  float64 `json:"4. close,string"`
		Volume int64   `json:"5. volume,string"`
	} `json:"Time Series (Daily)"`
	ErrorMessage string `json:"Error Message,omitempty"`
	Note         string `json:"Note,omitempty"`
}

// SymbolMatch is one entry of an Alpha Vantage SYMBOL_SEARCH response
type SymbolMatch struct {
	Symbol   string `json:"1. symbol"`
	Name     string `json:"2. name"`
	Type     string `json:"3. type"`
	Region   string `json:"4. region"`
	Currency string `json:"8. currency"`
}

// SearchResponse represents the Alpha Vantage SYMBOL_SEARCH payload
type SearchResponse struct {
	BestMatches  []SymbolMatch `json:"bestMatches"`
	ErrorMessage string        `json:"Error Message,omitempty"`
	Note         string        `json:"Note,omitempty"`
}
