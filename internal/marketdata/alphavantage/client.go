// Package alphavantage is the data-access collaborator: it fetches daily
// price series and symbol matches from the Alpha Vantage API and hands them
// to the analysis core as plain candle slices.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"stockanalyzer/models"
)

// ErrRateLimited is returned when the provider answers with its throttling
// note instead of data.
var ErrRateLimited = errors.New("alpha vantage rate limit exceeded")

// ProviderError carries an error message returned by the provider itself,
// e.g. for an unknown symbol.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("alpha vantage: %s", e.Message)
}

// Client is the Alpha Vantage API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new client
type ClientOptions struct {
	APIKey         string
	BaseURL        string // defaults to the public endpoint
	RequestTimeout time.Duration
	RequestsPerMin int
}

// NewClient creates a new Alpha Vantage API client with rate limiting
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://www.alphavantage.co/query"
	}
	if options.RequestTimeout == 0 {
		options.RequestTimeout = 30 * time.Second
	}
	if options.RequestsPerMin == 0 {
		options.RequestsPerMin = 5 // free-tier limit
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpClient: &http.Client{
			Timeout: options.RequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(options.RequestsPerMin)), options.RequestsPerMin),
		logger:  log.With().Str("component", "alphavantage_client").Logger(),
	}
}

// GetDailySeries fetches the daily price series for a symbol, oldest bar
// first. The returned symbol is the provider's canonical spelling.
func (c *Client) GetDailySeries(ctx context.Context, symbol string) (string, []models.Candle, error) {
	body, err := c.get(ctx, url.Values{
		"function": {"TIME_SERIES_DAILY"},
		"symbol":   {symbol},
	})
	if err != nil {
		return "", nil, err
	}

	var data models.DailyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return "", nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if data.ErrorMessage != "" {
		return "", nil, &ProviderError{Message: data.ErrorMessage}
	}
	if data.Note != "" {
		return "", nil, ErrRateLimited
	}
	if len(data.Series) == 0 {
		c.logger.Warn().Str("symbol", symbol).Msg("No time series in response")
		return "", nil, &ProviderError{Message: "no time series data available"}
	}

	candles := make([]models.Candle, 0, len(data.Series))
	for datetime, bar := range data.Series {
		candles = append(candles, models.Candle{
			Datetime: datetime,
			Open:     bar.Open,
			High:     bar.High,
			Low:      bar.Low,
			Close:    bar.Close,
			Volume:   bar.Volume,
		})
	}

	// The provider keys bars by date; sort oldest first for the calculators
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Datetime < candles[j].Datetime
	})

	c.logger.Debug().Str("symbol", data.Meta.Symbol).Int("count", len(candles)).Msg("Fetched daily series")
	return data.Meta.Symbol, candles, nil
}

// SearchSymbols looks up tradable symbols matching the given keywords
func (c *Client) SearchSymbols(ctx context.Context, keywords string) ([]models.SymbolMatch, error) {
	body, err := c.get(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {keywords},
	})
	if err != nil {
		return nil, err
	}

	var data models.SearchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if data.ErrorMessage != "" {
		return nil, &ProviderError{Message: data.ErrorMessage}
	}
	if data.Note != "" {
		return nil, ErrRateLimited
	}

	c.logger.Debug().Str("keywords", keywords).Int("matches", len(data.BestMatches)).Msg("Symbol search done")
	return data.BestMatches, nil
}

// get performs a rate-limited GET with exponential backoff on transport
// failures and non-200 responses.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var resp *http.Response
	operation := func() error {
		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("non-200 status code: %d", resp.StatusCode)
		}
		return nil
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoffStrategy, ctx)); err != nil {
		return nil, fmt.Errorf("after retries: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
