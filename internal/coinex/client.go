package coinex

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"coinex-screener-bot/internal/utils"
	"coinex-screener-bot/pkg/models"
)

const BaseURL = "https://api.coinex.com"

// marketsTTL bounds how long the market metadata (base/quote codes per
// native market name) is reused before a refetch.
const marketsTTL = 30 * time.Minute

var klinePeriods = map[string]string{
	"1m":  "1min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"1h":  "1hour",
	"4h":  "4hour",
	"1d":  "1day",
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the CoinEx v2 public REST API. It joins market
// metadata with tickers so callers see unified "BASE/QUOTE" symbols
// (futures get the ":SETTLE" suffix) instead of native market names.
type Client struct {
	client      *resty.Client
	logger      *logrus.Logger
	rateLimiter *RateLimiter

	mu        sync.Mutex
	markets   map[models.MarketType]map[string]Market
	fetchedAt map[models.MarketType]time.Time
}

func NewClient(config Config, logger *logrus.Logger) *Client {
	client := resty.New()

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(1 * time.Second)

	return &Client{
		client:      client,
		logger:      logger,
		rateLimiter: NewRateLimiter(20),
		markets:     make(map[models.MarketType]map[string]Market),
		fetchedAt:   make(map[models.MarketType]time.Time),
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	c.rateLimiter.Wait()

	req := c.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", endpoint, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(resp.Body(), &apiResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Code != 0 {
		return fmt.Errorf("API error %d: %s", apiResp.Code, apiResp.Message)
	}

	if err := json.Unmarshal(apiResp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

func marketPath(market models.MarketType) string {
	if market == models.Futures {
		return "futures"
	}
	return "spot"
}

// loadMarkets returns the metadata map for one market type, refetching
// when the cached copy is older than marketsTTL.
func (c *Client) loadMarkets(ctx context.Context, market models.MarketType) (map[string]Market, error) {
	c.mu.Lock()
	cached, ok := c.markets[market]
	fresh := ok && time.Since(c.fetchedAt[market]) < marketsTTL
	c.mu.Unlock()

	if fresh {
		return cached, nil
	}

	endpoint := fmt.Sprintf("/v2/%s/market", marketPath(market))

	var list []Market
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		if ok {
			// Stale metadata beats no metadata.
			c.logger.WithError(err).Warn("Market metadata refresh failed, reusing stale copy")
			return cached, nil
		}
		return nil, fmt.Errorf("failed to fetch markets: %w", err)
	}

	byName := make(map[string]Market, len(list))
	for _, m := range list {
		byName[m.Market] = m
	}

	c.mu.Lock()
	c.markets[market] = byName
	c.fetchedAt[market] = time.Now()
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"market_type": market,
		"markets":     len(byName),
	}).Debug("Market metadata loaded")

	return byName, nil
}

// FetchTickers returns one MarketVol per tradable market. Tickers whose
// market metadata is missing are dropped, not errored.
func (c *Client) FetchTickers(ctx context.Context, market models.MarketType) ([]models.MarketVol, error) {
	meta, err := c.loadMarkets(ctx, market)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/v2/%s/ticker", marketPath(market))

	var tickers []Ticker
	if err := c.get(ctx, endpoint, nil, &tickers); err != nil {
		return nil, fmt.Errorf("failed to fetch tickers: %w", err)
	}

	out := make([]models.MarketVol, 0, len(tickers))
	skipped := 0
	for _, t := range tickers {
		m, ok := meta[t.Market]
		if !ok || m.BaseCcy == "" || m.QuoteCcy == "" {
			skipped++
			continue
		}
		out = append(out, toMarketVol(t, m, market))
	}

	c.logger.WithFields(logrus.Fields{
		"market_type": market,
		"tickers":     len(out),
		"skipped":     skipped,
	}).Info("Fetched tickers")

	return out, nil
}

// FetchCandles returns the trailing window of klines for one unified
// symbol, oldest first (CoinEx already orders them ascending).
func (c *Client) FetchCandles(ctx context.Context, market models.MarketType, symbol, timeframe string, limit int) ([]models.Candle, error) {
	period, ok := klinePeriods[timeframe]
	if !ok {
		return nil, fmt.Errorf("unsupported timeframe %q", timeframe)
	}

	endpoint := fmt.Sprintf("/v2/%s/kline", marketPath(market))
	params := map[string]string{
		"market": nativeMarket(symbol),
		"period": period,
		"limit":  fmt.Sprintf("%d", limit),
	}

	var klines []Kline
	if err := c.get(ctx, endpoint, params, &klines); err != nil {
		return nil, fmt.Errorf("failed to fetch klines: %w", err)
	}

	candles := make([]models.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, models.Candle{
			Timestamp: k.CreatedAt,
			Open:      utils.ParseFloatOrZero(k.Open),
			High:      utils.ParseFloatOrZero(k.High),
			Low:       utils.ParseFloatOrZero(k.Low),
			Close:     utils.ParseFloatOrZero(k.Close),
			Volume:    utils.ParseFloatOrZero(k.Volume),
		})
	}

	return candles, nil
}

// toMarketVol joins one ticker with its market metadata. The unified
// symbol carries a ":SETTLE" suffix for linear futures, mirroring how
// downstream symbol parsing expects perpetual symbols to look.
func toMarketVol(t Ticker, m Market, market models.MarketType) models.MarketVol {
	symbol := m.BaseCcy + "/" + m.QuoteCcy
	if market == models.Futures {
		settle := m.QuoteCcy
		if m.ContractType == "inverse" {
			settle = m.BaseCcy
		}
		symbol += ":" + settle
	}

	last := utils.ParseFloatOrZero(t.Last)
	if last == 0 {
		last = utils.ParseFloatOrZero(t.Close)
	}
	baseVol := utils.ParseFloatOrZero(t.Volume)
	quoteVol := utils.ParseFloatOrZero(t.Value)

	// CoinEx reports no vwap; derive it from turnover when possible.
	vwap := 0.0
	if baseVol > 0 && quoteVol > 0 {
		vwap = quoteVol / baseVol
	}

	return models.MarketVol{
		Symbol:   symbol,
		Base:     m.BaseCcy,
		Quote:    m.QuoteCcy,
		Last:     last,
		Open:     utils.ParseFloatOrZero(t.Open),
		BaseVol:  baseVol,
		QuoteVol: quoteVol,
		Vwap:     vwap,
	}
}

// nativeMarket converts a unified symbol back to the CoinEx market name:
// "PYTH/USDT:USDT" -> "PYTHUSDT".
func nativeMarket(symbol string) string {
	pair, _, _ := strings.Cut(symbol, ":")
	return strings.ReplaceAll(pair, "/", "")
}
