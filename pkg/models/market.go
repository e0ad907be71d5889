package models

import "sort"

// MarketType selects which CoinEx market a request targets.
type MarketType string

const (
	Spot    MarketType = "spot"
	Futures MarketType = "futures"
)

// MarketVol is one 24h ticker snapshot, reduced to the fields the
// screener cares about. Immutable once built.
type MarketVol struct {
	Symbol     string // unified symbol, e.g. "BTC/USDT" or "BTC/USDT:USDT"
	Base       string
	Quote      string
	Last       float64
	Open       float64
	Percentage float64 // exchange-native 24h change, 0 when not reported
	BaseVol    float64
	QuoteVol   float64
	Vwap       float64
}

// Book maps base asset code to the best (highest USD notional) ticker
// for one market type. Rebuilt on every screening run.
type Book map[string]MarketVol

// Candle is one OHLCV bar.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// CurrencySet is a membership set of asset codes (stables, exclusions).
type CurrencySet map[string]struct{}

func NewCurrencySet(codes ...string) CurrencySet {
	set := make(CurrencySet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

func (s CurrencySet) Contains(code string) bool {
	if s == nil {
		return false
	}
	_, ok := s[code]
	return ok
}

func (s CurrencySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// AssetEntry is one rendered screener row.
type AssetEntry struct {
	Base       string
	FuturesUSD float64
	SpotUSD    float64
	Pct24h     float64
	Pct4h      float64
}

// Tier is an ordered, capped bucket of screener rows.
type Tier []AssetEntry
