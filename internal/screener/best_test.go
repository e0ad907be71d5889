package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinex-screener-bot/pkg/models"
)

func usdtTicker(base string, quoteVol float64) models.MarketVol {
	return models.MarketVol{
		Symbol:   base + "/USDT",
		Last:     1,
		BaseVol:  quoteVol,
		QuoteVol: quoteVol,
		Vwap:     1,
	}
}

func TestBuildBest_KeepsHighestNotionalPerBase(t *testing.T) {
	t.Parallel()

	tickers := []models.MarketVol{
		usdtTicker("PYTH", 1_000_000),
		usdtTicker("PYTH", 4_000_000),
		usdtTicker("PYTH", 2_000_000),
		usdtTicker("ARB", 300_000),
	}

	best := BuildBest(tickers, BestOptions{Stables: testStables})

	require.Len(t, best, 2)
	assert.Equal(t, 4_000_000.0, USDNotional(best["PYTH"], testStables))

	// Property: the survivor's notional dominates every same-base candidate.
	for _, mv := range tickers {
		base, _, ok := SplitSymbol(mv.Symbol)
		require.True(t, ok)
		kept, exists := best[base]
		require.True(t, exists)
		assert.GreaterOrEqual(t,
			USDNotional(kept, testStables), USDNotional(mv, testStables))
	}
}

func TestBuildBest_TieKeepsIncumbent(t *testing.T) {
	t.Parallel()

	first := usdtTicker("PYTH", 1_000_000)
	first.Symbol = "PYTH/USDT"
	second := usdtTicker("PYTH", 1_000_000)
	second.Symbol = "PYTH/USDC"
	second.Quote = "USDC"

	best := BuildBest([]models.MarketVol{first, second}, BestOptions{Stables: testStables})

	require.Contains(t, best, "PYTH")
	// Replacement requires strictly greater notional, so the first
	// record seen wins the tie.
	assert.Equal(t, "PYTH/USDT", best["PYTH"].Symbol)
}

func TestBuildBest_SkipsUnparseableSymbols(t *testing.T) {
	t.Parallel()

	tickers := []models.MarketVol{
		{Symbol: "garbage", QuoteVol: 9_999_999},
		{Symbol: "", QuoteVol: 9_999_999},
		usdtTicker("OP", 100),
	}

	best := BuildBest(tickers, BestOptions{Stables: testStables})

	assert.Len(t, best, 1)
	assert.Contains(t, best, "OP")
}

func TestBuildBest_RequireStableQuote(t *testing.T) {
	t.Parallel()

	btcQuoted := models.MarketVol{Symbol: "OP/BTC", BaseVol: 1_000, Vwap: 50_000}
	tickers := []models.MarketVol{btcQuoted, usdtTicker("ARB", 500)}

	best := BuildBest(tickers, BestOptions{Stables: testStables, RequireStableQuote: true})
	assert.NotContains(t, best, "OP")
	assert.Contains(t, best, "ARB")

	// Without the requirement the BTC-quoted market survives, valued in USD.
	best = BuildBest(tickers, BestOptions{Stables: testStables})
	assert.Contains(t, best, "OP")
}

func TestBuildBest_AppliesExclusionsAndFloor(t *testing.T) {
	t.Parallel()

	tickers := []models.MarketVol{
		usdtTicker("BTC", 900_000_000),
		usdtTicker("PYTH", 4_000_000),
		usdtTicker("DUST", 50),
	}

	best := BuildBest(tickers, BestOptions{
		Stables:        testStables,
		Excludes:       models.NewCurrencySet("BTC"),
		MinNotionalUSD: 1_000,
	})

	assert.NotContains(t, best, "BTC")
	assert.NotContains(t, best, "DUST")
	assert.Contains(t, best, "PYTH")
}

func TestBuildBest_RederivesBaseAndQuoteFromSymbol(t *testing.T) {
	t.Parallel()

	// Base/Quote fields arriving from the source are not trusted; the
	// unified symbol is authoritative.
	mv := usdtTicker("PYTH", 100)
	mv.Base = "WRONG"
	mv.Quote = "ALSOWRONG"

	best := BuildBest([]models.MarketVol{mv}, BestOptions{Stables: testStables})

	require.Contains(t, best, "PYTH")
	assert.Equal(t, "USDT", best["PYTH"].Quote)
}
