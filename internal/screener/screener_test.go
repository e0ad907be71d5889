package screener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/pkg/models"
)

func newTestScreener(source *MockSource) *Screener {
	cfg := &config.Config{
		Thresholds: testThresholds,
		Stables:    testStables,
		Excludes:   models.NewCurrencySet("BTC"),
	}
	return New(source, cfg, newTestLogger())
}

func rawSpot(base string, quoteVol float64) models.MarketVol {
	return models.MarketVol{Symbol: base + "/USDT", Last: 1, QuoteVol: quoteVol, BaseVol: quoteVol, Vwap: 1}
}

func rawFut(base string, quoteVol float64) models.MarketVol {
	return models.MarketVol{Symbol: base + "/USDT:USDT", Last: 1, QuoteVol: quoteVol, BaseVol: quoteVol, Vwap: 1}
}

func TestScreen_EndToEnd(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	source.On("FetchTickers", mock.Anything, models.Spot).Return([]models.MarketVol{
		rawSpot("PYTH", 4_000_000),
		rawSpot("BTC", 900_000_000),   // excluded
		{Symbol: "junk", QuoteVol: 1}, // unparseable, skipped
	}, nil).Once()
	source.On("FetchTickers", mock.Anything, models.Futures).Return([]models.MarketVol{
		rawFut("PYTH", 6_000_000),
		rawFut("BTC", 900_000_000),
	}, nil).Once()
	stubAllCandles(source)

	scr := newTestScreener(source)
	res := scr.Screen(context.Background(), Options{})

	require.Len(t, res.P1, 1)
	assert.Equal(t, "PYTH", res.P1[0].Base)
	assert.Equal(t, 3, res.RawSpot)
	assert.Equal(t, 2, res.RawFutures)
	assert.NotEmpty(t, res.RunID)

	d := scr.Diagnostics()
	assert.Equal(t, res.RunID, d.LastRunID)
	assert.Empty(t, d.LastError)
	assert.Equal(t, 1, d.KeptSpot)
	assert.Equal(t, 1, d.KeptFutures)

	source.AssertExpectations(t)
}

func TestScreen_FetchFailureDegradesToEmptyTiers(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	source.On("FetchTickers", mock.Anything, models.Spot).
		Return(nil, errors.New("network down"))
	source.On("FetchTickers", mock.Anything, models.Futures).
		Return(nil, errors.New("network down"))

	scr := newTestScreener(source)
	res := scr.Screen(context.Background(), Options{})

	assert.Empty(t, res.P1)
	assert.Empty(t, res.P2)
	assert.Empty(t, res.P3)
	assert.Contains(t, scr.Diagnostics().LastError, "network down")
}

func TestScreen_ThresholdOverrides(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	source.On("FetchTickers", mock.Anything, models.Spot).
		Return([]models.MarketVol{rawSpot("PYTH", 4_000_000)}, nil)
	source.On("FetchTickers", mock.Anything, models.Futures).
		Return([]models.MarketVol{rawFut("PYTH", 6_000_000)}, nil)
	stubAllCandles(source)

	th := testThresholds
	th.P1FutMin = 10_000_000 // above PYTH's futures volume

	scr := newTestScreener(source)
	res := scr.Screen(context.Background(), Options{Overrides: &th})

	assert.Empty(t, res.P1)
	require.Len(t, res.P2, 1)
	assert.Equal(t, "PYTH", res.P2[0].Base)
}

func TestLookup_IgnoresExclusions(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	source.On("FetchTickers", mock.Anything, models.Spot).
		Return([]models.MarketVol{rawSpot("BTC", 900_000_000)}, nil)
	source.On("FetchTickers", mock.Anything, models.Futures).
		Return([]models.MarketVol{rawFut("BTC", 950_000_000)}, nil)
	stubAllCandles(source)

	scr := newTestScreener(source)
	entry, found := scr.Lookup(context.Background(), "BTC")

	require.True(t, found)
	assert.Equal(t, 950_000_000.0, entry.FuturesUSD)
	assert.Equal(t, 900_000_000.0, entry.SpotUSD)
}

func TestLookup_UnknownBase(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	source.On("FetchTickers", mock.Anything, models.Spot).
		Return([]models.MarketVol{}, nil)
	source.On("FetchTickers", mock.Anything, models.Futures).
		Return([]models.MarketVol{}, nil)

	scr := newTestScreener(source)
	_, found := scr.Lookup(context.Background(), "NOPE")

	assert.False(t, found)
}
