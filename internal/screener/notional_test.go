package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coinex-screener-bot/pkg/models"
)

var testStables = models.NewCurrencySet("USD", "USDT", "USDC")

func TestUSDNotional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mv   models.MarketVol
		want float64
	}{
		{
			name: "stable quote uses quote volume directly",
			mv:   models.MarketVol{Quote: "USDT", QuoteVol: 1_234_567, BaseVol: 999, Vwap: 2},
			want: 1_234_567,
		},
		{
			name: "non-stable quote uses base volume times vwap",
			mv:   models.MarketVol{Quote: "BTC", QuoteVol: 50, BaseVol: 100, Vwap: 7, Last: 9},
			want: 700,
		},
		{
			name: "zero vwap falls back to last price",
			mv:   models.MarketVol{Quote: "USDT", QuoteVol: 0, BaseVol: 100, Vwap: 0, Last: 5},
			want: 500,
		},
		{
			name: "stable quote with zero quote volume falls back to base leg",
			mv:   models.MarketVol{Quote: "USDT", QuoteVol: 0, BaseVol: 10, Last: 3},
			want: 30,
		},
		{
			name: "no volume yields zero",
			mv:   models.MarketVol{Quote: "BTC", BaseVol: 0, Last: 5},
			want: 0,
		},
		{
			name: "no usable price yields zero",
			mv:   models.MarketVol{Quote: "BTC", BaseVol: 100},
			want: 0,
		},
		{
			name: "negative fields guarded to zero",
			mv:   models.MarketVol{Quote: "BTC", BaseVol: -100, Vwap: -3, Last: -5},
			want: 0,
		},
		{
			name: "zero value is total, not an error",
			mv:   models.MarketVol{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := USDNotional(tt.mv, testStables)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}
