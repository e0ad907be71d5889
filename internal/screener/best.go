package screener

import "coinex-screener-bot/pkg/models"

// BestOptions controls which tickers survive best-record selection.
type BestOptions struct {
	Stables  models.CurrencySet
	Excludes models.CurrencySet

	// RequireStableQuote drops markets whose quote is not a recognized
	// USD proxy. The spot pass uses this; futures keep all quotes.
	RequireStableQuote bool

	// MinNotionalUSD drops records below a USD floor before selection.
	MinNotionalUSD float64
}

// BuildBest reduces a ticker batch to the single highest-notional
// record per base asset. Base and quote are re-derived from the unified
// symbol; records that fail to parse or fail a filter are silently
// omitted. An incumbent is replaced only when the candidate's notional
// is strictly greater, so ties resolve to the earliest record.
func BuildBest(tickers []models.MarketVol, opts BestOptions) models.Book {
	best := make(models.Book)
	for _, mv := range tickers {
		base, quote, ok := SplitSymbol(mv.Symbol)
		if !ok {
			continue
		}
		mv.Base, mv.Quote = base, quote

		if opts.RequireStableQuote && !opts.Stables.Contains(mv.Quote) {
			continue
		}
		if opts.Excludes.Contains(mv.Base) {
			continue
		}

		notional := USDNotional(mv, opts.Stables)
		if notional < opts.MinNotionalUSD {
			continue
		}

		prev, exists := best[mv.Base]
		if !exists || notional > USDNotional(prev, opts.Stables) {
			best[mv.Base] = mv
		}
	}
	return best
}
