package screener

import "coinex-screener-bot/pkg/models"

// USDNotional converts a ticker's 24h traded volume into USD terms.
// A stable-quoted market reports its quote volume directly; anything
// else is approximated as base volume times a reference price (vwap
// when positive, last trade otherwise). Returns 0 when neither volume
// nor price is usable.
func USDNotional(mv models.MarketVol, stables models.CurrencySet) float64 {
	if stables.Contains(mv.Quote) && mv.QuoteVol > 0 {
		return mv.QuoteVol
	}
	price := mv.Vwap
	if price <= 0 {
		price = mv.Last
	}
	if price <= 0 || mv.BaseVol <= 0 {
		return 0
	}
	return mv.BaseVol * price
}
