package screener

import (
	"context"

	"coinex-screener-bot/pkg/models"
)

const (
	pct4hTimeframe = "1h"
	pct4hWindow    = 5
)

// PctChange estimates the 24h percent change for a base asset from its
// spot and futures records. A nonzero exchange-native figure wins;
// otherwise it is derived from open/last on whichever side has a
// positive open. Either record may be nil.
func PctChange(spot, fut *models.MarketVol) float64 {
	for _, mv := range []*models.MarketVol{spot, fut} {
		if mv != nil && mv.Percentage != 0 {
			return mv.Percentage
		}
	}
	mv := spot
	if mv == nil {
		mv = fut
	}
	if mv != nil && mv.Open > 0 && mv.Last != 0 {
		return (mv.Last - mv.Open) / mv.Open * 100
	}
	return 0
}

// fourHourPct computes percent change over a trailing 4h window of
// hourly futures candles. Results are memoized for the lifetime of the
// run; a failed or short fetch degrades to 0 and is recorded as a
// diagnostic, never an error.
func (r *Run) fourHourPct(ctx context.Context, futSymbol string) float64 {
	if pct, ok := r.pct4hCache[futSymbol]; ok {
		return pct
	}

	pct := 0.0
	candles, err := r.source.FetchCandles(ctx, models.Futures, futSymbol, pct4hTimeframe, pct4hWindow)
	if err != nil {
		r.logger.WithError(err).WithField("symbol", futSymbol).Warn("4h candle fetch failed")
		r.recordError(err)
	} else {
		pct = pctFromCloses(candles)
	}

	r.pct4hCache[futSymbol] = pct
	return pct
}

// pctFromCloses compares the newest close with the close 4 bars back,
// falling back to the earliest close when the window is short. Fewer
// than 2 bars, or a zero reference close, yields 0.
func pctFromCloses(candles []models.Candle) float64 {
	if len(candles) < 2 {
		return 0
	}
	closeNow := candles[len(candles)-1].Close
	ref := candles[0].Close
	if len(candles) >= pct4hWindow {
		ref = candles[len(candles)-pct4hWindow].Close
	}
	if ref == 0 {
		return 0
	}
	return (closeNow - ref) / ref * 100
}
