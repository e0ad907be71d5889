package screener

import (
	"context"
	"sort"

	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/pkg/models"
)

// buildTiers partitions the best-record books into the three priority
// tiers. Classification is single-pass and first-match: a base assigned
// to an earlier tier is never reconsidered, and rows cut by a cap are
// dropped rather than deferred to a later tier.
func (r *Run) buildTiers(ctx context.Context, spot, fut models.Book, th config.Thresholds, excludes models.CurrencySet) (p1, p2, p3 models.Tier) {
	used := make(map[string]struct{})

	// P1: liquid on both books.
	var p1Full models.Tier
	for base, f := range fut {
		s, ok := spot[base]
		if !ok || excludes.Contains(base) {
			continue
		}
		futUSD := USDNotional(f, r.stables)
		spotUSD := USDNotional(s, r.stables)
		if futUSD >= th.P1FutMin && spotUSD >= th.P1SpotMin {
			p1Full = append(p1Full, models.AssetEntry{
				Base:       base,
				FuturesUSD: futUSD,
				SpotUSD:    spotUSD,
				Pct24h:     PctChange(&s, &f),
				Pct4h:      r.fourHourPct(ctx, f.Symbol),
			})
		}
	}
	p1 = capTier(p1Full, byFutures, th.TopP1)
	markUsed(used, p1)

	// P2: futures-only liquidity; spot looked up opportunistically.
	var p2Full models.Tier
	for base, f := range fut {
		if _, taken := used[base]; taken || excludes.Contains(base) {
			continue
		}
		futUSD := USDNotional(f, r.stables)
		if futUSD < th.P2FutMin {
			continue
		}
		var spotPtr *models.MarketVol
		spotUSD := 0.0
		if s, ok := spot[base]; ok {
			spotUSD = USDNotional(s, r.stables)
			spotPtr = &s
		}
		p2Full = append(p2Full, models.AssetEntry{
			Base:       base,
			FuturesUSD: futUSD,
			SpotUSD:    spotUSD,
			Pct24h:     PctChange(spotPtr, &f),
			Pct4h:      r.fourHourPct(ctx, f.Symbol),
		})
	}
	p2 = capTier(p2Full, byFutures, th.TopP2)
	markUsed(used, p2)

	// P3: spot-only liquidity; futures looked up opportunistically.
	var p3Full models.Tier
	for base, s := range spot {
		if _, taken := used[base]; taken || excludes.Contains(base) {
			continue
		}
		spotUSD := USDNotional(s, r.stables)
		if spotUSD < th.P3SpotMin {
			continue
		}
		var futPtr *models.MarketVol
		futUSD, pct4h := 0.0, 0.0
		if f, ok := fut[base]; ok {
			futUSD = USDNotional(f, r.stables)
			futPtr = &f
			pct4h = r.fourHourPct(ctx, f.Symbol)
		}
		p3Full = append(p3Full, models.AssetEntry{
			Base:       base,
			FuturesUSD: futUSD,
			SpotUSD:    spotUSD,
			Pct24h:     PctChange(&s, futPtr),
			Pct4h:      pct4h,
		})
	}
	p3 = capTier(p3Full, bySpot, th.TopP3)

	return p1, p2, p3
}

func byFutures(e models.AssetEntry) float64 { return e.FuturesUSD }
func bySpot(e models.AssetEntry) float64    { return e.SpotUSD }

// capTier sorts descending by the ranking key and truncates to n rows.
// Equal keys fall back to the base code so ordering is deterministic.
func capTier(tier models.Tier, key func(models.AssetEntry) float64, n int) models.Tier {
	sort.Slice(tier, func(i, j int) bool {
		ki, kj := key(tier[i]), key(tier[j])
		if ki != kj {
			return ki > kj
		}
		return tier[i].Base < tier[j].Base
	})
	if n >= 0 && len(tier) > n {
		tier = tier[:n]
	}
	return tier
}

func markUsed(used map[string]struct{}, tier models.Tier) {
	for _, e := range tier {
		used[e.Base] = struct{}{}
	}
}
