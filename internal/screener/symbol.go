package screener

import "strings"

// SplitSymbol extracts base and quote codes from a unified symbol such
// as "BTC/USDT" or "BTC/USDT:USDT". A settlement suffix is stripped
// first. Malformed input reports ok=false so callers can skip the
// record instead of failing the run.
func SplitSymbol(symbol string) (base, quote string, ok bool) {
	if symbol == "" {
		return "", "", false
	}
	pair, _, _ := strings.Cut(symbol, ":")
	base, quote, found := strings.Cut(pair, "/")
	if !found || base == "" || quote == "" {
		return "", "", false
	}
	if strings.Contains(quote, "/") {
		return "", "", false
	}
	return base, quote, true
}
