package render

import (
	"strconv"
)

// USDShort renders a USD amount compactly for titles: $5M, $500k, $750.
func USDShort(usd float64) string {
	switch {
	case usd >= 1_000_000:
		return "$" + trimZeros(usd/1_000_000) + "M"
	case usd >= 1_000:
		return "$" + trimZeros(usd/1_000) + "k"
	default:
		return "$" + trimZeros(usd)
	}
}

func trimZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
