package utils

import (
	"math"
	"strconv"
)

// ParseFloat parses an exchange string field. Empty strings decode to 0,
// which is how CoinEx reports missing numbers.
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseFloatOrZero is ParseFloat with the error collapsed to 0. Used on
// per-record paths where a bad field drops the record, never the run.
func ParseFloatOrZero(s string) float64 {
	v, err := ParseFloat(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RoundMillions renders a USD figure as whole millions.
func RoundMillions(usd float64) string {
	return strconv.Itoa(int(math.Round(usd / 1_000_000)))
}
