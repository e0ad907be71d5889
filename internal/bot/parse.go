package bot

import (
	"regexp"
	"strconv"
	"strings"

	"coinex-screener-bot/internal/config"
)

var (
	spotOverrideRe = regexp.MustCompile(`spot=(\d+(?:\.\d+)?)`)
	futOverrideRe  = regexp.MustCompile(`fut=(\d+(?:\.\d+)?)`)
	tickerTokenRe  = regexp.MustCompile(`[A-Za-z$]{2,10}`)
)

// ParseThresholds applies "spot=N" / "fut=N" overrides from command
// arguments to the P1 floors. Unrecognized arguments are ignored.
func ParseThresholds(args []string, base config.Thresholds) config.Thresholds {
	text := strings.Join(args, " ")
	th := base
	if m := spotOverrideRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			th.P1SpotMin = v
		}
	}
	if m := futOverrideRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			th.P1FutMin = v
		}
	}
	return th
}

// NormalizeTicker extracts a base asset code from free chat text:
// first alphabetic token, upper-cased, "$" prefix and stray punctuation
// stripped, 2-10 characters.
func NormalizeTicker(text string) (string, bool) {
	token := tickerTokenRe.FindString(strings.TrimSpace(text))
	if token == "" {
		return "", false
	}
	token = strings.TrimLeft(strings.ToUpper(token), "$")
	token = strings.NewReplacer(".", "", ",", "").Replace(token)
	if len(token) < 2 || len(token) > 10 {
		return "", false
	}
	return token, true
}
