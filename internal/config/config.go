package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"coinex-screener-bot/pkg/models"
)

// Thresholds are the per-tier USD floors and row caps.
type Thresholds struct {
	P1SpotMin float64
	P1FutMin  float64
	P2FutMin  float64
	P3SpotMin float64

	TopP1 int
	TopP2 int
	TopP3 int
}

type Config struct {
	TelegramToken string
	ExchangeID    string

	Thresholds Thresholds

	// Stables are quote assets treated as USD proxies; Excludes are base
	// assets kept out of the tier lists (ticker lookup ignores them).
	Stables  models.CurrencySet
	Excludes models.CurrencySet

	HTTPTimeout    time.Duration
	MetricsPort    string
	ScreenSchedule string // cron spec for the auto-screen push, empty disables
}

func Load() *Config {
	return &Config{
		TelegramToken: getEnv("TELEGRAM_TOKEN", ""),
		ExchangeID:    strings.ToLower(getEnv("EXCHANGE_ID", "coinex")),
		Thresholds: Thresholds{
			P1SpotMin: getEnvFloat("P1_SPOT_MIN_USD", 500_000),
			P1FutMin:  getEnvFloat("P1_FUT_MIN_USD", 5_000_000),
			P2FutMin:  getEnvFloat("P2_FUT_MIN_USD", 2_000_000),
			P3SpotMin: getEnvFloat("P3_SPOT_MIN_USD", 3_000_000),
			TopP1:     getEnvInt("TOP_N_P1", 10),
			TopP2:     getEnvInt("TOP_N_P2", 5),
			TopP3:     getEnvInt("TOP_N_P3", 5),
		},
		Stables: getEnvSet("STABLE_QUOTES",
			"USD", "USDT", "USDC", "TUSD", "FDUSD", "USDD", "USDE", "DAI", "PYUSD"),
		Excludes: getEnvSet("EXCLUDE_BASES",
			"BTC", "ETH", "XRP", "SOL", "DOGE", "ADA", "PEPE", "LINK"),
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
		MetricsPort:    getEnv("METRICS_PORT", "8080"),
		ScreenSchedule: getEnv("SCREEN_CRON", "0 0 */4 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvSet reads a comma-separated list of asset codes, upper-cased.
func getEnvSet(key string, defaultCodes ...string) models.CurrencySet {
	if value := os.Getenv(key); value != "" {
		var codes []string
		for _, c := range strings.Split(value, ",") {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				codes = append(codes, c)
			}
		}
		return models.NewCurrencySet(codes...)
	}
	return models.NewCurrencySet(defaultCodes...)
}
