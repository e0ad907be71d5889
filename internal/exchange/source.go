package exchange

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"coinex-screener-bot/internal/coinex"
	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/pkg/models"
)

// MarketDataSource is the capability the screener needs from an
// exchange: batch ticker snapshots and short candle windows.
type MarketDataSource interface {
	FetchTickers(ctx context.Context, market models.MarketType) ([]models.MarketVol, error)
	FetchCandles(ctx context.Context, market models.MarketType, symbol, timeframe string, limit int) ([]models.Candle, error)
}

// New builds the data source selected by cfg.ExchangeID.
func New(cfg *config.Config, logger *logrus.Logger) (MarketDataSource, error) {
	switch cfg.ExchangeID {
	case "coinex":
		return coinex.NewClient(coinex.Config{Timeout: cfg.HTTPTimeout}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported exchange %q", cfg.ExchangeID)
	}
}
