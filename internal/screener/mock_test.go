package screener

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"coinex-screener-bot/pkg/models"
)

// MockSource is a testify mock of exchange.MarketDataSource.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) FetchTickers(ctx context.Context, market models.MarketType) ([]models.MarketVol, error) {
	args := m.Called(ctx, market)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarketVol), args.Error(1)
}

func (m *MockSource) FetchCandles(ctx context.Context, market models.MarketType, symbol, timeframe string, limit int) ([]models.Candle, error) {
	args := m.Called(ctx, market, symbol, timeframe, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candle), args.Error(1)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestRun(t *testing.T, source *MockSource) *Run {
	t.Helper()
	return &Run{
		source:     source,
		logger:     newTestLogger(),
		stables:    testStables,
		id:         "test-run",
		pct4hCache: make(map[string]float64),
	}
}

func closesToCandles(closes []float64) []models.Candle {
	candles := make([]models.Candle, len(closes))
	for i, c := range closes {
		candles[i] = models.Candle{Timestamp: int64(i), Close: c}
	}
	return candles
}
