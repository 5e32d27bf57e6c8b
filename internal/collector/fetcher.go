package collector

import (
	"context"
	"time"

	"CoinSentinel/internal/model"
)

// CandleSource supplies ordered OHLCV series for a symbol and timeframe.
// Implementations return an error on network/exchange failure; an empty
// result is treated as unavailable by the caller.
type CandleSource interface {
	FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]model.Candle, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Candles map[string][]model.Candle // keyed by timeframe; nil falls back to synthetic bars
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(_ context.Context, _ string, timeframe string, limit int) ([]model.Candle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Candles[timeframe]; ok {
		return bars, nil
	}
	return GenerateBars(m.Price, limit), nil
}

// GenerateBars builds a mildly uptrending synthetic series around basePrice.
func GenerateBars(basePrice float64, count int) []model.Candle {
	bars := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Candle{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
