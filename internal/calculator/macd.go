package calculator

import (
	"errors"

	"CoinSentinel/internal/model"
)

// MACD computes the MACD line (fast EMA minus slow EMA), its signal line
// (signalPeriod EMA of the MACD series) and the histogram for the last
// candle. The signal line is an EMA over the full MACD series, not an
// approximation, so histogram == MACD - signal holds exactly.
func MACD(bars []model.Candle, fast, slow, signalPeriod int) (*model.MACDValues, error) {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return nil, errors.New("periods must be positive")
	}
	if fast >= slow {
		return nil, errors.New("fast period must be shorter than slow period")
	}
	if len(bars) < slow+signalPeriod {
		return nil, ErrInsufficientData
	}

	closes := Closes(bars)
	fastEMA := EMASeries(closes, fast)
	slowEMA := EMASeries(closes, slow)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}
	signalLine := EMASeries(macdLine, signalPeriod)

	last := len(closes) - 1
	return &model.MACDValues{
		MACD:      macdLine[last],
		Signal:    signalLine[last],
		Histogram: macdLine[last] - signalLine[last],
	}, nil
}
