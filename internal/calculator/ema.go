package calculator

import (
	"errors"

	"CoinSentinel/internal/model"
)

// ErrInsufficientData marks an indicator that cannot be computed from the
// available history. Callers score it as a zero contribution instead of
// aborting the analysis.
var ErrInsufficientData = errors.New("insufficient data")

// Closes extracts the close prices from a candle series.
func Closes(bars []model.Candle) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// SMA computes the simple moving average of the last `period` values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// EMASeries computes the full exponential moving average series, seeded with
// the first value.
func EMASeries(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*alpha + out[i-1]*(1-alpha)
	}
	return out
}

// EMA returns the last exponential moving average value over the close
// prices. The series must hold at least `span` candles; EMA200 on a shorter
// series is therefore undefined rather than a misleading short-window value.
func EMA(bars []model.Candle, span int) (float64, error) {
	if span <= 0 {
		return 0, errors.New("span must be positive")
	}
	if len(bars) < span {
		return 0, ErrInsufficientData
	}
	series := EMASeries(Closes(bars), span)
	return series[len(series)-1], nil
}
