package calculator

import "CoinSentinel/internal/model"

// Fibonacci computes the seven retracement levels from the high/low range of
// the most recent `lookback` candles. A shorter series uses all of it.
func Fibonacci(bars []model.Candle, lookback int) (*model.FibonacciLevels, error) {
	if len(bars) == 0 {
		return nil, ErrInsufficientData
	}
	start := len(bars) - lookback
	if start < 0 {
		start = 0
	}

	high := bars[start].High
	low := bars[start].Low
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	diff := high - low

	return &model.FibonacciLevels{
		Level0:   high,
		Level236: high - diff*0.236,
		Level382: high - diff*0.382,
		Level500: high - diff*0.500,
		Level618: high - diff*0.618,
		Level786: high - diff*0.786,
		Level100: low,
	}, nil
}
