package calculator

import (
	"errors"

	"CoinSentinel/internal/model"
)

// RSI computes the Relative Strength Index over rolling means of gains and
// losses in the last `period` close-to-close changes. Requires period+1 bars.
//
// When the loss average is zero (pure uptrend, including the flat 0/0 case)
// the result is defined as 100.
func RSI(bars []model.Candle, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return 0, ErrInsufficientData
	}

	closes := Closes(bars)
	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
