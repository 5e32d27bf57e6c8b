package model

import (
	"fmt"
	"time"
)

// Candle represents a single OHLCV candlestick bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body returns the absolute open-close distance.
func (c Candle) Body() float64 {
	if c.Close > c.Open {
		return c.Close - c.Open
	}
	return c.Open - c.Close
}

// Range returns the high-low distance.
func (c Candle) Range() float64 {
	return c.High - c.Low
}

// TimeframeDuration parses a timeframe label such as "15m", "1h", "4h" or "1d".
// Used to order timeframes from finest to coarsest.
func TimeframeDuration(label string) (time.Duration, error) {
	if label == "" {
		return 0, fmt.Errorf("empty timeframe label")
	}
	unit := label[len(label)-1]
	var n int
	if _, err := fmt.Sscanf(label[:len(label)-1], "%d", &n); err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid timeframe %q", label)
	}
	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid timeframe %q", label)
	}
}
