package calculator

import "CoinSentinel/internal/model"

const ichimokuDisplacement = 26

// Ichimoku computes the cloud components: tenkan (9-period midpoint), kijun
// (26-period midpoint), span A ((tenkan+kijun)/2 shifted forward 26 periods)
// and span B (52-period midpoint shifted forward 26 periods). The cloud at
// the current index is therefore built from values 26 candles back, so the
// series must hold at least 52+26 candles.
func Ichimoku(bars []model.Candle) (*model.IchimokuCloud, error) {
	if len(bars) < 52+ichimokuDisplacement {
		return nil, ErrInsufficientData
	}

	tenkan := midpoint(bars, 9)
	kijun := midpoint(bars, 26)

	// Displaced spans: computed over the series as it stood 26 candles ago.
	shifted := bars[:len(bars)-ichimokuDisplacement]
	spanA := (midpoint(shifted, 9) + midpoint(shifted, 26)) / 2
	spanB := midpoint(shifted, 52)

	price := bars[len(bars)-1].Close
	cloudTop := max(spanA, spanB)
	cloudBottom := min(spanA, spanB)

	return &model.IchimokuCloud{
		Tenkan:       tenkan,
		Kijun:        kijun,
		SpanA:        spanA,
		SpanB:        spanB,
		AboveCloud:   price > cloudTop,
		BelowCloud:   price < cloudBottom,
		InCloud:      price >= cloudBottom && price <= cloudTop,
		BullishCloud: spanA > spanB,
	}, nil
}

// midpoint returns (highest high + lowest low) / 2 over the last n candles.
func midpoint(bars []model.Candle, n int) float64 {
	start := len(bars) - n
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
	return (high + low) / 2
}
