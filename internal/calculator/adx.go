package calculator

import (
	"math"

	"CoinSentinel/internal/model"
)

// ADX computes the Average Directional Index. Directional moves are clipped
// at zero and the true range is the max of the three candle-relative
// measures, both smoothed with rolling means; DX = 100*|+DI - -DI|/(+DI + -DI)
// and ADX is the rolling mean of DX over `period`. Requires at least
// 2*period+1 candles.
//
// A zero true-range or zero directional-index denominator inside the window
// makes the value indeterminate rather than NaN.
func ADX(bars []model.Candle, period int) (float64, error) {
	n := len(bars)
	if period <= 0 {
		return 0, ErrInsufficientData
	}
	if n < 2*period+1 {
		return 0, ErrInsufficientData
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		plusDM[i] = math.Max(bars[i].High-bars[i-1].High, 0)
		minusDM[i] = math.Abs(bars[i].Low - bars[i-1].Low)
		tr[i] = math.Max(bars[i].High-bars[i].Low,
			math.Max(math.Abs(bars[i].High-bars[i-1].Close),
				math.Abs(bars[i].Low-bars[i-1].Close)))
	}

	// ADX is the mean of DX over the last `period` indices.
	dxSum := 0.0
	for j := n - period; j < n; j++ {
		var pSum, mSum, trSum float64
		for k := j - period + 1; k <= j; k++ {
			pSum += plusDM[k]
			mSum += minusDM[k]
			trSum += tr[k]
		}
		if trSum == 0 {
			return 0, ErrInsufficientData
		}
		plusDI := 100 * (pSum / trSum)
		minusDI := 100 * (mSum / trSum)
		if plusDI+minusDI == 0 {
			return 0, ErrInsufficientData
		}
		dxSum += 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI)
	}

	return dxSum / float64(period), nil
}
