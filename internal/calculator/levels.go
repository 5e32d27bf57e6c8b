package calculator

import (
	"sort"

	"CoinSentinel/internal/model"
)

// SupportResistance finds local price levels: a candle's high is a resistance
// point iff it equals the centered rolling max over `window`, a low is a
// support point iff it equals the centered rolling min. Candles within
// `window` of either end of the series are excluded. Each list is
// deduplicated, sorted ascending and trimmed to the 3 highest levels.
func SupportResistance(bars []model.Candle, window int) (support, resistance []float64) {
	support = []float64{}
	resistance = []float64{}
	if window <= 0 || len(bars) <= 2*window {
		return support, resistance
	}

	half := window / 2
	for i := window; i < len(bars)-window; i++ {
		lo, hi := i-half, i+half
		maxHigh := bars[lo].High
		minLow := bars[lo].Low
		for j := lo + 1; j <= hi; j++ {
			if bars[j].High > maxHigh {
				maxHigh = bars[j].High
			}
			if bars[j].Low < minLow {
				minLow = bars[j].Low
			}
		}
		if bars[i].High == maxHigh {
			resistance = append(resistance, bars[i].High)
		}
		if bars[i].Low == minLow {
			support = append(support, bars[i].Low)
		}
	}

	return topLevels(support, 3), topLevels(resistance, 3)
}

// topLevels deduplicates, sorts ascending and keeps the n highest values.
func topLevels(levels []float64, n int) []float64 {
	seen := make(map[float64]struct{}, len(levels))
	out := levels[:0]
	for _, v := range levels {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}
