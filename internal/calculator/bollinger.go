package calculator

import (
	"math"

	"CoinSentinel/internal/model"
)

// Bollinger computes the Bollinger Bands over the last `period` closes:
// middle = SMA, upper/lower = middle ± stdDevMult standard deviations.
func Bollinger(bars []model.Candle, period int, stdDevMult float64) (*model.BollingerBands, error) {
	closes := Closes(bars)
	middle, err := SMA(closes, period)
	if err != nil {
		return nil, err
	}

	variance := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		diff := closes[i] - middle
		variance += diff * diff
	}
	stdDev := math.Sqrt(variance / float64(period))

	return &model.BollingerBands{
		Upper:  middle + stdDev*stdDevMult,
		Middle: middle,
		Lower:  middle - stdDev*stdDevMult,
	}, nil
}

// BollingerPosition returns where price sits within the band width,
// 0 at the lower band and 1 at the upper. Undefined when the bands have
// collapsed to zero width.
func BollingerPosition(price float64, bands *model.BollingerBands) (float64, error) {
	width := bands.Upper - bands.Lower
	if width == 0 {
		return 0, ErrInsufficientData
	}
	return (price - bands.Lower) / width, nil
}
