package calculator

import "CoinSentinel/internal/model"

// VolumeProfile computes the ratio of the last candle's volume to the series
// mean and flags the high (>1.5) and low (<0.5) regimes.
func VolumeProfile(bars []model.Candle) (*model.VolumeProfile, error) {
	if len(bars) == 0 {
		return nil, ErrInsufficientData
	}

	sum := 0.0
	for _, b := range bars {
		sum += b.Volume
	}
	avg := sum / float64(len(bars))
	current := bars[len(bars)-1].Volume

	ratio := 0.0
	if avg > 0 {
		ratio = current / avg
	}

	return &model.VolumeProfile{
		AvgVolume:     avg,
		CurrentVolume: current,
		Ratio:         ratio,
		High:          ratio > 1.5,
		Low:           ratio < 0.5,
	}, nil
}
