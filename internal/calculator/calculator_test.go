package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinSentinel/internal/model"
)

// makeBars builds a candle series from close prices with a fixed ±1 wick.
func makeBars(closes []float64) []model.Candle {
	bars := make([]model.Candle, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}
		bars[i] = model.Candle{
			Time:   time.Unix(int64(i)*60, 0),
			Open:   open,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func trendingCloses(start, step float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + step*float64(i)
	}
	return closes
}

func TestSMA(t *testing.T) {
	v, err := SMA([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = SMA([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = SMA([]float64{1, 2}, 5)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEMA(t *testing.T) {
	// Constant series: EMA equals the constant.
	bars := makeBars(trendingCloses(100, 0, 60))
	v, err := EMA(bars, 20)
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-9)

	_, err = EMA(bars, 200)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRSI_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"pure uptrend", trendingCloses(100, 1, 30), 100},
		{"flat series 0/0 case", trendingCloses(100, 0, 30), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := RSI(makeBars(tt.closes), 14)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestRSI_Balanced(t *testing.T) {
	// Alternating ±1 changes: average gain equals average loss, RSI = 50.
	closes := make([]float64, 15)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] + 1
		} else {
			closes[i] = closes[i-1] - 1
		}
	}
	v, err := RSI(makeBars(closes), 14)
	require.NoError(t, err)
	assert.InDelta(t, 50, v, 1e-9)
}

func TestRSI_Insufficient(t *testing.T) {
	_, err := RSI(makeBars(trendingCloses(100, 1, 14)), 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMACD_HistogramIdentity(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/7)
	}
	m, err := MACD(makeBars(closes), 12, 26, 9)
	require.NoError(t, err)
	assert.InDelta(t, m.MACD-m.Signal, m.Histogram, 1e-9)
	assert.False(t, math.IsNaN(m.MACD))
}

func TestMACD_ConstantSeries(t *testing.T) {
	m, err := MACD(makeBars(trendingCloses(100, 0, 60)), 12, 26, 9)
	require.NoError(t, err)
	assert.InDelta(t, 0, m.MACD, 1e-9)
	assert.InDelta(t, 0, m.Histogram, 1e-9)
}

func TestMACD_Insufficient(t *testing.T) {
	_, err := MACD(makeBars(trendingCloses(100, 1, 30)), 12, 26, 9)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestBollinger(t *testing.T) {
	bands, err := Bollinger(makeBars(trendingCloses(100, 0, 30)), 20, 2)
	require.NoError(t, err)
	assert.InDelta(t, 100, bands.Middle, 1e-9)
	assert.InDelta(t, bands.Upper, bands.Lower, 1e-9)

	// Zero band width makes the position indeterminate.
	_, err = BollingerPosition(100, bands)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestBollingerPosition(t *testing.T) {
	bands := &model.BollingerBands{Upper: 110, Middle: 100, Lower: 90}
	pos, err := BollingerPosition(95, bands)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, pos, 1e-9)
}

func TestFibonacci_Monotonic(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + 20*math.Sin(float64(i)/5)
	}
	levels, err := Fibonacci(makeBars(closes), 50)
	require.NoError(t, err)

	ordered := []float64{
		levels.Level0, levels.Level236, levels.Level382, levels.Level500,
		levels.Level618, levels.Level786, levels.Level100,
	}
	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, ordered[i-1], ordered[i], "level %d must not exceed level %d", i, i-1)
	}
}

func TestFibonacci_Empty(t *testing.T) {
	_, err := Fibonacci(nil, 50)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSupportResistance(t *testing.T) {
	bars := makeBars(trendingCloses(100, 0, 50))
	bars[25].High = 110 // local peak
	bars[27].Low = 90   // local trough

	support, resistance := SupportResistance(bars, 20)
	assert.Equal(t, []float64{90}, support)
	assert.Equal(t, []float64{110}, resistance)
}

func TestSupportResistance_ShortSeries(t *testing.T) {
	support, resistance := SupportResistance(makeBars(trendingCloses(100, 0, 30)), 20)
	assert.Empty(t, support)
	assert.Empty(t, resistance)
}

func TestVolumeProfile(t *testing.T) {
	bars := makeBars(trendingCloses(100, 0, 4))
	bars[3].Volume = 4000
	vp, err := VolumeProfile(bars)
	require.NoError(t, err)
	assert.True(t, vp.High)
	assert.False(t, vp.Low)
	assert.InDelta(t, 4000.0/1750.0, vp.Ratio, 1e-9)

	bars[3].Volume = 10
	vp, err = VolumeProfile(bars)
	require.NoError(t, err)
	assert.True(t, vp.Low)
}

func TestIchimoku(t *testing.T) {
	// Strict uptrend: current price sits above the displaced cloud.
	bars := makeBars(trendingCloses(100, 1, 100))
	cloud, err := Ichimoku(bars)
	require.NoError(t, err)
	assert.True(t, cloud.AboveCloud)
	assert.False(t, cloud.BelowCloud)
	assert.Greater(t, cloud.Tenkan, cloud.Kijun)
}

func TestIchimoku_Insufficient(t *testing.T) {
	_, err := Ichimoku(makeBars(trendingCloses(100, 1, 77)))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestADX_Bounds(t *testing.T) {
	bars := makeBars(trendingCloses(100, 1, 60))
	v, err := ADX(bars, 14)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 100.0)
	assert.False(t, math.IsNaN(v))
}

func TestADX_Insufficient(t *testing.T) {
	_, err := ADX(makeBars(trendingCloses(100, 1, 28)), 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
