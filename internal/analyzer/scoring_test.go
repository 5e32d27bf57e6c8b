package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CoinSentinel/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestScoreIndicators_RuleBranches(t *testing.T) {
	tests := []struct {
		name string
		in   scoreInput
		want int
	}{
		{"rsi core band beats neutral band", scoreInput{rsi: floatPtr(50), trend: model.TrendBearish}, 15},
		{"rsi neutral band", scoreInput{rsi: floatPtr(35), trend: model.TrendBearish}, 20},
		{"rsi oversold", scoreInput{rsi: floatPtr(25), trend: model.TrendBearish}, 10},
		{"rsi overbought", scoreInput{rsi: floatPtr(80), trend: model.TrendBearish}, 5},
		{"rsi undefined", scoreInput{trend: model.TrendBearish}, 0},
		{"macd bullish", scoreInput{macd: &model.MACDValues{MACD: 1, Signal: 0.5}, trend: model.TrendBearish}, 15},
		{"macd bearish", scoreInput{macd: &model.MACDValues{MACD: 0.5, Signal: 1}, trend: model.TrendBearish}, 0},
		{"trend bullish", scoreInput{trend: model.TrendBullish}, 20},
		{"trend neutral", scoreInput{trend: model.TrendNeutral}, 10},
		{"trend bearish", scoreInput{trend: model.TrendBearish}, 0},
		{"volume high", scoreInput{volume: &model.VolumeProfile{High: true}, trend: model.TrendBearish}, 15},
		{"volume steady", scoreInput{volume: &model.VolumeProfile{}, trend: model.TrendBearish}, 10},
		{"volume low", scoreInput{volume: &model.VolumeProfile{Low: true}, trend: model.TrendBearish}, 0},
		{"bollinger near lower band", scoreInput{bbPosition: floatPtr(0.1), trend: model.TrendBearish}, 15},
		{"bollinger mid band", scoreInput{bbPosition: floatPtr(0.5), trend: model.TrendBearish}, 10},
		{"bollinger near upper band", scoreInput{bbPosition: floatPtr(0.9), trend: model.TrendBearish}, 0},
		{"price above cloud", scoreInput{ichimoku: &model.IchimokuCloud{AboveCloud: true}, trend: model.TrendBearish}, 10},
		{"price below cloud", scoreInput{ichimoku: &model.IchimokuCloud{BelowCloud: true}, trend: model.TrendBearish}, 5},
		{"price in cloud", scoreInput{ichimoku: &model.IchimokuCloud{InCloud: true}, trend: model.TrendBearish}, 0},
		{"adx strong trend", scoreInput{adx: floatPtr(30), trend: model.TrendBearish}, 10},
		{"adx forming trend", scoreInput{adx: floatPtr(22), trend: model.TrendBearish}, 7},
		{"adx weak trend", scoreInput{adx: floatPtr(15), trend: model.TrendBearish}, 3},
		{"adx undefined", scoreInput{trend: model.TrendBearish}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreIndicators(tt.in))
		})
	}
}

func TestScoreIndicators_ClampsAt100(t *testing.T) {
	// Raw maximum is 105: neutral-band RSI (20) + MACD (15) + bullish trend
	// (20) + high volume (15) + lower-band Bollinger (15) + above cloud (10)
	// + strong ADX (10).
	in := scoreInput{
		rsi:        floatPtr(35),
		macd:       &model.MACDValues{MACD: 1, Signal: 0},
		trend:      model.TrendBullish,
		volume:     &model.VolumeProfile{High: true},
		bbPosition: floatPtr(0.1),
		ichimoku:   &model.IchimokuCloud{AboveCloud: true},
		adx:        floatPtr(30),
	}
	assert.Equal(t, 100, scoreIndicators(in))
}

func TestScoreIndicators_AllUndefined(t *testing.T) {
	// Only the trend group can match when every indicator is undefined.
	assert.Equal(t, 10, scoreIndicators(scoreInput{trend: model.TrendNeutral}))
}
