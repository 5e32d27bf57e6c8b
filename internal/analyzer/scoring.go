package analyzer

import "CoinSentinel/internal/model"

// scoreInput collects the indicator readings the rule table evaluates.
// Nil pointers mean the indicator was undefined for this series.
type scoreInput struct {
	rsi        *float64
	macd       *model.MACDValues
	trend      model.Trend
	volume     *model.VolumeProfile
	bbPosition *float64
	ichimoku   *model.IchimokuCloud
	adx        *float64
}

type rule struct {
	name   string
	points int
	match  func(scoreInput) bool
}

type ruleGroup struct {
	signal string
	rules  []rule
}

// scoreTable maps indicator readings to points. Within a group the rules are
// ordered narrowest range first and the first match wins; an undefined
// indicator matches nothing and contributes zero. The maximum raw sum is 105,
// clamped to 100.
var scoreTable = []ruleGroup{
	{signal: "rsi", rules: []rule{
		{"rsi_core_band", 15, func(in scoreInput) bool { return in.rsi != nil && *in.rsi > 40 && *in.rsi < 60 }},
		{"rsi_neutral_band", 20, func(in scoreInput) bool { return in.rsi != nil && *in.rsi > 30 && *in.rsi < 70 }},
		{"rsi_oversold", 10, func(in scoreInput) bool { return in.rsi != nil && *in.rsi < 30 }},
		{"rsi_overbought", 5, func(in scoreInput) bool { return in.rsi != nil && *in.rsi > 70 }},
	}},
	{signal: "macd", rules: []rule{
		{"macd_above_signal", 15, func(in scoreInput) bool { return in.macd != nil && in.macd.MACD > in.macd.Signal }},
	}},
	{signal: "trend", rules: []rule{
		{"trend_bullish", 20, func(in scoreInput) bool { return in.trend == model.TrendBullish }},
		{"trend_neutral", 10, func(in scoreInput) bool { return in.trend == model.TrendNeutral }},
		{"trend_bearish", 0, func(in scoreInput) bool { return in.trend == model.TrendBearish }},
	}},
	{signal: "volume", rules: []rule{
		{"volume_high", 15, func(in scoreInput) bool { return in.volume != nil && in.volume.High }},
		{"volume_steady", 10, func(in scoreInput) bool { return in.volume != nil && !in.volume.High && !in.volume.Low }},
	}},
	{signal: "bollinger", rules: []rule{
		{"bb_near_lower", 15, func(in scoreInput) bool { return in.bbPosition != nil && *in.bbPosition < 0.2 }},
		{"bb_mid_band", 10, func(in scoreInput) bool {
			return in.bbPosition != nil && *in.bbPosition > 0.2 && *in.bbPosition < 0.8
		}},
	}},
	{signal: "ichimoku", rules: []rule{
		{"price_above_cloud", 10, func(in scoreInput) bool { return in.ichimoku != nil && in.ichimoku.AboveCloud }},
		{"price_below_cloud", 5, func(in scoreInput) bool { return in.ichimoku != nil && in.ichimoku.BelowCloud }},
	}},
	{signal: "adx", rules: []rule{
		{"adx_strong_trend", 10, func(in scoreInput) bool { return in.adx != nil && *in.adx > 25 }},
		{"adx_forming_trend", 7, func(in scoreInput) bool { return in.adx != nil && *in.adx > 20 }},
		{"adx_weak_trend", 3, func(in scoreInput) bool { return in.adx != nil }},
	}},
}

// scoreIndicators sums the first matching rule of each group and clamps the
// result to [0,100].
func scoreIndicators(in scoreInput) int {
	total := 0
	for _, group := range scoreTable {
		for _, r := range group.rules {
			if r.match(in) {
				total += r.points
				break
			}
		}
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}
