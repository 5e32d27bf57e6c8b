package advisor

import "CoinSentinel/internal/model"

// buildPlan derives the entry/stop/target levels from the finest timeframe
// analysis. A BUY waits for a pullback: entry is the lower of the highest
// support level and EMA20, with a 2% pullback from price substituted when no
// support level exists. SELL mirrors it against resistance. HOLD yields no
// plan.
func buildPlan(signal model.Signal, ta *model.TimeframeAnalysis) *model.EntryPlan {
	if ta == nil {
		return nil
	}

	ema20 := ta.Price
	if ta.Indicators.EMA20 != nil {
		ema20 = *ta.Indicators.EMA20
	}

	switch signal {
	case model.SignalBuy:
		entry := ta.Price * 0.98
		if n := len(ta.Indicators.Support); n > 0 {
			entry = ta.Indicators.Support[n-1]
		}
		if ema20 < entry {
			entry = ema20
		}
		return &model.EntryPlan{
			EntryPrice:  entry,
			StopLoss:    entry * 0.977,
			TakeProfit1: entry * 1.02,
			TakeProfit2: entry * 1.04,
			RiskReward:  1.7,
		}
	case model.SignalSell:
		entry := ta.Price * 1.02
		if n := len(ta.Indicators.Resistance); n > 0 {
			entry = ta.Indicators.Resistance[n-1]
		}
		if ema20 > entry {
			entry = ema20
		}
		return &model.EntryPlan{
			EntryPrice:  entry,
			StopLoss:    entry * 1.023,
			TakeProfit1: entry * 0.98,
			TakeProfit2: entry * 0.96,
			RiskReward:  1.7,
		}
	default:
		return nil
	}
}
