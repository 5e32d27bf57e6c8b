package model

import "time"

// Trend labels the direction of one timeframe or the aggregate.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
	TrendNeutral Trend = "NEUTRAL"
)

// Signal is the final trading recommendation.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// TimeframeAnalysis is the result of analyzing one candle series.
// Immutable once produced.
type TimeframeAnalysis struct {
	Timeframe  string       `json:"timeframe"`
	Price      float64      `json:"price"`
	Trend      Trend        `json:"trend"`
	Indicators IndicatorSet `json:"indicators"`
	Score      int          `json:"score"`
}

// EntryPlan holds the concrete price levels derived from a BUY or SELL signal.
type EntryPlan struct {
	EntryPrice  float64 `json:"entry_price"`
	StopLoss    float64 `json:"stop_loss"`
	TakeProfit1 float64 `json:"take_profit_1"`
	TakeProfit2 float64 `json:"take_profit_2"`
	RiskReward  float64 `json:"risk_reward"`
}

// AggregateSignal is the fused multi-timeframe result for one symbol.
// Produced fresh on every analysis request and never mutated afterwards.
type AggregateSignal struct {
	Symbol         string                        `json:"symbol"`
	Timestamp      time.Time                     `json:"timestamp"`
	Signal         Signal                        `json:"signal"`
	Confidence     int                           `json:"confidence"`
	Trend          Trend                         `json:"trend"`
	TrendConfirmed bool                          `json:"trend_confirmed"`
	Timeframes     map[string]*TimeframeAnalysis `json:"timeframes"`
	CurrentPrice   float64                       `json:"current_price"`
	EntryPlan      *EntryPlan                    `json:"entry_plan,omitempty"`
}
