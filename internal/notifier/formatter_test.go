package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"CoinSentinel/internal/model"
)

func fp(v float64) *float64 { return &v }

func sampleSignal() *model.AggregateSignal {
	return &model.AggregateSignal{
		Symbol:         "BTCUSDT",
		Timestamp:      time.Now().UTC(),
		Signal:         model.SignalBuy,
		Confidence:     82,
		Trend:          model.TrendBullish,
		TrendConfirmed: true,
		CurrentPrice:   50000,
		Timeframes: map[string]*model.TimeframeAnalysis{
			"1h": {
				Timeframe: "1h",
				Price:     50000,
				Trend:     model.TrendBullish,
				Score:     85,
				Indicators: model.IndicatorSet{
					RSI:      fp(55.4),
					ADX:      fp(28.1),
					Patterns: []string{"hammer"},
				},
			},
			"15m": {
				Timeframe:  "15m",
				Price:      50010,
				Trend:      model.TrendBullish,
				Score:      80,
				Indicators: model.IndicatorSet{},
			},
		},
		EntryPlan: &model.EntryPlan{
			EntryPrice:  49500,
			StopLoss:    48361.5,
			TakeProfit1: 50490,
			TakeProfit2: 51480,
			RiskReward:  1.7,
		},
	}
}

func TestFormatSignalReport(t *testing.T) {
	out := FormatSignalReport(sampleSignal())

	assert.Contains(t, out, "<b>BTCUSDT</b>")
	assert.Contains(t, out, "$50000.00")
	assert.Contains(t, out, "Signal: <b>BUY</b> (82% confidence)")
	assert.Contains(t, out, "BULLISH ✅ Confirmed")
	assert.Contains(t, out, "1h: BULLISH (Score: 85/100)")
	assert.Contains(t, out, "RSI: 55.4, ADX: 28.1")
	assert.Contains(t, out, "Patterns: hammer")
	assert.Contains(t, out, "Entry: $49500.00")
	assert.Contains(t, out, "Stop-Loss: $48361.50")
	assert.Contains(t, out, "Risk/Reward: 1:1.7")

	// Undefined indicators render as n/a, not zero.
	assert.Contains(t, out, "RSI: n/a, ADX: n/a")

	// Finest timeframe is listed first.
	assert.Less(t, strings.Index(out, "15m:"), strings.Index(out, "1h:"))
}

func TestFormatSignalReport_HoldWithoutPlan(t *testing.T) {
	sig := sampleSignal()
	sig.Signal = model.SignalHold
	sig.TrendConfirmed = false
	sig.EntryPlan = nil

	out := FormatSignalReport(sig)
	assert.Contains(t, out, "Signal: <b>HOLD</b>")
	assert.Contains(t, out, "⚠️ Not confirmed")
	assert.NotContains(t, out, "Entry strategy")
}

func TestFormatWatchlist(t *testing.T) {
	out := FormatWatchlist([]string{"BTCUSDT", "ETHUSDT"})
	assert.Contains(t, out, "BTCUSDT")
	assert.Contains(t, out, "ETHUSDT")

	assert.Contains(t, FormatWatchlist(nil), "empty")
}

func TestSortedTimeframes(t *testing.T) {
	m := map[string]*model.TimeframeAnalysis{
		"1d": {}, "15m": {}, "4h": {}, "1h": {},
	}
	assert.Equal(t, []string{"15m", "1h", "4h", "1d"}, sortedTimeframes(m))
}
