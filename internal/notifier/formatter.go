package notifier

import (
	"fmt"
	"sort"
	"strings"

	"CoinSentinel/internal/model"
)

// FormatSignalReport renders an aggregate signal into a human-readable
// Telegram message. Pure formatting, no decision logic.
func FormatSignalReport(sig *model.AggregateSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | $%.2f\n\n", sig.Symbol, sig.CurrentPrice))
	b.WriteString(fmt.Sprintf("🎯 Signal: <b>%s</b> (%d%% confidence)\n", sig.Signal, sig.Confidence))

	confirmation := "⚠️ Not confirmed"
	if sig.TrendConfirmed {
		confirmation = "✅ Confirmed"
	}
	b.WriteString(fmt.Sprintf("📈 Trend: %s %s\n\n", sig.Trend, confirmation))

	b.WriteString("🔍 Timeframe analysis:\n")
	for _, tf := range sortedTimeframes(sig.Timeframes) {
		ta := sig.Timeframes[tf]
		b.WriteString(fmt.Sprintf("  • %s: %s (Score: %d/100)\n", tf, ta.Trend, ta.Score))
		b.WriteString(fmt.Sprintf("    RSI: %s, ADX: %s\n",
			formatValue(ta.Indicators.RSI), formatValue(ta.Indicators.ADX)))
		if len(ta.Indicators.Patterns) > 0 {
			b.WriteString(fmt.Sprintf("    Patterns: %s\n", strings.Join(ta.Indicators.Patterns, ", ")))
		}
	}

	if plan := sig.EntryPlan; plan != nil {
		b.WriteString("\n💡 Entry strategy:\n")
		b.WriteString(fmt.Sprintf("  Entry: $%.2f\n", plan.EntryPrice))
		b.WriteString(fmt.Sprintf("  Stop-Loss: $%.2f\n", plan.StopLoss))
		b.WriteString(fmt.Sprintf("  TP1 (50%%): $%.2f\n", plan.TakeProfit1))
		b.WriteString(fmt.Sprintf("  TP2 (50%%): $%.2f\n", plan.TakeProfit2))
		b.WriteString(fmt.Sprintf("  Risk/Reward: 1:%.1f\n", plan.RiskReward))
	}

	return b.String()
}

// FormatWatchlist renders the monitored symbols for a /list reply.
func FormatWatchlist(symbols []string) string {
	if len(symbols) == 0 {
		return "👀 Watchlist is empty. Add a symbol with /watch SYMBOL."
	}
	var b strings.Builder
	b.WriteString("👀 <b>Watchlist</b>\n\n")
	for _, s := range symbols {
		b.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	return b.String()
}

func formatValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}

// sortedTimeframes orders the map keys finest interval first.
func sortedTimeframes(m map[string]*model.TimeframeAnalysis) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, erri := model.TimeframeDuration(keys[i])
		dj, errj := model.TimeframeDuration(keys[j])
		if erri != nil || errj != nil {
			return keys[i] < keys[j]
		}
		return di < dj
	})
	return keys
}
