package advisor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"CoinSentinel/internal/analyzer"
	"CoinSentinel/internal/collector"
	"CoinSentinel/internal/model"
)

// ErrDataUnavailable is returned when no configured timeframe could supply a
// usable candle series for the symbol.
var ErrDataUnavailable = errors.New("candle data unavailable")

// Config controls one Advisor instance. Zero-value fields fall back to the
// defaults stated in DefaultConfig.
type Config struct {
	Timeframes    []string
	CandleLimit   int
	FetchTimeout  time.Duration
	BuyThreshold  int
	SellThreshold int
	Params        analyzer.Params
}

// DefaultConfig returns the standard setup: timeframes 15m/1h/4h/1d,
// 200 candles per series, 10s fetch timeout, BUY at confidence 75 and up,
// SELL at confidence 40 and below.
func DefaultConfig() Config {
	return Config{
		Timeframes:    []string{"15m", "1h", "4h", "1d"},
		CandleLimit:   200,
		FetchTimeout:  10 * time.Second,
		BuyThreshold:  75,
		SellThreshold: 40,
		Params:        analyzer.DefaultParams(),
	}
}

// Advisor fuses per-timeframe analyses into one trading recommendation.
// The candle source is injected so concurrent analyses of different symbols
// share no mutable state.
type Advisor struct {
	source collector.CandleSource
	cfg    Config
}

// New creates an Advisor. Timeframes are kept sorted finest-first so the
// current price and the entry plan always come from the shortest interval.
func New(source collector.CandleSource, cfg Config) *Advisor {
	def := DefaultConfig()
	if len(cfg.Timeframes) == 0 {
		cfg.Timeframes = def.Timeframes
	}
	if cfg.CandleLimit == 0 {
		cfg.CandleLimit = def.CandleLimit
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = def.FetchTimeout
	}
	if cfg.BuyThreshold == 0 {
		cfg.BuyThreshold = def.BuyThreshold
	}
	if cfg.SellThreshold == 0 {
		cfg.SellThreshold = def.SellThreshold
	}
	if cfg.Params == (analyzer.Params{}) {
		cfg.Params = def.Params
	}

	tfs := make([]string, len(cfg.Timeframes))
	copy(tfs, cfg.Timeframes)
	sort.Slice(tfs, func(i, j int) bool {
		di, erri := model.TimeframeDuration(tfs[i])
		dj, errj := model.TimeframeDuration(tfs[j])
		if erri != nil || errj != nil {
			return tfs[i] < tfs[j]
		}
		return di < dj
	})
	cfg.Timeframes = tfs

	return &Advisor{source: source, cfg: cfg}
}

// Analyze runs every configured timeframe in parallel and aggregates the
// results. Timeframes whose candle data is unavailable are skipped; the call
// fails only when all of them are.
func (a *Advisor) Analyze(ctx context.Context, symbol string) (*model.AggregateSignal, error) {
	results := make(map[string]*model.TimeframeAnalysis, len(a.cfg.Timeframes))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, tf := range a.cfg.Timeframes {
		wg.Add(1)
		go func(tf string) {
			defer wg.Done()
			ta, err := a.analyzeTimeframe(ctx, symbol, tf)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Str("timeframe", tf).
					Msg("timeframe skipped")
				return
			}
			mu.Lock()
			results[tf] = ta
			mu.Unlock()
		}(tf)
	}
	wg.Wait()

	if len(results) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrDataUnavailable)
	}

	sig := aggregate(symbol, a.cfg.Timeframes, results, a.cfg.BuyThreshold, a.cfg.SellThreshold)
	if sig.Signal != model.SignalHold {
		sig.EntryPlan = buildPlan(sig.Signal, finestAnalysis(a.cfg.Timeframes, results))
	}
	return sig, nil
}

// analyzeTimeframe fetches one candle series, with a bounded timeout and a
// single retry, and runs the timeframe analyzer on it.
func (a *Advisor) analyzeTimeframe(ctx context.Context, symbol, tf string) (*model.TimeframeAnalysis, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		fetchCtx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeout)
		bars, err := a.source.FetchCandles(fetchCtx, symbol, tf, a.cfg.CandleLimit)
		cancel()
		if err == nil && len(bars) == 0 {
			err = errors.New("empty candle series")
		}
		if err == nil {
			return analyzer.Analyze(tf, bars, a.cfg.Params)
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("fetch %s %s: %w", symbol, tf, lastErr)
}

// aggregate fuses the successful per-timeframe analyses. Confidence is the
// floored mean score; the trend is confirmed when a proportional majority of
// the configured set (more than half, i.e. 3 of the default 4) agrees.
func aggregate(symbol string, configured []string, results map[string]*model.TimeframeAnalysis, buyMin, sellMax int) *model.AggregateSignal {
	total := 0
	bullish, bearish := 0, 0
	for _, ta := range results {
		total += ta.Score
		switch ta.Trend {
		case model.TrendBullish:
			bullish++
		case model.TrendBearish:
			bearish++
		}
	}
	confidence := total / len(results)

	majority := len(configured)/2 + 1
	confirmed := bullish >= majority || bearish >= majority

	trend := model.TrendNeutral
	if bullish > bearish {
		trend = model.TrendBullish
	} else if bearish > bullish {
		trend = model.TrendBearish
	}

	signal := model.SignalHold
	switch {
	case confidence >= buyMin && confirmed && trend == model.TrendBullish:
		signal = model.SignalBuy
	case confidence <= sellMax && confirmed && trend == model.TrendBearish:
		signal = model.SignalSell
	}

	return &model.AggregateSignal{
		Symbol:         symbol,
		Timestamp:      time.Now().UTC(),
		Signal:         signal,
		Confidence:     confidence,
		Trend:          trend,
		TrendConfirmed: confirmed,
		Timeframes:     results,
		CurrentPrice:   finestAnalysis(configured, results).Price,
	}
}

// finestAnalysis returns the analysis of the shortest configured timeframe
// that succeeded. configured is sorted finest-first.
func finestAnalysis(configured []string, results map[string]*model.TimeframeAnalysis) *model.TimeframeAnalysis {
	for _, tf := range configured {
		if ta, ok := results[tf]; ok {
			return ta
		}
	}
	return nil
}
