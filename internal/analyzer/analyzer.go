package analyzer

import (
	"errors"
	"fmt"

	"CoinSentinel/internal/calculator"
	"CoinSentinel/internal/model"
)

// ErrSeriesTooShort signals a candle series unusable for any analysis.
// The advisor treats it the same as a failed fetch for that timeframe.
var ErrSeriesTooShort = errors.New("candle series too short")

// Params holds the indicator periods for one analysis run.
type Params struct {
	RSIPeriod       int
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	BollingerPeriod int
	BollingerStdDev float64
	FibLookback     int
	SRWindow        int
	ADXPeriod       int
	EMAFast         int
	EMASlow         int
	EMALong         int
}

// DefaultParams returns the standard periods: RSI 14, MACD 12/26/9,
// Bollinger 20 with 2 standard deviations, Fibonacci lookback 50, S/R window 20,
// ADX 14, EMA spans 20/50/200.
func DefaultParams() Params {
	return Params{
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BollingerPeriod: 20,
		BollingerStdDev: 2,
		FibLookback:     50,
		SRWindow:        20,
		ADXPeriod:       14,
		EMAFast:         20,
		EMASlow:         50,
		EMALong:         200,
	}
}

// Analyze runs the full indicator set against one candle series and derives
// the trend label and rule-table score. Indicators that cannot be computed
// from the available history are left nil and score zero; only a series too
// short to price at all is an error.
func Analyze(timeframe string, bars []model.Candle, p Params) (*model.TimeframeAnalysis, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("timeframe %s: %w", timeframe, ErrSeriesTooShort)
	}
	price := bars[len(bars)-1].Close

	ind := model.IndicatorSet{}

	if v, err := calculator.RSI(bars, p.RSIPeriod); err == nil {
		ind.RSI = &v
	}
	if m, err := calculator.MACD(bars, p.MACDFast, p.MACDSlow, p.MACDSignal); err == nil {
		ind.MACD = m
	}
	if b, err := calculator.Bollinger(bars, p.BollingerPeriod, p.BollingerStdDev); err == nil {
		ind.Bollinger = b
		if pos, err := calculator.BollingerPosition(price, b); err == nil {
			ind.BBPosition = &pos
		}
	}
	if f, err := calculator.Fibonacci(bars, p.FibLookback); err == nil {
		ind.Fibonacci = f
	}
	ind.Support, ind.Resistance = calculator.SupportResistance(bars, p.SRWindow)
	if v, err := calculator.VolumeProfile(bars); err == nil {
		ind.Volume = v
	}
	ind.Patterns = calculator.DetectPatterns(bars)
	if c, err := calculator.Ichimoku(bars); err == nil {
		ind.Ichimoku = c
	}
	if v, err := calculator.ADX(bars, p.ADXPeriod); err == nil {
		ind.ADX = &v
	}
	if v, err := calculator.EMA(bars, p.EMAFast); err == nil {
		ind.EMA20 = &v
	}
	if v, err := calculator.EMA(bars, p.EMASlow); err == nil {
		ind.EMA50 = &v
	}
	if v, err := calculator.EMA(bars, p.EMALong); err == nil {
		ind.EMA200 = &v
	}

	trend := determineTrend(price, ind.EMA20, ind.EMA50)
	score := scoreIndicators(scoreInput{
		rsi:        ind.RSI,
		macd:       ind.MACD,
		trend:      trend,
		volume:     ind.Volume,
		bbPosition: ind.BBPosition,
		ichimoku:   ind.Ichimoku,
		adx:        ind.ADX,
	})

	return &model.TimeframeAnalysis{
		Timeframe:  timeframe,
		Price:      price,
		Trend:      trend,
		Indicators: ind,
		Score:      score,
	}, nil
}

// determineTrend labels the series BULLISH when price > EMA20 > EMA50,
// BEARISH when price < EMA20 < EMA50 and NEUTRAL otherwise, including when
// either EMA is undefined.
func determineTrend(price float64, ema20, ema50 *float64) model.Trend {
	if ema20 == nil || ema50 == nil {
		return model.TrendNeutral
	}
	switch {
	case price > *ema20 && *ema20 > *ema50:
		return model.TrendBullish
	case price < *ema20 && *ema20 < *ema50:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}
