package model

// MACDValues holds the last MACD line, signal line and histogram values.
type MACDValues struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// BollingerBands holds the three band values for the last candle.
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// FibonacciLevels holds the seven retracement levels, ordered from the
// range high (Level0) down to the range low (Level100).
type FibonacciLevels struct {
	Level0   float64 `json:"level_0"`
	Level236 float64 `json:"level_236"`
	Level382 float64 `json:"level_382"`
	Level500 float64 `json:"level_500"`
	Level618 float64 `json:"level_618"`
	Level786 float64 `json:"level_786"`
	Level100 float64 `json:"level_100"`
}

// VolumeProfile compares the last candle's volume against the series mean.
type VolumeProfile struct {
	AvgVolume     float64 `json:"avg_volume"`
	CurrentVolume float64 `json:"current_volume"`
	Ratio         float64 `json:"ratio"`
	High          bool    `json:"high"`
	Low           bool    `json:"low"`
}

// IchimokuCloud holds the conversion/base lines and the position of the
// current price relative to the displaced cloud.
type IchimokuCloud struct {
	Tenkan       float64 `json:"tenkan"`
	Kijun        float64 `json:"kijun"`
	SpanA        float64 `json:"span_a"`
	SpanB        float64 `json:"span_b"`
	AboveCloud   bool    `json:"above_cloud"`
	BelowCloud   bool    `json:"below_cloud"`
	InCloud      bool    `json:"in_cloud"`
	BullishCloud bool    `json:"bullish_cloud"`
}

// IndicatorSet holds every indicator computed for one timeframe. Pointer
// fields are nil when the series was too short to compute the indicator;
// scoring treats nil as a zero contribution.
type IndicatorSet struct {
	RSI        *float64         `json:"rsi,omitempty"`
	MACD       *MACDValues      `json:"macd,omitempty"`
	Bollinger  *BollingerBands  `json:"bollinger,omitempty"`
	BBPosition *float64         `json:"bb_position,omitempty"`
	Fibonacci  *FibonacciLevels `json:"fibonacci,omitempty"`
	Support    []float64        `json:"support"`
	Resistance []float64        `json:"resistance"`
	Volume     *VolumeProfile   `json:"volume,omitempty"`
	Patterns   []string         `json:"patterns"`
	Ichimoku   *IchimokuCloud   `json:"ichimoku,omitempty"`
	ADX        *float64         `json:"adx,omitempty"`
	EMA20      *float64         `json:"ema_20,omitempty"`
	EMA50      *float64         `json:"ema_50,omitempty"`
	EMA200     *float64         `json:"ema_200,omitempty"`
}
