package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"CoinSentinel/internal/advisor"
	"CoinSentinel/internal/analyzer"
	"CoinSentinel/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"data_source"`
	Watchlist struct {
		Symbols   []string `yaml:"symbols"`
		StateFile string   `yaml:"state_file"`
	} `yaml:"watchlist"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Analysis struct {
		Timeframes      []string `yaml:"timeframes"`
		CandleLimit     int      `yaml:"candle_limit"`
		MinConfidence   int      `yaml:"min_confidence"`
		FetchTimeoutSec int      `yaml:"fetch_timeout_sec"`
		RSIPeriod       int      `yaml:"rsi_period"`
		MACDFast        int      `yaml:"macd_fast"`
		MACDSlow        int      `yaml:"macd_slow"`
		MACDSignal      int      `yaml:"macd_signal"`
		BollingerPeriod int      `yaml:"bollinger_period"`
		FibLookback     int      `yaml:"fib_lookback"`
		SRWindow        int      `yaml:"sr_window"`
		ADXPeriod       int      `yaml:"adx_period"`
		EMAFast         int      `yaml:"ema_fast"`
		EMASlow         int      `yaml:"ema_slow"`
		EMALong         int      `yaml:"ema_long"`
	} `yaml:"analysis"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("WATCHLIST_SYMBOLS"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("MIN_CONFIDENCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MinConfidence = n
		}
	}

	// Defaults
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"BTCUSDT", "ETHUSDT"}
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 */15 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/coin_sentinel.db"
	}
	if len(cfg.Analysis.Timeframes) == 0 {
		cfg.Analysis.Timeframes = []string{"15m", "1h", "4h", "1d"}
	}
	if cfg.Analysis.CandleLimit == 0 {
		cfg.Analysis.CandleLimit = 200
	}
	if cfg.Analysis.MinConfidence == 0 {
		cfg.Analysis.MinConfidence = 75
	}
	if cfg.Analysis.FetchTimeoutSec == 0 {
		cfg.Analysis.FetchTimeoutSec = 10
	}
	if cfg.Analysis.RSIPeriod == 0 {
		cfg.Analysis.RSIPeriod = 14
	}
	if cfg.Analysis.MACDFast == 0 {
		cfg.Analysis.MACDFast = 12
	}
	if cfg.Analysis.MACDSlow == 0 {
		cfg.Analysis.MACDSlow = 26
	}
	if cfg.Analysis.MACDSignal == 0 {
		cfg.Analysis.MACDSignal = 9
	}
	if cfg.Analysis.BollingerPeriod == 0 {
		cfg.Analysis.BollingerPeriod = 20
	}
	if cfg.Analysis.FibLookback == 0 {
		cfg.Analysis.FibLookback = 50
	}
	if cfg.Analysis.SRWindow == 0 {
		cfg.Analysis.SRWindow = 20
	}
	if cfg.Analysis.ADXPeriod == 0 {
		cfg.Analysis.ADXPeriod = 14
	}
	if cfg.Analysis.EMAFast == 0 {
		cfg.Analysis.EMAFast = 20
	}
	if cfg.Analysis.EMASlow == 0 {
		cfg.Analysis.EMASlow = 50
	}
	if cfg.Analysis.EMALong == 0 {
		cfg.Analysis.EMALong = 200
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	for _, tf := range c.Analysis.Timeframes {
		if _, err := model.TimeframeDuration(tf); err != nil {
			return fmt.Errorf("analysis.timeframes: %w", err)
		}
	}
	return nil
}

// AnalyzerParams maps the analysis section to indicator periods.
func (c *Config) AnalyzerParams() analyzer.Params {
	return analyzer.Params{
		RSIPeriod:       c.Analysis.RSIPeriod,
		MACDFast:        c.Analysis.MACDFast,
		MACDSlow:        c.Analysis.MACDSlow,
		MACDSignal:      c.Analysis.MACDSignal,
		BollingerPeriod: c.Analysis.BollingerPeriod,
		BollingerStdDev: 2,
		FibLookback:     c.Analysis.FibLookback,
		SRWindow:        c.Analysis.SRWindow,
		ADXPeriod:       c.Analysis.ADXPeriod,
		EMAFast:         c.Analysis.EMAFast,
		EMASlow:         c.Analysis.EMASlow,
		EMALong:         c.Analysis.EMALong,
	}
}

// AdvisorConfig maps the analysis section to the advisor setup.
func (c *Config) AdvisorConfig() advisor.Config {
	return advisor.Config{
		Timeframes:   c.Analysis.Timeframes,
		CandleLimit:  c.Analysis.CandleLimit,
		FetchTimeout: time.Duration(c.Analysis.FetchTimeoutSec) * time.Second,
		Params:       c.AnalyzerParams(),
	}
}

func splitSymbols(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToUpper(s))
		}
	}
	return out
}
