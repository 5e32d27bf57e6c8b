package recorder

import (
	"time"

	"CoinSentinel/internal/model"
)

// SignalRecord holds one completed analysis with its rendered report.
type SignalRecord struct {
	Signal *model.AggregateSignal
	Report string
}

// ScanRecord summarizes one watchlist scan run.
type ScanRecord struct {
	StartedAt time.Time
	Symbols   int
	Failures  int
	Duration  time.Duration
}

// Recorder persists analysis history.
type Recorder interface {
	RecordSignal(rec *SignalRecord) error
	RecordScan(rec *ScanRecord) error
	Close() error
}
