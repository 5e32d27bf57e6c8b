package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists signal history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signals (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			signal          TEXT NOT NULL,
			confidence      INTEGER,
			trend           TEXT,
			trend_confirmed INTEGER,
			current_price   REAL,
			entry_price     REAL,
			stop_loss       REAL,
			take_profit_1   REAL,
			take_profit_2   REAL,
			risk_reward     REAL,
			report          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,

		`CREATE TABLE IF NOT EXISTS timeframe_scores (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			signal_id INTEGER NOT NULL REFERENCES signals(id),
			timeframe TEXT NOT NULL,
			trend     TEXT,
			score     INTEGER,
			price     REAL,
			rsi       REAL,
			adx       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tf_signal ON timeframe_scores(signal_id)`,

		`CREATE TABLE IF NOT EXISTS scans (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at  INTEGER NOT NULL,
			symbols     INTEGER,
			failures    INTEGER,
			duration_ms INTEGER
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSignal writes the aggregate signal and its per-timeframe scores in
// one transaction.
func (r *SQLiteRecorder) RecordSignal(rec *SignalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sig := rec.Signal
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var entry, stop, tp1, tp2, rr sql.NullFloat64
	if plan := sig.EntryPlan; plan != nil {
		entry = sql.NullFloat64{Float64: plan.EntryPrice, Valid: true}
		stop = sql.NullFloat64{Float64: plan.StopLoss, Valid: true}
		tp1 = sql.NullFloat64{Float64: plan.TakeProfit1, Valid: true}
		tp2 = sql.NullFloat64{Float64: plan.TakeProfit2, Valid: true}
		rr = sql.NullFloat64{Float64: plan.RiskReward, Valid: true}
	}

	res, err := tx.Exec(`INSERT INTO signals
		(timestamp, symbol, signal, confidence, trend, trend_confirmed, current_price,
		 entry_price, stop_loss, take_profit_1, take_profit_2, risk_reward, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sig.Timestamp.Unix(), sig.Symbol, string(sig.Signal), sig.Confidence,
		string(sig.Trend), boolToInt(sig.TrendConfirmed), sig.CurrentPrice,
		entry, stop, tp1, tp2, rr, rec.Report)
	if err != nil {
		return fmt.Errorf("insert signal: %w", err)
	}
	signalID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("signal rowid: %w", err)
	}

	for tf, ta := range sig.Timeframes {
		_, err := tx.Exec(`INSERT INTO timeframe_scores
			(signal_id, timeframe, trend, score, price, rsi, adx)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			signalID, tf, string(ta.Trend), ta.Score, ta.Price,
			nullFloat(ta.Indicators.RSI), nullFloat(ta.Indicators.ADX))
		if err != nil {
			return fmt.Errorf("insert timeframe score: %w", err)
		}
	}

	return tx.Commit()
}

// RecordScan writes one watchlist scan summary row.
func (r *SQLiteRecorder) RecordScan(rec *ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans (started_at, symbols, failures, duration_ms)
		VALUES (?, ?, ?, ?)`,
		rec.StartedAt.Unix(), rec.Symbols, rec.Failures, rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
