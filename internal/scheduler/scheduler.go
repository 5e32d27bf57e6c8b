package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"CoinSentinel/internal/advisor"
	"CoinSentinel/internal/model"
	"CoinSentinel/internal/notifier"
	"CoinSentinel/internal/recorder"
	"CoinSentinel/internal/watchlist"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs periodic watchlist scans and handles Telegram commands.
type Scheduler struct {
	Cron          *cron.Cron
	Advisor       *advisor.Advisor
	Watchlist     *watchlist.Manager
	Notifier      *notifier.TelegramNotifier
	Recorder      recorder.Recorder
	MinConfidence int
	Ctx           context.Context

	lastScan atomic.Pointer[recorder.ScanRecord]
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, adv *advisor.Advisor, wl *watchlist.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, minConfidence int) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Advisor:       adv,
		Watchlist:     wl,
		Notifier:      tn,
		Recorder:      rec,
		MinConfidence: minConfidence,
		Ctx:           ctx,
	}
}

// RegisterAll registers the periodic scan task.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// scanTask analyzes every watchlist symbol. One symbol's failure never
// affects another's.
func (s *Scheduler) scanTask() {
	started := time.Now().UTC()
	symbols := s.Watchlist.Symbols()
	log.Info().Int("symbols", len(symbols)).Msg("running watchlist scan")

	failures := 0
	for _, symbol := range symbols {
		sig, err := s.Advisor.Analyze(s.Ctx, symbol)
		if err != nil {
			failures++
			log.Error().Err(err).Str("symbol", symbol).Msg("scan analysis failed")
			continue
		}

		report := notifier.FormatSignalReport(sig)
		if err := s.Recorder.RecordSignal(&recorder.SignalRecord{Signal: sig, Report: report}); err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("record signal")
		}

		if s.actionable(sig) {
			s.trySend(report)
		}
		log.Info().Str("symbol", symbol).Str("signal", string(sig.Signal)).
			Int("confidence", sig.Confidence).Msg("symbol scanned")
	}

	scan := &recorder.ScanRecord{
		StartedAt: started,
		Symbols:   len(symbols),
		Failures:  failures,
		Duration:  time.Since(started),
	}
	if err := s.Recorder.RecordScan(scan); err != nil {
		log.Error().Err(err).Msg("record scan")
	}
	s.lastScan.Store(scan)
}

// actionable reports whether a scan result warrants a notification:
// a non-HOLD signal that clears the configured confidence floor, or any
// confirmed SELL (low confidence is what makes a SELL).
func (s *Scheduler) actionable(sig *model.AggregateSignal) bool {
	switch sig.Signal {
	case model.SignalBuy:
		return sig.Confidence >= s.MinConfidence
	case model.SignalSell:
		return true
	default:
		return false
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/scan":
		if len(fields) < 2 {
			s.RunScanNow()
			return "🔍 Watchlist scan started."
		}
		return s.scanSymbol(strings.ToUpper(fields[1]))
	case "/watch":
		if len(fields) < 2 {
			return "Usage: /watch SYMBOL"
		}
		added, err := s.Watchlist.Add(fields[1])
		if err != nil {
			return fmt.Sprintf("❌ Failed to update watchlist: %v", err)
		}
		if !added {
			return fmt.Sprintf("%s is already on the watchlist.", strings.ToUpper(fields[1]))
		}
		return fmt.Sprintf("✅ %s added to the watchlist.", strings.ToUpper(fields[1]))
	case "/unwatch":
		if len(fields) < 2 {
			return "Usage: /unwatch SYMBOL"
		}
		removed, err := s.Watchlist.Remove(fields[1])
		if err != nil {
			return fmt.Sprintf("❌ Failed to update watchlist: %v", err)
		}
		if !removed {
			return fmt.Sprintf("%s is not on the watchlist.", strings.ToUpper(fields[1]))
		}
		return fmt.Sprintf("✅ %s removed from the watchlist.", strings.ToUpper(fields[1]))
	case "/list":
		return notifier.FormatWatchlist(s.Watchlist.Symbols())
	case "/status":
		return s.status()
	default:
		return "Commands:\n• /scan [SYMBOL]\n• /watch SYMBOL\n• /unwatch SYMBOL\n• /list\n• /status"
	}
}

// scanSymbol analyzes one symbol on demand and returns the rendered report.
func (s *Scheduler) scanSymbol(symbol string) string {
	sig, err := s.Advisor.Analyze(s.Ctx, symbol)
	if err != nil {
		return fmt.Sprintf("❌ Analysis of %s failed: %v", symbol, err)
	}
	report := notifier.FormatSignalReport(sig)
	if err := s.Recorder.RecordSignal(&recorder.SignalRecord{Signal: sig, Report: report}); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("record signal")
	}
	return report
}

// status summarizes the bot state for a /status reply.
func (s *Scheduler) status() string {
	var b strings.Builder
	b.WriteString("🤖 <b>Status</b>\n\n")
	b.WriteString(fmt.Sprintf("  Watched symbols: %d\n", len(s.Watchlist.Symbols())))
	b.WriteString(fmt.Sprintf("  Min confidence: %d\n", s.MinConfidence))
	if scan := s.lastScan.Load(); scan != nil {
		b.WriteString(fmt.Sprintf("  Last scan: %s (%d symbols, %d failed, %s)\n",
			scan.StartedAt.Format(time.RFC3339), scan.Symbols, scan.Failures,
			scan.Duration.Round(time.Millisecond)))
	} else {
		b.WriteString("  Last scan: none yet\n")
	}
	return b.String()
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
