// Package internal wires the scanner loop over configured pairs.
package internal

import (
	"context"
	"sync"
	"time"

	"github.com/marketscan/profitscan/config"
	"github.com/marketscan/profitscan/internal/domain"
	"github.com/marketscan/profitscan/internal/services/analyzer"
	"github.com/marketscan/profitscan/internal/services/collector"
	"github.com/marketscan/profitscan/pkg/retrier"
	"go.uber.org/zap"
)

// maxConcurrentScans bounds parallel venue fetches per round.
const maxConcurrentScans = 4

// ReportStore persists scan reports.
type ReportStore interface {
	Save(report domain.ProfitReport) error
}

// Scanner periodically scans all configured pairs and persists the reports.
type Scanner struct {
	provider collector.KlineProvider
	analyzer *analyzer.Analyzer
	store    ReportStore
	conf     config.Config
	retrier  *retrier.Retrier
}

// NewScanner creates a scanner instance.
func NewScanner(conf config.Config, provider collector.KlineProvider, store ReportStore, logger *zap.Logger) *Scanner {
	return &Scanner{
		provider: provider,
		analyzer: analyzer.New(logger),
		store:    store,
		conf:     conf,
		retrier:  retrier.New(),
	}
}

// Run executes scan rounds until ctx is cancelled. The first round starts
// immediately, subsequent rounds follow the poll interval. Per-pair failures
// are logged and skipped; only ctx cancellation terminates the loop.
func (s *Scanner) Run(ctx context.Context, logger *zap.Logger) error {
	ticker := time.NewTicker(s.conf.PollInterval)
	defer ticker.Stop()

	logger.Info("starting scan loop",
		zap.String("platform", s.conf.Platform),
		zap.Int("pairs", len(s.conf.Pairs)),
		zap.String("interval", s.conf.Interval),
		zap.Duration("poll_interval", s.conf.PollInterval))

	s.scanRound(ctx, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info("context done, stopping scan loop")
			return ctx.Err()
		case <-ticker.C:
			s.scanRound(ctx, logger)
		}
	}
}

// scanRound scans every configured pair. Each pair's window is independent,
// so the scans run concurrently under a worker limit.
func (s *Scanner) scanRound(ctx context.Context, logger *zap.Logger) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentScans)

	for _, pair := range s.conf.Pairs {
		wg.Add(1)
		go func(pair domain.Pair) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			s.scanPair(ctx, logger, pair)
		}(pair)
	}

	wg.Wait()
}

func (s *Scanner) scanPair(ctx context.Context, logger *zap.Logger, pair domain.Pair) {
	log := logger.With(zap.String("pair", pair.String()))

	candles, err := retrier.DoWithData(s.retrier, ctx, func(ctx context.Context) ([]domain.Candle, error) {
		return s.provider.GetKlines(ctx, pair, s.conf.Interval, s.conf.WindowSize)
	})
	if err != nil {
		log.Error("failed to fetch klines", zap.Error(err))
		return
	}

	report, err := s.analyzer.Analyze(pair, s.conf.Interval, candles)
	if err != nil {
		log.Error("failed to analyze window", zap.Error(err))
		return
	}

	if err := s.store.Save(report); err != nil {
		log.Error("failed to persist report", zap.Error(err))
		return
	}

	log.Info("scan complete",
		zap.Int("window", report.WindowSize),
		zap.String("max_profit", report.MaxProfit.String()),
		zap.String("last_close", report.LastClose.String()))
}
