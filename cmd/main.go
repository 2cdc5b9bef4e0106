// Command profitscan periodically scans trading pairs and reports the best
// profit achievable from one buy followed by one later sell over a window of
// historical prices. It supports multiple venues (Binance, Bybit,
// Hyperliquid) and can be configured via a YAML file or command-line flags.
//
// Usage:
//
//	profitscan --config profitscan.yaml
//	profitscan --setup (interactive configuration wizard)
//	profitscan (uses CLI arguments)
//
// Optional environment variables:
//
//	For Binance: BINANCE_API_KEY, BINANCE_API_SECRET
//	For Bybit: BYBIT_API_KEY, BYBIT_API_SECRET
//	For Hyperliquid: HYPERLIQUID_PRIVATE_KEY (required), HYPERLIQUID_API_URL
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/marketscan/profitscan/config"
	"github.com/marketscan/profitscan/internal"
	"github.com/marketscan/profitscan/internal/setup"
	"github.com/marketscan/profitscan/internal/storage/reports"
	"github.com/marketscan/profitscan/internal/web"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if conf.Setup {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	provider, err := internal.NewKlineProvider(conf)
	if err != nil {
		logger.Fatal("failed to create kline provider", zap.Error(err))
	}

	store, err := reports.NewWALStore(conf.WALDir)
	if err != nil {
		logger.Fatal("failed to open report store", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.ListenAddr != "" {
		srv := web.NewServer(conf.ListenAddr, store)
		go func() {
			var err error
			if conf.TLSDomain != "" {
				err = srv.StartWithAutoTLS(ctx, []string{conf.TLSDomain}, "")
			} else {
				err = srv.Start(ctx)
			}
			if err != nil {
				logger.Error("dashboard server stopped", zap.Error(err))
			}
		}()
		logger.Info("dashboard listening", zap.String("addr", conf.ListenAddr))
	}

	scanner := internal.NewScanner(conf, provider, store, logger)
	if err := scanner.Run(ctx, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("scanner stopped", zap.Error(err))
	}
}
