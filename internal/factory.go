package internal

import (
	"os"

	"github.com/marketscan/profitscan/config"
	"github.com/marketscan/profitscan/internal/clients"
	"github.com/marketscan/profitscan/internal/services/collector"
	"github.com/pkg/errors"
)

// NewKlineProvider creates the venue-specific kline provider for the
// configured platform. This is the single dispatch point for venue wiring.
func NewKlineProvider(conf config.Config) (collector.KlineProvider, error) {
	switch conf.Platform {
	case "binance":
		client := clients.NewBinanceClient(os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_API_SECRET"))
		return collector.NewBinanceKlineProvider(client), nil
	case "bybit":
		client := clients.NewBybitClient(os.Getenv("BYBIT_API_KEY"), os.Getenv("BYBIT_API_SECRET"))
		return collector.NewBybitKlineProvider(client), nil
	case "hyperliquid":
		key := os.Getenv("HYPERLIQUID_PRIVATE_KEY")
		if key == "" {
			return nil, errors.New("HYPERLIQUID_PRIVATE_KEY environment variable must be set")
		}
		client, err := clients.NewHyperliquidClient(key, os.Getenv("HYPERLIQUID_API_URL"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create hyperliquid client")
		}
		return collector.NewHyperliquidKlineProvider(client.Exchange().Info()), nil
	default:
		return nil, errors.Errorf("unsupported platform: %s", conf.Platform)
	}
}
