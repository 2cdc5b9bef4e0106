package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marketscan/profitscan/internal/domain"
	"github.com/shopspring/decimal"
	hyperliquid "github.com/sonirico/go-hyperliquid"
)

// HyperliquidKlineProvider implements KlineProvider for Hyperliquid. Only the
// public Info API is used; no signing key is needed for candle snapshots.
type HyperliquidKlineProvider struct {
	info *hyperliquid.Info
}

// NewHyperliquidKlineProvider creates a new Hyperliquid kline provider.
func NewHyperliquidKlineProvider(info *hyperliquid.Info) *HyperliquidKlineProvider {
	return &HyperliquidKlineProvider{info: info}
}

func parseIntervalToDuration(interval string) (time.Duration, error) {
	if interval == "" {
		return 0, fmt.Errorf("empty interval")
	}
	// supported formats: e.g. "1m", "5m", "15m", "1h", "4h", "1d"
	unit := interval[len(interval)-1]
	value := interval[:len(interval)-1]
	if value == "" {
		return 0, fmt.Errorf("invalid interval: %s", interval)
	}
	var n int64
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid interval number: %s", interval)
		}
		n = n*10 + int64(r-'0')
	}
	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

// GetKlines fetches kline data from the Hyperliquid candle snapshot endpoint.
func (p *HyperliquidKlineProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.Candle, error) {
	if p.info == nil {
		return nil, fmt.Errorf("hyperliquid info is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0")
	}
	dur, err := parseIntervalToDuration(interval)
	if err != nil {
		return nil, err
	}

	endMs := time.Now().UnixMilli()
	// fetch a slightly wider window to account for rounding
	startMs := endMs - (int64(limit)+2)*dur.Milliseconds()

	// Hyperliquid addresses markets by the base coin, e.g. "BTC".
	coin := strings.ToUpper(pair.From)

	candles, err := p.info.CandlesSnapshot(ctx, coin, interval, startMs, endMs)
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no candles from hyperliquid for %s %s", coin, interval)
	}

	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}

	out := make([]domain.Candle, 0, len(candles))
	for i, c := range candles {
		open, err := decimal.NewFromString(c.Open)
		if err != nil {
			return nil, fmt.Errorf("parse open at %d: %w", i, err)
		}
		high, err := decimal.NewFromString(c.High)
		if err != nil {
			return nil, fmt.Errorf("parse high at %d: %w", i, err)
		}
		low, err := decimal.NewFromString(c.Low)
		if err != nil {
			return nil, fmt.Errorf("parse low at %d: %w", i, err)
		}
		closeP, err := decimal.NewFromString(c.Close)
		if err != nil {
			return nil, fmt.Errorf("parse close at %d: %w", i, err)
		}
		volume, err := decimal.NewFromString(c.Volume)
		if err != nil {
			return nil, fmt.Errorf("parse volume at %d: %w", i, err)
		}

		out = append(out, domain.Candle{
			OpenTime:  time.UnixMilli(c.TimeOpen),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closeP,
			Volume:    volume,
			CloseTime: time.UnixMilli(c.TimeClose),
		})
	}

	return out, nil
}
