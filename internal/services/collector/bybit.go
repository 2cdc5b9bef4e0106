package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/marketscan/profitscan/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BybitKlineProvider implements KlineProvider for Bybit.
type BybitKlineProvider struct {
	client *bybit.Client
}

// NewBybitKlineProvider creates a new Bybit kline provider.
func NewBybitKlineProvider(client *bybit.Client) *BybitKlineProvider {
	return &BybitKlineProvider{client: client}
}

// GetKlines fetches kline data from Bybit spot market.
func (p *BybitKlineProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.Candle, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	bybitInterval, err := convertIntervalToBybit(interval)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid interval: %s", interval)
	}

	param := bybit.V5GetKlineParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   bybit.SymbolV5(pair.Symbol()),
		Interval: bybit.Interval(bybitInterval),
		Limit:    &limit,
	}

	result, err := p.client.V5().Market().GetKline(param)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", pair.String())
	}
	if result == nil || len(result.Result.List) == 0 {
		return nil, errors.Errorf("no kline data returned from Bybit for %s", pair.String())
	}

	return assembleBybitCandles(result.Result.List)
}

// assembleBybitCandles parses raw kline items and orders them oldest first.
func assembleBybitCandles(list []bybit.V5GetKlineItem) ([]domain.Candle, error) {
	candles := make([]domain.Candle, len(list))
	for i, k := range list {
		openTime, err := parseTimestamp(k.StartTime)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse start time at index %d", i)
		}

		open, err := decimal.NewFromString(k.Open)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse open price at index %d", i)
		}
		high, err := decimal.NewFromString(k.High)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse high price at index %d", i)
		}
		low, err := decimal.NewFromString(k.Low)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse low price at index %d", i)
		}
		close, err := decimal.NewFromString(k.Close)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse close price at index %d", i)
		}
		volume, err := decimal.NewFromString(k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse volume at index %d", i)
		}

		candles[i] = domain.Candle{
			OpenTime:  openTime,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
			CloseTime: openTime, // Bybit doesn't provide close time
		}
	}

	// Bybit returns klines newest first; the scan needs them in time order.
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].OpenTime.Before(candles[j].OpenTime)
	})

	return candles, nil
}

// convertIntervalToBybit converts standard interval format ("1m", "1h", "1d")
// to Bybit format ("1", "60", "D").
func convertIntervalToBybit(interval string) (string, error) {
	if len(interval) < 2 {
		return "", fmt.Errorf("invalid interval format: %s", interval)
	}

	unit := interval[len(interval)-1]
	numberPart := interval[:len(interval)-1]

	var n int64
	for _, r := range numberPart {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid interval number: %s", interval)
		}
		n = n*10 + int64(r-'0')
	}

	switch unit {
	case 'm':
		return numberPart, nil
	case 'h':
		return fmt.Sprintf("%d", n*60), nil
	case 'd':
		return "D", nil
	case 'w':
		return "W", nil
	default:
		return "", fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

// parseTimestamp converts Bybit timestamp string (milliseconds) to time.Time.
func parseTimestamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	var msec int64
	if _, err := fmt.Sscanf(ts, "%d", &msec); err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse timestamp: %s", ts)
	}

	return time.UnixMilli(msec), nil
}
