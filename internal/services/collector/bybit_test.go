package collector

import (
	"strconv"
	"testing"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/marketscan/profitscan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIntervalToBybit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		shouldErr bool
	}{
		{
			name:      "1 minute",
			input:     "1m",
			expected:  "1",
			shouldErr: false,
		},
		{
			name:      "5 minutes",
			input:     "5m",
			expected:  "5",
			shouldErr: false,
		},
		{
			name:      "15 minutes",
			input:     "15m",
			expected:  "15",
			shouldErr: false,
		},
		{
			name:      "1 hour",
			input:     "1h",
			expected:  "60",
			shouldErr: false,
		},
		{
			name:      "4 hours",
			input:     "4h",
			expected:  "240",
			shouldErr: false,
		},
		{
			name:      "1 day",
			input:     "1d",
			expected:  "D",
			shouldErr: false,
		},
		{
			name:      "1 week",
			input:     "1w",
			expected:  "W",
			shouldErr: false,
		},
		{
			name:      "invalid interval - empty",
			input:     "",
			shouldErr: true,
		},
		{
			name:      "invalid interval - no unit",
			input:     "1",
			shouldErr: true,
		},
		{
			name:      "invalid interval - unsupported unit",
			input:     "1x",
			shouldErr: true,
		},
		{
			name:      "invalid interval - no number",
			input:     "m",
			shouldErr: true,
		},
		{
			name:      "invalid interval - non-numeric minutes",
			input:     "xm",
			shouldErr: true,
		},
		{
			name:      "invalid interval - non-numeric days",
			input:     "xd",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := convertIntervalToBybit(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid timestamp",
			input:     "1672531200000",
			shouldErr: false,
		},
		{
			name:      "empty timestamp",
			input:     "",
			shouldErr: true,
		},
		{
			name:      "invalid timestamp - not a number",
			input:     "abc",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTimestamp(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, time.UnixMilli(1672531200000), result)
			}
		})
	}
}

func bybitKline(startMs int64, close string) bybit.V5GetKlineItem {
	return bybit.V5GetKlineItem{
		StartTime: strconv.FormatInt(startMs, 10),
		Open:      close,
		High:      close,
		Low:       close,
		Close:     close,
		Volume:    "1",
	}
}

func TestAssembleBybitCandlesOrdersOldestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	hour := time.Hour.Milliseconds()

	// Bybit delivers newest first
	list := []bybit.V5GetKlineItem{
		bybitKline(base+3*hour, "4"),
		bybitKline(base+2*hour, "6"),
		bybitKline(base+1*hour, "1"),
		bybitKline(base, "7"),
	}

	candles, err := assembleBybitCandles(list)
	require.NoError(t, err)
	require.Len(t, candles, 4)

	for i := 1; i < len(candles); i++ {
		require.True(t, candles[i-1].OpenTime.Before(candles[i].OpenTime),
			"candles must be ordered oldest first, index %d out of order", i)
	}

	closes := domain.ClosePrices(candles)
	expected := []int64{7, 1, 6, 4}
	for i, want := range expected {
		require.True(t, decimal.NewFromInt(want).Equal(closes[i]),
			"close at %d: expected %d, got %s", i, want, closes[i])
	}
}

func TestAssembleBybitCandlesRejectsBadPrices(t *testing.T) {
	list := []bybit.V5GetKlineItem{
		{
			StartTime: "1672531200000",
			Open:      "not-a-price",
			High:      "1",
			Low:       "1",
			Close:     "1",
			Volume:    "1",
		},
	}

	_, err := assembleBybitCandles(list)
	require.Error(t, err)
}
