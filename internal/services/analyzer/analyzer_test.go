package analyzer

import (
	"testing"
	"time"

	"github.com/marketscan/profitscan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func candlesFromCloses(closes ...float64) []domain.Candle {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]domain.Candle, len(closes))
	for i, c := range closes {
		candles[i] = domain.Candle{
			OpenTime:  base.Add(time.Duration(i) * time.Hour),
			Close:     decimal.NewFromFloat(c),
			CloseTime: base.Add(time.Duration(i+1) * time.Hour),
		}
	}
	return candles
}

func TestAnalyze(t *testing.T) {
	a := New(zap.NewNop())
	pair := domain.Pair{From: "BTC", To: "USDT"}

	t.Run("no candles", func(t *testing.T) {
		_, err := a.Analyze(pair, "1h", nil)
		require.Error(t, err)
	})

	t.Run("short window yields report without indicator context", func(t *testing.T) {
		report, err := a.Analyze(pair, "1h", candlesFromCloses(7, 1, 5, 3, 6, 4))
		require.NoError(t, err)

		require.Equal(t, "BTC_USDT", report.Pair)
		require.Equal(t, "1h", report.Interval)
		require.Equal(t, 6, report.WindowSize)
		require.True(t, decimal.NewFromInt(5).Equal(report.MaxProfit), "got %s", report.MaxProfit)
		require.True(t, decimal.NewFromInt(4).Equal(report.LastClose))
		require.True(t, report.EMA20.IsZero())
		require.True(t, report.RSI14.IsZero())
		require.False(t, report.ScannedAt.IsZero())
	})

	t.Run("declining window reports zero profit", func(t *testing.T) {
		report, err := a.Analyze(pair, "4h", candlesFromCloses(5, 4, 3, 2, 1))
		require.NoError(t, err)
		require.True(t, report.MaxProfit.IsZero())
	})

	t.Run("long window carries indicator context", func(t *testing.T) {
		closes := make([]float64, 60)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		report, err := a.Analyze(pair, "1h", candlesFromCloses(closes...))
		require.NoError(t, err)

		require.True(t, decimal.NewFromInt(59).Equal(report.MaxProfit), "got %s", report.MaxProfit)
		require.False(t, report.EMA20.IsZero())
		require.False(t, report.RSI14.IsZero())
	})
}
