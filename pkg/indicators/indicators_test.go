package indicators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func series(n int) []decimal.Decimal {
	closes := make([]decimal.Decimal, n)
	for i := range closes {
		closes[i] = decimal.NewFromInt(int64(100 + i))
	}
	return closes
}

func TestCalculateEMA(t *testing.T) {
	t.Run("not enough data", func(t *testing.T) {
		_, err := CalculateEMA(series(5), 20)
		require.Error(t, err)
	})

	t.Run("rising series tracks price", func(t *testing.T) {
		values, err := CalculateEMA(series(50), 20)
		require.NoError(t, err)
		require.NotEmpty(t, values)

		latest := Latest(values)
		require.True(t, latest.GreaterThan(decimal.NewFromInt(100)))
		require.True(t, latest.LessThan(decimal.NewFromInt(150)))
	})
}

func TestCalculateRSI(t *testing.T) {
	t.Run("not enough data", func(t *testing.T) {
		_, err := CalculateRSI(series(10), 14)
		require.Error(t, err)
	})

	t.Run("monotonic rise saturates high", func(t *testing.T) {
		values, err := CalculateRSI(series(50), 14)
		require.NoError(t, err)
		require.NotEmpty(t, values)

		latest := Latest(values)
		require.True(t, latest.GreaterThan(decimal.NewFromInt(50)), "rsi for a rising series should be above 50, got %s", latest)
	})
}

func TestLatest(t *testing.T) {
	require.True(t, Latest(nil).IsZero())
	values := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(3)}
	require.True(t, decimal.NewFromInt(3).Equal(Latest(values)))
}
