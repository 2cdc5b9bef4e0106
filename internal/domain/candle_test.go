package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	pair := Pair{From: "BTC", To: "USDT"}
	require.Equal(t, "BTC_USDT", pair.String())
	require.Equal(t, "BTCUSDT", pair.Symbol())
}

func TestClosePrices(t *testing.T) {
	candles := []Candle{
		{Open: decimal.NewFromInt(1), Close: decimal.NewFromInt(2)},
		{Open: decimal.NewFromInt(2), Close: decimal.NewFromInt(3)},
	}

	closes := ClosePrices(candles)
	require.Len(t, closes, 2)
	require.True(t, decimal.NewFromInt(2).Equal(closes[0]))
	require.True(t, decimal.NewFromInt(3).Equal(closes[1]))

	require.Empty(t, ClosePrices(nil))
}
