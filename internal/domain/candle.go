package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kliner interface for accessing kline price data.
type Kliner interface {
	// OpenPrice returns the opening price.
	OpenPrice() decimal.Decimal
	// ClosePrice returns the closing price.
	ClosePrice() decimal.Decimal
}

// Candle single OHLCV candlestick.
type Candle struct {
	OpenTime  time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
	CloseTime time.Time
}

// OpenPrice returns the opening price.
func (c *Candle) OpenPrice() decimal.Decimal {
	return c.Open
}

// ClosePrice returns the closing price.
func (c *Candle) ClosePrice() decimal.Decimal {
	return c.Close
}

// ClosePrices extracts the close price series from candles, oldest first.
func ClosePrices(candles []Candle) []decimal.Decimal {
	closes := make([]decimal.Decimal, len(candles))
	for i := range candles {
		closes[i] = candles[i].Close
	}
	return closes
}
