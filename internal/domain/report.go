package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitReport result of a single max-profit scan over a price window.
type ProfitReport struct {
	// Pair trading pair the window belongs to.
	Pair string `json:"pair"`
	// Interval kline interval of the window (e.g. "1h", "4h").
	Interval string `json:"interval"`
	// WindowSize number of candles in the scanned window.
	WindowSize int `json:"window_size"`
	// MaxProfit best profit for one buy followed by one later sell, never negative.
	MaxProfit decimal.Decimal `json:"max_profit"`
	// LastClose latest close price in the window.
	LastClose decimal.Decimal `json:"last_close"`
	// EMA20 exponential moving average context, zero when the window is too short.
	EMA20 decimal.Decimal `json:"ema20"`
	// RSI14 relative strength context, zero when the window is too short.
	RSI14 decimal.Decimal `json:"rsi14"`
	// ScannedAt time the scan completed.
	ScannedAt time.Time `json:"scanned_at"`
}

// ProfitReportRecord report with its WAL position.
type ProfitReportRecord struct {
	Index  uint64       `json:"index"`
	Report ProfitReport `json:"report"`
}
