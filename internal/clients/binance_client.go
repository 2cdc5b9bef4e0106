package clients

import (
	"github.com/adshao/go-binance/v2"
)

// NewBinanceClient builds a Binance REST client. Keys may be empty: the
// scanner only reads public kline endpoints.
func NewBinanceClient(apiKey, apiSecret string) *binance.Client {
	return binance.NewClient(apiKey, apiSecret)
}
