package clients

import (
	"github.com/hirokisan/bybit/v2"
)

// NewBybitClient builds a Bybit REST client. Keys may be empty: the scanner
// only reads public market endpoints.
func NewBybitClient(apiKey, apiSecret string) *bybit.Client {
	if apiKey == "" && apiSecret == "" {
		return bybit.NewClient()
	}
	return bybit.NewClient().WithAuth(apiKey, apiSecret)
}
