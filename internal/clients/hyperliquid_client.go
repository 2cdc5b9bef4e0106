// Package clients wraps venue SDK construction.
package clients

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	hyperliquid "github.com/sonirico/go-hyperliquid"
)

// DefaultHyperliquidAPIURL mainnet API endpoint.
const DefaultHyperliquidAPIURL = "https://api.hyperliquid.xyz"

// HyperliquidClient holds the exchange handle used to reach the Info API.
type HyperliquidClient struct {
	exchange    *hyperliquid.Exchange
	accountAddr string
}

// NewHyperliquidClient builds a client from a hex private key. The scanner
// never places orders; the key only satisfies the SDK's exchange constructor,
// candle snapshots go through the public Info API.
func NewHyperliquidClient(privateKeyHex string, baseURL string) (*HyperliquidClient, error) {
	key := privateKeyHex
	if len(key) >= 2 && (key[:2] == "0x" || key[:2] == "0X") {
		key = key[2:]
	}

	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, err
	}

	pub := privateKey.Public()
	pubECDSA, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("error casting public key to ECDSA")
	}
	accountAddr := crypto.PubkeyToAddress(*pubECDSA).Hex()

	if baseURL == "" {
		baseURL = DefaultHyperliquidAPIURL
	}

	// Info and SpotMeta are fetched lazily by the SDK.
	ex := hyperliquid.NewExchange(
		context.Background(),
		privateKey,
		baseURL,
		nil,
		"",
		accountAddr,
		nil,
	)

	return &HyperliquidClient{exchange: ex, accountAddr: accountAddr}, nil
}

// Exchange returns the underlying SDK handle.
func (c *HyperliquidClient) Exchange() *hyperliquid.Exchange { return c.exchange }

// AccountAddress returns the address derived from the key.
func (c *HyperliquidClient) AccountAddress() string { return c.accountAddr }
