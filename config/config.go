// Package config loads scanner configuration from YAML or CLI flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marketscan/profitscan/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	defaultInterval     = "1h"
	defaultWindowSize   = 168
	defaultPollInterval = 5 * time.Minute
	defaultListenAddr   = ":8080"
)

// Config scanner configuration.
type Config struct {
	// Platform market data venue: binance, bybit or hyperliquid.
	Platform string
	// Pairs trading pairs to scan.
	Pairs []domain.Pair
	// Interval kline interval of the scanned window.
	Interval string
	// WindowSize number of candles per scan window.
	WindowSize int
	// PollInterval delay between scan rounds.
	PollInterval time.Duration
	// ListenAddr address of the report dashboard, empty disables it.
	ListenAddr string
	// TLSDomain enables autocert TLS for the dashboard when set.
	TLSDomain string
	// WALDir directory of the report WAL.
	WALDir string
	// Setup launches the interactive configuration wizard.
	Setup bool
}

// ConfigTmp raw YAML shape of Config, also written by the setup wizard.
type ConfigTmp struct {
	Platform     string        `yaml:"platform"`
	Pairs        []string      `yaml:"pairs"`
	Interval     string        `yaml:"interval,omitempty"`
	WindowSize   int           `yaml:"window_size,omitempty"`
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
	ListenAddr   string        `yaml:"listen_addr,omitempty"`
	TLSDomain    string        `yaml:"tls_domain,omitempty"`
	WALDir       string        `yaml:"wal_dir,omitempty"`
}

// Get loads configuration from the --config YAML file when provided,
// otherwise from CLI flags.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	setup := flag.Bool("setup", false, "run interactive configuration wizard")
	platform := flag.String("platform", "binance", "market data venue: binance, bybit or hyperliquid")
	pairsFlag := flag.String("pairs", "BTC_USDT", "comma-separated trade pairs, example: BTC_USDT,ETH_USDT")
	interval := flag.String("interval", defaultInterval, "kline interval, example: 1h")
	window := flag.Int("window", defaultWindowSize, "number of candles per scan window")
	poll := flag.Duration("pollinterval", defaultPollInterval, "delay between scan rounds")
	listen := flag.String("listen", defaultListenAddr, "dashboard listen address, empty disables the dashboard")
	tlsDomain := flag.String("tlsdomain", "", "domain for autocert TLS on the dashboard")
	walDir := flag.String("waldir", "", "directory of the report WAL")
	flag.Parse()

	if *setup {
		return Config{Setup: true}, nil
	}

	if *configPath != "" {
		return getYaml(*configPath)
	}

	pairs, err := parsePairs(strings.Split(*pairsFlag, ","))
	if err != nil {
		return Config{}, fmt.Errorf("invalid --pairs provided, --pairs=%s: %w", *pairsFlag, err)
	}

	cfg := Config{
		Platform:     *platform,
		Pairs:        pairs,
		Interval:     *interval,
		WindowSize:   *window,
		PollInterval: *poll,
		ListenAddr:   *listen,
		TLSDomain:    *tlsDomain,
		WALDir:       *walDir,
	}

	return cfg, validate(cfg)
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, err
	}

	pairs, err := parsePairs(tmp.Pairs)
	if err != nil {
		return Config{}, fmt.Errorf("incorrect 'pairs' param in yaml config: %w", err)
	}

	cfg := Config{
		Platform:     tmp.Platform,
		Pairs:        pairs,
		Interval:     tmp.Interval,
		WindowSize:   tmp.WindowSize,
		PollInterval: tmp.PollInterval,
		ListenAddr:   tmp.ListenAddr,
		TLSDomain:    tmp.TLSDomain,
		WALDir:       tmp.WALDir,
	}

	if cfg.Interval == "" {
		cfg.Interval = defaultInterval
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = defaultWindowSize
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	switch cfg.Platform {
	case "binance", "bybit", "hyperliquid":
	default:
		return fmt.Errorf("unsupported platform: %s", cfg.Platform)
	}

	if len(cfg.Pairs) == 0 {
		return fmt.Errorf("at least one pair is required")
	}
	if cfg.WindowSize < 2 {
		return fmt.Errorf("window size must be at least 2, got %d", cfg.WindowSize)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}

	return nil
}

func parsePairs(raw []string) ([]domain.Pair, error) {
	pairs := make([]domain.Pair, 0, len(raw))
	for _, p := range raw {
		pair, err := getPairFromString(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func getPairFromString(pairStr string) (domain.Pair, error) {
	pairElements := strings.Split(pairStr, "_")
	if len(pairElements) != 2 || pairElements[0] == "" || pairElements[1] == "" {
		return domain.Pair{}, fmt.Errorf("invalid pair: %s", pairStr)
	}
	return domain.Pair{From: pairElements[0], To: pairElements[1]}, nil
}
