// Package analyzer turns candle windows into max-profit scan reports.
package analyzer

import (
	"time"

	"github.com/marketscan/profitscan/internal/domain"
	"github.com/marketscan/profitscan/pkg/indicators"
	"github.com/marketscan/profitscan/pkg/maxprofit"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	emaPeriod = 20
	rsiPeriod = 14
)

// Analyzer computes profit reports from candle windows.
type Analyzer struct {
	logger *zap.Logger
}

// New creates an Analyzer.
func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Analyze computes the max-profit report for one pair's candle window. The
// candles must be ordered oldest first. The profit computation is total over
// any window, including an empty one; only the report envelope requires at
// least one candle for the last close.
func (a *Analyzer) Analyze(pair domain.Pair, interval string, candles []domain.Candle) (domain.ProfitReport, error) {
	if len(candles) == 0 {
		return domain.ProfitReport{}, errors.Errorf("no candles for %s", pair.String())
	}

	closes := domain.ClosePrices(candles)
	profit := maxprofit.MaxProfit(closes)

	report := domain.ProfitReport{
		Pair:       pair.String(),
		Interval:   interval,
		WindowSize: len(candles),
		MaxProfit:  profit,
		LastClose:  closes[len(closes)-1],
		EMA20:      a.ema(pair, closes),
		RSI14:      a.rsi(pair, closes),
		ScannedAt:  time.Now().UTC(),
	}

	return report, nil
}

// ema is best-effort context: short windows produce a zero value, not an error.
func (a *Analyzer) ema(pair domain.Pair, closes []decimal.Decimal) decimal.Decimal {
	values, err := indicators.CalculateEMA(closes, emaPeriod)
	if err != nil {
		a.logger.Debug("skipping EMA context", zap.String("pair", pair.String()), zap.Error(err))
		return decimal.Zero
	}
	return indicators.Latest(values)
}

func (a *Analyzer) rsi(pair domain.Pair, closes []decimal.Decimal) decimal.Decimal {
	values, err := indicators.CalculateRSI(closes, rsiPeriod)
	if err != nil {
		a.logger.Debug("skipping RSI context", zap.String("pair", pair.String()), zap.Error(err))
		return decimal.Zero
	}
	return indicators.Latest(values)
}
