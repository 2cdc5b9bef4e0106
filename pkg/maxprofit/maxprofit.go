// Package maxprofit computes the best profit achievable from at most one buy
// followed by one later sell over an ordered price series.
package maxprofit

import (
	"github.com/marketscan/profitscan/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxProfit returns the maximum profit for one buy followed by one later sell
// over prices ordered oldest first. The result is never negative: series with
// fewer than two elements, strictly decreasing series and all-equal series
// yield zero.
//
// A single forward pass tracks the minimum price seen before the current
// index; the best pair (i, j) with i < j must buy at the minimum of the
// prefix [0, j), so evaluating each index against that running minimum covers
// all pairs without the quadratic comparison.
func MaxProfit(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) < 2 {
		return decimal.Zero
	}

	minSoFar := prices[0]
	best := decimal.Zero

	for _, price := range prices[1:] {
		if price.LessThan(minSoFar) {
			minSoFar = price
			continue
		}

		if candidate := price.Sub(minSoFar); candidate.GreaterThan(best) {
			best = candidate
		}
	}

	return best
}

// MaxProfitKlines computes MaxProfit over the close prices of klines.
func MaxProfitKlines[T domain.Kliner](klines []T) decimal.Decimal {
	closes := make([]decimal.Decimal, len(klines))
	for i, k := range klines {
		closes[i] = k.ClosePrice()
	}

	return MaxProfit(closes)
}
