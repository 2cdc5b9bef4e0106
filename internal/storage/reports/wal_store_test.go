package reports

import (
	"testing"
	"time"

	"github.com/marketscan/profitscan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testReport(pair string, profit int64) domain.ProfitReport {
	return domain.ProfitReport{
		Pair:       pair,
		Interval:   "1h",
		WindowSize: 48,
		MaxProfit:  decimal.NewFromInt(profit),
		LastClose:  decimal.NewFromInt(100),
		ScannedAt:  time.Now().UTC(),
	}
}

func TestWALStoreRoundtrip(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	require.NoError(t, store.Save(testReport("BTC_USDT", 5)))
	require.NoError(t, store.Save(testReport("ETH_USDT", 12)))

	records, err := store.ReportsAfter(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "BTC_USDT", records[0].Report.Pair)
	require.True(t, decimal.NewFromInt(5).Equal(records[0].Report.MaxProfit))
	require.Equal(t, "ETH_USDT", records[1].Report.Pair)
	require.True(t, records[0].Index < records[1].Index)
}

func TestWALStoreReportsAfterSkipsSeen(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	require.NoError(t, store.Save(testReport("BTC_USDT", 5)))
	first := store.CurrentIndex()

	require.NoError(t, store.Save(testReport("BTC_USDT", 7)))

	records, err := store.ReportsAfter(first)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, decimal.NewFromInt(7).Equal(records[0].Report.MaxProfit))

	records, err = store.ReportsAfter(store.CurrentIndex())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestWALStoreRejectsEmptyPair(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	require.Error(t, store.Save(domain.ProfitReport{}))
}
