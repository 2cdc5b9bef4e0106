// Package reports persists profit scan reports in an append-only WAL.
package reports

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/marketscan/profitscan/internal/domain"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

const (
	// DefaultDir default WAL location for scan reports.
	DefaultDir   = "./wal/reports"
	segmentLimit = 1000
	maxSegments  = 10

	reportKeyPrefix = "report_"
)

// WALStore persists profit reports in a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore initializes a WAL-backed report store.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "report_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init report WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Save appends the report to the WAL.
func (s *WALStore) Save(report domain.ProfitReport) error {
	if s == nil || s.wal == nil {
		return errors.New("report store is not initialized")
	}
	if report.Pair == "" {
		return fmt.Errorf("report pair is required")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal profit report")
	}

	key := fmt.Sprintf("%s%s", reportKeyPrefix, report.Pair)

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, key, payload)
}

// ReportsAfter returns all reports written after the provided WAL index.
func (s *WALStore) ReportsAfter(index uint64) ([]domain.ProfitReportRecord, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("report store is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	if current <= index {
		return nil, nil
	}

	records := make([]domain.ProfitReportRecord, 0, current-index)
	for idx := index + 1; idx <= current; idx++ {
		key, payload, err := s.wal.Get(idx)
		if err != nil {
			continue
		}
		if !strings.HasPrefix(key, reportKeyPrefix) {
			continue
		}

		var report domain.ProfitReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, errors.Wrap(err, "decode profit report")
		}
		records = append(records, domain.ProfitReportRecord{
			Index:  idx,
			Report: report,
		})
	}

	return records, nil
}

// CurrentIndex returns the latest WAL index stored.
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wal.CurrentIndex()
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("report store is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
