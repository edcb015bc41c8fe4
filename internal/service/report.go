package service

import (
	"time"

	"github.com/veodin/sked/internal/config"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/storage"
)

// ReportService produces grouped rollups and day totals for display.
type ReportService struct {
	day *DayService
	cfg config.Config
}

// NewReportService creates a new ReportService
func NewReportService(day *DayService, cfg config.Config) *ReportService {
	return &ReportService{day: day, cfg: cfg}
}

// DefaultGroupBy returns the configured grouping field for charts.
func (s *ReportService) DefaultGroupBy() string {
	return s.cfg.DefaultGroupBy
}

// BucketsResult contains the rollup for one date and grouping field.
type BucketsResult struct {
	Buckets  []schedule.Bucket
	Warnings []storage.ParseWarning
	GroupBy  string
}

// Buckets loads a date and aggregates its entries by the given field.
// An empty groupBy falls back to the configured default.
func (s *ReportService) Buckets(day time.Time, groupBy string) (BucketsResult, error) {
	if groupBy == "" {
		groupBy = s.cfg.DefaultGroupBy
	}

	result, err := s.day.Load(day)
	if err != nil {
		return BucketsResult{}, err
	}

	buckets, err := schedule.Aggregate(result.Entries, groupBy)
	if err != nil {
		return BucketsResult{}, err
	}

	return BucketsResult{
		Buckets:  buckets,
		Warnings: result.Warnings,
		GroupBy:  groupBy,
	}, nil
}

// DayTotal returns the summed minutes for a date and their share of the
// 12-hour baseline.
func (s *ReportService) DayTotal(day time.Time) (int, float64, error) {
	result, err := s.day.Load(day)
	if err != nil {
		return 0, 0, err
	}
	minutes, percent := schedule.Total(result.Entries)
	return minutes, percent, nil
}
