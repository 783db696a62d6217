package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"settletrack-backend/models"
)

// ComputeTrend filters the collection with the criteria embedded in
// config, buckets the survivors by the configured time grouping and
// computes the configured metric per bucket. An empty filtered set
// yields an empty series; buckets with no cases are never synthesized.
// The series is ordered by the bucket's representative date, never by
// the period label (lexical order breaks across "2024-2" vs "2024-10").
func ComputeTrend(cases []*models.Case, config models.TrendConfig) []models.TrendDataPoint {
	filtered := FilterCases(cases, config.Criteria)
	filtered = filterByDateRange(filtered, config.DateRange)
	if len(filtered) == 0 {
		return []models.TrendDataPoint{}
	}

	buckets := make(map[string][]*models.Case)
	starts := make(map[string]time.Time)
	for _, c := range filtered {
		label, start := periodOf(c.Date, config.TimeGrouping)
		buckets[label] = append(buckets[label], c)
		starts[label] = start
	}

	points := make([]models.TrendDataPoint, 0, len(buckets))
	for label, bucket := range buckets {
		points = append(points, models.TrendDataPoint{
			Period: label,
			Value:  bucketMetric(bucket, config.Metric),
			Count:  len(bucket),
			Date:   starts[label],
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

func filterByDateRange(cases []*models.Case, r *models.DateRange) []*models.Case {
	if r == nil || (r.From == nil && r.To == nil) {
		return cases
	}
	filtered := make([]*models.Case, 0, len(cases))
	for _, c := range cases {
		if r.From != nil && c.Date.Before(*r.From) {
			continue
		}
		if r.To != nil && c.Date.After(*r.To) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// periodOf derives the bucket label and its representative date (the
// first day of the year, quarter or month).
func periodOf(date time.Time, grouping models.TimeGrouping) (string, time.Time) {
	year := date.Year()
	switch grouping {
	case models.GroupByQuarter:
		quarter := (int(date.Month()) - 1) / 3 // 0-based
		start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%d Q%d", year, quarter+1), start
	case models.GroupByMonth:
		start := time.Date(year, date.Month(), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%d-%02d", year, int(date.Month())), start
	default: // year
		return fmt.Sprintf("%d", year), time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

func bucketMetric(bucket []*models.Case, metric models.TrendMetric) float64 {
	switch metric {
	case models.MetricTotalSettlement:
		total := 0.0
		for _, c := range bucket {
			total += c.SettlementAmount
		}
		return total
	case models.MetricCaseCount:
		return float64(len(bucket))
	case models.MetricAvgClassSize:
		sizes := make([]float64, len(bucket))
		for i, c := range bucket {
			sizes[i] = float64(c.ClassSize)
		}
		mean, _ := stats.Mean(sizes)
		return mean
	case models.MetricMedianSettlement:
		return ComputeStatistics(bucket).Median
	default: // avg_settlement
		return ComputeStatistics(bucket).Mean
	}
}
