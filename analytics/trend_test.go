package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settletrack-backend/models"
)

func trendCase(amount float64, year int, month time.Month, day int) *models.Case {
	c := amountCase(amount)
	c.Date = dated(year, month, day)
	c.Year = year
	return c
}

func TestTrendEmptyFilteredSet(t *testing.T) {
	got := ComputeTrend(nil, models.TrendConfig{
		Metric:       models.MetricAvgSettlement,
		TimeGrouping: models.GroupByYear,
	})

	assert.Empty(t, got)
}

func TestTrendChronologicalOrderingAcrossYearBoundary(t *testing.T) {
	cases := []*models.Case{
		trendCase(100, 2023, time.November, 5),
		trendCase(200, 2024, time.January, 10),
		trendCase(300, 2023, time.December, 20),
	}

	got := ComputeTrend(cases, models.TrendConfig{
		Metric:       models.MetricCaseCount,
		TimeGrouping: models.GroupByMonth,
	})

	require.Len(t, got, 3)
	// Lexical sort would put "2024-01" before "2023-11"; chronological must not.
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01"},
		[]string{got[0].Period, got[1].Period, got[2].Period})
}

func TestTrendBucketMetricAvgSettlement(t *testing.T) {
	cases := []*models.Case{
		trendCase(100, 2024, time.February, 1),
		trendCase(300, 2024, time.September, 1),
	}

	got := ComputeTrend(cases, models.TrendConfig{
		Metric:       models.MetricAvgSettlement,
		TimeGrouping: models.GroupByYear,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "2024", got[0].Period)
	assert.Equal(t, 200.0, got[0].Value)
	assert.Equal(t, 2, got[0].Count)
}

func TestTrendQuarterLabels(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "2024 Q1"},
		{time.March, "2024 Q1"},
		{time.April, "2024 Q2"},
		{time.September, "2024 Q3"},
		{time.December, "2024 Q4"},
	}

	for _, tt := range tests {
		got := ComputeTrend([]*models.Case{trendCase(100, 2024, tt.month, 15)}, models.TrendConfig{
			Metric:       models.MetricCaseCount,
			TimeGrouping: models.GroupByQuarter,
		})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].Period)
	}
}

func TestTrendMedianMetric(t *testing.T) {
	cases := []*models.Case{
		trendCase(100, 2024, time.March, 1),
		trendCase(200, 2024, time.June, 1),
		trendCase(900, 2024, time.October, 1),
	}

	got := ComputeTrend(cases, models.TrendConfig{
		Metric:       models.MetricMedianSettlement,
		TimeGrouping: models.GroupByYear,
	})

	require.Len(t, got, 1)
	assert.Equal(t, 200.0, got[0].Value)
}

func TestTrendAvgClassSizeMetric(t *testing.T) {
	a := trendCase(100, 2024, time.March, 1)
	a.ClassSize = 1000
	b := trendCase(200, 2024, time.June, 1)
	b.ClassSize = 3000

	got := ComputeTrend([]*models.Case{a, b}, models.TrendConfig{
		Metric:       models.MetricAvgClassSize,
		TimeGrouping: models.GroupByYear,
	})

	require.Len(t, got, 1)
	assert.Equal(t, 2000.0, got[0].Value)
}

func TestTrendAppliesCriteriaAndDateRange(t *testing.T) {
	ny := trendCase(100, 2023, time.May, 1)
	ny.State = "NY"
	ca := trendCase(200, 2023, time.June, 1)
	ca.State = "CA"
	late := trendCase(300, 2024, time.June, 1)
	late.State = "NY"

	from := dated(2023, time.January, 1)
	to := dated(2023, time.December, 31)

	got := ComputeTrend([]*models.Case{ny, ca, late}, models.TrendConfig{
		Metric:       models.MetricTotalSettlement,
		TimeGrouping: models.GroupByYear,
		DateRange:    &models.DateRange{From: &from, To: &to},
		Criteria:     models.FilterCriteria{States: []string{"NY"}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "2023", got[0].Period)
	assert.Equal(t, 100.0, got[0].Value)
	assert.Equal(t, 1, got[0].Count)
}

func TestTrendNoSyntheticBuckets(t *testing.T) {
	cases := []*models.Case{
		trendCase(100, 2021, time.March, 1),
		trendCase(200, 2024, time.March, 1),
	}

	got := ComputeTrend(cases, models.TrendConfig{
		Metric:       models.MetricCaseCount,
		TimeGrouping: models.GroupByYear,
	})

	// Years with no cases must not appear as zero-filled buckets.
	require.Len(t, got, 2)
	assert.Equal(t, "2021", got[0].Period)
	assert.Equal(t, "2024", got[1].Period)
}
