package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settletrack-backend/models"
)

func TestComputeStatisticsEmptyInput(t *testing.T) {
	got := ComputeStatistics(nil)

	assert.Equal(t, models.AggregateStatistics{}, got)
}

func TestComputeStatisticsMedian(t *testing.T) {
	t.Run("odd count takes middle element", func(t *testing.T) {
		cases := []*models.Case{amountCase(3), amountCase(1), amountCase(2)}
		assert.Equal(t, 2.0, ComputeStatistics(cases).Median)
	})

	t.Run("even count averages the two central elements", func(t *testing.T) {
		cases := []*models.Case{amountCase(4), amountCase(1), amountCase(3), amountCase(2)}
		assert.Equal(t, 2.5, ComputeStatistics(cases).Median)
	})
}

func TestComputeStatisticsMeanTotalConsistency(t *testing.T) {
	cases := []*models.Case{amountCase(1000000), amountCase(2000000), amountCase(4500000)}

	got := ComputeStatistics(cases)

	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 7500000.0, got.Total)
	assert.Equal(t, got.Total/float64(got.Count), got.Mean)
	assert.Equal(t, 1000000.0, got.Min)
	assert.Equal(t, 4500000.0, got.Max)
}

func TestAveragePerClaimant(t *testing.T) {
	t.Run("sums both sides across the collection", func(t *testing.T) {
		a := amountCase(1000000)
		a.ClaimsSubmitted = ptrI(100)
		b := amountCase(3000000)
		b.ClaimsSubmitted = ptrI(300)

		got := ComputeStatistics([]*models.Case{a, b})

		assert.Equal(t, 10000.0, got.AveragePerClaimant)
	})

	t.Run("zero denominator yields zero", func(t *testing.T) {
		got := ComputeStatistics([]*models.Case{amountCase(1000000)})
		assert.Zero(t, got.AveragePerClaimant)
	})
}

func TestAverageOfOptionalExcludesGaps(t *testing.T) {
	values := []*float64{ptrF(1000), nil, ptrF(3000)}

	// Gaps leave both numerator and denominator: (1000+3000)/2, not 4000/3.
	assert.Equal(t, 2000.0, AverageOfOptional(values))
}

func TestAverageOfOptionalAllAbsent(t *testing.T) {
	assert.Zero(t, AverageOfOptional([]*float64{nil, nil}))
	assert.Zero(t, AverageOfOptional(nil))
}

func TestFrequencyOfBoundsAndComplement(t *testing.T) {
	cases := []*models.Case{amountCase(1), amountCase(2), amountCase(3)}
	cases[0].CreditMonitoring = true

	offered := func(c *models.Case) bool { return c.CreditMonitoring }
	notOffered := func(c *models.Case) bool { return !c.CreditMonitoring }

	p := FrequencyOf(cases, offered)
	q := FrequencyOf(cases, notOffered)

	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 100.0)
	assert.InDelta(t, 100.0, p+q, 1e-9)
}

func TestFrequencyOfEmptyCollection(t *testing.T) {
	assert.Zero(t, FrequencyOf(nil, func(*models.Case) bool { return true }))
}

func TestComputeOverview(t *testing.T) {
	a := amountCase(1000000)
	a.AttorneyFeesPaidFromFund = true
	a.LodestarAmount = ptrF(400000)
	b := amountCase(3000000)
	c := amountCase(2000000)
	c.LodestarAmount = ptrF(600000)

	got := ComputeOverview([]*models.Case{a, b, c})

	assert.Equal(t, 3, got.Statistics.Count)
	assert.InDelta(t, 100.0/3, got.AttorneyFeesFromFundPct, 1e-9)
	assert.Equal(t, 500000.0, got.AvgLodestarAmount)
	assert.Zero(t, got.AvgMultiplier)
}

func TestFilterThenStatistics(t *testing.T) {
	ny := amountCase(1000000)
	ny.State = "NY"
	ny.ClassSize = 100
	ca := amountCase(2000000)
	ca.State = "CA"
	ca.ClassSize = 200
	cases := []*models.Case{ny, ca}

	filtered := FilterCases(cases, models.FilterCriteria{States: []string{"NY"}})
	require.Len(t, filtered, 1)
	assert.Same(t, ny, filtered[0])

	got := ComputeStatistics(filtered)
	assert.Equal(t, models.AggregateStatistics{
		Count:  1,
		Mean:   1000000,
		Median: 1000000,
		Min:    1000000,
		Max:    1000000,
		Total:  1000000,
	}, got)
}
