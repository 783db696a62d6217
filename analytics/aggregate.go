package analytics

import (
	"github.com/montanaflynn/stats"

	"settletrack-backend/models"
)

// ComputeStatistics summarizes settlement amounts over a case
// collection. Empty input yields the zero struct so callers never need
// nil checks. Median follows the standard deterministic definition:
// middle element for odd counts, average of the two central elements
// for even counts.
func ComputeStatistics(cases []*models.Case) models.AggregateStatistics {
	if len(cases) == 0 {
		return models.AggregateStatistics{}
	}

	amounts := make([]float64, len(cases))
	for i, c := range cases {
		amounts[i] = c.SettlementAmount
	}

	mean, _ := stats.Mean(amounts)
	median, _ := stats.Median(amounts)
	min, _ := stats.Min(amounts)
	max, _ := stats.Max(amounts)
	total, _ := stats.Sum(amounts)

	return models.AggregateStatistics{
		Count:              len(cases),
		Mean:               mean,
		Median:             median,
		Min:                min,
		Max:                max,
		Total:              total,
		AveragePerClaimant: averagePerClaimant(cases, total),
	}
}

// averagePerClaimant divides total settlement by total claims
// submitted across the collection; 0 when no claims are recorded.
func averagePerClaimant(cases []*models.Case, totalSettlement float64) float64 {
	totalClaims := 0
	for _, c := range cases {
		if c.ClaimsSubmitted != nil {
			totalClaims += *c.ClaimsSubmitted
		}
	}
	if totalClaims == 0 {
		return 0
	}
	return totalSettlement / float64(totalClaims)
}

// AverageOfOptional averages only the present values in a collection
// with gaps. Absent values are excluded from both numerator and
// denominator; 0 when no values are present.
func AverageOfOptional(values []*float64) float64 {
	var sum float64
	count := 0
	for _, v := range values {
		if v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// FrequencyOf returns the percentage (0-100) of cases satisfying the
// predicate; 0 for an empty collection.
func FrequencyOf(cases []*models.Case, predicate func(*models.Case) bool) float64 {
	if len(cases) == 0 {
		return 0
	}
	matching := 0
	for _, c := range cases {
		if predicate(c) {
			matching++
		}
	}
	return float64(matching) / float64(len(cases)) * 100
}

// ComputeOverview bundles the aggregate statistics with the Yes/No
// frequency breakdowns and the averages over optional fields. Values
// stay full precision; rounding is a presentation concern.
func ComputeOverview(cases []*models.Case) models.SettlementOverview {
	collect := func(pick func(*models.Case) *float64) []*float64 {
		values := make([]*float64, len(cases))
		for i, c := range cases {
			values[i] = pick(c)
		}
		return values
	}

	return models.SettlementOverview{
		Statistics: ComputeStatistics(cases),

		AttorneyFeesFromFundPct:   FrequencyOf(cases, func(c *models.Case) bool { return c.AttorneyFeesPaidFromFund }),
		ClassRepAwardsFromFundPct: FrequencyOf(cases, func(c *models.Case) bool { return c.ClassRepAwardsFromFund }),
		ClaimsAdminFromFundPct:    FrequencyOf(cases, func(c *models.Case) bool { return c.ClaimsAdminCostsFromFund }),
		CreditMonitoringPct:       FrequencyOf(cases, func(c *models.Case) bool { return c.CreditMonitoring }),
		SettlementCappedPct:       FrequencyOf(cases, func(c *models.Case) bool { return c.IsSettlementCapped }),
		MultiDistrictPct:          FrequencyOf(cases, func(c *models.Case) bool { return c.IsMultiDistrictLitigation }),
		MinorSubclassPct:          FrequencyOf(cases, func(c *models.Case) bool { return c.HasMinorSubclass }),
		ProRataAdjustmentPct:      FrequencyOf(cases, func(c *models.Case) bool { return c.HasProRataAdjustment }),

		AvgAttorneyFeesPercentage:    AverageOfOptional(collect(func(c *models.Case) *float64 { return c.AttorneyFeesPercentage })),
		AvgLodestarAmount:            AverageOfOptional(collect(func(c *models.Case) *float64 { return c.LodestarAmount })),
		AvgMultiplier:                AverageOfOptional(collect(func(c *models.Case) *float64 { return c.Multiplier })),
		AvgProRataAmount:             AverageOfOptional(collect(func(c *models.Case) *float64 { return c.ProRataAmount })),
		AvgSupplementalReimbursement: AverageOfOptional(collect(func(c *models.Case) *float64 { return c.SupplementalReimbursement })),
		AvgCreditMonitoringAmount:    AverageOfOptional(collect(func(c *models.Case) *float64 { return c.CreditMonitoringAmount })),
		AvgInjunctiveReliefAmount:    AverageOfOptional(collect(func(c *models.Case) *float64 { return c.InjunctiveReliefAmount })),
	}
}
