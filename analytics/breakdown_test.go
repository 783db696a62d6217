package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settletrack-backend/models"
)

func reliefCase(entries ...string) *models.Case {
	c := amountCase(1000000)
	c.InjunctiveRelief = entries
	return c
}

func categoryCount(t *testing.T, breakdown models.ReliefBreakdown, key string) models.CategoryCount {
	t.Helper()
	for _, category := range breakdown.Categories {
		if category.Key == key {
			return category
		}
	}
	t.Fatalf("category %q not in breakdown", key)
	return models.CategoryCount{}
}

func TestReliefBreakdownNonExclusiveCategories(t *testing.T) {
	cases := []*models.Case{
		reliefCase("Employee training and vendor requirements"),
	}

	got := ComputeReliefBreakdown(cases, DefaultReliefCategories)

	// One case, one entry, two category hits.
	assert.Equal(t, 1, categoryCount(t, got, "employee_training").Count)
	assert.Equal(t, 1, categoryCount(t, got, "vendor_requirements").Count)
}

func TestReliefBreakdownCountsCasesNotEntries(t *testing.T) {
	cases := []*models.Case{
		reliefCase("Annual security training", "Phishing training refreshers"),
		reliefCase("Mandatory MFA rollout"),
	}

	got := ComputeReliefBreakdown(cases, DefaultReliefCategories)

	// Two triggering entries on the same case still count it once.
	assert.Equal(t, 1, categoryCount(t, got, "employee_training").Count)
	assert.Equal(t, 50.0, categoryCount(t, got, "employee_training").Percentage)
	assert.Equal(t, 1, categoryCount(t, got, "mfa").Count)
}

func TestReliefBreakdownCaseInsensitiveTriggers(t *testing.T) {
	cases := []*models.Case{
		reliefCase("Deploy MULTI-FACTOR authentication"),
	}

	got := ComputeReliefBreakdown(cases, DefaultReliefCategories)

	assert.Equal(t, 1, categoryCount(t, got, "mfa").Count)
}

func TestReliefBreakdownEmptyCollection(t *testing.T) {
	got := ComputeReliefBreakdown(nil, DefaultReliefCategories)

	require.Len(t, got.Categories, len(DefaultReliefCategories.Categories))
	for _, category := range got.Categories {
		assert.Zero(t, category.Count)
		assert.Zero(t, category.Percentage)
	}
	assert.Empty(t, got.OtherRelief)
}

func TestReliefBreakdownOtherReliefDeduplicatedInOrder(t *testing.T) {
	cases := []*models.Case{
		reliefCase("Employee training", "Data encryption at rest"),
		reliefCase("Employee training", "Quarterly audits"),
	}

	got := ComputeReliefBreakdown(cases, DefaultReliefCategories)

	assert.Equal(t, []string{"Employee training", "Data encryption at rest", "Quarterly audits"}, got.OtherRelief)
}

func TestAssessmentTallyLiteralTags(t *testing.T) {
	a := amountCase(1)
	a.ThirdPartyAssessments = []string{"SOC 2", "Pen Test"}
	b := amountCase(2)
	b.ThirdPartyAssessments = []string{"SOC 2"}
	c := amountCase(3)
	c.ThirdPartyAssessments = []string{"soc 2"} // different literal, no fuzzy matching

	got := ComputeAssessmentTally([]*models.Case{a, b, c})

	require.Len(t, got, 3)
	assert.Equal(t, models.TagCount{Tag: "SOC 2", Count: 2}, got[0])
	assert.ElementsMatch(t, []models.TagCount{
		{Tag: "Pen Test", Count: 1},
		{Tag: "soc 2", Count: 1},
	}, got[1:])
}

func TestAssessmentTallyEmpty(t *testing.T) {
	assert.Empty(t, ComputeAssessmentTally(nil))
}
