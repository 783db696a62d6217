package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settletrack-backend/models"
)

func sampleCases() []*models.Case {
	return []*models.Case{
		{
			ID:                        uuid.New(),
			Name:                      "In re Acme Data Breach Litigation",
			DocketID:                  "1:21-cv-01234",
			Court:                     "N.D. Cal.",
			State:                     "CA",
			Year:                      2021,
			Date:                      dated(2021, time.March, 12),
			SettlementAmount:          5000000,
			ClassSize:                 120000,
			SettlementType:            models.SettlementTypeFinal,
			PIIAffected:               []string{"SSN", "Email"},
			ClassType:                 []string{"Consumers"},
			CauseOfBreach:             "Ransomware",
			IsMultiDistrictLitigation: true,
			CreditMonitoring:          true,
			Summary:                   "Ransomware attack exposing customer records",
		},
		{
			ID:               uuid.New(),
			Name:             "Smith v. Widget Corp",
			DocketID:         "2:22-cv-00777",
			Court:            "S.D.N.Y.",
			State:            "NY",
			Year:             2022,
			Date:             dated(2022, time.July, 1),
			SettlementAmount: 1200000,
			ClassSize:        8000,
			SettlementType:   models.SettlementTypePreliminary,
			PIIAffected:      []string{"Email"},
			ClassType:        []string{"Employees"},
			CauseOfBreach:    "Phishing",
			HasMinorSubclass: true,
			Summary:          "Phishing compromise of HR systems",
		},
		{
			ID:               uuid.New(),
			Name:             "Doe v. HealthFirst",
			DocketID:         "3:23-cv-04567",
			Court:            "D. Mass.",
			State:            "MA",
			Year:             2023,
			Date:             dated(2023, time.November, 20),
			SettlementAmount: 9800000,
			ClassSize:        450000,
			SettlementType:   models.SettlementTypeFinal,
			PIIAffected:      []string{"SSN", "Medical"},
			ClassType:        []string{"Consumers", "Patients"},
			CauseOfBreach:    "Ransomware",
			CreditMonitoring: true,
			Summary:          "Hospital network intrusion",
		},
	}
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	cases := sampleCases()

	filtered := FilterCases(cases, models.FilterCriteria{})

	require.Len(t, filtered, len(cases))
	for i := range cases {
		assert.Same(t, cases[i], filtered[i], "order must be preserved")
	}
}

func TestFilterIsStable(t *testing.T) {
	cases := sampleCases()

	filtered := FilterCases(cases, models.FilterCriteria{CausesOfBreach: []string{"Ransomware"}})

	require.Len(t, filtered, 2)
	assert.Equal(t, "In re Acme Data Breach Litigation", filtered[0].Name)
	assert.Equal(t, "Doe v. HealthFirst", filtered[1].Name)
}

func TestFilterIdempotence(t *testing.T) {
	cases := sampleCases()
	criteria := models.FilterCriteria{States: []string{"CA", "MA"}}

	once := FilterCases(cases, criteria)
	twice := FilterCases(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterMonotonicity(t *testing.T) {
	cases := sampleCases()
	loose := models.FilterCriteria{CausesOfBreach: []string{"Ransomware"}}
	tight := models.FilterCriteria{
		CausesOfBreach:   []string{"Ransomware"},
		States:           []string{"CA"},
		CreditMonitoring: ptrB(true),
	}

	looseResult := FilterCases(cases, loose)
	tightResult := FilterCases(cases, tight)

	assert.Subset(t, looseResult, tightResult, "adding constraints must only narrow the result")
}

func TestFilterTextSearch(t *testing.T) {
	cases := sampleCases()

	tests := []struct {
		name string
		term string
		want int
	}{
		{"matches name case-insensitively", "acme", 1},
		{"matches docket id", "22-cv-00777", 1},
		{"matches court", "n.d. cal", 1},
		{"matches summary", "intrusion", 1},
		{"no match", "zzz-nonexistent", 0},
		{"blank term is vacuous", "   ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterCases(cases, models.FilterCriteria{Search: tt.term})
			assert.Len(t, filtered, tt.want)
		})
	}
}

func TestFilterSetMembership(t *testing.T) {
	cases := sampleCases()

	filtered := FilterCases(cases, models.FilterCriteria{States: []string{"NY", "MA"}})

	require.Len(t, filtered, 2)
	assert.Equal(t, "NY", filtered[0].State)
	assert.Equal(t, "MA", filtered[1].State)
}

func TestFilterMultiValuedIntersection(t *testing.T) {
	cases := sampleCases()

	// Any overlap between the case's set and the filter set includes the case.
	filtered := FilterCases(cases, models.FilterCriteria{PIIAffected: []string{"Medical", "SSN"}})

	require.Len(t, filtered, 2)
	assert.Equal(t, "CA", filtered[0].State)
	assert.Equal(t, "MA", filtered[1].State)
}

func TestFilterNumericRanges(t *testing.T) {
	cases := sampleCases()

	t.Run("inclusive bounds", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{
			YearRange: &models.IntRange{From: ptrI(2021), To: ptrI(2022)},
		})
		assert.Len(t, filtered, 2)
	})

	t.Run("open lower bound", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{
			SettlementAmountRange: &models.FloatRange{To: ptrF(2000000)},
		})
		require.Len(t, filtered, 1)
		assert.Equal(t, "NY", filtered[0].State)
	})

	t.Run("open upper bound", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{
			ClassSizeRange: &models.IntRange{From: ptrI(100000)},
		})
		assert.Len(t, filtered, 2)
	})

	t.Run("bound equal to value is included", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{
			SettlementAmountRange: &models.FloatRange{From: ptrF(1200000), To: ptrF(1200000)},
		})
		assert.Len(t, filtered, 1)
	})
}

func TestFilterBooleanThreeState(t *testing.T) {
	cases := sampleCases()

	t.Run("unset is vacuous", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{})
		assert.Len(t, filtered, 3)
	})

	t.Run("true matches only true", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{IsMultiDistrictLitigation: ptrB(true)})
		require.Len(t, filtered, 1)
		assert.Equal(t, "CA", filtered[0].State)
	})

	t.Run("false matches only false", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{IsMultiDistrictLitigation: ptrB(false)})
		assert.Len(t, filtered, 2)
	})
}

func TestFilterSettlementTypeBothSentinel(t *testing.T) {
	cases := sampleCases()

	t.Run("specific type narrows", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{SettlementTypes: []string{"Final"}})
		assert.Len(t, filtered, 2)
	})

	t.Run("Both alongside specific types is vacuous", func(t *testing.T) {
		filtered := FilterCases(cases, models.FilterCriteria{SettlementTypes: []string{"Final", "Both"}})
		assert.Len(t, filtered, 3)
	})
}

func TestFilterCombinesDimensionsWithAnd(t *testing.T) {
	cases := sampleCases()

	filtered := FilterCases(cases, models.FilterCriteria{
		CausesOfBreach:   []string{"Ransomware"},
		CreditMonitoring: ptrB(true),
		YearRange:        &models.IntRange{From: ptrI(2023)},
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "Doe v. HealthFirst", filtered[0].Name)
}
