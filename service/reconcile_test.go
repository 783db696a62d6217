package service

import (
	"testing"

	"settletrack-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(model string, fields models.ExtractedFields) *models.ExtractionRun {
	return &models.ExtractionRun{ModelName: model, Fields: fields}
}

func TestBuildReconciliationConsensus(t *testing.T) {
	runs := []*models.ExtractionRun{
		run("model-a", models.ExtractedFields{
			"settlement_amount": {Value: 5000000.0},
			"state":             {Value: "CA"},
		}),
		run("model-b", models.ExtractedFields{
			"settlement_amount": {Value: 5000000.0},
			"state":             {Value: "NY"},
		}),
	}

	comparisons := buildReconciliation(runs)
	require.Len(t, comparisons, 2)

	// Sorted by field name
	assert.Equal(t, "settlement_amount", comparisons[0].FieldName)
	assert.True(t, comparisons[0].Consensus)
	assert.Equal(t, 5000000.0, comparisons[0].ConsensusValue)

	assert.Equal(t, "state", comparisons[1].FieldName)
	assert.False(t, comparisons[1].Consensus)
	assert.Nil(t, comparisons[1].ConsensusValue)
	assert.Equal(t, "CA", comparisons[1].Values["model-a"])
	assert.Equal(t, "NY", comparisons[1].Values["model-b"])
}

func TestBuildReconciliationMissingFieldDoesNotVote(t *testing.T) {
	runs := []*models.ExtractionRun{
		run("model-a", models.ExtractedFields{"judge_name": {Value: "Hon. Smith"}}),
		run("model-b", models.ExtractedFields{}),
	}

	comparisons := buildReconciliation(runs)
	require.Len(t, comparisons, 1)
	assert.True(t, comparisons[0].Consensus)
	assert.Equal(t, "Hon. Smith", comparisons[0].ConsensusValue)
	assert.NotContains(t, comparisons[0].Values, "model-b")
}

func TestBuildReconciliationCitationsCarried(t *testing.T) {
	citation := &models.Citation{DocumentName: "settlement.pdf", PageNumber: 12, Quote: "shall pay"}
	runs := []*models.ExtractionRun{
		run("model-a", models.ExtractedFields{
			"settlement_amount": {Value: 1000.0, Citation: citation},
		}),
	}

	comparisons := buildReconciliation(runs)
	require.Len(t, comparisons, 1)
	assert.Equal(t, citation, comparisons[0].Citations["model-a"])
}

func TestApplyFieldValueCoercions(t *testing.T) {
	c := &models.Case{}

	require.NoError(t, applyFieldValue(c, "settlement_amount", 2500000.5))
	assert.Equal(t, 2500000.5, c.SettlementAmount)

	// JSON numbers arrive as float64 even for integer targets
	require.NoError(t, applyFieldValue(c, "class_size", 150000.0))
	assert.Equal(t, 150000, c.ClassSize)

	require.NoError(t, applyFieldValue(c, "claims_submitted", 4200.0))
	require.NotNil(t, c.ClaimsSubmitted)
	assert.Equal(t, 4200, *c.ClaimsSubmitted)

	require.NoError(t, applyFieldValue(c, "claims_submitted", nil))
	assert.Nil(t, c.ClaimsSubmitted)

	require.NoError(t, applyFieldValue(c, "credit_monitoring", true))
	assert.True(t, c.CreditMonitoring)

	require.NoError(t, applyFieldValue(c, "judge_name", "Hon. Rivera"))
	assert.Equal(t, "Hon. Rivera", c.JudgeName)

	require.NoError(t, applyFieldValue(c, "pii_affected", []interface{}{"SSN", "Email"}))
	assert.Equal(t, []string{"SSN", "Email"}, c.PIIAffected)
}

func TestApplyFieldValueRejectsUnknownField(t *testing.T) {
	c := &models.Case{}
	err := applyFieldValue(c, "citations", "tampered")
	assert.Error(t, err)
}

func TestApplyFieldValueRejectsWrongType(t *testing.T) {
	c := &models.Case{}
	assert.Error(t, applyFieldValue(c, "settlement_amount", "a lot"))
	assert.Error(t, applyFieldValue(c, "credit_monitoring", "yes"))
	assert.Error(t, applyFieldValue(c, "pii_affected", []interface{}{"SSN", 42}))
}
