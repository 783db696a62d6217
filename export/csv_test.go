package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settletrack-backend/models"
)

func exportCase() *models.Case {
	return &models.Case{
		ID:                        uuid.New(),
		Name:                      "In re Acme, Inc. Data Breach Litigation",
		DocketID:                  "1:21-cv-01234",
		Court:                     "N.D. Cal.",
		State:                     "CA",
		Year:                      2021,
		Date:                      time.Date(2021, time.March, 12, 0, 0, 0, 0, time.UTC),
		SettlementAmount:          5250000.5,
		ClassSize:                 120000,
		IsMultiDistrictLitigation: true,
		PIIAffected:               []string{"SSN", "Email"},
		CauseOfBreach:             "Ransomware",
		ClassType:                 []string{"Consumers", "Employees"},
		DefenseCounsel:            "Smith & Jones LLP",
		PlaintiffCounsel:          "Doe, Roe & Partners",
		JudgeName:                 "Hon. Jane Castillo",
		SettlementType:            models.SettlementTypeFinal,
		Summary:                   "Ransomware attack, exposing customer records",
	}
}

func TestWriteCasesCSVHeaderOrder(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCasesCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"Case Name", "Docket ID", "Court", "State", "Year",
		"Settlement Amount", "Class Size", "MDL", "PII Affected",
		"Cause of Breach", "Class Type", "Minor Subclass",
		"Defense Counsel", "Plaintiff Counsel", "Judge",
		"Settlement Type", "Date", "Summary",
	}, records[0])
}

func TestWriteCasesCSVRoundTripsCommas(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCasesCSV(&buf, []*models.Case{exportCase()}))

	// Fields containing commas must come back intact through a CSV reader.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "In re Acme, Inc. Data Breach Litigation", row[0])
	assert.Equal(t, "Doe, Roe & Partners", row[13])
	assert.Equal(t, "Ransomware attack, exposing customer records", row[17])
}

func TestWriteCasesCSVRow(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCasesCSV(&buf, []*models.Case{exportCase()}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	row := records[1]

	assert.Equal(t, "2021", row[4])
	assert.Equal(t, "5250000.5", row[5], "amounts keep full precision")
	assert.Equal(t, "Yes", row[7])
	assert.Equal(t, "SSN; Email", row[8], "multi-valued fields joined with semicolons")
	assert.Equal(t, "Consumers; Employees", row[10])
	assert.Equal(t, "No", row[11])
	assert.Equal(t, "Final", row[15])
	assert.Equal(t, "2021-03-12", row[16])
}
