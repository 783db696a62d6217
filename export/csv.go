// Package export serializes filtered case collections for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"settletrack-backend/models"
)

// caseHeader is the fixed column order of case exports. Consumers
// depend on it; changing it breaks round-tripping.
var caseHeader = []string{
	"Case Name",
	"Docket ID",
	"Court",
	"State",
	"Year",
	"Settlement Amount",
	"Class Size",
	"MDL",
	"PII Affected",
	"Cause of Breach",
	"Class Type",
	"Minor Subclass",
	"Defense Counsel",
	"Plaintiff Counsel",
	"Judge",
	"Settlement Type",
	"Date",
	"Summary",
}

// WriteCasesCSV writes the collection as comma-separated text with the
// fixed header row. encoding/csv quotes fields containing commas;
// multi-valued fields are joined with "; ".
func WriteCasesCSV(w io.Writer, cases []*models.Case) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(caseHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range cases {
		if err := csvWriter.Write(caseRow(c)); err != nil {
			return fmt.Errorf("failed to write case %s: %w", c.ID, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func caseRow(c *models.Case) []string {
	return []string{
		c.Name,
		c.DocketID,
		c.Court,
		c.State,
		strconv.Itoa(c.Year),
		formatAmount(c.SettlementAmount),
		strconv.Itoa(c.ClassSize),
		yesNo(c.IsMultiDistrictLitigation),
		joinList(c.PIIAffected),
		c.CauseOfBreach,
		joinList(c.ClassType),
		yesNo(c.HasMinorSubclass),
		c.DefenseCounsel,
		c.PlaintiffCounsel,
		c.JudgeName,
		string(c.SettlementType),
		c.Date.Format("2006-01-02"),
		c.Summary,
	}
}

// formatAmount keeps full precision; display rounding is up to the consumer.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinList(values []string) string {
	return strings.Join(values, "; ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
