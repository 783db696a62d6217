package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"settletrack-backend/models"
)

// FieldComparison lines up one case field across every extraction run.
// Consensus means every model that emitted the field agrees on the value.
type FieldComparison struct {
	FieldName      string                      `json:"field_name"`
	Values         map[string]interface{}      `json:"values"` // model name -> extracted value
	Citations      map[string]*models.Citation `json:"citations,omitempty"`
	Consensus      bool                        `json:"consensus"`
	ConsensusValue interface{}                 `json:"consensus_value,omitempty"`
}

// buildReconciliation compares the extraction runs of a case field by
// field. Fields missing from a run simply don't vote; a field emitted by
// a single model is trivially consensual.
func buildReconciliation(runs []*models.ExtractionRun) []FieldComparison {
	fieldNames := make(map[string]struct{})
	for _, run := range runs {
		for name := range run.Fields {
			fieldNames[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(fieldNames))
	for name := range fieldNames {
		names = append(names, name)
	}
	sort.Strings(names)

	comparisons := make([]FieldComparison, 0, len(names))
	for _, name := range names {
		cmp := FieldComparison{
			FieldName: name,
			Values:    make(map[string]interface{}),
			Citations: make(map[string]*models.Citation),
		}

		consensus := true
		var first interface{}
		seen := false
		for _, run := range runs {
			field, ok := run.Fields[name]
			if !ok {
				continue
			}
			cmp.Values[run.ModelName] = field.Value
			if field.Citation != nil {
				cmp.Citations[run.ModelName] = field.Citation
			}
			if !seen {
				first = field.Value
				seen = true
				continue
			}
			if normalizeValue(field.Value) != normalizeValue(first) {
				consensus = false
			}
		}

		cmp.Consensus = consensus
		if consensus {
			cmp.ConsensusValue = first
		}
		comparisons = append(comparisons, cmp)
	}

	return comparisons
}

// normalizeValue renders a value in a canonical form so 1000 and 1000.0
// coming from different JSON decoders compare equal
func normalizeValue(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// applyFieldValue sets one reviewable case field from a reviewer-approved
// value. Values arrive JSON-decoded, so numbers are float64 regardless of
// the target type. Fields outside the whitelist are rejected.
func applyFieldValue(c *models.Case, fieldName string, value interface{}) error {
	switch fieldName {
	case "name":
		return setString(&c.Name, fieldName, value)
	case "docket_id":
		return setString(&c.DocketID, fieldName, value)
	case "court":
		return setString(&c.Court, fieldName, value)
	case "state":
		return setString(&c.State, fieldName, value)
	case "summary":
		return setString(&c.Summary, fieldName, value)
	case "cause_of_breach":
		return setString(&c.CauseOfBreach, fieldName, value)
	case "defense_counsel":
		return setString(&c.DefenseCounsel, fieldName, value)
	case "plaintiff_counsel":
		return setString(&c.PlaintiffCounsel, fieldName, value)
	case "judge_name":
		return setString(&c.JudgeName, fieldName, value)
	case "year":
		return setInt(&c.Year, fieldName, value)
	case "class_size":
		return setInt(&c.ClassSize, fieldName, value)
	case "claims_submitted":
		return setOptionalInt(&c.ClaimsSubmitted, fieldName, value)
	case "settlement_amount":
		return setFloat(&c.SettlementAmount, fieldName, value)
	case "base_settlement_amount":
		return setOptionalFloat(&c.BaseSettlementAmount, fieldName, value)
	case "contingent_settlement_amount":
		return setOptionalFloat(&c.ContingentSettlementAmount, fieldName, value)
	case "attorney_fees_percentage":
		return setOptionalFloat(&c.AttorneyFeesPercentage, fieldName, value)
	case "lodestar_amount":
		return setOptionalFloat(&c.LodestarAmount, fieldName, value)
	case "multiplier":
		return setOptionalFloat(&c.Multiplier, fieldName, value)
	case "credit_monitoring_amount":
		return setOptionalFloat(&c.CreditMonitoringAmount, fieldName, value)
	case "injunctive_relief_amount":
		return setOptionalFloat(&c.InjunctiveReliefAmount, fieldName, value)
	case "pro_rata_amount":
		return setOptionalFloat(&c.ProRataAmount, fieldName, value)
	case "is_settlement_capped":
		return setBool(&c.IsSettlementCapped, fieldName, value)
	case "is_multi_district_litigation":
		return setBool(&c.IsMultiDistrictLitigation, fieldName, value)
	case "has_minor_subclass":
		return setBool(&c.HasMinorSubclass, fieldName, value)
	case "credit_monitoring":
		return setBool(&c.CreditMonitoring, fieldName, value)
	case "has_pro_rata_adjustment":
		return setBool(&c.HasProRataAdjustment, fieldName, value)
	case "pii_affected":
		return setStringList(&c.PIIAffected, fieldName, value)
	case "class_type":
		return setStringList(&c.ClassType, fieldName, value)
	case "injunctive_relief":
		return setStringList(&c.InjunctiveRelief, fieldName, value)
	case "third_party_assessments":
		return setStringList(&c.ThirdPartyAssessments, fieldName, value)
	default:
		return fmt.Errorf("field %q is not reviewable", fieldName)
	}
}

func setString(dst *string, fieldName string, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %q expects a string", fieldName)
	}
	*dst = s
	return nil
}

func setInt(dst *int, fieldName string, value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("field %q expects a number", fieldName)
	}
	*dst = int(f)
	return nil
}

func setOptionalInt(dst **int, fieldName string, value interface{}) error {
	if value == nil {
		*dst = nil
		return nil
	}
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("field %q expects a number or null", fieldName)
	}
	n := int(f)
	*dst = &n
	return nil
}

func setFloat(dst *float64, fieldName string, value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("field %q expects a number", fieldName)
	}
	*dst = f
	return nil
}

func setOptionalFloat(dst **float64, fieldName string, value interface{}) error {
	if value == nil {
		*dst = nil
		return nil
	}
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("field %q expects a number or null", fieldName)
	}
	*dst = &f
	return nil
}

func setBool(dst *bool, fieldName string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("field %q expects a boolean", fieldName)
	}
	*dst = b
	return nil
}

func setStringList(dst *[]string, fieldName string, value interface{}) error {
	raw, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q expects a list of strings", fieldName)
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return fmt.Errorf("field %q expects a list of strings", fieldName)
		}
		list = append(list, s)
	}
	*dst = list
	return nil
}
