package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SettlementType represents the approval stage of a settlement
type SettlementType string

const (
	SettlementTypePreliminary SettlementType = "Preliminary"
	SettlementTypeFinal       SettlementType = "Final"

	// SettlementTypeBoth is a sentinel accepted in filter criteria only.
	// When present the settlement-type dimension imposes no constraint.
	SettlementTypeBoth SettlementType = "Both"
)

// AttorneyFeesMethod represents how attorney fees were calculated
type AttorneyFeesMethod string

const (
	FeesMethodPercentage AttorneyFeesMethod = "Percentage"
	FeesMethodLodestar   AttorneyFeesMethod = "Lodestar"
)

// ExcessFundsDisposition represents what happens to unclaimed settlement funds
type ExcessFundsDisposition string

const (
	ExcessFundsRedistribution ExcessFundsDisposition = "Redistribution"
	ExcessFundsCyPres         ExcessFundsDisposition = "Cy pres"
	ExcessFundsReversion      ExcessFundsDisposition = "Reversion"
)

// Citation records where an extracted field value came from in the
// source documents. Provenance only, never used in computation.
type Citation struct {
	DocumentName string `json:"document_name"`
	PageNumber   int    `json:"page_number"` // 1-based
	Quote        string `json:"quote"`
}

// Citations maps a case field name to its citation
type Citations map[string]Citation

// Value implements driver.Valuer for JSONB
func (c Citations) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *Citations) Scan(value interface{}) error {
	if value == nil {
		*c = make(Citations)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*c = make(Citations)
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// Case represents one class-action settlement record
type Case struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	DocketID string    `json:"docket_id"`
	Court    string    `json:"court"`
	State    string    `json:"state"`
	Year     int       `json:"year"`
	Date     time.Time `json:"date"`

	// Money. Optional amounts are nil when not applicable to the case.
	SettlementAmount             float64  `json:"settlement_amount"`
	BaseSettlementAmount         *float64 `json:"base_settlement_amount,omitempty"`
	ContingentSettlementAmount   *float64 `json:"contingent_settlement_amount,omitempty"`
	AttorneyFeesReimbursement    *float64 `json:"attorney_fees_reimbursement,omitempty"`
	ClaimsAdminCosts             *float64 `json:"claims_admin_costs,omitempty"`
	BaseCashCompensation         *float64 `json:"base_cash_compensation,omitempty"`
	MaxReimbursementDocumented   *float64 `json:"max_reimbursement_documented,omitempty"`
	MaxReimbursementUndocumented *float64 `json:"max_reimbursement_undocumented,omitempty"`
	SupplementalReimbursement    *float64 `json:"supplemental_reimbursement,omitempty"`
	InjunctiveReliefAmount       *float64 `json:"injunctive_relief_amount,omitempty"`
	CreditMonitoringAmount       *float64 `json:"credit_monitoring_amount,omitempty"`
	LodestarAmount               *float64 `json:"lodestar_amount,omitempty"`
	ProRataAmount                *float64 `json:"pro_rata_amount,omitempty"`

	ClassSize       int  `json:"class_size"`
	ClaimsSubmitted *int `json:"claims_submitted,omitempty"`

	AttorneyFeesPercentage *float64 `json:"attorney_fees_percentage,omitempty"`
	ClaimsSubmittedPercent *float64 `json:"claims_submitted_percent,omitempty"`
	Multiplier             *float64 `json:"multiplier,omitempty"`

	IsSettlementCapped        bool `json:"is_settlement_capped"`
	IsMultiDistrictLitigation bool `json:"is_multi_district_litigation"`
	HasMinorSubclass          bool `json:"has_minor_subclass"`
	AllowBothDocAndUndoc      bool `json:"allow_both_doc_and_undoc"`
	HasProRataAdjustment      bool `json:"has_pro_rata_adjustment"`
	CreditMonitoring          bool `json:"credit_monitoring"`
	AttorneyFeesPaidFromFund  bool `json:"attorney_fees_paid_from_fund"`
	ClassRepAwardsFromFund    bool `json:"class_rep_awards_from_fund"`
	ClaimsAdminCostsFromFund  bool `json:"claims_admin_costs_from_fund"`

	SettlementType         SettlementType         `json:"settlement_type"`
	AttorneyFeesMethod     AttorneyFeesMethod     `json:"attorney_fees_method"`
	ExcessFundsDisposition ExcessFundsDisposition `json:"excess_funds_disposition"`
	CaseType               string                 `json:"case_type"`

	PIIAffected           []string `json:"pii_affected"`
	ClassType             []string `json:"class_type"`
	InjunctiveRelief      []string `json:"injunctive_relief"`
	ThirdPartyAssessments []string `json:"third_party_assessments"`

	Summary          string `json:"summary"`
	CauseOfBreach    string `json:"cause_of_breach"`
	DefenseCounsel   string `json:"defense_counsel"`
	PlaintiffCounsel string `json:"plaintiff_counsel"`
	JudgeName        string `json:"judge_name"`

	Citations Citations `json:"citations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
