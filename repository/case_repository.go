package repository

import (
	"context"

	"settletrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// caseColumns is the canonical column list shared by every query in
// this repository; scanCase must stay in the same order.
const caseColumns = `
	id, name, docket_id, court, state, year, date,
	settlement_amount, base_settlement_amount, contingent_settlement_amount,
	attorney_fees_reimbursement, claims_admin_costs, base_cash_compensation,
	max_reimbursement_documented, max_reimbursement_undocumented,
	supplemental_reimbursement, injunctive_relief_amount, credit_monitoring_amount,
	lodestar_amount, pro_rata_amount,
	class_size, claims_submitted,
	attorney_fees_percentage, claims_submitted_percent, multiplier,
	is_settlement_capped, is_multi_district_litigation, has_minor_subclass,
	allow_both_doc_and_undoc, has_pro_rata_adjustment, credit_monitoring,
	attorney_fees_paid_from_fund, class_rep_awards_from_fund, claims_admin_costs_from_fund,
	settlement_type, attorney_fees_method, excess_funds_disposition, case_type,
	pii_affected, class_type, injunctive_relief, third_party_assessments,
	summary, cause_of_breach, defense_counsel, plaintiff_counsel, judge_name,
	citations, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	c := &models.Case{}
	err := row.Scan(
		&c.ID, &c.Name, &c.DocketID, &c.Court, &c.State, &c.Year, &c.Date,
		&c.SettlementAmount, &c.BaseSettlementAmount, &c.ContingentSettlementAmount,
		&c.AttorneyFeesReimbursement, &c.ClaimsAdminCosts, &c.BaseCashCompensation,
		&c.MaxReimbursementDocumented, &c.MaxReimbursementUndocumented,
		&c.SupplementalReimbursement, &c.InjunctiveReliefAmount, &c.CreditMonitoringAmount,
		&c.LodestarAmount, &c.ProRataAmount,
		&c.ClassSize, &c.ClaimsSubmitted,
		&c.AttorneyFeesPercentage, &c.ClaimsSubmittedPercent, &c.Multiplier,
		&c.IsSettlementCapped, &c.IsMultiDistrictLitigation, &c.HasMinorSubclass,
		&c.AllowBothDocAndUndoc, &c.HasProRataAdjustment, &c.CreditMonitoring,
		&c.AttorneyFeesPaidFromFund, &c.ClassRepAwardsFromFund, &c.ClaimsAdminCostsFromFund,
		&c.SettlementType, &c.AttorneyFeesMethod, &c.ExcessFundsDisposition, &c.CaseType,
		&c.PIIAffected, &c.ClassType, &c.InjunctiveRelief, &c.ThirdPartyAssessments,
		&c.Summary, &c.CauseOfBreach, &c.DefenseCounsel, &c.PlaintiffCounsel, &c.JudgeName,
		&c.Citations, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func caseArgs(c *models.Case) []any {
	return []any{
		c.Name, c.DocketID, c.Court, c.State, c.Year, c.Date,
		c.SettlementAmount, c.BaseSettlementAmount, c.ContingentSettlementAmount,
		c.AttorneyFeesReimbursement, c.ClaimsAdminCosts, c.BaseCashCompensation,
		c.MaxReimbursementDocumented, c.MaxReimbursementUndocumented,
		c.SupplementalReimbursement, c.InjunctiveReliefAmount, c.CreditMonitoringAmount,
		c.LodestarAmount, c.ProRataAmount,
		c.ClassSize, c.ClaimsSubmitted,
		c.AttorneyFeesPercentage, c.ClaimsSubmittedPercent, c.Multiplier,
		c.IsSettlementCapped, c.IsMultiDistrictLitigation, c.HasMinorSubclass,
		c.AllowBothDocAndUndoc, c.HasProRataAdjustment, c.CreditMonitoring,
		c.AttorneyFeesPaidFromFund, c.ClassRepAwardsFromFund, c.ClaimsAdminCostsFromFund,
		c.SettlementType, c.AttorneyFeesMethod, c.ExcessFundsDisposition, c.CaseType,
		c.PIIAffected, c.ClassType, c.InjunctiveRelief, c.ThirdPartyAssessments,
		c.Summary, c.CauseOfBreach, c.DefenseCounsel, c.PlaintiffCounsel, c.JudgeName,
		c.Citations,
	}
}

// CaseRepository handles database operations for settlement cases
type CaseRepository struct {
	db *pgxpool.Pool
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create creates a new case record
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (
			name, docket_id, court, state, year, date,
			settlement_amount, base_settlement_amount, contingent_settlement_amount,
			attorney_fees_reimbursement, claims_admin_costs, base_cash_compensation,
			max_reimbursement_documented, max_reimbursement_undocumented,
			supplemental_reimbursement, injunctive_relief_amount, credit_monitoring_amount,
			lodestar_amount, pro_rata_amount,
			class_size, claims_submitted,
			attorney_fees_percentage, claims_submitted_percent, multiplier,
			is_settlement_capped, is_multi_district_litigation, has_minor_subclass,
			allow_both_doc_and_undoc, has_pro_rata_adjustment, credit_monitoring,
			attorney_fees_paid_from_fund, class_rep_awards_from_fund, claims_admin_costs_from_fund,
			settlement_type, attorney_fees_method, excess_funds_disposition, case_type,
			pii_affected, class_type, injunctive_relief, third_party_assessments,
			summary, cause_of_breach, defense_counsel, plaintiff_counsel, judge_name,
			citations
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44,
			$45, $46, $47
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, caseArgs(c)...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	return err
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	query := `SELECT` + caseColumns + `
		FROM cases
		WHERE id = $1`

	return scanCase(r.db.QueryRow(ctx, query, id))
}

// List retrieves the full case collection ordered by date. Filtering
// and statistics happen in memory over this snapshot.
func (r *CaseRepository) List(ctx context.Context) ([]*models.Case, error) {
	query := `SELECT` + caseColumns + `
		FROM cases
		ORDER BY date, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// Update updates a case record
func (r *CaseRepository) Update(ctx context.Context, c *models.Case) error {
	query := `
		UPDATE cases SET
			name = $2, docket_id = $3, court = $4, state = $5, year = $6, date = $7,
			settlement_amount = $8, base_settlement_amount = $9, contingent_settlement_amount = $10,
			attorney_fees_reimbursement = $11, claims_admin_costs = $12, base_cash_compensation = $13,
			max_reimbursement_documented = $14, max_reimbursement_undocumented = $15,
			supplemental_reimbursement = $16, injunctive_relief_amount = $17, credit_monitoring_amount = $18,
			lodestar_amount = $19, pro_rata_amount = $20,
			class_size = $21, claims_submitted = $22,
			attorney_fees_percentage = $23, claims_submitted_percent = $24, multiplier = $25,
			is_settlement_capped = $26, is_multi_district_litigation = $27, has_minor_subclass = $28,
			allow_both_doc_and_undoc = $29, has_pro_rata_adjustment = $30, credit_monitoring = $31,
			attorney_fees_paid_from_fund = $32, class_rep_awards_from_fund = $33, claims_admin_costs_from_fund = $34,
			settlement_type = $35, attorney_fees_method = $36, excess_funds_disposition = $37, case_type = $38,
			pii_affected = $39, class_type = $40, injunctive_relief = $41, third_party_assessments = $42,
			summary = $43, cause_of_breach = $44, defense_counsel = $45, plaintiff_counsel = $46, judge_name = $47,
			citations = $48,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	args := append([]any{c.ID}, caseArgs(c)...)
	err := r.db.QueryRow(ctx, query, args...).Scan(&c.UpdatedAt)

	return err
}

// Delete deletes a case record
func (r *CaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cases WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
