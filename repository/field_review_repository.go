package repository

import (
	"context"

	"settletrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FieldReviewRepository handles database operations for the QC audit log
type FieldReviewRepository struct {
	db *pgxpool.Pool
}

// NewFieldReviewRepository creates a new field review repository
func NewFieldReviewRepository(db *pgxpool.Pool) *FieldReviewRepository {
	return &FieldReviewRepository{db: db}
}

// Create appends a field review entry
func (r *FieldReviewRepository) Create(ctx context.Context, review *models.FieldReview) error {
	query := `
		INSERT INTO field_reviews (
			case_id, reviewer_id, field_name, approved_value, note
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		review.CaseID,
		review.ReviewerID,
		review.FieldName,
		review.ApprovedValue,
		review.Note,
	).Scan(&review.ID, &review.CreatedAt)

	return err
}

// ListByCaseID retrieves the review history for a case, newest first
func (r *FieldReviewRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.FieldReview, error) {
	query := `
		SELECT id, case_id, reviewer_id, field_name, approved_value, note, created_at
		FROM field_reviews
		WHERE case_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.FieldReview
	for rows.Next() {
		review := &models.FieldReview{}
		err := rows.Scan(
			&review.ID,
			&review.CaseID,
			&review.ReviewerID,
			&review.FieldName,
			&review.ApprovedValue,
			&review.Note,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}
