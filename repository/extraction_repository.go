package repository

import (
	"context"

	"settletrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExtractionRepository handles database operations for extraction runs
type ExtractionRepository struct {
	db *pgxpool.Pool
}

// NewExtractionRepository creates a new extraction repository
func NewExtractionRepository(db *pgxpool.Pool) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

// Create creates a new extraction run record
func (r *ExtractionRepository) Create(ctx context.Context, run *models.ExtractionRun) error {
	query := `
		INSERT INTO extraction_runs (
			case_id, model_name, fields
		) VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		run.CaseID,
		run.ModelName,
		run.Fields,
	).Scan(&run.ID, &run.CreatedAt)

	return err
}

// GetByID retrieves an extraction run by ID
func (r *ExtractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExtractionRun, error) {
	run := &models.ExtractionRun{}
	query := `
		SELECT id, case_id, model_name, fields, created_at
		FROM extraction_runs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&run.ID,
		&run.CaseID,
		&run.ModelName,
		&run.Fields,
		&run.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return run, nil
}

// ListByCaseID retrieves all extraction runs for a case, oldest first
func (r *ExtractionRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.ExtractionRun, error) {
	query := `
		SELECT id, case_id, model_name, fields, created_at
		FROM extraction_runs
		WHERE case_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.ExtractionRun
	for rows.Next() {
		run := &models.ExtractionRun{}
		err := rows.Scan(
			&run.ID,
			&run.CaseID,
			&run.ModelName,
			&run.Fields,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Delete deletes an extraction run record
func (r *ExtractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM extraction_runs WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
