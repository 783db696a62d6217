package repository

import (
	"context"
	"time"

	"settletrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImportJobRepository handles database operations for import jobs
type ImportJobRepository struct {
	db *pgxpool.Pool
}

// NewImportJobRepository creates a new import job repository
func NewImportJobRepository(db *pgxpool.Pool) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

// Create creates a new import job
func (r *ImportJobRepository) Create(ctx context.Context, job *models.ImportJob) error {
	query := `
		INSERT INTO import_jobs (
			status, current_step, steps, total_records, imported_count, error_message
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		job.Status,
		job.CurrentStep,
		job.Steps,
		job.TotalRecords,
		job.ImportedCount,
		job.ErrorMessage,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	return err
}

// GetByID retrieves an import job by ID
func (r *ImportJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ImportJob, error) {
	job := &models.ImportJob{}
	query := `
		SELECT id, status, current_step, steps, total_records, imported_count,
			error_message, created_at, updated_at, completed_at
		FROM import_jobs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Status,
		&job.CurrentStep,
		&job.Steps,
		&job.TotalRecords,
		&job.ImportedCount,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	)

	if err != nil {
		return nil, err
	}

	// Ensure Steps is never nil (safeguard in case Scan didn't handle NULL properly)
	if job.Steps == nil {
		job.Steps = make(models.ImportSteps, 0)
	}

	return job, nil
}

// UpdateStatus updates the status of an import job
func (r *ImportJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ImportJobStatus) error {
	query := `
		UPDATE import_jobs SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	return err
}

// UpdateProgress updates the progress of an import job
func (r *ImportJobRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.ImportSteps, importedCount int) error {
	query := `
		UPDATE import_jobs SET
			current_step = $2,
			steps = $3,
			imported_count = $4,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, currentStep, steps, importedCount)
	return err
}

// SetTotalRecords records how many records the validated payload holds
func (r *ImportJobRepository) SetTotalRecords(ctx context.Context, id uuid.UUID, totalRecords int) error {
	query := `
		UPDATE import_jobs SET
			total_records = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, totalRecords)
	return err
}

// Complete marks an import job as completed
func (r *ImportJobRepository) Complete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	query := `
		UPDATE import_jobs SET
			status = $2,
			completed_at = $3,
			updated_at = $3
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.JobStatusCompleted, now)
	return err
}

// Fail marks an import job as failed
func (r *ImportJobRepository) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	query := `
		UPDATE import_jobs SET
			status = $2,
			error_message = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.JobStatusFailed, errorMessage)
	return err
}
