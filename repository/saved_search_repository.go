package repository

import (
	"context"

	"settletrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedSearchRepository handles database operations for saved searches
type SavedSearchRepository struct {
	db *pgxpool.Pool
}

// NewSavedSearchRepository creates a new saved search repository
func NewSavedSearchRepository(db *pgxpool.Pool) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

// Create creates a new saved search
func (r *SavedSearchRepository) Create(ctx context.Context, search *models.SavedSearch) error {
	query := `
		INSERT INTO saved_searches (
			user_id, name, criteria, is_default
		) VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		search.UserID,
		search.Name,
		search.Criteria,
		search.IsDefault,
	).Scan(&search.ID, &search.CreatedAt, &search.UpdatedAt)

	return err
}

// ListByUserID retrieves all saved searches for a user
func (r *SavedSearchRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SavedSearch, error) {
	query := `
		SELECT id, user_id, name, criteria, is_default, created_at, updated_at
		FROM saved_searches
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*models.SavedSearch
	for rows.Next() {
		search := &models.SavedSearch{}
		err := rows.Scan(
			&search.ID,
			&search.UserID,
			&search.Name,
			&search.Criteria,
			&search.IsDefault,
			&search.CreatedAt,
			&search.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		searches = append(searches, search)
	}

	return searches, rows.Err()
}

// Delete deletes a saved search
func (r *SavedSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM saved_searches WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
