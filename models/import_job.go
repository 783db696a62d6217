package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ImportJobStatus represents the status of a bulk import job
type ImportJobStatus string

const (
	JobStatusPending    ImportJobStatus = "pending"
	JobStatusInProgress ImportJobStatus = "in_progress"
	JobStatusCompleted  ImportJobStatus = "completed"
	JobStatusFailed     ImportJobStatus = "failed"
)

// ImportStep represents a step in the import process
type ImportStep struct {
	Name        string `json:"name"`
	Status      string `json:"status"` // "pending", "in_progress", "completed", "failed"
	Description string `json:"description,omitempty"`
}

// ImportSteps represents a list of import steps
type ImportSteps []ImportStep

// Value implements driver.Valuer for JSONB
func (s ImportSteps) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *ImportSteps) Scan(value interface{}) error {
	if value == nil {
		*s = make(ImportSteps, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = make(ImportSteps, 0)
		return nil
	}

	if len(bytes) == 0 {
		*s = make(ImportSteps, 0)
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// ImportJob represents a bulk case-import job entity
type ImportJob struct {
	ID            uuid.UUID       `json:"id"`
	Status        ImportJobStatus `json:"status"`
	CurrentStep   *string         `json:"current_step,omitempty"`
	Steps         ImportSteps     `json:"steps"`
	TotalRecords  int             `json:"total_records"`
	ImportedCount int             `json:"imported_count"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}
