package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SavedCriteria wraps FilterCriteria for JSONB storage
type SavedCriteria FilterCriteria

// Value implements driver.Valuer for JSONB
func (s SavedCriteria) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *SavedCriteria) Scan(value interface{}) error {
	if value == nil {
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
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// SavedSearch represents a named filter configuration saved by a user
type SavedSearch struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Name      string        `json:"name"`
	Criteria  SavedCriteria `json:"criteria"`
	IsDefault bool          `json:"is_default"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
