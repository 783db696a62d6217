package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractedField is one structured field value produced by an AI model,
// with the citation pointing at where in the source documents it was found
type ExtractedField struct {
	Value    interface{} `json:"value"`
	Citation *Citation   `json:"citation,omitempty"`
}

// ExtractedFields maps a case field name to its extracted value
type ExtractedFields map[string]ExtractedField

// Value implements driver.Valuer for JSONB
func (e ExtractedFields) Value() (driver.Value, error) {
	return json.Marshal(e)
}

// Scan implements sql.Scanner for JSONB
func (e *ExtractedFields) Scan(value interface{}) error {
	if value == nil {
		*e = make(ExtractedFields)
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
		*e = make(ExtractedFields)
		return nil
	}

	return json.Unmarshal(bytes, e)
}

// ExtractionRun represents one AI model's extraction of a case's structured
// fields. Runs are ingested pre-computed; the service never invokes a model.
type ExtractionRun struct {
	ID        uuid.UUID       `json:"id"`
	CaseID    uuid.UUID       `json:"case_id"`
	ModelName string          `json:"model_name"`
	Fields    ExtractedFields `json:"fields"`
	CreatedAt time.Time       `json:"created_at"`
}

// FieldReview is one entry in the QC audit log: a reviewer approving or
// editing the value of a single case field
type FieldReview struct {
	ID            uuid.UUID   `json:"id"`
	CaseID        uuid.UUID   `json:"case_id"`
	ReviewerID    uuid.UUID   `json:"reviewer_id"`
	FieldName     string      `json:"field_name"`
	ApprovedValue interface{} `json:"approved_value"`
	Note          *string     `json:"note,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
