package analytics

import (
	"time"

	"github.com/google/uuid"

	"settletrack-backend/models"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrB(v bool) *bool       { return &v }

func dated(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// amountCase builds a minimal case with the given settlement amount.
func amountCase(amount float64) *models.Case {
	return &models.Case{
		ID:               uuid.New(),
		SettlementAmount: amount,
		Date:             dated(2024, time.January, 15),
		Year:             2024,
	}
}
