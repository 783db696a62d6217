package service

import (
	"context"
	"errors"

	"settletrack-backend/models"
	"settletrack-backend/repository"

	"github.com/google/uuid"
)

// ReviewService handles extraction ingestion and QC reconciliation
type ReviewService struct {
	caseRepo       *repository.CaseRepository
	extractionRepo *repository.ExtractionRepository
	reviewRepo     *repository.FieldReviewRepository
}

// ReviewServiceOption is a functional option for ReviewService
type ReviewServiceOption func(*ReviewService)

// ReviewWithCaseRepository sets the case repository
func ReviewWithCaseRepository(repo *repository.CaseRepository) ReviewServiceOption {
	return func(s *ReviewService) {
		s.caseRepo = repo
	}
}

// ReviewWithExtractionRepository sets the extraction repository
func ReviewWithExtractionRepository(repo *repository.ExtractionRepository) ReviewServiceOption {
	return func(s *ReviewService) {
		s.extractionRepo = repo
	}
}

// ReviewWithFieldReviewRepository sets the field review repository
func ReviewWithFieldReviewRepository(repo *repository.FieldReviewRepository) ReviewServiceOption {
	return func(s *ReviewService) {
		s.reviewRepo = repo
	}
}

// NewReviewService creates a new review service
func NewReviewService(opts ...ReviewServiceOption) *ReviewService {
	s := &ReviewService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrNoExtractions = errors.New("case has no extraction runs")
)

// CreateExtraction ingests one pre-computed extraction run for a case
func (s *ReviewService) CreateExtraction(ctx context.Context, run *models.ExtractionRun) error {
	if _, err := s.caseRepo.GetByID(ctx, run.CaseID); err != nil {
		return ErrCaseNotFound
	}
	return s.extractionRepo.Create(ctx, run)
}

// GetReconciliationRequest represents a reconciliation view request
type GetReconciliationRequest struct {
	CaseID uuid.UUID
}

// GetReconciliationResult lines up a case's extraction runs field by field
// alongside its review history
type GetReconciliationResult struct {
	CaseID      uuid.UUID               `json:"case_id"`
	Runs        []*models.ExtractionRun `json:"runs"`
	Comparisons []FieldComparison       `json:"comparisons"`
	Reviews     []*models.FieldReview   `json:"reviews"`
}

// GetReconciliation builds the field-by-field comparison of a case's
// extraction runs for the QC review screen
func (s *ReviewService) GetReconciliation(ctx context.Context, req GetReconciliationRequest) (*GetReconciliationResult, error) {
	if _, err := s.caseRepo.GetByID(ctx, req.CaseID); err != nil {
		return nil, ErrCaseNotFound
	}

	runs, err := s.extractionRepo.ListByCaseID(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNoExtractions
	}

	reviews, err := s.reviewRepo.ListByCaseID(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	return &GetReconciliationResult{
		CaseID:      req.CaseID,
		Runs:        runs,
		Comparisons: buildReconciliation(runs),
		Reviews:     reviews,
	}, nil
}

// ReviewFieldRequest represents a reviewer approving or editing one field
type ReviewFieldRequest struct {
	CaseID        uuid.UUID
	ReviewerID    uuid.UUID
	FieldName     string
	ApprovedValue interface{}
	Note          *string
}

// ReviewFieldResult represents the case after the approved value is applied
type ReviewFieldResult struct {
	Case   *models.Case
	Review *models.FieldReview
}

// ReviewField applies a reviewer-approved value to a case field and
// appends the decision to the audit log. The case is updated first; a
// review entry without an applied value would misrepresent the record.
func (s *ReviewService) ReviewField(ctx context.Context, req ReviewFieldRequest) (*ReviewFieldResult, error) {
	c, err := s.caseRepo.GetByID(ctx, req.CaseID)
	if err != nil {
		return nil, ErrCaseNotFound
	}

	if err := applyFieldValue(c, req.FieldName, req.ApprovedValue); err != nil {
		return nil, err
	}

	if err := s.caseRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	review := &models.FieldReview{
		CaseID:        req.CaseID,
		ReviewerID:    req.ReviewerID,
		FieldName:     req.FieldName,
		ApprovedValue: req.ApprovedValue,
		Note:          req.Note,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return &ReviewFieldResult{Case: c, Review: review}, nil
}
