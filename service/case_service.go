package service

import (
	"context"
	"errors"

	"settletrack-backend/analytics"
	"settletrack-backend/models"
	"settletrack-backend/repository"

	"github.com/google/uuid"
)

// CaseService handles case search, statistics and reporting logic
type CaseService struct {
	caseRepo *repository.CaseRepository
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// WithCaseRepository sets the case repository
func WithCaseRepository(repo *repository.CaseRepository) CaseServiceOption {
	return func(s *CaseService) {
		s.caseRepo = repo
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrRepositoryRequired = errors.New("case repository not configured")
)

// SearchCasesRequest represents a case search request
type SearchCasesRequest struct {
	Criteria models.FilterCriteria
}

// SearchCasesResult represents the result of a case search
type SearchCasesResult struct {
	Cases      []*models.Case
	Statistics models.AggregateStatistics
}

// SearchCases filters the full case collection with the request criteria
// and summarizes settlement amounts over the survivors. Filtering is
// in-memory over a fresh snapshot, so results always reflect the latest
// approved values.
func (s *CaseService) SearchCases(ctx context.Context, req SearchCasesRequest) (*SearchCasesResult, error) {
	if s.caseRepo == nil {
		return nil, ErrRepositoryRequired
	}

	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterCases(cases, req.Criteria)

	return &SearchCasesResult{
		Cases:      filtered,
		Statistics: analytics.ComputeStatistics(filtered),
	}, nil
}

// GetCase retrieves a single case by ID
func (s *CaseService) GetCase(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	if s.caseRepo == nil {
		return nil, ErrRepositoryRequired
	}

	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

// CreateCase creates a new case record
func (s *CaseService) CreateCase(ctx context.Context, c *models.Case) error {
	if s.caseRepo == nil {
		return ErrRepositoryRequired
	}
	return s.caseRepo.Create(ctx, c)
}

// UpdateCase updates an existing case record
func (s *CaseService) UpdateCase(ctx context.Context, c *models.Case) error {
	if s.caseRepo == nil {
		return ErrRepositoryRequired
	}
	return s.caseRepo.Update(ctx, c)
}

// DeleteCase deletes a case record
func (s *CaseService) DeleteCase(ctx context.Context, id uuid.UUID) error {
	if s.caseRepo == nil {
		return ErrRepositoryRequired
	}
	return s.caseRepo.Delete(ctx, id)
}

// GetOverviewRequest represents a dashboard overview request
type GetOverviewRequest struct {
	Criteria models.FilterCriteria
}

// GetOverviewResult represents the dashboard overview over the filtered set
type GetOverviewResult struct {
	Overview models.SettlementOverview
}

// GetOverview computes the dashboard overview over the filtered collection
func (s *CaseService) GetOverview(ctx context.Context, req GetOverviewRequest) (*GetOverviewResult, error) {
	if s.caseRepo == nil {
		return nil, ErrRepositoryRequired
	}

	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterCases(cases, req.Criteria)

	return &GetOverviewResult{
		Overview: analytics.ComputeOverview(filtered),
	}, nil
}

// GetTrendsRequest represents a trend series request
type GetTrendsRequest struct {
	Config models.TrendConfig
}

// GetTrendsResult represents the computed trend series
type GetTrendsResult struct {
	Points []models.TrendDataPoint
}

// GetTrends buckets the filtered collection by time and computes the
// configured metric per bucket
func (s *CaseService) GetTrends(ctx context.Context, req GetTrendsRequest) (*GetTrendsResult, error) {
	if s.caseRepo == nil {
		return nil, ErrRepositoryRequired
	}

	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &GetTrendsResult{
		Points: analytics.ComputeTrend(cases, req.Config),
	}, nil
}

// GetBreakdownsRequest represents a breakdown report request
type GetBreakdownsRequest struct {
	Criteria models.FilterCriteria
}

// GetBreakdownsResult represents the breakdown reports over the filtered set
type GetBreakdownsResult struct {
	Relief      models.ReliefBreakdown
	Assessments []models.TagCount
}

// GetBreakdowns computes the injunctive-relief category breakdown and the
// third-party assessment tally over the filtered collection
func (s *CaseService) GetBreakdowns(ctx context.Context, req GetBreakdownsRequest) (*GetBreakdownsResult, error) {
	if s.caseRepo == nil {
		return nil, ErrRepositoryRequired
	}

	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterCases(cases, req.Criteria)

	return &GetBreakdownsResult{
		Relief:      analytics.ComputeReliefBreakdown(filtered, analytics.DefaultReliefCategories),
		Assessments: analytics.ComputeAssessmentTally(filtered),
	}, nil
}
