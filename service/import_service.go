package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"settletrack-backend/models"
	"settletrack-backend/repository"

	"github.com/google/uuid"
)

// ImportService handles bulk case-import jobs
type ImportService struct {
	caseRepo *repository.CaseRepository
	jobRepo  *repository.ImportJobRepository
}

// ImportServiceOption is a functional option for ImportService
type ImportServiceOption func(*ImportService)

// ImportWithCaseRepository sets the case repository
func ImportWithCaseRepository(repo *repository.CaseRepository) ImportServiceOption {
	return func(s *ImportService) {
		s.caseRepo = repo
	}
}

// ImportWithJobRepository sets the import job repository
func ImportWithJobRepository(repo *repository.ImportJobRepository) ImportServiceOption {
	return func(s *ImportService) {
		s.jobRepo = repo
	}
}

// NewImportService creates a new import service
func NewImportService(opts ...ImportServiceOption) *ImportService {
	s := &ImportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrJobNotFound       = errors.New("import job not found")
	ErrJobCreationFailed = errors.New("failed to create import job")
	ErrEmptyImport       = errors.New("import payload contains no cases")
)

// ImportCasesRequest represents a bulk import request. Payload is the
// raw JSON array of case records.
type ImportCasesRequest struct {
	Payload []byte
}

// ImportCasesResult represents the result of creating an import job
type ImportCasesResult struct {
	JobID uuid.UUID
}

// GetJobStatusRequest represents a request to get import job status
type GetJobStatusRequest struct {
	JobID uuid.UUID
}

// GetJobStatusResult represents the result of getting import job status
type GetJobStatusResult struct {
	Job *models.ImportJob
}

// ImportCases creates an import job and returns immediately. The actual
// import runs in ProcessImport, which the caller launches in a background
// goroutine; clients poll the job status endpoint for progress.
func (s *ImportService) ImportCases(ctx context.Context, req ImportCasesRequest) (*ImportCasesResult, error) {
	job := &models.ImportJob{
		Status: models.JobStatusPending,
		Steps: models.ImportSteps{
			{Name: "validate", Status: "pending", Description: "Validate case records"},
			{Name: "insert", Status: "pending", Description: "Insert cases into the collection"},
		},
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		log.Printf("Warning: failed to create import job: %v", err)
		return nil, ErrJobCreationFailed
	}

	return &ImportCasesResult{JobID: job.ID}, nil
}

// GetJobStatus retrieves the status of an import job
func (s *ImportService) GetJobStatus(ctx context.Context, req GetJobStatusRequest) (*GetJobStatusResult, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	return &GetJobStatusResult{Job: job}, nil
}

// ProcessImport runs the import job to completion. Intended to run in a
// background goroutine with its own context, so a client disconnect never
// aborts a half-finished import.
func (s *ImportService) ProcessImport(ctx context.Context, jobID uuid.UUID, payload []byte) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		log.Printf("Warning: import job %s not found: %v", jobID, err)
		return
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress); err != nil {
		log.Printf("Warning: failed to mark import job %s in progress: %v", jobID, err)
	}

	// Step 1: validate
	s.setStep(ctx, job, "validate", "in_progress", 0)

	cases, err := decodeImportPayload(payload)
	if err != nil {
		s.failJob(ctx, job, "validate", err)
		return
	}

	job.TotalRecords = len(cases)
	if err := s.jobRepo.SetTotalRecords(ctx, jobID, job.TotalRecords); err != nil {
		log.Printf("Warning: failed to record import job %s total: %v", jobID, err)
	}
	s.setStep(ctx, job, "validate", "completed", 0)

	// Step 2: insert
	s.setStep(ctx, job, "insert", "in_progress", 0)

	imported := 0
	for i, c := range cases {
		if err := s.caseRepo.Create(ctx, c); err != nil {
			s.failJob(ctx, job, "insert", fmt.Errorf("record %d (%s): %w", i+1, c.Name, err))
			return
		}
		imported++

		// Progress checkpoint every 25 records keeps polling clients
		// informed without hammering the jobs table.
		if imported%25 == 0 {
			s.setStep(ctx, job, "insert", "in_progress", imported)
		}
	}

	s.setStep(ctx, job, "insert", "completed", imported)

	if err := s.jobRepo.Complete(ctx, jobID); err != nil {
		log.Printf("Warning: failed to mark import job %s completed: %v", jobID, err)
		return
	}

	log.Printf("Import job %s completed: %d cases imported", jobID, imported)
}

// decodeImportPayload parses and validates the raw JSON case array
func decodeImportPayload(payload []byte) ([]*models.Case, error) {
	var cases []*models.Case
	if err := json.Unmarshal(payload, &cases); err != nil {
		return nil, fmt.Errorf("invalid import payload: %w", err)
	}
	if len(cases) == 0 {
		return nil, ErrEmptyImport
	}

	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("record %d: missing case name", i+1)
		}
		if c.Date.IsZero() {
			return nil, fmt.Errorf("record %d (%s): missing settlement date", i+1, c.Name)
		}
		if c.Year == 0 {
			c.Year = c.Date.Year()
		}
	}

	return cases, nil
}

// setStep updates one named step's status and persists progress
func (s *ImportService) setStep(ctx context.Context, job *models.ImportJob, name, status string, importedCount int) {
	for i := range job.Steps {
		if job.Steps[i].Name == name {
			job.Steps[i].Status = status
		}
	}
	job.CurrentStep = &name
	job.ImportedCount = importedCount

	if err := s.jobRepo.UpdateProgress(ctx, job.ID, name, job.Steps, importedCount); err != nil {
		log.Printf("Warning: failed to update import job %s progress: %v", job.ID, err)
	}
}

// failJob marks the current step and the job as failed
func (s *ImportService) failJob(ctx context.Context, job *models.ImportJob, step string, cause error) {
	log.Printf("Import job %s failed at %s: %v", job.ID, step, cause)

	for i := range job.Steps {
		if job.Steps[i].Name == step {
			job.Steps[i].Status = "failed"
		}
	}
	if err := s.jobRepo.UpdateProgress(ctx, job.ID, step, job.Steps, job.ImportedCount); err != nil {
		log.Printf("Warning: failed to update import job %s progress: %v", job.ID, err)
	}
	if err := s.jobRepo.Fail(ctx, job.ID, cause.Error()); err != nil {
		log.Printf("Warning: failed to mark import job %s failed: %v", job.ID, err)
	}
}
