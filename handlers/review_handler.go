package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"settletrack-backend/models"
	"settletrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler handles HTTP requests for extraction ingestion, QC
// reconciliation and bulk imports
type ReviewHandler struct {
	reviewService *service.ReviewService
	importService *service.ImportService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService, importService *service.ImportService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		importService: importService,
	}
}

// CreateExtractionRequest represents the request body for ingesting an
// extraction run
type CreateExtractionRequest struct {
	ModelName string                 `json:"model_name" binding:"required"`
	Fields    models.ExtractedFields `json:"fields" binding:"required"`
}

// CreateExtraction handles POST /api/cases/:id/extractions
func (h *ReviewHandler) CreateExtraction(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CASE_ID",
				"message": "Invalid case ID format",
			},
		})
		return
	}

	var req CreateExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	run := &models.ExtractionRun{
		CaseID:    caseID,
		ModelName: req.ModelName,
		Fields:    req.Fields,
	}

	if err := h.reviewService.CreateExtraction(c.Request.Context(), run); err != nil {
		status := http.StatusInternalServerError
		code := "CREATE_FAILED"
		if errors.Is(err, service.ErrCaseNotFound) {
			status = http.StatusNotFound
			code = "CASE_NOT_FOUND"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    run,
	})
}

// GetReconciliation handles GET /api/cases/:id/reconciliation
func (h *ReviewHandler) GetReconciliation(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CASE_ID",
				"message": "Invalid case ID format",
			},
		})
		return
	}

	result, err := h.reviewService.GetReconciliation(c.Request.Context(), service.GetReconciliationRequest{
		CaseID: caseID,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "RECONCILIATION_FAILED"
		switch {
		case errors.Is(err, service.ErrCaseNotFound):
			status = http.StatusNotFound
			code = "CASE_NOT_FOUND"
		case errors.Is(err, service.ErrNoExtractions):
			status = http.StatusNotFound
			code = "NO_EXTRACTIONS"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// ReviewFieldRequest represents the request body for a field review
type ReviewFieldRequest struct {
	ReviewerID    string      `json:"reviewer_id" binding:"required"`
	FieldName     string      `json:"field_name" binding:"required"`
	ApprovedValue interface{} `json:"approved_value"`
	Note          *string     `json:"note,omitempty"`
}

// ReviewField handles POST /api/cases/:id/reviews
func (h *ReviewHandler) ReviewField(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CASE_ID",
				"message": "Invalid case ID format",
			},
		})
		return
	}

	var req ReviewFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	reviewerID, err := uuid.Parse(req.ReviewerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REVIEWER_ID",
				"message": "Invalid reviewer_id format",
			},
		})
		return
	}

	result, err := h.reviewService.ReviewField(c.Request.Context(), service.ReviewFieldRequest{
		CaseID:        caseID,
		ReviewerID:    reviewerID,
		FieldName:     req.FieldName,
		ApprovedValue: req.ApprovedValue,
		Note:          req.Note,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "REVIEW_FAILED"
		if errors.Is(err, service.ErrCaseNotFound) {
			status = http.StatusNotFound
			code = "CASE_NOT_FOUND"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"case":   result.Case,
			"review": result.Review,
		},
	})
}

// ImportCases handles POST /api/cases/import
func (h *ReviewHandler) ImportCases(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Request body must be a JSON array of cases",
			},
		})
		return
	}

	result, err := h.importService.ImportCases(c.Request.Context(), service.ImportCasesRequest{
		Payload: payload,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	// Spawn background goroutine for actual processing
	// Use background context (not request context) to avoid cancellation
	go func() {
		bgCtx := context.Background()
		h.importService.ProcessImport(bgCtx, result.JobID, payload)
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data": gin.H{
			"job_id":  result.JobID,
			"status":  "pending",
			"message": "Import job created. Poll /api/jobs/:id for updates.",
		},
	})
}

// GetJobStatus handles GET /api/jobs/:id
func (h *ReviewHandler) GetJobStatus(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_JOB_ID",
				"message": "Invalid job ID format",
			},
		})
		return
	}

	result, err := h.importService.GetJobStatus(c.Request.Context(), service.GetJobStatusRequest{
		JobID: jobID,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_NOT_FOUND",
				"message": "Import job not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Job,
	})
}
