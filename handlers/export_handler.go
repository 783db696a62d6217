package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"settletrack-backend/export"
	"settletrack-backend/models"
	"settletrack-backend/service"
	"settletrack-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler handles HTTP requests for case exports
type ExportHandler struct {
	caseService *service.CaseService
	storage     storage.Storage
}

// NewExportHandler creates a new export handler
func NewExportHandler(caseService *service.CaseService, store storage.Storage) *ExportHandler {
	return &ExportHandler{
		caseService: caseService,
		storage:     store,
	}
}

// ExportCSV handles POST /api/cases/export/csv
// Body is the filter criteria; the response streams the CSV file.
// With ?save=true the artifact is also persisted to storage.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", "text/csv", export.WriteCasesCSV)
}

// ExportXLSX handles POST /api/cases/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.WriteCasesXLSX)
}

func (h *ExportHandler) export(c *gin.Context, ext, contentType string, write func(w io.Writer, cases []*models.Case) error) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.caseService.SearchCases(c.Request.Context(), service.SearchCasesRequest{
		Criteria: criteria,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, result.Cases); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	filename := fmt.Sprintf("cases_%s.%s", time.Now().Format("2006-01-02"), ext)

	if c.Query("save") == "true" && h.storage != nil {
		artifactID := uuid.New()
		path, err := h.storage.Upload(c.Request.Context(), artifactID, filename, bytes.NewReader(buf.Bytes()))
		if err != nil {
			// The download still succeeds; the saved copy is best effort
			log.Printf("Warning: failed to save export artifact: %v", err)
		} else {
			c.Header("X-Artifact-Path", path)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
