package handlers

import (
	"net/http"

	"settletrack-backend/models"
	"settletrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for cases and statistics
type CaseHandler struct {
	caseService *service.CaseService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService *service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// SearchCases handles POST /api/cases/search
func (h *CaseHandler) SearchCases(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"cases":      result.Cases,
			"statistics": result.Statistics,
		},
	})
}

// GetCase handles GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	result, err := h.caseService.GetCase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CASE_NOT_FOUND",
				"message": "Case not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// CreateCase handles POST /api/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var caseRecord models.Case
	if err := c.ShouldBindJSON(&caseRecord); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	if err := h.caseService.CreateCase(c.Request.Context(), &caseRecord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    caseRecord,
	})
}

// UpdateCase handles PUT /api/cases/:id
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	var caseRecord models.Case
	if err := c.ShouldBindJSON(&caseRecord); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}
	caseRecord.ID = id

	if err := h.caseService.UpdateCase(c.Request.Context(), &caseRecord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    caseRecord,
	})
}

// DeleteCase handles DELETE /api/cases/:id
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	if err := h.caseService.DeleteCase(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// GetOverview handles POST /api/stats/overview
func (h *CaseHandler) GetOverview(c *gin.Context) {
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

	result, err := h.caseService.GetOverview(c.Request.Context(), service.GetOverviewRequest{
		Criteria: criteria,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "OVERVIEW_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Overview,
	})
}

// GetTrends handles POST /api/stats/trends
func (h *CaseHandler) GetTrends(c *gin.Context) {
	var config models.TrendConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	if !validTrendConfig(config) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_TREND_CONFIG",
				"message": "Unknown metric or time grouping",
			},
		})
		return
	}

	result, err := h.caseService.GetTrends(c.Request.Context(), service.GetTrendsRequest{
		Config: config,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TRENDS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Points,
	})
}

// GetBreakdowns handles POST /api/stats/breakdowns
func (h *CaseHandler) GetBreakdowns(c *gin.Context) {
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

	result, err := h.caseService.GetBreakdowns(c.Request.Context(), service.GetBreakdownsRequest{
		Criteria: criteria,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BREAKDOWNS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"injunctive_relief": result.Relief,
			"assessments":       result.Assessments,
		},
	})
}

// GetFilterSchema handles GET /api/filters/schema
func (h *CaseHandler) GetFilterSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.DefaultFilterSchema(),
	})
}

func validTrendConfig(config models.TrendConfig) bool {
	switch config.Metric {
	case models.MetricAvgSettlement, models.MetricTotalSettlement, models.MetricCaseCount,
		models.MetricAvgClassSize, models.MetricMedianSettlement:
	default:
		return false
	}
	switch config.TimeGrouping {
	case models.GroupByYear, models.GroupByQuarter, models.GroupByMonth:
	default:
		return false
	}
	return true
}
