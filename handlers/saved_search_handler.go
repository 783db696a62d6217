package handlers

import (
	"net/http"

	"settletrack-backend/models"
	"settletrack-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SavedSearchHandler handles HTTP requests for saved searches
type SavedSearchHandler struct {
	searchRepo *repository.SavedSearchRepository
}

// NewSavedSearchHandler creates a new saved search handler
func NewSavedSearchHandler(searchRepo *repository.SavedSearchRepository) *SavedSearchHandler {
	return &SavedSearchHandler{searchRepo: searchRepo}
}

// CreateSavedSearchRequest represents the request body for saving a search
type CreateSavedSearchRequest struct {
	UserID    string                `json:"user_id" binding:"required"`
	Name      string                `json:"name" binding:"required"`
	Criteria  models.FilterCriteria `json:"criteria"`
	IsDefault bool                  `json:"is_default"`
}

// CreateSavedSearch handles POST /api/searches
func (h *SavedSearchHandler) CreateSavedSearch(c *gin.Context) {
	var req CreateSavedSearchRequest
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

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Invalid user_id format",
			},
		})
		return
	}

	search := &models.SavedSearch{
		UserID:    userID,
		Name:      req.Name,
		Criteria:  models.SavedCriteria(req.Criteria),
		IsDefault: req.IsDefault,
	}

	if err := h.searchRepo.Create(c.Request.Context(), search); err != nil {
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
		"data":    search,
	})
}

// ListSavedSearches handles GET /api/searches?user_id=...
func (h *SavedSearchHandler) ListSavedSearches(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Invalid or missing user_id",
			},
		})
		return
	}

	searches, err := h.searchRepo.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    searches,
	})
}

// DeleteSavedSearch handles DELETE /api/searches/:id
func (h *SavedSearchHandler) DeleteSavedSearch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SEARCH_ID",
				"message": "Invalid search ID format",
			},
		})
		return
	}

	if err := h.searchRepo.Delete(c.Request.Context(), id); err != nil {
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
