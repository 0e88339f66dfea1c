package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yalisommer/creature-creator/internal/models"
	"github.com/yalisommer/creature-creator/internal/services"
	"github.com/yalisommer/creature-creator/internal/store"
	"github.com/yalisommer/creature-creator/pkg/logger"
)

type CombinationHandler struct {
	store   *store.Store
	service *services.CombinationService
}

func NewCombinationHandler(s *store.Store, service *services.CombinationService) *CombinationHandler {
	return &CombinationHandler{store: s, service: service}
}

// List returns the full combination catalog document. A catalog that
// does not exist yet reads as empty; a catalog that exists but cannot
// be read is a real failure, not an empty result.
func (h *CombinationHandler) List(c *gin.Context) {
	catalog, err := h.store.Combinations()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusOK, &models.CombinationCatalog{Combinations: []models.Combination{}})
			return
		}
		logger.Error().Err(err).Msg("Failed to read combination catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch combinations"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

type combineRequest struct {
	Card1ID string `json:"card1_id"`
	Card2ID string `json:"card2_id"`
}

// Combine creates (or returns the existing) combination for a pair of
// creature ids.
func (h *CombinationHandler) Combine(c *gin.Context) {
	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card1_id and card2_id are required"})
		return
	}

	combination, appErr := h.service.Combine(c.Request.Context(), req.Card1ID, req.Card2ID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, combination)
}

type updateCombinationRequest struct {
	CombinationKey string `json:"combination_key"`
	Image          string `json:"image"`
}

// Update attaches a submitted drawing to an existing combination and
// registers the resulting creature.
func (h *CombinationHandler) Update(c *gin.Context) {
	var req updateCombinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "combination_key and image are required"})
		return
	}

	if appErr := h.service.AttachImage(c.Request.Context(), req.CombinationKey, req.Image); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Combination updated"})
}
