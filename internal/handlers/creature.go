package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yalisommer/creature-creator/internal/store"
	"github.com/yalisommer/creature-creator/pkg/logger"
)

type CreatureHandler struct {
	store *store.Store
}

func NewCreatureHandler(s *store.Store) *CreatureHandler {
	return &CreatureHandler{store: s}
}

// List returns all creatures in the catalog (public)
func (h *CreatureHandler) List(c *gin.Context) {
	catalog, err := h.store.Creatures()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read creature catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch creatures"})
		return
	}
	c.JSON(http.StatusOK, catalog.Creatures)
}
