package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yalisommer/creature-creator/internal/handlers"
)

// RegisterAPIRoutes wires the catalog and combination endpoints.
func RegisterAPIRoutes(rg *gin.RouterGroup, creatures *handlers.CreatureHandler, combinations *handlers.CombinationHandler) {
	rg.GET("/creatures", creatures.List)
	rg.GET("/combinations", combinations.List)
	rg.POST("/combine", combinations.Combine)
	rg.POST("/update-combination", combinations.Update)
}
