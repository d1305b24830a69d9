package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "privfin/internal/errors"
	"privfin/internal/validation"
)

// RegisterBudgetRoutes wires the budget CRUD routes with their validation
// middleware onto the given group. Each route runs its validators first;
// the handler only runs when all of them pass.
func RegisterBudgetRoutes(rg *gin.RouterGroup, h *BudgetHandler) {
	idParam := validation.Validate(validation.TargetParam, validation.UUIDParam{Name: "id"})

	rg.GET("",
		validation.Validate(validation.TargetQuery, validation.Query[BudgetQuery]{}),
		h.ListBudgets)
	rg.GET("/:id", idParam, h.GetBudget)
	rg.POST("",
		validation.Validate(validation.TargetBody, validation.JSON[CreateBudgetRequest]{}),
		h.CreateBudget)
	rg.PUT("/:id",
		idParam,
		validation.Validate(validation.TargetBody, validation.JSON[UpdateBudgetRequest]{}),
		h.UpdateBudget)
	rg.DELETE("/:id", idParam, h.DeleteBudget)
}

// RegisterSystemRoutes wires the health and info endpoints and the 404
// fallback onto the router.
func RegisterSystemRoutes(router *gin.Engine, h *HealthHandler) {
	router.GET("/api/health", h.Health)
	router.GET("/api", h.Info)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   apperrors.ErrNotFound,
		})
	})
}
