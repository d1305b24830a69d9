package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"privfin/internal/models"
	"privfin/internal/services"
	"privfin/internal/validation"
)

// BudgetHandler handles budget-related requests. It is pure glue: every
// handler reads the values the validation middleware stored, calls the
// service, and wraps the result in the response envelope.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	CategoryID string              `json:"categoryId" binding:"required,uuid"`
	Period     models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	Amount     *decimal.Decimal    `json:"amount" binding:"required,decimal"`
	IsActive   *bool               `json:"isActive"`
}

// UpdateBudgetRequest represents the request payload for a partial update.
// Absent fields leave the stored values untouched.
type UpdateBudgetRequest struct {
	CategoryID *string              `json:"categoryId" binding:"omitempty,uuid"`
	Period     *models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
	Amount     *decimal.Decimal     `json:"amount" binding:"omitempty,decimal"`
	IsActive   *bool                `json:"isActive"`
}

// BudgetQuery represents the optional equality filters for listing budgets.
type BudgetQuery struct {
	CategoryID string `form:"categoryId" json:"categoryId" binding:"omitempty,uuid"`
	Period     string `form:"period" json:"period" binding:"omitempty,budget_period"`
	IsActive   *bool  `form:"isActive" json:"isActive"`
}

// ListBudgets handles listing budgets with optional filters.
// @Summary     List budgets
// @Description Get all budgets with optional filtering, newest first
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       categoryId query string false "Filter by category ID"
// @Param       period     query string false "Filter by period (weekly/monthly/yearly)"
// @Param       isActive   query bool   false "Filter by active status"
// @Success     200 {array}  models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	query := validation.QueryValue[BudgetQuery](c)

	filter := services.BudgetFilter{IsActive: query.IsActive}
	if query.CategoryID != "" {
		filter.CategoryID = &query.CategoryID
	}
	if query.Period != "" {
		period := models.BudgetPeriod(query.Period)
		filter.Period = &period
	}

	budgets, err := h.budgetService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, budgets)
}

// GetBudget handles retrieving a single budget by ID.
// @Summary     Get budget by ID
// @Description Get a single budget by its UUID
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id := validation.ParamValue(c)

	budget, err := h.budgetService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, budget)
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a new budget for a category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	req := validation.Body[CreateBudgetRequest](c)

	budget, err := h.budgetService.Create(services.CreateBudgetInput{
		CategoryID: req.CategoryID,
		Period:     req.Period,
		Amount:     *req.Amount,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, budget)
}

// UpdateBudget handles partially updating an existing budget.
// @Summary     Update budget
// @Description Update the supplied fields of an existing budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Updated budget fields"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id := validation.ParamValue(c)
	req := validation.Body[UpdateBudgetRequest](c)

	budget, err := h.budgetService.Update(id, services.UpdateBudgetInput{
		CategoryID: req.CategoryID,
		Period:     req.Period,
		Amount:     req.Amount,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, budget)
}

// DeleteBudget handles soft-deleting a budget.
// @Summary     Delete budget
// @Description Soft-delete a budget (sets isActive to false)
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget in its post-delete state"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id := validation.ParamValue(c)

	budget, err := h.budgetService.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, budget)
}
