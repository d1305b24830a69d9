package services

import (
	"github.com/shopspring/decimal"

	"privfin/internal/models"
)

// BudgetFilter holds optional equality filters for listing budgets.
// Nil fields impose no constraint; set fields are combined with AND.
type BudgetFilter struct {
	CategoryID *string
	Period     *models.BudgetPeriod
	IsActive   *bool
}

// CreateBudgetInput carries the client-supplied fields for a new budget.
// IsActive defaults to true when nil.
type CreateBudgetInput struct {
	CategoryID string
	Period     models.BudgetPeriod
	Amount     decimal.Decimal
	IsActive   *bool
}

// UpdateBudgetInput carries a partial update; nil fields are left untouched.
type UpdateBudgetInput struct {
	CategoryID *string
	Period     *models.BudgetPeriod
	Amount     *decimal.Decimal
	IsActive   *bool
}

// BudgetServicer defines the contract for budget business logic. It is the
// sole owner of budget persistence; handlers never touch storage directly.
type BudgetServicer interface {
	List(filter BudgetFilter) ([]models.Budget, error)
	GetByID(id string) (*models.Budget, error)
	Create(input CreateBudgetInput) (*models.Budget, error)
	Update(id string, input UpdateBudgetInput) (*models.Budget, error)
	Delete(id string) (*models.Budget, error)
}
