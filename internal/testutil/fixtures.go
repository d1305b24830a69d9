package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"privfin/internal/models"
	"privfin/internal/uuid"
)

// NewCategoryID returns a fresh category reference for fixtures.
func NewCategoryID() string {
	return uuid.New()
}

// CreateTestBudget creates a monthly budget of 100 for a fresh category.
func CreateTestBudget(t *testing.T, db *gorm.DB) *models.Budget {
	t.Helper()
	return CreateTestBudgetFor(t, db, NewCategoryID())
}

// CreateTestBudgetFor creates a monthly budget of 100 for the given category.
func CreateTestBudgetFor(t *testing.T, db *gorm.DB, categoryID string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		CategoryID: categoryID,
		Period:     models.BudgetPeriodMonthly,
		Amount:     decimal.NewFromInt(100),
		IsActive:   true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
