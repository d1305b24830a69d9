package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "privfin/internal/errors"
	"privfin/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer backed by the given database.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// List returns all budgets matching the filter, newest first.
func (s *budgetService) List(filter BudgetFilter) ([]models.Budget, error) {
	query := s.db.Model(&models.Budget{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Period != nil {
		query = query.Where("period = ?", *filter.Period)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var budgets []models.Budget
	if err := query.Order("created_at DESC, id DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetByID returns the budget with the given ID, soft-deleted or not.
func (s *budgetService) GetByID(id string) (*models.Budget, error) {
	return s.getByID(s.db, id)
}

func (s *budgetService) getByID(tx *gorm.DB, id string) (*models.Budget, error) {
	var budget models.Budget
	if err := tx.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// Create inserts a new budget and returns it with the generated ID and
// timestamps. IsActive defaults to true unless explicitly set false.
func (s *budgetService) Create(input CreateBudgetInput) (*models.Budget, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	budget := &models.Budget{
		CategoryID: input.CategoryID,
		Period:     input.Period,
		Amount:     input.Amount,
		IsActive:   active,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// Update applies the supplied fields to an existing budget. UpdatedAt is
// refreshed even when no fields are supplied. The existence check and the
// write run in one transaction so a concurrent delete cannot slip between
// them.
func (s *budgetService) Update(id string, input UpdateBudgetInput) (*models.Budget, error) {
	var updated *models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := s.getByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"updated_at": time.Now()}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.Period != nil {
			updates["period"] = *input.Period
		}
		if input.Amount != nil {
			updates["amount"] = *input.Amount
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if err := tx.Model(budget).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		updated, err = s.getByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete soft-deletes a budget by setting is_active to false and returns the
// row in its post-delete state. The row stays queryable; deleting an already
// inactive budget succeeds and still bumps UpdatedAt.
func (s *budgetService) Delete(id string) (*models.Budget, error) {
	var deleted *models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := s.getByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}
		if err := tx.Model(budget).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		deleted, err = s.getByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
