package models

import "github.com/shopspring/decimal"

// BudgetPeriod represents the recurrence of a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether p is one of the known budget periods.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget represents a recurring spending limit for a category.
//
// Amount is a decimal.Decimal so money crosses the storage and wire
// boundaries as exact decimal text, never as a binary float. Deleting a
// budget only flips IsActive; rows are never physically removed.
type Budget struct {
	Base
	CategoryID string          `gorm:"type:uuid;not null;index" json:"categoryId"`
	Period     BudgetPeriod    `gorm:"not null" json:"period"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	IsActive   bool            `gorm:"not null" json:"isActive"`
}
