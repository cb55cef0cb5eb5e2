package models

import "github.com/shopspring/decimal"

// Expense is a recurring outflow assigned to a category.
type Expense struct {
	Entry
	Name       string          `gorm:"not null" json:"name"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	CategoryID string          `gorm:"type:uuid;not null;index" json:"category_id"`
}
