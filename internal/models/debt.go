package models

import "github.com/shopspring/decimal"

// Debt is an outstanding balance paid down with a fixed minimum payment.
// InterestRate is a percentage kept for display; payoff plans do not apply it.
type Debt struct {
	Entry
	Name           string          `gorm:"not null" json:"name"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"balance"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(9,4);not null" json:"interest_rate"`
	MinimumPayment decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"minimum_payment"`
}
