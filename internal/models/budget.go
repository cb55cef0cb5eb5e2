package models

import "github.com/shopspring/decimal"

// Budget is the per-user aggregate row. The list members (categories,
// expenses, savings buckets, debts) live in their own tables keyed by BudgetID.
type Budget struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	GrossIncome decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"gross_income"`
	// ExtraDeduction is the cumulative amount carved out of remaining income
	// by committed snowball extra payments.
	ExtraDeduction decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"extra_deduction"`
	// AllocatedSavings is the total of savings deposits applied during the
	// current pay period.
	AllocatedSavings decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"allocated_savings"`
	EmergencyFund    EmergencyFund   `gorm:"embedded;embeddedPrefix:emergency_fund_" json:"emergency_fund"`
}

// EmergencyFund is the single emergency fund of a budget.
type EmergencyFund struct {
	Goal    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"goal"`
	Balance decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"balance"`
	// Contribution is the per-pay-period amount; zero means it is not set.
	Contribution decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"contribution"`
}
