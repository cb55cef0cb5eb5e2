package models

import "github.com/shopspring/decimal"

// SavingsBucket is a goal-based savings allocation funded once per pay period.
type SavingsBucket struct {
	Entry
	Name                string          `gorm:"not null" json:"name"`
	GoalAmount          decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"goal_amount"`
	CurrentBalance      decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"current_balance"`
	DepositPerPayPeriod decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"deposit_per_pay_period"`
}
