// Package savings projects goal-based savings buckets.
package savings

import (
	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// Projection is what a bucket list shows for each bucket.
type Projection struct {
	PeriodsRemaining int             `json:"periods_remaining"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining"`
	// Progress is balance/goal, capped at 1. Zero when the goal is not positive.
	Progress decimal.Decimal `json:"progress"`
}

// PeriodsRemaining returns how many deposits are still needed to reach the
// goal. A non-positive deposit yields 0 rather than an error.
func PeriodsRemaining(bucket models.SavingsBucket) int {
	if !bucket.DepositPerPayPeriod.IsPositive() {
		return 0
	}
	periods, rest := AmountRemaining(bucket).QuoRem(bucket.DepositPerPayPeriod, 0)
	if rest.IsPositive() {
		periods = periods.Add(decimal.NewFromInt(1))
	}
	return int(periods.IntPart())
}

// AmountRemaining is max(0, goal - balance).
func AmountRemaining(bucket models.SavingsBucket) decimal.Decimal {
	return decimal.Max(decimal.Zero, bucket.GoalAmount.Sub(bucket.CurrentBalance))
}

// Project computes the display projection for bucket.
func Project(bucket models.SavingsBucket) Projection {
	p := Projection{
		PeriodsRemaining: PeriodsRemaining(bucket),
		AmountRemaining:  AmountRemaining(bucket),
		Progress:         decimal.Zero,
	}
	if bucket.GoalAmount.IsPositive() {
		p.Progress = decimal.Min(decimal.NewFromInt(1), bucket.CurrentBalance.Div(bucket.GoalAmount))
	}
	return p
}

// ApplyDeposit adds one pay period's deposit to bucket and returns the
// updated bucket and the amount still available for allocation. When the
// deposit exceeds available it fails with ErrInsufficientFunds and returns
// its inputs unchanged. The balance may overshoot the goal.
func ApplyDeposit(bucket models.SavingsBucket, available decimal.Decimal) (models.SavingsBucket, decimal.Decimal, error) {
	deposit := bucket.DepositPerPayPeriod
	if deposit.GreaterThan(available) {
		return bucket, available, apperrors.WithMessage(apperrors.ErrInsufficientFunds,
			"deposit of "+deposit.StringFixed(2)+" exceeds the "+available.StringFixed(2)+" available")
	}

	bucket.CurrentBalance = bucket.CurrentBalance.Add(deposit)
	return bucket, available.Sub(deposit), nil
}
