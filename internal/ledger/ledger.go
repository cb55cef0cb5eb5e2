// Package ledger derives read-only totals from a budget snapshot.
// Every function is pure: it reads its argument and returns a value.
package ledger

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/models"
)

// CategoryTotal is the sum of expenses filed under one category.
type CategoryTotal struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	ColorTag   string          `json:"color_tag"`
	Total      decimal.Decimal `json:"total"`
}

// Totals is the summary refreshed after every budget mutation.
type Totals struct {
	GrossIncome     decimal.Decimal `json:"gross_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	ExtraDeduction  decimal.Decimal `json:"extra_deduction"`
	RemainingIncome decimal.Decimal `json:"remaining_income"`
	PerCategory     []CategoryTotal `json:"per_category"`
}

// TotalExpenses sums every expense amount.
func TotalExpenses(snap models.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, e := range snap.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalForCategory sums the expenses filed under categoryID. An unknown
// category yields zero.
func TotalForCategory(snap models.Snapshot, categoryID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range snap.Expenses {
		if e.CategoryID == categoryID {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// RemainingIncome is gross income minus expenses minus committed extra
// payments. The result is not clamped and may be negative.
func RemainingIncome(snap models.Snapshot) decimal.Decimal {
	return snap.Budget.GrossIncome.
		Sub(TotalExpenses(snap)).
		Sub(snap.Budget.ExtraDeduction)
}

// TotalNonDiscretionaryExpenses sums the expenses whose category is named
// "non-discretionary", ignoring case.
func TotalNonDiscretionaryExpenses(snap models.Snapshot) decimal.Decimal {
	ids := make(map[string]bool)
	for _, c := range snap.Categories {
		if c.IsNonDiscretionary() {
			ids[c.ID] = true
		}
	}

	total := decimal.Zero
	for _, e := range snap.Expenses {
		if ids[e.CategoryID] {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalDeposits sums the per-pay-period deposit of every savings bucket.
func TotalDeposits(snap models.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, b := range snap.SavingsBuckets {
		total = total.Add(b.DepositPerPayPeriod)
	}
	return total
}

// AvailableForAllocation is the remaining income not yet deposited into
// savings buckets during the current pay period.
func AvailableForAllocation(snap models.Snapshot) decimal.Decimal {
	return RemainingIncome(snap).Sub(snap.Budget.AllocatedSavings)
}

// ComputeTotals builds the summary shown after every mutation. Category
// totals follow category order.
func ComputeTotals(snap models.Snapshot) Totals {
	perCategory := make([]CategoryTotal, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		perCategory = append(perCategory, CategoryTotal{
			CategoryID: c.ID,
			Name:       c.Name,
			ColorTag:   c.ColorTag,
			Total:      TotalForCategory(snap, c.ID),
		})
	}

	return Totals{
		GrossIncome:     snap.Budget.GrossIncome,
		TotalExpenses:   TotalExpenses(snap),
		ExtraDeduction:  snap.Budget.ExtraDeduction,
		RemainingIncome: RemainingIncome(snap),
		PerCategory:     perCategory,
	}
}

// EmergencyFundRatio returns balance/goal. ok is false when the goal is zero
// and the ratio is undefined.
func EmergencyFundRatio(fund models.EmergencyFund) (ratio decimal.Decimal, ok bool) {
	if !fund.Goal.IsPositive() {
		return decimal.Zero, false
	}
	return fund.Balance.Div(fund.Goal), true
}
