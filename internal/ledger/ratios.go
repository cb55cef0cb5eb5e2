package ledger

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/models"
)

// Recommended shares of gross income.
var (
	MaxNonDiscretionaryShare = decimal.NewFromFloat(0.50)
	MaxDiscretionaryShare    = decimal.NewFromFloat(0.30)
	MinRemainingShare        = decimal.NewFromFloat(0.20)
)

// Share is one slice of gross income compared against its recommended bound.
type Share struct {
	Amount decimal.Decimal `json:"amount"`
	// Ratio is Amount / gross income, zero when there is no income.
	Ratio decimal.Decimal `json:"ratio"`
	// Recommended is an upper bound for spending shares and a lower bound
	// for the remaining share.
	Recommended          decimal.Decimal `json:"recommended"`
	WithinRecommendation bool            `json:"within_recommendation"`
}

// RatioReport compares the budget with the 50/30/20 guideline.
type RatioReport struct {
	NonDiscretionary Share `json:"non_discretionary"`
	Discretionary    Share `json:"discretionary"`
	Remaining        Share `json:"remaining"`
}

// Ratios splits gross income into non-discretionary spending, every other
// category, and what remains after expenses and committed extra payments.
func Ratios(snap models.Snapshot) RatioReport {
	income := snap.Budget.GrossIncome
	nonDiscretionary := TotalNonDiscretionaryExpenses(snap)
	discretionary := TotalExpenses(snap).Sub(nonDiscretionary)
	remaining := RemainingIncome(snap)

	nd := share(nonDiscretionary, income, MaxNonDiscretionaryShare)
	nd.WithinRecommendation = nd.Ratio.LessThanOrEqual(MaxNonDiscretionaryShare)

	d := share(discretionary, income, MaxDiscretionaryShare)
	d.WithinRecommendation = d.Ratio.LessThanOrEqual(MaxDiscretionaryShare)

	r := share(remaining, income, MinRemainingShare)
	r.WithinRecommendation = income.IsPositive() && r.Ratio.GreaterThanOrEqual(MinRemainingShare)

	return RatioReport{NonDiscretionary: nd, Discretionary: d, Remaining: r}
}

func share(amount, income, recommended decimal.Decimal) Share {
	s := Share{Amount: amount, Ratio: decimal.Zero, Recommended: recommended}
	if income.IsPositive() {
		s.Ratio = amount.Div(income)
	}
	return s
}
