// Package snowball plans debt payoff with the snowball method: debts are
// cleared smallest balance first, and each cleared debt's minimum payment
// is rolled into the payment on the next one.
//
// The planner does not apply interest. Debt.InterestRate is carried through
// to the plan for display only.
package snowball

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// Plan is the payoff projection for one debt.
type Plan struct {
	Debt           models.Debt     `json:"debt"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	MonthsToPayOff int             `json:"months_to_pay_off"`
}

// Summary aggregates a list of plans.
type Summary struct {
	DebtCount           int             `json:"debt_count"`
	TotalPaid           decimal.Decimal `json:"total_paid"`
	LongestPayoffMonths int             `json:"longest_payoff_months"`
}

// Calculate returns one Plan per debt, smallest starting balance first.
// Debts with equal balances keep their input order. debts is not modified.
func Calculate(debts []models.Debt, extraPayment decimal.Decimal) ([]Plan, error) {
	if extraPayment.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "extra payment cannot be negative")
	}

	ordered := make([]models.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance.LessThan(ordered[j].Balance)
	})

	plans := make([]Plan, 0, len(ordered))
	extra := extraPayment
	for _, debt := range ordered {
		plan, err := payOff(debt, extra)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
		extra = extra.Add(debt.MinimumPayment)
	}

	return plans, nil
}

// payOff pays minimum+extra each month against one debt. Without interest
// every month but the last clears a full payment, so the month count is
// balance/monthly rounded up and the total paid is the balance itself.
func payOff(debt models.Debt, extra decimal.Decimal) (Plan, error) {
	monthly := debt.MinimumPayment.Add(extra)
	if !monthly.IsPositive() {
		return Plan{}, apperrors.WithMessage(apperrors.ErrNonConvergent,
			fmt.Sprintf("monthly payment for %q is not positive", debt.Name))
	}
	if !debt.Balance.IsPositive() {
		return Plan{Debt: debt, TotalPaid: decimal.Zero}, nil
	}

	months, rest := debt.Balance.QuoRem(monthly, 0)
	if rest.IsPositive() {
		months = months.Add(decimal.NewFromInt(1))
	}
	if !months.IsPositive() {
		return Plan{}, apperrors.WithMessage(apperrors.ErrNonConvergent,
			fmt.Sprintf("payment for %q stopped reducing the balance", debt.Name))
	}
	if months.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return Plan{}, apperrors.WithMessage(apperrors.ErrNonConvergent,
			fmt.Sprintf("month count for %q does not fit in an int", debt.Name))
	}

	return Plan{Debt: debt, TotalPaid: debt.Balance, MonthsToPayOff: int(months.IntPart())}, nil
}

// Summarize totals the plans returned by Calculate.
func Summarize(plans []Plan) Summary {
	s := Summary{DebtCount: len(plans), TotalPaid: decimal.Zero}
	for _, p := range plans {
		s.TotalPaid = s.TotalPaid.Add(p.TotalPaid)
		if p.MonthsToPayOff > s.LongestPayoffMonths {
			s.LongestPayoffMonths = p.MonthsToPayOff
		}
	}
	return s
}
