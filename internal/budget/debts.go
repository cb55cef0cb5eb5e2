package budget

import (
	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
)

// DebtInput is the editable part of a debt.
type DebtInput struct {
	Name           string
	Balance        decimal.Decimal
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
}

// Validate checks the fields and returns the trimmed name.
func (in DebtInput) Validate() (string, error) {
	name, err := requireName("debt name", in.Name)
	if err != nil {
		return "", err
	}
	if err := requirePositive("balance", in.Balance); err != nil {
		return "", err
	}
	if err := requireNonNegative("interest rate", in.InterestRate); err != nil {
		return "", err
	}
	if err := requirePositive("minimum payment", in.MinimumPayment); err != nil {
		return "", err
	}
	return name, nil
}

// AddDebt appends a debt.
func (s *State) AddDebt(in DebtInput) (models.Debt, error) {
	name, err := in.Validate()
	if err != nil {
		return models.Debt{}, err
	}

	var created models.Debt
	err = s.apply(func(next *models.Snapshot) error {
		created = models.Debt{
			Entry:          models.NewEntry(),
			Name:           name,
			Balance:        in.Balance,
			InterestRate:   in.InterestRate,
			MinimumPayment: in.MinimumPayment,
		}
		next.Debts = append(next.Debts, created)
		return nil
	})
	return created, err
}

// UpdateDebt replaces the fields of a debt.
func (s *State) UpdateDebt(id string, in DebtInput) (models.Debt, error) {
	name, err := in.Validate()
	if err != nil {
		return models.Debt{}, err
	}

	var updated models.Debt
	err = s.apply(func(next *models.Snapshot) error {
		i := indexOfDebt(next.Debts, id)
		if i < 0 {
			return apperrors.ErrDebtNotFound
		}
		d := &next.Debts[i]
		d.Name = name
		d.Balance = in.Balance
		d.InterestRate = in.InterestRate
		d.MinimumPayment = in.MinimumPayment
		d.Touch()
		updated = *d
		return nil
	})
	return updated, err
}

// DeleteDebt removes a debt.
func (s *State) DeleteDebt(id string) error {
	return s.apply(func(next *models.Snapshot) error {
		i := indexOfDebt(next.Debts, id)
		if i < 0 {
			return apperrors.ErrDebtNotFound
		}
		next.Debts = append(next.Debts[:i], next.Debts[i+1:]...)
		return nil
	})
}

// CommitExtraPayment sets amount aside from the remaining income as the
// extra payment of a snowball plan. Commits accumulate.
func (s *State) CommitExtraPayment(amount decimal.Decimal) error {
	if err := requireNonNegative("extra payment", amount); err != nil {
		return err
	}
	return s.apply(func(next *models.Snapshot) error {
		remaining := ledger.RemainingIncome(*next)
		if amount.GreaterThan(remaining) {
			return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
				"extra payment of "+amount.StringFixed(2)+" exceeds the remaining income of "+remaining.StringFixed(2))
		}
		next.Budget.ExtraDeduction = next.Budget.ExtraDeduction.Add(amount)
		return nil
	})
}

func indexOfDebt(debts []models.Debt, id string) int {
	for i, d := range debts {
		if d.ID == id {
			return i
		}
	}
	return -1
}
