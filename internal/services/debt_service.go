package services

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
	"easybudget/internal/snowball"
)

// debtService handles debts and snowball payoff plans.
type debtService struct {
	registry *Registry
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(registry *Registry) DebtServicer {
	return &debtService{registry: registry}
}

// CreateDebt adds a debt.
func (s *debtService) CreateDebt(userID string, in budget.DebtInput) (*models.Debt, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	debt, err := state.AddDebt(in)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetUserDebts lists the debts in the order they were added.
func (s *debtService) GetUserDebts(userID string) ([]models.Debt, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	return state.Snapshot().Debts, nil
}

// UpdateDebt replaces the fields of a debt.
func (s *debtService) UpdateDebt(userID, debtID string, in budget.DebtInput) (*models.Debt, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	debt, err := state.UpdateDebt(debtID, in)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// DeleteDebt removes a debt.
func (s *debtService) DeleteDebt(userID, debtID string) error {
	state, err := s.registry.Get(userID)
	if err != nil {
		return err
	}
	return state.DeleteDebt(debtID)
}

// PlanSnowball calculates the payoff plan of the user's debts. With commit
// set, the extra payment is then deducted from the remaining income; the
// plan is not stored. Nothing is committed when the plan cannot be
// calculated.
func (s *debtService) PlanSnowball(userID string, extraPayment decimal.Decimal, commit bool) (*SnowballResult, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}

	plans, err := snowball.Calculate(state.Snapshot().Debts, extraPayment)
	if err != nil {
		return nil, err
	}

	if commit {
		if err := state.CommitExtraPayment(extraPayment); err != nil {
			return nil, err
		}
	}

	return &SnowballResult{
		Plans:           plans,
		Summary:         snowball.Summarize(plans),
		ExtraPayment:    extraPayment,
		Committed:       commit,
		RemainingIncome: ledger.RemainingIncome(state.Snapshot()),
	}, nil
}
