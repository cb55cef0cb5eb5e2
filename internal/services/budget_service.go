package services

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/ledger"
	"easybudget/internal/models"
)

// budgetService handles budget-wide reads and income changes.
type budgetService struct {
	registry *Registry
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(registry *Registry) BudgetServicer {
	return &budgetService{registry: registry}
}

// GetSnapshot returns the whole budget of the user.
func (s *budgetService) GetSnapshot(userID string) (*models.Snapshot, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	snap := state.Snapshot()
	return &snap, nil
}

// GetSummary returns the totals, 50/30/20 ratios, and emergency fund status.
func (s *budgetService) GetSummary(userID string) (*BudgetSummary, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	return summarize(state.Snapshot()), nil
}

// SetGrossIncome replaces the gross income of the pay period.
func (s *budgetService) SetGrossIncome(userID string, amount decimal.Decimal) (*BudgetSummary, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := state.SetGrossIncome(amount); err != nil {
		return nil, err
	}
	return summarize(state.Snapshot()), nil
}

// StartPayPeriod makes the full remaining income available for savings
// deposits again.
func (s *budgetService) StartPayPeriod(userID string) (*BudgetSummary, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := state.StartPayPeriod(); err != nil {
		return nil, err
	}
	return summarize(state.Snapshot()), nil
}

func summarize(snap models.Snapshot) *BudgetSummary {
	return &BudgetSummary{
		Totals:                 ledger.ComputeTotals(snap),
		AllocatedSavings:       snap.Budget.AllocatedSavings,
		TotalDeposits:          ledger.TotalDeposits(snap),
		AvailableForAllocation: ledger.AvailableForAllocation(snap),
		Ratios:                 ledger.Ratios(snap),
		EmergencyFund:          fundStatus(snap),
	}
}

func fundStatus(snap models.Snapshot) EmergencyFundStatus {
	status := EmergencyFundStatus{
		EmergencyFund:         snap.Budget.EmergencyFund,
		NonDiscretionaryTotal: ledger.TotalNonDiscretionaryExpenses(snap),
	}
	if ratio, ok := ledger.EmergencyFundRatio(snap.Budget.EmergencyFund); ok {
		status.Ratio = &ratio
	}
	return status
}
