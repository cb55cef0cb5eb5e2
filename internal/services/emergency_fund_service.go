package services

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/models"
)

// emergencyFundService handles the emergency fund of a budget.
type emergencyFundService struct {
	registry *Registry
}

// NewEmergencyFundService creates a new EmergencyFundServicer.
func NewEmergencyFundService(registry *Registry) EmergencyFundServicer {
	return &emergencyFundService{registry: registry}
}

// GetEmergencyFund returns the fund with its ratio and the
// non-discretionary total the multiplier goal is based on.
func (s *emergencyFundService) GetEmergencyFund(userID string) (*EmergencyFundStatus, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	status := fundStatus(state.Snapshot())
	return &status, nil
}

// AddFunds adds amount to the fund balance.
func (s *emergencyFundService) AddFunds(userID string, amount decimal.Decimal) (*EmergencyFundStatus, error) {
	return s.change(userID, func(state *budget.State) (models.EmergencyFund, error) {
		return state.AddEmergencyFunds(amount)
	})
}

// SetGoal sets the fund goal.
func (s *emergencyFundService) SetGoal(userID string, goal decimal.Decimal) (*EmergencyFundStatus, error) {
	return s.change(userID, func(state *budget.State) (models.EmergencyFund, error) {
		return state.SetEmergencyFundGoal(goal)
	})
}

// SetGoalFromMultiplier sets the goal to multiplier times the
// non-discretionary expenses.
func (s *emergencyFundService) SetGoalFromMultiplier(userID string, multiplier decimal.Decimal) (*EmergencyFundStatus, error) {
	return s.change(userID, func(state *budget.State) (models.EmergencyFund, error) {
		return state.SetEmergencyFundGoalFromMultiplier(multiplier)
	})
}

// SetContribution sets the per-pay-period contribution.
func (s *emergencyFundService) SetContribution(userID string, amount decimal.Decimal) (*EmergencyFundStatus, error) {
	return s.change(userID, func(state *budget.State) (models.EmergencyFund, error) {
		return state.SetEmergencyFundContribution(amount)
	})
}

// ApplyContribution adds the per-pay-period contribution to the balance.
func (s *emergencyFundService) ApplyContribution(userID string) (*EmergencyFundStatus, error) {
	return s.change(userID, func(state *budget.State) (models.EmergencyFund, error) {
		return state.ApplyEmergencyFundContribution()
	})
}

func (s *emergencyFundService) change(userID string, fn func(state *budget.State) (models.EmergencyFund, error)) (*EmergencyFundStatus, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	if _, err := fn(state); err != nil {
		return nil, err
	}
	status := fundStatus(state.Snapshot())
	return &status, nil
}
